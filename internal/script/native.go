package script

import (
	"log/slog"
	"time"

	"paintcube/internal/colors"
	"paintcube/internal/input"
	"paintcube/internal/logger"
	"paintcube/internal/mixer"
	"paintcube/internal/picking"
	"paintcube/internal/starfield"
	"paintcube/internal/uitext"
)

// Native answers every bridge call in Go.
type Native struct {
	mix   mixer.Safe
	keys  input.Mapper
	text  uitext.Provider
	field *starfield.Field
	log   *slog.Logger
	meter
}

// NewNative builds a Native bridge. It fails only for an unknown mixer name.
func NewNative(opts Options) (*Native, error) {
	strategy, err := mixer.New(opts.Mixer)
	if err != nil {
		return nil, err
	}
	log := logger.Or(opts.Log)
	text := opts.Text
	if text == nil {
		text = uitext.Default()
	}
	return &Native{
		mix:   mixer.Safe{Strategy: strategy, Log: log},
		keys:  input.DefaultTable(opts.Step),
		text:  text,
		field: starfield.Generate(starfield.DefaultSeed, 0),
		log:   log,
	}, nil
}

func (n *Native) MixColor(c, inc colors.RGB) colors.RGB {
	defer n.since(time.Now())
	return n.mix.Mix(c, inc)
}

func (n *Native) MapInput(k input.Key) input.Delta {
	return n.keys.MapKey(k)
}

func (n *Native) InitStars(seed uint32, count int) int {
	defer n.since(time.Now())
	n.field = starfield.Generate(seed, count)
	return n.field.Len()
}

func (n *Native) StarPositions(t float64, dst []starfield.Star) []starfield.Star {
	defer n.since(time.Now())
	return n.field.At(t, dst)
}

func (n *Native) ResolvePick(pixelR int) (int, bool) {
	return picking.Decode(pixelR)
}

func (n *Native) SplashLines() []uitext.Line { return n.text.SplashLines() }

func (n *Native) ControlLines() []uitext.Line { return n.text.ControlLines() }

func (n *Native) Close() error { return nil }
