// Package uitext holds the styled text lines shown by overlays.
package uitext

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"paintcube/internal/colors"
)

// Line is one overlay text line. Step is the vertical advance to the next line in pixels.
type Line struct {
	Text     string
	Color    colors.RGB
	Step     float32
	Centered bool
}

// DefaultStep is used when a line declares no step.
const DefaultStep = 16

// Provider supplies overlay lines.
type Provider interface {
	SplashLines() []Line
	ControlLines() []Line
}

// Tables is a Provider backed by static slices.
type Tables struct {
	Splash   []Line
	Controls []Line
}

// SplashLines implements Provider.
func (t *Tables) SplashLines() []Line { return t.Splash }

// ControlLines implements Provider.
func (t *Tables) ControlLines() []Line { return t.Controls }

type yamlLine struct {
	Text     string    `yaml:"text"`
	Color    []float32 `yaml:"color"`
	Step     float32   `yaml:"step"`
	Centered bool      `yaml:"centered"`
}

type yamlDoc struct {
	Splash   []yamlLine `yaml:"splash"`
	Controls []yamlLine `yaml:"controls"`
}

//go:embed lines.yaml
var defaultLines []byte

// Parse decodes a YAML document with "splash" and "controls" line lists.
func Parse(data []byte) (*Tables, error) {
	var doc yamlDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("uitext: %w", err)
	}
	splash, err := convert(doc.Splash)
	if err != nil {
		return nil, fmt.Errorf("uitext: splash: %w", err)
	}
	controls, err := convert(doc.Controls)
	if err != nil {
		return nil, fmt.Errorf("uitext: controls: %w", err)
	}
	return &Tables{Splash: splash, Controls: controls}, nil
}

// Default returns the built-in tables. It panics if the embedded document is broken.
func Default() *Tables {
	t, err := Parse(defaultLines)
	if err != nil {
		panic(err)
	}
	return t
}

func convert(in []yamlLine) ([]Line, error) {
	out := make([]Line, 0, len(in))
	for i, l := range in {
		c := colors.White
		switch len(l.Color) {
		case 0:
		case 3:
			c = colors.RGB{R: l.Color[0], G: l.Color[1], B: l.Color[2]}.Clamped()
		default:
			return nil, fmt.Errorf("line %d: color needs 3 channels, got %d", i, len(l.Color))
		}
		step := l.Step
		if step <= 0 {
			step = DefaultStep
		}
		out = append(out, Line{Text: l.Text, Color: c, Step: step, Centered: l.Centered})
	}
	return out, nil
}
