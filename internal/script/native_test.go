package script

import (
	"errors"
	"testing"

	"paintcube/internal/colors"
	"paintcube/internal/input"
	"paintcube/internal/mixer"
	"paintcube/internal/starfield"
	"paintcube/internal/uitext"
)

func TestNativeBridge(t *testing.T) {
	n, err := NewNative(Options{})
	if err != nil {
		t.Fatal(err)
	}
	var _ Bridge = n
	var _ Timed = n

	got := n.MixColor(colors.RGB{R: 0.8, G: 0.2}, colors.RGB{R: 0.5, B: 0.3})
	if got != (colors.RGB{R: 1, G: 0.2, B: 0.3}) {
		t.Errorf("MixColor = %v", got)
	}
	if d := n.MapInput('w'); d != (input.Delta{DX: -5}) {
		t.Errorf("MapInput(w) = %+v", d)
	}
	if d := n.MapInput('x'); !d.IsZero() {
		t.Errorf("MapInput(x) = %+v", d)
	}
	if c := n.InitStars(starfield.DefaultSeed, 12); c != 12 {
		t.Fatalf("InitStars = %d", c)
	}
	want := starfield.Generate(starfield.DefaultSeed, 12).At(1.5, nil)
	stars := n.StarPositions(1.5, nil)
	for i := range want {
		if stars[i] != want[i] {
			t.Fatalf("star %d = %+v, want %+v", i, stars[i], want[i])
		}
	}
	if face, ok := n.ResolvePick(3); !ok || face != 2 {
		t.Errorf("ResolvePick(3) = %d, %v", face, ok)
	}
	if len(n.SplashLines()) != len(uitext.Default().Splash) {
		t.Error("splash lines differ from the embedded tables")
	}
	if n.TakeElapsed() <= 0 {
		t.Error("no time metered")
	}
	if n.TakeElapsed() != 0 {
		t.Error("TakeElapsed did not reset")
	}
	if err := n.Close(); err != nil {
		t.Error(err)
	}
}

func TestNativeOptions(t *testing.T) {
	if _, err := NewNative(Options{Mixer: "watercolor"}); !errors.Is(err, mixer.ErrUnknownStrategy) {
		t.Errorf("err = %v", err)
	}
	n, err := NewNative(Options{Mixer: "pigment", Step: 15, Text: &uitext.Tables{}})
	if err != nil {
		t.Fatal(err)
	}
	if got := n.MixColor(colors.White, colors.RGB{B: 0.3}); got != (colors.RGB{B: 0.3}) {
		t.Errorf("pigment on white = %v", got)
	}
	if d := n.MapInput('E'); d != (input.Delta{DZ: 15}) {
		t.Errorf("MapInput(E) = %+v", d)
	}
	if len(n.ControlLines()) != 0 {
		t.Error("custom text provider ignored")
	}
}
