package overlay

import (
	"strings"
	"testing"

	"paintcube/internal/uitext"
)

type fakeConsole struct {
	lines []string
	asked int
}

func (c *fakeConsole) Lines(n int) []string {
	c.asked = n
	if n < len(c.lines) {
		return c.lines[len(c.lines)-n:]
	}
	return c.lines
}

// source mirrors the fields app.Status carries.
type source struct {
	Splash       bool
	Controls     bool
	HUD          bool
	ConsoleOpen  bool
	ConsoleInput string
	Selected     int
	FaceName     string
	HasTexture   bool
	Scale        float32
	Degrees      int
	Message      string
}

func texts(items []Item) []string {
	var out []string
	for _, it := range items {
		if it.Kind == Text {
			out = append(out, it.Text)
		}
	}
	return out
}

func find(items []Item, text string) (Item, bool) {
	for _, it := range items {
		if it.Kind == Text && it.Text == text {
			return it, true
		}
	}
	return Item{}, false
}

func TestStateFrom(t *testing.T) {
	st, err := StateFrom(&source{
		Splash: true, ConsoleInput: "cmd", Selected: 4, FaceName: "Right",
		HasTexture: true, Scale: 1.5, Degrees: 90, Message: "hi",
	})
	if err != nil {
		t.Fatal(err)
	}
	want := State{Splash: true, ConsoleInput: "cmd", Selected: 4, HasTexture: true, Scale: 1.5, Degrees: 90, Message: "hi"}
	if st != want {
		t.Errorf("StateFrom = %+v, want %+v", st, want)
	}
}

func TestZoomText(t *testing.T) {
	got := ZoomText(State{Selected: 2, Scale: 1.5, Degrees: 90})
	want := "Face 2 | Zoom: 1.5x | Rot: 90°  [up/down zoom  left/right rotate]"
	if got != want {
		t.Errorf("ZoomText = %q, want %q", got, want)
	}
}

func TestBuild(t *testing.T) {
	tables := uitext.Default()
	tests := []struct {
		name    string
		st      State
		want    []string
		notWant []string
	}{
		{"button only", State{}, []string{ControlsLabel}, []string{tables.Controls[1].Text}},
		{"controls panel", State{Controls: true}, []string{tables.Controls[1].Text}, nil},
		{"zoom indicator", State{HasTexture: true, Scale: 2, Selected: 1}, []string{"Face 1 | Zoom: 2.0x | Rot: 0°  [up/down zoom  left/right rotate]"}, nil},
		{"no zoom without texture", State{Scale: 2}, nil, []string{"Face 0 | Zoom: 2.0x | Rot: 0°  [up/down zoom  left/right rotate]"}},
		{"message", State{Message: "loaded"}, []string{"loaded"}, nil},
		{"console hides message", State{Message: "loaded", ConsoleOpen: true, ConsoleInput: "cmd"}, []string{"> cmd_", "old"}, []string{"loaded"}},
		{"splash", State{Splash: true}, []string{tables.Splash[0].Text}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := New(nil, nil, &fakeConsole{lines: []string{"old"}}, nil)
			got := strings.Join(texts(o.Build(tt.st, 800, 600)), "\n")
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("missing %q in\n%s", w, got)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(got, w) {
					t.Errorf("unexpected %q in\n%s", w, got)
				}
			}
		})
	}
}

func TestSplashIsDrawnLast(t *testing.T) {
	o := New(nil, nil, nil, nil)
	items := o.Build(State{Splash: true, Controls: true, HasTexture: true, Scale: 1}, 800, 600)
	last := items[len(items)-1]
	splash := uitext.Default().Splash
	if last.Text != splash[len(splash)-1].Text {
		t.Errorf("last item = %+v, want the final splash line", last)
	}
}

func TestControlsButtonPosition(t *testing.T) {
	o := New(nil, nil, nil, nil)
	items := o.Build(State{}, 800, 600)
	if items[0].Kind != Fill {
		t.Fatalf("first item = %+v, want the button fill", items[0])
	}
	// 96x28 flush right with a 10px margin.
	if items[0].X != 694 || items[0].Y != 10 || items[0].W != 96 || items[0].H != 28 {
		t.Errorf("button = %+v", items[0])
	}
}

func TestCenteredLines(t *testing.T) {
	o := New(nil, nil, nil, nil)
	items := o.Build(State{Splash: true}, 800, 600)
	title := uitext.Default().Splash[0]
	it, ok := find(items, title.Text)
	if !ok {
		t.Fatal("title missing")
	}
	// The splash is 520 wide at 50% of 800 with no margin: x = 140.
	w := FixedWidth{}.MeasureText(title.Text, it.Size)
	if want := int32(140) + (520-w)/2; it.X != want {
		t.Errorf("title x = %d, want %d", it.X, want)
	}
}

func TestConsoleRowsFitBar(t *testing.T) {
	c := &fakeConsole{lines: []string{"a", "b", "c", "d", "e", "f", "g", "h"}}
	o := New(nil, nil, c, nil)
	o.Build(State{ConsoleOpen: true}, 800, 600)
	if c.asked < 1 || c.asked > consoleRows {
		t.Errorf("console asked for %d lines", c.asked)
	}
}

func TestLongLabelGrows(t *testing.T) {
	o := New(nil, nil, nil, nil)
	msg := strings.Repeat("x", 100)
	items := o.Build(State{Message: msg}, 800, 600)
	for i, it := range items {
		if it.Kind == Text && it.Text == msg {
			bg := items[i-1]
			need := FixedWidth{}.MeasureText(msg, it.Size)
			if bg.W < need {
				t.Errorf("label width %d does not fit text", bg.W)
			}
			return
		}
	}
	t.Fatal("message not found")
}
