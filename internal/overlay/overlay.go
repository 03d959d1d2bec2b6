// Package overlay lays out the 2D panels drawn over the scene: splash,
// controls button and panel, zoom indicator, status message and console.
//
// Layout is pure. Build returns a display list that render.Painter draws,
// so positions and text can be checked without a window.
package overlay

import (
	"fmt"
	"image/color"

	"github.com/jinzhu/copier"

	"paintcube/internal/colors"
	"paintcube/internal/theme"
	"paintcube/internal/uitext"
)

// ControlsLabel is the text on the controls button.
const ControlsLabel = "Controls"

// consoleRows is how many log lines the console bar shows.
const consoleRows = 6

// State is what the overlays show for one frame.
type State struct {
	Splash       bool
	Controls     bool
	ConsoleOpen  bool
	ConsoleInput string
	Selected     int
	HasTexture   bool
	Scale        float32
	Degrees      int
	Message      string
}

// StateFrom copies the fields of src that State shares by name.
func StateFrom(src any) (State, error) {
	var st State
	if err := copier.Copy(&st, src); err != nil {
		return State{}, fmt.Errorf("overlay state: %w", err)
	}
	return st, nil
}

// ZoomText is the indicator shown while the selected face has an image.
func ZoomText(st State) string {
	return fmt.Sprintf("Face %d | Zoom: %.1fx | Rot: %d°  [up/down zoom  left/right rotate]",
		st.Selected, st.Scale, st.Degrees)
}

// Kind selects how an Item is drawn.
type Kind int

const (
	// Fill is a solid rectangle.
	Fill Kind = iota
	// Outline is a one pixel rectangle border.
	Outline
	// Text is a string with its top-left at X, Y.
	Text
)

// Item is one draw call.
type Item struct {
	Kind       Kind
	X, Y, W, H int32
	Color      color.RGBA
	Text       string
	Size       int32
}

// Measurer returns the pixel width of text at a font size.
type Measurer interface {
	MeasureText(text string, size int32) int32
}

// FixedWidth measures every glyph as half the font size wide.
type FixedWidth struct{}

func (FixedWidth) MeasureText(text string, size int32) int32 {
	return int32(len([]rune(text))) * size / 2
}

// Console supplies the newest log lines.
type Console interface {
	Lines(n int) []string
}

// Overlay builds display lists from a State.
type Overlay struct {
	theme   *theme.Theme
	text    uitext.Provider
	console Console
	measure Measurer
	items   []Item
}

// New returns an overlay. A nil theme uses the embedded one, a nil text
// provider the native tables and a nil measurer FixedWidth.
func New(th *theme.Theme, text uitext.Provider, console Console, m Measurer) *Overlay {
	if th == nil {
		th = theme.New(nil)
	}
	if text == nil {
		text = uitext.Default()
	}
	if m == nil {
		m = FixedWidth{}
	}
	return &Overlay{theme: th, text: text, console: console, measure: m}
}

// SetMeasurer replaces the text measurer, e.g. once a font is loaded.
func (o *Overlay) SetMeasurer(m Measurer) {
	if m != nil {
		o.measure = m
	}
}

// Build lays out every visible panel for a w×h screen. The splash is last so
// it covers the rest. The returned slice is reused by the next call.
func (o *Overlay) Build(st State, w, h int32) []Item {
	o.items = o.items[:0]
	o.controls(st, w, h)
	if st.HasTexture {
		o.label("zoom", ZoomText(st), w, h)
	}
	if st.Message != "" && !st.ConsoleOpen {
		o.label("message", st.Message, w, h)
	}
	if st.ConsoleOpen {
		o.consoleBar(st, w, h)
	}
	if st.Splash {
		o.splash(w, h)
	}
	return o.items
}

func (o *Overlay) panel(st theme.Style, x, y, w, h int32) {
	if st.Background.A > 0 {
		o.items = append(o.items, Item{Kind: Fill, X: x, Y: y, W: w, H: h, Color: st.Background})
	}
	if st.HasBorder {
		o.items = append(o.items, Item{Kind: Outline, X: x, Y: y, W: w, H: h, Color: st.Border})
	}
}

func (o *Overlay) text1(s string, x, y, size int32, c color.RGBA) {
	o.items = append(o.items, Item{Kind: Text, X: x, Y: y, Text: s, Size: size, Color: c})
}

func (o *Overlay) controls(st State, w, h int32) {
	bs := o.theme.Style("controls-button")
	bx, by, bw, bh := bs.Rect(w, h)
	o.panel(bs, bx, by, bw, bh)
	o.text1(ControlsLabel, bx+(bw-o.measure.MeasureText(ControlsLabel, bs.FontSize))/2, by+bs.Padding, bs.FontSize, bs.Color)
	if !st.Controls {
		return
	}
	ps := o.theme.Style("controls-panel")
	px, py, pw, ph := ps.Rect(w, h)
	o.panel(ps, px, py, pw, ph)
	o.lines(o.text.ControlLines(), ps, px, py, pw)
}

func (o *Overlay) splash(w, h int32) {
	ss := o.theme.Style("splash")
	x, y, pw, ph := ss.Rect(w, h)
	o.panel(ss, x, y, pw, ph)
	o.lines(o.text.SplashLines(), ss, x, y, pw)
}

// lines stacks uitext lines from the top of a panel, each advancing by its
// step scaled to the panel's font size.
func (o *Overlay) lines(ls []uitext.Line, st theme.Style, x, y, w int32) {
	ty := y + st.Padding
	for _, l := range ls {
		tx := x + st.Padding
		if l.Centered {
			tx = x + (w-o.measure.MeasureText(l.Text, st.FontSize))/2
		}
		if l.Text != "" {
			o.text1(l.Text, tx, ty, st.FontSize, lineColor(l.Color))
		}
		step := l.Step
		if step <= 0 {
			step = uitext.DefaultStep
		}
		ty += int32(step * float32(st.FontSize) / uitext.DefaultStep)
	}
}

func lineColor(c colors.RGB) color.RGBA {
	r, g, b := c.Bytes()
	return color.RGBA{R: r, G: g, B: b, A: 235}
}

func (o *Overlay) label(class, s string, w, h int32) {
	st := o.theme.Style(class)
	x, y, lw, lh := st.Rect(w, h)
	if tw := o.measure.MeasureText(s, st.FontSize) + 2*st.Padding; tw > lw {
		lw = tw
	}
	o.panel(st, x, y, lw, lh)
	o.text1(s, x+st.Padding, y+st.Padding, st.FontSize, st.Color)
}

func (o *Overlay) consoleBar(st State, w, h int32) {
	cs := o.theme.Style("console")
	x, y, cw, ch := cs.Rect(w, h)
	o.panel(cs, x, y, cw, ch)
	lineH := cs.FontSize + 4
	rows := consoleRows
	if fit := int((ch - 2*cs.Padding - lineH) / lineH); fit < rows {
		rows = max(fit, 0)
	}
	ty := y + cs.Padding
	if o.console != nil && rows > 0 {
		for _, l := range o.console.Lines(rows) {
			o.text1(l, x+cs.Padding, ty, cs.FontSize, cs.Color)
			ty += lineH
		}
	}
	o.text1("> "+st.ConsoleInput+"_", x+cs.Padding, y+ch-cs.Padding-cs.FontSize, cs.FontSize, cs.Color)
}
