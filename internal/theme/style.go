package theme

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Style holds resolved values used for drawing a panel.
// LeftPct/TopPct are 0-100 for percentage positioning; -1 means Left/Top are
// pixels. Percentages place the box inside the screen minus its size and
// margin, so 100% is flush right or bottom.
type Style struct {
	Background color.RGBA
	Color      color.RGBA
	Border     color.RGBA
	HasBorder  bool
	Width      int32
	Height     int32
	Left       int32
	Top        int32
	LeftPct    int32
	TopPct     int32
	Margin     int32
	Padding    int32
	FontSize   int32
}

// DefaultStyle is a transparent box with white 20px text.
func DefaultStyle() Style {
	return Style{
		Color:    color.RGBA{255, 255, 255, 255},
		Border:   color.RGBA{0, 0, 0, 255},
		LeftPct:  -1,
		TopPct:   -1,
		Padding:  4,
		FontSize: 20,
	}
}

// ParseColor parses #RGB, #RRGGBB or #RRGGBBAA.
func ParseColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.RGBA{}, false
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, false
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: alpha}, true
}

// ParsePx parses a number with an optional "px" suffix.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParsePct parses "N%" with N in 0..100.
func ParsePct(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[len(s)-1] != '%' {
		return 0, false
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}

// Resolve builds a Style from merged properties. Unknown keys and bad values
// are ignored.
func Resolve(props map[string]string) Style {
	out := DefaultStyle()
	for k, v := range props {
		switch k {
		case "background":
			if c, ok := ParseColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseColor(v); ok {
				out.Color = c
			}
		case "border":
			if c, ok := ParseColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Width = n
			}
		case "height":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Height = n
			}
		case "left", "x":
			if pct, ok := ParsePct(v); ok {
				out.LeftPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Left = n
			}
		case "top", "y":
			if pct, ok := ParsePct(v); ok {
				out.TopPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Top = n
			}
		case "margin":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Margin = n
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		}
	}
	return out
}

// Rect places the box on a screen. A zero width stretches to the screen
// width minus margins.
func (st Style) Rect(screenW, screenH int32) (x, y, w, h int32) {
	w, h = st.Width, st.Height
	if w == 0 {
		w = screenW - 2*st.Margin
	}
	x, y = st.Left+st.Margin, st.Top+st.Margin
	if st.LeftPct >= 0 {
		x = st.Margin + (screenW-w-2*st.Margin)*st.LeftPct/100
	}
	if st.TopPct >= 0 {
		y = st.Margin + (screenH-h-2*st.Margin)*st.TopPct/100
	}
	return x, y, w, h
}

// Theme caches resolved styles per class.
type Theme struct {
	sheet *Stylesheet
	cache map[string]Style
}

// New wraps sheet; nil means Default.
func New(sheet *Stylesheet) *Theme {
	if sheet == nil {
		sheet = Default()
	}
	return &Theme{sheet: sheet, cache: make(map[string]Style)}
}

// Style returns the resolved style for a class.
func (t *Theme) Style(class string) Style {
	if st, ok := t.cache[class]; ok {
		return st
	}
	st := Resolve(t.sheet.Props(class, ""))
	t.cache[class] = st
	return st
}

// Stylesheet returns the wrapped sheet.
func (t *Theme) Stylesheet() *Stylesheet { return t.sheet }
