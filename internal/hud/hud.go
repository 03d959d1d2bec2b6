// Package hud lays out the benchmark panel: FPS, frame time, script and
// render time, resident memory and face textures.
package hud

import (
	"fmt"

	"paintcube/internal/bench"
	"paintcube/internal/overlay"
	"paintcube/internal/theme"
)

// updateInterval: text is only rebuilt every N frames to limit allocations.
const updateInterval = 30

// Stats is implemented by *bench.Monitor.
type Stats interface {
	Stats() bench.Stats
}

// HUD holds the panel text between refreshes. Hidden by default.
type HUD struct {
	Visible bool

	stats Stats
	style theme.Style
	frame uint32
	lines []string
	items []overlay.Item
}

// New returns a hidden HUD reading s, styled by the theme's hud class.
func New(s Stats, th *theme.Theme) *HUD {
	if th == nil {
		th = theme.New(nil)
	}
	return &HUD{stats: s, style: th.Style("hud")}
}

// Lines formats stats the way the panel shows them.
func Lines(st bench.Stats) []string {
	rss := "n/a"
	if st.RSSKiB > 0 {
		rss = fmt.Sprintf("%d KiB", st.RSSKiB)
	}
	tex := fmt.Sprintf("%d tex / no image", st.Textures)
	if st.TextureKiB > 0 {
		tex = fmt.Sprintf("%d tex / ~%d KiB", st.Textures, st.TextureKiB)
	}
	return []string{
		"BENCH MONITOR",
		fmt.Sprintf("FPS         %.1f", st.FPS),
		fmt.Sprintf("Frame time  %.2f ms", st.FrameMs),
		fmt.Sprintf("Render      %.0f us", st.RenderUs),
		fmt.Sprintf("Script      %.0f us", st.ScriptUs),
		fmt.Sprintf("Mem RSS     %s", rss),
		fmt.Sprintf("Textures    %s", tex),
	}
}

// Build returns the panel for a w×h screen, or nothing when hidden. Call
// once per frame.
func (h *HUD) Build(w, ht int32) []overlay.Item {
	h.items = h.items[:0]
	if !h.Visible || h.stats == nil {
		return h.items
	}
	h.frame++
	if h.lines == nil || h.frame%updateInterval == 0 {
		h.lines = Lines(h.stats.Stats())
	}

	st := h.style
	x, y, pw, ph := st.Rect(w, ht)
	if st.Background.A > 0 {
		h.items = append(h.items, overlay.Item{Kind: overlay.Fill, X: x, Y: y, W: pw, H: ph, Color: st.Background})
	}
	if st.HasBorder {
		h.items = append(h.items, overlay.Item{Kind: overlay.Outline, X: x, Y: y, W: pw, H: ph, Color: st.Border})
	}
	ty := y + st.Padding
	for _, l := range h.lines {
		h.items = append(h.items, overlay.Item{Kind: overlay.Text, X: x + st.Padding, Y: ty, Text: l, Size: st.FontSize, Color: st.Color})
		ty += st.FontSize + 4
	}
	return h.items
}
