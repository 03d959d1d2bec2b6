package hud

import (
	"testing"

	"paintcube/internal/bench"
	"paintcube/internal/overlay"
)

type fakeStats struct {
	st    bench.Stats
	calls int
}

func (f *fakeStats) Stats() bench.Stats {
	f.calls++
	return f.st
}

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		st   bench.Stats
		want map[int]string
	}{
		{
			name: "full",
			st:   bench.Stats{FPS: 59.94, FrameMs: 16.678, RenderUs: 812.4, ScriptUs: 33.6, RSSKiB: 51234, Textures: 2, TextureKiB: 2048},
			want: map[int]string{
				1: "FPS         59.9",
				2: "Frame time  16.68 ms",
				3: "Render      812 us",
				4: "Script      34 us",
				5: "Mem RSS     51234 KiB",
				6: "Textures    2 tex / ~2048 KiB",
			},
		},
		{
			name: "no rss no images",
			st:   bench.Stats{},
			want: map[int]string{
				5: "Mem RSS     n/a",
				6: "Textures    0 tex / no image",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.st)
			for i, w := range tt.want {
				if got[i] != w {
					t.Errorf("line %d = %q, want %q", i, got[i], w)
				}
			}
		})
	}
}

func TestBuildHidden(t *testing.T) {
	s := &fakeStats{}
	h := New(s, nil)
	if items := h.Build(800, 600); len(items) != 0 {
		t.Errorf("hidden HUD built %d items", len(items))
	}
	if s.calls != 0 {
		t.Errorf("hidden HUD read stats %d times", s.calls)
	}
}

func TestBuildRefreshInterval(t *testing.T) {
	s := &fakeStats{st: bench.Stats{FPS: 60}}
	h := New(s, nil)
	h.Visible = true
	for i := 0; i < updateInterval*2; i++ {
		h.Build(800, 600)
	}
	// First frame plus frames 30 and 60.
	if s.calls != 3 {
		t.Errorf("stats read %d times, want 3", s.calls)
	}
	items := h.Build(800, 600)
	var n int
	for _, it := range items {
		if it.Kind == overlay.Text {
			n++
		}
	}
	if n != len(Lines(bench.Stats{})) {
		t.Errorf("text items = %d", n)
	}
}
