package bench

import (
	"math"
	"strings"
	"testing"
	"time"
)

// fakeClock advances by the durations queued with step.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) step(d time.Duration) { c.t = c.t.Add(d) }

func newMonitor(c *fakeClock) *Monitor {
	return &Monitor{now: c.now, rss: func() (int64, bool) { return 2048, true }}
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestFrameAverages(t *testing.T) {
	c := &fakeClock{t: time.Unix(0, 0)}
	m := newMonitor(c)

	for _, ms := range []int{10, 20, 30} {
		m.FrameBegin()
		m.AddScript(100 * time.Microsecond)
		m.RenderBegin()
		c.step(200 * time.Microsecond)
		m.RenderEnd()
		c.step(time.Duration(ms)*time.Millisecond - 200*time.Microsecond)
		m.FrameEnd()
	}

	st := m.Stats()
	if !approx(st.FrameMs, 20) {
		t.Errorf("FrameMs = %v, want 20", st.FrameMs)
	}
	if !approx(st.ScriptUs, 100) {
		t.Errorf("ScriptUs = %v, want 100", st.ScriptUs)
	}
	if !approx(st.RenderUs, 200) {
		t.Errorf("RenderUs = %v, want 200", st.RenderUs)
	}
	if st.RSSKiB != 2048 {
		t.Errorf("RSSKiB = %d, want 2048", st.RSSKiB)
	}
	if st.FPS != 0 {
		t.Errorf("FPS before the window fills = %v, want 0", st.FPS)
	}
}

func TestFPSWindow(t *testing.T) {
	c := &fakeClock{t: time.Unix(0, 0)}
	m := newMonitor(c)
	for i := 0; i < 50; i++ {
		m.FrameBegin()
		c.step(10 * time.Millisecond)
		m.FrameEnd()
	}
	if got := m.Stats().FPS; !approx(got, 100) {
		t.Errorf("FPS = %v, want 100", got)
	}
}

func TestHistoryIsBounded(t *testing.T) {
	c := &fakeClock{t: time.Unix(0, 0)}
	m := newMonitor(c)
	for i := 0; i < History; i++ {
		m.FrameBegin()
		c.step(100 * time.Millisecond)
		m.FrameEnd()
	}
	for i := 0; i < History; i++ {
		m.FrameBegin()
		c.step(time.Millisecond)
		m.FrameEnd()
	}
	if got := m.Stats().FrameMs; !approx(got, 1) {
		t.Errorf("FrameMs = %v, want 1 once old frames rotate out", got)
	}
}

func TestScriptResetsPerFrame(t *testing.T) {
	c := &fakeClock{t: time.Unix(0, 0)}
	m := newMonitor(c)
	m.FrameBegin()
	m.AddScript(time.Millisecond)
	m.AddScript(-time.Second)
	m.FrameEnd()
	m.FrameBegin()
	m.FrameEnd()
	if got := m.Stats().ScriptUs; !approx(got, 500) {
		t.Errorf("ScriptUs = %v, want 500", got)
	}
}

func TestSetTextures(t *testing.T) {
	m := newMonitor(&fakeClock{})
	m.SetTextures(3, 3*512*512*4)
	st := m.Stats()
	if st.Textures != 3 || st.TextureKiB != 3072 {
		t.Errorf("textures = %d / %d KiB, want 3 / 3072", st.Textures, st.TextureKiB)
	}
}

func TestParseRSS(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   int64
		wantOK bool
	}{
		{"present", "Name:\tpaintcube\nVmPeak:\t  9000 kB\nVmRSS:\t  51234 kB\n", 51234, true},
		{"missing", "Name:\tpaintcube\n", 0, false},
		{"empty value", "VmRSS:\n", 0, false},
		{"garbage", "VmRSS: lots kB\n", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRSS(strings.NewReader(tt.in))
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseRSS = %d, %v; want %d, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
