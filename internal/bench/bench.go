// Package bench measures frame, script and render time for the benchmark HUD.
package bench

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// History is the number of frames averaged for frame, script and render time.
	History = 90
	// FPSWindow is how much frame time is accumulated before FPS is recomputed.
	FPSWindow = 500 * time.Millisecond
)

// Snapshot is one frame's measurements.
type Snapshot struct {
	Frame  time.Duration
	Script time.Duration
	Render time.Duration
}

// Stats is what the HUD shows.
type Stats struct {
	FPS        float64
	FrameMs    float64
	ScriptUs   float64
	RenderUs   float64
	RSSKiB     int64
	Textures   int
	TextureKiB int64
}

// Monitor collects per-frame timings. It is driven from the frame loop and
// is not safe for concurrent use.
type Monitor struct {
	now func() time.Time
	rss func() (int64, bool)

	frameStart  time.Time
	renderStart time.Time
	script      time.Duration
	render      time.Duration

	history [History]Snapshot
	next    int
	filled  int

	frames   int
	fpsAccum time.Duration
	fps      float64

	textures   int
	textureKiB int64
}

// New returns a monitor reading the wall clock and /proc/self/status.
func New() *Monitor {
	return &Monitor{now: time.Now, rss: ProcRSS}
}

// FrameBegin starts a frame and resets the per-frame accumulators.
func (m *Monitor) FrameBegin() {
	m.frameStart = m.now()
	m.script = 0
	m.render = 0
}

// FrameEnd closes the frame started by FrameBegin.
func (m *Monitor) FrameEnd() {
	frame := m.now().Sub(m.frameStart)
	m.push(Snapshot{Frame: frame, Script: m.script, Render: m.render})

	m.frames++
	m.fpsAccum += frame
	if m.fpsAccum >= FPSWindow {
		m.fps = float64(m.frames) / m.fpsAccum.Seconds()
		m.frames = 0
		m.fpsAccum = 0
	}
}

// AddScript adds time spent in script calls during this frame.
func (m *Monitor) AddScript(d time.Duration) {
	if d > 0 {
		m.script += d
	}
}

// RenderBegin marks the start of a render section.
func (m *Monitor) RenderBegin() { m.renderStart = m.now() }

// RenderEnd adds the time since RenderBegin to this frame's render time.
func (m *Monitor) RenderEnd() { m.render += m.now().Sub(m.renderStart) }

// SetTextures records the live texture count and their size in bytes.
func (m *Monitor) SetTextures(count int, bytes int64) {
	m.textures = count
	m.textureKiB = bytes / 1024
}

func (m *Monitor) push(s Snapshot) {
	m.history[m.next] = s
	m.next = (m.next + 1) % History
	if m.filled < History {
		m.filled++
	}
}

// Stats returns the current averages. RSS is read on every call.
func (m *Monitor) Stats() Stats {
	st := Stats{FPS: m.fps, Textures: m.textures, TextureKiB: m.textureKiB}
	if m.filled > 0 {
		var frame, script, render time.Duration
		for _, s := range m.history[:m.filled] {
			frame += s.Frame
			script += s.Script
			render += s.Render
		}
		n := float64(m.filled)
		st.FrameMs = float64(frame) / float64(time.Millisecond) / n
		st.ScriptUs = float64(script) / float64(time.Microsecond) / n
		st.RenderUs = float64(render) / float64(time.Microsecond) / n
	}
	if m.rss != nil {
		if kb, ok := m.rss(); ok {
			st.RSSKiB = kb
		}
	}
	return st
}

// ProcRSS reads the resident set size from /proc/self/status. It reports
// false where the file does not exist.
func ProcRSS() (int64, bool) {
	f, err := os.Open("/proc/self/status")
	if err != nil {
		return 0, false
	}
	defer f.Close()
	return ParseRSS(f)
}

// ParseRSS finds the "VmRSS: N kB" line in a proc status listing.
func ParseRSS(r io.Reader) (int64, bool) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		rest, ok := strings.CutPrefix(line, "VmRSS:")
		if !ok {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			return 0, false
		}
		kb, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return 0, false
		}
		return kb, true
	}
	return 0, false
}
