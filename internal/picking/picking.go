// Package picking resolves mouse clicks to cube faces by reading back an
// offscreen pass where each face is drawn in a flat identification color.
package picking

import (
	"fmt"
	"log/slog"

	"paintcube/internal/logger"
)

// Faces is the number of pickable faces. Index colors 1..Faces map to faces
// 0..Faces-1; 0 is the cleared background.
const Faces = 6

// IndexColor returns the flat color face i is drawn with in the index pass.
func IndexColor(face int) (r, g, b uint8) {
	return uint8(face + 1), 0, 0
}

// FlipY converts a window Y (origin top-left) to a framebuffer row
// (origin bottom-left).
func FlipY(y, height int) int {
	return height - y - 1
}

// Decode maps the red channel read from the index pass to a face.
func Decode(pixelR int) (int, bool) {
	if pixelR < 1 || pixelR > Faces {
		return 0, false
	}
	return pixelR - 1, true
}

// IndexPass draws the index pass, reads one pixel and clears the target.
// x and row are framebuffer coordinates with the origin at the bottom-left.
type IndexPass interface {
	ReadIndex(x, row int) (int, error)
	Height() int
}

// Resolver turns a raw index value into a face. The scripting bridge
// implements it; DecodeResolver is the native version.
type Resolver interface {
	ResolvePick(pixelR int) (int, bool)
}

// DecodeResolver resolves with Decode.
type DecodeResolver struct{}

func (DecodeResolver) ResolvePick(pixelR int) (int, bool) { return Decode(pixelR) }

// Selector receives a successful pick. *face.Cube implements it.
type Selector interface {
	Select(i int) bool
}

// Picker ties an index pass to a resolver.
type Picker struct {
	Pass     IndexPass
	Resolver Resolver
	Log      *slog.Logger
}

// Pick resolves the window position (x, y) and selects the face under it.
// Misses leave the selection unchanged and report false.
func (p *Picker) Pick(sel Selector, x, y int) (int, bool) {
	if p.Pass == nil {
		return 0, false
	}
	h := p.Pass.Height()
	if x < 0 || y < 0 || y >= h {
		return 0, false
	}
	r, err := p.Pass.ReadIndex(x, FlipY(y, h))
	if err != nil {
		p.logger().Warn("pick readback failed", "x", x, "y", y, "err", err)
		return 0, false
	}
	face, ok := p.resolve(r)
	if !ok {
		p.logger().Debug("pick missed", "x", x, "y", y, "index", r)
		return 0, false
	}
	if sel != nil && !sel.Select(face) {
		p.logger().Warn("pick resolved out of range", "face", face)
		return 0, false
	}
	p.logger().Info(fmt.Sprintf("picked face %d", face), "x", x, "y", y)
	return face, true
}

func (p *Picker) resolve(r int) (int, bool) {
	if p.Resolver == nil {
		return Decode(r)
	}
	face, ok := p.Resolver.ResolvePick(r)
	if !ok || face < 0 || face >= Faces {
		return 0, false
	}
	return face, true
}

func (p *Picker) logger() *slog.Logger { return logger.Or(p.Log) }
