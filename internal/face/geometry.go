package face

import (
	"github.com/go-gl/mathgl/mgl32"

	"paintcube/internal/colors"
)

// DepthBias is how far an overlay quad is pushed along the face normal so it
// wins the depth test against the coincident base quad.
const DepthBias float32 = 0.002

// PatternRepeat is how many times a pattern tile repeats across a face.
const PatternRepeat = 4

// Corners lists each face's vertices counter-clockwise as seen from outside:
// bottom-left, bottom-right, top-right, top-left.
var Corners = [Count][4]mgl32.Vec3{
	{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},     // front  +Z
	{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}, // back   -Z
	{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}},     // top    +Y
	{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}, // bottom -Y
	{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}},     // right  +X
	{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}, // left   -X
}

// Normals are the outward unit normals by face.
var Normals = [Count]mgl32.Vec3{
	{0, 0, 1}, {0, 0, -1}, {0, 1, 0}, {0, -1, 0}, {1, 0, 0}, {-1, 0, 0},
}

// UVTable gives the texture coordinate for each corner (BL, BR, TR, TL) for
// 0, 90, 180 and 270 degree clockwise image rotations. V grows downward, so
// (0,0) is the image's top-left.
var UVTable = [4][4]mgl32.Vec2{
	{{0, 1}, {1, 1}, {1, 0}, {0, 0}},
	{{1, 1}, {1, 0}, {0, 0}, {0, 1}},
	{{1, 0}, {0, 0}, {0, 1}, {1, 1}},
	{{0, 0}, {0, 1}, {1, 1}, {1, 0}},
}

// UVRange returns the sampled texture window for a zoom. Scales at or above 1
// shrink the window toward the center; smaller scales sample the full image.
func UVRange(scale float32) (lo, hi float32) {
	s := ClampScale(scale)
	if s < 1 {
		return 0, 1
	}
	return 0.5 - 0.5/s, 0.5 + 0.5/s
}

// QuadUV returns the corner UVs for a rotation and zoom.
func QuadUV(rotation int, scale float32) [4]mgl32.Vec2 {
	lo, hi := UVRange(scale)
	base := UVTable[WrapRotation(rotation, 0)]
	var out [4]mgl32.Vec2
	for i, uv := range base {
		out[i] = mgl32.Vec2{lo + uv.X()*(hi-lo), lo + uv.Y()*(hi-lo)}
	}
	return out
}

// Centroid returns the mean of a quad's corners.
func Centroid(q [4]mgl32.Vec3) mgl32.Vec3 {
	return q[0].Add(q[1]).Add(q[2]).Add(q[3]).Mul(0.25)
}

// QuadVertices returns face i's corners for a zoom. Scales below 1 pull the
// corners toward the centroid; other scales keep the full face.
func QuadVertices(i int, scale float32) [4]mgl32.Vec3 {
	q := Corners[i]
	s := ClampScale(scale)
	if s >= 1 {
		return q
	}
	c := Centroid(q)
	for k := range q {
		q[k] = c.Add(q[k].Sub(c).Mul(s))
	}
	return q
}

// Offset moves every corner d units along n.
func Offset(q [4]mgl32.Vec3, n mgl32.Vec3, d float32) [4]mgl32.Vec3 {
	off := n.Mul(d)
	for k := range q {
		q[k] = q[k].Add(off)
	}
	return q
}

// PassKind selects how a Pass is drawn.
type PassKind int

const (
	// PassFlat is an untextured quad in Color.
	PassFlat PassKind = iota
	// PassPattern samples the Pattern tile, repeating, tinted by Color.
	PassPattern
	// PassTexture samples Texture untinted.
	PassTexture
)

// Pass is one quad draw. Passes for a face are drawn in order.
type Pass struct {
	Kind     PassKind
	Face     int
	Vertices [4]mgl32.Vec3
	UV       [4]mgl32.Vec2
	Color    colors.RGB
	Pattern  Pattern
	Texture  Texture
	Blend    bool
}

var fullUV = UVTable[0]

// Passes appends the draw passes for face i to dst.
//
// Textured faces draw the base color first when the image has alpha or is
// zoomed out, then the image nudged forward by DepthBias with blending on
// when it has alpha.
func (c *Cube) Passes(i int, dst []Pass) []Pass {
	f := c.Face(i)
	if f == nil {
		return dst
	}
	base := Pass{Kind: PassFlat, Face: i, Vertices: Corners[i], UV: fullUV, Color: f.color}
	switch f.State() {
	case Plain:
		return append(dst, base)
	case Patterned:
		p := base
		p.Kind = PassPattern
		p.Pattern = f.pattern
		for k, uv := range fullUV {
			p.UV[k] = uv.Mul(PatternRepeat)
		}
		return append(dst, p)
	}

	layered := f.hasAlpha || f.scale < 1
	tex := Pass{
		Kind:     PassTexture,
		Face:     i,
		Vertices: QuadVertices(i, f.scale),
		UV:       QuadUV(f.rotation, f.scale),
		Color:    colors.White,
		Texture:  f.texture.get(),
		Blend:    f.hasAlpha,
	}
	if !layered {
		return append(dst, tex)
	}
	tex.Vertices = Offset(tex.Vertices, Normals[i], DepthBias)
	return append(dst, base, tex)
}

// AllPasses appends the passes of every face in index order.
func (c *Cube) AllPasses(dst []Pass) []Pass {
	for i := 0; i < Count; i++ {
		dst = c.Passes(i, dst)
	}
	return dst
}
