package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"paintcube/internal/face"
)

// Renderer draws a face.Cube. Pattern tiles are uploaded on first use so
// GPU resources are created after the window exists.
type Renderer struct {
	tiles  map[face.Pattern]rl.Texture2D
	passes []face.Pass
	blend  bool
}

// NewRenderer returns a renderer with no GPU resources yet.
func NewRenderer() *Renderer {
	return &Renderer{
		tiles:  make(map[face.Pattern]rl.Texture2D),
		passes: make([]face.Pass, 0, face.Count*2),
		blend:  true,
	}
}

// tile returns the repeating texture for p, creating it if needed.
func (r *Renderer) tile(p face.Pattern) rl.Texture2D {
	if tex, ok := r.tiles[p]; ok {
		return tex
	}
	img := face.Tile(p, face.TileSize)
	b := img.Bounds()
	tex := rl.LoadTextureFromImage(rl.NewImage(img.Pix, int32(b.Dx()), int32(b.Dy()), 1, rl.UncompressedR8g8b8a8))
	rl.SetTextureWrap(tex, rl.WrapRepeat)
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	r.tiles[p] = tex
	return tex
}

// Draw renders the cube with its rotation. Call between BeginMode3D and
// EndMode3D.
func (r *Renderer) Draw(c *face.Cube) {
	rl.PushMatrix()
	rotate(c.Rotation())
	r.passes = c.AllPasses(r.passes[:0])
	for i := range r.passes {
		r.drawPass(&r.passes[i])
	}
	r.setBlend(true)
	rl.PopMatrix()
}

func (r *Renderer) drawPass(p *face.Pass) {
	var id uint32
	switch p.Kind {
	case face.PassPattern:
		id = r.tile(p.Pattern).ID
	case face.PassTexture:
		if t, ok := p.Texture.(*Texture); ok {
			id = t.ID()
		}
	}
	r.setBlend(p.Blend)
	red, green, blue := p.Color.Bytes()
	quad(p.Vertices, p.UV, face.Normals[p.Face], id, red, green, blue)
}

// setBlend toggles GL blending. The batch is flushed first because rlgl
// applies the state immediately.
func (r *Renderer) setBlend(on bool) {
	if r.blend == on {
		return
	}
	rl.DrawRenderBatchActive()
	if on {
		rl.EnableColorBlend()
	} else {
		rl.DisableColorBlend()
	}
	r.blend = on
}

// Close unloads the pattern tiles.
func (r *Renderer) Close() {
	for p, tex := range r.tiles {
		rl.UnloadTexture(tex)
		delete(r.tiles, p)
	}
}

// rotate applies the cube's X, Y then Z rotation in degrees.
func rotate(rot mgl32.Vec3) {
	rl.Rotatef(rot.X(), 1, 0, 0)
	rl.Rotatef(rot.Y(), 0, 1, 0)
	rl.Rotatef(rot.Z(), 0, 0, 1)
}

// quad emits one textured quad. id 0 draws untextured.
func quad(v [4]mgl32.Vec3, uv [4]mgl32.Vec2, n mgl32.Vec3, id uint32, red, green, blue uint8) {
	rl.SetTexture(id)
	rl.Begin(rl.Quads)
	rl.Color4ub(red, green, blue, 255)
	rl.Normal3f(n.X(), n.Y(), n.Z())
	for k := range v {
		rl.TexCoord2f(uv[k].X(), uv[k].Y())
		rl.Vertex3f(v[k].X(), v[k].Y(), v[k].Z())
	}
	rl.End()
	rl.SetTexture(0)
}
