package face

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"paintcube/internal/colors"
)

func TestCornersMatchNormals(t *testing.T) {
	for i := 0; i < Count; i++ {
		q := Corners[i]
		n := q[1].Sub(q[0]).Cross(q[3].Sub(q[0])).Normalize()
		if !n.ApproxEqual(Normals[i]) {
			t.Errorf("face %d winding normal %v, want %v", i, n, Normals[i])
		}
		if c := Centroid(q); !c.ApproxEqual(Normals[i]) {
			t.Errorf("face %d centroid %v, want %v", i, c, Normals[i])
		}
	}
}

func TestUVTableRotatesClockwise(t *testing.T) {
	for r := 0; r < 4; r++ {
		for k := 0; k < 4; k++ {
			if UVTable[r][k] != UVTable[0][(k+r)%4] {
				t.Errorf("UVTable[%d][%d] = %v, want %v", r, k, UVTable[r][k], UVTable[0][(k+r)%4])
			}
		}
	}
	// A quarter turn puts the image's top-left on the top-right corner.
	if UVTable[1][2] != (mgl32.Vec2{0, 0}) {
		t.Errorf("rotation 1 top-right = %v", UVTable[1][2])
	}
}

func TestUVRange(t *testing.T) {
	tests := []struct {
		scale, lo, hi float32
	}{
		{1, 0, 1},
		{2, 0.25, 0.75},
		{4, 0.375, 0.625},
		{0.5, 0, 1},
		{9, 0.375, 0.625},
	}
	for _, tt := range tests {
		lo, hi := UVRange(tt.scale)
		if !near(lo, tt.lo) || !near(hi, tt.hi) {
			t.Errorf("UVRange(%v) = %v, %v; want %v, %v", tt.scale, lo, hi, tt.lo, tt.hi)
		}
	}
}

func TestQuadUV_ZoomAndRotation(t *testing.T) {
	got := QuadUV(1, 2)
	want := [4]mgl32.Vec2{{0.75, 0.75}, {0.75, 0.25}, {0.25, 0.25}, {0.25, 0.75}}
	for k := range got {
		if !got[k].ApproxEqual(want[k]) {
			t.Errorf("corner %d = %v, want %v", k, got[k], want[k])
		}
	}
	if QuadUV(-1, 1) != UVTable[3] {
		t.Error("negative rotation not wrapped")
	}
}

func TestQuadVertices(t *testing.T) {
	if QuadVertices(0, 2) != Corners[0] {
		t.Error("zoom-in moved the quad")
	}
	q := QuadVertices(0, 0.5)
	want := [4]mgl32.Vec3{{-0.5, -0.5, 1}, {0.5, -0.5, 1}, {0.5, 0.5, 1}, {-0.5, 0.5, 1}}
	for k := range q {
		if !q[k].ApproxEqual(want[k]) {
			t.Errorf("corner %d = %v, want %v", k, q[k], want[k])
		}
	}
}

func TestPasses(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		c := NewCube(nil, nil)
		c.Face(0).SetColor(colors.Red)
		ps := c.Passes(0, nil)
		if len(ps) != 1 || ps[0].Kind != PassFlat || ps[0].Color != colors.Red || ps[0].Blend {
			t.Fatalf("passes = %+v", ps)
		}
	})
	t.Run("patterned", func(t *testing.T) {
		c := NewCube(nil, nil)
		c.Face(2).SetPattern(int(PatternDots))
		ps := c.Passes(2, nil)
		if len(ps) != 1 || ps[0].Kind != PassPattern || ps[0].Pattern != PatternDots {
			t.Fatalf("passes = %+v", ps)
		}
		if ps[0].UV[1] != (mgl32.Vec2{PatternRepeat, PatternRepeat}) {
			t.Errorf("pattern UV = %v", ps[0].UV)
		}
	})
	t.Run("opaque texture", func(t *testing.T) {
		c, up := texturedCube(t, false)
		c.Face(0).RotateTexture(2)
		ps := c.Passes(0, nil)
		if len(ps) != 1 || ps[0].Kind != PassTexture || ps[0].Blend {
			t.Fatalf("passes = %+v", ps)
		}
		if ps[0].Texture != up.uploaded[0] || ps[0].Vertices != Corners[0] || ps[0].UV != UVTable[2] {
			t.Errorf("pass = %+v", ps[0])
		}
	})
	t.Run("alpha texture", func(t *testing.T) {
		c, _ := texturedCube(t, true)
		c.Face(0).SetColor(colors.Blue)
		ps := c.Passes(0, nil)
		if len(ps) != 2 || ps[0].Kind != PassFlat || ps[1].Kind != PassTexture {
			t.Fatalf("passes = %+v", ps)
		}
		if ps[0].Color != colors.Blue || !ps[1].Blend {
			t.Error("base not blue or overlay not blended")
		}
		if z := ps[1].Vertices[0].Z(); !near(z, 1+DepthBias) {
			t.Errorf("overlay z = %v, want %v", z, 1+DepthBias)
		}
	})
	t.Run("zoomed out opaque", func(t *testing.T) {
		c, _ := texturedCube(t, false)
		c.Face(0).SetScale(0.5)
		ps := c.Passes(0, nil)
		if len(ps) != 2 || ps[1].Blend {
			t.Fatalf("passes = %+v", ps)
		}
		if !near(ps[1].Vertices[0].X(), -0.5) || ps[1].UV != UVTable[0] {
			t.Errorf("overlay = %+v", ps[1])
		}
	})
	t.Run("all faces", func(t *testing.T) {
		if n := len(NewCube(nil, nil).AllPasses(nil)); n != Count {
			t.Errorf("AllPasses = %d", n)
		}
	})
}
