// Package render draws the cube with rlgl immediate mode and owns the GPU
// side of face images: upload, pattern tiles and the picking index pass.
//
// Everything here needs a live window and GL context.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"paintcube/internal/colors"
	"paintcube/internal/face"
	"paintcube/internal/imageio"
	"paintcube/internal/logger"
)

var errUpload = errors.New("texture upload failed")

// Texture is a GPU texture owned by one face.
type Texture struct {
	tex      rl.Texture2D
	released bool
}

// ID returns the GL texture name, or 0 once released.
func (t *Texture) ID() uint32 {
	if t == nil || t.released {
		return 0
	}
	return t.tex.ID
}

// Bytes estimates the texture's memory as RGBA8 without mipmaps.
func (t *Texture) Bytes() int64 {
	if t == nil || t.released {
		return 0
	}
	return int64(t.tex.Width) * int64(t.tex.Height) * 4
}

// Release unloads the texture. Later calls do nothing.
func (t *Texture) Release() {
	if t == nil || t.released {
		return
	}
	t.released = true
	rl.UnloadTexture(t.tex)
}

// Uploader copies decoded face images to the GPU.
type Uploader struct {
	Log *slog.Logger
}

// Upload implements face.Uploader. The texture is mipmapped, trilinear
// filtered and clamped at the edges so zoomed windows do not bleed.
func (u *Uploader) Upload(img *imageio.Image) (face.Texture, error) {
	if img == nil || img.RGBA == nil {
		return nil, fmt.Errorf("%w: no image", errUpload)
	}
	size := int32(img.Size())
	ri := rl.NewImage(img.Pixels(), size, size, 1, rl.UncompressedR8g8b8a8)
	tex := rl.LoadTextureFromImage(ri)
	if !rl.IsTextureValid(tex) {
		return nil, fmt.Errorf("%w: %dx%d", errUpload, size, size)
	}
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterTrilinear)
	rl.SetTextureWrap(tex, rl.WrapClamp)
	logger.Or(u.Log).Debug("texture uploaded", "id", tex.ID, "size", size, "alpha", img.HasAlpha)
	return &Texture{tex: tex}, nil
}

// Color converts a face color to a raylib color with alpha a.
func Color(c colors.RGB, a uint8) color.RGBA {
	r, g, b := c.Bytes()
	return rl.NewColor(r, g, b, a)
}
