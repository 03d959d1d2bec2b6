package render

import (
	"errors"
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"

	"paintcube/internal/imageio"
)

// raylibFormats are the stb_image formats the Go codecs cannot read.
var raylibFormats = map[string]bool{
	".tga": true,
	".psd": true,
	".hdr": true,
	".pic": true,
	".qoi": true,
}

// RaylibDecoder is an imageio.Decoder backed by raylib's image loader.
type RaylibDecoder struct{}

// Name implements imageio.Decoder.
func (RaylibDecoder) Name() string { return "raylib" }

// Decode implements imageio.Decoder. Only extensions raylib handles and the
// Go codecs do not are attempted.
func (RaylibDecoder) Decode(ext string, data []byte) (image.Image, error) {
	if !raylibFormats[ext] {
		return nil, imageio.ErrUnsupported
	}
	if len(data) == 0 {
		return nil, errors.New("empty file")
	}
	img := rl.LoadImageFromMemory(ext, data, int32(len(data)))
	if !rl.IsImageValid(img) {
		return nil, errors.New("raylib could not decode image")
	}
	defer rl.UnloadImage(img)

	cols := rl.LoadImageColors(img)
	defer rl.UnloadImageColors(cols)

	out := image.NewNRGBA(image.Rect(0, 0, int(img.Width), int(img.Height)))
	for k, c := range cols {
		o := k * 4
		out.Pix[o+0] = c.R
		out.Pix[o+1] = c.G
		out.Pix[o+2] = c.B
		out.Pix[o+3] = c.A
	}
	return out, nil
}
