// Package imageio decodes face images from disk.
//
// Load walks a chain of decoders: the Go image codecs (including x/image
// formats), any extra native decoders supplied by the caller, and finally the
// plain-text PPM reader. The first decoder that succeeds wins.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	// MaxFileSize is the largest file Load will read.
	MaxFileSize = 64 << 20
	// MaxDimension is the largest width or height accepted from a header.
	MaxDimension = 8192
)

var (
	ErrTooLarge    = errors.New("image too large")
	ErrUnsupported = errors.New("unsupported image format")
)

// DecodeError reports that no decoder could read Path.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decoder turns file bytes into an image. Ext is the lower-case extension of
// the source path including the dot, for decoders that need a hint.
type Decoder interface {
	Name() string
	Decode(ext string, data []byte) (image.Image, error)
}

// GoCodecs decodes every format registered with the image package.
type GoCodecs struct{}

// Name implements Decoder.
func (GoCodecs) Name() string { return "go" }

// Decode implements Decoder. The header is checked against MaxDimension
// before pixel data is decoded.
func (GoCodecs) Decode(_ string, data []byte) (image.Image, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if err := checkSize(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

func checkSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("empty image %dx%d", w, h)
	}
	if w > MaxDimension || h > MaxDimension {
		return fmt.Errorf("%w: %dx%d", ErrTooLarge, w, h)
	}
	return nil
}

// Image is a decoded, square-cropped face image.
type Image struct {
	RGBA     *image.RGBA
	HasAlpha bool
	Decoder  string
	// SourceWidth and SourceHeight are the dimensions before cropping.
	SourceWidth, SourceHeight int
}

// Size returns the side length of the square image.
func (i *Image) Size() int { return i.RGBA.Bounds().Dx() }

// Loader reads images through a decoder chain.
type Loader struct {
	decoders []Decoder
}

// NewLoader returns a loader trying GoCodecs, then extra, then PPM.
func NewLoader(extra ...Decoder) *Loader {
	ds := []Decoder{GoCodecs{}}
	ds = append(ds, extra...)
	ds = append(ds, PPM{})
	return &Loader{decoders: ds}
}

// Decoders returns the names of the chain in order.
func (l *Loader) Decoders() []string {
	names := make([]string, len(l.decoders))
	for i, d := range l.decoders {
		names[i] = d.Name()
	}
	return names
}

// Load reads path, decodes it with the first decoder that succeeds and
// center-crops it to a square. Errors are always *DecodeError.
func (l *Loader) Load(path string) (*Image, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	if fi.IsDir() {
		return nil, &DecodeError{Path: path, Err: errors.New("is a directory")}
	}
	if fi.Size() > MaxFileSize {
		return nil, &DecodeError{Path: path, Err: fmt.Errorf("%w: %d bytes", ErrTooLarge, fi.Size())}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return l.decode(path, data)
}

func (l *Loader) decode(path string, data []byte) (*Image, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var errs []error
	for _, d := range l.decoders {
		img, err := d.Decode(ext, data)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", d.Name(), err))
			continue
		}
		b := img.Bounds()
		if err := checkSize(b.Dx(), b.Dy()); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", d.Name(), err))
			continue
		}
		sq := SquareCrop(img)
		return &Image{
			RGBA:         sq,
			HasAlpha:     !sq.Opaque(),
			Decoder:      d.Name(),
			SourceWidth:  b.Dx(),
			SourceHeight: b.Dy(),
		}, nil
	}
	errs = append(errs, ErrUnsupported)
	return nil, &DecodeError{Path: path, Err: errors.Join(errs...)}
}

// SquareRect returns the centered square inside b, trimming the longer side symmetrically.
func SquareRect(b image.Rectangle) image.Rectangle {
	w, h := b.Dx(), b.Dy()
	side := min(w, h)
	x0 := b.Min.X + (w-side)/2
	y0 := b.Min.Y + (h-side)/2
	return image.Rect(x0, y0, x0+side, y0+side)
}

// SquareCrop center-crops img to a square. Alpha is preserved.
func SquareCrop(img image.Image) *image.RGBA {
	return transform.Crop(img, SquareRect(img.Bounds()))
}

// Pixels returns the image as tightly packed, non-premultiplied RGBA bytes
// with the origin at (0,0), ready for a GPU upload.
func (i *Image) Pixels() []byte {
	b := i.RGBA.Bounds()
	if !i.HasAlpha && b.Min == (image.Point{}) && i.RGBA.Stride == 4*b.Dx() {
		return i.RGBA.Pix
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), i.RGBA, b.Min, draw.Src)
	return dst.Pix
}
