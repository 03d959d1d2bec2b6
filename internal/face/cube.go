package face

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"paintcube/internal/colors"
)

// Count is the number of faces on the cube.
const Count = 6

// Names are the face labels by index.
var Names = [Count]string{"Front", "Back", "Top", "Bottom", "Right", "Left"}

// ErrNoUploader is returned by LoadImage when the cube was built without one.
var ErrNoUploader = errors.New("no texture uploader")

// ImageLoadError reports a failed image load on a face.
type ImageLoadError struct {
	Face int
	Path string
	Err  error
}

func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("face %d: load image %s: %v", e.Face, e.Path, e.Err)
}

func (e *ImageLoadError) Unwrap() error { return e.Err }

// Cube owns six faces, their textures, the accumulated rotation and the
// selection. The selection is always a valid face index.
type Cube struct {
	faces    [Count]Face
	rotation mgl32.Vec3
	selected int

	images   ImageSource
	uploader Uploader
}

// NewCube returns a white cube with face 0 selected. images and up may be nil
// when images are never loaded.
func NewCube(images ImageSource, up Uploader) *Cube {
	c := &Cube{images: images, uploader: up}
	for i := range c.faces {
		c.faces[i] = newFace()
	}
	return c
}

// Rotate adds degrees to each axis.
func (c *Cube) Rotate(dx, dy, dz float32) {
	c.rotation = c.rotation.Add(mgl32.Vec3{dx, dy, dz})
}

// SetRotation replaces the rotation.
func (c *Cube) SetRotation(x, y, z float32) {
	c.rotation = mgl32.Vec3{x, y, z}
}

// Rotation returns the accumulated X, Y, Z angles in degrees.
func (c *Cube) Rotation() mgl32.Vec3 { return c.rotation }

// Selected returns the selected face index.
func (c *Cube) Selected() int { return c.selected }

// Select changes the selection. Out-of-range indices are ignored and reported false.
func (c *Cube) Select(i int) bool {
	if i < 0 || i >= Count {
		return false
	}
	c.selected = i
	return true
}

// Face returns face i, or nil when i is out of range.
func (c *Cube) Face(i int) *Face {
	if i < 0 || i >= Count {
		return nil
	}
	return &c.faces[i]
}

// Current returns the selected face.
func (c *Cube) Current() *Face { return &c.faces[c.selected] }

// LoadImage decodes path and puts it on face i. On decode failure the face is
// untouched. After a successful decode the old texture is released before the
// new one is uploaded; if the upload then fails the face is left without an
// image.
func (c *Cube) LoadImage(i int, path string) error {
	f := c.Face(i)
	if f == nil {
		return &ImageLoadError{Face: i, Path: path, Err: fmt.Errorf("face index out of range")}
	}
	if c.images == nil || c.uploader == nil {
		return &ImageLoadError{Face: i, Path: path, Err: ErrNoUploader}
	}
	img, err := c.images.Load(path)
	if err != nil {
		return &ImageLoadError{Face: i, Path: path, Err: err}
	}
	f.dropTexture()
	tex, err := c.uploader.Upload(img)
	if err != nil {
		return &ImageLoadError{Face: i, Path: path, Err: fmt.Errorf("upload: %w", err)}
	}
	f.attach(tex, img.HasAlpha, img.Size(), path)
	return nil
}

// TextureCount returns how many faces hold a texture.
func (c *Cube) TextureCount() int {
	n := 0
	for i := range c.faces {
		if c.faces[i].HasTexture() {
			n++
		}
	}
	return n
}

// TextureBytes estimates GPU memory used by face images (RGBA8).
func (c *Cube) TextureBytes() int64 {
	var n int64
	for i := range c.faces {
		if s := int64(c.faces[i].size); c.faces[i].HasTexture() {
			n += s * s * 4
		}
	}
	return n
}

// Close releases every texture. The cube stays usable with plain faces.
func (c *Cube) Close() {
	for i := range c.faces {
		c.faces[i].dropTexture()
	}
}

// View is a read-only snapshot of one face.
type View struct {
	Face       int
	Name       string
	State      State
	Color      colors.RGB
	Pattern    Pattern
	HasTexture bool
	HasAlpha   bool
	Scale      float32
	Rotation   int
	Degrees    int
	ImageSize  int
	Source     string
}

// View snapshots face i. Out-of-range indices return the zero View.
func (c *Cube) View(i int) View {
	f := c.Face(i)
	if f == nil {
		return View{}
	}
	return View{
		Face:       i,
		Name:       Names[i],
		State:      f.State(),
		Color:      f.color,
		Pattern:    f.pattern,
		HasTexture: f.HasTexture(),
		HasAlpha:   f.HasAlpha(),
		Scale:      f.scale,
		Rotation:   f.rotation,
		Degrees:    f.rotation * 90,
		ImageSize:  f.size,
		Source:     f.source,
	}
}
