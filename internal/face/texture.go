package face

import "paintcube/internal/imageio"

// Texture is a GPU image owned by exactly one face. Release frees it and must
// be safe to call once.
type Texture interface {
	Release()
}

// Uploader turns a decoded image into a Texture.
type Uploader interface {
	Upload(img *imageio.Image) (Texture, error)
}

// ImageSource decodes an image file. *imageio.Loader implements it.
type ImageSource interface {
	Load(path string) (*imageio.Image, error)
}

// ownedTexture releases what it holds before taking something new.
type ownedTexture struct {
	tex Texture
}

func (o *ownedTexture) valid() bool { return o.tex != nil }

func (o *ownedTexture) get() Texture { return o.tex }

func (o *ownedTexture) set(t Texture) {
	o.release()
	o.tex = t
}

func (o *ownedTexture) release() {
	if o.tex == nil {
		return
	}
	t := o.tex
	o.tex = nil
	t.Release()
}
