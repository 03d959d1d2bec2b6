package render

import (
	"fmt"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"paintcube/internal/overlay"
)

// fontDirs are tried for relative font paths that do not exist as given.
var fontDirs = []string{"assets/fonts", "../../assets/fonts"}

// fontBaseSize is the size glyphs are rasterized at; draws scale from it.
const fontBaseSize = 32

const textSpacing = 1

// fontRunes is printable ASCII plus the degree sign used by the zoom label.
var fontRunes = func() []rune {
	rs := make([]rune, 0, 96)
	for r := rune(32); r < 127; r++ {
		rs = append(rs, r)
	}
	return append(rs, '°')
}()

// Painter draws overlay display lists. Without a loaded font it uses
// raylib's default font.
type Painter struct {
	font rl.Font
}

// ResolveFont finds path directly or under one of the font directories.
func ResolveFont(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if !filepath.IsAbs(path) {
		for _, dir := range fontDirs {
			p := filepath.Join(dir, path)
			if _, err := os.Stat(p); err == nil {
				return p, nil
			}
		}
	}
	return "", fmt.Errorf("font %s: %w", path, os.ErrNotExist)
}

// LoadFont loads a TTF or OTF font. On failure the current font is kept.
// Call after the window exists.
func (p *Painter) LoadFont(path string) error {
	resolved, err := ResolveFont(path)
	if err != nil {
		return err
	}
	f := rl.LoadFontEx(resolved, fontBaseSize, fontRunes)
	if f.Texture.ID == 0 {
		return fmt.Errorf("font %s: could not load", resolved)
	}
	rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	p.Close()
	p.font = f
	return nil
}

// MeasureText implements overlay.Measurer.
func (p *Painter) MeasureText(text string, size int32) int32 {
	if p.font.Texture.ID != 0 {
		return int32(rl.MeasureTextEx(p.font, text, float32(size), textSpacing).X)
	}
	return rl.MeasureText(text, size)
}

// Paint draws items in order. Call between BeginDrawing and EndDrawing,
// after the 3D scene.
func (p *Painter) Paint(items []overlay.Item) {
	for i := range items {
		it := &items[i]
		switch it.Kind {
		case overlay.Fill:
			rl.DrawRectangle(it.X, it.Y, it.W, it.H, it.Color)
		case overlay.Outline:
			rl.DrawRectangleLines(it.X, it.Y, it.W, it.H, it.Color)
		case overlay.Text:
			if p.font.Texture.ID != 0 {
				rl.DrawTextEx(p.font, it.Text, rl.NewVector2(float32(it.X), float32(it.Y)), float32(it.Size), textSpacing, it.Color)
			} else {
				rl.DrawText(it.Text, it.X, it.Y, it.Size, it.Color)
			}
		}
	}
}

// Close unloads the font.
func (p *Painter) Close() {
	if p.font.Texture.ID != 0 {
		rl.UnloadFont(p.font)
		p.font = rl.Font{}
	}
}
