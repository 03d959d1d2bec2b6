package face

import (
	"image"
	"image/color"
)

// TileSize is the side of a generated pattern tile in pixels.
const TileSize = 32

var (
	tileLight = color.NRGBA{255, 255, 255, 255}
	tileDark  = color.NRGBA{150, 150, 150, 255}
)

// Tile renders a tileable grayscale image for p, meant to be tinted by the
// face color. PatternNone yields a solid white tile.
func Tile(p Pattern, size int) *image.NRGBA {
	if size <= 0 {
		size = TileSize
	}
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, tilePixel(p, x, y, size))
		}
	}
	return img
}

func tilePixel(p Pattern, x, y, size int) color.NRGBA {
	switch p {
	case PatternStripes:
		// Diagonal bands; (x+y) mod size keeps the tile seamless.
		if (x+y)%size < size/2 {
			return tileLight
		}
		return tileDark
	case PatternDots:
		c := size / 2
		r := size / 4
		dx, dy := x-c, y-c
		if dx*dx+dy*dy <= r*r {
			return tileLight
		}
		return tileDark
	}
	return tileLight
}
