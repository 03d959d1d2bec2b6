package imageio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
)

var (
	errNotPPM    = errors.New("not a plain PPM (P3) file")
	errTruncated = errors.New("ppm: truncated")
)

// PPM decodes the plain-text netpbm RGB format (magic "P3"). It is the last
// decoder in the chain.
type PPM struct{}

// Name implements Decoder.
func (PPM) Name() string { return "ppm" }

// Decode implements Decoder.
func (PPM) Decode(_ string, data []byte) (image.Image, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	sc.Split(ppmTokens)

	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		return sc.Text(), true
	}
	nextInt := func(what string) (int, error) {
		tok, ok := next()
		if !ok {
			return 0, fmt.Errorf("ppm: missing %s", what)
		}
		n, err := strconv.Atoi(tok)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("ppm: bad %s %q", what, tok)
		}
		return n, nil
	}

	magic, ok := next()
	if !ok || magic != "P3" {
		return nil, errNotPPM
	}
	w, err := nextInt("width")
	if err != nil {
		return nil, err
	}
	h, err := nextInt("height")
	if err != nil {
		return nil, err
	}
	if err := checkSize(w, h); err != nil {
		return nil, err
	}
	maxVal, err := nextInt("max value")
	if err != nil {
		return nil, err
	}
	if maxVal == 0 || maxVal > 65535 {
		return nil, fmt.Errorf("ppm: max value %d out of range", maxVal)
	}

	// Every sample is at least one digit plus a separator.
	if samples := w * h * 3; len(data) < 2*samples-1 {
		return nil, fmt.Errorf("%w: %d bytes cannot hold %dx%d samples", errTruncated, len(data), w, h)
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	scale := func(v int) uint8 { return uint8((v*255 + maxVal/2) / maxVal) }
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var rgb [3]int
			for c := range rgb {
				v, err := nextInt("sample")
				if err != nil {
					return nil, fmt.Errorf("%w at pixel (%d,%d)", err, x, y)
				}
				if v > maxVal {
					return nil, fmt.Errorf("ppm: sample %d above max %d", v, maxVal)
				}
				rgb[c] = v
			}
			img.SetNRGBA(x, y, color.NRGBA{R: scale(rgb[0]), G: scale(rgb[1]), B: scale(rgb[2]), A: 255})
		}
	}
	return img, nil
}

// ppmTokens splits on whitespace and drops '#' comments up to end of line.
func ppmTokens(data []byte, atEOF bool) (advance int, token []byte, err error) {
	i := 0
	for i < len(data) {
		switch c := data[i]; {
		case c == '#':
			nl := bytes.IndexByte(data[i:], '\n')
			if nl < 0 {
				if atEOF {
					return len(data), nil, nil
				}
				return i, nil, nil
			}
			i += nl + 1
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f':
			i++
		default:
			j := i
			for j < len(data) && !isSpace(data[j]) && data[j] != '#' {
				j++
			}
			if j == len(data) && !atEOF {
				return i, nil, nil
			}
			return j, data[i:j], nil
		}
	}
	return i, nil, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}
