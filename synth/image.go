// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"image"
	"io"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Luma is a width by height grid of BT.601 grayscale values in [0, 255],
// stored row-major.
type Luma struct {
	Width  int
	Height int
	Pix    []uint8
}

// At returns the luma value at column x, row y.
func (l *Luma) At(x, y int) uint8 { return l.Pix[y*l.Width+x] }

// DecodeLuma decodes an image (png, jpeg or gif) and collapses it to a
// BT.601 grayscale grid: 0.299 R + 0.587 G + 0.114 B.
func DecodeLuma(r io.Reader) (*Luma, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	bounds := img.Bounds()
	l := &Luma{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pix:    make([]uint8, bounds.Dx()*bounds.Dy()),
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			// RGBA components are 16-bit
			r16, g16, b16, _ := img.At(x, y).RGBA()
			l.Pix[i] = uint8(0.299*float64(r16>>8) + 0.587*float64(g16>>8) + 0.114*float64(b16>>8))
			i++
		}
	}

	return l, nil
}

// LoadLuma reads and decodes the image at path.
func LoadLuma(path string) (*Luma, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return DecodeLuma(f)
}
