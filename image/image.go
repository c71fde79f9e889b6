// Package image extracts dominant, Lab-annotated swatches from images.
package image

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/esimov/colorquant"
	"github.com/jkl1337/go-chromath"

	"github.com/mquin/labdiff/lab"
	"github.com/mquin/labdiff/palette"
)

var (
	// for RGB-to-Lab conversion of sampled pixels
	targetIlluminant = &chromath.IlluminantRefD65
	rgb2Xyz          = chromath.NewRGBTransformer(
		&chromath.SpaceSRGB,
		&chromath.AdaptationBradford,
		targetIlluminant,
		&chromath.Scaler8bClamping,
		1.0,
		nil,
	)
	lab2Xyz = chromath.NewLabTransformer(targetIlluminant)
)

// Load loads an image given a file path.
func Load(path string) (image.Image, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, e
	}
	defer f.Close()

	i, _, e := image.Decode(f)
	if e != nil {
		return nil, e
	}

	return i, nil
}

// Extract quantizes img down to num colors and returns one swatch per
// quantized color, counting prevalence on a sampling grid. Fully
// transparent pixels are ignored.
func Extract(img image.Image, num int) ([]palette.Swatch, error) {
	b := img.Bounds()
	o := image.NewNRGBA(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y))
	colorquant.NoDither.Quantize(img, o, num, false, true)

	m := make(map[color.Color]int)
	w, h := o.Bounds().Max.X, o.Bounds().Max.Y
	for x := 0; x < w; x += 5 {
		for y := 0; y < h; y += 5 {
			c := o.At(x, y)
			if _, _, _, a := c.RGBA(); a != 0 {
				m[c]++
			}
		}
	}
	if len(m) > num {
		return nil, fmt.Errorf("quantization produced %d colors, expected at most %d", len(m), num)
	}

	ss := make([]palette.Swatch, 0, len(m))
	for c, n := range m {
		ss = append(ss, palette.Swatch{RGB: c, Lab: ToLab(c), Count: n})
	}

	return ss, nil
}

// ToLab converts an 8-bit color to Lab through the chromath transformer
// pipeline under the D65 illuminant.
func ToLab(c color.Color) lab.Color {
	r, g, b, _ := c.RGBA()
	rgb := chromath.RGB{float64(byte(r)), float64(byte(g)), float64(byte(b))}
	xyz := rgb2Xyz.Convert(rgb)
	l := lab2Xyz.Invert(xyz)
	return lab.Color{L: l.L(), A: l.A(), B: l.B()}
}
