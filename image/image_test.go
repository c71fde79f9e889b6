package image

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/mquin/labdiff/lab"
)

func TestExtract(t *testing.T) {
	// left half red, right half blue
	img := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	for x := 0; x < 100; x++ {
		for y := 0; y < 100; y++ {
			if x < 50 {
				img.Set(x, y, color.NRGBA{255, 0, 0, 255})
			} else {
				img.Set(x, y, color.NRGBA{0, 0, 255, 255})
			}
		}
	}

	ss, e := Extract(img, 2)
	if e != nil {
		t.Fatal(e)
	}
	if len(ss) != 2 {
		t.Fatalf("got %d swatches, want 2", len(ss))
	}

	var sawRed, sawBlue bool
	for _, s := range ss {
		if s.Count == 0 {
			t.Errorf("swatch %+v has zero count", s)
		}
		if s.Lab.A > 40 && s.Lab.B > 0 {
			sawRed = true
		}
		if s.Lab.B < -40 {
			sawBlue = true
		}
	}
	if !sawRed || !sawBlue {
		t.Errorf("expected a red and a blue swatch, got %+v", ss)
	}
}

// The chromath pipeline and the direct conversion use the same illuminant
// and must stay in close agreement.
func TestToLabMatchesFromRGB(t *testing.T) {
	tests := []struct{ r, g, b uint8 }{
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
		{128, 128, 128},
		{255, 165, 0},
	}
	for _, tc := range tests {
		got := ToLab(color.NRGBA{tc.r, tc.g, tc.b, 255})
		want := lab.FromRGB(tc.r, tc.g, tc.b)
		if math.Abs(got.L-want.L) > 0.5 ||
			math.Abs(got.A-want.A) > 0.5 ||
			math.Abs(got.B-want.B) > 0.5 {
			t.Errorf("rgb(%d, %d, %d): chromath %+v vs direct %+v",
				tc.r, tc.g, tc.b, got, want)
		}
	}
}
