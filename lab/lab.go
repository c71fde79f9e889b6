// Package lab implements the CIE L*a*b* color model, conversion from
// 8-bit device colors, and the CIEDE2000 perceptual color difference.
package lab

import "math"

// Color is a CIE L*a*b* color: lightness, green-red axis, blue-yellow axis.
type Color struct {
	L, A, B float64
}

// D65 reference white, 2 degree observer.
const (
	whiteX = 95.047
	whiteY = 100.0
	whiteZ = 108.883
)

// FromRGB converts an 8-bit sRGB color to Lab under the D65 illuminant.
func FromRGB(r, g, b uint8) Color {
	rl := linearize(float64(r) / 255)
	gl := linearize(float64(g) / 255)
	bl := linearize(float64(b) / 255)

	x := (rl*0.4124 + gl*0.3576 + bl*0.1805) / whiteX
	y := (rl*0.2126 + gl*0.7152 + bl*0.0722) / whiteY
	z := (rl*0.0193 + gl*0.1192 + bl*0.9505) / whiteZ

	fx, fy, fz := labF(x), labF(y), labF(z)

	return Color{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// FromBGR converts a blue-green-red channel triple (the byte order used by
// OpenCV-style device buffers) to Lab.
func FromBGR(b, g, r uint8) Color {
	return FromRGB(r, g, b)
}

// linearize undoes the sRGB gamma companding and scales to [0, 100].
func linearize(c float64) float64 {
	if c > 0.04045 {
		return math.Pow((c+0.055)/1.055, 2.4) * 100
	}
	return c / 12.92 * 100
}

// labF is the XYZ-to-Lab transfer function: a cube root above the small
// linear segment near black.
func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}
