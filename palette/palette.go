// Package palette ranks, groups and matches image swatches by perceptual
// color difference.
package palette

import (
	"image/color"
	"math"

	"github.com/mquin/labdiff/lab"
)

// Swatch represents an RGB color, its Lab equivalent, and the number of
// sampled pixels it occupies in the source image.
type Swatch struct {
	RGB   color.Color
	Lab   lab.Color
	Count int
}

// ByCount sorts swatches from most to least prevalent.
type ByCount []Swatch

func (ss ByCount) Len() int           { return len(ss) }
func (ss ByCount) Less(i, j int) bool { return ss[i].Count > ss[j].Count }
func (ss ByCount) Swap(i, j int)      { ss[i], ss[j] = ss[j], ss[i] }

// ByDarkness sorts swatches from darkest to lightest.
type ByDarkness []Swatch

func (ss ByDarkness) Len() int           { return len(ss) }
func (ss ByDarkness) Less(i, j int) bool { return ss[i].Lab.L < ss[j].Lab.L }
func (ss ByDarkness) Swap(i, j int)      { ss[i], ss[j] = ss[j], ss[i] }

// Nearest returns the index of the swatch perceptually closest to target,
// or -1 for an empty slice.
func Nearest(target lab.Color, ss []Swatch) int {
	best := -1
	min := math.Inf(1)

	for i, s := range ss {
		if d := lab.Distance(target, s.Lab); d < min {
			min = d
			best = i
		}
	}

	return best
}

// Matrix returns the pairwise deltaE00 matrix for a set of swatches.
func Matrix(ss []Swatch) [][]float64 {
	m := make([][]float64, len(ss))

	for i := range ss {
		m[i] = make([]float64, len(ss))
		for j := 0; j < i; j++ {
			m[i][j] = m[j][i]
		}
		for j := i + 1; j < len(ss); j++ {
			m[i][j] = lab.Distance(ss[i].Lab, ss[j].Lab)
		}
	}

	return m
}

// Group greedily clusters swatches whose distance to a cluster's seed is
// under threshold, seeding from the front of the slice. Sort by prevalence
// first to seed clusters with dominant colors.
func Group(ss []Swatch, threshold float64) [][]Swatch {
	gs := make([][]Swatch, 0)
	done := make([]bool, len(ss))

	k := -1
	for i := range ss {
		if done[i] {
			continue
		}
		gs = append(gs, []Swatch{ss[i]})
		k++
		done[i] = true

		for j := i + 1; j < len(ss); j++ {
			if done[j] {
				continue
			}
			if lab.Distance(ss[i].Lab, ss[j].Lab) < threshold {
				gs[k] = append(gs[k], ss[j])
				done[j] = true
			}
		}
	}

	return gs
}

// Consolidate merges the two perceptually closest groups, judged by their
// averaged representatives, until at most max remain.
func Consolidate(gs [][]Swatch, max int) [][]Swatch {
	for len(gs) > max {
		var a, b int
		min := math.Inf(1)

		for i := 0; i < len(gs); i++ {
			for j := i + 1; j < len(gs); j++ {
				d := lab.Distance(Average(gs[i]).Lab, Average(gs[j]).Lab)
				if d < min {
					min = d
					a = i
					b = j
				}
			}
		}

		gs[a] = append(gs[a], gs[b]...)
		gs = append(gs[:b], gs[b+1:]...)
	}

	return gs
}

// Average returns a representative swatch for a group: channels averaged
// in square space, counts summed.
func Average(ss []Swatch) Swatch {
	var rt, gt, bt float64
	t := 0

	for _, s := range ss {
		r, g, b, _ := s.RGB.RGBA()
		rt += float64(uint8(r)) * float64(uint8(r))
		gt += float64(uint8(g)) * float64(uint8(g))
		bt += float64(uint8(b)) * float64(uint8(b))
		t += s.Count
	}

	n := float64(len(ss))
	r := uint8(math.Round(math.Sqrt(rt / n)))
	g := uint8(math.Round(math.Sqrt(gt / n)))
	b := uint8(math.Round(math.Sqrt(bt / n)))

	return Swatch{
		RGB:   color.RGBA{r, g, b, 255},
		Lab:   lab.FromRGB(r, g, b),
		Count: t,
	}
}
