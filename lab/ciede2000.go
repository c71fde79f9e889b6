package lab

import "math"

// pow25to7 is 25^7, the constant shared by eq. (4) and (17) of the
// CIEDE2000 definition.
const pow25to7 = 6103515625.0

// Distance returns the CIEDE2000 color difference (deltaE00) between two
// Lab colors, with the parametric weights kL, kC, kH fixed at 1.
//
// The computation follows the defining equations in published order,
// including their hue-angle conventions: hue angles with non-negative
// adjusted a are shifted up by a full turn, delta-h is wrapped by at most
// one turn, and the mean hue branches on both the angle gap and the angle
// sum. These branches are the documented behavior at the 0/360 degree
// wraparound and must not be collapsed into a generic modulo.
//
// Distance is pure: it never fails, and non-finite inputs propagate
// through the usual floating-point rules.
func Distance(lab1, lab2 Color) float64 {
	L1, a1, b1 := lab1.L, lab1.A, lab1.B
	L2, a2, b2 := lab2.L, lab2.A, lab2.B

	// eq. (2), (3): chroma in the original ab plane
	c1ab := math.Sqrt(a1*a1 + b1*b1)
	c2ab := math.Sqrt(a2*a2 + b2*b2)
	cab := (c1ab + c2ab) / 2

	// eq. (4): weighting factor compensating for the non-uniformity of
	// the ab plane near gray
	cab7 := math.Pow(cab, 7)
	g := 0.5 * (1 - math.Sqrt(cab7/(cab7+pow25to7)))

	// eq. (5)
	a1p := (1 + g) * a1
	a2p := (1 + g) * a2

	// eq. (6)
	c1p := math.Sqrt(a1p*a1p + b1*b1)
	c2p := math.Sqrt(a2p*a2p + b2*b2)

	// eq. (7)
	h1p := huePrime(a1p, b1)
	h2p := huePrime(a2p, b2)

	// eq. (8), (9)
	dLp := L2 - L1
	dCp := c2p - c1p

	// Exactly opposed (a', b) vectors put the two hues exactly pi apart.
	// Measuring that gap through the portable Atan2 can land one ulp past
	// pi, which would flip both the wrap in eq. (10) and the mean-hue
	// branch in eq. (14) away from the reference values, so the case is
	// pinned instead of measured.
	opposed := c1p*c2p != 0 && a2p == -a1p && b2 == -b1

	// eq. (10): hue is undefined when either color is achromatic
	dhp := h2p - h1p
	switch {
	case c1p*c2p == 0:
		dhp = 0
	case opposed:
		dhp = math.Copysign(math.Pi, dhp)
	case dhp > math.Pi:
		dhp -= 2 * math.Pi
	case dhp < -math.Pi:
		dhp += 2 * math.Pi
	}

	// eq. (11): chroma-weighted hue difference
	dHp := 2 * math.Sqrt(c1p*c2p) * math.Sin(dhp/2)

	// eq. (12), (13)
	lavg := (L1 + L2) / 2
	cavg := (c1p + c2p) / 2

	// eq. (14): mean hue, never averaging across the wraparound
	var havg float64
	switch sum := h1p + h2p; {
	case c1p*c2p == 0:
		havg = sum
	case opposed:
		// the shifted hues are exactly pi apart when both are
		// non-negative and exactly 3*pi apart otherwise
		if h1p < 0 || h2p < 0 {
			havg = sum/2 + math.Pi
		} else {
			havg = sum / 2
		}
	case math.Abs(h1p-h2p) <= math.Pi:
		havg = sum / 2
	case sum < 2*math.Pi:
		havg = sum/2 + math.Pi
	default:
		havg = sum/2 - math.Pi
	}

	// eq. (15): hue rotation term
	t := 1 -
		0.17*math.Cos(havg-math.Pi/6) +
		0.24*math.Cos(2*havg) +
		0.32*math.Cos(3*havg+math.Pi/30) -
		0.20*math.Cos(4*havg-63*math.Pi/180)

	// eq. (16): a single wrap into [0, 360) degrees, then the Gaussian
	// bump peaking in the blue region
	havgDeg := havg * 180 / math.Pi
	if havgDeg < 0 {
		havgDeg += 360
	} else if havgDeg > 360 {
		havgDeg -= 360
	}
	dTheta := 30 * math.Exp(-((havgDeg - 275) / 25) * ((havgDeg - 275) / 25))

	// eq. (17)
	cavg7 := math.Pow(cavg, 7)
	rc := 2 * math.Sqrt(cavg7/(cavg7+pow25to7))

	// eq. (18), (19), (20): weighting functions
	l50 := (lavg - 50) * (lavg - 50)
	sl := 1 + 0.015*l50/math.Sqrt(20+l50)
	sc := 1 + 0.045*cavg
	sh := 1 + 0.015*cavg*t

	// eq. (21): rotation interaction term
	rt := -math.Sin(dTheta*math.Pi/90) * rc

	// eq. (22)
	fL := dLp / sl
	fC := dCp / sc
	fH := dHp / sh
	return math.Sqrt(fL*fL + fC*fC + fH*fH + rt*fC*fH)
}

// huePrime returns the adjusted hue angle of eq. (7). The origin has no
// defined hue and maps to 0 by convention; for non-negative adjusted a the
// principal atan2 value is shifted up by a full turn, exactly as the
// reference formulation states it.
func huePrime(ap, b float64) float64 {
	switch {
	case b == 0 && ap == 0:
		return 0
	case ap >= 0:
		return math.Atan2(b, ap) + 2*math.Pi
	default:
		return math.Atan2(b, ap)
	}
}
