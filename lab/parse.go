package lab

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHex parses "#RRGGBB", "RRGGBB" or "#RGB" into a Lab color.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 6:
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	default:
		return Color{}, fmt.Errorf("'%s' is not a hex color", s)
	}

	v, e := strconv.ParseUint(h, 16, 32)
	if e != nil {
		return Color{}, fmt.Errorf("'%s' is not a hex color", s)
	}

	return FromRGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
