package cmd

import (
	"fmt"
	"image/color"
	"log"
	"sort"

	"github.com/flosch/pongo2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	img "github.com/mquin/labdiff/image"
	"github.com/mquin/labdiff/palette"
)

var (
	numColors int
	maxColors int
	sortBy    string
	tplFile   string
	groupDe   float64
)

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette IMAGE",
	Short: "Extracts a palette of dominant colors from an image",
	Long: `Extracts the dominant colors of an image as a palette and reports the
pairwise CIEDE2000 distances between them, so perceptually redundant
swatches are easy to spot. Swatches closer than --group deltaE00 are merged
into a single representative color, and --max consolidates the palette down
to a fixed size by repeatedly merging the two closest swatches.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		i, e := img.Load(args[0])
		if e != nil {
			log.Fatal(e)
		}
		ss, e := img.Extract(i, numColors)
		if e != nil {
			log.Fatal(e)
		}

		switch sortBy {
		case "count":
			sort.Sort(palette.ByCount(ss))
		case "darkness":
			sort.Sort(palette.ByDarkness(ss))
		default:
			log.Fatalf("'%s' is not a supported sort order", sortBy)
		}

		ss = reduce(ss, groupDe, maxColors)

		if tplFile != "" {
			if e := render(tplFile, ss); e != nil {
				log.Fatal(e)
			}
			return
		}

		d := viper.GetInt("digits")
		m := palette.Matrix(ss)
		for k, s := range ss {
			r, g, b, _ := s.RGB.RGBA()
			fmt.Printf("\033[38;2;%d;%d;%dm color%d = %s\033[0m", byte(r), byte(g), byte(b), k, rgb2Hex(s.RGB))
			for _, dist := range m[k] {
				fmt.Printf("  %.*f", d, dist)
			}
			fmt.Println()
		}
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)

	paletteCmd.Flags().IntVarP(&numColors, "colors", "n", 8, "number of palette colors to extract")
	paletteCmd.Flags().StringVarP(&sortBy, "sort", "s", "count", "swatch order: count or darkness")
	paletteCmd.Flags().StringVarP(&tplFile, "template", "T", "", "pongo2 template file for the report")
	paletteCmd.Flags().Float64Var(&groupDe, "group", 0, "merge swatches closer than this deltaE00")
	paletteCmd.Flags().IntVar(&maxColors, "max", 0, "consolidate the palette down to at most this many colors")
}

// reduce merges swatches closer than de and, when max > 0, consolidates
// the result down to at most max representative colors.
func reduce(ss []palette.Swatch, de float64, max int) []palette.Swatch {
	if de <= 0 && max <= 0 {
		return ss
	}

	gs := palette.Group(ss, de)
	if max > 0 {
		gs = palette.Consolidate(gs, max)
	}

	out := ss[:0]
	for _, g := range gs {
		out = append(out, palette.Average(g))
	}
	return out
}

// render renders the palette report through a pongo2 template file. The
// template sees a "swatches" list with hex, l, a, b, count and a dist row
// per swatch.
func render(path string, ss []palette.Swatch) error {
	tpl, e := pongo2.FromFile(path)
	if e != nil {
		return e
	}

	m := palette.Matrix(ss)
	swatches := make([]map[string]interface{}, len(ss))
	for i, s := range ss {
		swatches[i] = map[string]interface{}{
			"hex":   rgb2Hex(s.RGB),
			"l":     s.Lab.L,
			"a":     s.Lab.A,
			"b":     s.Lab.B,
			"count": s.Count,
			"dist":  m[i],
		}
	}

	o, e := tpl.Execute(pongo2.Context{"swatches": swatches})
	if e != nil {
		return e
	}

	fmt.Print(o)
	return nil
}

func rgb2Hex(rgb color.Color) string {
	r, g, b, _ := rgb.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", byte(r), byte(g), byte(b))
}
