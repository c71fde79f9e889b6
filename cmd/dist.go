package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mquin/labdiff/lab"
)

// distCmd represents the dist command
var distCmd = &cobra.Command{
	Use:   "dist COLOR1 COLOR2",
	Short: "Computes the CIEDE2000 distance between two colors",
	Long: `Computes the CIEDE2000 (deltaE00) distance between two colors.

Colors may be given as hex strings (#ff8800), Lab triples (lab:53.23,80.11,67.22)
or device BGR triples (bgr:0,136,255).`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		c1, e := parseColor(args[0])
		if e != nil {
			fmt.Println(e)
			os.Exit(1)
		}
		c2, e := parseColor(args[1])
		if e != nil {
			fmt.Println(e)
			os.Exit(1)
		}

		fmt.Printf("%.*f\n", viper.GetInt("digits"), lab.Distance(c1, c2))
	},
}

func init() {
	rootCmd.AddCommand(distCmd)
}

// parseColor accepts hex, "lab:L,a,b" and "bgr:B,G,R" color forms.
func parseColor(s string) (lab.Color, error) {
	switch {
	case strings.HasPrefix(s, "lab:"):
		f, e := parseTriple(s[len("lab:"):])
		if e != nil {
			return lab.Color{}, e
		}
		return lab.Color{L: f[0], A: f[1], B: f[2]}, nil
	case strings.HasPrefix(s, "bgr:"):
		f, e := parseTriple(s[len("bgr:"):])
		if e != nil {
			return lab.Color{}, e
		}
		for _, v := range f {
			if v < 0 || v > 255 || v != float64(uint8(v)) {
				return lab.Color{}, fmt.Errorf("'%s' is not a BGR byte triple", s)
			}
		}
		return lab.FromBGR(uint8(f[0]), uint8(f[1]), uint8(f[2])), nil
	default:
		return lab.ParseHex(s)
	}
}

func parseTriple(s string) ([3]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return [3]float64{}, fmt.Errorf("'%s' is not a comma-separated triple", s)
	}

	var f [3]float64
	for i, p := range parts {
		v, e := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if e != nil {
			return [3]float64{}, fmt.Errorf("'%s' is not a number", p)
		}
		f[i] = v
	}

	return f, nil
}
