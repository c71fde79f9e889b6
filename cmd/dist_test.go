package cmd

import (
	"math"
	"testing"

	"github.com/mquin/labdiff/lab"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    lab.Color
		wantErr bool
	}{
		{input: "lab:50,2.6772,-79.7751", want: lab.Color{L: 50, A: 2.6772, B: -79.7751}},
		{input: "lab: 50 , 0 , 0 ", want: lab.Color{L: 50}},
		{input: "bgr:0,0,255", want: lab.FromRGB(255, 0, 0)},
		{input: "bgr:255,165,0", want: lab.FromRGB(0, 165, 255)},
		{input: "#ff0000", want: lab.FromRGB(255, 0, 0)},
		{input: "ff0000", want: lab.FromRGB(255, 0, 0)},
		{input: "lab:1,2", wantErr: true},
		{input: "lab:a,b,c", wantErr: true},
		{input: "bgr:300,0,0", wantErr: true},
		{input: "bgr:1.5,0,0", wantErr: true},
		{input: "#zzz", wantErr: true},
	}
	for _, tc := range tests {
		got, e := parseColor(tc.input)
		if tc.wantErr {
			if e == nil {
				t.Errorf("parseColor(%q): expected an error, got %+v", tc.input, got)
			}
			continue
		}
		if e != nil {
			t.Errorf("parseColor(%q): %v", tc.input, e)
			continue
		}
		if math.Abs(got.L-tc.want.L) > 1e-9 ||
			math.Abs(got.A-tc.want.A) > 1e-9 ||
			math.Abs(got.B-tc.want.B) > 1e-9 {
			t.Errorf("parseColor(%q) = %+v, want %+v", tc.input, got, tc.want)
		}
	}
}
