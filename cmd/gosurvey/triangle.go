package main

import (
	"math"

	"github.com/philipparndt/gosurvey/pkg/analysis"
	"github.com/philipparndt/gosurvey/pkg/triangle"
	"github.com/spf13/cobra"
)

var triangleIn = triangle.Unknown()

var triangleCmd = &cobra.Command{
	Use:   "triangle",
	Short: "Solve a triangle split by its altitude",
	Long: `Derive every triangle quantity that follows from the given ones. The triangle
stands on base b; side a runs from the left base corner to the apex, side c from
the right corner. The altitude h divides the base into bl and br and the apex
angle into apex-l and apex-r. Angles are in degrees. Quantities that cannot be
derived are reported as n/a.`,
	Args: cobra.NoArgs,
	RunE: runTriangle,
}

func init() {
	rootCmd.AddCommand(triangleCmd)

	fl := triangleCmd.Flags()
	fl.Float64Var(&triangleIn.A, "a", math.NaN(), "Left side")
	fl.Float64Var(&triangleIn.B, "b", math.NaN(), "Base")
	fl.Float64Var(&triangleIn.C, "c", math.NaN(), "Right side")
	fl.Float64Var(&triangleIn.H, "h", math.NaN(), "Altitude")
	fl.Float64Var(&triangleIn.BL, "bl", math.NaN(), "Base part under the left side")
	fl.Float64Var(&triangleIn.BR, "br", math.NaN(), "Base part under the right side")
	fl.Float64Var(&triangleIn.ApexDeg, "apex", math.NaN(), "Apex angle")
	fl.Float64Var(&triangleIn.ApexL, "apex-l", math.NaN(), "Apex angle left of the altitude")
	fl.Float64Var(&triangleIn.ApexR, "apex-r", math.NaN(), "Apex angle right of the altitude")
	fl.Float64Var(&triangleIn.BaseL, "base-l", math.NaN(), "Angle at the left base corner")
	fl.Float64Var(&triangleIn.BaseR, "base-r", math.NaN(), "Angle at the right base corner")
}

func runTriangle(cmd *cobra.Command, args []string) error {
	s := triangle.Solve(triangleIn)

	f := formatter()
	r := analysis.NewReport(cmd.OutOrStdout())
	r.Title("Triangle")

	rows := []struct {
		flag  string
		label string
		value float64
		angle bool
	}{
		{"a", "a", s.A, false},
		{"b", "b", s.B, false},
		{"c", "c", s.C, false},
		{"h", "h", s.H, false},
		{"bl", "bL", s.BL, false},
		{"br", "bR", s.BR, false},
		{"apex", "Apex", s.ApexDeg, true},
		{"apex-l", "Apex L", s.ApexL, true},
		{"apex-r", "Apex R", s.ApexR, true},
		{"base-l", "Base L", s.BaseL, true},
		{"base-r", "Base R", s.BaseR, true},
	}
	for _, row := range rows {
		value := f.Float(row.value)
		if row.angle {
			value = f.Angle(row.value)
		}
		if cmd.Flags().Changed(row.flag) {
			value += " (given)"
		}
		r.Row(row.label, value)
	}
	r.Row("Area", f.Float(s.Area()))
	if !s.Resolved() {
		r.Blank()
		r.Title("Not every quantity could be derived from the input.")
	}
	return r.Flush()
}
