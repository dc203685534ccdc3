package main

import (
	"github.com/philipparndt/gosurvey/pkg/analysis"
	"github.com/philipparndt/gosurvey/pkg/geometry"
	"github.com/philipparndt/gosurvey/pkg/points"
	"github.com/spf13/cobra"
)

var enhCmd = &cobra.Command{
	Use:   "enh [E,N[,H]] [E,N[,H]]",
	Short: "Coordinate differences, distance and azimuth between two points",
	Long: `Print ΔE, ΔN, ΔH, the horizontal and slope distance, the azimuth from north
(clockwise) and the slope angle from the first to the second point.`,
	Args: cobra.ExactArgs(2),
	RunE: runENH,
}

func init() {
	rootCmd.AddCommand(enhCmd)
}

func runENH(cmd *cobra.Command, args []string) error {
	a, err := points.ParsePoint(args[0])
	if err != nil {
		return err
	}
	b, err := points.ParsePoint(args[1])
	if err != nil {
		return err
	}

	d := geometry.Difference(a, b)

	f := formatter()
	r := analysis.NewReport(cmd.OutOrStdout())
	r.Title("Difference")
	r.Row("ΔE", f.Float(d.DE))
	r.Row("ΔN", f.Float(d.DN))
	r.Row("ΔH", f.Float(d.DH))
	r.Row("Horizontal", f.Float(d.Horizontal))
	r.Row("Slope distance", f.Float(d.Slope3D))
	r.Row("Azimuth", f.Angle(d.AzimuthDeg))
	r.Row("Slope", f.Angle(d.SlopeDeg))
	return r.Flush()
}
