package main

import (
	"fmt"
	"io"

	"github.com/philipparndt/gosurvey/pkg/analysis"
	"github.com/philipparndt/gosurvey/pkg/geometry"
	"github.com/spf13/cobra"
)

var endfitCmd = &cobra.Command{
	Use:   "endfit [file] [second-file]",
	Short: "Fit the center and radius of pipe ends in 3D",
	Long: `Fit a plane through the points measured around a pipe end and a circle within
that plane. With a second file the axis and slope between both end centers is
reported as well. Every station needs a height.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runEndfit,
}

func init() {
	rootCmd.AddCommand(endfitCmd)
	addWatchFlag(endfitCmd)
}

func runEndfit(cmd *cobra.Command, args []string) error {
	return runWatched(cmd, args, func(out io.Writer) error {
		fitter := cfg.CircleFitter()
		f := formatter()
		r := analysis.NewReport(out)

		var centers []geometry.Vector3
		for _, path := range args {
			set, err := loadPoints(path)
			if err != nil {
				return err
			}
			fit, err := fitter.FitEnd(set.Points())
			if err != nil {
				return fmt.Errorf("end fit for %s: %w", path, err)
			}
			centers = append(centers, fit.Center)

			r.Title(fmt.Sprintf("Pipe end %s (%d points)", set.Name, set.Len()))
			r.Row("Center", f.Vector(fit.Center))
			r.Row("Radius", f.Float(fit.Radius))
			r.Row("Diameter", f.Float(2*fit.Radius))
			r.Row("RMS", f.Float(fit.RMS))
			r.Row("Normal", f.Vector(fit.Normal))
			r.Blank()
		}

		if len(centers) == 2 {
			s := geometry.AxisAndSlope(centers[0], centers[1])
			r.Title("Axis between centers")
			r.Row("ΔE", f.Float(s.Delta.E))
			r.Row("ΔN", f.Float(s.Delta.N))
			r.Row("ΔH", f.Float(s.Delta.H))
			r.Row("Horizontal", f.Float(s.Horizontal))
			r.Row("Length 3D", f.Float(s.Length3D))
			r.Row("Slope", f.Angle(s.SlopeDeg))
			if s.Horizontal > 0 {
				r.Row("Slope %", f.Float(100*s.Delta.H/s.Horizontal))
			}
			r.Row("Direction", f.Vector(s.Direction))
		}
		return r.Flush()
	})
}
