package main

import (
	"fmt"
	"io"

	"github.com/philipparndt/gosurvey/pkg/analysis"
	"github.com/philipparndt/gosurvey/pkg/geometry"
	"github.com/philipparndt/gosurvey/pkg/points"
	"github.com/spf13/cobra"
)

var (
	axisFrom string
	axisTo   string
)

var axisCmd = &cobra.Command{
	Use:   "axis [file]",
	Short: "Project points onto a 3D axis",
	Long: `Express every station relative to the axis from --from to --to: distance along
the axis (t), radial distance from it (r) and the angle around it (theta, 0° on
the horizontal to the right of the axis direction). Useful for checking flanges
and bolt circles against a pipe axis.`,
	Args: cobra.ExactArgs(1),
	RunE: runAxis,
}

func init() {
	rootCmd.AddCommand(axisCmd)

	axisCmd.Flags().StringVar(&axisFrom, "from", "", "Axis start as E,N,H or a station id in the file")
	axisCmd.Flags().StringVar(&axisTo, "to", "", "Axis end as E,N,H or a station id in the file")
	_ = axisCmd.MarkFlagRequired("from")
	_ = axisCmd.MarkFlagRequired("to")
	addWatchFlag(axisCmd)
}

func runAxis(cmd *cobra.Command, args []string) error {
	return runWatched(cmd, args, func(out io.Writer) error {
		set, err := loadPoints(args[0])
		if err != nil {
			return err
		}
		a, err := resolvePoint(axisFrom, set)
		if err != nil {
			return err
		}
		b, err := resolvePoint(axisTo, set)
		if err != nil {
			return err
		}
		if !a.HasHeight() || !b.HasHeight() {
			return fmt.Errorf("axis end points need heights: %w", geometry.ErrMissingHeight)
		}

		frame := geometry.BuildAxisFrame(a, b)
		if frame.Degenerate() {
			return fmt.Errorf("axis %s → %s: %w", axisFrom, axisTo, geometry.ErrZeroBaseline)
		}

		f := formatter()
		r := analysis.NewReport(out)
		r.Title(fmt.Sprintf("Axis projection (length %s)", f.Float(frame.Length)))
		for i, st := range set.Stations {
			if !st.Point.HasHeight() {
				r.Row(stationLabel(st, i), analysis.NotAvailable)
				continue
			}
			p := frame.Project(st.Point)
			r.Row(stationLabel(st, i), fmt.Sprintf("t=%s r=%s theta=%s", f.Float(p.T), f.Float(p.R), f.Angle(p.Theta)))
		}
		return r.Flush()
	})
}

// resolvePoint reads a coordinate or looks up a station id in set
func resolvePoint(s string, set *points.PointSet) (geometry.Vector3, error) {
	if p, err := points.ParsePoint(s); err == nil {
		return p, nil
	}
	if set != nil {
		for _, st := range set.Stations {
			if st.ID == s {
				return st.Point, nil
			}
		}
	}
	return geometry.Vector3{}, fmt.Errorf("%q is neither a coordinate nor a station id", s)
}
