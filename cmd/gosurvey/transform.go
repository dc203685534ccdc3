package main

import (
	"fmt"
	"io"

	"github.com/philipparndt/gosurvey/pkg/analysis"
	"github.com/philipparndt/gosurvey/pkg/geometry"
	"github.com/philipparndt/gosurvey/pkg/points"
	"github.com/philipparndt/gosurvey/pkg/transform"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

var (
	transformScale bool
	transformApply string
)

var transformCmd = &cobra.Command{
	Use:   "transform [target-file] [source-file]",
	Short: "Fit a rigid or similarity transformation between point sets",
	Long: `Fit the rotation and translation (and with --scale a uniform scale) that carry
the source stations onto the target stations with the same ids, in the
least-squares sense. At least three common stations are needed. With --apply
the stations of another source file are mapped into the target frame.`,
	Args: cobra.ExactArgs(2),
	RunE: runTransform,
}

func init() {
	rootCmd.AddCommand(transformCmd)

	transformCmd.Flags().BoolVar(&transformScale, "scale", false, "Also fit a uniform scale")
	transformCmd.Flags().StringVar(&transformApply, "apply", "", "Map the stations of this source file with the fit")
	addWatchFlag(transformCmd)
}

func runTransform(cmd *cobra.Command, args []string) error {
	return runWatched(cmd, args, func(out io.Writer) error {
		target, source, err := loadPair(args)
		if err != nil {
			return err
		}
		p, q, ids, err := pairStations(target, source)
		if err != nil {
			return err
		}

		fit, err := transform.BestFitRigid(p, q, transformScale)
		if err != nil {
			return err
		}

		f := formatter()
		r := analysis.NewReport(out)
		r.Title(fmt.Sprintf("Rigid fit (%d common stations)", len(ids)))
		r.Row("Scale", f.Float(fit.S))
		if transformScale {
			r.Row("Scale ppm", f.Float((fit.S-1)*1e6))
		}
		r.Row("Translation", f.Vector(fit.T))
		r.Row("RMS", f.Float(fit.RMS))
		r.Blank()
		r.Title("Residuals")
		for i, id := range ids {
			r.Row(id, f.Float(fit.Apply(q[i]).Distance(p[i])))
		}
		if err := r.Flush(); err != nil {
			return err
		}

		fmt.Fprintf(out, "\nMatrix:\n%v\n", mat.Formatted(fit.Homogeneous(), mat.Prefix(""), mat.Squeeze()))

		return applyToFile(out, transformApply, fit.Apply)
	})
}

func loadPair(args []string) (*points.PointSet, *points.PointSet, error) {
	target, err := loadPoints(args[0])
	if err != nil {
		return nil, nil, err
	}
	source, err := loadPoints(args[1])
	if err != nil {
		return nil, nil, err
	}
	return target, source, nil
}

// applyToFile maps every station of a file and prints the result as a point list
func applyToFile(out io.Writer, path string, apply func(geometry.Vector3) geometry.Vector3) error {
	if path == "" {
		return nil
	}
	set, err := loadPoints(path)
	if err != nil {
		return err
	}

	f := formatter()
	fmt.Fprintf(out, "\n# %s mapped into the target frame\n", set.Name)
	for i, st := range set.Stations {
		m := apply(st.Point)
		fmt.Fprintf(out, "%s %s %s %s\n", stationLabel(st, i), f.Float(m.E), f.Float(m.N), f.Float(m.H))
	}
	return nil
}
