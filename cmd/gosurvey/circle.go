package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/paulmach/orb/geojson"
	"github.com/philipparndt/gosurvey/internal/monitoring"
	"github.com/philipparndt/gosurvey/pkg/analysis"
	"github.com/philipparndt/gosurvey/pkg/export"
	"github.com/philipparndt/gosurvey/pkg/geometry"
	"github.com/philipparndt/gosurvey/pkg/points"
	"github.com/spf13/cobra"
)

var (
	circleDXF     string
	circleGeoJSON string
	circlePlot    string
)

var circleCmd = &cobra.Command{
	Use:   "circle [file]",
	Short: "Fit a circle to points measured on an arc",
	Long: `Fit a plan circle to the E/N coordinates of the stations in a file with both
the three-point average and the least-squares method, and report the one with
the smaller RMSE. Heights are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: runCircle,
}

func init() {
	rootCmd.AddCommand(circleCmd)

	circleCmd.Flags().StringVar(&circleDXF, "dxf", "", "Write stations and fitted circle to a DXF file")
	circleCmd.Flags().StringVar(&circleGeoJSON, "geojson", "", "Write stations and fitted circle to a GeoJSON file")
	circleCmd.Flags().StringVar(&circlePlot, "plot", "", "Plot stations and fitted circle (png, svg, pdf)")
	addWatchFlag(circleCmd)
}

func runCircle(cmd *cobra.Command, args []string) error {
	return runWatched(cmd, args, func(out io.Writer) error {
		set, err := loadPoints(args[0])
		if err != nil {
			return err
		}
		return computeCircle(out, set)
	})
}

func computeCircle(out io.Writer, set *points.PointSet) error {
	pts := set.PlanPoints()
	fitter := cfg.CircleFitter()

	var avg, ls *geometry.Circle2D
	if len(pts) > cfg.GetMaxTripletPoints() {
		monitoring.Logf("skipping three-point average: %d points exceed max_triplet_points %d",
			len(pts), cfg.GetMaxTripletPoints())
	} else if c, err := fitter.TripletAverage(pts); err == nil {
		avg = &c
	} else if !errors.Is(err, geometry.ErrDegenerate) {
		return err
	}
	if c, err := fitter.LeastSquares(pts); err == nil {
		ls = &c
	}

	choice, err := geometry.ChooseBestCircle(pts, avg, ls)
	if err != nil {
		return fmt.Errorf("no circle through %d points: %w", len(pts), err)
	}

	f := formatter()
	r := analysis.NewReport(out)
	r.Title(fmt.Sprintf("Circle fit (%d points)", len(pts)))
	r.Row("Method", string(choice.Method))
	r.Row("Center E", f.Float(choice.Circle.CX))
	r.Row("Center N", f.Float(choice.Circle.CY))
	r.Row("Radius", f.Float(choice.Circle.R))
	r.Row("Diameter", f.Float(2*choice.Circle.R))
	r.Row("RMSE", f.Float(choice.Stats.RMSE))
	r.Row("Mean |residual|", f.Float(choice.Stats.MeanAbs))
	r.Blank()

	for _, cand := range []struct {
		name   geometry.CircleMethod
		circle *geometry.Circle2D
	}{
		{geometry.MethodTripletAverage, avg},
		{geometry.MethodLeastSquares, ls},
	} {
		if cand.circle == nil {
			r.Row(string(cand.name), analysis.NotAvailable)
			continue
		}
		stats := geometry.CircleStatistics(*cand.circle, pts)
		r.Row(string(cand.name), fmt.Sprintf("R=%s RMSE=%s", f.Float(cand.circle.R), f.Float(stats.RMSE)))
	}
	r.Blank()

	r.Title("Residuals")
	center := choice.Circle.Center()
	for i, p := range pts {
		r.Row(stationLabel(set.Stations[i], i), f.Float(p.Distance(center)-choice.Circle.R))
	}
	if err := r.Flush(); err != nil {
		return err
	}

	return exportCircle(choice.Circle, set)
}

func exportCircle(c geometry.Circle2D, set *points.PointSet) error {
	if circleDXF != "" {
		if err := export.CircleDXF(circleDXF, c, set.Stations); err != nil {
			return fmt.Errorf("failed to write DXF: %w", err)
		}
		monitoring.Logf("wrote %s", circleDXF)
	}
	if circleGeoJSON != "" {
		if err := writeGeoJSONFile(circleGeoJSON, export.CircleFeatureCollection(c, set.Stations)); err != nil {
			return err
		}
	}
	if circlePlot != "" {
		if err := export.CirclePlot(circlePlot, c, set.PlanPoints()); err != nil {
			return fmt.Errorf("failed to write plot: %w", err)
		}
		monitoring.Logf("wrote %s", circlePlot)
	}
	return nil
}

// stationLabel names a station by id, or by its 1-based position
func stationLabel(st points.Station, i int) string {
	if st.ID != "" {
		return st.ID
	}
	return fmt.Sprintf("#%d", i+1)
}

func writeGeoJSONFile(path string, fc *geojson.FeatureCollection) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := export.WriteGeoJSON(file, fc); err != nil {
		return err
	}
	monitoring.Logf("wrote %s", path)
	return file.Close()
}
