package main

import (
	"fmt"
	"io"

	"github.com/philipparndt/gosurvey/pkg/analysis"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a point file",
	Long:  "Show the station count, the extent of the coordinates, the centroid and the closest and farthest station spacing.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	addWatchFlag(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	return runWatched(cmd, args, func(out io.Writer) error {
		filename := args[0]

		set, err := loadPoints(filename)
		if err != nil {
			return err
		}
		result := analysis.AnalyzeStations(set)

		f := formatter()
		r := analysis.NewReport(out)
		r.Title("Point File Information")
		r.Row("Name", set.Name)
		r.Row("File", filename)
		r.Row("Stations", fmt.Sprint(result.Count))
		r.Row("With height", fmt.Sprint(result.WithHeight))
		if result.Count == 0 {
			return r.Flush()
		}
		r.Blank()

		r.Title("Extent")
		r.Row("Min", f.Vector(result.Min))
		r.Row("Max", f.Vector(result.Max))
		r.Row("Size", f.Vector(result.Max.Sub(result.Min)))
		r.Row("Centroid", f.Vector(result.Centroid))

		if result.Count > 1 {
			r.Blank()
			r.Title("Spacing (plan)")
			closest, farthest := result.MinSpacing, result.MaxSpacing
			r.Row("Closest", fmt.Sprintf("%s between %s and %s", f.Float(closest.Distance),
				stationLabel(set.Stations[closest.From], closest.From), stationLabel(set.Stations[closest.To], closest.To)))
			r.Row("Farthest", fmt.Sprintf("%s between %s and %s", f.Float(farthest.Distance),
				stationLabel(set.Stations[farthest.From], farthest.From), stationLabel(set.Stations[farthest.To], farthest.To)))
		}
		return r.Flush()
	})
}
