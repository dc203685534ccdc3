package main

import (
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/gosurvey/internal/monitoring"
	"github.com/philipparndt/gosurvey/pkg/export"
	"github.com/philipparndt/gosurvey/pkg/points"
	"github.com/spf13/cobra"
)

var (
	mergeTolerance float64
	mergeOutput    string
	mergeDXF       string
	mergeGeoJSON   string
	mergeStrict    bool
)

var mergeCmd = &cobra.Command{
	Use:   "merge [file...]",
	Short: "Merge point files, averaging repeated stations",
	Long: `Combine point files into one list. Stations observed more than once are
averaged; observations that disagree by more than --tolerance are reported.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().Float64VarP(&mergeTolerance, "tolerance", "t", 0.01, "Largest accepted spread of repeated observations")
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "", "Write the merged list to a file instead of stdout")
	mergeCmd.Flags().StringVar(&mergeDXF, "dxf", "", "Write the merged stations to a DXF file")
	mergeCmd.Flags().StringVar(&mergeGeoJSON, "geojson", "", "Write the merged stations to a GeoJSON file")
	mergeCmd.Flags().BoolVar(&mergeStrict, "strict", false, "Fail when observations disagree")
	addWatchFlag(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	return runWatched(cmd, args, func(out io.Writer) error {
		sets := make([][]points.Station, 0, len(args))
		for _, path := range args {
			set, err := loadPoints(path)
			if err != nil {
				return err
			}
			sets = append(sets, set.Stations)
		}

		merged, conflicts := points.Merge(mergeTolerance, sets...)

		f := formatter()
		for _, c := range conflicts {
			monitoring.Logf("station %s: %d observations spread %s", c.ID, c.Count, f.Float(c.Spread))
		}
		if mergeStrict && len(conflicts) > 0 {
			return fmt.Errorf("%d stations disagree by more than %g", len(conflicts), mergeTolerance)
		}

		if err := writeMerged(out, merged); err != nil {
			return err
		}

		if mergeDXF != "" {
			if err := export.StationsDXF(mergeDXF, merged); err != nil {
				return fmt.Errorf("failed to write DXF: %w", err)
			}
			monitoring.Logf("wrote %s", mergeDXF)
		}
		if mergeGeoJSON != "" {
			if err := writeGeoJSONFile(mergeGeoJSON, export.StationsFeatureCollection(merged)); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeMerged(out io.Writer, merged []points.Station) error {
	w := out
	if mergeOutput != "" {
		file, err := os.Create(mergeOutput)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", mergeOutput, err)
		}
		defer file.Close()
		w = file
	}

	f := formatter()
	for _, st := range merged {
		line := f.Float(st.Point.E) + " " + f.Float(st.Point.N)
		if st.Point.HasHeight() {
			line += " " + f.Float(st.Point.H)
		}
		if st.ID != "" {
			line = st.ID + " " + line
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	if mergeOutput != "" {
		monitoring.Logf("wrote %d stations to %s", len(merged), mergeOutput)
	}
	return nil
}

