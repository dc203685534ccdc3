package main

import (
	"fmt"
	"io"

	"github.com/philipparndt/gosurvey/pkg/analysis"
	"github.com/philipparndt/gosurvey/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	chainageFrom string
	chainageTo   string
)

var chainageCmd = &cobra.Command{
	Use:   "chainage [file]",
	Short: "Chainage and offset of points against a baseline",
	Long: `Locate every station against the plan baseline from --from to --to: chainage
along the line, signed perpendicular offset (positive left), side (L, R or 0),
the baseline height interpolated at the chainage and the height difference.`,
	Args: cobra.ExactArgs(1),
	RunE: runChainage,
}

func init() {
	rootCmd.AddCommand(chainageCmd)

	chainageCmd.Flags().StringVar(&chainageFrom, "from", "", "Baseline start as E,N[,H] or a station id in the file")
	chainageCmd.Flags().StringVar(&chainageTo, "to", "", "Baseline end as E,N[,H] or a station id in the file")
	_ = chainageCmd.MarkFlagRequired("from")
	_ = chainageCmd.MarkFlagRequired("to")
	addWatchFlag(chainageCmd)
}

func runChainage(cmd *cobra.Command, args []string) error {
	return runWatched(cmd, args, func(out io.Writer) error {
		set, err := loadPoints(args[0])
		if err != nil {
			return err
		}
		a, err := resolvePoint(chainageFrom, set)
		if err != nil {
			return err
		}
		b, err := resolvePoint(chainageTo, set)
		if err != nil {
			return err
		}
		if a.Sub(b).Horizontal() < geometry.MinAxisLength {
			return fmt.Errorf("baseline %s → %s: %w", chainageFrom, chainageTo, geometry.ErrZeroBaseline)
		}

		f := formatter()
		r := analysis.NewReport(out)
		r.Title(fmt.Sprintf("Chainage against baseline (length %s)", f.Float(a.Sub(b).Horizontal())))
		for i, st := range set.Stations {
			c := geometry.ChainageOffset(a, b, st.Point)
			r.Row(stationLabel(st, i), fmt.Sprintf("ch=%s offset=%s %s h_line=%s dh=%s",
				f.Float(c.T), f.Float(c.Offset), c.Side, f.Float(c.HLine), f.Float(c.DH)))
		}
		return r.Flush()
	})
}
