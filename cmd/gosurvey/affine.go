package main

import (
	"fmt"
	"io"

	"github.com/philipparndt/gosurvey/pkg/analysis"
	"github.com/philipparndt/gosurvey/pkg/transform"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

var affineApply string

var affineCmd = &cobra.Command{
	Use:   "affine [target-file] [source-file]",
	Short: "Exact affine transformation from four point pairs",
	Long: `Solve the affine map that sends exactly four source stations onto the target
stations with the same ids. The four pairs are matched exactly, without
averaging, so the source stations must not be coplanar.`,
	Args: cobra.ExactArgs(2),
	RunE: runAffine,
}

func init() {
	rootCmd.AddCommand(affineCmd)

	affineCmd.Flags().StringVar(&affineApply, "apply", "", "Map the stations of this source file with the fit")
	addWatchFlag(affineCmd)
}

func runAffine(cmd *cobra.Command, args []string) error {
	return runWatched(cmd, args, func(out io.Writer) error {
		target, source, err := loadPair(args)
		if err != nil {
			return err
		}
		p, q, ids, err := pairStations(target, source)
		if err != nil {
			return err
		}

		fit, err := transform.ExactAffineFit4(q, p)
		if err != nil {
			return fmt.Errorf("%d common stations %v: %w", len(ids), ids, err)
		}

		f := formatter()
		r := analysis.NewReport(out)
		r.Title("Affine fit")
		r.Row("Stations", fmt.Sprint(ids))
		r.Row("Translation", f.Vector(fit.T))
		r.Row("Determinant", f.Float(mat.Det(fit.A.Dense())))
		if err := r.Flush(); err != nil {
			return err
		}

		fmt.Fprintf(out, "\nMatrix:\n%v\n", mat.Formatted(fit.Homogeneous(), mat.Prefix(""), mat.Squeeze()))

		return applyToFile(out, affineApply, fit.Apply)
	})
}
