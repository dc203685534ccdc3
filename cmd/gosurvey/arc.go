package main

import (
	"fmt"

	"github.com/philipparndt/gosurvey/pkg/analysis"
	"github.com/philipparndt/gosurvey/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	arcRadius  float64
	arcChord   float64
	arcSagitta float64
)

var arcCmd = &cobra.Command{
	Use:   "arc",
	Short: "Solve a circular arc from radius and chord or chord and sagitta",
	Long: `Compute sagitta, central angle and arc length of a circular segment from
--radius and --chord, or the radius from --chord and --sagitta.`,
	Args: cobra.NoArgs,
	RunE: runArc,
}

func init() {
	rootCmd.AddCommand(arcCmd)

	arcCmd.Flags().Float64VarP(&arcRadius, "radius", "r", 0, "Arc radius")
	arcCmd.Flags().Float64VarP(&arcChord, "chord", "c", 0, "Chord length")
	arcCmd.Flags().Float64VarP(&arcSagitta, "sagitta", "s", 0, "Rise of the arc over the chord")

	arcCmd.MarkFlagsMutuallyExclusive("radius", "sagitta")
	arcCmd.MarkFlagsOneRequired("radius", "sagitta")
	_ = arcCmd.MarkFlagRequired("chord")
}

func runArc(cmd *cobra.Command, args []string) error {
	var (
		arc geometry.Arc
		err error
	)
	if cmd.Flags().Changed("sagitta") {
		arc, err = geometry.SolveArcFromSagitta(arcChord, arcSagitta)
	} else {
		arc, err = geometry.SolveArc(arcRadius, arcChord)
	}
	if err != nil {
		return fmt.Errorf("invalid arc: %w", err)
	}

	f := formatter()
	r := analysis.NewReport(cmd.OutOrStdout())
	r.Title("Arc")
	r.Row("Radius", f.Float(arc.Radius))
	r.Row("Chord", f.Float(arc.Chord))
	r.Row("Sagitta", f.Float(arc.Sagitta))
	r.Row("Central angle", f.Angle(arc.CentralDeg))
	r.Row("Arc length", f.Float(arc.ArcLength))
	return r.Flush()
}
