package main

import (
	"fmt"

	"github.com/philipparndt/gosurvey/internal/monitoring"
	"github.com/philipparndt/gosurvey/pkg/analysis"
	"github.com/philipparndt/gosurvey/pkg/export"
	"github.com/philipparndt/gosurvey/pkg/pipe"
	"github.com/spf13/cobra"
)

var (
	teeMain     float64
	teeBranch   float64
	teeAngle    float64
	teeSegments int
	teeDXF      string
	teePlot     string
	teeSCAD     string
	teeSTL      string
)

var teeCmd = &cobra.Command{
	Use:   "tee",
	Short: "Unrolled cutting template for a pipe branch",
	Long: `Compute the cut line of a branch pipe joining a main pipe, unrolled around the
branch circumference. Heights are measured from the lowest point of the cut.
Use the same unit for both radii; the DXF drawing is written at 1:1.`,
	Args: cobra.NoArgs,
	RunE: runTee,
}

func init() {
	rootCmd.AddCommand(teeCmd)

	teeCmd.Flags().Float64Var(&teeMain, "main", 0, "Outside radius of the main pipe")
	teeCmd.Flags().Float64Var(&teeBranch, "branch", 0, "Outside radius of the branch pipe")
	teeCmd.Flags().Float64Var(&teeAngle, "angle", 90, "Angle between the pipe axes in degrees")
	teeCmd.Flags().IntVarP(&teeSegments, "segments", "n", 16, "Template points around the circumference")
	teeCmd.Flags().StringVar(&teeDXF, "dxf", "", "Write the template to a DXF file")
	teeCmd.Flags().StringVar(&teePlot, "plot", "", "Plot the template (png, svg, pdf)")
	teeCmd.Flags().StringVar(&teeSCAD, "scad", "", "Write an OpenSCAD model of both pipes")
	teeCmd.Flags().StringVar(&teeSTL, "stl", "", "Render the OpenSCAD model to STL (needs openscad and --scad)")

	teeCmd.MarkFlagsRequiredTogether("main", "branch")
	teeCmd.MarkFlagsRequiredTogether("stl", "scad")
	_ = teeCmd.MarkFlagRequired("main")
}

func runTee(cmd *cobra.Command, args []string) error {
	tpl, err := pipe.UnrollTee(teeMain, teeBranch, teeAngle, teeSegments)
	if err != nil {
		return fmt.Errorf("invalid tee: %w", err)
	}

	f := formatter()
	r := analysis.NewReport(cmd.OutOrStdout())
	r.Title(fmt.Sprintf("Tee template R=%s r=%s angle=%s", f.Float(tpl.MainRadius), f.Float(tpl.BranchRadius), f.Angle(tpl.AngleDeg)))
	r.Row("Circumference", f.Float(tpl.Circumference()))
	r.Row("Depth", f.Float(tpl.Depth()))
	r.Blank()
	for i, p := range tpl.Points {
		deg := 360 * float64(i) / float64(len(tpl.Points)-1)
		r.Row(f.Angle(deg), fmt.Sprintf("arc=%s height=%s", f.Float(p.Arc), f.Float(p.Height)))
	}
	if err := r.Flush(); err != nil {
		return err
	}

	if teeDXF != "" {
		if err := export.TeeDXF(teeDXF, tpl); err != nil {
			return fmt.Errorf("failed to write DXF: %w", err)
		}
		monitoring.Logf("wrote %s", teeDXF)
	}
	if teePlot != "" {
		if err := export.TeePlot(teePlot, tpl); err != nil {
			return fmt.Errorf("failed to write plot: %w", err)
		}
		monitoring.Logf("wrote %s", teePlot)
	}
	if teeSCAD != "" {
		if err := export.TeeSCADFile(teeSCAD, tpl); err != nil {
			return err
		}
		monitoring.Logf("wrote %s", teeSCAD)
	}
	if teeSTL != "" {
		if err := export.RenderSTL(cmd.Context(), teeSCAD, teeSTL); err != nil {
			return err
		}
		monitoring.Logf("wrote %s", teeSTL)
	}
	return nil
}
