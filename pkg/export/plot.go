package export

import (
	"fmt"
	"math"

	"github.com/philipparndt/gosurvey/pkg/geometry"
	"github.com/philipparndt/gosurvey/pkg/pipe"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// TeePlot saves the tee cut line as an image. The format follows the file
// extension (png, svg, pdf, eps). Template units are taken as millimetres,
// so the plot area is close to full size for printing.
func TeePlot(path string, t pipe.Template) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Tee cut R=%g r=%g angle=%g°", t.MainRadius, t.BranchRadius, t.AngleDeg)
	p.X.Label.Text = "Arc (mm)"
	p.Y.Label.Text = "Height (mm)"

	xys := make(plotter.XYs, len(t.Points))
	for i, pt := range t.Points {
		xys[i] = plotter.XY{X: pt.Arc, Y: pt.Height}
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("failed to create cut line: %w", err)
	}
	line.Width = vg.Points(1)
	p.Add(plotter.NewGrid(), line)

	p.X.Min, p.X.Max = 0, t.Circumference()
	p.Y.Min, p.Y.Max = 0, math.Max(t.Depth(), 1)

	width := vg.Length(t.Circumference())*vg.Millimeter + 2*vg.Centimeter
	height := vg.Length(p.Y.Max)*vg.Millimeter + 3*vg.Centimeter
	return p.Save(width, height, path)
}

// CirclePlot saves the measured points with the fitted circle
func CirclePlot(path string, c geometry.Circle2D, pts []geometry.Point2D) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Circle fit R=%.4f", c.R)
	p.X.Label.Text = "E"
	p.Y.Label.Text = "N"

	measured := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		measured[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	scatter, err := plotter.NewScatter(measured)
	if err != nil {
		return fmt.Errorf("failed to create point scatter: %w", err)
	}

	outline := make(plotter.XYs, CircleVertices+1)
	for i := range outline {
		a := 2 * math.Pi * float64(i) / CircleVertices
		outline[i] = plotter.XY{X: c.CX + c.R*math.Cos(a), Y: c.CY + c.R*math.Sin(a)}
	}
	circle, err := plotter.NewLine(outline)
	if err != nil {
		return fmt.Errorf("failed to create circle outline: %w", err)
	}
	circle.Width = vg.Points(1)

	p.Add(plotter.NewGrid(), circle, scatter)
	return p.Save(12*vg.Centimeter, 12*vg.Centimeter, path)
}
