// Package export writes calculation results to CAD drawings, GeoJSON and
// plots.
package export

import (
	"fmt"

	"github.com/philipparndt/gosurvey/pkg/geometry"
	"github.com/philipparndt/gosurvey/pkg/pipe"
	"github.com/philipparndt/gosurvey/pkg/points"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/entity"
)

// Layer names used in exported drawings
const (
	LayerStations = "STATIONS"
	LayerLabels   = "LABELS"
	LayerFit      = "FIT"
	LayerCut      = "CUT"
	LayerFrame    = "FRAME"
)

// TextHeight is the label height in drawing units
var TextHeight = 0.25

func newDrawing(layers map[string]color.ColorNumber, order ...string) (*drawing.Drawing, error) {
	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0
	for _, name := range order {
		if _, err := d.AddLayer(name, layers[name], dxf.DefaultLineType, false); err != nil {
			return nil, fmt.Errorf("failed to add layer %s: %w", name, err)
		}
	}
	return d, nil
}

func addStations(d *drawing.Drawing, stations []points.Station) error {
	for _, st := range stations {
		h := st.Point.H
		if !st.Point.HasHeight() {
			h = 0
		}
		if err := d.ChangeLayer(LayerStations); err != nil {
			return err
		}
		if _, err := d.Point(st.Point.E, st.Point.N, h); err != nil {
			return fmt.Errorf("failed to add station %q: %w", st.ID, err)
		}
		if st.ID == "" {
			continue
		}
		if err := d.ChangeLayer(LayerLabels); err != nil {
			return err
		}
		if _, err := d.Text(st.ID, st.Point.E+TextHeight/2, st.Point.N+TextHeight/2, h, TextHeight); err != nil {
			return fmt.Errorf("failed to label station %q: %w", st.ID, err)
		}
	}
	return nil
}

// StationsDXF writes stations as points with their ids as labels
func StationsDXF(path string, stations []points.Station) error {
	d, err := newDrawing(map[string]color.ColorNumber{
		LayerStations: color.Red,
		LayerLabels:   color.Green,
	}, LayerStations, LayerLabels)
	if err != nil {
		return err
	}
	if err := addStations(d, stations); err != nil {
		return err
	}
	return d.SaveAs(path)
}

// CircleDXF writes a fitted circle with its center and the measured stations
func CircleDXF(path string, c geometry.Circle2D, stations []points.Station) error {
	d, err := newDrawing(map[string]color.ColorNumber{
		LayerStations: color.Red,
		LayerLabels:   color.Green,
		LayerFit:      color.Blue,
	}, LayerStations, LayerLabels, LayerFit)
	if err != nil {
		return err
	}
	if err := addStations(d, stations); err != nil {
		return err
	}

	if err := d.ChangeLayer(LayerFit); err != nil {
		return err
	}
	if _, err := d.Circle(c.CX, c.CY, 0, c.R); err != nil {
		return fmt.Errorf("failed to add circle: %w", err)
	}
	if _, err := d.Point(c.CX, c.CY, 0); err != nil {
		return fmt.Errorf("failed to add center: %w", err)
	}
	return d.SaveAs(path)
}

// TeeDXF writes an unrolled tee template at drawing scale 1:1. The cut line
// is a polyline; the frame marks the base line and the quarter lines of the
// branch circumference.
func TeeDXF(path string, t pipe.Template) error {
	d, err := newDrawing(map[string]color.ColorNumber{
		LayerCut:    color.Red,
		LayerFrame:  color.Blue,
		LayerLabels: color.Green,
	}, LayerCut, LayerFrame, LayerLabels)
	if err != nil {
		return err
	}

	if err := d.ChangeLayer(LayerCut); err != nil {
		return err
	}
	lwp := entity.NewLwPolyline(len(t.Points))
	for i, p := range t.Points {
		lwp.Vertices[i] = []float64{p.Arc, p.Height}
	}
	d.AddEntity(lwp)

	if err := d.ChangeLayer(LayerFrame); err != nil {
		return err
	}
	width := t.Circumference()
	top := t.Depth() + 2*TextHeight
	if _, err := d.Line(0, 0, 0, width, 0, 0); err != nil {
		return err
	}
	for q := 0; q <= 4; q++ {
		x := width * float64(q) / 4
		if _, err := d.Line(x, 0, 0, x, top, 0); err != nil {
			return err
		}
	}

	if err := d.ChangeLayer(LayerLabels); err != nil {
		return err
	}
	for q := 0; q <= 4; q++ {
		x := width * float64(q) / 4
		if _, err := d.Text(fmt.Sprintf("%d", q*90), x, top+TextHeight/2, 0, TextHeight); err != nil {
			return err
		}
	}

	return d.SaveAs(path)
}
