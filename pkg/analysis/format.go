package analysis

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/philipparndt/gosurvey/pkg/geometry"
)

// NotAvailable is printed for unknown values
const NotAvailable = "n/a"

// Formatter renders numbers with a fixed number of decimals
type Formatter struct {
	Decimals int
}

// Float formats a value, NaN and infinities as n/a
func (f Formatter) Float(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotAvailable
	}
	return strconv.FormatFloat(v, 'f', f.Decimals, 64)
}

// Measurement formats a value with its unit
func (f Formatter) Measurement(v float64, unit string) string {
	s := f.Float(v)
	if s == NotAvailable || unit == "" {
		return s
	}
	return s + " " + unit
}

// Angle formats an angle in degrees
func (f Formatter) Angle(deg float64) string {
	s := f.Float(deg)
	if s == NotAvailable {
		return s
	}
	return s + "°"
}

// Vector formats a point as E N H
func (f Formatter) Vector(v geometry.Vector3) string {
	return fmt.Sprintf("E=%s N=%s H=%s", f.Float(v.E), f.Float(v.N), f.Float(v.H))
}

// Report writes aligned label/value rows
type Report struct {
	tw *tabwriter.Writer
}

// NewReport starts a report on w. Call Flush when done.
func NewReport(w io.Writer) *Report {
	return &Report{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

// Title writes a heading line
func (r *Report) Title(title string) {
	fmt.Fprintf(r.tw, "%s\n", title)
}

// Row writes one label and its value
func (r *Report) Row(label, value string) {
	fmt.Fprintf(r.tw, "  %s:\t%s\n", label, value)
}

// Blank writes an empty line
func (r *Report) Blank() {
	fmt.Fprintln(r.tw)
}

// Flush writes the buffered rows
func (r *Report) Flush() error {
	return r.tw.Flush()
}
