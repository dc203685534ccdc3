package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/exec"
	"strings"

	"github.com/philipparndt/gosurvey/pkg/pipe"
)

// ErrOpenSCADMissing is returned when the openscad binary is not in PATH
var ErrOpenSCADMissing = errors.New("openscad not found in PATH, install it from https://openscad.org/")

// scadFacets is the $fn used for both cylinders
const scadFacets = 96

// TeeSCAD writes an OpenSCAD model of the two pipes described by t. The main
// pipe runs along X through the origin, the branch leaves it in the XZ plane.
func TeeSCAD(w io.Writer, t pipe.Template) error {
	alpha := t.AngleDeg * math.Pi / 180
	branchLength := 2*t.MainRadius/math.Sin(alpha) + 2*t.BranchRadius
	mainLength := 2 * (branchLength + t.MainRadius)

	var b strings.Builder
	fmt.Fprintf(&b, "// Tee R=%g r=%g angle=%g\n", t.MainRadius, t.BranchRadius, t.AngleDeg)
	fmt.Fprintf(&b, "$fn = %d;\n\n", scadFacets)
	b.WriteString("union() {\n")
	fmt.Fprintf(&b, "    rotate([0, 90, 0]) cylinder(r = %g, h = %g, center = true);\n", t.MainRadius, mainLength)
	fmt.Fprintf(&b, "    rotate([0, %g, 0]) cylinder(r = %g, h = %g);\n", 90-t.AngleDeg, t.BranchRadius, branchLength)
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// TeeSCADFile writes the model to path
func TeeSCADFile(path string, t pipe.Template) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := TeeSCAD(file, t); err != nil {
		return err
	}
	return file.Close()
}

// RenderSTL runs openscad to turn scadFile into an STL mesh
func RenderSTL(ctx context.Context, scadFile, stlFile string) error {
	if _, err := exec.LookPath("openscad"); err != nil {
		return ErrOpenSCADMissing
	}

	cmd := exec.CommandContext(ctx, "openscad", "-o", stlFile, scadFile)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var msg strings.Builder
		fmt.Fprintf(&msg, "failed to render %s: %v", scadFile, err)
		if stderr.Len() > 0 {
			msg.WriteString("\nstderr: ")
			msg.WriteString(stderr.String())
		}
		if stdout.Len() > 0 {
			msg.WriteString("\nstdout: ")
			msg.WriteString(stdout.String())
		}
		return errors.New(msg.String())
	}
	return nil
}
