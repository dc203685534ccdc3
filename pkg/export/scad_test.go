package export

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/philipparndt/gosurvey/pkg/pipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeeSCAD(t *testing.T) {
	tpl, err := pipe.UnrollTee(50, 25, 60, 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, TeeSCAD(&buf, tpl))
	scad := buf.String()

	assert.Contains(t, scad, "$fn = 96;")
	assert.Contains(t, scad, "rotate([0, 90, 0]) cylinder(r = 50,")
	assert.Contains(t, scad, "rotate([0, 30, 0]) cylinder(r = 25,")
	assert.Contains(t, scad, "union() {")
}

func TestTeeSCADFile(t *testing.T) {
	tpl, err := pipe.UnrollTee(40, 40, 90, 0)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "tee.scad")
	require.NoError(t, TeeSCADFile(path, tpl))
	assert.Contains(t, readFile(t, path), "rotate([0, 0, 0]) cylinder(r = 40, h = 160);")
}

func TestRenderSTLWithoutOpenSCAD(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	err := RenderSTL(context.Background(), "tee.scad", "tee.stl")
	assert.ErrorIs(t, err, ErrOpenSCADMissing)
}
