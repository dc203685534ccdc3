package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/philipparndt/gosurvey/pkg/geometry"
	"github.com/philipparndt/gosurvey/pkg/points"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPointsUsesReloadedSet(t *testing.T) {
	t.Cleanup(clearReloads)

	// The file does not exist, so only the stored set can satisfy the load
	rel := filepath.Join(t.TempDir(), "sub", "..", "arc.txt")
	abs, err := filepath.Abs(rel)
	require.NoError(t, err)

	set := points.NewPointSet("arc")
	set.Stations = append(set.Stations, points.Station{ID: "P1", Point: geometry.NewVector3(1, 2, 3)})
	require.True(t, storeReload(abs, set, nil))

	got, err := loadPoints(rel)
	require.NoError(t, err)
	assert.Same(t, set, got)

	assert.False(t, storeReload(abs, nil, errors.New("line 3: syntax error")))
	_, err = loadPoints(rel)
	assert.Error(t, err)
}

func TestLoadPointsParsesWithoutReload(t *testing.T) {
	t.Cleanup(clearReloads)

	path := writeFile(t, "pts.txt", "P1 10 20 30\nP2 11 21\n")
	set, err := loadPoints(path)
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
}
