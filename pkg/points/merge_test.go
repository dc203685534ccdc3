package points

import (
	"math"
	"testing"

	"github.com/philipparndt/gosurvey/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeAveragesSharedIDs(t *testing.T) {
	first := []Station{
		{ID: "S1", Point: geometry.NewVector3(100, 200, 10)},
		{ID: "S2", Point: geometry.NewVector3(110, 200, 10)},
	}
	second := []Station{
		{ID: "S2", Point: geometry.NewVector3(110.002, 200, 10.004)},
		{ID: "S3", Point: geometry.NewVector2(120, 205)},
		{Point: geometry.NewVector2(1, 1)},
	}

	merged, conflicts := Merge(0.01, first, second)
	require.Len(t, merged, 4)
	assert.Empty(t, conflicts)

	assert.Equal(t, "S1", merged[0].ID)
	assert.Equal(t, "S2", merged[1].ID)
	assert.InDelta(t, 110.001, merged[1].Point.E, 1e-9)
	assert.InDelta(t, 10.002, merged[1].Point.H, 1e-9)
	assert.Equal(t, "S3", merged[2].ID)
	assert.True(t, math.IsNaN(merged[2].Point.H))
	assert.Equal(t, "", merged[3].ID)
}

func TestMergeHeightsFromObservationsThatHaveThem(t *testing.T) {
	merged, _ := Merge(1,
		[]Station{{ID: "K", Point: geometry.NewVector2(0, 0)}},
		[]Station{{ID: "K", Point: geometry.NewVector3(0, 0, 42)}},
	)
	require.Len(t, merged, 1)
	assert.Equal(t, 42.0, merged[0].Point.H)
}

func TestMergeReportsConflicts(t *testing.T) {
	merged, conflicts := Merge(0.05,
		[]Station{{ID: "T", Point: geometry.NewVector3(0, 0, 0)}},
		[]Station{{ID: "T", Point: geometry.NewVector3(0.3, 0.4, 0)}},
		[]Station{{ID: "T", Point: geometry.NewVector3(0, 0, 0.01)}},
	)
	require.Len(t, merged, 1)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "T", conflicts[0].ID)
	assert.Equal(t, 3, conflicts[0].Count)
	assert.InDelta(t, 0.5, conflicts[0].Spread, 1e-12)
}

func TestMergeEmpty(t *testing.T) {
	merged, conflicts := Merge(0.01)
	assert.Empty(t, merged)
	assert.Empty(t, conflicts)
}
