package main

import (
	"fmt"

	"github.com/philipparndt/gosurvey/pkg/geometry"
	"github.com/philipparndt/gosurvey/pkg/points"
)

// pairStations matches stations of two sets by id, in target order
func pairStations(target, source *points.PointSet) (p, q []geometry.Vector3, ids []string, err error) {
	byID := make(map[string]geometry.Vector3, source.Len())
	for _, st := range source.Stations {
		if st.ID != "" {
			byID[st.ID] = st.Point
		}
	}

	for _, st := range target.Stations {
		if st.ID == "" {
			continue
		}
		sp, ok := byID[st.ID]
		if !ok {
			continue
		}
		p = append(p, st.Point)
		q = append(q, sp)
		ids = append(ids, st.ID)
	}

	if len(ids) == 0 {
		return nil, nil, nil, fmt.Errorf("no common station ids between %s and %s", target.Name, source.Name)
	}
	return p, q, ids, nil
}
