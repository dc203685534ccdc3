package points

import (
	"math"

	"github.com/philipparndt/gosurvey/pkg/geometry"
)

// Conflict reports a station whose observations disagree by more than the
// merge tolerance
type Conflict struct {
	ID     string
	Count  int
	Spread float64 // Largest distance of an observation from the first one
}

// Merge combines station lists. Observations sharing an ID are averaged;
// heights are averaged over the observations that have one. Anonymous
// stations are passed through unchanged. Output keeps first-seen order.
func Merge(tol float64, sets ...[]Station) ([]Station, []Conflict) {
	type group struct {
		first geometry.Vector3
		obs   []geometry.Vector3
	}

	var order []string
	groups := make(map[string]*group)
	var merged []Station
	slot := make(map[string]int)

	for _, set := range sets {
		for _, st := range set {
			if st.ID == "" {
				merged = append(merged, st)
				continue
			}
			g, ok := groups[st.ID]
			if !ok {
				g = &group{first: st.Point}
				groups[st.ID] = g
				order = append(order, st.ID)
				slot[st.ID] = len(merged)
				merged = append(merged, Station{ID: st.ID})
			}
			g.obs = append(g.obs, st.Point)
		}
	}

	var conflicts []Conflict
	for _, id := range order {
		g := groups[id]
		merged[slot[id]].Point = average(g.obs)

		spread := 0.0
		for _, p := range g.obs {
			spread = math.Max(spread, separation(g.first, p))
		}
		if spread > tol {
			conflicts = append(conflicts, Conflict{ID: id, Count: len(g.obs), Spread: spread})
		}
	}

	return merged, conflicts
}

func average(obs []geometry.Vector3) geometry.Vector3 {
	var e, n, h float64
	heights := 0
	for _, p := range obs {
		e += p.E
		n += p.N
		if p.HasHeight() {
			h += p.H
			heights++
		}
	}
	k := float64(len(obs))
	if heights == 0 {
		return geometry.NewVector2(e/k, n/k)
	}
	return geometry.NewVector3(e/k, n/k, h/float64(heights))
}

// separation is the 3D distance when both points have heights, else the plan distance
func separation(a, b geometry.Vector3) float64 {
	if a.HasHeight() && b.HasHeight() {
		return a.Distance(b)
	}
	return a.Sub(b).Horizontal()
}
