// Package matching ranks verified agents by distance from a donation's
// pickup location and selects the candidate set offered the donation.
package matching

import (
	"math"
	"sort"

	"github.com/GauravSharma9258/DBMS-Project/internal/geo"
	"github.com/GauravSharma9258/DBMS-Project/internal/repository"
)

// DefaultCandidateLimit bounds how many agents are offered a donation.
const DefaultCandidateLimit = 3

type RankedAgent struct {
	AgentID    string
	DistanceKm float64
}

// Rank orders agents by ascending great-circle distance from origin and
// truncates the result to limit. Agents without usable coordinates are
// dropped. Equal distances keep the input order; callers must not rely
// on any finer tiebreak.
func Rank(origin geo.Point, agents []*repository.User, limit int) []RankedAgent {
	ranked := make([]RankedAgent, 0, len(agents))
	for _, agent := range agents {
		km, ok := geo.DistanceKm(origin, geo.Point{Lat: agent.Latitude, Lng: agent.Longitude})
		if !ok || math.IsNaN(km) || math.IsInf(km, 0) {
			continue
		}
		ranked = append(ranked, RankedAgent{AgentID: agent.ID, DistanceKm: km})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// RoundKm rounds a distance to two decimal places, the precision stored
// on candidate rows.
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
