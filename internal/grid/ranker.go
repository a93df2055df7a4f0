package grid

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/models"
)

// distTieEpsilon is the window within which two haversine distances count as
// tied and the coordinate-delta tie-break applies. One millimeter sits far
// above float noise at Earth scale and far below the separation of distinct
// lattice nodes.
const distTieEpsilon = 1e-3 // meters

// Rank returns the k candidates closest to (lat, lon) by great-circle
// distance, ascending, each annotated with its distance and 0-based rank.
// Ties within distTieEpsilon fall back to smaller |Δlat|, then smaller
// |Δlon|, then enumeration order, which makes the ordering total and the
// output reproducible regardless of how candidates were generated.
func Rank(modelName string, lat, lon float64, cands []Candidate, k int) []models.GridPoint {
	query := orb.Point{lon, lat}

	type scored struct {
		Candidate
		dist float64
	}
	ranked := make([]scored, len(cands))
	for i, c := range cands {
		ranked[i] = scored{c, geo.Distance(query, orb.Point{c.Lon, c.Lat})}
	}

	sort.Slice(ranked, func(a, b int) bool {
		ca, cb := ranked[a], ranked[b]
		if math.Abs(ca.dist-cb.dist) > distTieEpsilon {
			return ca.dist < cb.dist
		}
		dLatA, dLatB := math.Abs(ca.Lat-lat), math.Abs(cb.Lat-lat)
		if dLatA != dLatB {
			return dLatA < dLatB
		}
		dLonA, dLonB := math.Abs(ca.Lon-lon), math.Abs(cb.Lon-lon)
		if dLonA != dLonB {
			return dLonA < dLonB
		}
		return ca.Seq < cb.Seq
	})

	if k > len(ranked) {
		k = len(ranked)
	}
	points := make([]models.GridPoint, 0, k)
	for i := 0; i < k; i++ {
		points = append(points, models.GridPoint{
			Latitude:       ranked[i].Lat,
			Longitude:      ranked[i].Lon,
			Model:          modelName,
			DistanceMeters: ranked[i].dist,
			Rank:           i,
		})
	}
	return points
}
