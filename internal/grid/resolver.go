// Package grid snaps coordinates onto forecast-model lattices and ranks the
// surrounding nodes by great-circle distance.
package grid

import (
	"math"

	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/models"
)

// coordTol absorbs accumulated floating error when comparing a node
// coordinate against the poles or the antimeridian.
const coordTol = 1e-9

// Candidate is one lattice node produced by ring expansion, before ranking.
// Seq records enumeration order and feeds the ranker's final tie-break.
type Candidate struct {
	Lat float64
	Lon float64
	Seq int
}

// Candidates returns at least k lattice nodes of spec's grid around
// (lat, lon), or as many as the extent can supply. Nodes are enumerated in
// square rings of growing index radius around the nearest node. Rings are
// always scanned whole, and one extra ring is scanned once the budget is
// met, so no nearer node is left unenumerated when index distance and
// geodesic distance disagree. Longitude indices wrap modulo the full circle
// for global extents and are clipped for regional ones; latitude never
// wraps.
func Candidates(spec models.ModelSpec, lat, lon float64, k int) []Candidate {
	if k < 1 {
		return nil
	}

	latIdx := nearestIndex(lat, spec.LatOffset, spec.LatStep)
	lonIdx := nearestIndex(lon, spec.LonOffset, spec.LonStep)

	lonNodes := int(math.Round(360 / spec.LonStep))
	if lonNodes < 1 {
		lonNodes = 1
	}

	maxRadius := maxIndexRadius(spec, latIdx, lonIdx, lonNodes)

	s := &scan{spec: spec, lonNodes: lonNodes, seen: make(map[[2]int]struct{}, 2*k)}
	fullRings := 0
	for r := 0; r <= maxRadius; r++ {
		// Only the 8r border nodes of the (2r+1)x(2r+1) block: full top and
		// bottom rows, edge columns of the rows in between.
		for di := -r; di <= r; di++ {
			if abs(di) == r {
				for dj := -r; dj <= r; dj++ {
					s.visit(latIdx+di, lonIdx+dj)
				}
				continue
			}
			s.visit(latIdx+di, lonIdx-r)
			s.visit(latIdx+di, lonIdx+r)
		}
		if len(s.out) >= k {
			fullRings++
			if fullRings > 1 {
				break
			}
		}
	}
	return s.out
}

// scan accumulates ring-expansion candidates, deduplicating wrapped columns
// by lattice index.
type scan struct {
	spec     models.ModelSpec
	lonNodes int
	seen     map[[2]int]struct{}
	out      []Candidate
}

func (s *scan) visit(i, j int) {
	nodeLat := s.spec.LatOffset + float64(i)*s.spec.LatStep
	if nodeLat < -90-coordTol || nodeLat > 90+coordTol {
		return
	}
	var nodeLon float64
	if s.spec.Extent.Global {
		j = ((j % s.lonNodes) + s.lonNodes) % s.lonNodes
		nodeLon = normalizeLon(s.spec.LonOffset + float64(j)*s.spec.LonStep)
	} else {
		nodeLon = s.spec.LonOffset + float64(j)*s.spec.LonStep
		if nodeLon < -180-coordTol || nodeLon > 180+coordTol {
			return
		}
	}
	if !s.spec.Extent.Contains(nodeLat, nodeLon) {
		return
	}
	key := [2]int{i, j}
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.out = append(s.out, Candidate{Lat: nodeLat, Lon: nodeLon, Seq: len(s.out)})
}

// nearestIndex snaps a coordinate to the closest lattice index along one
// axis. A residual of exactly half a step leaves two equidistant nodes; both
// land within the first ring, so the pick never changes ranked output.
func nearestIndex(v, offset, step float64) int {
	return int(math.Round((v - offset) / step))
}

// maxIndexRadius is the largest index distance from the snap node to any
// node inside the extent, bounding ring expansion so exhausted extents
// terminate the scan.
func maxIndexRadius(spec models.ModelSpec, latIdx, lonIdx, lonNodes int) int {
	minLat, maxLat := -90.0, 90.0
	if !spec.Extent.Global {
		minLat = math.Max(minLat, spec.Extent.Bound.Min.Lat())
		maxLat = math.Min(maxLat, spec.Extent.Bound.Max.Lat())
	}
	iMin := int(math.Ceil((minLat - spec.LatOffset) / spec.LatStep))
	iMax := int(math.Floor((maxLat - spec.LatOffset) / spec.LatStep))
	latR := max(abs(latIdx-iMin), abs(iMax-latIdx))

	var lonR int
	if spec.Extent.Global {
		lonR = lonNodes/2 + 1
	} else {
		jMin := int(math.Ceil((spec.Extent.Bound.Min.Lon() - spec.LonOffset) / spec.LonStep))
		jMax := int(math.Floor((spec.Extent.Bound.Max.Lon() - spec.LonOffset) / spec.LonStep))
		lonR = max(abs(lonIdx-jMin), abs(jMax-lonIdx))
	}
	return max(latR, lonR)
}

// normalizeLon maps a longitude into [-180, 180).
func normalizeLon(lon float64) float64 {
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
