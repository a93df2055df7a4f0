package models

import "github.com/paulmach/orb"

// ModelSpec describes the fixed lattice a forecast model reports values at:
// the step size per axis, the phase of the lattice relative to 0°/0°, the
// coverage extent and the display color used by the renderers. Specs are
// immutable once registered.
type ModelSpec struct {
	Name      string  `json:"name"`
	LatStep   float64 `json:"lat_step"`
	LonStep   float64 `json:"lon_step"`
	LatOffset float64 `json:"lat_offset"`
	LonOffset float64 `json:"lon_offset"`
	Extent    Extent  `json:"extent"`
	Color     string  `json:"color"` // #RRGGBB
}

// Extent is the region a model's lattice covers: the whole globe, or a
// regional bounding box for limited-area models.
type Extent struct {
	Global bool      `json:"global"`
	Bound  orb.Bound `json:"bound,omitempty"`
}

// GlobalExtent covers every valid coordinate.
func GlobalExtent() Extent {
	return Extent{Global: true}
}

// RegionalExtent covers the bounding box between the two corners.
func RegionalExtent(minLat, minLon, maxLat, maxLon float64) Extent {
	return Extent{Bound: orb.Bound{
		Min: orb.Point{minLon, minLat},
		Max: orb.Point{maxLon, maxLat},
	}}
}

// Contains reports whether the coordinate lies inside the extent.
func (e Extent) Contains(lat, lon float64) bool {
	if e.Global {
		return true
	}
	return e.Bound.Contains(orb.Point{lon, lat})
}
