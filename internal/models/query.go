package models

import "fmt"

// Query is one resolution request as assembled by the input layer: a display
// asset name, the target coordinate, the selected model names in order and
// the number of grid points wanted per model. The engine never mutates it.
type Query struct {
	Asset          string   `json:"asset"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	Models         []string `json:"models"`
	PointsPerModel int      `json:"points_per_model"`
}

// Validate checks field ranges before any resolution work starts. maxPoints
// caps PointsPerModel to bound ring expansion on sparse regional grids; a
// value of zero disables the cap.
func (q Query) Validate(maxPoints int) error {
	if q.Asset == "" {
		return &ValidationError{Field: "asset", Reason: "must not be empty"}
	}
	if q.Latitude < -90 || q.Latitude > 90 {
		return &ValidationError{Field: "latitude", Reason: fmt.Sprintf("%v outside [-90, 90]", q.Latitude)}
	}
	if q.Longitude < -180 || q.Longitude > 180 {
		return &ValidationError{Field: "longitude", Reason: fmt.Sprintf("%v outside [-180, 180]", q.Longitude)}
	}
	if q.PointsPerModel < 1 {
		return &ValidationError{Field: "points_per_model", Reason: "must be at least 1"}
	}
	if maxPoints > 0 && q.PointsPerModel > maxPoints {
		return &ValidationError{Field: "points_per_model", Reason: fmt.Sprintf("%d exceeds the maximum of %d", q.PointsPerModel, maxPoints)}
	}
	if len(q.Models) == 0 {
		return ErrEmptySelection
	}
	seen := make(map[string]struct{}, len(q.Models))
	for _, name := range q.Models {
		if _, ok := seen[name]; ok {
			return &ValidationError{Field: "models", Reason: fmt.Sprintf("model %q selected twice", name)}
		}
		seen[name] = struct{}{}
	}
	return nil
}
