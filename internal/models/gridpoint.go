package models

// GridPoint is one lattice node of a model, annotated with its great-circle
// distance to the query and its 0-based rank within that model's sequence.
type GridPoint struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Model          string  `json:"model"`
	DistanceMeters float64 `json:"distance_meters"`
	Rank           int     `json:"rank"`
}

// ModelResult is one model's ranked points together with the count that was
// asked for, so consumers can tell a coverage shortfall from a full answer.
type ModelResult struct {
	Model     ModelSpec   `json:"model"`
	Requested int         `json:"requested"`
	Points    []GridPoint `json:"points"`
}

// Shortfall returns how many requested points the model's extent could not
// supply. Zero means full coverage.
func (r ModelResult) Shortfall() int {
	return r.Requested - len(r.Points)
}

// RankedResult holds every selected model's ranked points, in the order the
// models were selected.
type RankedResult struct {
	Query  Query         `json:"query"`
	Models []ModelResult `json:"models"`
}

// RenderedOutput bundles the two artifacts with the query that produced them
// so callers can persist both consistently. The engine never writes files;
// callers own the paths and the I/O.
type RenderedOutput struct {
	Query      Query
	MarkerFile []byte // KML placemark document
	Page       []byte // self-contained interactive map page
}
