package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/grid"
	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/models"
	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/render"
)

// ModelCatalog is the registry surface the service needs.
type ModelCatalog interface {
	Lookup(name string) (models.ModelSpec, error)
}

// GridPointService contains the core business logic: it resolves a query
// against every selected model's lattice and merges the ranked per-model
// results in selection order.
type GridPointService struct {
	catalog   ModelCatalog
	maxPoints int
}

// NewGridPointService creates a new grid point service. maxPoints caps the
// points-per-model a query may request; zero disables the cap.
func NewGridPointService(catalog ModelCatalog, maxPoints int) *GridPointService {
	return &GridPointService{catalog: catalog, maxPoints: maxPoints}
}

// candidateBudget is how many raw candidates to collect per model before
// ranking. The margin over k tolerates points discarded at extent boundaries
// and index-space vs geodesic-space skew near the poles.
func candidateBudget(k int) int {
	return 2*k + 8
}

// Aggregate validates the query, resolves each selected model and returns
// the merged result in selection order. Selections are expected to be
// pre-validated by the input layer, but unknown names are still re-checked
// here. Models are resolved concurrently; each one reads only its own spec
// and writes only its own slot, and the merge order is fixed by the
// selection, not by completion.
func (s *GridPointService) Aggregate(ctx context.Context, q models.Query) (*models.RankedResult, error) {
	if err := q.Validate(s.maxPoints); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	specs := make([]models.ModelSpec, len(q.Models))
	for i, name := range q.Models {
		spec, err := s.catalog.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("service: %w", err)
		}
		specs[i] = spec
	}

	results := make([]models.ModelResult, len(specs))
	g, _ := errgroup.WithContext(ctx)
	for i, spec := range specs {
		g.Go(func() error {
			cands := grid.Candidates(spec, q.Latitude, q.Longitude, candidateBudget(q.PointsPerModel))
			points := grid.Rank(spec.Name, q.Latitude, q.Longitude, cands, q.PointsPerModel)
			if len(points) < q.PointsPerModel {
				log.Warn().
					Str("model", spec.Name).
					Int("requested", q.PointsPerModel).
					Int("returned", len(points)).
					Msg("coverage exhausted")
			}
			results[i] = models.ModelResult{Model: spec, Requested: q.PointsPerModel, Points: points}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	return &models.RankedResult{Query: q, Models: results}, nil
}

// Render aggregates the query and assembles both output artifacts. Any error
// aborts the whole request; no partial artifact is returned.
func (s *GridPointService) Render(ctx context.Context, q models.Query) (*models.RenderedOutput, error) {
	result, err := s.Aggregate(ctx, q)
	if err != nil {
		return nil, err
	}
	out, err := render.Assemble(result)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return out, nil
}
