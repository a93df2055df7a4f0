package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/models"
)

// MockCatalog is a mock implementation of the ModelCatalog interface
type MockCatalog struct {
	mock.Mock
}

// Lookup implements ModelCatalog.
func (m *MockCatalog) Lookup(name string) (models.ModelSpec, error) {
	args := m.Called(name)
	return args.Get(0).(models.ModelSpec), args.Error(1)
}

func globalSpec(name string, step float64) models.ModelSpec {
	return models.ModelSpec{Name: name, LatStep: step, LonStep: step, Extent: models.GlobalExtent(), Color: "#008000"}
}

func validQuery() models.Query {
	return models.Query{
		Asset:          "Alpha",
		Latitude:       40.12,
		Longitude:      -3.07,
		Models:         []string{"GFS_0.25"},
		PointsPerModel: 4,
	}
}

func TestGridPointService_Aggregate_Validation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.Query)
		wantField string
		wantEmpty bool
	}{
		{
			name:      "latitude out of range",
			mutate:    func(q *models.Query) { q.Latitude = 91 },
			wantField: "latitude",
		},
		{
			name:      "longitude out of range",
			mutate:    func(q *models.Query) { q.Longitude = -181 },
			wantField: "longitude",
		},
		{
			name:      "zero points",
			mutate:    func(q *models.Query) { q.PointsPerModel = 0 },
			wantField: "points_per_model",
		},
		{
			name:      "points over cap",
			mutate:    func(q *models.Query) { q.PointsPerModel = 11 },
			wantField: "points_per_model",
		},
		{
			name:      "empty asset",
			mutate:    func(q *models.Query) { q.Asset = "" },
			wantField: "asset",
		},
		{
			name:      "duplicate selection",
			mutate:    func(q *models.Query) { q.Models = []string{"GFS_0.25", "GFS_0.25"} },
			wantField: "models",
		},
		{
			name:      "empty selection",
			mutate:    func(q *models.Query) { q.Models = nil },
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCatalog := new(MockCatalog)
			service := NewGridPointService(mockCatalog, 10)

			q := validQuery()
			tt.mutate(&q)

			result, err := service.Aggregate(context.Background(), q)
			assert.Error(t, err)
			assert.Nil(t, result)
			if tt.wantEmpty {
				assert.ErrorIs(t, err, models.ErrEmptySelection)
			} else {
				var validationErr *models.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.wantField, validationErr.Field)
			}
			// Validation fails before the catalog is ever consulted.
			mockCatalog.AssertNotCalled(t, "Lookup")
		})
	}
}

func TestGridPointService_Aggregate_UnknownModel(t *testing.T) {
	mockCatalog := new(MockCatalog)
	mockCatalog.On("Lookup", "NOPE").Return(models.ModelSpec{}, &models.UnknownModelError{Name: "NOPE"})
	service := NewGridPointService(mockCatalog, 10)

	q := validQuery()
	q.Models = []string{"NOPE"}

	result, err := service.Aggregate(context.Background(), q)
	assert.Error(t, err)
	assert.Nil(t, result)
	var unknownErr *models.UnknownModelError
	assert.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "NOPE", unknownErr.Name)
	mockCatalog.AssertExpectations(t)
}

func TestGridPointService_Aggregate_SelectionOrderPreserved(t *testing.T) {
	mockCatalog := new(MockCatalog)
	mockCatalog.On("Lookup", "GFS_0.5").Return(globalSpec("GFS_0.5", 0.5), nil)
	mockCatalog.On("Lookup", "ECMWF").Return(globalSpec("ECMWF", 0.1), nil)
	service := NewGridPointService(mockCatalog, 10)

	q := validQuery()
	q.Models = []string{"GFS_0.5", "ECMWF"}

	result, err := service.Aggregate(context.Background(), q)
	assert.NoError(t, err)
	assert.Len(t, result.Models, 2)
	assert.Equal(t, "GFS_0.5", result.Models[0].Model.Name)
	assert.Equal(t, "ECMWF", result.Models[1].Model.Name)
	for _, mr := range result.Models {
		assert.Len(t, mr.Points, 4)
		assert.Equal(t, 4, mr.Requested)
		assert.Zero(t, mr.Shortfall())
	}
}

func TestGridPointService_Aggregate_Idempotent(t *testing.T) {
	mockCatalog := new(MockCatalog)
	mockCatalog.On("Lookup", "GFS_0.25").Return(globalSpec("GFS_0.25", 0.25), nil)
	service := NewGridPointService(mockCatalog, 10)

	q := validQuery()
	first, err := service.Aggregate(context.Background(), q)
	assert.NoError(t, err)
	second, err := service.Aggregate(context.Background(), q)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGridPointService_Aggregate_CoverageShortfall(t *testing.T) {
	// A 3x3-node regional model cannot supply 10 points; the request still
	// succeeds and the shortfall is visible on the result.
	tiny := models.ModelSpec{
		Name:    "TINY",
		LatStep: 0.5, LonStep: 0.5,
		Extent: models.RegionalExtent(40, 0, 41, 1),
		Color:  "#0000FF",
	}
	mockCatalog := new(MockCatalog)
	mockCatalog.On("Lookup", "TINY").Return(tiny, nil)
	service := NewGridPointService(mockCatalog, 10)

	q := validQuery()
	q.Models = []string{"TINY"}
	q.Latitude, q.Longitude = 40.5, 0.5
	q.PointsPerModel = 10

	result, err := service.Aggregate(context.Background(), q)
	assert.NoError(t, err)
	assert.Len(t, result.Models, 1)
	assert.Len(t, result.Models[0].Points, 9)
	assert.Equal(t, 1, result.Models[0].Shortfall())
}

func TestGridPointService_Aggregate_SeamQuery(t *testing.T) {
	mockCatalog := new(MockCatalog)
	mockCatalog.On("Lookup", "ONE_DEG").Return(globalSpec("ONE_DEG", 1), nil)
	service := NewGridPointService(mockCatalog, 10)

	q := validQuery()
	q.Models = []string{"ONE_DEG"}
	q.Latitude, q.Longitude = 89.9, 179.9

	result, err := service.Aggregate(context.Background(), q)
	assert.NoError(t, err)
	points := result.Models[0].Points
	assert.Len(t, points, 4)
	for _, p := range points {
		assert.GreaterOrEqual(t, p.Longitude, -180.0)
		assert.Less(t, p.Longitude, 180.0)
	}
}

func TestGridPointService_Render(t *testing.T) {
	mockCatalog := new(MockCatalog)
	mockCatalog.On("Lookup", "GFS_0.25").Return(globalSpec("GFS_0.25", 0.25), nil)
	service := NewGridPointService(mockCatalog, 10)

	out, err := service.Render(context.Background(), validQuery())
	assert.NoError(t, err)
	assert.NotEmpty(t, out.MarkerFile)
	assert.NotEmpty(t, out.Page)
	assert.Equal(t, validQuery(), out.Query)
}

func TestGridPointService_Render_AbortsOnError(t *testing.T) {
	mockCatalog := new(MockCatalog)
	service := NewGridPointService(mockCatalog, 10)

	q := validQuery()
	q.Models = nil

	out, err := service.Render(context.Background(), q)
	assert.ErrorIs(t, err, models.ErrEmptySelection)
	assert.Nil(t, out)
}
