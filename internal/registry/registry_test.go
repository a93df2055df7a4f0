package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/models"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := New()

	spec := models.ModelSpec{Name: "TEST", LatStep: 0.5, LonStep: 0.5, Extent: models.GlobalExtent(), Color: "#FF0000"}
	assert.NoError(t, r.Register(spec))

	got, err := r.Lookup("TEST")
	assert.NoError(t, err)
	assert.Equal(t, spec, got)
}

func TestRegistry_DuplicateRegistration(t *testing.T) {
	r := New()
	spec := models.ModelSpec{Name: "TEST", LatStep: 0.5, LonStep: 0.5, Extent: models.GlobalExtent()}

	assert.NoError(t, r.Register(spec))

	err := r.Register(spec)
	assert.Error(t, err)
	var dupErr *models.DuplicateModelError
	assert.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "TEST", dupErr.Name)
}

func TestRegistry_LookupUnknown(t *testing.T) {
	r := New()

	_, err := r.Lookup("NOPE")
	assert.Error(t, err)
	var unknownErr *models.UnknownModelError
	assert.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "NOPE", unknownErr.Name)
}

func TestRegistry_RejectsInvalidSpec(t *testing.T) {
	r := New()

	assert.Error(t, r.Register(models.ModelSpec{LatStep: 0.5, LonStep: 0.5}))
	assert.Error(t, r.Register(models.ModelSpec{Name: "BAD", LatStep: 0, LonStep: 0.5}))
	assert.Error(t, r.Register(models.ModelSpec{Name: "BAD", LatStep: 0.5, LonStep: -1}))
}

func TestRegistry_ListPreservesRegistrationOrder(t *testing.T) {
	r := New()
	names := []string{"C", "A", "B"}
	for _, name := range names {
		assert.NoError(t, r.Register(models.ModelSpec{Name: name, LatStep: 1, LonStep: 1, Extent: models.GlobalExtent()}))
	}

	assert.Equal(t, names, r.List())

	specs := r.Specs()
	for i, name := range names {
		assert.Equal(t, name, specs[i].Name)
	}
}

func TestNewBuiltin(t *testing.T) {
	r, err := NewBuiltin()
	assert.NoError(t, err)

	expected := []string{"ECMWF", "GFS_0.5", "GFS_0.25", "UKMET", "NCEP", "DWD", "METEOFRANCE", "CMCC", "JMA", "ICON"}
	assert.Equal(t, expected, r.List())

	for _, spec := range r.Specs() {
		assert.True(t, spec.Extent.Global, "builtin model %s should be global", spec.Name)
		assert.NotEmpty(t, spec.Color, "builtin model %s should have a color", spec.Name)
	}
}
