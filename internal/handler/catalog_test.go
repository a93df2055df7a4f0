package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/models"
)

type stubSpecLister struct {
	specs []models.ModelSpec
}

func (s *stubSpecLister) Specs() []models.ModelSpec {
	return s.specs
}

func TestCatalogHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	lister := &stubSpecLister{specs: []models.ModelSpec{
		{Name: "ECMWF", LatStep: 0.1, LonStep: 0.1, Extent: models.GlobalExtent(), Color: "#008000"},
		{Name: "GFS_0.5", LatStep: 0.5, LonStep: 0.5, Extent: models.GlobalExtent(), Color: "#FF0000"},
	}}
	handler := NewCatalogHandler(lister)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/models", nil)
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body []models.ModelSpec
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "ECMWF", body[0].Name)
	assert.Equal(t, "GFS_0.5", body[1].Name)
}
