package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/models"
)

// CatalogHandler handles model catalog requests
type CatalogHandler struct {
	catalog SpecLister
}

// SpecLister interface for dependency injection
type SpecLister interface {
	Specs() []models.ModelSpec
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog SpecLister) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List handles GET /v1/models requests
//
//	@Summary	List the registered forecast model grids in registration order
//	@Produce	json
//	@Success	200	{array}	models.ModelSpec
//	@Router		/v1/models [get]
func (h *CatalogHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Specs())
}
