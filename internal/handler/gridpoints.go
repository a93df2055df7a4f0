package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/models"
)

// defaultPoints matches the tool's historical default of four grid points
// per model.
const defaultPoints = 4

// GridPointHandler handles grid point resolution requests
type GridPointHandler struct {
	service GridPointService
}

// GridPointService interface for dependency injection
type GridPointService interface {
	Aggregate(ctx context.Context, q models.Query) (*models.RankedResult, error)
	Render(ctx context.Context, q models.Query) (*models.RenderedOutput, error)
}

// NewGridPointHandler creates a new grid point handler
func NewGridPointHandler(svc GridPointService) *GridPointHandler {
	return &GridPointHandler{service: svc}
}

// GridPoints handles GET /v1/gridpoints requests
//
//	@Summary	Resolve the nearest grid points per selected model
//	@Param		asset	query	string	true	"asset name"
//	@Param		lat		query	number	true	"latitude"
//	@Param		lon		query	number	true	"longitude"
//	@Param		models	query	string	true	"comma-separated model names"
//	@Param		points	query	int		false	"points per model (default 4)"
//	@Produce	json
//	@Success	200	{object}	models.RankedResult
//	@Router		/v1/gridpoints [get]
func (h *GridPointHandler) GridPoints(c *gin.Context) {
	q, ok := h.parseQuery(c)
	if !ok {
		return
	}

	result, err := h.service.Aggregate(c.Request.Context(), q)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// MarkerFile handles GET /v1/gridpoints/kml requests
//
//	@Summary	Download the resolved grid points as a KML marker file
//	@Produce	application/vnd.google-earth.kml+xml
//	@Router		/v1/gridpoints/kml [get]
func (h *GridPointHandler) MarkerFile(c *gin.Context) {
	q, ok := h.parseQuery(c)
	if !ok {
		return
	}

	out, err := h.service.Render(c.Request.Context(), q)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Query.Asset+".kml"))
	c.Data(http.StatusOK, "application/vnd.google-earth.kml+xml", out.MarkerFile)
}

// Map handles GET /v1/gridpoints/map requests
//
//	@Summary	Render the resolved grid points as an interactive map page
//	@Produce	html
//	@Router		/v1/gridpoints/map [get]
func (h *GridPointHandler) Map(c *gin.Context) {
	q, ok := h.parseQuery(c)
	if !ok {
		return
	}

	out, err := h.service.Render(c.Request.Context(), q)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", out.Page)
}

// parseQuery reads the shared query parameters of all three endpoints. On a
// malformed parameter it writes the 400 response itself and returns ok=false.
func (h *GridPointHandler) parseQuery(c *gin.Context) (models.Query, bool) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'lat' and 'lon'"})
		return models.Query{}, false
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return models.Query{}, false
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return models.Query{}, false
	}

	asset := c.Query("asset")
	if asset == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'asset'"})
		return models.Query{}, false
	}

	points := defaultPoints
	if pointsStr := c.Query("points"); pointsStr != "" {
		points, err = strconv.Atoi(pointsStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid points format"})
			return models.Query{}, false
		}
	}

	var selected []string
	for _, name := range strings.Split(c.Query("models"), ",") {
		if name = strings.TrimSpace(name); name != "" {
			selected = append(selected, name)
		}
	}

	return models.Query{
		Asset:          asset,
		Latitude:       lat,
		Longitude:      lon,
		Models:         selected,
		PointsPerModel: points,
	}, true
}

// writeServiceError maps engine errors onto HTTP statuses: anything the
// caller can fix is a 400 with the offending detail, everything else a 500.
func writeServiceError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error(), "field": validationErr.Field})
		return
	}
	if errors.Is(err, models.ErrEmptySelection) {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrEmptySelection.Error(), "field": "models"})
		return
	}
	var unknownErr *models.UnknownModelError
	if errors.As(err, &unknownErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": unknownErr.Error(), "field": "models"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
