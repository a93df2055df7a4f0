package registry

import "github.com/LuisTellezSirocco/GeoAtmoPlot/internal/models"

// builtinSpecs is the supported model catalog. Step sizes follow each
// center's published global grid resolution; colors keep every model
// distinguishable on a map. Adding a model is adding a row here (or calling
// Register at startup), never touching resolver or ranker code.
var builtinSpecs = []models.ModelSpec{
	{Name: "ECMWF", LatStep: 0.1, LonStep: 0.1, Extent: models.GlobalExtent(), Color: "#008000"},
	{Name: "GFS_0.5", LatStep: 0.5, LonStep: 0.5, Extent: models.GlobalExtent(), Color: "#FF0000"},
	{Name: "GFS_0.25", LatStep: 0.25, LonStep: 0.25, Extent: models.GlobalExtent(), Color: "#8B0000"},
	{Name: "UKMET", LatStep: 0.2, LonStep: 0.2, Extent: models.GlobalExtent(), Color: "#0000FF"},
	{Name: "NCEP", LatStep: 0.25, LonStep: 0.25, Extent: models.GlobalExtent(), Color: "#FFA500"},
	{Name: "DWD", LatStep: 0.1, LonStep: 0.1, Extent: models.GlobalExtent(), Color: "#FF8C00"},
	{Name: "METEOFRANCE", LatStep: 0.1, LonStep: 0.1, Extent: models.GlobalExtent(), Color: "#B22222"},
	{Name: "CMCC", LatStep: 0.25, LonStep: 0.25, Extent: models.GlobalExtent(), Color: "#006400"},
	{Name: "JMA", LatStep: 0.2, LonStep: 0.2, Extent: models.GlobalExtent(), Color: "#00008B"},
	{Name: "ICON", LatStep: 0.125, LonStep: 0.125, Extent: models.GlobalExtent(), Color: "#8A2BE2"},
}

// NewBuiltin creates a registry pre-populated with the supported catalog.
func NewBuiltin() (*Registry, error) {
	r := New()
	for _, spec := range builtinSpecs {
		if err := r.Register(spec); err != nil {
			return nil, err
		}
	}
	return r, nil
}
