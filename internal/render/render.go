// Package render turns a ranked result into its two user-facing artifacts:
// a KML marker file and a self-contained interactive map page.
package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/models"
)

// objectiveName labels the marker placed at the query coordinate itself.
const objectiveName = "OBJECTIVE"

// objectiveColor is reserved for the query marker; no model uses it.
const objectiveColor = "#000000"

// Assemble renders both artifacts for the result and bundles them with the
// source query.
func Assemble(result *models.RankedResult) (*models.RenderedOutput, error) {
	marker, err := MarkerFile(result)
	if err != nil {
		return nil, err
	}
	page, err := InteractivePage(result)
	if err != nil {
		return nil, err
	}
	return &models.RenderedOutput{Query: result.Query, MarkerFile: marker, Page: page}, nil
}

// styleID derives a KML style id from a model name.
func styleID(model string) string {
	return "model-" + strings.ReplaceAll(model, " ", "-")
}

// parseHexColor parses "#RRGGBB" into an opaque color. Unparseable values
// fall back to gray rather than failing a whole render.
func parseHexColor(s string) color.RGBA {
	gray := color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	if len(s) != 7 || s[0] != '#' {
		return gray
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return gray
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// coverageLabel describes a model's point yield for folder descriptions and
// the map legend.
func coverageLabel(r models.ModelResult) string {
	switch {
	case len(r.Points) == 0:
		return "no coverage"
	case r.Shortfall() > 0:
		return fmt.Sprintf("coverage exhausted: %d of %d points", len(r.Points), r.Requested)
	default:
		return fmt.Sprintf("%d points", len(r.Points))
	}
}
