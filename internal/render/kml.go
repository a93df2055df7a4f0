package render

import (
	"bytes"
	"fmt"

	kml "github.com/twpayne/go-kml/v2"

	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/models"
)

// MarkerFile renders the ranked result as a KML document: one shared style
// and one folder per selected model so viewers can toggle models
// independently, one placemark per grid point, and a placemark at the query
// coordinate itself. Models that yielded no points keep their folder with a
// "no coverage" description so the user sees which selections came up empty.
func MarkerFile(result *models.RankedResult) ([]byte, error) {
	doc := kml.Document(kml.Name(result.Query.Asset))

	for _, mr := range result.Models {
		doc.Add(kml.SharedStyle(styleID(mr.Model.Name),
			kml.IconStyle(kml.Color(parseHexColor(mr.Model.Color))),
		))
	}
	doc.Add(kml.SharedStyle(styleID(objectiveName),
		kml.IconStyle(kml.Color(parseHexColor(objectiveColor))),
	))

	for _, mr := range result.Models {
		folder := kml.Folder(kml.Name(mr.Model.Name))
		if mr.Shortfall() > 0 {
			folder.Add(kml.Description(coverageLabel(mr)))
		}
		for _, p := range mr.Points {
			folder.Add(kml.Placemark(
				kml.Name(fmt.Sprintf("%s #%d %s", p.Model, p.Rank, result.Query.Asset)),
				kml.Description(fmt.Sprintf("(%.4f, %.4f) %.2f km from query", p.Latitude, p.Longitude, p.DistanceMeters/1000)),
				kml.StyleURL("#"+styleID(p.Model)),
				kml.Point(kml.Coordinates(kml.Coordinate{Lon: p.Longitude, Lat: p.Latitude})),
			))
		}
		doc.Add(folder)
	}

	doc.Add(kml.Placemark(
		kml.Name(objectiveName),
		kml.Description(result.Query.Asset),
		kml.StyleURL("#"+styleID(objectiveName)),
		kml.Point(kml.Coordinates(kml.Coordinate{Lon: result.Query.Longitude, Lat: result.Query.Latitude})),
	))

	var buf bytes.Buffer
	if err := kml.KML(doc).WriteIndent(&buf, "", "  "); err != nil {
		return nil, fmt.Errorf("render: write kml: %w", err)
	}
	return buf.Bytes(), nil
}
