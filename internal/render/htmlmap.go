package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/models"
)

type mapData struct {
	Title   string
	Lat     float64
	Lon     float64
	GeoJSON template.JS
	Legend  []legendEntry
}

type legendEntry struct {
	Name  string
	Color string
	Label string
}

// InteractivePage renders the ranked result as a standalone Leaflet page:
// the whole result travels as an embedded GeoJSON FeatureCollection, grid
// points become circle markers in their model's color with an on-click popup
// carrying model, rank, exact coordinates and distance, and the legend lists
// every selected model, including those with no coverage.
func InteractivePage(result *models.RankedResult) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, mr := range result.Models {
		for _, p := range mr.Points {
			f := geojson.NewFeature(orb.Point{p.Longitude, p.Latitude})
			f.Properties["model"] = p.Model
			f.Properties["rank"] = p.Rank
			f.Properties["lat"] = p.Latitude
			f.Properties["lon"] = p.Longitude
			f.Properties["distance_km"] = math.Round(p.DistanceMeters/10) / 100
			f.Properties["color"] = mr.Model.Color
			fc.Append(f)
		}
	}
	obj := geojson.NewFeature(orb.Point{result.Query.Longitude, result.Query.Latitude})
	obj.Properties["model"] = objectiveName
	obj.Properties["lat"] = result.Query.Latitude
	obj.Properties["lon"] = result.Query.Longitude
	obj.Properties["color"] = objectiveColor
	fc.Append(obj)

	raw, err := json.Marshal(fc)
	if err != nil {
		return nil, fmt.Errorf("render: marshal geojson: %w", err)
	}

	legend := make([]legendEntry, 0, len(result.Models))
	for _, mr := range result.Models {
		legend = append(legend, legendEntry{
			Name:  mr.Model.Name,
			Color: mr.Model.Color,
			Label: coverageLabel(mr),
		})
	}

	var buf bytes.Buffer
	err = mapTemplate.Execute(&buf, mapData{
		Title:   result.Query.Asset,
		Lat:     result.Query.Latitude,
		Lon:     result.Query.Longitude,
		GeoJSON: template.JS(raw),
		Legend:  legend,
	})
	if err != nil {
		return nil, fmt.Errorf("render: execute map template: %w", err)
	}
	return buf.Bytes(), nil
}

var mapTemplate = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>
html, body, #map { height: 100%; margin: 0; }
.legend {
  position: absolute; bottom: 16px; right: 16px; z-index: 1000;
  background: #fff; padding: 8px 12px; font: 12px/1.6 sans-serif;
  border-radius: 4px; box-shadow: 0 0 8px rgba(0,0,0,0.3);
}
.legend i {
  width: 10px; height: 10px; display: inline-block;
  border-radius: 50%; margin-right: 6px;
}
</style>
</head>
<body>
<div id="map"></div>
<div class="legend">
{{- range .Legend}}
<div><i style="background: {{.Color}}"></i>{{.Name}}: {{.Label}}</div>
{{- end}}
</div>
<script>
var data = {{.GeoJSON}};
var map = L.map('map').setView([{{.Lat}}, {{.Lon}}], 6);
L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
  attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);
L.geoJSON(data, {
  pointToLayer: function (feature, latlng) {
    var p = feature.properties;
    if (p.model === 'OBJECTIVE') {
      return L.marker(latlng);
    }
    return L.circleMarker(latlng, {
      radius: 7, color: p.color, fillColor: p.color, fillOpacity: 0.85
    });
  },
  onEachFeature: function (feature, layer) {
    var p = feature.properties;
    var coords = '(' + p.lat.toFixed(4) + ', ' + p.lon.toFixed(4) + ')';
    if (p.model === 'OBJECTIVE') {
      layer.bindPopup(p.model + '<br>' + coords);
      return;
    }
    layer.bindPopup(p.model + ' #' + p.rank + '<br>' + coords + '<br>' + p.distance_km.toFixed(2) + ' km from query');
  }
}).addTo(map);
</script>
</body>
</html>
`))
