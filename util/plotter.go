package util

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"tour-planner/models"
)

// RenderCatalogMap renders the catalog places as a scatter map into w.
// Placeholder rows carry no real coordinate and are skipped.
func RenderCatalogMap(w io.Writer, places []models.Place) error {
	points := make([]opts.GeoData, 0, len(places))
	for _, p := range places {
		if p.IsPlaceholder() {
			continue
		}
		points = append(points, opts.GeoData{
			Name:  p.NameEn,
			Value: []float64{p.Lon, p.Lat},
		})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Place Catalog Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("Places", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	return geo.Render(w)
}
