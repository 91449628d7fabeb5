package util

import (
	"fmt"
	"io"

	"fitflix-server/models/location"
	"fitflix-server/models/venue"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const (
	VenuesSeriesName = "Venues"
	UserSeriesName   = "You"
)

// PlotVenuesMap renders the ranked venues, and the visitor when known, as an
// HTML geo chart. Venues whose coordinate does not parse are left off the map.
func PlotVenuesMap(w io.Writer, results []venue.DiscoveryResult, user *location.UserCoordinate) error {
	points := make([]opts.GeoData, 0, len(results))
	for i, r := range results {
		lat, lon, ok := ParseCoordinate(r.Latitude, r.Longitude)
		if !ok {
			continue
		}
		points = append(points, opts.GeoData{
			Name:  fmt.Sprintf("%d. %s", i+1, r.Name),
			Value: []float64{lon, lat},
		})
	}

	// Create a new Geo chart.
	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "FitFlix Gyms & Wellness Clubs",
			Width:     "900px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true), // Disables interactivity on the map background.
		}),
	)

	geo.AddSeries(VenuesSeriesName, types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	if user != nil {
		geo.AddSeries(UserSeriesName, types.ChartEffectScatter, []opts.GeoData{
			{Name: UserSeriesName, Value: []float64{user.Lng, user.Lat}},
		})
	}

	if err := geo.Render(w); err != nil {
		return fmt.Errorf("failed to render venues map: %w", err)
	}
	return nil
}
