package util

import (
	"math"
	"strconv"
	"strings"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance in kilometers between two
// points given in decimal degrees.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// ParseCoordinate parses a latitude/longitude pair stored as strings.
// ok is false if either part is not a finite number in range.
func ParseCoordinate(lat, lon string) (float64, float64, bool) {
	la, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil || !finite(la) || la < -90 || la > 90 {
		return 0, 0, false
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err != nil || !finite(lo) || lo < -180 || lo > 180 {
		return 0, 0, false
	}
	return la, lo, true
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
