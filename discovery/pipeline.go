// Package discovery turns the venue catalog and the visitor's filter state
// into the ordered list rendered by the directory pages.
//
// The pipeline is filter, then annotate, then a stable sort. It is pure and
// never fails: bad venue coordinates only mean "no distance".
package discovery

import (
	"cmp"
	"slices"
	"strings"

	"fitflix-server/models/location"
	"fitflix-server/models/venue"
	"fitflix-server/util"
)

// Rank runs the full pipeline. user may be nil.
func Rank(venues []venue.Venue, query string, filter venue.TypeFilter, user *location.UserCoordinate) []venue.DiscoveryResult {
	results := Annotate(Filter(venues, query, filter), user)
	Sort(results, user)
	return results
}

// Filter keeps venues of the requested type whose name or address contains
// query, case-insensitively. The query is used as given, without trimming.
func Filter(venues []venue.Venue, query string, filter venue.TypeFilter) []venue.Venue {
	needle := strings.ToLower(query)

	out := make([]venue.Venue, 0, len(venues))
	for _, v := range venues {
		if !filter.Matches(v.Type) {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(v.Name), needle) &&
			!strings.Contains(strings.ToLower(v.Address), needle) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Annotate attaches the distance from user to every venue whose coordinate
// parses. With a nil user every distance stays nil.
func Annotate(venues []venue.Venue, user *location.UserCoordinate) []venue.DiscoveryResult {
	out := make([]venue.DiscoveryResult, len(venues))
	for i, v := range venues {
		out[i].Venue = v
		if user == nil {
			continue
		}
		lat, lon, ok := util.ParseCoordinate(v.Latitude, v.Longitude)
		if !ok {
			continue
		}
		d := util.HaversineKm(user.Lat, user.Lng, lat, lon)
		out[i].DistanceKm = &d
	}
	return out
}

// Sort orders results in place and keeps catalog order for ties.
func Sort(results []venue.DiscoveryResult, user *location.UserCoordinate) {
	slices.SortStableFunc(results, func(a, b venue.DiscoveryResult) int {
		return compare(a, b, user != nil)
	})
}

// compare: nearest first when both distances are known, else best rated
// first when both are rated, else equal.
func compare(a, b venue.DiscoveryResult, haveUser bool) int {
	if haveUser && a.HasDistance() && b.HasDistance() {
		return cmp.Compare(*a.DistanceKm, *b.DistanceKm)
	}
	if a.HasRating() && b.HasRating() {
		return cmp.Compare(*b.Rating, *a.Rating)
	}
	return 0
}
