package venue

// DiscoveryResult is a Venue annotated with its distance from the visitor.
// DistanceKm is nil when no user coordinate is known or the venue
// coordinate does not parse.
type DiscoveryResult struct {
	Venue
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// HasDistance reports whether a distance was computed.
func (r *DiscoveryResult) HasDistance() bool {
	return r.DistanceKm != nil
}
