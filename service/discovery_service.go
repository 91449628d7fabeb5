package services

import (
	"fitflix-server/dao/redis"
	"fitflix-server/discovery"
	"fitflix-server/models/location"
	"fitflix-server/models/venue"
)

// DiscoveryParams are the visitor's current search inputs.
type DiscoveryParams struct {
	Query  string
	Filter venue.TypeFilter
	User   *location.UserCoordinate
}

type DiscoveryService struct {
	venueDao *redis.RedisVenueDAO
}

func NewDiscoveryService(venueDao *redis.RedisVenueDAO) *DiscoveryService {
	return &DiscoveryService{venueDao: venueDao}
}

// Discover ranks the whole catalog.
func (ds *DiscoveryService) Discover(params DiscoveryParams) ([]venue.DiscoveryResult, error) {
	venues, err := ds.venueDao.ListVenues()
	if err != nil {
		return nil, err
	}
	return discovery.Rank(venues, params.Query, params.Filter, params.User), nil
}

// DiscoverNearby ranks only venues within radiusKm of center. Candidates are
// fed to the pipeline in catalog order. center is used as the visitor's
// position when params carries none.
func (ds *DiscoveryService) DiscoverNearby(params DiscoveryParams, center location.UserCoordinate, radiusKm float64) ([]venue.DiscoveryResult, error) {
	nearby, err := ds.venueDao.GetNearbyVenues(center.Lat, center.Lng, radiusKm)
	if err != nil {
		return nil, err
	}
	inRange := make(map[int]struct{}, len(nearby))
	for _, v := range nearby {
		inRange[v.ID] = struct{}{}
	}

	catalog, err := ds.venueDao.ListVenues()
	if err != nil {
		return nil, err
	}
	candidates := make([]venue.Venue, 0, len(nearby))
	for _, v := range catalog {
		if _, ok := inRange[v.ID]; ok {
			candidates = append(candidates, v)
		}
	}

	user := params.User
	if user == nil {
		user = &center
	}
	return discovery.Rank(candidates, params.Query, params.Filter, user), nil
}

func (ds *DiscoveryService) GetVenue(id int) (*venue.Venue, error) {
	return ds.venueDao.GetVenue(id)
}
