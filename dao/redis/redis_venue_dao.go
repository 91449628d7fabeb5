package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"slices"
	"strconv"
	"strings"

	"fitflix-server/db"
	"fitflix-server/models/venue"
	"fitflix-server/util"
)

const VENUES_GEO_KEY_V1 = "venues_geo_v1"
const VENUES_GEO_PLACE_MEMBER_FORMAT_V1 = "venues_geo_place_v1:%d"

// VENUES_CATALOG_ORDER_KEY_V1 holds the JSON list of venue ids in catalog order.
const VENUES_CATALOG_ORDER_KEY_V1 = "venues_catalog_order_v1"

var ErrVenueNotFound = errors.New("venue not found")

// RedisVenueDAO handles venue operations using Redis.
type RedisVenueDAO struct {
	client db.RedisClient
}

// NewRedisVenueDAO initializes a RedisVenueDAO with the Redis client.
func NewRedisVenueDAO(client db.RedisClient) *RedisVenueDAO {
	return &RedisVenueDAO{client: client}
}

func venueKey(id int) string {
	return fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, id)
}

// UpsertVenue stores the venue JSON and, when its coordinate parses, indexes
// it for radius queries.
func (dao *RedisVenueDAO) UpsertVenue(v venue.Venue) error {
	key := venueKey(v.ID)
	lat, lon, ok := util.ParseCoordinate(v.Latitude, v.Longitude)
	if !ok {
		log.Printf("[RedisVenueDAO] Venue %d has no usable coordinate, storing without geo index", v.ID)
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal venue %d: %w", v.ID, err)
		}
		if err := dao.client.Set(key, string(data)); err != nil {
			return fmt.Errorf("failed to set venue %d: %w", v.ID, err)
		}
		return nil
	}
	ctx := dao.client.GetContext()
	return dao.client.AddLocationWithJSON(ctx, VENUES_GEO_KEY_V1, key, lat, lon, v)
}

// SetCatalogOrder records the order venues are listed in.
func (dao *RedisVenueDAO) SetCatalogOrder(ids []int) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog order: %w", err)
	}
	if err := dao.client.Set(VENUES_CATALOG_ORDER_KEY_V1, string(data)); err != nil {
		return fmt.Errorf("failed to set catalog order: %w", err)
	}
	return nil
}

// GetCatalogOrder returns the recorded venue ids, or nil when none were set.
func (dao *RedisVenueDAO) GetCatalogOrder() ([]int, error) {
	str, err := dao.client.Get(VENUES_CATALOG_ORDER_KEY_V1)
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog order: %w", err)
	}
	var ids []int
	if err := json.Unmarshal([]byte(str), &ids); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog order: %w", err)
	}
	return ids, nil
}

// GetVenue returns the stored venue or ErrVenueNotFound.
func (dao *RedisVenueDAO) GetVenue(id int) (*venue.Venue, error) {
	str, err := dao.client.Get(venueKey(id))
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrVenueNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get venue %d: %w", id, err)
	}
	var v venue.Venue
	if err := json.Unmarshal([]byte(str), &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venue JSON: %w", err)
	}
	return &v, nil
}

// ListVenues returns every venue in catalog order. Venues missing from the
// order list follow, sorted by id.
func (dao *RedisVenueDAO) ListVenues() ([]venue.Venue, error) {
	order, err := dao.GetCatalogOrder()
	if err != nil {
		return nil, err
	}
	ids, err := dao.ListAllVenueIDs()
	if err != nil {
		return nil, err
	}

	listed := make(map[int]struct{}, len(order))
	for _, id := range order {
		listed[id] = struct{}{}
	}
	all := append([]int{}, order...)
	for _, id := range ids {
		if _, ok := listed[id]; !ok {
			all = append(all, id)
		}
	}

	venues := make([]venue.Venue, 0, len(all))
	for _, id := range all {
		v, err := dao.GetVenue(id)
		if errors.Is(err, ErrVenueNotFound) {
			log.Printf("[RedisVenueDAO] Catalog lists venue %d but it is not stored", id)
			continue
		}
		if err != nil {
			return nil, err
		}
		venues = append(venues, *v)
	}
	return venues, nil
}

// ListAllVenueIDs returns the ids of all stored venues, ascending.
func (dao *RedisVenueDAO) ListAllVenueIDs() ([]int, error) {
	prefix := strings.TrimSuffix(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, "%d")
	keys, err := dao.client.Keys(prefix + "*")
	if err != nil {
		return nil, fmt.Errorf("failed to list venue keys: %w", err)
	}
	ids := make([]int, 0, len(keys))
	for _, k := range keys {
		id, err := strconv.Atoi(strings.TrimPrefix(k, prefix))
		if err != nil {
			log.Printf("[RedisVenueDAO] Ignoring unexpected key %s", k)
			continue
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

// GetNearbyVenues retrieves venues within radiusKm of the point.
func (dao *RedisVenueDAO) GetNearbyVenues(lat, lon, radiusKm float64) ([]venue.Venue, error) {
	venuesJSON, err := dao.client.GetLocationsWithinRadius(VENUES_GEO_KEY_V1, lat, lon, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("[RedisVenueDAO] failed to get venues: %w", err)
	}

	venues := make([]venue.Venue, len(venuesJSON))
	for i, venueJSON := range venuesJSON {
		if err := json.Unmarshal([]byte(venueJSON), &venues[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal venue JSON: %w", err)
		}
	}
	return venues, nil
}

// DeleteVenue removes a venue and its geo index entry.
func (dao *RedisVenueDAO) DeleteVenue(id int) error {
	key := venueKey(id)
	if err := dao.client.RemoveLocation(dao.client.GetContext(), VENUES_GEO_KEY_V1, key); err != nil {
		return fmt.Errorf("failed to remove venue %d from geo index: %w", id, err)
	}
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete venue key %s: %w", key, err)
	}
	log.Printf("[RedisVenueDAO] Deleted venue %d", id)
	return nil
}
