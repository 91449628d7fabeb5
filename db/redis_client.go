package db

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key does not exist.
var ErrKeyNotFound = errors.New("key not found")

// RedisClient defines the storage operations the DAOs rely on.
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error
	// GetLocationsWithinRadius returns the JSON of members within radius km.
	GetLocationsWithinRadius(key string, lat, lon, radius float64) ([]string, error)
	// RemoveLocation drops a member from a geo index, leaving its JSON.
	RemoveLocation(ctx context.Context, geoKey, memberKey string) error
	GetContext() context.Context
	Ping() error
	Keys(pattern string) ([]string, error)
	Del(key string) error
}
