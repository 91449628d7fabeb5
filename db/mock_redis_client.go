package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"path"
	"sort"
	"sync"

	"fitflix-server/util"
)

// MockRedisClient simulates a Redis client for testing purposes.
type MockRedisClient struct {
	data    map[string]string            // Key-value store
	geoData map[string]map[string]GeoLoc // Geolocation data
	mu      sync.RWMutex
	context context.Context
}

// GeoLoc represents a geolocation with latitude and longitude.
type GeoLoc struct {
	Latitude  float64
	Longitude float64
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient(ctx context.Context) *MockRedisClient {
	return &MockRedisClient{
		data:    make(map[string]string),
		geoData: make(map[string]map[string]GeoLoc),
		context: ctx,
	}
}

// Set stores a key-value pair in the mock Redis.
func (m *MockRedisClient) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Get retrieves a value for a given key from the mock Redis.
func (m *MockRedisClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return value, nil
}

// AddLocationWithJSON adds geolocation with JSON data in the mock Redis.
func (m *MockRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.geoData[geoKey]; !exists {
		m.geoData[geoKey] = make(map[string]GeoLoc)
	}
	m.geoData[geoKey][memberKey] = GeoLoc{Latitude: lat, Longitude: lon}
	m.data[memberKey] = string(jsonData)
	return nil
}

// GetLocationsWithinRadius returns the JSON of members within radius km,
// nearest first like GEORADIUS ... ASC.
func (m *MockRedisClient) GetLocationsWithinRadius(key string, lat, lon, radius float64) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	geoMembers, exists := m.geoData[key]
	if !exists {
		return nil, nil
	}

	type hit struct {
		member string
		dist   float64
	}
	var hits []hit
	for member, loc := range geoMembers {
		d := util.HaversineKm(lat, lon, loc.Latitude, loc.Longitude)
		if d <= radius {
			hits = append(hits, hit{member, d})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].dist == hits[j].dist {
			return hits[i].member < hits[j].member
		}
		return hits[i].dist < hits[j].dist
	})

	var results []string
	for _, h := range hits {
		if data, exists := m.data[h.member]; exists {
			results = append(results, data)
		}
	}
	return results, nil
}

// GetContext returns the mock Redis client's context.
func (m *MockRedisClient) GetContext() context.Context {
	return m.context
}

// Ping always succeeds.
func (m *MockRedisClient) Ping() error {
	log.Println("[MockRedisClient] Ping successful")
	return nil
}

// Keys matches stored keys against a glob pattern, sorted.
func (m *MockRedisClient) Keys(pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := []string{}
	for k := range m.data {
		ok, err := path.Match(pattern, k)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Del removes the key, which may be a plain value or a whole geo index.
func (m *MockRedisClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	delete(m.geoData, key)
	return nil
}

// RemoveLocation drops one member from a geo index.
func (m *MockRedisClient) RemoveLocation(ctx context.Context, geoKey, memberKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if members, ok := m.geoData[geoKey]; ok {
		delete(members, memberKey)
	}
	return nil
}
