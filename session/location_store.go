// Package session reads and writes the visitor state kept in cookies.
package session

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fitflix-server/models/location"
)

const (
	UserLocationCookie  = "userLocation"
	DefaultLocationDays = 30
)

// LocationStore persists the visitor's coordinate between page loads.
type LocationStore interface {
	Get(r *http.Request) (*location.UserCoordinate, bool)
	Set(w http.ResponseWriter, coord location.UserCoordinate)
}

// CookieLocationStore keeps the coordinate in a cookie holding
// {"lat":..,"lng":..}.
type CookieLocationStore struct {
	Name   string
	MaxAge time.Duration
}

func NewCookieLocationStore(days int) *CookieLocationStore {
	if days <= 0 {
		days = DefaultLocationDays
	}
	return &CookieLocationStore{
		Name:   UserLocationCookie,
		MaxAge: time.Duration(days) * 24 * time.Hour,
	}
}

// Get returns the stored coordinate. Missing, malformed or out of range
// values read as absent.
func (s *CookieLocationStore) Get(r *http.Request) (*location.UserCoordinate, bool) {
	raw, ok := s.rawValue(r)
	if !ok {
		return nil, false
	}
	if unescaped, err := url.QueryUnescape(raw); err == nil {
		raw = unescaped
	}

	var coord location.UserCoordinate
	if err := json.Unmarshal([]byte(raw), &coord); err != nil {
		log.Printf("[CookieLocationStore] Error parsing saved location: %v", err)
		return nil, false
	}
	if !coord.Valid() {
		return nil, false
	}
	return &coord, true
}

// Set writes the coordinate percent-encoded, since raw JSON is not a valid
// cookie value.
func (s *CookieLocationStore) Set(w http.ResponseWriter, coord location.UserCoordinate) {
	data, err := json.Marshal(coord)
	if err != nil {
		log.Printf("[CookieLocationStore] Error encoding location: %v", err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.Name,
		Value:    url.QueryEscape(string(data)),
		Path:     "/",
		Expires:  time.Now().Add(s.MaxAge),
		MaxAge:   int(s.MaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// rawValue looks the cookie up through net/http first. Browsers that wrote
// raw JSON produce a value net/http refuses, so the header is scanned as a
// fallback.
func (s *CookieLocationStore) rawValue(r *http.Request) (string, bool) {
	if c, err := r.Cookie(s.Name); err == nil {
		return c.Value, true
	}
	prefix := s.Name + "="
	for _, line := range r.Header.Values("Cookie") {
		for _, part := range strings.Split(line, ";") {
			if v, found := strings.CutPrefix(strings.TrimSpace(part), prefix); found {
				return v, true
			}
		}
	}
	return "", false
}
