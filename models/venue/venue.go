package venue

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// CatalogTimeLayout is the layout of opening/closing times in the static catalog.
const CatalogTimeLayout = "2006-01-02T15:04:05"

var (
	ErrInvalidCategory   = errors.New("invalid venue category")
	ErrInvalidCoordinate = errors.New("invalid venue coordinate")
	ErrInvalidRating     = errors.New("invalid venue rating")
	ErrInvalidHours      = errors.New("invalid venue opening hours")
)

// Venue represents a gym or wellness club listed in the catalog.
type Venue struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Type        Category `json:"type"`
	Address     string   `json:"address"`
	Latitude    string   `json:"latitude"`
	Longitude   string   `json:"longitude"`
	Description string   `json:"description"`
	Rating      *float64 `json:"rating,omitempty"`
	Verified    bool     `json:"verified"`
	Amenities   []string `json:"amenities"`

	OpeningTime string `json:"opening_time,omitempty"` // Read as string.
	ClosingTime string `json:"closing_time,omitempty"` // Read as string.
}

// HasRating reports whether the venue carries a usable rating. A zero rating
// is treated as unrated.
func (v *Venue) HasRating() bool {
	return v.Rating != nil && *v.Rating != 0
}

// OpeningAt parses the opening time. ok is false when absent or malformed.
func (v *Venue) OpeningAt() (t time.Time, ok bool) {
	return parseCatalogTime(v.OpeningTime)
}

// ClosingAt parses the closing time. ok is false when absent or malformed.
func (v *Venue) ClosingAt() (t time.Time, ok bool) {
	return parseCatalogTime(v.ClosingTime)
}

// Validate checks the catalog invariants of a single entry. Coordinates that
// do not parse are allowed (they only disable distance sorting), but parsed
// values must be in range.
func (v *Venue) Validate() error {
	if !v.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, v.Type)
	}
	if lat, err := strconv.ParseFloat(strings.TrimSpace(v.Latitude), 64); err == nil {
		if math.IsNaN(lat) || lat < -90 || lat > 90 {
			return fmt.Errorf("%w: latitude %s", ErrInvalidCoordinate, v.Latitude)
		}
	}
	if lon, err := strconv.ParseFloat(strings.TrimSpace(v.Longitude), 64); err == nil {
		if math.IsNaN(lon) || lon < -180 || lon > 180 {
			return fmt.Errorf("%w: longitude %s", ErrInvalidCoordinate, v.Longitude)
		}
	}
	if v.Rating != nil && (*v.Rating < 0 || *v.Rating > 5) {
		return fmt.Errorf("%w: %v", ErrInvalidRating, *v.Rating)
	}
	if _, ok := v.OpeningAt(); v.OpeningTime != "" && !ok {
		return fmt.Errorf("%w: opening %s", ErrInvalidHours, v.OpeningTime)
	}
	if _, ok := v.ClosingAt(); v.ClosingTime != "" && !ok {
		return fmt.Errorf("%w: closing %s", ErrInvalidHours, v.ClosingTime)
	}
	return nil
}

func (v *Venue) ToString() string {
	return fmt.Sprintf("Venue(id=%d, name=%s, type=%s, address=%s, lat=%s, lon=%s)",
		v.ID, v.Name, v.Type, v.Address, v.Latitude, v.Longitude)
}

func parseCatalogTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(CatalogTimeLayout, s)
	if err != nil {
		// some entries carry an offset
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return time.Time{}, false
		}
	}
	return t, true
}
