package venue

import (
	"errors"
	"testing"
)

func rating(r float64) *float64 { return &r }

func TestVenue_Validate(t *testing.T) {
	tests := []struct {
		name    string
		venue   Venue
		wantErr error
	}{
		{"valid gym", Venue{Type: CategoryGym, Latitude: "12.9352", Longitude: "77.6245", Rating: rating(4.8)}, nil},
		{"unparseable coordinate allowed", Venue{Type: CategoryWellnessClub, Latitude: "", Longitude: "n/a"}, nil},
		{"unknown category", Venue{Type: "spa"}, ErrInvalidCategory},
		{"latitude out of range", Venue{Type: CategoryGym, Latitude: "91", Longitude: "0"}, ErrInvalidCoordinate},
		{"longitude out of range", Venue{Type: CategoryGym, Latitude: "0", Longitude: "-181"}, ErrInvalidCoordinate},
		{"rating above five", Venue{Type: CategoryGym, Rating: rating(5.5)}, ErrInvalidRating},
		{"malformed opening time", Venue{Type: CategoryGym, OpeningTime: "6am"}, ErrInvalidHours},
		{"offset closing time", Venue{Type: CategoryGym, ClosingTime: "2025-01-01T22:00:00+05:30"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.venue.Validate()

			if tt.wantErr == nil && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestVenue_HasRating(t *testing.T) {
	if (&Venue{}).HasRating() {
		t.Errorf("Expected nil rating to be unrated")
	}
	if (&Venue{Rating: rating(0)}).HasRating() {
		t.Errorf("Expected zero rating to be unrated")
	}
	if !(&Venue{Rating: rating(3.9)}).HasRating() {
		t.Errorf("Expected 3.9 to be rated")
	}
}

func TestVenue_OpeningAt(t *testing.T) {
	v := Venue{OpeningTime: "2025-01-01T06:30:00"}

	opening, ok := v.OpeningAt()

	if !ok {
		t.Fatalf("Expected opening time to parse")
	}
	if opening.Hour() != 6 || opening.Minute() != 30 {
		t.Errorf("Expected 06:30, got %s", opening.Format("15:04"))
	}
	if _, ok := v.ClosingAt(); ok {
		t.Errorf("Expected absent closing time to report !ok")
	}
}

func TestParseTypeFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    TypeFilter
		wantErr bool
	}{
		{"", FilterAll, false},
		{"all", FilterAll, false},
		{"gym", FilterGym, false},
		{"wellness-club", FilterWellnessClub, false},
		{"Gym", "", true},
		{"spa", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTypeFilter(tt.in)

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTypeFilter) {
					t.Errorf("Expected ErrInvalidTypeFilter, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("Expected %q, got %q (%v)", tt.want, got, err)
			}
		})
	}
}

func TestTypeFilter_Matches(t *testing.T) {
	if !FilterAll.Matches(CategoryWellnessClub) || !FilterGym.Matches(CategoryGym) {
		t.Errorf("Expected matching categories to pass")
	}
	if FilterGym.Matches(CategoryWellnessClub) || TypeFilter("spa").Matches(CategoryGym) {
		t.Errorf("Expected other categories to be filtered out")
	}
}
