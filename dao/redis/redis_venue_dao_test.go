package redis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"fitflix-server/db"
	"fitflix-server/models/venue"
)

func newTestDAO() (*RedisVenueDAO, *db.MockRedisClient) {
	mockClient := db.NewMockRedisClient(context.Background())
	return NewRedisVenueDAO(mockClient), mockClient
}

func testCatalog() []venue.Venue {
	return []venue.Venue{
		{ID: 1, Name: "FitFlix Premium Gym - Electronic City", Type: venue.CategoryGym, Latitude: "12.9352", Longitude: "77.6245"},
		{ID: 2, Name: "FitFlix Wellness Club - Marathahalli", Type: venue.CategoryWellnessClub, Latitude: "12.9698", Longitude: "77.7499"},
		{ID: 3, Name: "FitFlix Fitness - Brookefield", Type: venue.CategoryGym, Latitude: "13.0012", Longitude: "77.7399"},
	}
}

func TestRedisVenueDAO_UpsertVenue_Success(t *testing.T) {
	// Setup
	dao, mockClient := newTestDAO()
	testVenue := testCatalog()[0]

	// Act
	err := dao.UpsertVenue(testVenue)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	storedValue, err := mockClient.Get("venues_geo_place_v1:1")
	if err != nil {
		t.Fatalf("Expected data to be stored, got error: %v", err)
	}
	var storedVenue venue.Venue
	if err := json.Unmarshal([]byte(storedValue), &storedVenue); err != nil {
		t.Fatalf("Failed to unmarshal stored venue data: %v", err)
	}
	if storedVenue.Name != testVenue.Name {
		t.Errorf("Expected Name %s, got %s", testVenue.Name, storedVenue.Name)
	}
}

func TestRedisVenueDAO_UpsertVenue_MalformedCoordinate(t *testing.T) {
	dao, _ := newTestDAO()

	err := dao.UpsertVenue(venue.Venue{ID: 9, Name: "Pop-up", Latitude: "n/a", Longitude: ""})

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	v, err := dao.GetVenue(9)
	if err != nil || v.Name != "Pop-up" {
		t.Errorf("Expected venue stored without geo index, got %v, %v", v, err)
	}
	nearby, _ := dao.GetNearbyVenues(0, 0, 20000)
	if len(nearby) != 0 {
		t.Errorf("Expected venue to be absent from geo index, got %v", nearby)
	}
}

func TestRedisVenueDAO_GetVenue_NotFound(t *testing.T) {
	dao, _ := newTestDAO()

	_, err := dao.GetVenue(42)

	if !errors.Is(err, ErrVenueNotFound) {
		t.Errorf("Expected ErrVenueNotFound, got %v", err)
	}
}

func TestRedisVenueDAO_ListVenues_CatalogOrder(t *testing.T) {
	// Setup
	dao, _ := newTestDAO()
	for _, v := range testCatalog() {
		_ = dao.UpsertVenue(v)
	}
	if err := dao.SetCatalogOrder([]int{3, 1}); err != nil {
		t.Fatalf("SetCatalogOrder failed: %v", err)
	}

	// Act
	venues, err := dao.ListVenues()

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := []int{3, 1, 2}
	if len(venues) != len(want) {
		t.Fatalf("Expected %d venues, got %d", len(want), len(venues))
	}
	for i, id := range want {
		if venues[i].ID != id {
			t.Errorf("Position %d: expected venue %d, got %d", i, id, venues[i].ID)
		}
	}
}

func TestRedisVenueDAO_ListVenues_Empty(t *testing.T) {
	dao, _ := newTestDAO()

	venues, err := dao.ListVenues()

	if err != nil || len(venues) != 0 {
		t.Errorf("Expected empty catalog, got %v, %v", venues, err)
	}
}

func TestRedisVenueDAO_GetNearbyVenues_Success(t *testing.T) {
	// Setup
	dao, _ := newTestDAO()
	for _, v := range testCatalog() {
		_ = dao.UpsertVenue(v)
	}

	// Act
	venues, err := dao.GetNearbyVenues(12.97, 77.59, 10)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(venues) != 1 || venues[0].ID != 1 {
		t.Errorf("Expected only Electronic City within 10 km, got %v", venues)
	}
}

func TestRedisVenueDAO_DeleteVenue(t *testing.T) {
	dao, _ := newTestDAO()
	_ = dao.UpsertVenue(testCatalog()[1])

	if err := dao.DeleteVenue(2); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := dao.GetVenue(2); !errors.Is(err, ErrVenueNotFound) {
		t.Errorf("Expected venue to be deleted, got %v", err)
	}
}

func TestRedisVenueDAO_DeleteVenue_RemovesGeoEntry(t *testing.T) {
	// Setup
	dao, mockClient := newTestDAO()
	for _, v := range testCatalog() {
		_ = dao.UpsertVenue(v)
	}
	// A leftover JSON document must not resurface through the geo index.
	if err := dao.DeleteVenue(1); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	_ = mockClient.Set("venues_geo_place_v1:1", `{"id":1}`)

	// Act
	venues, err := dao.GetNearbyVenues(12.97, 77.59, 10)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(venues) != 0 {
		t.Errorf("Expected deleted venue to be gone from the geo index, got %v", venues)
	}
}
