package util

import (
	"encoding/json"
	"fmt"
	"os"

	"fitflix-server/models/event"
	"fitflix-server/models/venue"
)

// ReadVenuesCatalogFromJSON loads the static venue catalog from JSON on disk.
func ReadVenuesCatalogFromJSON(filePath string) ([]venue.Venue, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var venues []venue.Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venue catalog: %w", err)
	}
	return venues, nil
}

// ReadEventsFromJSON loads a list of events from JSON on disk.
func ReadEventsFromJSON(filePath string) ([]event.Event, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var events []event.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("failed to unmarshal events: %w", err)
	}
	return events, nil
}

// PrintDiscoveryResultsPartially prints key fields of a ranked list.
func PrintDiscoveryResultsPartially(results []venue.DiscoveryResult) {
	fmt.Printf("Results: %d\n", len(results))
	for i, r := range results {
		distance := "n/a"
		if r.DistanceKm != nil {
			distance = fmt.Sprintf("%.2f km", *r.DistanceKm)
		}
		rating := "n/a"
		if r.Rating != nil {
			rating = fmt.Sprintf("%.1f", *r.Rating)
		}
		fmt.Printf("%d. %s (%s) rating=%s distance=%s\n", i+1, r.Name, r.Type, rating, distance)
	}
}
