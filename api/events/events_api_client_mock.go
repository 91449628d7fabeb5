package events

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"fitflix-server/api"
	"fitflix-server/models/event"
	"fitflix-server/util"

	"github.com/google/uuid"
)

// EventsApiClientMock serves events from a static JSON resource and keeps
// registrations in memory.
type EventsApiClientMock struct {
	resourcePath  string
	mu            sync.Mutex
	registrations map[string][]event.EventResponse
}

// NewEventsApiClientMock creates a new instance of EventsApiClientMock
func NewEventsApiClientMock(resourcePath string) *EventsApiClientMock {
	return &EventsApiClientMock{
		resourcePath:  resourcePath,
		registrations: make(map[string][]event.EventResponse),
	}
}

func (m *EventsApiClientMock) GetUpcomingEvents(ctx context.Context) ([]event.Event, error) {
	all, err := util.ReadEventsFromJSON(m.resourcePath)
	if err != nil {
		log.Printf("[EventsApiClientMock] Error reading events resource: %v", err)
		return nil, api.NewAPIError(http.StatusInternalServerError, "")
	}
	upcoming := []event.Event{}
	for _, e := range all {
		if e.Status == "PUBLISHED" {
			upcoming = append(upcoming, e)
		}
	}
	return upcoming, nil
}

func (m *EventsApiClientMock) GetEvent(ctx context.Context, eventID string) (*event.Event, error) {
	all, err := m.GetUpcomingEvents(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == eventID {
			return &all[i], nil
		}
	}
	return nil, api.NewAPIError(http.StatusNotFound, "Event not found")
}

func (m *EventsApiClientMock) RegisterForEvent(ctx context.Context, eventID string, registration event.EventRegistration) (*event.RegistrationResult, error) {
	if strings.TrimSpace(registration.Name) == "" || strings.TrimSpace(registration.Phone) == "" {
		return nil, api.NewAPIError(http.StatusBadRequest, "Name and phone are required")
	}
	if _, err := m.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.registrations[eventID] {
		if r.Phone == registration.Phone {
			return nil, api.NewAPIError(http.StatusConflict, "Already registered for this event")
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	response := event.EventResponse{
		ID:        uuid.NewString(),
		EventID:   eventID,
		Name:      registration.Name,
		Phone:     registration.Phone,
		Email:     registration.Email,
		Status:    "PENDING",
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.registrations[eventID] = append(m.registrations[eventID], response)

	return &event.RegistrationResult{
		Message:  fmt.Sprintf("Registered %s for event", registration.Name),
		Response: &response,
	}, nil
}
