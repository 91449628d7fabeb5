package events

import (
	"context"
	"net/http"
	"net/url"

	"fitflix-server/api"
	"fitflix-server/models/event"
)

// EventsAPI defines the interface for the public events endpoints.
type EventsAPI interface {
	GetUpcomingEvents(ctx context.Context) ([]event.Event, error)
	GetEvent(ctx context.Context, eventID string) (*event.Event, error)
	RegisterForEvent(ctx context.Context, eventID string, registration event.EventRegistration) (*event.RegistrationResult, error)
}

// EventsApiClient embeds the common HTTPClient
type EventsApiClient struct {
	*api.HTTPClient
}

// NewEventsApiClient creates a new instance of EventsApiClient
func NewEventsApiClient(httpClient *api.HTTPClient) *EventsApiClient {
	return &EventsApiClient{
		HTTPClient: httpClient,
	}
}

// GetUpcomingEvents lists published upcoming events.
func (c *EventsApiClient) GetUpcomingEvents(ctx context.Context) ([]event.Event, error) {
	var response struct {
		Events []event.Event `json:"events"`
	}
	if err := c.Request(ctx, http.MethodGet, "/events/upcoming", nil, nil, &response); err != nil {
		return nil, err
	}
	if response.Events == nil {
		return []event.Event{}, nil
	}
	return response.Events, nil
}

// GetEvent retrieves an event given an event id
func (c *EventsApiClient) GetEvent(ctx context.Context, eventID string) (*event.Event, error) {
	var response struct {
		Event *event.Event `json:"event"`
	}
	if err := c.Request(ctx, http.MethodGet, "/events/"+url.PathEscape(eventID), nil, nil, &response); err != nil {
		return nil, err
	}
	if response.Event == nil {
		return nil, api.NewAPIError(http.StatusNotFound, "event not found")
	}
	return response.Event, nil
}

// RegisterForEvent signs a visitor up for an event.
func (c *EventsApiClient) RegisterForEvent(ctx context.Context, eventID string, registration event.EventRegistration) (*event.RegistrationResult, error) {
	var response event.RegistrationResult
	endpoint := "/events/" + url.PathEscape(eventID) + "/register"
	if err := c.Request(ctx, http.MethodPost, endpoint, nil, registration, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
