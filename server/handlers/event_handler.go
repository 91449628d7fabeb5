package handlers

import (
	"encoding/json"
	"net/http"

	"fitflix-server/api/events"
	"fitflix-server/models/event"

	"github.com/gorilla/mux"
)

type EventHandler struct {
	eventsApi events.EventsAPI
}

func NewEventHandler(eventsApi events.EventsAPI) *EventHandler {
	return &EventHandler{eventsApi: eventsApi}
}

// GetEvents handles GET /v1/events
func (h *EventHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	list, err := h.eventsApi.GetUpcomingEvents(r.Context())
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]event.Event{"events": list})
}

// GetEvent handles GET /v1/events/{id}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	e, err := h.eventsApi.GetEvent(r.Context(), mux.Vars(r)[ID_PATH_ARG])
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]*event.Event{"event": e})
}

// RegisterForEvent handles POST /v1/events/{id}/register
func (h *EventHandler) RegisterForEvent(w http.ResponseWriter, r *http.Request) {
	var registration event.EventRegistration
	if err := json.NewDecoder(r.Body).Decode(&registration); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.eventsApi.RegisterForEvent(r.Context(), mux.Vars(r)[ID_PATH_ARG], registration)
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}
