package handlers

import (
	"encoding/json"
	"net/http"

	"fitflix-server/models/location"
	"fitflix-server/session"
)

type LocationHandler struct {
	locationStore session.LocationStore
}

func NewLocationHandler(locationStore session.LocationStore) *LocationHandler {
	return &LocationHandler{locationStore: locationStore}
}

// SetLocation handles PUT /v1/location with a {"lat":..,"lng":..} body.
func (h *LocationHandler) SetLocation(w http.ResponseWriter, r *http.Request) {
	var coord location.UserCoordinate
	if err := json.NewDecoder(r.Body).Decode(&coord); err != nil || !coord.Valid() {
		writeMessage(w, http.StatusBadRequest, "Invalid location")
		return
	}

	h.locationStore.Set(w, coord)
	writeJSON(w, http.StatusOK, coord)
}

// GetLocation handles GET /v1/location.
func (h *LocationHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	coord, ok := h.locationStore.Get(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "No saved location")
		return
	}
	writeJSON(w, http.StatusOK, coord)
}
