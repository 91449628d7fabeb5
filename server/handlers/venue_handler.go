package handlers

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"fitflix-server/dao/redis"
	"fitflix-server/models/location"
	"fitflix-server/models/venue"
	services "fitflix-server/service"
	"fitflix-server/session"
	"fitflix-server/util"

	"github.com/gorilla/mux"
)

const (
	QUERY_ARG        = "q"
	TYPE_QUERY_ARG   = "type"
	LAT_QUERY_ARG    = "lat"
	LNG_QUERY_ARG    = "lng"
	LON_QUERY_ARG    = "lon"
	RADIUS_QUERY_ARG = "radius"
	ID_PATH_ARG      = "id"
)

// VenuesResponse is the body of the venue listing endpoints.
type VenuesResponse struct {
	Venues []venue.DiscoveryResult `json:"venues"`
	Count  int                     `json:"count"`
}

type VenueHandler struct {
	discoveryService *services.DiscoveryService
	locationStore    session.LocationStore
}

func NewVenueHandler(discoveryService *services.DiscoveryService, locationStore session.LocationStore) *VenueHandler {
	return &VenueHandler{
		discoveryService: discoveryService,
		locationStore:    locationStore,
	}
}

// GetVenues handles GET /v1/venues?q=&type=&lat=&lng=
func (h *VenueHandler) GetVenues(w http.ResponseWriter, r *http.Request) {
	params, ok := h.parseDiscoveryArgs(r, w)
	if !ok {
		return
	}

	results, err := h.discoveryService.Discover(params)
	if err != nil {
		log.Println("Error loading venues:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toVenuesResponse(results))
}

// GetVenuesNearby handles GET /v1/venues/nearby?lat=&lon=&radius=&q=&type=
func (h *VenueHandler) GetVenuesNearby(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	center, radius, ok := parseNearbyArgs(vals, w)
	if !ok {
		return
	}
	params, ok := h.parseDiscoveryArgs(r, w)
	if !ok {
		return
	}

	results, err := h.discoveryService.DiscoverNearby(params, center, radius)
	if err != nil {
		log.Println("Error loading nearby venues:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toVenuesResponse(results))
}

// GetVenuesMap handles GET /v1/venues/map and renders the ranked list as HTML.
func (h *VenueHandler) GetVenuesMap(w http.ResponseWriter, r *http.Request) {
	params, ok := h.parseDiscoveryArgs(r, w)
	if !ok {
		return
	}

	results, err := h.discoveryService.Discover(params)
	if err != nil {
		log.Println("Error loading venues:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.PlotVenuesMap(w, results, params.User); err != nil {
		log.Println("Error rendering venues map:", err)
	}
}

// GetVenue handles GET /v1/venues/{id}
func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)[ID_PATH_ARG])
	if err != nil {
		http.Error(w, "Invalid argument "+ID_PATH_ARG, http.StatusBadRequest)
		return
	}

	v, err := h.discoveryService.GetVenue(id)
	if errors.Is(err, redis.ErrVenueNotFound) {
		writeMessage(w, http.StatusNotFound, "Venue not found")
		return
	}
	if err != nil {
		log.Println("Error loading venue:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, v)
}

// Ping handles GET /ping
func (h *VenueHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

// parseDiscoveryArgs reads the query text and type filter. The visitor's
// position comes from lat/lng when both parse, else from the saved location.
func (h *VenueHandler) parseDiscoveryArgs(r *http.Request, w http.ResponseWriter) (services.DiscoveryParams, bool) {
	vals := r.URL.Query()

	filter, err := venue.ParseTypeFilter(vals.Get(TYPE_QUERY_ARG))
	if err != nil {
		http.Error(w, "Invalid argument "+TYPE_QUERY_ARG, http.StatusBadRequest)
		return services.DiscoveryParams{}, false
	}

	params := services.DiscoveryParams{
		Query:  vals.Get(QUERY_ARG),
		Filter: filter,
	}
	if lat, lng, ok := util.ParseCoordinate(vals.Get(LAT_QUERY_ARG), vals.Get(LNG_QUERY_ARG)); ok {
		params.User = &location.UserCoordinate{Lat: lat, Lng: lng}
	} else if saved, ok := h.locationStore.Get(r); ok {
		params.User = saved
	}
	return params, true
}

func parseNearbyArgs(vals url.Values, w http.ResponseWriter) (center location.UserCoordinate, radius float64, ok bool) {
	lat, lon, valid := util.ParseCoordinate(vals.Get(LAT_QUERY_ARG), vals.Get(LON_QUERY_ARG))
	if !valid {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG+"/"+LON_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius, err := strconv.ParseFloat(vals.Get(RADIUS_QUERY_ARG), 64)
	if err != nil || radius <= 0 {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}
	return location.UserCoordinate{Lat: lat, Lng: lon}, radius, true
}

func toVenuesResponse(results []venue.DiscoveryResult) VenuesResponse {
	if results == nil {
		results = []venue.DiscoveryResult{}
	}
	return VenuesResponse{Venues: results, Count: len(results)}
}
