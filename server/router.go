package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

type VenueRoutes interface {
	Ping(w http.ResponseWriter, r *http.Request)
	GetVenues(w http.ResponseWriter, r *http.Request)
	GetVenuesNearby(w http.ResponseWriter, r *http.Request)
	GetVenuesMap(w http.ResponseWriter, r *http.Request)
	GetVenue(w http.ResponseWriter, r *http.Request)
}

type LocationRoutes interface {
	GetLocation(w http.ResponseWriter, r *http.Request)
	SetLocation(w http.ResponseWriter, r *http.Request)
}

type LeadRoutes interface {
	SubmitLead(w http.ResponseWriter, r *http.Request)
	GetLeads(w http.ResponseWriter, r *http.Request)
	UpdateLeadStatus(w http.ResponseWriter, r *http.Request)
	DeleteLead(w http.ResponseWriter, r *http.Request)
}

type EventRoutes interface {
	GetEvents(w http.ResponseWriter, r *http.Request)
	GetEvent(w http.ResponseWriter, r *http.Request)
	RegisterForEvent(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	venueHandler    VenueRoutes
	locationHandler LocationRoutes
	leadHandler     LeadRoutes
	eventHandler    EventRoutes
	router          *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	venueHandler VenueRoutes,
	locationHandler LocationRoutes,
	leadHandler LeadRoutes,
	eventHandler EventRoutes,
	router *mux.Router) *Router {
	return &Router{
		venueHandler:    venueHandler,
		locationHandler: locationHandler,
		leadHandler:     leadHandler,
		eventHandler:    eventHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(RequestIDMiddleware, LoggingMiddleware)

	r.router.HandleFunc("/ping", r.venueHandler.Ping).Methods("GET")

	v1 := r.router.PathPrefix("/v1").Subrouter()

	// expects ?q={text}&type={all|gym|wellness-club}&lat={float}&lng={float}
	v1.HandleFunc("/venues", r.venueHandler.GetVenues).Methods("GET")
	// expects ?lat={float}&lon={float}&radius={km}
	v1.HandleFunc("/venues/nearby", r.venueHandler.GetVenuesNearby).Methods("GET")
	v1.HandleFunc("/venues/map", r.venueHandler.GetVenuesMap).Methods("GET")
	v1.HandleFunc("/venues/{id}", r.venueHandler.GetVenue).Methods("GET")

	v1.HandleFunc("/location", r.locationHandler.GetLocation).Methods("GET")
	v1.HandleFunc("/location", r.locationHandler.SetLocation).Methods("PUT")

	v1.HandleFunc("/leads", r.leadHandler.SubmitLead).Methods("POST")
	v1.HandleFunc("/leads", r.leadHandler.GetLeads).Methods("GET")
	v1.HandleFunc("/leads/{id}/status", r.leadHandler.UpdateLeadStatus).Methods("PATCH")
	v1.HandleFunc("/leads/{id}", r.leadHandler.DeleteLead).Methods("DELETE")

	v1.HandleFunc("/events", r.eventHandler.GetEvents).Methods("GET")
	v1.HandleFunc("/events/{id}", r.eventHandler.GetEvent).Methods("GET")
	v1.HandleFunc("/events/{id}/register", r.eventHandler.RegisterForEvent).Methods("POST")
}
