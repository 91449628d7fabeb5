package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

// mockHandler answers every route with the route's name.
type mockHandler struct{}

func reply(name string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(name + ":" + mux.Vars(r)["id"]))
	}
}

func (h *mockHandler) Ping(w http.ResponseWriter, r *http.Request)      { reply("ping")(w, r) }
func (h *mockHandler) GetVenues(w http.ResponseWriter, r *http.Request) { reply("venues")(w, r) }
func (h *mockHandler) GetVenuesNearby(w http.ResponseWriter, r *http.Request) {
	reply("nearby")(w, r)
}
func (h *mockHandler) GetVenuesMap(w http.ResponseWriter, r *http.Request) { reply("map")(w, r) }
func (h *mockHandler) GetVenue(w http.ResponseWriter, r *http.Request)     { reply("venue")(w, r) }
func (h *mockHandler) GetLocation(w http.ResponseWriter, r *http.Request)  { reply("get-location")(w, r) }
func (h *mockHandler) SetLocation(w http.ResponseWriter, r *http.Request)  { reply("set-location")(w, r) }
func (h *mockHandler) SubmitLead(w http.ResponseWriter, r *http.Request)   { reply("submit")(w, r) }
func (h *mockHandler) GetLeads(w http.ResponseWriter, r *http.Request)     { reply("leads")(w, r) }
func (h *mockHandler) UpdateLeadStatus(w http.ResponseWriter, r *http.Request) {
	reply("status")(w, r)
}
func (h *mockHandler) DeleteLead(w http.ResponseWriter, r *http.Request) { reply("delete")(w, r) }
func (h *mockHandler) GetEvents(w http.ResponseWriter, r *http.Request)  { reply("events")(w, r) }
func (h *mockHandler) GetEvent(w http.ResponseWriter, r *http.Request)   { reply("event")(w, r) }
func (h *mockHandler) RegisterForEvent(w http.ResponseWriter, r *http.Request) {
	reply("register")(w, r)
}

func TestRouter_RegisterRoutes(t *testing.T) {
	// Setup
	h := &mockHandler{}
	router := mux.NewRouter()
	appRouter := NewRouter(h, h, h, h, router)
	appRouter.RegisterRoutes()

	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{"Ping Route", "GET", "/ping", http.StatusOK, "ping:"},
		{"Get Venues", "GET", "/v1/venues?q=gym&type=gym", http.StatusOK, "venues:"},
		{"Get Venues Nearby", "GET", "/v1/venues/nearby", http.StatusOK, "nearby:"},
		{"Get Venues Map", "GET", "/v1/venues/map", http.StatusOK, "map:"},
		{"Get Venue", "GET", "/v1/venues/3", http.StatusOK, "venue:3"},
		{"Get Location", "GET", "/v1/location", http.StatusOK, "get-location:"},
		{"Set Location", "PUT", "/v1/location", http.StatusOK, "set-location:"},
		{"Submit Lead", "POST", "/v1/leads", http.StatusOK, "submit:"},
		{"List Leads", "GET", "/v1/leads", http.StatusOK, "leads:"},
		{"Update Lead Status", "PATCH", "/v1/leads/lead_1/status", http.StatusOK, "status:lead_1"},
		{"Delete Lead", "DELETE", "/v1/leads/lead_1", http.StatusOK, "delete:lead_1"},
		{"List Events", "GET", "/v1/events", http.StatusOK, "events:"},
		{"Get Event", "GET", "/v1/events/run", http.StatusOK, "event:run"},
		{"Register For Event", "POST", "/v1/events/run/register", http.StatusOK, "register:run"},
		{"Wrong Method", "DELETE", "/v1/venues", http.StatusMethodNotAllowed, ""},
		{"Invalid Route", "GET", "/invalid", http.StatusNotFound, ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			if rr.Code != test.statusCode {
				t.Errorf("Expected status %d, got %d", test.statusCode, rr.Code)
			}
			if test.response != "" && rr.Body.String() != test.response {
				t.Errorf("Expected response %s, got %s", test.response, rr.Body.String())
			}
		})
	}
}

func TestRouter_RequestID(t *testing.T) {
	h := &mockHandler{}
	router := mux.NewRouter()
	NewRouter(h, h, h, h, router).RegisterRoutes()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/ping", nil))
	if rr.Header().Get(RequestIDHeader) == "" {
		t.Errorf("Expected a generated %s header", RequestIDHeader)
	}

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if got := rr.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("Expected caller's request id to be kept, got %s", got)
	}
}
