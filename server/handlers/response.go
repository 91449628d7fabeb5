package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"fitflix-server/api"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeAPIError relays a backend failure. Backend statuses pass through and
// anything without one is reported as a bad gateway.
func writeAPIError(w http.ResponseWriter, err error) {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		writeMessage(w, apiErr.StatusCode, apiErr.Error())
		return
	}
	log.Println("Error calling backend:", err)
	writeMessage(w, http.StatusBadGateway, err.Error())
}
