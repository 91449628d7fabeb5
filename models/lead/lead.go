package lead

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrMissingRequiredFields = errors.New("name and phone are required")

// LeadSubmission is one prospective customer's callback request.
type LeadSubmission struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
	Location string `json:"location,omitempty"`
	Source   string `json:"source"`
	Interest string `json:"interest,omitempty"`
	GymID    *int   `json:"gymId,omitempty"`
}

// Validate rejects a submission that must not be sent.
func (s LeadSubmission) Validate() error {
	if strings.TrimSpace(s.Name) == "" || strings.TrimSpace(s.Phone) == "" {
		return ErrMissingRequiredFields
	}
	return nil
}

// LeadResult is the normalized outcome of a call to the leads backend.
// Status is 0 when no HTTP response was received.
type LeadResult struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Status  int             `json:"status,omitempty"`
}

// LeadStatusUpdate is the PATCH body for a status change.
type LeadStatusUpdate struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}
