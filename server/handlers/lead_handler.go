package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"fitflix-server/api/leads"
	"fitflix-server/models/lead"
	services "fitflix-server/service"

	"github.com/gorilla/mux"
)

const (
	PAGE_QUERY_ARG   = "page"
	LIMIT_QUERY_ARG  = "limit"
	STATUS_QUERY_ARG = "status"
	SOURCE_QUERY_ARG = "source"
)

type LeadHandler struct {
	leadService *services.LeadService
}

func NewLeadHandler(leadService *services.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// SubmitLead handles POST /v1/leads
func (h *LeadHandler) SubmitLead(w http.ResponseWriter, r *http.Request) {
	var submission lead.LeadSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		writeJSON(w, http.StatusBadRequest, lead.LeadResult{Success: false, Message: "Invalid request body"})
		return
	}

	result, err := h.leadService.SubmitLead(r.Context(), submission)
	if errors.Is(err, lead.ErrMissingRequiredFields) {
		writeJSON(w, http.StatusBadRequest, result)
		return
	}
	writeLeadResult(w, result)
}

// GetLeads handles GET /v1/leads?page=&limit=&status=&source=
func (h *LeadHandler) GetLeads(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	query := lead.LeadsQuery{
		Page:   lead.DefaultPage,
		Limit:  lead.DefaultLimit,
		Status: vals.Get(STATUS_QUERY_ARG),
		Source: vals.Get(SOURCE_QUERY_ARG),
	}
	for arg, dst := range map[string]*int{PAGE_QUERY_ARG: &query.Page, LIMIT_QUERY_ARG: &query.Limit} {
		s := vals.Get(arg)
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, lead.LeadResult{Success: false, Message: "Invalid argument " + arg})
			return
		}
		*dst = n
	}

	writeLeadResult(w, h.leadService.GetLeads(r.Context(), query))
}

// UpdateLeadStatus handles PATCH /v1/leads/{id}/status
func (h *LeadHandler) UpdateLeadStatus(w http.ResponseWriter, r *http.Request) {
	var update lead.LeadStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil || update.Status == "" {
		writeJSON(w, http.StatusBadRequest, lead.LeadResult{Success: false, Message: "Status is required"})
		return
	}

	writeLeadResult(w, h.leadService.UpdateLeadStatus(r.Context(), mux.Vars(r)[ID_PATH_ARG], update))
}

// DeleteLead handles DELETE /v1/leads/{id}
func (h *LeadHandler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	writeLeadResult(w, h.leadService.DeleteLead(r.Context(), mux.Vars(r)[ID_PATH_ARG]))
}

func writeLeadResult(w http.ResponseWriter, result lead.LeadResult) {
	writeJSON(w, LeadHTTPStatus(result), result)
}

// LeadHTTPStatus maps a lead outcome onto the status relayed to the caller.
func LeadHTTPStatus(result lead.LeadResult) int {
	switch {
	case result.Success:
		return http.StatusOK
	case result.Status != 0:
		return result.Status
	case result.Message == leads.MessageTimedOut:
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}
