package leads

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"fitflix-server/models/lead"
)

// StoredLead is a lead held by LeadsApiClientMock.
type StoredLead struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	lead.LeadSubmission
}

// LeadsApiClientMock answers from memory with the same envelopes as the
// real backend. Used outside prod.
type LeadsApiClientMock struct {
	mu     sync.Mutex
	leads  []StoredLead
	nextID int
}

// NewLeadsApiClientMock creates a new instance of LeadsApiClientMock
func NewLeadsApiClientMock() *LeadsApiClientMock {
	return &LeadsApiClientMock{nextID: 1}
}

func (m *LeadsApiClientMock) SubmitLead(ctx context.Context, submission lead.LeadSubmission, timeout time.Duration) lead.LeadResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := StoredLead{
		ID:             fmt.Sprintf("lead_%d", m.nextID),
		Status:         "new",
		CreatedAt:      time.Now(),
		LeadSubmission: submission,
	}
	m.nextID++
	m.leads = append(m.leads, stored)

	return okResult(submitOutcome.success, map[string]string{"id": stored.ID})
}

func (m *LeadsApiClientMock) GetLeads(ctx context.Context, query lead.LeadsQuery, timeout time.Duration) lead.LeadResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	values := query.ToValues()
	status, source := values.Get("status"), values.Get("source")

	var matched []StoredLead
	for _, l := range m.leads {
		if status != "" && l.Status != status {
			continue
		}
		if source != "" && l.Source != source {
			continue
		}
		matched = append(matched, l)
	}

	page, limit := query.Page, query.Limit
	if page <= 0 {
		page = lead.DefaultPage
	}
	if limit <= 0 {
		limit = lead.DefaultLimit
	}
	// Bounds are checked by division so huge page or limit values cannot overflow.
	start := len(matched)
	if page-1 <= len(matched)/limit {
		start = min((page-1)*limit, len(matched))
	}
	end := start + min(limit, len(matched)-start)

	return okResult(listOutcome.success, map[string]interface{}{
		"leads": matched[start:end],
		"total": len(matched),
		"page":  page,
		"limit": limit,
	})
}

func (m *LeadsApiClientMock) UpdateLeadStatus(ctx context.Context, leadID string, update lead.LeadStatusUpdate, timeout time.Duration) lead.LeadResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.leads {
		if m.leads[i].ID == leadID {
			m.leads[i].Status = update.Status
			m.leads[i].Notes = update.Notes
			return okResult(updateOutcome.success, m.leads[i])
		}
	}
	return notFoundResult(leadID)
}

func (m *LeadsApiClientMock) DeleteLead(ctx context.Context, leadID string, timeout time.Duration) lead.LeadResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.leads {
		if m.leads[i].ID == leadID {
			m.leads = append(m.leads[:i], m.leads[i+1:]...)
			return okResult(deleteOutcome.success, nil)
		}
	}
	return notFoundResult(leadID)
}

func okResult(message string, data interface{}) lead.LeadResult {
	var raw json.RawMessage
	if data != nil {
		raw, _ = json.Marshal(data)
	}
	return lead.LeadResult{Success: true, Message: message, Data: raw, Status: http.StatusOK}
}

func notFoundResult(leadID string) lead.LeadResult {
	return lead.LeadResult{
		Success: false,
		Message: fmt.Sprintf("Lead %s not found", leadID),
		Status:  http.StatusNotFound,
	}
}
