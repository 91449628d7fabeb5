package services

import (
	"context"
	"log"
	"time"

	"fitflix-server/api/leads"
	"fitflix-server/models/lead"
)

// LeadService validates lead submissions before relaying them to the leads
// backend.
type LeadService struct {
	leadsApi leads.LeadsAPI
	timeout  time.Duration
}

func NewLeadService(leadsApi leads.LeadsAPI, timeout time.Duration) *LeadService {
	return &LeadService{leadsApi: leadsApi, timeout: timeout}
}

// SubmitLead sends the submission unless it fails local validation, in which
// case the validation error is returned and nothing is sent.
func (ls *LeadService) SubmitLead(ctx context.Context, submission lead.LeadSubmission) (lead.LeadResult, error) {
	if err := submission.Validate(); err != nil {
		log.Printf("[LeadService] Rejected lead from source=%q: %v", submission.Source, err)
		return lead.LeadResult{Success: false, Message: err.Error()}, err
	}
	return ls.leadsApi.SubmitLead(ctx, submission, ls.timeout), nil
}

func (ls *LeadService) GetLeads(ctx context.Context, query lead.LeadsQuery) lead.LeadResult {
	return ls.leadsApi.GetLeads(ctx, query, ls.timeout)
}

func (ls *LeadService) UpdateLeadStatus(ctx context.Context, leadID string, update lead.LeadStatusUpdate) lead.LeadResult {
	return ls.leadsApi.UpdateLeadStatus(ctx, leadID, update, ls.timeout)
}

func (ls *LeadService) DeleteLead(ctx context.Context, leadID string) lead.LeadResult {
	return ls.leadsApi.DeleteLead(ctx, leadID, ls.timeout)
}
