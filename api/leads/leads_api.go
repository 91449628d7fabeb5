package leads

import (
	"context"
	"time"

	"fitflix-server/models/lead"
)

// LeadsAPI defines the interface for interacting with the leads backend.
// Implementations never return errors: every outcome is a LeadResult.
type LeadsAPI interface {
	SubmitLead(ctx context.Context, submission lead.LeadSubmission, timeout time.Duration) lead.LeadResult
	GetLeads(ctx context.Context, query lead.LeadsQuery, timeout time.Duration) lead.LeadResult
	UpdateLeadStatus(ctx context.Context, leadID string, update lead.LeadStatusUpdate, timeout time.Duration) lead.LeadResult
	DeleteLead(ctx context.Context, leadID string, timeout time.Duration) lead.LeadResult
}
