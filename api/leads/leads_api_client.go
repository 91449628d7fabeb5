package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"time"

	"fitflix-server/api"
	"fitflix-server/models/lead"
)

const (
	leadsEndpoint = "/leads"

	MessageTimedOut     = "Request timed out"
	MessageNetworkError = "Network error"
)

// outcome holds the per-operation wording used when the backend sends no
// message of its own. failure takes the status code.
type outcome struct {
	op      string
	success string
	failure string
}

var (
	submitOutcome = outcome{op: "submitting lead", success: "Lead submitted", failure: "Request failed with status %d"}
	listOutcome   = outcome{op: "fetching leads", success: "Fetched leads", failure: "Request failed %d"}
	updateOutcome = outcome{op: "updating lead status", success: "Status updated", failure: "Failed status %d"}
	deleteOutcome = outcome{op: "deleting lead", success: "Lead deleted", failure: "Failed to delete %d"}
)

// LeadsApiClient embeds the common HTTPClient
type LeadsApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewLeadsApiClient creates a new instance of LeadsApiClient
func NewLeadsApiClient(httpClient *api.HTTPClient) *LeadsApiClient {
	return &LeadsApiClient{
		HTTPClient: httpClient,
	}
}

// SubmitLead posts a lead. A timeout <= 0 uses api.DefaultTimeout.
func (c *LeadsApiClient) SubmitLead(ctx context.Context, submission lead.LeadSubmission, timeout time.Duration) lead.LeadResult {
	return c.call(ctx, http.MethodPost, leadsEndpoint, submission, timeout, submitOutcome)
}

// GetLeads fetches one page of leads.
func (c *LeadsApiClient) GetLeads(ctx context.Context, query lead.LeadsQuery, timeout time.Duration) lead.LeadResult {
	endpoint := leadsEndpoint + "?" + query.ToValues().Encode()
	return c.call(ctx, http.MethodGet, endpoint, nil, timeout, listOutcome)
}

// UpdateLeadStatus changes the status of a lead.
func (c *LeadsApiClient) UpdateLeadStatus(ctx context.Context, leadID string, update lead.LeadStatusUpdate, timeout time.Duration) lead.LeadResult {
	endpoint := leadsEndpoint + "/" + url.PathEscape(leadID) + "/status"
	return c.call(ctx, http.MethodPatch, endpoint, update, timeout, updateOutcome)
}

// DeleteLead removes a lead.
func (c *LeadsApiClient) DeleteLead(ctx context.Context, leadID string, timeout time.Duration) lead.LeadResult {
	endpoint := leadsEndpoint + "/" + url.PathEscape(leadID)
	return c.call(ctx, http.MethodDelete, endpoint, nil, timeout, deleteOutcome)
}

// call runs one bounded request and folds every outcome into a LeadResult.
// Each call owns its deadline; nothing is shared between calls.
func (c *LeadsApiClient) call(ctx context.Context, method, endpoint string, body interface{}, timeout time.Duration, o outcome) lead.LeadResult {
	if timeout <= 0 {
		timeout = api.DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res, err := c.Do(ctx, method, endpoint, nil, body)
	if err != nil {
		log.Printf("[LeadsApiClient] Error %s: %v", o.op, err)
		if isTimeout(err) {
			return lead.LeadResult{Success: false, Message: MessageTimedOut}
		}
		return lead.LeadResult{Success: false, Message: networkMessage(err)}
	}

	env, raw := parseBody(res.Body)

	if !res.OK() {
		msg := env.Message
		if msg == "" {
			msg = env.Error
		}
		if msg == "" {
			msg = fmt.Sprintf(o.failure, res.StatusCode)
		}
		log.Printf("[LeadsApiClient] Backend rejected %s: status=%d message=%q", o.op, res.StatusCode, msg)
		return lead.LeadResult{Success: false, Message: msg, Status: res.StatusCode}
	}

	msg := env.Message
	if msg == "" {
		msg = o.success
	}
	data := raw
	if len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		data = env.Data
	}
	return lead.LeadResult{Success: true, Message: msg, Data: data, Status: res.StatusCode}
}

// envelope is the backend's response shape; every field is optional.
type envelope struct {
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

// parseBody decodes a response body without ever failing. An empty or
// non-JSON body yields a zero envelope and nil raw payload; valid JSON that
// is not an object yields a zero envelope and the payload itself.
func parseBody(body []byte) (envelope, json.RawMessage) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return envelope{}, nil
	}
	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		env = envelope{}
	}
	if bytes.Equal(trimmed, []byte("null")) {
		return env, nil
	}
	return env, json.RawMessage(trimmed)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// networkMessage strips the "Post \"url\":" prefix net/http adds.
func networkMessage(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		err = urlErr.Err
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return MessageNetworkError
}
