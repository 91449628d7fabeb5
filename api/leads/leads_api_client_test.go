package leads

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"fitflix-server/api"
	"fitflix-server/models/lead"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *LeadsApiClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewLeadsApiClient(api.NewHTTPClient(srv.URL))
}

func sampleSubmission() lead.LeadSubmission {
	gymID := 2
	return lead.LeadSubmission{
		Name:     "Asha Rao",
		Phone:    "+91 98450 00000",
		Location: "Marathahalli",
		Source:   "callback-form",
		GymID:    &gymID,
	}
}

func TestSubmitLead_Success(t *testing.T) {
	var received map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/leads", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		b, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(b, &received))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message":"ok","data":{"id":1}}`))
	})

	result := client.SubmitLead(context.Background(), sampleSubmission(), 0)

	assert.True(t, result.Success)
	assert.Equal(t, "ok", result.Message)
	assert.JSONEq(t, `{"id":1}`, string(result.Data))
	assert.Equal(t, http.StatusOK, result.Status)

	assert.Equal(t, "Asha Rao", received["name"])
	assert.Equal(t, "callback-form", received["source"])
	assert.Equal(t, 2.0, received["gymId"])
	_, hasEmail := received["email"]
	assert.False(t, hasEmail)
}

func TestSubmitLead_SuccessDefaults(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantData string
	}{
		{"no message, no data", `{"success":true,"id":"lead_1"}`, `{"success":true,"id":"lead_1"}`},
		{"null data falls back to body", `{"data":null}`, `{"data":null}`},
		{"empty body", ``, ``},
		{"not json", `<html>ok</html>`, ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte(tt.body))
			})

			result := client.SubmitLead(context.Background(), sampleSubmission(), time.Second)

			assert.True(t, result.Success)
			assert.Equal(t, "Lead submitted", result.Message)
			assert.Equal(t, http.StatusCreated, result.Status)
			if tt.wantData == "" {
				assert.Nil(t, result.Data)
			} else {
				assert.JSONEq(t, tt.wantData, string(result.Data))
			}
		})
	}
}

func TestSubmitLead_ServerFailure(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{"message field", http.StatusBadRequest, `{"message":"Missing required fields"}`, "Missing required fields"},
		{"error field", http.StatusBadRequest, `{"error":"Missing required fields"}`, "Missing required fields"},
		{"no body", http.StatusInternalServerError, ``, "Request failed with status 500"},
		{"html body", http.StatusBadGateway, `<h1>Bad Gateway</h1>`, "Request failed with status 502"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			result := client.SubmitLead(context.Background(), sampleSubmission(), time.Second)

			assert.False(t, result.Success)
			assert.Equal(t, tt.wantMessage, result.Message)
			assert.Equal(t, tt.status, result.Status)
			assert.Nil(t, result.Data)
		})
	}
}

func TestSubmitLead_Timeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	})

	start := time.Now()
	result := client.SubmitLead(context.Background(), sampleSubmission(), 50*time.Millisecond)
	elapsed := time.Since(start)

	assert.False(t, result.Success)
	assert.Equal(t, "Request timed out", result.Message)
	assert.Equal(t, 0, result.Status)
	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
	assert.Less(t, elapsed, time.Second)
}

func TestSubmitLead_CallTimeoutLongerThanClientDefault(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(1500 * time.Millisecond)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"ok"}`))
	})
	client.Timeout = time.Second

	result := client.SubmitLead(context.Background(), sampleSubmission(), 3*time.Second)

	assert.True(t, result.Success)
	assert.Equal(t, "ok", result.Message)
	assert.Equal(t, http.StatusCreated, result.Status)
}

func TestSubmitLead_UnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewLeadsApiClient(api.NewHTTPClient(url))

	var result lead.LeadResult
	assert.NotPanics(t, func() {
		result = client.SubmitLead(context.Background(), sampleSubmission(), time.Second)
	})

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Message)
	assert.NotEqual(t, "Request timed out", result.Message)
	assert.Equal(t, 0, result.Status)
}

func TestSubmitLead_ConcurrentCallsAreIndependent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var s lead.LeadSubmission
		json.NewDecoder(r.Body).Decode(&s)
		if s.Source == "slow" {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
			return
		}
		w.Write([]byte(`{"message":"ok"}`))
	})

	slow := sampleSubmission()
	slow.Source = "slow"

	var wg sync.WaitGroup
	results := make([]lead.LeadResult, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		results[0] = client.SubmitLead(context.Background(), slow, 50*time.Millisecond)
	}()
	go func() {
		defer wg.Done()
		results[1] = client.SubmitLead(context.Background(), sampleSubmission(), time.Second)
	}()
	wg.Wait()

	assert.Equal(t, "Request timed out", results[0].Message)
	assert.True(t, results[1].Success)
	assert.Equal(t, "ok", results[1].Message)
}

func TestGetLeads_SendsQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/leads", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "20", q.Get("limit"))
		assert.Equal(t, "new", q.Get("status"))
		assert.False(t, q.Has("source"))
		w.Write([]byte(`{"data":[{"id":"lead_1"}]}`))
	})

	result := client.GetLeads(context.Background(), lead.LeadsQuery{Page: 2, Status: "new", Source: "all"}, time.Second)

	assert.True(t, result.Success)
	assert.Equal(t, "Fetched leads", result.Message)
	assert.JSONEq(t, `[{"id":"lead_1"}]`, string(result.Data))
}

func TestGetLeads_Failure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	result := client.GetLeads(context.Background(), lead.LeadsQuery{}, time.Second)

	assert.False(t, result.Success)
	assert.Equal(t, "Request failed 401", result.Message)
	assert.Equal(t, http.StatusUnauthorized, result.Status)
}

func TestUpdateLeadStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/leads/lead 7/status", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"status": "contacted", "notes": "called back"}, body)
		w.Write([]byte(`{"data":{"id":"lead 7","status":"contacted"}}`))
	})

	result := client.UpdateLeadStatus(context.Background(), "lead 7",
		lead.LeadStatusUpdate{Status: "contacted", Notes: "called back"}, time.Second)

	assert.True(t, result.Success)
	assert.Equal(t, "Status updated", result.Message)
	assert.JSONEq(t, `{"id":"lead 7","status":"contacted"}`, string(result.Data))
}

func TestUpdateLeadStatus_Failure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	result := client.UpdateLeadStatus(context.Background(), "x", lead.LeadStatusUpdate{Status: "lost"}, time.Second)

	assert.False(t, result.Success)
	assert.Equal(t, "Failed status 404", result.Message)
}

func TestDeleteLead(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/leads/lead_3", r.URL.Path)
		if r.URL.Path == "/leads/lead_3" {
			w.Write([]byte(`{"message":"Lead removed"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	result := client.DeleteLead(context.Background(), "lead_3", time.Second)

	assert.True(t, result.Success)
	assert.Equal(t, "Lead removed", result.Message)
}

func TestDeleteLead_Failure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`not json`))
	})

	result := client.DeleteLead(context.Background(), "lead_3", time.Second)

	assert.False(t, result.Success)
	assert.Equal(t, "Failed to delete 403", result.Message)
	assert.Equal(t, http.StatusForbidden, result.Status)
}

func TestParseBody(t *testing.T) {
	env, raw := parseBody([]byte(`  {"message":"hi","data":[1,2]} `))
	assert.Equal(t, "hi", env.Message)
	assert.JSONEq(t, `[1,2]`, string(env.Data))
	assert.JSONEq(t, `{"message":"hi","data":[1,2]}`, string(raw))

	env, raw = parseBody([]byte(`[1,2,3]`))
	assert.Equal(t, envelope{}, env)
	assert.JSONEq(t, `[1,2,3]`, string(raw))

	env, raw = parseBody([]byte(`null`))
	assert.Equal(t, envelope{}, env)
	assert.Nil(t, raw)

	env, raw = parseBody([]byte(`{"message":`))
	assert.Equal(t, envelope{}, env)
	assert.Nil(t, raw)
}
