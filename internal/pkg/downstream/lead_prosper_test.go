package downstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/consts"
)

func testPayload() map[string]string {
	return map[string]string{
		"campaign_id": "c1",
		"first_name":  "Jordan",
		"zip_code":    "78701",
	}
}

func TestSubmitLead_Accepted(t *testing.T) {
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, consts.ContentTypeJSON, r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"status":"ACCEPTED","lead_id":"L-1"}`))
	}))
	defer server.Close()

	client := NewLeadProsperClient(5 * time.Second)
	resp, err := client.SubmitLead(context.Background(), server.URL, testPayload())

	require.NoError(t, err)
	assert.Equal(t, consts.StatusAccepted, resp.Status)
	assert.Equal(t, "L-1", resp.LeadID)
	assert.Equal(t, "Jordan", gotBody["first_name"])
}

func TestSubmitLead_RejectedStatusPassedThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status":"REJECTED","message":"bad phone"}`))
	}))
	defer server.Close()

	client := NewLeadProsperClient(5 * time.Second)
	resp, err := client.SubmitLead(context.Background(), server.URL, testPayload())

	require.NoError(t, err)
	assert.Equal(t, "REJECTED", resp.Status)
	assert.Equal(t, "bad phone", resp.Message)
}

func TestSubmitLead_NonJSONBodyTreatedAsAccepted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>thanks</html>"))
	}))
	defer server.Close()

	client := NewLeadProsperClient(5 * time.Second)
	resp, err := client.SubmitLead(context.Background(), server.URL, testPayload())

	require.NoError(t, err)
	assert.Equal(t, consts.StatusAccepted, resp.Status)
}

func TestSubmitLead_EmptyBodyTreatedAsAccepted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewLeadProsperClient(5 * time.Second)
	resp, err := client.SubmitLead(context.Background(), server.URL, testPayload())

	require.NoError(t, err)
	assert.Equal(t, consts.StatusAccepted, resp.Status)
}

func TestSubmitLead_NetworkErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewLeadProsperClient(time.Second)
	_, err := client.SubmitLead(context.Background(), server.URL, testPayload())
	require.Error(t, err)
}

func TestSubmitLead_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := NewLeadProsperClient(5 * time.Second)
	_, err := client.SubmitLead(ctx, server.URL, testPayload())
	require.Error(t, err)
}
