package launchpadapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/descilaunch/launchpad-web/internal/launchpad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(Config{BaseURL: server.URL + "/", HTTPClient: server.Client()})
}

func TestNewFallsBackToDefaultBaseURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultBaseURL, New(Config{BaseURL: "  "}).BaseURL())
	assert.Equal(t, "https://api.example", New(Config{BaseURL: "https://api.example/"}).BaseURL())
}

func TestListProjects(t *testing.T) {
	t.Parallel()

	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/launchpad/projects", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"slug":"alpha","name":"Alpha"},{"id":2,"slug":"beta","name":"Beta"}]`))
	})

	projects, err := client.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "1", projects[0].ID)
	assert.Equal(t, "beta", projects[1].Slug)
}

func TestListProjectsNonArrayIsEmpty(t *testing.T) {
	t.Parallel()

	client := setupTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"detail":"maintenance"}`))
	})

	projects, err := client.ListProjects(context.Background())
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestListProjectsStatusError(t *testing.T) {
	t.Parallel()

	client := setupTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.ListProjects(context.Background())
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.Status)
}

func TestRecordSentiment(t *testing.T) {
	t.Parallel()

	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/launchpad/projects/42/sentiment", r.URL.Path)
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"vote": "down"}, body)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.RecordSentiment(context.Background(), "42", launchpad.VoteDown))
}

func TestRecordSentimentRejectsBadInput(t *testing.T) {
	t.Parallel()

	client := setupTestServer(t, func(http.ResponseWriter, *http.Request) {
		t.Error("backend should not be called")
	})

	assert.Error(t, client.RecordSentiment(context.Background(), "", launchpad.VoteUp))
	assert.Error(t, client.RecordSentiment(context.Background(), "1", launchpad.VoteNone))
}

func TestQuote(t *testing.T) {
	t.Parallel()

	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/swaps/quote", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "SUI", query.Get("from"))
		assert.Equal(t, "DESCI", query.Get("to"))
		assert.Equal(t, "0", query.Get("amount"))
		assert.Equal(t, "0.5", query.Get("slippage"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","route":"SUI>DESCI","expected_out":"41.2"}`))
	})

	quote, err := client.Quote(context.Background(), launchpad.DefaultSwapForm())
	require.NoError(t, err)
	assert.Equal(t, launchpad.Quote{Status: "OK", Route: "SUI>DESCI", ExpectedOut: "41.2"}, quote)
}

func TestQuoteFailures(t *testing.T) {
	t.Parallel()

	notImplemented := setupTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotImplemented)
	})
	_, err := notImplemented.Quote(context.Background(), launchpad.DefaultSwapForm())
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotImplemented, statusErr.Status)

	malformed := setupTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`"pending"`))
	})
	_, err = malformed.Quote(context.Background(), launchpad.DefaultSwapForm())
	assert.True(t, errors.Is(err, ErrMalformedQuote), "err = %v", err)
}

func TestExecute(t *testing.T) {
	t.Parallel()

	var got map[string]any
	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/swaps/execute", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	})

	form := launchpad.SwapForm{From: "SUI", To: "ALP", Amount: "5", Slippage: "1.0"}
	require.NoError(t, client.Execute(context.Background(), form, "0xabc"))
	assert.Equal(t, map[string]any{
		"from":          "SUI",
		"to":            "ALP",
		"amount":        "5",
		"slippage":      "1.0",
		"walletAddress": "0xabc",
	}, got)

	require.NoError(t, client.Execute(context.Background(), form, ""))
	assert.Nil(t, got["walletAddress"])
}

func TestRequestsHonourContextCancellation(t *testing.T) {
	t.Parallel()

	client := setupTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListProjects(ctx)
	assert.Error(t, err)
}
