package endpoint

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/bigfive/internal/survey"
)

func sampleRequest() survey.SubmitRequest {
	return survey.SubmitRequest{
		TestID:      "b5-120",
		Lang:        "en",
		TimeElapsed: 312,
		DateStamp:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Answers: []survey.Answer{
			{ID: "q1", Score: 3, Domain: "N", Facet: 1},
		},
	}
}

func TestClient_Submit(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/results", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"abc123"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL + "/")
	require.NoError(t, err)

	resp, err := c.Submit(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, "abc123", resp.ID)

	assert.Equal(t, "b5-120", got["testId"])
	assert.Equal(t, "en", got["lang"])
	assert.Equal(t, false, got["invalid"])
	assert.Equal(t, float64(312), got["timeElapsed"])
	assert.Equal(t, "2026-01-02T03:04:05Z", got["dateStamp"])
	answers, ok := got["answers"].([]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"id": "q1", "score": float64(3), "domain": "N", "facet": float64(1)}, answers[0])
}

func TestClient_SubmitMissingID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	_, err = c.Submit(context.Background(), sampleRequest())
	require.ErrorIs(t, err, ErrMissingID)
	assert.ErrorIs(t, err, survey.ErrMissingResultID)
}

func TestClient_SubmitStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"answers: missing"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	_, err = c.Submit(context.Background(), sampleRequest())
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadRequest, se.StatusCode)
	assert.Equal(t, "answers: missing", se.Message)
	assert.Contains(t, se.Error(), "HTTP 400")
}

func TestClient_Fetch(t *testing.T) {
	stored := NewResult("r-1", sampleRequest())
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/results/r-1" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"not found"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(stored)
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	res, err := c.Fetch(context.Background(), "r-1")
	require.NoError(t, err)
	assert.Equal(t, "r-1", res.ID)
	assert.True(t, stored.DateStamp.Equal(res.DateStamp))
	require.Len(t, res.Scores, 1)
	assert.Equal(t, "N", res.Scores[0].Domain)

	_, err = c.Fetch(context.Background(), "nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := New(url, WithHTTPClient(&http.Client{Timeout: time.Second}))
	require.NoError(t, err)

	_, err = c.Submit(context.Background(), sampleRequest())
	require.Error(t, err)
	var se *StatusError
	assert.False(t, errors.As(err, &se))
}

func TestNew_RejectsBadURL(t *testing.T) {
	_, err := New("ftp://example.com")
	require.Error(t, err)

	_, err = New("://bad")
	require.Error(t, err)
}

func TestNewResult_Scores(t *testing.T) {
	req := sampleRequest()
	req.DateStamp = time.Date(2026, 1, 2, 5, 4, 5, 0, time.FixedZone("X", 2*3600))
	req.Answers = nil

	res := NewResult("id", req)
	assert.Equal(t, time.UTC, res.DateStamp.Location())
	assert.NotNil(t, res.Answers)
	assert.Empty(t, res.Scores)
}
