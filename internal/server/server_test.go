package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/bigfive/internal/endpoint"
	"github.com/abhisek/bigfive/internal/questions"
	"github.com/abhisek/bigfive/internal/survey"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memResults struct {
	mu      sync.Mutex
	byID    map[string]endpoint.Result
	saveErr error
}

func newMemResults() *memResults {
	return &memResults{byID: map[string]endpoint.Result{}}
}

func (m *memResults) Save(_ context.Context, res endpoint.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.byID[res.ID] = res
	return nil
}

func (m *memResults) Get(_ context.Context, id string) (*endpoint.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res, ok := m.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", endpoint.ErrNotFound, id)
	}
	return &res, nil
}

func embeddedBank(t *testing.T) *questions.Bank {
	t.Helper()
	bank, err := questions.Embedded()
	require.NoError(t, err)
	return bank
}

func requestFor(bank *questions.Bank, n int) survey.SubmitRequest {
	req := survey.SubmitRequest{
		TestID:      bank.ID,
		Lang:        "en",
		TimeElapsed: 420,
		DateStamp:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	for _, q := range bank.Questions[:n] {
		req.Answers = append(req.Answers, survey.Answer{ID: q.ID, Score: 4, Domain: q.Domain, Facet: q.Facet})
	}
	return req
}

func newTestServer(t *testing.T, bank *questions.Bank) (*Server, *memResults) {
	t.Helper()
	results := newMemResults()
	n := 0
	s := New(Options{
		Results: results,
		Bank:    bank,
		NewID: func() string {
			n++
			return fmt.Sprintf("res-%d", n)
		},
	})
	return s, results
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCreateAndFetchResult(t *testing.T) {
	bank := embeddedBank(t)
	s, results := newTestServer(t, bank)
	created := testutil.ToFloat64(resultsSubmitted.WithLabelValues(OutcomeCreated))

	rec := do(t, s.Handler(), http.MethodPost, endpoint.ResultsPath, requestFor(bank, len(bank.Questions)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp survey.SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "res-1", resp.ID)
	assert.Len(t, results.byID, 1)
	assert.Equal(t, created+1, testutil.ToFloat64(resultsSubmitted.WithLabelValues(OutcomeCreated)))

	for _, path := range []string{endpoint.ResultsPath + "/res-1", survey.ResultPath("res-1")} {
		rec = do(t, s.Handler(), http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code, path)

		var got endpoint.Result
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "res-1", got.ID)
		assert.Equal(t, bank.ID, got.TestID)
		assert.Len(t, got.Answers, len(bank.Questions))
		require.Len(t, got.Scores, 5)
		for _, d := range got.Scores {
			assert.InDelta(t, 4.0, d.Result, 1e-9, d.Domain)
		}
	}
}

func TestCreateResult_Rejects(t *testing.T) {
	bank := embeddedBank(t)
	valid := requestFor(bank, 3)

	wrongTest := valid
	wrongTest.TestID = "other"

	dup := requestFor(bank, 2)
	dup.Answers = append(dup.Answers, dup.Answers[0])

	unknown := requestFor(bank, 1)
	unknown.Answers[0].ID = "not-a-question"

	mislabeled := requestFor(bank, 1)
	mislabeled.Answers[0].Facet = mislabeled.Answers[0].Facet%6 + 1

	badScore := requestFor(bank, 1)
	badScore.Answers[0].Score = 9

	tests := []struct {
		name string
		body any
	}{
		{"not json", "{"},
		{"schema violation", badScore},
		{"missing fields", map[string]any{"testId": bank.ID}},
		{"wrong test", wrongTest},
		{"duplicate answer", dup},
		{"unknown question", unknown},
		{"domain facet mismatch", mislabeled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, results := newTestServer(t, bank)
			invalid := testutil.ToFloat64(resultsSubmitted.WithLabelValues(OutcomeInvalid))

			rec := do(t, s.Handler(), http.MethodPost, endpoint.ResultsPath, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
			assert.Empty(t, results.byID)
			assert.Equal(t, invalid+1, testutil.ToFloat64(resultsSubmitted.WithLabelValues(OutcomeInvalid)))
		})
	}
}

func TestCreateResult_BodyTooLarge(t *testing.T) {
	bank := embeddedBank(t)
	s, results := newTestServer(t, bank)
	invalid := testutil.ToFloat64(resultsSubmitted.WithLabelValues(OutcomeInvalid))

	body := `{"testId":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	rec := do(t, s.Handler(), http.MethodPost, endpoint.ResultsPath, body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "request body too large")
	assert.Empty(t, results.byID)
	assert.Equal(t, invalid+1, testutil.ToFloat64(resultsSubmitted.WithLabelValues(OutcomeInvalid)))
}

func TestCreateResult_PartialAnswersAccepted(t *testing.T) {
	bank := embeddedBank(t)
	s, _ := newTestServer(t, bank)

	rec := do(t, s.Handler(), http.MethodPost, endpoint.ResultsPath, requestFor(bank, 10))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateResult_WithoutBank(t *testing.T) {
	s := New(Options{Results: newMemResults()})
	req := survey.SubmitRequest{
		TestID:    "anything",
		Lang:      "en",
		DateStamp: time.Now().UTC(),
		Answers:   []survey.Answer{{ID: "x", Score: 3, Domain: "N", Facet: 1}},
	}
	rec := do(t, s.Handler(), http.MethodPost, endpoint.ResultsPath, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp survey.SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.ID, 36, "uuid by default")
}

func TestCreateResult_StoreFailure(t *testing.T) {
	bank := embeddedBank(t)
	s, results := newTestServer(t, bank)
	results.saveErr = fmt.Errorf("disk full")
	failed := testutil.ToFloat64(resultsSubmitted.WithLabelValues(OutcomeError))

	rec := do(t, s.Handler(), http.MethodPost, endpoint.ResultsPath, requestFor(bank, 1))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "disk full")
	assert.Equal(t, failed+1, testutil.ToFloat64(resultsSubmitted.WithLabelValues(OutcomeError)))
}

func TestGetResult_NotFound(t *testing.T) {
	s, _ := newTestServer(t, nil)
	missing := testutil.ToFloat64(resultsFetched.WithLabelValues("false"))

	rec := do(t, s.Handler(), http.MethodGet, endpoint.ResultsPath+"/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, missing+1, testutil.ToFloat64(resultsFetched.WithLabelValues("false")))
}

func TestGetQuestions(t *testing.T) {
	bank := embeddedBank(t)
	s, _ := newTestServer(t, bank)

	rec := do(t, s.Handler(), http.MethodGet, "/api/questions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got questions.Bank
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, bank.ID, got.ID)
	assert.Len(t, got.Questions, len(bank.Questions))

	s, _ = newTestServer(t, nil)
	rec = do(t, s.Handler(), http.MethodGet, "/api/questions", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetBank(t *testing.T) {
	bank := embeddedBank(t)
	s, _ := newTestServer(t, nil)

	rec := do(t, s.Handler(), http.MethodPost, "/api/results", requestFor(bank, 1))
	require.Equal(t, http.StatusCreated, rec.Code, "no bank accepts any ids")

	small := &questions.Bank{ID: bank.ID, Version: bank.Version, Questions: bank.Questions[:1]}
	s.SetBank(small)

	rec = do(t, s.Handler(), http.MethodGet, "/api/questions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got questions.Bank
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got.Questions, 1)

	rec = do(t, s.Handler(), http.MethodPost, "/api/results", requestFor(bank, 2))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown question")
}

func TestHealthAndMetrics(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rec := do(t, s.Handler(), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	RecordSubmission(OutcomeCreated)
	rec = do(t, s.Handler(), http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bigfive_results_submitted_total")
}

func TestServeShutsDownOnCancel(t *testing.T) {
	s, _ := newTestServer(t, nil)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln, time.Second) }()

	url := "http://" + ln.Addr().String() + "/healthz"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	// The endpoint client speaks to the live server end to end.
	client, err := endpoint.New("http://" + ln.Addr().String())
	require.NoError(t, err)
	_, err = client.Fetch(ctx, "missing")
	assert.ErrorIs(t, err, endpoint.ErrNotFound)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunBadAddr(t *testing.T) {
	s, _ := newTestServer(t, nil)
	err := s.Run(context.Background(), "not-an-addr", time.Second)
	assert.Error(t, err)
}
