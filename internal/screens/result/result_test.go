package result

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bigfive/internal/endpoint"
	"github.com/abhisek/bigfive/internal/survey"
)

type stubFetcher struct {
	res   *endpoint.Result
	err   error
	calls int
}

func (f *stubFetcher) Fetch(_ context.Context, id string) (*endpoint.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	res := *f.res
	res.ID = id
	return &res, nil
}

func testResult() *endpoint.Result {
	res := endpoint.NewResult("", survey.SubmitRequest{
		TestID:      "b5-120",
		Lang:        "en",
		TimeElapsed: 600,
		DateStamp:   time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
		Answers: []survey.Answer{
			{ID: "a", Score: 5, Domain: "N", Facet: 1},
			{ID: "b", Score: 1, Domain: "E", Facet: 2},
			{ID: "c", Score: 3, Domain: "O", Facet: 3},
		},
	})
	return &res
}

func load(t *testing.T, r *ResultScreen) {
	t.Helper()
	cmd := r.Init()
	if cmd == nil {
		t.Fatal("expected a fetch command")
	}
	r.Update(cmd())
}

func TestResultScreen_Title(t *testing.T) {
	r := New("abc123", &stubFetcher{res: testResult()})
	if r.Title() != "Your Results" {
		t.Errorf("Title = %q", r.Title())
	}
}

func TestResultScreen_LoadsAndRenders(t *testing.T) {
	f := &stubFetcher{res: testResult()}
	r := New("abc123", f)

	if cmd := r.Init(); cmd == nil {
		t.Fatal("expected a fetch command")
	} else {
		if !strings.Contains(r.View(100, 30), "Loading...") {
			t.Error("expected loading view before the fetch completes")
		}
		r.Update(cmd())
	}

	view := r.View(100, 30)
	for _, want := range []string{"Neuroticism", "Extraversion", "Openness To Experience", "abc123", "10:00"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}
	if strings.Contains(view, "Anxiety") {
		t.Error("facets should be hidden by default")
	}

	r.Update(tea.KeyPressMsg{Code: 'f', Text: "f"})
	if !strings.Contains(r.View(100, 30), "Anxiety") {
		t.Error("expected facets after toggling")
	}
}

func TestResultScreen_ErrorAndRetry(t *testing.T) {
	f := &stubFetcher{err: endpoint.ErrNotFound}
	r := New("missing", f)
	load(t, r)

	if !strings.Contains(r.View(100, 30), "Could not load result missing") {
		t.Error("expected error view")
	}
	if hints := r.KeyHints(); hints[0].Description != "Retry" {
		t.Errorf("expected retry hint, got %+v", hints)
	}

	f.err, f.res = nil, testResult()
	_, cmd := r.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected retry to fetch")
	}
	r.Update(cmd())
	if f.calls != 2 || r.err != nil || r.result == nil {
		t.Errorf("expected successful retry, calls=%d err=%v", f.calls, r.err)
	}

	if _, cmd := r.Update(tea.KeyPressMsg{Code: 'r', Text: "r"}); cmd != nil {
		t.Error("retry is only offered after an error")
	}
}

func TestResultScreen_NoFetcher(t *testing.T) {
	r := New("abc", nil)
	if cmd := r.Init(); cmd != nil {
		t.Error("expected no command without a fetcher")
	}
	if r.err == nil {
		t.Error("expected an error without a fetcher")
	}
}

func TestResultScreen_Quit(t *testing.T) {
	r := New("abc", &stubFetcher{res: testResult()})
	_, cmd := r.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
