package app

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bigfive/internal/endpoint"
	"github.com/abhisek/bigfive/internal/progress"
	"github.com/abhisek/bigfive/internal/questions"
	"github.com/abhisek/bigfive/internal/router"
	"github.com/abhisek/bigfive/internal/survey"
)

type stubFetcher struct{}

func (stubFetcher) Fetch(_ context.Context, id string) (*endpoint.Result, error) {
	res := endpoint.NewResult(id, survey.SubmitRequest{TestID: "b5-120"})
	return &res, nil
}

func testModel(t *testing.T) AppModel {
	t.Helper()
	bank, err := questions.Embedded()
	if err != nil {
		t.Fatalf("embedded bank: %v", err)
	}
	ctrl := survey.New(survey.Options{
		Questions: bank.Questions,
		Repo:      progress.NewRepository(progress.NewMemoryKV(), nil),
	})
	return newAppModel(Options{Controller: ctrl, Fetcher: stubFetcher{}})
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestStartsOnIntro(t *testing.T) {
	m := testModel(t)
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.router.Active().Title() != "" {
		t.Errorf("expected intro first, got %q", m.router.Active().Title())
	}
	if !strings.Contains(m.render(), "press any key") {
		t.Error("expected intro hint in view")
	}
}

func TestIntroReplacesWithSurveyAndResizes(t *testing.T) {
	m := testModel(t)
	m, _ = update(m, tea.WindowSizeMsg{Width: 140, Height: 40})

	_, cmd := update(m, tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("expected transition command")
	}
	m, cmd = update(m, cmd())
	if m.router.Active().Title() != "Personality Test" {
		t.Fatalf("expected survey screen, got %q", m.router.Active().Title())
	}
	if cmd == nil {
		t.Fatal("expected init and resize commands")
	}

	// The resize is replayed so the survey picks its page size.
	m, _ = update(m, tea.WindowSizeMsg{Width: 140, Height: 40})
	if !strings.Contains(m.render(), "0/120 answered") {
		t.Error("expected survey status in header")
	}
}

func TestNavigateToResult(t *testing.T) {
	m := testModel(t)
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	m, _ = update(m, router.NavigateMsg{Path: survey.ResultPath("abc123")})
	if m.router.Active().Title() != "Your Results" {
		t.Errorf("expected result screen, got %q", m.router.Active().Title())
	}
}

func TestResultIDStartsOnResult(t *testing.T) {
	m := newAppModel(Options{ResultID: "abc", Fetcher: stubFetcher{}})
	if m.router.Active().Title() != "Your Results" {
		t.Errorf("expected result screen, got %q", m.router.Active().Title())
	}
	if m.Init() == nil {
		t.Error("expected the result fetch on init")
	}
}

func TestTooSmall(t *testing.T) {
	m := testModel(t)
	m, _ = update(m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected min size message")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := testModel(t)
	_, cmd := update(m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestRunRequiresController(t *testing.T) {
	if err := Run(context.Background(), Options{}); err == nil {
		t.Error("expected an error without controller or result id")
	}
}
