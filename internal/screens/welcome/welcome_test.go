package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bigfive/internal/router"
	"github.com/abhisek/bigfive/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "survey" }
func (s *stubScreen) Title() string                          { return "Survey" }

func newTestWelcome(info Info) (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(info, factory), &callCount
}

func sendTicks(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		_, cmd = w.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestPhaseTransitions(t *testing.T) {
	w, _ := newTestWelcome(Info{Questions: 120})

	if strings.Contains(w.View(100, 30), "120 statements") {
		t.Error("details should not be visible at start")
	}

	sendTicks(w, 5)
	if w.elapsed != phase1End {
		t.Errorf("expected elapsed %v, got %v", phase1End, w.elapsed)
	}
	if !strings.Contains(w.View(100, 30), "IPIP-NEO") {
		t.Error("expected tagline after phase 1")
	}

	sendTicks(w, 10)
	if !strings.Contains(w.View(100, 30), "120 statements") {
		t.Error("expected details after phase 2")
	}
}

func TestTicksStopAfterAnimation(t *testing.T) {
	w, callCount := newTestWelcome(Info{Questions: 120})

	if cmd := sendTicks(w, 26); cmd != nil {
		t.Error("expected ticking to stop once the animation completes")
	}
	if w.elapsed != totalDur {
		t.Errorf("expected elapsed capped at %v, got %v", totalDur, w.elapsed)
	}
	if *callCount != 0 {
		t.Errorf("factory should not be called without keypress, got %d", *callCount)
	}
}

func TestKeypressEmitsReplace(t *testing.T) {
	w, callCount := newTestWelcome(Info{Questions: 120})
	sendTicks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress should trigger transition")
	}
	replaceMsg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if replaceMsg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	w, callCount := newTestWelcome(Info{Questions: 120})

	w.Update(tea.KeyPressMsg{Code: 'a'})
	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b'})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called exactly once, got %d", *callCount)
	}
}

func TestRestoredNotice(t *testing.T) {
	w, _ := newTestWelcome(Info{Questions: 120, Restored: true})
	sendTicks(w, 25)
	if !strings.Contains(w.View(100, 30), "restored") {
		t.Error("expected restored notice")
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcome(Info{})
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
