package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mraflifirmansyah/arcanist/internal/cowfile"
	"github.com/mraflifirmansyah/arcanist/pkg/cow"
)

func testConfig(t *testing.T) Config {
	t.Helper()

	builtins, err := cowfile.Builtins()
	if err != nil {
		t.Fatalf("Builtins: %v", err)
	}

	return Config{
		Cowfiles: builtins,
		Eyes:     cow.DefaultEyes,
		Tongue:   cow.DefaultTongue,
	}
}

func TestInitialModelRendersPreview(t *testing.T) {
	m := initialModel(testConfig(t))

	if m.renderErr != nil {
		t.Fatalf("initial render: %v", m.renderErr)
	}
	if !strings.Contains(m.preview, "<  >") {
		t.Fatalf("expected empty say balloon in preview, got %q", m.preview)
	}
}

func TestCowfileCycling(t *testing.T) {
	m := initialModel(testConfig(t))
	count := len(m.cows)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(model)
	if m.cowIndex != 1 {
		t.Fatalf("expected cowIndex 1 after tab, got %d", m.cowIndex)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(model)
	if m.cowIndex != 0 {
		t.Fatalf("expected cowIndex 0 after shift+tab, got %d", m.cowIndex)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(model)
	if m.cowIndex != count-1 {
		t.Fatalf("expected wrap to last cowfile, got %d", m.cowIndex)
	}
}

func TestThinkToggle(t *testing.T) {
	m := initialModel(testConfig(t))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = updated.(model)
	if !m.think {
		t.Fatal("expected think after ctrl+t")
	}
	if !strings.Contains(m.preview, "(  )") {
		t.Fatalf("expected thought balloon in preview, got %q", m.preview)
	}
}

func TestFaceCycling(t *testing.T) {
	m := initialModel(testConfig(t))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlF})
	m = updated.(model)
	if m.modeIndex != 0 {
		t.Fatalf("expected first preset after ctrl+f, got %d", m.modeIndex)
	}

	for range m.modes {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlF})
		m = updated.(model)
	}
	if m.modeIndex != -1 {
		t.Fatalf("expected wrap back to configured face, got %d", m.modeIndex)
	}
}

func TestCycleHelper(t *testing.T) {
	if got := cycle(0, -1, 3); got != 2 {
		t.Fatalf("cycle(0,-1,3) = %d, want 2", got)
	}
	if got := cycle(2, 1, 3); got != 0 {
		t.Fatalf("cycle(2,1,3) = %d, want 0", got)
	}
	if got := cycle(0, 1, 0); got != 0 {
		t.Fatalf("cycle with zero count = %d, want 0", got)
	}
}
