// Package tui implements the interactive cow preview.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/mraflifirmansyah/arcanist/internal/cowfile"
	"github.com/mraflifirmansyah/arcanist/pkg/cow"
)

// Config carries the data the preview needs at startup.
type Config struct {
	Cowfiles []*cowfile.Cowfile
	Eyes     string
	Tongue   string
}

// Run launches the preview program.
func Run(cfg Config) error {
	program := tea.NewProgram(initialModel(cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type model struct {
	width  int
	height int
	styles Styles

	input textinput.Model

	cows     []*cowfile.Cowfile
	cowIndex int

	modes     []cow.Mode
	modeIndex int // -1 means the configured eyes/tongue

	eyes   string
	tongue string
	think  bool

	preview   string
	renderErr error
}

func initialModel(cfg Config) model {
	input := textinput.New()
	input.Placeholder = "Type a message..."
	input.Focus()

	m := model{
		styles:    DefaultStyles(),
		input:     input,
		cows:      cfg.Cowfiles,
		modes:     cow.Modes(),
		modeIndex: -1,
		eyes:      cfg.Eyes,
		tongue:    cfg.Tongue,
	}
	m.refresh()
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.cowIndex = cycle(m.cowIndex, 1, len(m.cows))
			m.refresh()
			return m, nil
		case "shift+tab":
			m.cowIndex = cycle(m.cowIndex, -1, len(m.cows))
			m.refresh()
			return m, nil
		case "ctrl+t":
			m.think = !m.think
			m.refresh()
			return m, nil
		case "ctrl+f":
			// -1 cycles through the configured face as well.
			m.modeIndex++
			if m.modeIndex >= len(m.modes) {
				m.modeIndex = -1
			}
			m.refresh()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

func (m *model) refresh() {
	eyes, tongue := m.eyes, m.tongue
	if m.modeIndex >= 0 && m.modeIndex < len(m.modes) {
		eyes, tongue = m.modes[m.modeIndex].Eyes, m.modes[m.modeIndex].Tongue
	}

	action := cow.ActionSay
	if m.think {
		action = cow.ActionThink
	}

	opts := []cow.Option{
		cow.WithText(m.input.Value()),
		cow.WithAction(action),
		cow.WithEyes(eyes),
		cow.WithTongue(tongue),
	}
	if len(m.cows) > 0 {
		opts = append(opts, cow.WithTemplate(m.cows[m.cowIndex].Template))
	}

	m.preview, m.renderErr = cow.New(opts...).Render()
}

func (m model) View() string {
	lines := []string{
		m.styles.Title.Render("arcanist preview"),
		"",
		m.input.View(),
		"",
	}

	if m.renderErr != nil {
		lines = append(lines, m.styles.Error.Render(m.renderErr.Error()))
	} else {
		for _, line := range strings.Split(m.preview, "\n") {
			lines = append(lines, m.fit(line))
		}
	}

	lines = append(lines, "", m.styles.Muted.Render(m.statusLine()))
	lines = append(lines, m.styles.Muted.Render("tab cowfile | ctrl+f face | ctrl+t say/think | esc quit"))

	return strings.Join(lines, "\n") + "\n"
}

func (m model) statusLine() string {
	name := "default"
	if len(m.cows) > 0 {
		name = m.cows[m.cowIndex].Name
	}

	face := "config"
	if m.modeIndex >= 0 && m.modeIndex < len(m.modes) {
		face = m.modes[m.modeIndex].Name
	}

	action := "say"
	if m.think {
		action = "think"
	}

	return fmt.Sprintf("cowfile: %s | face: %s | action: %s", name, face, action)
}

// fit truncates a rendered line to the terminal width by display cells.
func (m model) fit(line string) string {
	if m.width <= 0 {
		return line
	}
	return runewidth.Truncate(line, m.width, "")
}

func cycle(index, step, count int) int {
	if count == 0 {
		return 0
	}
	return ((index+step)%count + count) % count
}
