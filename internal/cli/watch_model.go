package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	watchTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	watchElapsedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Padding(0, 1)
	watchHelpStyle    = lipgloss.NewStyle().Faint(true)
)

// watchModel renders the running session's elapsed time, ticking once
// a second. The stopwatch counts time since the view opened; base is
// what the session had already accumulated before that.
type watchModel struct {
	stopwatch stopwatch.Model
	base      time.Duration
	quitting  bool
}

func newWatchModel(base time.Duration) watchModel {
	return watchModel{
		stopwatch: stopwatch.NewWithInterval(time.Second),
		base:      base,
	}
}

func (m watchModel) Init() tea.Cmd {
	return m.stopwatch.Init()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.stopwatch, cmd = m.stopwatch.Update(msg)
	return m, cmd
}

func (m watchModel) View() string {
	if m.quitting {
		return ""
	}
	return watchTitleStyle.Render("Session running") + "\n" +
		watchElapsedStyle.Render(formatElapsed(m.base+m.stopwatch.Elapsed())) + "\n" +
		watchHelpStyle.Render("press q to quit")
}

// formatElapsed renders a duration as HH:MM:SS.
func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
