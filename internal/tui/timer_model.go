package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mfaridn/lacak/internal/db"
)

// TimerModel renders a live view of the currently running task
type TimerModel struct {
	width  int
	height int

	marker  db.RunningTaskInfo
	spinner spinner.Model

	// Timer state
	elapsedTime time.Duration

	// UI state
	stopping bool // True when user pressed S and we're stopping
	exiting  bool // True when user pressed ESC/Q and we're exiting without stopping
}

// timerTickMsg is sent every second to update the timer
type timerTickMsg struct{}

// NewTimerModel creates a timer model for a running-task marker
func NewTimerModel(marker db.RunningTaskInfo) TimerModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	return TimerModel{
		marker:      marker,
		spinner:     sp,
		elapsedTime: time.Since(marker.StartTime),
	}
}

// Init initializes the timer model
func (m TimerModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		tea.Tick(time.Second, func(t time.Time) tea.Msg {
			return timerTickMsg{}
		}),
	)
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		m.elapsedTime = time.Since(m.marker.StartTime)
		if !m.stopping && !m.exiting {
			return m, tea.Tick(time.Second, func(t time.Time) tea.Msg {
				return timerTickMsg{}
			})
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s", "S":
			// Stop the timer and save a session
			m.stopping = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			// Exit without stopping
			m.exiting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the timer TUI
func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render(fmt.Sprintf("%s TRACKING TIME %s", m.spinner.View(), m.spinner.View()))

	taskLine := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render(fmt.Sprintf("#%d", m.marker.TaskID))

	title := m.marker.TaskTitle
	if len(title) > m.width-4 && m.width > 7 {
		title = title[:m.width-7] + "..."
	}
	titleLine := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render(title)

	clock := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render(formatClock(m.elapsedTime))

	startedLine := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render(fmt.Sprintf("Started at %s", m.marker.StartTime.Format("15:04:05")))

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		taskLine,
		titleLine,
		"",
		clock,
		"",
		startedLine,
	)

	body := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderHelpBar())
}

func (m TimerModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	return helpStyle.Render("s stop & save · esc/q exit (keep running) · ctrl+c force quit")
}

// formatClock renders elapsed time as HH:MM:SS
func formatClock(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
