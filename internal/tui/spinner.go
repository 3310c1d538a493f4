package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LoadingIndicator is a spinner with a message
type LoadingIndicator struct {
	spinner spinner.Model
	message string
}

// NewLoadingIndicator creates a new loading indicator
func NewLoadingIndicator(message string) LoadingIndicator {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	return LoadingIndicator{spinner: s, message: message}
}

// Tick starts the animation
func (l LoadingIndicator) Tick() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the animation on spinner ticks
func (l LoadingIndicator) Update(msg tea.Msg) (LoadingIndicator, tea.Cmd) {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return l, cmd
}

// View renders the loading indicator
func (l LoadingIndicator) View() string {
	messageStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("250"))

	return fmt.Sprintf("%s %s", l.spinner.View(), messageStyle.Render(l.message))
}

// renderShareBar draws a bar filled to percent of width
func renderShareBar(percent float64, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(float64(width) * percent / 100)
	empty := width - filled

	barStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("238"))

	return barStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", empty))
}
