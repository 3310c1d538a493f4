package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/DCTR-QUASAR/Hytale-Playtime/internal/report"
	"github.com/DCTR-QUASAR/Hytale-Playtime/internal/scan"
	"github.com/DCTR-QUASAR/Hytale-Playtime/pkg/models"
)

const (
	barWidth     = 20
	headerHeight = 1
	detailHeight = 6
	footerHeight = 1
)

type model struct {
	ctx    context.Context
	scanFn ScanFunc

	loading   bool
	indicator LoadingIndicator
	result    *scan.Result
	records   []models.FileRecord
	measured  map[string]models.FileScan
	cursor    int

	viewport viewport.Model
	ready    bool
	err      error
	width    int
	height   int
}

func initialModel(ctx context.Context, fn ScanFunc) model {
	return model{
		ctx:       ctx,
		scanFn:    fn,
		loading:   true,
		indicator: NewLoadingIndicator("Scanning Hytale logs..."),
		measured:  make(map[string]models.FileScan),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.indicator.Tick(), scanCmd(m.ctx, m.scanFn))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listHeight := msg.Height - headerHeight - detailHeight - footerHeight
		if listHeight < 1 {
			listHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width, listHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = listHeight
		}
		m.updateViewport()

	case ScanStartedMsg:
		m.loading = true
		m.err = nil
		cmds = append(cmds, m.indicator.Tick(), scanCmd(m.ctx, m.scanFn))

	case ScanFinishedMsg:
		m.loading = false
		if msg.Error != nil && msg.Result == nil {
			m.err = msg.Error
			return m, nil
		}
		m.setResult(msg.Result)
		m.updateViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.updateViewport()
			}

		case "down", "j":
			if m.cursor < len(m.records)-1 {
				m.cursor++
				m.updateViewport()
			}

		case "r":
			if !m.loading {
				return m, func() tea.Msg { return ScanStartedMsg{} }
			}
		}

	default:
		if m.loading {
			var cmd tea.Cmd
			m.indicator, cmd = m.indicator.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	// keys move the cursor, the viewport only follows it
	if _, isKey := msg.(tea.KeyMsg); m.ready && !isKey {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *model) setResult(result *scan.Result) {
	m.result = result
	m.measured = make(map[string]models.FileScan, len(result.Files))
	for _, f := range result.Files {
		m.measured[f.Name] = f
	}
	if result.Cache != nil {
		m.records = result.Cache.Records()
	} else {
		m.records = nil
	}
	if m.cursor >= len(m.records) {
		m.cursor = 0
	}
}

func (m *model) updateViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderRecords())

	// keep the cursor on screen
	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	} else if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

func (m model) total() int64 {
	if m.result == nil || m.result.Cache == nil {
		return 0
	}
	return m.result.Cache.TotalPermanentSeconds
}

func (m model) renderRecords() string {
	if len(m.records) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
		return emptyStyle.Render("No log files recorded yet")
	}

	total := m.total()
	var s strings.Builder
	for i, rec := range m.records {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Foreground(lipgloss.Color("212")).Bold(true)
		}

		share := 0.0
		if total > 0 {
			share = float64(rec.Seconds) * 100 / float64(total)
		}

		line := fmt.Sprintf("%s%-10s %s", cursor, report.ShortDuration(rec.Seconds), rec.Name)
		s.WriteString(renderShareBar(share, barWidth) + " " + style.Render(line) + "\n")
	}
	return s.String()
}

func (m model) renderDetail() string {
	if m.cursor >= len(m.records) {
		return ""
	}
	rec := m.records[m.cursor]

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Bold(true)
	var s strings.Builder
	s.WriteString(strings.Repeat("─", max(m.width, 10)) + "\n")
	s.WriteString(labelStyle.Render("File:     ") + rec.Name + "\n")
	s.WriteString(labelStyle.Render("Recorded: ") + report.FormatDuration(rec.Seconds) + "\n")

	if f, ok := m.measured[rec.Name]; ok {
		s.WriteString(labelStyle.Render("This run: ") + report.FormatDuration(f.Seconds) + "\n")
		s.WriteString(labelStyle.Render("Gaps:     ") +
			fmt.Sprintf("%d counted, %d idle, %d lines skipped", f.Intervals, f.Rejected, f.Skipped))
	} else {
		s.WriteString(labelStyle.Render("This run: ") + "not in the log folder anymore")
	}
	return s.String()
}

func (m model) renderHeader() string {
	title := "Hytale Playtime"
	if m.result != nil {
		title = fmt.Sprintf("Hytale Playtime - %s over %d sessions",
			report.FormatDuration(m.result.Stats.TotalSeconds), m.result.Stats.Sessions)
	}

	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("63"))

	return style.Render(title)
}

func (m model) renderFooter() string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	return style.Render("↑/↓: navigate • r: rescan • q: quit")
}

func (m model) View() string {
	if m.err != nil {
		return fmt.Sprintf("\n  Error: %v\n", m.err)
	}

	if m.loading {
		return "\n  " + m.indicator.View()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	return fmt.Sprintf("%s\n%s\n%s\n%s", m.renderHeader(), m.viewport.View(), m.renderDetail(), m.renderFooter())
}

// Run shows the browser. It scans with fn on start and on every rescan,
// and returns the last successful result.
func Run(ctx context.Context, fn ScanFunc) (*scan.Result, error) {
	p := tea.NewProgram(
		initialModel(ctx, fn),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := finalModel.(model)
	return m.result, m.err
}
