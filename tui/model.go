// Package tui provides the Bubble Tea terminal UI for nistcheck, showing the
// sequential check as it runs and a styled summary of the results.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lukemcguire/nistcheck/checker"
	"github.com/lukemcguire/nistcheck/result"
)

// ErrInterrupted is returned by Run when the user quits before the check finishes.
var ErrInterrupted = errors.New("check interrupted")

// Model is the Bubble Tea model for the check TUI.
type Model struct {
	ctx        context.Context
	cancel     context.CancelFunc
	checker    *checker.Checker
	urls       []string
	spinner    spinner.Model
	progressCh chan checker.CheckEvent

	checked  int
	total    int
	broken   int
	current  string
	quitting bool
	done     bool
	results  []result.CheckResult
	err      error
	width    int
}

// NewModel creates a TUI model that checks urls with chk.
func NewModel(ctx context.Context, cancel context.CancelFunc, chk *checker.Checker, urls []string) Model {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return Model{
		ctx:        ctx,
		cancel:     cancel,
		checker:    chk,
		urls:       urls,
		total:      len(urls),
		spinner:    spin,
		progressCh: make(chan checker.CheckEvent, 1),
	}
}

// Init starts the spinner, the check loop, and the progress listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startCheck(), waitForProgress(m.progressCh))
}

// startCheck returns a tea.Cmd that runs the check loop and sends CheckDoneMsg.
func (m Model) startCheck() tea.Cmd {
	return func() tea.Msg {
		results, err := m.checker.CheckAll(m.ctx, m.urls, m.progressCh)
		if err != nil {
			err = fmt.Errorf("check: %w", err)
		}
		return CheckDoneMsg{Results: results, Err: err}
	}
}

// Update handles messages from the Bubble Tea runtime.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case CheckProgressMsg:
		m.checked = msg.Index
		m.total = msg.Total
		m.current = msg.URL
		if msg.Status == result.StatusBroken {
			m.broken++
		}
		return m, waitForProgress(m.progressCh)

	case CheckDoneMsg:
		m.done = true
		m.results = msg.Results
		m.err = msg.Err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the current TUI state.
func (m Model) View() string {
	if m.done && m.err != nil {
		return errorStyle.Render("Error: "+m.err.Error()) + "\n"
	}
	if m.done {
		return RenderSummary(m.results)
	}
	return fmt.Sprintf("%s Checking... [%d/%d], broken %d\n%s\n",
		m.spinner.View(), m.checked, m.total, m.broken,
		dimStyle.Render("  "+m.current))
}

// HasBrokenLinks reports whether the check found any broken links.
func (m Model) HasBrokenLinks() bool {
	return result.HasBroken(m.results)
}

// Results returns the check results gathered by the model.
func (m Model) Results() []result.CheckResult {
	return m.results
}

// Run checks urls under an interactive progress view written to out and
// returns the results in check order.
func Run(ctx context.Context, chk *checker.Checker, urls []string, out io.Writer) ([]result.CheckResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(NewModel(ctx, cancel, chk, urls), tea.WithOutput(out))
	finalModel, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("run tui: %w", err)
	}

	final, ok := finalModel.(Model)
	if !ok {
		return nil, fmt.Errorf("run tui: unexpected model %T", finalModel)
	}
	if final.quitting && !final.done {
		return final.results, ErrInterrupted
	}
	return final.results, final.err
}
