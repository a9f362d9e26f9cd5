package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lukemcguire/nistcheck/checker"
	"github.com/lukemcguire/nistcheck/result"
)

// CheckProgressMsg reports progress for a single checked URL.
type CheckProgressMsg struct {
	Index  int
	Total  int
	URL    string
	Status result.Status
}

// CheckDoneMsg signals the check loop has returned.
type CheckDoneMsg struct {
	Results []result.CheckResult
	Err     error
}

// waitForProgress returns a tea.Cmd that reads one event from the progress
// channel. A closed channel yields no message; completion comes from
// startCheck.
func waitForProgress(ch <-chan checker.CheckEvent) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-ch
		if !ok {
			return nil
		}
		return CheckProgressMsg{
			Index:  evt.Index,
			Total:  evt.Total,
			URL:    evt.Result.URL,
			Status: evt.Result.Status,
		}
	}
}
