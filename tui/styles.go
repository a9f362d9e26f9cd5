package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lukemcguire/nistcheck/result"
)

var (
	titleStyle       = lipgloss.NewStyle().Bold(true)
	successStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errorStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	headerStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	categoryStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dimStyle         = lipgloss.NewStyle().Faint(true)
	urlStyle         = lipgloss.NewStyle()
	statusErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// statusOrder defines the display order for result groups (most to least actionable).
var statusOrder = []result.Status{
	result.StatusBroken,
	result.StatusMoved,
	result.StatusUpdated,
	result.StatusError,
}

// statusLabel returns a heading for a result group.
func statusLabel(s result.Status) string {
	switch s {
	case result.StatusBroken:
		return "Broken Links"
	case result.StatusMoved:
		return "Moved/Redirected"
	case result.StatusUpdated:
		return "Recently Updated"
	case result.StatusError:
		return "Check Errors"
	default:
		return "OK"
	}
}

// detail returns the table cell describing a result.
func detail(r result.CheckResult) string {
	switch r.Status {
	case result.StatusMoved:
		return "-> " + result.Deref(r.RedirectURL)
	case result.StatusUpdated:
		return result.Deref(r.LastModified)
	default:
		return result.Deref(r.Error)
	}
}

// RenderSummary produces a Lip Gloss styled summary of check results.
func RenderSummary(results []result.CheckResult) string {
	var builder strings.Builder
	counts := result.Tally(results)

	if len(results) == 0 {
		builder.WriteString(dimStyle.Render("No URLs to check."))
		builder.WriteString("\n")
		return builder.String()
	}

	if counts[result.StatusOK] == len(results) {
		builder.WriteString(successStyle.Render(fmt.Sprintf("All %d links OK!", len(results))))
		builder.WriteString("\n")
		return builder.String()
	}

	for _, status := range statusOrder {
		group := result.Filter(results, status)
		if len(group) == 0 {
			continue
		}

		builder.WriteString(categoryStyle.Render(fmt.Sprintf("## %s (%d)", statusLabel(status), len(group))))
		builder.WriteString("\n")

		rows := make([][]string, 0, len(group))
		for _, r := range group {
			rows = append(rows, []string{r.URL, detail(r)})
		}

		groupTable := table.New().
			Border(lipgloss.RoundedBorder()).
			Headers("URL", "Detail").
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				if col == 1 && (status == result.StatusBroken || status == result.StatusError) {
					return statusErrorStyle
				}
				return urlStyle
			}).
			Rows(rows...)

		builder.WriteString(groupTable.Render())
		builder.WriteString("\n\n")
	}

	builder.WriteString(titleStyle.Render(fmt.Sprintf(
		"Checked %d URLs: %d ok, %d updated, %d moved, %d broken, %d errors",
		len(results),
		counts[result.StatusOK],
		counts[result.StatusUpdated],
		counts[result.StatusMoved],
		counts[result.StatusBroken],
		counts[result.StatusError],
	)))
	builder.WriteString("\n")

	return builder.String()
}
