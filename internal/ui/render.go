// Package ui renders the list, the usage block, and the status line.
// Styling is color only; the text underneath is stable so the output
// stays greppable when piped.
package ui

import (
	"fmt"

	"github.com/idilsaglam/taskloop/internal/model"
)

// ListLines renders the numbered list, one line per entry. Positions
// are 1-based display order; they shift when earlier entries go away.
func ListLines(items []model.Todo) []string {
	if len(items) == 0 {
		return []string{mutedStyle.Render("no todos")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		switch t := it.(type) {
		case model.Active:
			out = append(out, fmt.Sprintf("%d. %s %s", i+1, pendingStyle.Render("[active]"), t.Name))
		case model.Completed:
			out = append(out, fmt.Sprintf("%d. %s %s", i+1, successStyle.Render("[completed]"), doneStyle.Render(t.Name)))
		}
	}
	return out
}

// UsageLines is the fixed five-line command reference shown on every
// idle cycle.
func UsageLines() []string {
	lines := []string{
		"a <name>    add a new todo",
		"d <n>       delete the todo at position <n>",
		"c <n>       mark the todo at position <n> as completed",
		"s           save todos to file",
		"q           quit",
	}
	for i, ln := range lines {
		lines[i] = helpStyle.Render(ln)
	}
	return lines
}

// StatusLine renders a one-shot status in brackets.
func StatusLine(status string) string {
	return accentStyle.Render("[" + status + "]")
}

// ErrorLine renders a sticky error in brackets.
func ErrorLine(msg string) string {
	return errorStyle.Render("[" + msg + "]")
}
