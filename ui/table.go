package ui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/aleksamarkoni/uva-command-line/client"
)

// SubmissionTable renders submissions newest first, like the uHunt site.
func SubmissionTable(subs []client.Submission, now time.Time) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(gray).
		Headers(Headers...)

	for i := len(subs) - 1; i >= 0; i-- {
		t.Row(Row(&subs[i], now)...)
	}
	return t.Render()
}

// ReferenceTable renders a two-column code/label table.
func ReferenceTable(header string, codes []int, labels []string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(gray).
		Headers("Code", header)
	for i, code := range codes {
		t.Row(strconv.Itoa(code), labels[i])
	}
	return t.Render()
}
