package ui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/aleksamarkoni/uva-command-line/client"
	"github.com/aleksamarkoni/uva-command-line/internal/judge"
)

var (
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	gray   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	orange = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
)

// uHunt timestamps run about 15 minutes ahead of the real submission time.
const uhuntClockSkew = 15 * time.Minute

var verdictStyles = map[judge.Verdict]lipgloss.Style{
	judge.SubmissionError:   lipgloss.NewStyle().Bold(true),
	judge.InQueue:           lipgloss.NewStyle().Bold(true),
	judge.CompileError:      lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAA00")).Bold(true),
	judge.RuntimeError:      lipgloss.NewStyle().Foreground(lipgloss.Color("#00AAAA")).Bold(true),
	judge.TimeLimit:         lipgloss.NewStyle().Foreground(lipgloss.Color("#0000FF")).Bold(true),
	judge.WrongAnswer:       lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true),
	judge.PresentationError: lipgloss.NewStyle().Foreground(lipgloss.Color("#666600")).Bold(true),
	judge.Accepted:          lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Bold(true),
}

// Success, Failure, Info and Muted style one-line CLI messages.
func Success(s string) string { return green.Render(s) }
func Failure(s string) string { return red.Render(s) }
func Info(s string) string    { return cyan.Render(s) }
func Muted(s string) string   { return gray.Render(s) }
func Warn(s string) string    { return orange.Render(s) }

// Verdict renders a verdict label in its colour.
func Verdict(v judge.Verdict) string {
	if style, ok := verdictStyles[v]; ok {
		return style.Render(v.String())
	}
	return v.String()
}

// Row is the display form of a submission:
// id, problem, verdict, runtime, submitted, language, rank.
func Row(s *client.Submission, now time.Time) []string {
	if s == nil {
		return []string{"?", "?", "?", "?", "?", "?", "?"}
	}
	rank := "-"
	if s.Rank > 0 {
		rank = strconv.Itoa(s.Rank)
	}
	return []string{
		strconv.Itoa(s.ID),
		strconv.Itoa(s.ProblemID),
		Verdict(s.Verdict),
		formatRuntime(s.RuntimeMs),
		humanize.RelTime(s.SubmittedAt.Add(-uhuntClockSkew), now, "ago", "from now"),
		s.Language.String(),
		rank,
	}
}

// Headers match the columns of Row.
var Headers = []string{"Submission ID", "Problem ID", "Verdict", "Runtime", "Submitted", "Language", "Rank"}

func formatRuntime(ms int) string {
	return strconv.FormatFloat(float64(ms)/1000, 'f', 3, 64) + "s"
}
