package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/aleksamarkoni/uva-command-line/client"
	"github.com/aleksamarkoni/uva-command-line/internal/judge"
)

func TestRow_Placeholder(t *testing.T) {
	row := Row(nil, time.Now())
	if len(row) != len(Headers) {
		t.Fatalf("expected %d columns, got %d", len(Headers), len(row))
	}
	for _, col := range row {
		if col != "?" {
			t.Fatalf("expected placeholder, got %q", col)
		}
	}
}

func TestRow_Submission(t *testing.T) {
	now := time.Unix(1700003600, 0)
	s := &client.Submission{
		ID: 558822, ProblemID: 100, Verdict: judge.Accepted, RuntimeMs: 1250,
		SubmittedAt: now.Add(uhuntClockSkew).Add(-2 * time.Hour), Language: judge.CPP11, Rank: 0,
	}
	row := Row(s, now)
	want := []string{"558822", "100", "Accepted", "1.250s", "2 hours ago", "C++11", "-"}
	for i, w := range want {
		if !strings.Contains(row[i], w) {
			t.Fatalf("column %s = %q, want %q", Headers[i], row[i], w)
		}
	}
}

func TestSubmissionTable_NewestFirst(t *testing.T) {
	now := time.Now()
	subs := []client.Submission{
		{ID: 1, Verdict: judge.WrongAnswer, Language: judge.C, SubmittedAt: now},
		{ID: 2, Verdict: judge.Accepted, Language: judge.Java, SubmittedAt: now},
	}
	out := SubmissionTable(subs, now)
	if !strings.Contains(out, "Submission ID") {
		t.Fatalf("missing headers:\n%s", out)
	}
	if strings.Index(out, "Accepted") > strings.Index(out, "Wrong answer") {
		t.Fatalf("expected newest submission first:\n%s", out)
	}
}

func TestReferenceTable(t *testing.T) {
	out := ReferenceTable("Language", []int{1, 5}, []string{"ANSI C", "C++11"})
	for _, want := range []string{"Code", "Language", "ANSI C", "C++11"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}
