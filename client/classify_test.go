package client

import (
	"errors"
	"net/url"
	"strings"
	"testing"
)

func TestParseLoginForm_CollectsHiddenInputs(t *testing.T) {
	form, err := ParseLoginForm(strings.NewReader(landingPage))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"op2":          "login",
		"return":       "B:aHR0cHM6Ly9vbmxpbmVqdWRnZS5vcmcv",
		"cbsecuritym3": "cbm_2f1a9c0e",
		"j1d0c5e77":    "1",
	}
	if len(form.Hidden) != len(want) {
		t.Fatalf("expected %d hidden fields, got %v", len(want), form.Hidden)
	}
	for k, v := range want {
		if got := form.Hidden.Get(k); got != v {
			t.Fatalf("hidden %s = %q, want %q", k, got, v)
		}
	}
	if form.Hidden.Has("searchword") {
		t.Fatalf("picked up a hidden input from another form")
	}
	if !strings.Contains(form.Action, "task=login") {
		t.Fatalf("unexpected action: %s", form.Action)
	}
}

func TestParseLoginForm_MissingForm(t *testing.T) {
	_, err := ParseLoginForm(strings.NewReader(`<html><body>maintenance</body></html>`))
	if !errors.Is(err, ErrUnknownResponse) {
		t.Fatalf("expected ErrUnknownResponse, got %v", err)
	}
}

func TestClassifyLogin(t *testing.T) {
	cases := []struct {
		name string
		body string
		want outcome
	}{
		{"logged in", loggedInPage, outcomeOK},
		{"unauthorized", unauthorizedPage, outcomeUnauthorized},
		{"unauthorized wins over menu", unauthorizedPage + loggedInPage, outcomeUnauthorized},
		{"menu without logout", `<li>My Account</li>`, outcomeUnknown},
		{"empty", "", outcomeUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifyLogin(tc.body); got != tc.want {
				t.Fatalf("classifyLogin = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestClassifySubmit(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantID  int
		outcome outcome
	}{
		{"received", submittedPage, 558822, outcomeOK},
		{"session expired", unauthorizedPage, 0, outcomeUnauthorized},
		{"no marker", `<html>Problem does not exist</html>`, 0, outcomeUnknown},
		{"no closing quote", `mosmsg=Submission+received+with+ID+558822`, 0, outcomeUnknown},
		{"not a number", `"mosmsg=Submission+received+with+ID+abc"`, 0, outcomeUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, got := classifySubmit(tc.body)
			if got != tc.outcome || id != tc.wantID {
				t.Fatalf("classifySubmit = (%d, %v), want (%d, %v)", id, got, tc.wantID, tc.outcome)
			}
		})
	}
}

func TestReceiptQueryIDIsOneBelowAck(t *testing.T) {
	id, _ := classifySubmit(submittedPage)
	r := Receipt{AckID: id}
	if r.QueryID() != 558821 {
		t.Fatalf("expected query id 558821, got %d", r.QueryID())
	}
}

func TestSubmissionIDFromURL(t *testing.T) {
	u, _ := url.Parse("https://onlinejudge.org/index.php?option=com_onlinejudge&Itemid=9&mosmsg=Submission+received+with+ID+31337")
	id, ok := submissionIDFromURL(u)
	if !ok || id != 31337 {
		t.Fatalf("expected 31337, got %d (%v)", id, ok)
	}

	u, _ = url.Parse("https://onlinejudge.org/index.php?mosmsg=You+have+to+select+a+language")
	if _, ok := submissionIDFromURL(u); ok {
		t.Fatalf("expected no id from an error message")
	}
	if _, ok := submissionIDFromURL(nil); ok {
		t.Fatalf("expected no id from nil url")
	}
}
