package client

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Markers the UVa site prints. The site has no API for login or submission,
// so everything that depends on its markup lives in this file.
const (
	loginFormID          = "mod_loginform"
	notAuthorizedMarker  = "You are not authorised to view this resource"
	accountMenuMarker    = "My Account"
	logoutMarker         = "Logout"
	submissionMarker     = "mosmsg=Submission+received+with+ID+"
	submissionMessageKey = "mosmsg"
	submissionMessage    = "Submission received with ID "
)

type outcome int

const (
	outcomeUnknown outcome = iota
	outcomeUnauthorized
	outcomeOK
)

// LoginForm is the login form scraped from the landing page.
type LoginForm struct {
	Action string
	Hidden url.Values
}

// ParseLoginForm finds the login form in page and collects its hidden inputs.
// Their values are site-generated tokens and must be echoed back verbatim.
func ParseLoginForm(page io.Reader) (*LoginForm, error) {
	doc, err := html.Parse(page)
	if err != nil {
		return nil, fmt.Errorf("parse landing page: %w", err)
	}

	form := findByID(doc, "form", loginFormID)
	if form == nil {
		return nil, fmt.Errorf("%w: login form %q not found", ErrUnknownResponse, loginFormID)
	}

	lf := &LoginForm{Action: attr(form, "action"), Hidden: url.Values{}}
	walk(form, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "input" {
			return
		}
		if !strings.EqualFold(attr(n, "type"), "hidden") {
			return
		}
		name := attr(n, "name")
		if name == "" {
			return
		}
		lf.Hidden.Set(name, attr(n, "value"))
	})
	return lf, nil
}

// classifyLogin decides what the page returned by the login POST means.
func classifyLogin(body string) outcome {
	switch {
	case strings.Contains(body, notAuthorizedMarker):
		return outcomeUnauthorized
	case strings.Contains(body, accountMenuMarker) && strings.Contains(body, logoutMarker):
		return outcomeOK
	default:
		return outcomeUnknown
	}
}

// classifySubmit extracts the acknowledged submission id: the digits right
// after the marker, up to the next quote.
func classifySubmit(body string) (int, outcome) {
	if strings.Contains(body, notAuthorizedMarker) {
		return 0, outcomeUnauthorized
	}
	start := strings.Index(body, submissionMarker)
	if start < 0 {
		return 0, outcomeUnknown
	}
	rest := body[start+len(submissionMarker):]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		return 0, outcomeUnknown
	}
	id, err := strconv.Atoi(rest[:end])
	if err != nil || id <= 0 {
		return 0, outcomeUnknown
	}
	return id, outcomeOK
}

// submissionIDFromURL handles the acknowledgement arriving as a redirect
// target (…&mosmsg=Submission+received+with+ID+123) instead of in the page.
func submissionIDFromURL(u *url.URL) (int, bool) {
	if u == nil {
		return 0, false
	}
	msg := u.Query().Get(submissionMessageKey)
	if !strings.HasPrefix(msg, submissionMessage) {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(msg, submissionMessage)))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func findByID(n *html.Node, tag, id string) *html.Node {
	var found *html.Node
	walk(n, func(c *html.Node) {
		if found == nil && c.Type == html.ElementNode && c.Data == tag && attr(c, "id") == id {
			found = c
		}
	})
	return found
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
