package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

var loginParams = url.Values{
	"option": {"com_comprofiler"},
	"task":   {"login"},
}

// Login performs the form-scraping login handshake, resolves the uHunt user
// id and saves the result to store. On any failure store is left untouched.
// There are no retries.
func (c *Client) Login(ctx context.Context, store CredentialStore, username, password string) (*Credentials, error) {
	s, err := c.newSession()
	if err != nil {
		return nil, err
	}

	c.logf("Fetching the login form")
	form, err := s.fetchLoginForm(ctx)
	if err != nil {
		return nil, err
	}

	payload := url.Values{
		"username": {username},
		"passwd":   {password},
		"remember": {"yes"},
	}
	for name, values := range form.Hidden {
		payload[name] = values
	}

	c.logf("Submitting the form")
	body, _, err := s.postForm(ctx, loginParams, payload)
	if err != nil {
		return nil, err
	}

	switch classifyLogin(body) {
	case outcomeUnauthorized:
		return nil, ErrUnauthorized
	case outcomeUnknown:
		return nil, fmt.Errorf("login: %w", ErrUnknownResponse)
	}

	c.logf("Resolving uHunt id for %s", username)
	uid, err := c.LookupUserID(ctx, username)
	if err != nil {
		return nil, err
	}

	blob, err := s.export()
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	creds := &Credentials{Session: blob, UserID: uid, Username: username}

	c.logf("Saving credentials")
	if err := store.Save(creds); err != nil {
		return nil, fmt.Errorf("save credentials: %w", err)
	}
	return creds, nil
}

// fetchLoginForm loads the landing page. Like every other judge page it is
// judged by content: only network failures and 5xx count as transport errors.
func (s *session) fetchLoginForm(ctx context.Context) (*LoginForm, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint(nil), nil)
	if err != nil {
		return nil, err
	}
	body, _, err := s.do(req, "fetch login page")
	if err != nil {
		return nil, err
	}
	return ParseLoginForm(strings.NewReader(body))
}

// postForm sends a URL-encoded POST and returns the page and the final URL
// after redirects.
func (s *session) postForm(ctx context.Context, params, form url.Values) (string, *url.URL, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint(params), strings.NewReader(form.Encode()))
	if err != nil {
		return "", nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.do(req, "login")
}

func (s *session) do(req *http.Request, op string) (string, *url.URL, error) {
	res, err := s.http.Do(req)
	if err != nil {
		return "", nil, transportErr(op, err)
	}
	defer func() { _ = res.Body.Close() }()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", nil, transportErr(op, err)
	}
	if res.StatusCode >= http.StatusInternalServerError {
		return "", nil, transportErr(op, fmt.Errorf("HTTP %d", res.StatusCode))
	}
	return string(body), res.Request.URL, nil
}
