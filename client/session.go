package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"
)

// DefaultBaseURL is the UVa Online Judge site
const DefaultBaseURL = "https://onlinejudge.org"

// DefaultUHuntURL is the uHunt statistics API
const DefaultUHuntURL = "https://uhunt.onlinejudge.org/api"

// Credentials is an authenticated judge session plus the uHunt id of its owner.
// Session is opaque to callers; it round-trips through any CredentialStore.
type Credentials struct {
	Session  []byte
	UserID   string
	Username string
}

// CredentialStore persists at most one Credentials value.
// Load returns (nil, nil) when nothing is stored.
type CredentialStore interface {
	Load() (*Credentials, error)
	Save(creds *Credentials) error
	Clear() error
}

// Client talks to the judge site and to uHunt. It holds no session state:
// every authenticated call takes Credentials explicitly.
type Client struct {
	baseURL  *url.URL
	uhuntURL string
	timeout  time.Duration
	uhunt    *http.Client
	logf     func(format string, args ...any)
}

func New(baseURL, uhuntURL string, timeout time.Duration) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", baseURL)
	}
	return &Client{
		baseURL:  base,
		uhuntURL: strings.TrimRight(uhuntURL, "/"),
		timeout:  timeout,
		uhunt:    &http.Client{Timeout: timeout},
		logf:     func(string, ...any) {},
	}, nil
}

// SetLogger routes progress messages to fn. A nil fn silences them.
func (c *Client) SetLogger(fn func(format string, args ...any)) {
	if fn == nil {
		fn = func(string, ...any) {}
	}
	c.logf = fn
}

// storedCookie is the persisted form of one session cookie. Domain and Path
// are the effective scope the jar applied, so a restored cookie matches the
// same requests as the original.
type storedCookie struct {
	Name     string     `json:"name"`
	Value    string     `json:"value"`
	Domain   string     `json:"domain"`
	Path     string     `json:"path"`
	HostOnly bool       `json:"host_only,omitempty"`
	Secure   bool       `json:"secure,omitempty"`
	HttpOnly bool       `json:"http_only,omitempty"`
	Expires  *time.Time `json:"expires,omitempty"`
}

// recordingJar is a cookiejar.Jar that also remembers every cookie it
// accepted with its attributes; cookiejar itself only hands back name and
// value pairs.
type recordingJar struct {
	*cookiejar.Jar

	mu      sync.Mutex
	cookies []storedCookie
}

func newRecordingJar() (*recordingJar, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &recordingJar{Jar: jar}, nil
}

func (j *recordingJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.Jar.SetCookies(u, cookies)

	j.mu.Lock()
	defer j.mu.Unlock()
	now := time.Now()
	for _, ck := range cookies {
		sc := storedCookie{
			Name:     ck.Name,
			Value:    ck.Value,
			Domain:   strings.TrimPrefix(strings.ToLower(ck.Domain), "."),
			Path:     ck.Path,
			Secure:   ck.Secure,
			HttpOnly: ck.HttpOnly,
		}
		if sc.Domain == "" {
			sc.Domain = strings.ToLower(u.Hostname())
			sc.HostOnly = true
		}
		if sc.Path == "" || sc.Path[0] != '/' {
			sc.Path = defaultCookiePath(u.Path)
		}
		remove := false
		switch {
		case ck.MaxAge < 0:
			remove = true
		case ck.MaxAge > 0:
			exp := now.Add(time.Duration(ck.MaxAge) * time.Second).UTC()
			sc.Expires = &exp
		case !ck.Expires.IsZero():
			if !ck.Expires.After(now) {
				remove = true
			}
			exp := ck.Expires.UTC()
			sc.Expires = &exp
		}
		j.put(sc, remove)
	}
}

// put replaces the cookie with the same name, domain and path in place.
func (j *recordingJar) put(sc storedCookie, remove bool) {
	for i, old := range j.cookies {
		if old.Name == sc.Name && old.Domain == sc.Domain && old.Path == sc.Path {
			if remove {
				j.cookies = append(j.cookies[:i], j.cookies[i+1:]...)
			} else {
				j.cookies[i] = sc
			}
			return
		}
	}
	if !remove {
		j.cookies = append(j.cookies, sc)
	}
}

// live returns the recorded cookies that have not expired.
func (j *recordingJar) live() []storedCookie {
	j.mu.Lock()
	defer j.mu.Unlock()
	now := time.Now()
	out := make([]storedCookie, 0, len(j.cookies))
	for _, sc := range j.cookies {
		if sc.Expires != nil && !sc.Expires.After(now) {
			continue
		}
		out = append(out, sc)
	}
	return out
}

// defaultCookiePath is the RFC 6265 default-path of a request path.
func defaultCookiePath(p string) string {
	if p == "" || p[0] != '/' {
		return "/"
	}
	i := strings.LastIndex(p, "/")
	if i == 0 {
		return "/"
	}
	return p[:i]
}

type session struct {
	http *http.Client
	jar  *recordingJar
	base *url.URL
}

func (c *Client) newSession() (*session, error) {
	jar, err := newRecordingJar()
	if err != nil {
		return nil, err
	}
	return &session{
		http: &http.Client{Jar: jar, Timeout: c.timeout},
		jar:  jar,
		base: c.baseURL,
	}, nil
}

// restoreSession rebuilds the cookie jar saved by export. Each cookie is
// planted against the host and path it was originally scoped to.
func (c *Client) restoreSession(creds *Credentials) (*session, error) {
	if creds == nil || len(creds.Session) == 0 {
		return nil, ErrNotAuthenticated
	}
	var stored []storedCookie
	if err := json.Unmarshal(creds.Session, &stored); err != nil {
		return nil, fmt.Errorf("%w: corrupt session: %v", ErrNotAuthenticated, err)
	}
	s, err := c.newSession()
	if err != nil {
		return nil, err
	}
	for _, sc := range stored {
		if sc.Name == "" || sc.Domain == "" {
			return nil, fmt.Errorf("%w: corrupt session: cookie without name or domain", ErrNotAuthenticated)
		}
		u := &url.URL{Scheme: s.base.Scheme, Host: sc.Domain, Path: sc.Path}
		if sc.Domain == strings.ToLower(s.base.Hostname()) {
			u.Host = s.base.Host
		}
		ck := &http.Cookie{
			Name:     sc.Name,
			Value:    sc.Value,
			Path:     sc.Path,
			Secure:   sc.Secure,
			HttpOnly: sc.HttpOnly,
		}
		if !sc.HostOnly {
			ck.Domain = sc.Domain
		}
		if sc.Expires != nil {
			ck.Expires = *sc.Expires
		}
		s.jar.SetCookies(u, []*http.Cookie{ck})
	}
	return s, nil
}

func (s *session) export() ([]byte, error) {
	return json.Marshal(s.jar.live())
}

func (s *session) endpoint(params url.Values) string {
	u := *s.base
	u.Path = "/"
	u.RawQuery = params.Encode()
	return u.String()
}
