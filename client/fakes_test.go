package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

const landingPage = `<html><body>
<div class="login">
<form action="https://onlinejudge.org/index.php?option=com_comprofiler&amp;task=login" method="post" id="mod_loginform">
  <input type="text" name="username" />
  <input type="password" name="passwd" />
  <input type="hidden" name="op2" value="login" />
  <input type="hidden" name="return" value="B:aHR0cHM6Ly9vbmxpbmVqdWRnZS5vcmcv" />
  <input type="hidden" name="cbsecuritym3" value="cbm_2f1a9c0e" />
  <input type="hidden" name="j1d0c5e77" value="1" />
  <input type="submit" name="Submit" value="Login" />
</form>
</div>
<form id="search"><input type="hidden" name="searchword" value="ignored" /></form>
</body></html>`

const loggedInPage = `<html><body><ul class="menu"><li>My Account</li><li><a href="/logout">Logout</a></li></ul></body></html>`

const unauthorizedPage = `<html><body><div class="error">You are not authorised to view this resource.</div></body></html>`

const submittedPage = `<html><body><a href="index.php?option=com_onlinejudge&amp;Itemid=9&mosmsg=Submission+received+with+ID+558822">Submissions</a></body></html>`

// memStore is an in-memory CredentialStore.
type memStore struct {
	mu    sync.Mutex
	creds *Credentials
	saves int
}

func (m *memStore) Load() (*Credentials, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.creds, nil
}

func (m *memStore) Save(creds *Credentials) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creds = creds
	m.saves++
	return nil
}

func (m *memStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creds = nil
	return nil
}

// fakeJudge scripts the UVa site and uHunt on one httptest server.
type fakeJudge struct {
	t *testing.T

	mu          sync.Mutex
	loginPage   string
	landingCode int
	submitPage  string
	submitTo    string
	uid         string
	lastLogin   map[string]string
	lastSubmit  map[string]string
	lastCookies map[string]string
	hits        int

	// verdicts are served by subs-user in order; the last one repeats.
	verdicts  []int
	subsPaths []string
}

func newFakeJudge(t *testing.T) (*fakeJudge, *httptest.Server) {
	fj := &fakeJudge{t: t, loginPage: loggedInPage, submitPage: submittedPage, uid: "12345"}
	mux := http.NewServeMux()
	mux.HandleFunc("/", fj.site)
	mux.HandleFunc("/whoami", fj.whoami)
	mux.HandleFunc("/index.php", fj.whoami)
	mux.HandleFunc("/my-submissions", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<html>My submissions</html>")
	})
	mux.HandleFunc("/api/uname2uid/", func(w http.ResponseWriter, r *http.Request) {
		fj.count()
		_, _ = io.WriteString(w, fj.uid)
	})
	mux.HandleFunc("/api/subs-user/", fj.subsUser)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return fj, srv
}

func (fj *fakeJudge) count() {
	fj.mu.Lock()
	fj.hits++
	fj.mu.Unlock()
}

func (fj *fakeJudge) hitCount() int {
	fj.mu.Lock()
	defer fj.mu.Unlock()
	return fj.hits
}

func (fj *fakeJudge) site(w http.ResponseWriter, r *http.Request) {
	fj.count()
	q := r.URL.Query()
	switch {
	case r.Method == http.MethodGet:
		http.SetCookie(w, &http.Cookie{Name: "sessid", Value: "anon-1", Path: "/"})
		if fj.landingCode != 0 {
			w.WriteHeader(fj.landingCode)
			_, _ = io.WriteString(w, "<html>Not here</html>")
			return
		}
		_, _ = io.WriteString(w, landingPage)

	case q.Get("option") == "com_comprofiler" && q.Get("task") == "login":
		if err := r.ParseForm(); err != nil {
			fj.t.Errorf("parse login form: %v", err)
		}
		got := map[string]string{}
		for k := range r.PostForm {
			got[k] = r.PostForm.Get(k)
		}
		fj.mu.Lock()
		fj.lastLogin = got
		fj.mu.Unlock()
		http.SetCookie(w, &http.Cookie{Name: "sessid", Value: "auth-7", Path: "/"})
		http.SetCookie(w, &http.Cookie{Name: "remember", Value: "yes", Path: "/"})
		http.SetCookie(w, &http.Cookie{Name: "jsess", Value: "j-42", Path: "/index.php", HttpOnly: true})
		_, _ = io.WriteString(w, fj.loginPage)

	case q.Get("option") == "com_onlinejudge" && q.Get("page") == "save_submission":
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			fj.t.Errorf("parse multipart: %v", err)
			return
		}
		got := map[string]string{
			"localid":  r.FormValue("localid"),
			"language": r.FormValue("language"),
		}
		if f, hdr, err := r.FormFile("codeupl"); err == nil {
			b, _ := io.ReadAll(f)
			got["codeupl"] = string(b)
			got["filename"] = hdr.Filename
		}
		for _, ck := range r.Cookies() {
			got["cookie:"+ck.Name] = ck.Value
		}
		fj.mu.Lock()
		fj.lastSubmit = got
		fj.mu.Unlock()
		if fj.submitTo != "" {
			http.Redirect(w, r, fj.submitTo, http.StatusSeeOther)
			return
		}
		_, _ = io.WriteString(w, fj.submitPage)

	default:
		http.NotFound(w, r)
	}
}

func (fj *fakeJudge) subsUser(w http.ResponseWriter, r *http.Request) {
	fj.mu.Lock()
	defer fj.mu.Unlock()
	fj.subsPaths = append(fj.subsPaths, r.URL.Path)
	if len(fj.verdicts) == 0 {
		_, _ = io.WriteString(w, `{"name":"Alice","uname":"alice","subs":[]}`)
		return
	}
	v := fj.verdicts[0]
	if len(fj.verdicts) > 1 {
		fj.verdicts = fj.verdicts[1:]
	}
	fmt.Fprintf(w, `{"name":"Alice","uname":"alice","subs":[[558822,100,%d,0,1700000000,5,-1]]}`, v)
}

func (fj *fakeJudge) whoami(w http.ResponseWriter, r *http.Request) {
	got := map[string]string{}
	for _, ck := range r.Cookies() {
		got[ck.Name] = ck.Value
	}
	fj.mu.Lock()
	fj.lastCookies = got
	fj.mu.Unlock()
}

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	c, err := New(srv.URL, srv.URL+"/api", 5*time.Second)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

// scriptedSource replays canned verdict API answers, one per call.
type scriptedSource struct {
	mu      sync.Mutex
	answers [][]Submission
	errs    []error
	calls   int
	queries []string
	onCall  func(call int)
}

func (s *scriptedSource) SubmissionsSince(ctx context.Context, userID string, sinceID int) ([]Submission, error) {
	s.mu.Lock()
	s.calls++
	call := s.calls
	s.queries = append(s.queries, fmt.Sprintf("%s/%d", userID, sinceID))
	s.mu.Unlock()

	if s.onCall != nil {
		s.onCall(call)
	}
	if call-1 < len(s.errs) && s.errs[call-1] != nil {
		return nil, s.errs[call-1]
	}
	if call-1 < len(s.answers) {
		return s.answers[call-1], nil
	}
	return nil, errors.New("scriptedSource: out of answers")
}

// instantClock fires immediately and counts the pauses requested.
type instantClock struct {
	mu     sync.Mutex
	pauses []time.Duration
}

func (c *instantClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	c.pauses = append(c.pauses, d)
	c.mu.Unlock()
	ch := make(chan time.Time, 1)
	ch <- time.Time{}
	return ch
}

func (c *instantClock) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pauses)
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
