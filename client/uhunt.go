package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/aleksamarkoni/uva-command-line/internal/judge"
)

// Submission is one row of the uHunt submissions API.
type Submission struct {
	ID          int
	ProblemID   int
	Verdict     judge.Verdict
	RuntimeMs   int
	SubmittedAt time.Time
	Language    judge.Language
	Rank        int
}

// UserSubmissions is the uHunt answer for one user.
type UserSubmissions struct {
	Name        string
	Username    string
	Submissions []Submission
}

// uhuntSubs is the wire shape; each sub is
// [id, problemId, verdict, runtimeMs, submittedAtEpoch, language, rank].
type uhuntSubs struct {
	Name     string    `json:"name"`
	Username string    `json:"uname"`
	Subs     [][]int64 `json:"subs"`
}

// LookupUserID maps a judge username to its uHunt uid.
func (c *Client) LookupUserID(ctx context.Context, username string) (string, error) {
	body, err := c.uhuntGet(ctx, "uname2uid", url.PathEscape(username))
	if err != nil {
		return "", err
	}
	uid := strings.TrimSpace(string(body))
	if n, err := strconv.Atoi(uid); err != nil || n <= 0 {
		return "", fmt.Errorf("%w: uHunt has no id for %q", ErrUnknownResponse, username)
	}
	return uid, nil
}

// SubmissionsSince returns the user's submissions with an id above sinceID,
// oldest first.
func (c *Client) SubmissionsSince(ctx context.Context, userID string, sinceID int) ([]Submission, error) {
	us, err := c.fetchSubs(ctx, "subs-user", userID, strconv.Itoa(sinceID))
	if err != nil {
		return nil, err
	}
	return us.Submissions, nil
}

// LatestSubmissions returns the user's count most recent submissions, oldest first.
func (c *Client) LatestSubmissions(ctx context.Context, userID string, count int) (*UserSubmissions, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}
	return c.fetchSubs(ctx, "subs-user-last", userID, strconv.Itoa(count))
}

func (c *Client) fetchSubs(ctx context.Context, endpoint string, parts ...string) (*UserSubmissions, error) {
	body, err := c.uhuntGet(ctx, endpoint, parts...)
	if err != nil {
		return nil, err
	}
	var raw uhuntSubs
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrUnknownResponse, endpoint, err)
	}

	us := &UserSubmissions{Name: raw.Name, Username: raw.Username}
	for _, row := range raw.Subs {
		sub, ok := parseSubmission(row)
		if !ok {
			continue
		}
		us.Submissions = append(us.Submissions, sub)
	}
	sort.Slice(us.Submissions, func(i, j int) bool {
		return us.Submissions[i].ID < us.Submissions[j].ID
	})
	return us, nil
}

func parseSubmission(row []int64) (Submission, bool) {
	if len(row) < 7 {
		return Submission{}, false
	}
	return Submission{
		ID:          int(row[0]),
		ProblemID:   int(row[1]),
		Verdict:     judge.Verdict(row[2]),
		RuntimeMs:   int(row[3]),
		SubmittedAt: time.Unix(row[4], 0),
		Language:    judge.Language(row[5]),
		Rank:        int(row[6]),
	}, true
}

func (c *Client) uhuntGet(ctx context.Context, endpoint string, parts ...string) ([]byte, error) {
	reqURL := c.uhuntURL + "/" + endpoint + "/" + strings.Join(parts, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.uhunt.Do(req)
	if err != nil {
		return nil, transportErr(endpoint, err)
	}
	defer func() { _ = res.Body.Close() }()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, transportErr(endpoint, err)
	}
	if res.StatusCode != http.StatusOK {
		return nil, transportErr(endpoint, fmt.Errorf("HTTP %d - %s", res.StatusCode, strings.TrimSpace(string(body))))
	}
	return body, nil
}
