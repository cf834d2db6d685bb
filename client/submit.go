package client

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/aleksamarkoni/uva-command-line/internal/judge"
)

var submitParams = url.Values{
	"option": {"com_onlinejudge"},
	"Itemid": {"8"},
	"page":   {"save_submission"},
}

// Receipt is the judge's acknowledgement of an upload.
type Receipt struct {
	// AckID is the id printed in the acknowledgement.
	AckID int
}

// QueryID is the id to hand to uHunt when watching this submission.
// The acknowledged id is one ahead of what subs-user expects; the reason is
// not verified against the judge, but polling with AckID-1 is what works.
func (r Receipt) QueryID() int {
	return r.AckID - 1
}

// Submit uploads the solution at path for problemID. It fails fast with
// ErrNotAuthenticated when creds is nil, without touching the network.
// It does not start watching the verdict.
func (c *Client) Submit(ctx context.Context, creds *Credentials, problemID int, path string, lang judge.Language) (*Receipt, error) {
	if creds == nil {
		return nil, ErrNotAuthenticated
	}
	if !lang.Valid() {
		return nil, fmt.Errorf("unsupported language code %d", int(lang))
	}

	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileUnreadable, err)
	}

	s, err := c.restoreSession(creds)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("localid", strconv.Itoa(problemID)); err != nil {
		return nil, err
	}
	if err := mw.WriteField("language", strconv.Itoa(int(lang))); err != nil {
		return nil, err
	}
	fw, err := mw.CreateFormFile("codeupl", filepath.Base(path))
	if err != nil {
		return nil, err
	}
	if _, err := fw.Write(code); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint(submitParams), &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	c.logf("Uploading %s for problem %d as %s", filepath.Base(path), problemID, lang)
	body, finalURL, err := s.do(req, "submit")
	if err != nil {
		return nil, err
	}

	id, result := classifySubmit(body)
	switch result {
	case outcomeOK:
		return &Receipt{AckID: id}, nil
	case outcomeUnauthorized:
		return nil, ErrSessionExpired
	}
	if id, ok := submissionIDFromURL(finalURL); ok {
		return &Receipt{AckID: id}, nil
	}
	return nil, fmt.Errorf("submit: %w", ErrUnknownResponse)
}
