package client

import (
	"context"
	"fmt"
	"time"
)

// DefaultPollInterval is the pause between two uHunt queries.
const DefaultPollInterval = 3 * time.Second

// Clock schedules the pause between polls.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// VerdictSource is the pull-only verdict API the poller drives.
type VerdictSource interface {
	SubmissionsSince(ctx context.Context, userID string, sinceID int) ([]Submission, error)
}

type WatchOptions struct {
	// Interval between polls; DefaultPollInterval when zero.
	Interval time.Duration
	// Timeout bounds the whole watch; zero means poll until a terminal verdict.
	Timeout time.Duration
	Clock   Clock
}

// Update is one poll observation. Submission is nil while uHunt does not
// list the submission yet.
type Update struct {
	Attempt    int
	Submission *Submission
}

// Poller watches one submission until its verdict is terminal.
type Poller struct {
	source   VerdictSource
	interval time.Duration
	timeout  time.Duration
	clock    Clock
}

func NewPoller(source VerdictSource, opts WatchOptions) *Poller {
	p := &Poller{
		source:   source,
		interval: opts.Interval,
		timeout:  opts.Timeout,
		clock:    opts.Clock,
	}
	if p.interval <= 0 {
		p.interval = DefaultPollInterval
	}
	if p.clock == nil {
		p.clock = realClock{}
	}
	return p
}

// Watch polls for the first submission of userID above queryID and reports
// every observation to onUpdate. It returns the first terminal observation;
// onUpdate is never called after that. Cancelling ctx ends the watch with
// ErrCancelled, checked before every query. Transport errors end it too.
func (p *Poller) Watch(ctx context.Context, userID string, queryID int, onUpdate func(Update)) (*Submission, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	if onUpdate == nil {
		onUpdate = func(Update) {}
	}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, cancelled(err)
		}

		subs, err := p.source.SubmissionsSince(ctx, userID, queryID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, cancelled(ctx.Err())
			}
			return nil, err
		}

		sub := firstAfter(subs, queryID)
		onUpdate(Update{Attempt: attempt, Submission: sub})
		if sub != nil && sub.Verdict.Terminal() {
			return sub, nil
		}

		select {
		case <-ctx.Done():
			return nil, cancelled(ctx.Err())
		case <-p.clock.After(p.interval):
		}
	}
}

// Watch is a convenience for NewPoller(c, opts).Watch.
func (c *Client) Watch(ctx context.Context, userID string, queryID int, opts WatchOptions, onUpdate func(Update)) (*Submission, error) {
	return NewPoller(c, opts).Watch(ctx, userID, queryID, onUpdate)
}

// firstAfter picks the lowest id above queryID; a fresh copy each poll so
// later observations never merge with earlier ones.
func firstAfter(subs []Submission, queryID int) *Submission {
	var best *Submission
	for i := range subs {
		if subs[i].ID <= queryID {
			continue
		}
		if best == nil || subs[i].ID < best.ID {
			s := subs[i]
			best = &s
		}
	}
	return best
}

func cancelled(cause error) error {
	return fmt.Errorf("%w: %w", ErrCancelled, cause)
}
