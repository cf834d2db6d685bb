package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/aleksamarkoni/uva-command-line/client"
	"github.com/aleksamarkoni/uva-command-line/internal/config"
	"github.com/aleksamarkoni/uva-command-line/ui"
	"github.com/aleksamarkoni/uva-command-line/ui/messages"
)

// env is what every command needs: settings, a client and the credential store.
type env struct {
	settings *config.Settings
	client   *client.Client
	store    client.CredentialStore
}

func loadEnv() (*env, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}
	c, err := settings.Client()
	if err != nil {
		return nil, err
	}
	if verbose {
		c.SetLogger(func(format string, args ...any) {
			fmt.Println(ui.Muted("  " + fmt.Sprintf(format, args...)))
		})
	}
	store, err := settings.Store()
	if err != nil {
		return nil, err
	}
	return &env{settings: settings, client: c, store: store}, nil
}

// close releases the credential store's connection, if it holds one.
func (e *env) close() {
	if c, ok := e.store.(io.Closer); ok {
		_ = c.Close()
	}
}

// credentials loads the stored login, failing when there is none.
func (e *env) credentials() (*client.Credentials, error) {
	creds, err := e.store.Load()
	if err != nil {
		return nil, fmt.Errorf("could not load credentials: %w", err)
	}
	if creds == nil {
		return nil, explain(client.ErrNotAuthenticated)
	}
	return creds, nil
}

// watch polls uHunt for the submission after queryID and renders every update.
// Ctrl+C stops watching without an error.
func (e *env) watch(ctx context.Context, creds *client.Credentials, queryID int) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	ch := make(chan messages.Msg, 10)
	done := ui.StartRenderer(ch)
	ch <- messages.StartWatchMsg{UserID: creds.UserID, QueryID: queryID}

	final, err := e.client.Watch(ctx, creds.UserID, queryID, e.settings.WatchOptions(), func(u client.Update) {
		ch <- messages.UpdateMsg{Update: u}
	})
	if err == nil {
		ch <- messages.DoneWatchMsg{Submission: final}
	}

	if errors.Is(err, client.ErrCancelled) && errors.Is(err, context.Canceled) {
		done(nil)
		fmt.Println(ui.Muted("Stopped watching. Resume with 'uva watch <submission-id>'."))
		return nil
	}
	err = explain(err)
	done(err)
	return err
}

// explain turns core errors into messages that say what to do next.
func explain(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, client.ErrNotAuthenticated):
		return fmt.Errorf("not logged in\n\n→ Run 'uva login' first")
	case errors.Is(err, client.ErrSessionExpired):
		return fmt.Errorf("your session has expired\n\n→ Run 'uva login' to sign in again")
	case errors.Is(err, client.ErrUnauthorized):
		return fmt.Errorf("the judge rejected your username or password")
	case errors.Is(err, client.ErrCancelled):
		return fmt.Errorf("gave up waiting for the verdict (%w)\n\n→ Run 'uva watch <submission-id>' to keep waiting", err)
	case client.IsTransport(err):
		return fmt.Errorf("network error - %w\n\n→ Check your connection and try again", err)
	case errors.Is(err, client.ErrUnknownResponse):
		return fmt.Errorf("%w\n\n→ The site may have changed or be down; try again later", err)
	default:
		return err
	}
}
