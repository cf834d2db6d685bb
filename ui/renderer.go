package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/aleksamarkoni/uva-command-line/ui/messages"
)

// StartRenderer prints watch progress fed through ch. The returned function
// closes ch, waits for pending messages and prints the summary.
func StartRenderer(ch chan messages.Msg) func(err error) {
	drained := make(chan struct{})
	var last string
	var final messages.DoneWatchMsg

	fmt.Println()

	go func() {
		defer close(drained)
		for msg := range ch {
			switch msg := msg.(type) {
			case messages.StartWatchMsg:
				fmt.Println(cyan.Render("● ") + fmt.Sprintf("Waiting for the verdict of submission after #%d", msg.QueryID))
				fmt.Println(gray.Render("  " + strings.Join(Headers, " │ ")))

			case messages.UpdateMsg:
				line := strings.Join(Row(msg.Update.Submission, time.Now()), " │ ")
				// Only print when something changed; uHunt answers the same row for a while.
				if line == last {
					continue
				}
				last = line
				fmt.Printf("  %s %s\n", gray.Render(fmt.Sprintf("[%d]", msg.Update.Attempt)), line)

			case messages.DoneWatchMsg:
				final = msg
			}
		}
	}()

	return func(err error) {
		close(ch)
		<-drained

		fmt.Println()
		switch {
		case err != nil:
			fmt.Println(red.Render("✗ " + err.Error()))
		case final.Submission != nil:
			s := final.Submission
			fmt.Printf("%s %s in %s\n", green.Render("✓ Judged:"), Verdict(s.Verdict), formatRuntime(s.RuntimeMs))
		}
	}
}
