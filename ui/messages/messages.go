package messages

import "github.com/aleksamarkoni/uva-command-line/client"

// Msg is a marker interface for all message types
type Msg any

// StartWatchMsg is sent once before the first poll
type StartWatchMsg struct {
	UserID  string
	QueryID int
}

// UpdateMsg carries one poll observation
type UpdateMsg struct {
	Update client.Update
}

// DoneWatchMsg is sent when the verdict is terminal
type DoneWatchMsg struct {
	Submission *client.Submission
}
