package domain

import "context"

// MaxMessageLength is the longest message text accepted, in characters.
const MaxMessageLength = 254

// Message is a post made by an account. PostedBy and PostedAtEpoch are fixed
// at creation; only Text changes afterwards.
type Message struct {
	ID            int64
	PostedBy      int64
	Text          string
	PostedAtEpoch int64
}

// MessageRepository defines persistence operations for messages.
type MessageRepository interface {
	Repository[Message]
	ListByAccount(ctx context.Context, accountID int64) ([]Message, error)
}
