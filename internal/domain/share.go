package domain

import "time"

// Share is one audit record of an image re-posted into a channel.
type Share struct {
	ID          int64
	MediaID     string
	Source      string
	Handle      string
	SharedBy    string
	FromChannel string
	ToChannel   string
	CreatedAt   time.Time
}
