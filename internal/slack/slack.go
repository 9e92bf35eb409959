package slack

import (
	"context"
	"errors"

	slackapi "github.com/slack-go/slack"
)

// ErrInvalidToken is returned by AuthTest when Slack rejects the bot token.
var ErrInvalidToken = errors.New("slack rejected the bot token")

// Message is either plain text, a block sequence, or both. With blocks,
// Text becomes the notification fallback.
type Message struct {
	Text   string
	Blocks []slackapi.Block
}

//go:generate go run go.uber.org/mock/mockgen -source=slack.go -destination=mocks/mock.go
type Client interface {
	// PostEphemeral shows msg to userID only, inside channelID.
	PostEphemeral(ctx context.Context, channelID, userID string, msg Message) error

	// PostMessage posts msg to everyone in channelID.
	PostMessage(ctx context.Context, channelID string, msg Message) error

	// AuthTest verifies the bot token and returns the bot user id.
	AuthTest(ctx context.Context) (string, error)
}
