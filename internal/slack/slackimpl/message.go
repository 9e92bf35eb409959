package slackimpl

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhankim/slack-olapic/internal/slack"
	slackapi "github.com/slack-go/slack"
)

func msgOptions(msg slack.Message) []slackapi.MsgOption {
	var opts []slackapi.MsgOption
	if msg.Text != "" {
		opts = append(opts, slackapi.MsgOptionText(msg.Text, false))
	}
	if len(msg.Blocks) > 0 {
		opts = append(opts, slackapi.MsgOptionBlocks(msg.Blocks...))
	}
	return opts
}

// PostEphemeral sends a message only userID can see
func (s *SlackImpl) PostEphemeral(ctx context.Context, channelID, userID string, msg slack.Message) error {
	_, err := s.api.PostEphemeralContext(ctx, channelID, userID, msgOptions(msg)...)
	if err != nil {
		s.logger.Error("Error sending ephemeral message",
			"channel", channelID,
			"user", userID,
			"error", err)
		return fmt.Errorf("failed to send ephemeral message: %w", err)
	}

	s.logger.Debug("Ephemeral message sent",
		"channel", channelID,
		"user", userID,
		"blocks", len(msg.Blocks))
	return nil
}

// PostMessage sends a message to the whole channel
func (s *SlackImpl) PostMessage(ctx context.Context, channelID string, msg slack.Message) error {
	_, ts, err := s.api.PostMessageContext(ctx, channelID, msgOptions(msg)...)
	if err != nil {
		s.logger.Error("Error sending message to channel",
			"channel", channelID,
			"error", err)
		return fmt.Errorf("failed to send message: %w", err)
	}

	s.logger.Info("Message sent to channel",
		"channel", channelID,
		"ts", ts)
	return nil
}

func (s *SlackImpl) AuthTest(ctx context.Context) (string, error) {
	resp, err := s.api.AuthTestContext(ctx)
	if err != nil {
		var apiErr slackapi.SlackErrorResponse
		if errors.As(err, &apiErr) && isTokenError(apiErr.Err) {
			return "", fmt.Errorf("%w: %w", slack.ErrInvalidToken, err)
		}
		return "", fmt.Errorf("slack auth.test failed: %w", err)
	}
	return resp.UserID, nil
}

func isTokenError(code string) bool {
	switch code {
	case "invalid_auth", "not_authed", "account_inactive", "token_revoked", "token_expired":
		return true
	}
	return false
}
