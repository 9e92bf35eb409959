package commandimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhankim/slack-olapic/internal/blocks"
	"github.com/jhankim/slack-olapic/internal/domain"
	"github.com/jhankim/slack-olapic/internal/slack"
	apperrors "github.com/jhankim/slack-olapic/pkg/errors"
)

func (c *CommandImpl) HandleSearch(ctx context.Context, inv domain.Invocation) error {
	if strings.TrimSpace(inv.Text) == "" {
		return c.reply(ctx, inv, slack.Message{Text: blocks.Usage(c.Config.CommandName())})
	}

	if !c.Limiter.Allow(inv.UserID) {
		c.Logger.Info("Search rate limited", "user", inv.UserID)
		return c.reply(ctx, inv, slack.Message{Text: blocks.SlowDown})
	}

	page, err := c.Olapic.Search(ctx, domain.NewSearchQuery(inv.Text))
	if err != nil {
		c.Logger.Error("Search failed", "query", inv.Text, "code", apperrors.GetCode(err), "status", apperrors.HTTPStatus(err), "error", err)
		return c.reply(ctx, inv, slack.Message{Text: blocks.GenericFailure})
	}

	if len(page.Media) == 0 {
		return c.reply(ctx, inv, slack.Message{Text: blocks.NoResults(inv.Text)})
	}

	out, err := blocks.Build(blocks.Options{
		Query:    inv.Text,
		Media:    page.Media,
		Next:     page.Next,
		Location: c.Config.Location(),
	})
	if err != nil {
		c.Logger.Error("Failed to render search results", "query", inv.Text, "error", err)
		return c.reply(ctx, inv, slack.Message{Text: blocks.GenericFailure})
	}

	c.Logger.Debug("Sending search results", "query", inv.Text, "count", len(page.Media), "has_next", page.Next != "")
	return c.reply(ctx, inv, slack.Message{
		Text:   fmt.Sprintf("Search results for %s", inv.Text),
		Blocks: out,
	})
}

func (c *CommandImpl) reply(ctx context.Context, inv domain.Invocation, msg slack.Message) error {
	if err := c.Slack.PostEphemeral(ctx, inv.ChannelID, inv.UserID, msg); err != nil {
		return fmt.Errorf("failed to send ephemeral reply: %w", err)
	}
	return nil
}
