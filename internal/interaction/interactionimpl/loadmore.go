package interactionimpl

import (
	"context"
	"fmt"

	"github.com/jhankim/slack-olapic/internal/blocks"
	"github.com/jhankim/slack-olapic/internal/domain"
	"github.com/jhankim/slack-olapic/internal/slack"
	apperrors "github.com/jhankim/slack-olapic/pkg/errors"
)

func (i *InteractionImpl) HandleLoadMore(ctx context.Context, inv domain.Invocation) error {
	page, err := i.Olapic.FetchPage(ctx, inv.Value)
	if err != nil {
		i.Logger.Error("Failed to fetch next page", "cursor", inv.Value, "code", apperrors.GetCode(err), "status", apperrors.HTTPStatus(err), "error", err)
		return i.notify(ctx, inv.ChannelID, inv.UserID, blocks.GenericFailure)
	}

	if len(page.Media) == 0 {
		return i.notify(ctx, inv.ChannelID, inv.UserID, blocks.NoMorePhotos)
	}

	out, err := blocks.Build(blocks.Options{
		Media:    page.Media,
		Next:     page.Next,
		Location: i.Config.Location(),
	})
	if err != nil {
		i.Logger.Error("Failed to render page", "cursor", inv.Value, "error", err)
		return i.notify(ctx, inv.ChannelID, inv.UserID, blocks.GenericFailure)
	}

	err = i.Slack.PostEphemeral(ctx, inv.ChannelID, inv.UserID, slack.Message{
		Text:   "More photos from Olapic",
		Blocks: out,
	})
	if err != nil {
		return fmt.Errorf("failed to send next page: %w", err)
	}
	return nil
}

// HandleViewFull has nothing to do: the button opens its URL client-side and
// the request was acknowledged before dispatch.
func (i *InteractionImpl) HandleViewFull(_ context.Context, inv domain.Invocation) error {
	i.Logger.Debug("View full image clicked", "user", inv.UserID)
	return nil
}
