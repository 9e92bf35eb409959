package interactionimpl

import (
	"context"
	"fmt"

	"github.com/jhankim/slack-olapic/internal/blocks"
	"github.com/jhankim/slack-olapic/internal/domain"
	"github.com/jhankim/slack-olapic/internal/slack"
	apperrors "github.com/jhankim/slack-olapic/pkg/errors"
)

func (i *InteractionImpl) HandleShare(ctx context.Context, inv domain.Invocation) error {
	token, err := blocks.DecodeShareToken(inv.ActionID)
	if err != nil {
		i.Logger.Warn("Rejected share action", "action_id", inv.ActionID, "error", err)
		return i.notify(ctx, inv.ChannelID, inv.UserID, blocks.GenericFailure)
	}
	if inv.SelectedChannel == "" {
		i.Logger.Warn("Share action without a selected channel", "action_id", inv.ActionID)
		return i.notify(ctx, inv.ChannelID, inv.UserID, blocks.GenericFailure)
	}

	media, err := i.Olapic.GetMedia(ctx, token.MediaID)
	if err != nil {
		i.Logger.Error("Failed to fetch media for share", "media_id", token.MediaID, "code", apperrors.GetCode(err), "not_found", apperrors.IsNotFound(err), "error", err)
		return i.notify(ctx, inv.ChannelID, inv.UserID, blocks.GenericFailure)
	}

	out, err := blocks.Build(blocks.Options{
		SharedBy: inv.UserID,
		Media:    []domain.Media{*media},
		Location: i.Config.Location(),
	})
	if err != nil {
		i.Logger.Error("Failed to render shared media", "media_id", token.MediaID, "error", err)
		return i.notify(ctx, inv.ChannelID, inv.UserID, blocks.GenericFailure)
	}

	err = i.Slack.PostMessage(ctx, inv.SelectedChannel, slack.Message{
		Text:   fmt.Sprintf("@%s's %s image from Olapic", token.Handle, token.Source),
		Blocks: out,
	})
	if err != nil {
		i.Logger.Warn("Failed to post shared media", "channel", inv.SelectedChannel, "error", err)
		return i.notify(ctx, inv.ChannelID, inv.UserID, blocks.ShareFailed(err))
	}

	prior, err := i.ShareRepo.CountByMedia(ctx, token.MediaID)
	if err != nil {
		i.Logger.Warn("Failed to count prior shares", "media_id", token.MediaID, "error", err)
		prior = 0
	}

	if err := i.notify(ctx, inv.ChannelID, inv.UserID,
		blocks.ShareConfirmation(token.Handle, token.Source, inv.SelectedChannel, prior)); err != nil {
		return err
	}

	record := domain.Share{
		MediaID:     token.MediaID,
		Source:      token.Source,
		Handle:      token.Handle,
		SharedBy:    inv.UserID,
		FromChannel: inv.ChannelID,
		ToChannel:   inv.SelectedChannel,
	}
	if err := i.ShareRepo.Create(ctx, record); err != nil {
		i.Logger.Error("Failed to record share", "media_id", token.MediaID, "error", err)
	}

	return nil
}
