package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jhankim/slack-olapic/internal/blocks"
	"github.com/jhankim/slack-olapic/internal/domain"
	slackapi "github.com/slack-go/slack"
)

func (s *Server) handleActions(w http.ResponseWriter, r *http.Request) {
	if !s.verify(w, r) {
		return
	}

	var cb slackapi.InteractionCallback
	if err := json.Unmarshal([]byte(r.FormValue("payload")), &cb); err != nil {
		s.logger.Warn("Failed to decode interaction payload", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusOK)

	if cb.Type != slackapi.InteractionTypeBlockActions {
		s.logger.Debug("Ignoring interaction", "type", cb.Type)
		return
	}

	channelID := cb.Container.ChannelID
	if channelID == "" {
		channelID = cb.Channel.ID
	}

	for _, action := range cb.ActionCallback.BlockActions {
		inv := domain.Invocation{
			UserID:          cb.User.ID,
			ChannelID:       channelID,
			ActionID:        action.ActionID,
			Value:           action.Value,
			SelectedChannel: action.SelectedChannel,
		}
		s.route(r, inv)
	}
}

func (s *Server) route(r *http.Request, inv domain.Invocation) {
	switch {
	case inv.ActionID == blocks.ActionLoadMore:
		s.dispatch(r, "load_more", func(ctx context.Context) error {
			return s.interaction.HandleLoadMore(ctx, inv)
		})
	case inv.ActionID == blocks.ActionViewFull:
		s.dispatch(r, "view_full", func(ctx context.Context) error {
			return s.interaction.HandleViewFull(ctx, inv)
		})
	case blocks.IsShareActionID(inv.ActionID):
		s.dispatch(r, "share", func(ctx context.Context) error {
			return s.interaction.HandleShare(ctx, inv)
		})
	default:
		s.logger.Debug("Ignoring block action", "action_id", inv.ActionID)
	}
}
