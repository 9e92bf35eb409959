package server

import (
	"context"
	"net/http"

	"github.com/jhankim/slack-olapic/internal/domain"
	slackapi "github.com/slack-go/slack"
)

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	if !s.verify(w, r) {
		return
	}

	cmd, err := slackapi.SlashCommandParse(r)
	if err != nil {
		s.logger.Warn("Failed to parse slash command", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if cmd.Command != s.cfg.CommandName() {
		s.logger.Debug("Ignoring unknown command", "command", cmd.Command)
		w.WriteHeader(http.StatusNotFound)
		return
	}

	inv := domain.Invocation{
		UserID:    cmd.UserID,
		ChannelID: cmd.ChannelID,
		Text:      cmd.Text,
	}

	w.WriteHeader(http.StatusOK)
	s.dispatch(r, "search", func(ctx context.Context) error {
		return s.command.HandleSearch(ctx, inv)
	})
}
