package interactionimpl

import (
	"context"
	"fmt"

	"github.com/jhankim/slack-olapic/internal/interaction"
	"github.com/jhankim/slack-olapic/internal/olapic"
	"github.com/jhankim/slack-olapic/internal/repositories/share"
	"github.com/jhankim/slack-olapic/internal/slack"
	"github.com/jhankim/slack-olapic/pkg/config"
	"github.com/jhankim/slack-olapic/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Olapic    olapic.Client
	Slack     slack.Client
	ShareRepo share.Repository
	Logger    logger.Logger
	Config    *config.Config
}

type InteractionImpl struct {
	Olapic    olapic.Client
	Slack     slack.Client
	ShareRepo share.Repository
	Logger    logger.Logger
	Config    *config.Config
}

func New(opts Opts) *InteractionImpl {
	return &InteractionImpl{
		Olapic:    opts.Olapic,
		Slack:     opts.Slack,
		ShareRepo: opts.ShareRepo,
		Logger:    opts.Logger.WithComponent("Interaction"),
		Config:    opts.Config,
	}
}

var _ interaction.Client = (*InteractionImpl)(nil)

func (i *InteractionImpl) notify(ctx context.Context, channelID, userID, text string) error {
	if err := i.Slack.PostEphemeral(ctx, channelID, userID, slack.Message{Text: text}); err != nil {
		return fmt.Errorf("failed to send ephemeral notice: %w", err)
	}
	return nil
}
