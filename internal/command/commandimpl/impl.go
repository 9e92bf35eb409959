package commandimpl

import (
	"github.com/jhankim/slack-olapic/internal/command"
	"github.com/jhankim/slack-olapic/internal/olapic"
	"github.com/jhankim/slack-olapic/internal/ratelimit"
	"github.com/jhankim/slack-olapic/internal/slack"
	"github.com/jhankim/slack-olapic/pkg/config"
	"github.com/jhankim/slack-olapic/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Olapic  olapic.Client
	Slack   slack.Client
	Limiter ratelimit.Limiter
	Logger  logger.Logger
	Config  *config.Config
}

type CommandImpl struct {
	Olapic  olapic.Client
	Slack   slack.Client
	Limiter ratelimit.Limiter
	Logger  logger.Logger
	Config  *config.Config
}

func New(opts Opts) *CommandImpl {
	return &CommandImpl{
		Olapic:  opts.Olapic,
		Slack:   opts.Slack,
		Limiter: opts.Limiter,
		Logger:  opts.Logger.WithComponent("SearchCommand"),
		Config:  opts.Config,
	}
}

var _ command.Client = (*CommandImpl)(nil)
