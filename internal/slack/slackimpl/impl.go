package slackimpl

import (
	"github.com/jhankim/slack-olapic/internal/slack"
	"github.com/jhankim/slack-olapic/pkg/config"
	"github.com/jhankim/slack-olapic/pkg/logger"
	slackapi "github.com/slack-go/slack"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type SlackImpl struct {
	api    *slackapi.Client
	logger logger.Logger
}

func New(opts Opts) *SlackImpl {
	return NewWithOptions(opts, slackapi.OptionDebug(false))
}

// NewWithOptions allows overriding the underlying client, e.g. its API URL.
func NewWithOptions(opts Opts, options ...slackapi.Option) *SlackImpl {
	return &SlackImpl{
		api:    slackapi.New(opts.Config.Slack.BotToken, options...),
		logger: opts.Logger.WithComponent("SlackClient"),
	}
}

var _ slack.Client = (*SlackImpl)(nil)
