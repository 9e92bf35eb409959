package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhankim/slack-olapic/internal/command"
	"github.com/jhankim/slack-olapic/internal/command/commandimpl"
	"github.com/jhankim/slack-olapic/internal/housekeeping"
	"github.com/jhankim/slack-olapic/internal/interaction"
	"github.com/jhankim/slack-olapic/internal/interaction/interactionimpl"
	"github.com/jhankim/slack-olapic/internal/migrations"
	"github.com/jhankim/slack-olapic/internal/olapic"
	"github.com/jhankim/slack-olapic/internal/olapic/olapicimpl"
	"github.com/jhankim/slack-olapic/internal/ratelimit"
	repositories "github.com/jhankim/slack-olapic/internal/repositories/fx"
	"github.com/jhankim/slack-olapic/internal/server"
	"github.com/jhankim/slack-olapic/internal/slack"
	"github.com/jhankim/slack-olapic/internal/slack/slackimpl"
	"github.com/jhankim/slack-olapic/pkg/config"
	"github.com/jhankim/slack-olapic/pkg/logger"
	"github.com/jhankim/slack-olapic/pkg/pgx"
	"github.com/jhankim/slack-olapic/pkg/retry"
	"go.uber.org/fx"
)

var App = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
		newLimiter,
	),
	fx.Provide(
		fx.Annotate(
			olapicimpl.New,
			fx.As(new(olapic.Client)),
		),
		fx.Annotate(
			slackimpl.New,
			fx.As(new(slack.Client)),
		),
		fx.Annotate(
			commandimpl.New,
			fx.As(new(command.Client)),
		),
		fx.Annotate(
			interactionimpl.New,
			fx.As(new(interaction.Client)),
		),
		server.New,
		housekeeping.New,
	),
	repositories.Module,
	fx.Invoke(migrate),
	fx.Invoke(run),
)

func newLimiter(cfg *config.Config) ratelimit.Limiter {
	return ratelimit.NewInMemoryLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Per, cfg.RateLimit.Burst)
}

func migrate(lc fx.Lifecycle, cfg *config.Config, log logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := migrations.Up(ctx, cfg.GetDSN()); err != nil {
				return fmt.Errorf("failed to apply migrations: %w", err)
			}
			log.Info("Migrations applied")
			return nil
		},
	})
}

func run(lc fx.Lifecycle, log logger.Logger, slackClient slack.Client, srv *server.Server, hk *housekeeping.Housekeeper) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			botID, err := retry.Value(ctx, log, "slack auth.test", func() (string, error) {
				id, err := slackClient.AuthTest(ctx)
				if errors.Is(err, slack.ErrInvalidToken) {
					return "", retry.Permanent(err)
				}
				return id, err
			}, retry.DefaultConfig())
			if err != nil {
				log.Error("Slack auth test failed", "error", err)
			} else {
				log.Info("Slack token verified", "bot_user", botID)
			}

			if err := srv.Start(ctx); err != nil {
				return err
			}
			hk.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := hk.Stop(); err != nil {
				log.Error("Failed to stop housekeeping", "error", err)
			}
			return srv.Shutdown(ctx)
		},
	})
}
