package logger

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jhankim/slack-olapic/pkg/config"
	"go.uber.org/fx"
)

var FxOption = fx.Annotate(
	func(lc fx.Lifecycle, cfg *config.Config) *Impl {
		sentryOn := false
		if cfg.App.SentryUrl != "" {
			err := sentry.Init(sentry.ClientOptions{
				Dsn:         cfg.App.SentryUrl,
				Environment: cfg.App.Env,
			})
			sentryOn = err == nil
		}

		log := New(
			Opts{
				Env:    cfg.App.Env,
				Sentry: sentryOn,
			},
		)

		if sentryOn {
			lc.Append(fx.Hook{
				OnStop: func(context.Context) error {
					sentry.Flush(2 * time.Second)
					return nil
				},
			})
		}
		return log
	},
	fx.As(new(Logger)),
)
