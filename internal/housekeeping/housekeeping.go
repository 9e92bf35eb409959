package housekeeping

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jhankim/slack-olapic/internal/ratelimit"
	"github.com/jhankim/slack-olapic/internal/repositories/share"
	"github.com/jhankim/slack-olapic/pkg/config"
	"github.com/jhankim/slack-olapic/pkg/logger"
	"go.uber.org/fx"
)

const (
	cleanupTimeout = 5 * time.Minute
	limiterIdle    = time.Hour
)

type Opts struct {
	fx.In

	Config    *config.Config
	Logger    logger.Logger
	ShareRepo share.Repository
	Limiter   ratelimit.Limiter
}

type Housekeeper struct {
	cfg       *config.Config
	logger    logger.Logger
	shareRepo share.Repository
	limiter   ratelimit.Limiter
	scheduler gocron.Scheduler
}

// New registers the daily share-log cleanup and the hourly limiter prune.
// Nothing runs until Start.
func New(opts Opts) (*Housekeeper, error) {
	h := &Housekeeper{
		cfg:       opts.Config,
		logger:    opts.Logger.WithComponent("Housekeeping"),
		shareRepo: opts.ShareRepo,
		limiter:   opts.Limiter,
	}

	scheduler, err := gocron.NewScheduler(gocron.WithLocation(opts.Config.Location()))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	h.scheduler = scheduler

	// 3:00 AM in the display timezone
	_, err = scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(3, 0, 0))),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
			defer cancel()
			h.CleanupShares(ctx)
		}),
		gocron.WithName("share-log-cleanup"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule share cleanup: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(time.Hour),
		gocron.NewTask(h.PruneLimiter),
		gocron.WithName("rate-limit-prune"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule limiter prune: %w", err)
	}

	return h, nil
}

func (h *Housekeeper) Start() {
	h.logger.Info("Starting housekeeping scheduler", "jobs", len(h.scheduler.Jobs()))
	h.scheduler.Start()
}

func (h *Housekeeper) Stop() error {
	h.logger.Info("Stopping housekeeping scheduler")
	if err := h.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("failed to shut down scheduler: %w", err)
	}
	return nil
}

// CleanupShares deletes share-log rows older than the configured retention.
func (h *Housekeeper) CleanupShares(ctx context.Context) {
	retention := h.cfg.ShareLog.Retention
	if retention <= 0 {
		h.logger.Debug("Share log retention disabled")
		return
	}

	rows, err := h.shareRepo.CleanupOldRecords(ctx, retention)
	if err != nil {
		h.logger.Error("Failed to clean up share log", "error", err)
		return
	}
	h.logger.Info("Share log cleanup completed", "rows_deleted", rows, "retention", retention.String())
}

func (h *Housekeeper) PruneLimiter() {
	if removed := h.limiter.Prune(limiterIdle); removed > 0 {
		h.logger.Debug("Pruned idle rate limit buckets", "removed", removed)
	}
}
