package share

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhankim/slack-olapic/internal/domain"
	"github.com/jhankim/slack-olapic/internal/repositories"
	"github.com/jhankim/slack-olapic/pkg/logger"
)

const table = "shares"

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
	now    func() time.Time
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("ShareRepo"),
		now:    time.Now,
	}
}

var _ Repository = (*Pgx)(nil)

func createQuery(share domain.Share, at time.Time) (string, []any, error) {
	return repositories.SqBuilder.
		Insert(table).
		Columns("media_id", "source", "handle", "shared_by", "from_channel", "to_channel", "created_at").
		Values(share.MediaID, share.Source, share.Handle, share.SharedBy, share.FromChannel, share.ToChannel, at).
		ToSql()
}

func countByMediaQuery(mediaID string) (string, []any, error) {
	return repositories.SqBuilder.
		Select("COUNT(*)").
		From(table).
		Where(sq.Eq{"media_id": mediaID}).
		ToSql()
}

func cleanupQuery(cutoff time.Time) (string, []any, error) {
	return repositories.SqBuilder.
		Delete(table).
		Where(sq.Lt{"created_at": cutoff}).
		ToSql()
}

// Create records a share
func (p *Pgx) Create(ctx context.Context, share domain.Share) error {
	query, args, err := createQuery(share, p.now())
	if err != nil {
		return repositories.ErrBadQuery
	}

	if _, err = p.pg.Exec(ctx, query, args...); err != nil {
		p.logger.Error("Failed to insert share", "media_id", share.MediaID, "error", err)
		return err
	}
	return nil
}

// CountByMedia returns how many times a media item has been shared
func (p *Pgx) CountByMedia(ctx context.Context, mediaID string) (int64, error) {
	query, args, err := countByMediaQuery(mediaID)
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	var count int64
	if err := p.pg.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// CleanupOldRecords deletes shares older than the given duration
func (p *Pgx) CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error) {
	query, args, err := cleanupQuery(p.now().Add(-olderThan))
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	result, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}
