package share

import (
	"context"
	"time"

	"github.com/jhankim/slack-olapic/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=share.go -destination=mocks/mock.go
type Repository interface {
	// Create records a share
	Create(ctx context.Context, share domain.Share) error

	// CountByMedia returns how many times a media item has been shared
	CountByMedia(ctx context.Context, mediaID string) (int64, error)

	// CleanupOldRecords deletes shares older than the given duration
	CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error)
}
