package interaction

import (
	"context"

	"github.com/jhankim/slack-olapic/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=interaction.go -destination=mocks/mock.go
type Client interface {
	// HandleLoadMore follows the cursor carried in inv.Value.
	HandleLoadMore(ctx context.Context, inv domain.Invocation) error

	// HandleShare reposts the media named by the share token in inv.ActionID
	// into inv.SelectedChannel.
	HandleShare(ctx context.Context, inv domain.Invocation) error

	HandleViewFull(ctx context.Context, inv domain.Invocation) error
}
