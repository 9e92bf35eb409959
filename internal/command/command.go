package command

import (
	"context"

	"github.com/jhankim/slack-olapic/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=command.go -destination=mocks/mock.go
type Client interface {
	// HandleSearch answers a slash command with an ephemeral page of results.
	HandleSearch(ctx context.Context, inv domain.Invocation) error
}
