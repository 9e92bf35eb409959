package olapic

import (
	"context"

	"github.com/jhankim/slack-olapic/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=olapic.go -destination=mocks/mock.go
type Client interface {
	// Search posts a keyword query to /media/search.
	Search(ctx context.Context, q domain.SearchQuery) (*domain.MediaPage, error)

	// FetchPage follows a pagination cursor as-is.
	FetchPage(ctx context.Context, cursor string) (*domain.MediaPage, error)

	// GetMedia fetches one media record by id. A missing id yields an
	// error matching errors.ErrNotFound from pkg/errors.
	GetMedia(ctx context.Context, id string) (*domain.Media, error)
}
