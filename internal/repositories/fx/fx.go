package fx

import (
	"github.com/jhankim/slack-olapic/internal/repositories/share"
	"go.uber.org/fx"
)

// Module provides every pgx-backed repository.
var Module = fx.Options(
	share.Module,
)
