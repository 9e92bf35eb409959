package share

import (
	"go.uber.org/fx"
)

var Module = fx.Module("share_repository",
	fx.Provide(
		fx.Annotate(
			NewPgx,
			fx.As(new(Repository)),
		),
	),
)
