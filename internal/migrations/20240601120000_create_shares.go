package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateShares, downCreateShares)
}

func upCreateShares(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE shares (
		id           BIGSERIAL PRIMARY KEY,
		media_id     VARCHAR NOT NULL,
		source       VARCHAR NOT NULL,
		handle       VARCHAR NOT NULL,
		shared_by    VARCHAR NOT NULL,
		from_channel VARCHAR NOT NULL,
		to_channel   VARCHAR NOT NULL,
		created_at   TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);
	CREATE INDEX shares_media_id_idx ON shares (media_id);
	CREATE INDEX shares_created_at_idx ON shares (created_at);
	`)
	return err
}

func downCreateShares(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE shares;`)
	return err
}
