package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// Conn is the part of *pgxpool.Pool the readiness check needs.
type Conn interface {
	Ping(ctx context.Context) error
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Healthcheck returns a readiness check that pings the database and
// confirms the gyms table exists, so an unmigrated database reports not ready.
func Healthcheck(conn Conn) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := conn.Ping(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		var migrated bool
		if err := conn.QueryRow(ctx, `SELECT to_regclass('gyms') IS NOT NULL`).Scan(&migrated); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		if !migrated {
			return errors.Join(ErrHealthcheckFailed, ErrSchemaNotMigrated)
		}
		return nil
	}
}
