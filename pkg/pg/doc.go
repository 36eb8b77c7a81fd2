// Package pg bootstraps PostgreSQL access with the pgx/v5 driver.
//
// Config is read from PG_* environment variables. Connect opens a
// *pgxpool.Pool, retrying with a linear back-off until the database answers a
// ping. Migrate, Rollback and Status run the embedded goose migrations in
// package migrations over the same pool. Healthcheck returns a readiness
// probe.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//		return err
//	}
//
// IsNotFoundError and IsDuplicateKeyError classify driver errors.
package pg
