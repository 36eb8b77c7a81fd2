// Package store implements the persistence contracts of the tenant, admin,
// membership and audit packages on PostgreSQL through pgx.
//
// Every store takes a DB, so the same code runs on a *pgxpool.Pool or inside
// a pgx.Tx. Missing rows map to the owning package's not-found error
// (tenant.ErrTenantNotFound, admin.ErrAdminNotFound).
package store
