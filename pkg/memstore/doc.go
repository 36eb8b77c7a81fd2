// Package memstore is an in-memory persistence layer seeded from YAML
// fixtures. It backs the service when no PostgreSQL connection is configured
// and serves as the collaborator in handler tests.
//
// Every read returns a copy; mutations go through UpdateStatus and
// Reactivate only.
package memstore
