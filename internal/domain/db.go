package domain

import "context"

// Database defines lifecycle operations for the underlying database.
// Each implementation (SQLite, Postgres) owns its own migration files and
// exposes the two gateways the services depend on.
type Database interface {
	Migrate(ctx context.Context) error
	Accounts() AccountRepository
	Messages() MessageRepository
	Close() error
}
