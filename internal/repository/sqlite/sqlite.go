package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/msomdec/social-media-api/internal/domain"
	"github.com/msomdec/social-media-api/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// DB is the SQLite-backed implementation of domain.Database.
type DB struct {
	SqlDB    *sql.DB
	accounts *AccountRepository
	messages *MessageRepository
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := sqlDB.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := sqlDB.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// SQLite allows a single writer; one connection keeps the pragmas in effect.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(context.Background()); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{
		SqlDB:    sqlDB,
		accounts: NewAccountRepository(sqlDB),
		messages: NewMessageRepository(sqlDB),
	}, nil
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, db.SqlDB)
}

func (db *DB) Accounts() domain.AccountRepository { return db.accounts }

func (db *DB) Messages() domain.MessageRepository { return db.messages }

func (db *DB) Close() error {
	return db.SqlDB.Close()
}
