package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/msomdec/social-media-api/internal/domain"
	"github.com/msomdec/social-media-api/internal/repository/postgres/migrations"
	"github.com/pressly/goose/v3"
)

const uniqueViolation = "23505"

// DB is the Postgres-backed implementation of domain.Database.
type DB struct {
	SqlDB    *sql.DB
	accounts *AccountRepository
	messages *MessageRepository
}

// New opens a Postgres connection pool through the pgx stdlib driver.
func New(ctx context.Context, dsn string) (*DB, error) {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return Wrap(sqlDB), nil
}

// Wrap builds a DB around an already opened connection pool.
func Wrap(sqlDB *sql.DB) *DB {
	return &DB{
		SqlDB:    sqlDB,
		accounts: NewAccountRepository(sqlDB),
		messages: NewMessageRepository(sqlDB),
	}
}

var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Migrate applies the embedded goose migrations.
func (db *DB) Migrate(ctx context.Context) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db.SqlDB, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

func (db *DB) Accounts() domain.AccountRepository { return db.accounts }

func (db *DB) Messages() domain.MessageRepository { return db.messages }

func (db *DB) Close() error {
	return db.SqlDB.Close()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func affected(result sql.Result) (bool, error) {
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return rows > 0, nil
}
