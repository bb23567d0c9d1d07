package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/social-media-api/internal/domain"
)

// AccountRepository implements domain.AccountRepository using Postgres.
type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	return r.queryOne(ctx, "query account by id",
		`SELECT account_id, username, password FROM account WHERE account_id = $1`, id)
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return r.queryOne(ctx, "query account by username",
		`SELECT account_id, username, password FROM account WHERE username = $1`, username)
}

func (r *AccountRepository) queryOne(ctx context.Context, op, query string, arg any) (*domain.Account, error) {
	a := &domain.Account{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&a.ID, &a.Username, &a.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return a, nil
}

func (r *AccountRepository) GetAll(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT account_id, username, password FROM account ORDER BY account_id`)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.Username, &a.Password); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *AccountRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM account WHERE username = $1)`, username,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	return exists, nil
}

func (r *AccountRepository) Insert(ctx context.Context, account *domain.Account) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO account (username, password) VALUES ($1, $2) RETURNING account_id`,
		account.Username, account.Password,
	).Scan(&account.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateUsername
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (r *AccountRepository) Update(ctx context.Context, account *domain.Account) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE account SET username = $1, password = $2 WHERE account_id = $3`,
		account.Username, account.Password, account.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrDuplicateUsername
		}
		return false, fmt.Errorf("update account: %w", err)
	}
	return affected(result)
}

func (r *AccountRepository) Delete(ctx context.Context, account *domain.Account) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM account WHERE account_id = $1`, account.ID)
	if err != nil {
		return false, fmt.Errorf("delete account: %w", err)
	}
	return affected(result)
}
