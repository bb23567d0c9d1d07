package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/social-media-api/internal/domain"
)

// AccountRepository implements domain.AccountRepository using SQLite.
type AccountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a new SQLite-backed AccountRepository.
func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	a := &domain.Account{}
	err := r.db.QueryRowContext(ctx,
		`SELECT account_id, username, password FROM account WHERE account_id = ?`, id,
	).Scan(&a.ID, &a.Username, &a.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query account by id: %w", err)
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

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	a := &domain.Account{}
	err := r.db.QueryRowContext(ctx,
		`SELECT account_id, username, password FROM account WHERE username = ?`, username,
	).Scan(&a.ID, &a.Username, &a.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query account by username: %w", err)
	}
	return a, nil
}

func (r *AccountRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM account WHERE username = ?`, username,
	).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check username: %w", err)
	}
	return true, nil
}

func (r *AccountRepository) Insert(ctx context.Context, account *domain.Account) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO account (username, password) VALUES (?, ?)`,
		account.Username, account.Password,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicateUsername
		}
		return fmt.Errorf("insert account: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	account.ID = id
	return nil
}

func (r *AccountRepository) Update(ctx context.Context, account *domain.Account) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE account SET username = ?, password = ? WHERE account_id = ?`,
		account.Username, account.Password, account.ID,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return false, domain.ErrDuplicateUsername
		}
		return false, fmt.Errorf("update account: %w", err)
	}
	return affected(result)
}

func (r *AccountRepository) Delete(ctx context.Context, account *domain.Account) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM account WHERE account_id = ?", account.ID)
	if err != nil {
		return false, fmt.Errorf("delete account: %w", err)
	}
	return affected(result)
}

func affected(result sql.Result) (bool, error) {
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return rows > 0, nil
}
