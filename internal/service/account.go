package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/msomdec/social-media-api/internal/domain"
)

const minPasswordLength = 4

// AccountService is the sole authority on username uniqueness and credential
// validity. It holds no state besides its gateway and is safe for concurrent use.
type AccountService struct {
	accounts domain.AccountRepository
	logger   *slog.Logger
}

// NewAccountService creates a new AccountService. A nil logger uses slog.Default().
func NewAccountService(accounts domain.AccountRepository, logger *slog.Logger) *AccountService {
	return &AccountService{accounts: accounts, logger: loggerOrDefault(logger)}
}

// Register validates the candidate, checks that the username is free and
// creates the account. The returned account carries the assigned ID.
//
// The existence check and the insert are separate gateway calls; a concurrent
// registration of the same username is caught by the gateway's unique
// constraint and reported as domain.ErrDuplicateUsername.
func (s *AccountService) Register(ctx context.Context, candidate domain.Account) (*domain.Account, error) {
	s.logger.InfoContext(ctx, "registering account", "username", candidate.Username)

	if err := validateAccount(candidate); err != nil {
		s.logger.WarnContext(ctx, "account rejected", "username", candidate.Username, "error", err)
		return nil, err
	}

	exists, err := s.accounts.UsernameExists(ctx, candidate.Username)
	if err != nil {
		return nil, storageFailure(ctx, s.logger, "checking username", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateUsername, candidate.Username)
	}

	account := &domain.Account{Username: candidate.Username, Password: candidate.Password}
	if err := s.accounts.Insert(ctx, account); err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return nil, err
		}
		return nil, storageFailure(ctx, s.logger, "creating account", err)
	}

	return account, nil
}

// Login returns the account whose username and password match exactly.
// An unknown username and a wrong password both yield domain.ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, username, password string) (*domain.Account, error) {
	s.logger.InfoContext(ctx, "validating login", "username", username)

	account, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, storageFailure(ctx, s.logger, "validating login", err)
	}

	if subtle.ConstantTimeCompare([]byte(account.Password), []byte(password)) != 1 {
		return nil, domain.ErrInvalidCredentials
	}

	return account, nil
}

// GetByID looks up an account. A missing account is reported as found == false.
func (s *AccountService) GetByID(ctx context.Context, id int64) (*domain.Account, bool, error) {
	s.logger.DebugContext(ctx, "fetching account", "account_id", id)

	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, storageFailure(ctx, s.logger, "fetching account", err)
	}
	return account, true, nil
}

// GetAll returns every account.
func (s *AccountService) GetAll(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accounts.GetAll(ctx)
	if err != nil {
		return nil, storageFailure(ctx, s.logger, "fetching all accounts", err)
	}
	return accounts, nil
}

// FindByUsername looks up an account by exact username.
func (s *AccountService) FindByUsername(ctx context.Context, username string) (*domain.Account, bool, error) {
	account, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, storageFailure(ctx, s.logger, "finding account by username", err)
	}
	return account, true, nil
}

// Exists reports whether an account with the given ID is persisted.
func (s *AccountService) Exists(ctx context.Context, id int64) (bool, error) {
	_, found, err := s.GetByID(ctx, id)
	return found, err
}

// Update re-validates the account fields and overwrites the stored row.
// Unlike Register it does not pre-check username uniqueness; a collision is
// still rejected by the gateway as domain.ErrDuplicateUsername.
// It returns false when no account has the given ID.
func (s *AccountService) Update(ctx context.Context, account domain.Account) (bool, error) {
	s.logger.InfoContext(ctx, "updating account", "account_id", account.ID)

	if err := validateAccount(account); err != nil {
		s.logger.WarnContext(ctx, "account rejected", "account_id", account.ID, "error", err)
		return false, err
	}

	ok, err := s.accounts.Update(ctx, &account)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return false, err
		}
		return false, storageFailure(ctx, s.logger, "updating account", err)
	}
	return ok, nil
}

// Delete removes the account. It returns false when no account had the ID.
func (s *AccountService) Delete(ctx context.Context, account domain.Account) (bool, error) {
	s.logger.InfoContext(ctx, "deleting account", "account_id", account.ID)

	if account.ID <= 0 {
		return false, fmt.Errorf("%w: account id must be positive", domain.ErrInvalidInput)
	}

	ok, err := s.accounts.Delete(ctx, &account)
	if err != nil {
		return false, storageFailure(ctx, s.logger, "deleting account", err)
	}
	return ok, nil
}

func validateAccount(account domain.Account) error {
	username := strings.TrimSpace(account.Username)
	password := strings.TrimSpace(account.Password)

	if username == "" {
		return fmt.Errorf("%w: username cannot be empty", domain.ErrInvalidInput)
	}
	if password == "" {
		return fmt.Errorf("%w: password cannot be empty", domain.ErrInvalidInput)
	}
	if len([]rune(password)) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters long", domain.ErrInvalidInput, minPasswordLength)
	}
	return nil
}
