package domain

import "context"

// Account is a registered user. The password is stored and compared as given.
type Account struct {
	ID       int64
	Username string
	Password string
}

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	Repository[Account]
	FindByUsername(ctx context.Context, username string) (*Account, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}
