package domain

import "context"

// Repository is the CRUD contract shared by every persisted entity.
// GetByID returns ErrNotFound when no row matches. Update and Delete report
// whether a row was affected instead of failing on a missing row.
type Repository[T any] interface {
	GetByID(ctx context.Context, id int64) (*T, error)
	GetAll(ctx context.Context) ([]T, error)
	// Insert persists the entity and populates its generated ID.
	Insert(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) (bool, error)
	Delete(ctx context.Context, entity *T) (bool, error)
}
