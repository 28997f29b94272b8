package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for book storage.
type Repository interface {
	Insert(ctx context.Context, b Book) error
	List(ctx context.Context, f Filter) ([]Book, error)
	Get(ctx context.Context, id string) (Book, error)
	// Update applies mutate to a copy of the stored book and saves it only
	// when mutate returns nil. It returns ErrNotFound before calling mutate.
	Update(ctx context.Context, id string, mutate func(*Book) error) error
	Delete(ctx context.Context, id string) error
}
