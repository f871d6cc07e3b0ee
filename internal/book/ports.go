package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=ports_mock.go -package=book

// Repository defines the contract for book storage.
type Repository interface {
	// Insert persists a new record and returns the id the store assigned.
	Insert(ctx context.Context, b Book) (int64, error)
	// GetByID returns the record with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id int64) (Book, error)
	// Count returns how many rows match the filters.
	Count(ctx context.Context, conds []Condition) (int, error)
	// Search returns the sorted, filtered window of rows.
	Search(ctx context.Context, conds []Condition, sortBy SortField, dir Direction, limit, offset int) ([]Book, error)
	// Update overwrites every column of the record identified by b.ID.
	Update(ctx context.Context, b Book) error
}
