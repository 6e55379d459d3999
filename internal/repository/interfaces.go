package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/mehil/internal/domain"
)

var (
	// ErrNotFound is wrapped by every lookup that matches no row.
	ErrNotFound = errors.New("not found")
	// ErrAmbiguousID is returned when an ID prefix matches several entries.
	ErrAmbiguousID = errors.New("ambiguous id prefix")
)

type SavedDeadlineRepo interface {
	Create(ctx context.Context, s *domain.SavedDeadline) error
	GetByID(ctx context.Context, id string) (*domain.SavedDeadline, error)
	FindByIDPrefix(ctx context.Context, prefix string) (*domain.SavedDeadline, error)
	// List returns entries in the order they were added.
	List(ctx context.Context) ([]*domain.SavedDeadline, error)
	// ListDueFrom returns entries due on or after from, soonest first.
	ListDueFrom(ctx context.Context, from time.Time) ([]*domain.SavedDeadline, error)
	Update(ctx context.Context, s *domain.SavedDeadline) error
	Delete(ctx context.Context, id string) error
}
