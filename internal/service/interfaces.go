package service

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/mehil/internal/deadline"
	"github.com/alexanderramin/mehil/internal/domain"
)

// DeadlineService runs one-off computations.
type DeadlineService interface {
	Calculate(ctx context.Context, req deadline.Request) (deadline.Result, error)
	Calendar() deadline.Calendar
}

// AgendaService manages saved deadlines.
type AgendaService interface {
	Save(ctx context.Context, title string, req deadline.Request) (*domain.SavedDeadline, error)
	List(ctx context.Context) ([]*domain.SavedDeadline, error)
	ListUpcoming(ctx context.Context, today time.Time) ([]*domain.SavedDeadline, error)
	Get(ctx context.Context, idOrPrefix string) (*domain.SavedDeadline, error)
	Remove(ctx context.Context, idOrPrefix string) (*domain.SavedDeadline, error)
	// Refresh recomputes every entry against the current calendar and
	// returns how many due dates moved.
	Refresh(ctx context.Context) (int, error)
	Export(ctx context.Context, w io.Writer, format ExportFormat) error
}
