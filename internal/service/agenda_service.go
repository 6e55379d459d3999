package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexanderramin/mehil/internal/db"
	"github.com/alexanderramin/mehil/internal/deadline"
	"github.com/alexanderramin/mehil/internal/domain"
	"github.com/alexanderramin/mehil/internal/repository"
	"github.com/google/uuid"
)

// MinIDPrefix is the shortest ID prefix accepted for lookups.
const MinIDPrefix = 4

type agendaService struct {
	repo     repository.SavedDeadlineRepo
	uow      db.UnitOfWork
	engine   *deadline.Engine
	observer UseCaseObserver
	now      func() time.Time
}

func NewAgendaService(repo repository.SavedDeadlineRepo, uow db.UnitOfWork, engine *deadline.Engine, observers ...UseCaseObserver) AgendaService {
	if engine == nil {
		engine = deadline.Default()
	}
	return &agendaService{
		repo:     repo,
		uow:      uow,
		engine:   engine,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC().Truncate(time.Second) },
	}
}

func (s *agendaService) Save(ctx context.Context, title string, req deadline.Request) (saved *domain.SavedDeadline, err error) {
	startedAt := time.Now()
	fields := map[string]any{"unit": string(req.DurationUnit), "value": req.DurationValue}
	defer func() {
		if saved != nil {
			fields["id"] = saved.DisplayID()
			fields["due"] = saved.DueDate.Format(deadline.DateLayout)
		}
		observe(ctx, s.observer, "agenda.save", startedAt, fields, &err)
	}()

	if err = req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deadline: %w", err)
	}
	entry, err := domain.NewSavedDeadline(uuid.New().String(), title, req, s.engine.Compute(req), s.now())
	if err != nil {
		return nil, err
	}
	if err = s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *agendaService) List(ctx context.Context) (entries []*domain.SavedDeadline, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		fields["count"] = len(entries)
		observe(ctx, s.observer, "agenda.list", startedAt, fields, &err)
	}()

	return s.repo.List(ctx)
}

func (s *agendaService) ListUpcoming(ctx context.Context, today time.Time) (entries []*domain.SavedDeadline, err error) {
	startedAt := time.Now()
	from := deadline.DateOf(today)
	fields := map[string]any{"from": from.Format(deadline.DateLayout)}
	defer func() {
		fields["count"] = len(entries)
		observe(ctx, s.observer, "agenda.list_upcoming", startedAt, fields, &err)
	}()

	return s.repo.ListDueFrom(ctx, from)
}

// Get resolves a full ID first and falls back to a unique prefix of at
// least MinIDPrefix characters.
func (s *agendaService) Get(ctx context.Context, idOrPrefix string) (*domain.SavedDeadline, error) {
	return resolveEntry(ctx, s.repo, idOrPrefix)
}

func (s *agendaService) Remove(ctx context.Context, idOrPrefix string) (removed *domain.SavedDeadline, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		if removed != nil {
			fields["id"] = removed.DisplayID()
		}
		observe(ctx, s.observer, "agenda.remove", startedAt, fields, &err)
	}()

	entry, err := resolveEntry(ctx, s.repo, idOrPrefix)
	if err != nil {
		return nil, err
	}
	if err = s.repo.Delete(ctx, entry.ID); err != nil {
		return nil, err
	}
	return entry, nil
}

// Refresh recomputes all entries in a single transaction. Any failure leaves
// the agenda untouched.
func (s *agendaService) Refresh(ctx context.Context) (changed int, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		fields["changed"] = changed
		observe(ctx, s.observer, "agenda.refresh", startedAt, fields, &err)
	}()

	now := s.now()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRepo := repository.NewSQLiteSavedDeadlineRepo(tx)

		entries, err := txRepo.List(ctx)
		if err != nil {
			return err
		}
		fields["total"] = len(entries)
		n := 0
		for _, entry := range entries {
			if entry.ApplyResult(s.engine.Compute(entry.Request()), now) {
				n++
			}
			if err := txRepo.Update(ctx, entry); err != nil {
				return fmt.Errorf("refreshing %s: %w", entry.DisplayID(), err)
			}
		}
		changed = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return changed, nil
}

func (s *agendaService) Export(ctx context.Context, w io.Writer, format ExportFormat) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"format": string(format)}
	defer func() {
		observe(ctx, s.observer, "agenda.export", startedAt, fields, &err)
	}()

	entries, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	fields["count"] = len(entries)
	return writeAgenda(w, entries, format)
}

func resolveEntry(ctx context.Context, repo repository.SavedDeadlineRepo, idOrPrefix string) (*domain.SavedDeadline, error) {
	key := strings.TrimSpace(idOrPrefix)
	if key == "" {
		return nil, fmt.Errorf("saved deadline: empty id: %w", repository.ErrNotFound)
	}
	entry, err := repo.GetByID(ctx, key)
	if err == nil {
		return entry, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if len(key) < MinIDPrefix {
		return nil, fmt.Errorf("saved deadline %q (prefix needs at least %d characters): %w", key, MinIDPrefix, repository.ErrNotFound)
	}
	return repo.FindByIDPrefix(ctx, key)
}
