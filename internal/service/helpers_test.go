package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/mehil/internal/deadline"
	"github.com/alexanderramin/mehil/internal/repository"
	"github.com/alexanderramin/mehil/internal/testutil"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) last() UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

func setupAgenda(t *testing.T, observers ...UseCaseObserver) (AgendaService, *repository.SQLiteSavedDeadlineRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSavedDeadlineRepo(database)
	return NewAgendaService(repo, testutil.NewTestUoW(database), deadline.Default(), observers...), repo
}

// engineWithHoliday returns an engine whose calendar adds one holiday.
func engineWithHoliday(t *testing.T, m time.Month, d int) *deadline.Engine {
	t.Helper()
	cal := deadline.DefaultCalendar()
	cal.Holidays = append(cal.Holidays, deadline.Holiday{
		MonthDay: deadline.MonthDay{Month: m, Day: d},
		Name:     "Test Tatili",
	})
	engine, err := deadline.NewEngine(cal)
	require.NoError(t, err)
	return engine
}

func dayRequest(ref time.Time, days int) deadline.Request {
	return deadline.Request{
		ReferenceDate:                ref,
		DurationValue:                days,
		DurationUnit:                 deadline.UnitDay,
		ApplyJudicialRecessExtension: true,
	}
}
