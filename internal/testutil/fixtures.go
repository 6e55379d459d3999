package testutil

import (
	"time"

	"github.com/alexanderramin/mehil/internal/deadline"
	"github.com/alexanderramin/mehil/internal/domain"
	"github.com/google/uuid"
)

// SavedDeadlineOption customizes a fixture before its due date is computed.
type SavedDeadlineOption func(*domain.SavedDeadline)

func WithReferenceDate(d time.Time) SavedDeadlineOption {
	return func(s *domain.SavedDeadline) {
		s.ReferenceDate = d
	}
}

func WithDuration(value int, unit deadline.Unit) SavedDeadlineOption {
	return func(s *domain.SavedDeadline) {
		s.DurationValue = value
		s.DurationUnit = unit
	}
}

func WithRecess(apply bool) SavedDeadlineOption {
	return func(s *domain.SavedDeadline) {
		s.ApplyJudicialRecess = apply
	}
}

func WithCreatedAt(t time.Time) SavedDeadlineOption {
	return func(s *domain.SavedDeadline) {
		s.CreatedAt = t
	}
}

func WithID(id string) SavedDeadlineOption {
	return func(s *domain.SavedDeadline) {
		s.ID = id
	}
}

// NewTestSavedDeadline returns an entry for a 15-day period from 1 March
// 2024 with the recess extension on, computed against the default calendar.
// Timestamps are truncated to seconds to survive a database round trip.
func NewTestSavedDeadline(title string, opts ...SavedDeadlineOption) *domain.SavedDeadline {
	now := time.Now().UTC().Truncate(time.Second)
	s := &domain.SavedDeadline{
		ID:                  uuid.New().String(),
		Title:               title,
		ReferenceDate:       deadline.Date(2024, time.March, 1),
		DurationValue:       15,
		DurationUnit:        deadline.UnitDay,
		ApplyJudicialRecess: true,
		CreatedAt:           now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.ApplyResult(deadline.Compute(s.Request()), s.CreatedAt)
	return s
}
