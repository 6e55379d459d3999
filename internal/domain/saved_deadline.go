package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/alexanderramin/mehil/internal/deadline"
)

// ErrTitleRequired is returned when an agenda entry has no title.
var ErrTitleRequired = errors.New("title is required")

// SavedDeadline is an agenda entry: a computed deadline the user chose to
// keep under a title. The request fields are retained so the due date can be
// recomputed when the calendar changes.
type SavedDeadline struct {
	ID                  string
	Title               string
	ReferenceDate       time.Time
	DurationValue       int
	DurationUnit        deadline.Unit
	ApplyJudicialRecess bool

	DueDate         time.Time
	DateLabel       string
	RecessTriggered bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSavedDeadline builds an entry from a request and its result.
func NewSavedDeadline(id, title string, req deadline.Request, res deadline.Result, now time.Time) (*SavedDeadline, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	s := &SavedDeadline{
		ID:                  id,
		Title:               title,
		ReferenceDate:       deadline.DateOf(req.ReferenceDate),
		DurationValue:       req.DurationValue,
		DurationUnit:        req.DurationUnit,
		ApplyJudicialRecess: req.ApplyJudicialRecessExtension,
		CreatedAt:           now,
	}
	s.ApplyResult(res, now)
	return s, nil
}

// Request rebuilds the engine input the entry was computed from.
func (s *SavedDeadline) Request() deadline.Request {
	return deadline.Request{
		ReferenceDate:                s.ReferenceDate,
		DurationValue:                s.DurationValue,
		DurationUnit:                 s.DurationUnit,
		ApplyJudicialRecessExtension: s.ApplyJudicialRecess,
	}
}

// ApplyResult stores a (re)computed result and reports whether the due date
// moved.
func (s *SavedDeadline) ApplyResult(res deadline.Result, now time.Time) bool {
	changed := !s.DueDate.Equal(res.FinalDueDate)
	s.DueDate = res.FinalDueDate
	s.DateLabel = deadline.FormatLong(res.FinalDueDate)
	s.RecessTriggered = res.JudicialRecessTriggered
	s.UpdatedAt = now
	return changed
}

// DaysLeft returns the number of calendar days from today until the due
// date; negative once the deadline has passed.
func (s *SavedDeadline) DaysLeft(today time.Time) int {
	return int(s.DueDate.Sub(deadline.DateOf(today)).Hours() / 24)
}

// IsOverdue reports whether the last day is before today.
func (s *SavedDeadline) IsOverdue(today time.Time) bool {
	return s.DaysLeft(today) < 0
}

// DisplayID returns the first 8 characters of the ID.
func (s *SavedDeadline) DisplayID() string {
	if len(s.ID) >= 8 {
		return s.ID[:8]
	}
	return s.ID
}
