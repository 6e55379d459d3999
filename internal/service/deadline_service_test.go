package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/alexanderramin/mehil/internal/deadline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeadlineService_Calculate(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewDeadlineService(nil, obs)

	req := dayRequest(deadline.Date(2024, 8, 10), 10)
	res, err := svc.Calculate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, deadline.Compute(req), res)
	assert.Equal(t, deadline.Date(2024, 9, 9), res.FinalDueDate)

	ev := obs.last()
	assert.Equal(t, "deadline.calculate", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, "2024-09-09", ev.Fields["due"])
	assert.Equal(t, "day", ev.Fields["unit"])
}

func TestDeadlineService_CalculateDegenerateInput(t *testing.T) {
	svc := NewDeadlineService(deadline.Default())
	req := deadline.Request{ReferenceDate: deadline.Date(2024, 3, 4), DurationValue: -5, DurationUnit: "year"}

	res, err := svc.Calculate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, deadline.Date(2024, 3, 5), res.FinalDueDate)
}

func TestDeadlineService_CalculateCanceled(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewDeadlineService(nil, obs)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Calculate(ctx, dayRequest(deadline.Date(2024, 3, 4), 1))
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, obs.last().Success)
}

func TestDeadlineService_CalendarUsesEngine(t *testing.T) {
	svc := NewDeadlineService(engineWithHoliday(t, 3, 19))
	cal := svc.Calendar()
	assert.Len(t, cal.Holidays, 8)

	cal.Holidays = nil
	assert.Len(t, svc.Calendar().Holidays, 8, "calendar must be returned as a copy")
}

func TestLogUseCaseObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)
	svc := NewDeadlineService(nil, obs)

	_, err := svc.Calculate(context.Background(), dayRequest(deadline.Date(2024, 3, 1), 15))
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "use_case=deadline.calculate")
	assert.Contains(t, out, "success=true")
	assert.Contains(t, out, "due=2024-03-18")

	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
