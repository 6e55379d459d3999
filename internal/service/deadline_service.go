package service

import (
	"context"
	"time"

	"github.com/alexanderramin/mehil/internal/deadline"
)

type deadlineService struct {
	engine   *deadline.Engine
	observer UseCaseObserver
}

func NewDeadlineService(engine *deadline.Engine, observers ...UseCaseObserver) DeadlineService {
	if engine == nil {
		engine = deadline.Default()
	}
	return &deadlineService{
		engine:   engine,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Calculate never rejects a request; degenerate input still yields a date.
// The error return is kept for callers that treat every use case alike.
func (s *deadlineService) Calculate(ctx context.Context, req deadline.Request) (res deadline.Result, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"unit":   string(req.DurationUnit),
		"value":  req.DurationValue,
		"recess": req.ApplyJudicialRecessExtension,
	}
	defer func() {
		fields["due"] = res.FinalDueDate.Format(deadline.DateLayout)
		fields["adjustments"] = len(res.Adjustments)
		observe(ctx, s.observer, "deadline.calculate", startedAt, fields, &err)
	}()

	if err = ctx.Err(); err != nil {
		return deadline.Result{}, err
	}
	return s.engine.Compute(req), nil
}

func (s *deadlineService) Calendar() deadline.Calendar {
	return s.engine.Calendar()
}
