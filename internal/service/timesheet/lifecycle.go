package timesheet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/timesheet-relay/internal/domain"
	"github.com/heartmarshall/timesheet-relay/internal/service/reconciler"
)

// Create stores an empty timesheet for the requested period.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Timesheet, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	start, end := input.StartDate, input.EndDate
	if start.IsZero() {
		start, end = domain.WeekRange(s.now().UTC())
	} else if end.IsZero() {
		_, end = domain.WeekRange(start)
	}

	created, err := s.timesheets.CreateTimesheet(ctx, domain.NewTimesheet(start, end))
	if err != nil {
		return nil, fmt.Errorf("timesheet.Create: %w", err)
	}

	s.log.InfoContext(ctx, "timesheet created",
		slog.String("timesheet_id", created.DocumentID),
		slog.Int("week", created.Week),
		slog.Int("year", created.Year))

	return created, nil
}

// Delete removes a timesheet.
func (s *Service) Delete(ctx context.Context, documentID string) error {
	if documentID == "" {
		return domain.NewValidationError("id", "required")
	}

	if err := s.timesheets.DeleteTimesheet(ctx, documentID); err != nil {
		return fmt.Errorf("timesheet.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "timesheet deleted", slog.String("timesheet_id", documentID))
	return nil
}

// Snapshot loads the stored timesheet as the prior state of a task mutation.
func (s *Service) Snapshot(ctx context.Context, documentID string) (reconciler.State, error) {
	if documentID == "" {
		return reconciler.State{}, domain.NewValidationError("id", "required")
	}

	ts, err := s.timesheets.GetTimesheet(ctx, documentID)
	if err != nil {
		return reconciler.State{}, fmt.Errorf("timesheet.Snapshot: %w", err)
	}

	id := ts.DocumentID
	if id == "" {
		id = documentID
	}
	return reconciler.State{
		TimesheetID: id,
		Tasks:       ts.Tasks,
		TotalHours:  ts.TotalHours,
		WorkStatus:  ts.WorkStatus,
	}, nil
}
