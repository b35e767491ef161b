package reconciler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/timesheet-relay/internal/domain"
)

// OnTaskCreated stores a new task and adds its hours to the timesheet.
// The aggregate write links the task by appending its ID to the existing
// ones; locally the new task goes first.
func (s *Service) OnTaskCreated(ctx context.Context, st State, input TaskInput) (*Result, error) {
	if st.TimesheetID == "" {
		return nil, domain.NewValidationError("timesheet_id", "required")
	}
	if err := input.Validate(s.now().UTC()); err != nil {
		return nil, err
	}

	created, err := s.tasks.CreateTask(ctx, input.task())
	if err != nil {
		return nil, fmt.Errorf("reconciler.OnTaskCreated create task: %w", err)
	}

	newTotal := st.TotalHours + input.Hours
	newStatus := DeriveStatus(newTotal)

	next := State{
		TimesheetID: st.TimesheetID,
		Tasks:       append([]domain.Task{*created}, st.Tasks...),
		TotalHours:  newTotal,
		WorkStatus:  newStatus,
	}

	res := s.finish(ctx, "create", created, next, domain.AggregateUpdate{
		TotalHours: newTotal,
		WorkStatus: newStatus,
		TaskIDs:    append(st.taskIDs(), created.DocumentID),
	})

	s.log.InfoContext(ctx, "task created",
		slog.String("timesheet_id", st.TimesheetID),
		slog.String("task_id", created.DocumentID),
		slog.Float64("total_hours", newTotal),
		slog.String("commit", res.Commit.String()))

	s.publish(ctx, EventTaskCreate)
	return res, nil
}
