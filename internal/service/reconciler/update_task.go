package reconciler

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/timesheet-relay/internal/domain"
)

// OnTaskUpdated stores the edited task and shifts the total by the change
// in its hours. The task must be part of st.
func (s *Service) OnTaskUpdated(ctx context.Context, st State, taskID string, input TaskInput) (*Result, error) {
	if st.TimesheetID == "" {
		return nil, domain.NewValidationError("timesheet_id", "required")
	}
	idx, ok := st.findTask(taskID)
	if !ok {
		return nil, fmt.Errorf("reconciler.OnTaskUpdated task %s: %w", taskID, domain.ErrNotFound)
	}
	if err := input.Validate(s.now().UTC()); err != nil {
		return nil, err
	}

	oldHours := st.Tasks[idx].Hours

	updated, err := s.tasks.UpdateTask(ctx, taskID, input.task())
	if err != nil {
		return nil, fmt.Errorf("reconciler.OnTaskUpdated update task: %w", err)
	}
	if updated.DocumentID == "" {
		updated.DocumentID = taskID
	}

	delta := input.Hours - oldHours
	newTotal := st.TotalHours + delta
	newStatus := DeriveStatus(newTotal)

	tasks := slices.Clone(st.Tasks)
	tasks[idx] = *updated

	next := State{
		TimesheetID: st.TimesheetID,
		Tasks:       tasks,
		TotalHours:  newTotal,
		WorkStatus:  newStatus,
	}

	res := s.finish(ctx, "update", updated, next, domain.AggregateUpdate{
		TotalHours: newTotal,
		WorkStatus: newStatus,
	})

	s.log.InfoContext(ctx, "task updated",
		slog.String("timesheet_id", st.TimesheetID),
		slog.String("task_id", taskID),
		slog.Float64("delta", delta),
		slog.Float64("total_hours", newTotal),
		slog.String("commit", res.Commit.String()))

	s.publish(ctx, EventTaskUpdate)
	return res, nil
}
