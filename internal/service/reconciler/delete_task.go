package reconciler

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/timesheet-relay/internal/domain"
)

// OnTaskDeleted removes a task and subtracts its hours from the total.
// Removing the last task resets the total to zero and sends the
// timesheet back to MISSING. If the task is not in
// st the deletion still goes through but the aggregate is left alone.
func (s *Service) OnTaskDeleted(ctx context.Context, st State, taskID string) (*Result, error) {
	if st.TimesheetID == "" {
		return nil, domain.NewValidationError("timesheet_id", "required")
	}
	if taskID == "" {
		return nil, domain.NewValidationError("task_id", "required")
	}

	if err := s.tasks.DeleteTask(ctx, taskID); err != nil {
		return nil, fmt.Errorf("reconciler.OnTaskDeleted delete task: %w", err)
	}
	defer s.publish(ctx, EventTaskDelete)

	idx, ok := st.findTask(taskID)
	if !ok {
		s.log.WarnContext(ctx, "deleted task not in local state",
			slog.String("timesheet_id", st.TimesheetID),
			slog.String("task_id", taskID))
		return &Result{Commit: FullyCommitted, State: st}, nil
	}

	removed := st.Tasks[idx]
	remaining := slices.Delete(slices.Clone(st.Tasks), idx, idx+1)
	newTotal := st.TotalHours - removed.Hours
	if len(remaining) == 0 {
		// Nothing left to sum; drop any drift carried in from stored hours.
		newTotal = 0
	}
	newStatus := StatusAfterDelete(newTotal)

	next := State{
		TimesheetID: st.TimesheetID,
		Tasks:       remaining,
		TotalHours:  newTotal,
		WorkStatus:  newStatus,
	}

	res := s.finish(ctx, "delete", &removed, next, domain.AggregateUpdate{
		TotalHours: newTotal,
		WorkStatus: newStatus,
	})

	s.log.InfoContext(ctx, "task deleted",
		slog.String("timesheet_id", st.TimesheetID),
		slog.String("task_id", taskID),
		slog.Float64("total_hours", newTotal),
		slog.String("commit", res.Commit.String()))

	return res, nil
}
