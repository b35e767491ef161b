// Package reconciler keeps a timesheet's aggregate (total hours and work
// status) in step with mutations of its tasks. The backend has no
// transactions, so every mutation is two writes: the task first, then the
// recomputed parent. Result reports whether the second write landed.
package reconciler

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/timesheet-relay/internal/domain"
)

// taskStore persists individual tasks.
type taskStore interface {
	CreateTask(ctx context.Context, task domain.Task) (*domain.Task, error)
	UpdateTask(ctx context.Context, documentID string, task domain.Task) (*domain.Task, error)
	DeleteTask(ctx context.Context, documentID string) error
}

// timesheetStore persists the parent aggregate.
type timesheetStore interface {
	UpdateTimesheetAggregate(ctx context.Context, documentID string, upd domain.AggregateUpdate) error
}

// notifier fans a change out to live viewers.
type notifier interface {
	Publish(ctx context.Context, ev domain.ChangeEvent) (int, error)
}

// Change event names published after a task write succeeds.
const (
	EventTaskCreate = "task.create"
	EventTaskUpdate = "task.update"
	EventTaskDelete = "task.delete"

	eventModel = "task"
)

// Service implements the two-step task/aggregate writes.
type Service struct {
	log        *slog.Logger
	tasks      taskStore
	timesheets timesheetStore
	notify     notifier
	now        func() time.Time
}

// NewService creates a reconciler. notify may be nil.
func NewService(
	logger *slog.Logger,
	tasks taskStore,
	timesheets timesheetStore,
	notify notifier,
) *Service {
	return &Service{
		log:        logger.With("service", "reconciler"),
		tasks:      tasks,
		timesheets: timesheets,
		notify:     notify,
		now:        time.Now,
	}
}

// State is the caller's view of a timesheet before a mutation.
type State struct {
	TimesheetID string
	Tasks       []domain.Task
	TotalHours  float64
	WorkStatus  domain.WorkStatus
}

// taskIDs returns the document IDs of the tasks in order.
func (s State) taskIDs() []string {
	ids := make([]string, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		ids = append(ids, t.DocumentID)
	}
	return ids
}

func (s State) findTask(documentID string) (int, bool) {
	for i, t := range s.Tasks {
		if t.DocumentID == documentID {
			return i, true
		}
	}
	return -1, false
}

// Commit tells how far a two-step mutation got.
type Commit int

const (
	// FullyCommitted means both the task and the aggregate were written.
	FullyCommitted Commit = iota
	// PartiallyCommitted means the task was written but the aggregate was not.
	PartiallyCommitted
)

func (c Commit) String() string {
	switch c {
	case FullyCommitted:
		return "FULLY_COMMITTED"
	case PartiallyCommitted:
		return "PARTIALLY_COMMITTED"
	default:
		return "UNKNOWN"
	}
}

// Result is returned whenever the task write succeeded.
type Result struct {
	Commit Commit
	// ParentStale is set when the stored aggregate no longer matches State.
	ParentStale bool
	// ParentErr is the aggregate write error, if any.
	ParentErr error
	// Task is the created or updated task, or the removed one on delete.
	Task *domain.Task
	// State is the local view after the mutation.
	State State
}

// finish writes the aggregate and builds the result. A failed write is
// logged and reported, never retried.
func (s *Service) finish(ctx context.Context, op string, task *domain.Task, next State, upd domain.AggregateUpdate) *Result {
	res := &Result{Commit: FullyCommitted, Task: task, State: next}

	if err := s.timesheets.UpdateTimesheetAggregate(ctx, next.TimesheetID, upd); err != nil {
		s.log.ErrorContext(ctx, "aggregate update failed",
			slog.String("op", op),
			slog.String("timesheet_id", next.TimesheetID),
			slog.String("task_id", task.DocumentID),
			slog.Float64("total_hours", upd.TotalHours),
			slog.String("error", err.Error()))
		res.Commit = PartiallyCommitted
		res.ParentStale = true
		res.ParentErr = err
	}

	return res
}

// publish notifies live viewers. Failures only get logged.
func (s *Service) publish(ctx context.Context, event string) {
	if s.notify == nil {
		return
	}
	if _, err := s.notify.Publish(ctx, domain.ChangeEvent{
		Type:  domain.EventTypeTimesheetUpdate,
		Event: event,
		Model: eventModel,
	}); err != nil {
		s.log.WarnContext(ctx, "change notification dropped",
			slog.String("event", event),
			slog.String("error", err.Error()))
	}
}
