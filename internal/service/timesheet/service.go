// Package timesheet lists, looks up, creates and deletes weekly timesheets.
package timesheet

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/timesheet-relay/internal/domain"
)

const (
	DefaultPageSize = 5
	MaxPageSize     = 100
)

type timesheetRepo interface {
	ListTimesheets(ctx context.Context, f domain.TimesheetFilter) (*domain.TimesheetPage, error)
	FindTimesheetByWeek(ctx context.Context, week, year int) (*domain.Timesheet, error)
	GetTimesheet(ctx context.Context, documentID string) (*domain.Timesheet, error)
	CreateTimesheet(ctx context.Context, ts domain.Timesheet) (*domain.Timesheet, error)
	DeleteTimesheet(ctx context.Context, documentID string) error
}

// Service provides timesheet queries and lifecycle operations.
type Service struct {
	timesheets timesheetRepo
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new timesheet service.
func NewService(
	log *slog.Logger,
	timesheets timesheetRepo,
) *Service {
	return &Service{
		timesheets: timesheets,
		log:        log.With("service", "timesheet"),
		now:        time.Now,
	}
}
