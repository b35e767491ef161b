package timesheet

import (
	"context"
	"fmt"

	"github.com/heartmarshall/timesheet-relay/internal/domain"
)

// List returns one page of timesheets, newest week first.
func (s *Service) List(ctx context.Context, input ListInput) (*domain.TimesheetPage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := domain.TimesheetFilter{Page: input.Page, PageSize: input.PageSize, Status: input.Status}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.PageSize == 0 {
		f.PageSize = DefaultPageSize
	}

	page, err := s.timesheets.ListTimesheets(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("timesheet.List: %w", err)
	}
	return page, nil
}

// GetByWeek returns the timesheet for the given ISO week.
func (s *Service) GetByWeek(ctx context.Context, input WeekInput) (*domain.Timesheet, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ts, err := s.timesheets.FindTimesheetByWeek(ctx, input.Week, input.Year)
	if err != nil {
		return nil, fmt.Errorf("timesheet.GetByWeek: %w", err)
	}
	return ts, nil
}
