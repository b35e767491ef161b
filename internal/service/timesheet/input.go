package timesheet

import (
	"time"

	"github.com/heartmarshall/timesheet-relay/internal/domain"
)

// ListInput holds the parameters for listing timesheets.
type ListInput struct {
	Page     int
	PageSize int
	Status   domain.WorkStatus
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be non-negative"})
	}
	if i.PageSize < 0 {
		errs = append(errs, domain.FieldError{Field: "pageSize", Message: "must be non-negative"})
	}
	if i.PageSize > MaxPageSize {
		errs = append(errs, domain.FieldError{Field: "pageSize", Message: "max 100"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateInput holds the period of a new timesheet. A zero StartDate means
// the current week; a zero EndDate means the Sunday of StartDate's week.
type CreateInput struct {
	StartDate time.Time
	EndDate   time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	if !i.StartDate.IsZero() && !i.EndDate.IsZero() && i.EndDate.Before(i.StartDate) {
		return domain.NewValidationError("endDate", "must be after start date")
	}
	return nil
}

// WeekInput identifies a timesheet by ISO week.
type WeekInput struct {
	Week int
	Year int
}

// Validate checks all fields and collects all errors.
func (i WeekInput) Validate() error {
	var errs []domain.FieldError
	if i.Week < 1 || i.Week > 53 {
		errs = append(errs, domain.FieldError{Field: "week", Message: "must be between 1 and 53"})
	}
	if i.Year < 1970 || i.Year > 9999 {
		errs = append(errs, domain.FieldError{Field: "year", Message: "out of range"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
