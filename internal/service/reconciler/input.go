package reconciler

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/timesheet-relay/internal/domain"
)

const (
	minTitleLen = 3
	maxTitleLen = 200
	minHours    = 0.5
	maxHours    = 24
	// hoursStep keeps every total exactly representable, so a timesheet
	// emptied by deletes sums back to zero.
	hoursStep = 0.5
)

// TaskInput holds the editable fields of a task.
type TaskInput struct {
	Title        string
	Date         time.Time
	Hours        float64
	TypeOfWork   domain.WorkType
	Project      string
	AttachmentID *int
}

// Validate checks all fields and collects all errors. now bounds the date.
func (i TaskInput) Validate(now time.Time) error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	switch n := utf8.RuneCountInString(title); {
	case n == 0:
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	case n < minTitleLen:
		errs = append(errs, domain.FieldError{Field: "title", Message: "min 3 characters"})
	case n > maxTitleLen:
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	} else if i.Date.After(endOfDay(now)) {
		errs = append(errs, domain.FieldError{Field: "date", Message: "cannot be in the future"})
	}

	if i.Hours < minHours {
		errs = append(errs, domain.FieldError{Field: "hours", Message: "min 0.5"})
	} else if i.Hours > maxHours {
		errs = append(errs, domain.FieldError{Field: "hours", Message: "max 24"})
	} else if steps := i.Hours / hoursStep; steps != math.Trunc(steps) {
		errs = append(errs, domain.FieldError{Field: "hours", Message: "must be a multiple of 0.5"})
	}

	if i.TypeOfWork == "" {
		errs = append(errs, domain.FieldError{Field: "typeOfWork", Message: "required"})
	} else if !i.TypeOfWork.IsValid() {
		errs = append(errs, domain.FieldError{Field: "typeOfWork", Message: "unknown type of work"})
	}

	if strings.TrimSpace(i.Project) == "" {
		errs = append(errs, domain.FieldError{Field: "projects", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i TaskInput) task() domain.Task {
	return domain.Task{
		Title:        strings.TrimSpace(i.Title),
		Date:         i.Date,
		Hours:        i.Hours,
		TypeOfWork:   i.TypeOfWork,
		Project:      strings.TrimSpace(i.Project),
		AttachmentID: i.AttachmentID,
	}
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, t.Location())
}
