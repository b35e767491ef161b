package domain

import "time"

// DateLayout is the calendar date format used for task dates and week bounds.
const DateLayout = "2006-01-02"

// CompletedHoursThreshold is the weekly total at which a timesheet counts as completed.
const CompletedHoursThreshold = 40.0

// Task is a single logged work item. It belongs to exactly one timesheet
// through a foreign reference held by the timesheet.
type Task struct {
	ID           int
	DocumentID   string
	Title        string
	Date         time.Time
	Hours        float64
	TypeOfWork   WorkType
	Project      string
	AttachmentID *int
}

// Timesheet is the weekly aggregate of logged work.
//
// TotalHours and WorkStatus are denormalized: they are meant to equal the sum
// of task hours and the status derived from it, but the backend does not
// enforce this.
type Timesheet struct {
	ID         int
	DocumentID string
	Week       int
	Year       int
	Month      int
	StartDate  time.Time
	EndDate    time.Time
	DateRange  string
	TotalHours float64
	WorkStatus WorkStatus
	Tasks      []Task
}

// TaskIDs returns the document IDs of the timesheet's tasks in order.
func (t *Timesheet) TaskIDs() []string {
	ids := make([]string, 0, len(t.Tasks))
	for _, task := range t.Tasks {
		ids = append(ids, task.DocumentID)
	}
	return ids
}

// FindTask returns the task with the given document ID, or nil.
func (t *Timesheet) FindTask(documentID string) *Task {
	for i := range t.Tasks {
		if t.Tasks[i].DocumentID == documentID {
			return &t.Tasks[i]
		}
	}
	return nil
}

// SumHours adds up the hours of all tasks.
func (t *Timesheet) SumHours() float64 {
	var total float64
	for _, task := range t.Tasks {
		total += task.Hours
	}
	return total
}

// NewTimesheet builds an empty timesheet for the given period. The week
// number is the ISO week of start; year and month are taken from start.
func NewTimesheet(start, end time.Time) Timesheet {
	_, week := start.ISOWeek()
	return Timesheet{
		Week:       week,
		Year:       start.Year(),
		Month:      int(start.Month()),
		StartDate:  start,
		EndDate:    end,
		DateRange:  FormatDateRange(start, end),
		TotalHours: 0,
		WorkStatus: WorkStatusMissing,
		Tasks:      []Task{},
	}
}

// WeekRange returns the Monday and Sunday of the week containing t.
func WeekRange(t time.Time) (time.Time, time.Time) {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	monday := time.Date(t.Year(), t.Month(), t.Day()-(wd-1), 0, 0, 0, 0, t.Location())
	return monday, monday.AddDate(0, 0, 6)
}

// FormatDateRange renders a period like "Jan 5 - Jan 11, 2026".
func FormatDateRange(start, end time.Time) string {
	return start.Format("Jan 2") + " - " + end.Format("Jan 2") + ", " + end.Format("2006")
}

// TimesheetFilter selects a page of timesheets. An empty Status matches all.
type TimesheetFilter struct {
	Page     int
	PageSize int
	Status   WorkStatus
}

// TimesheetPage is one page of timesheets with pagination totals.
type TimesheetPage struct {
	Items     []Timesheet
	Page      int
	PageSize  int
	PageCount int
	Total     int
}

// AggregateUpdate is the parent write that follows a task mutation.
// A nil TaskIDs leaves the task relation untouched.
type AggregateUpdate struct {
	TotalHours float64
	WorkStatus WorkStatus
	TaskIDs    []string
}

// Attachment is an uploaded file that a task can reference.
type Attachment struct {
	ID   int
	Name string
	URL  string
	Mime string
	Size float64
}
