package cms

import (
	"time"

	"github.com/heartmarshall/timesheet-relay/internal/domain"
)

// envelope is the {data, meta} wrapper around every backend response.
type envelope[T any] struct {
	Data T       `json:"data"`
	Meta apiMeta `json:"meta"`
}

type apiMeta struct {
	Pagination apiPagination `json:"pagination"`
}

type apiPagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// apiErrorBody is the backend's error shape.
type apiErrorBody struct {
	Error struct {
		Status  int    `json:"status"`
		Name    string `json:"name"`
		Message string `json:"message"`
	} `json:"error"`
}

// apiTimesheet carries the period either as flat fields or nested in the
// timesheet_date component, depending on how the record was populated.
type apiTimesheet struct {
	ID            int               `json:"id"`
	DocumentID    string            `json:"documentId"`
	Week          int               `json:"week"`
	Year          int               `json:"year"`
	Month         int               `json:"month"`
	StartDate     string            `json:"startDate"`
	EndDate       string            `json:"endDate"`
	DateRange     string            `json:"dateRange"`
	TotalHours    float64           `json:"totalHours"`
	WorkStatus    string            `json:"workStatus"`
	Tasks         []apiTask         `json:"tasks"`
	TimesheetDate *apiTimesheetDate `json:"timesheet_date"`
}

type apiTimesheetDate struct {
	Week      int    `json:"week"`
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	DateRange string `json:"dateRange"`
}

type apiTask struct {
	ID         int       `json:"id"`
	DocumentID string    `json:"documentId"`
	Title      string    `json:"title"`
	Date       string    `json:"date"`
	Hours      float64   `json:"hours"`
	TypeOfWork string    `json:"typeOfWork"`
	Projects   string    `json:"projects"`
	Attachment *apiMedia `json:"attachment"`
}

type apiMedia struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	URL  string  `json:"url"`
	Mime string  `json:"mime"`
	Size float64 `json:"size"`
}

type apiAuthResponse struct {
	JWT  string  `json:"jwt"`
	User apiUser `json:"user"`
}

type apiUser struct {
	ID         int    `json:"id"`
	DocumentID string `json:"documentId"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Confirmed  bool   `json:"confirmed"`
	Blocked    bool   `json:"blocked"`
}

// Write payloads.

type dataPayload[T any] struct {
	Data T `json:"data"`
}

type taskPayload struct {
	Title      string  `json:"title"`
	Date       string  `json:"date"`
	Hours      float64 `json:"hours"`
	TypeOfWork string  `json:"typeOfWork"`
	Projects   string  `json:"projects"`
	Attachment *int    `json:"attachment,omitempty"`
}

type timesheetPayload struct {
	Week       int      `json:"week"`
	Year       int      `json:"year"`
	Month      int      `json:"month"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	DateRange  string   `json:"dateRange"`
	TotalHours float64  `json:"totalHours"`
	WorkStatus string   `json:"workStatus"`
	Tasks      []string `json:"tasks"`
}

type aggregatePayload struct {
	Tasks      []string `json:"tasks,omitempty"`
	TotalHours float64  `json:"totalHours"`
	WorkStatus string   `json:"workStatus"`
}

type loginPayload struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type registerPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func mapTimesheet(a apiTimesheet) domain.Timesheet {
	ts := domain.Timesheet{
		ID:         a.ID,
		DocumentID: a.DocumentID,
		Week:       a.Week,
		Year:       a.Year,
		Month:      a.Month,
		StartDate:  parseDate(a.StartDate),
		EndDate:    parseDate(a.EndDate),
		DateRange:  a.DateRange,
		TotalHours: a.TotalHours,
		WorkStatus: domain.WorkStatus(a.WorkStatus),
		Tasks:      make([]domain.Task, 0, len(a.Tasks)),
	}
	if d := a.TimesheetDate; d != nil {
		ts.Week = d.Week
		ts.Year = d.Year
		ts.Month = d.Month
		ts.StartDate = parseDate(d.StartDate)
		ts.EndDate = parseDate(d.EndDate)
		ts.DateRange = d.DateRange
	}
	for _, t := range a.Tasks {
		ts.Tasks = append(ts.Tasks, mapTask(t))
	}
	return ts
}

func mapTask(a apiTask) domain.Task {
	task := domain.Task{
		ID:         a.ID,
		DocumentID: a.DocumentID,
		Title:      a.Title,
		Date:       parseDate(a.Date),
		Hours:      a.Hours,
		TypeOfWork: domain.WorkType(a.TypeOfWork),
		Project:    a.Projects,
	}
	if a.Attachment != nil {
		id := a.Attachment.ID
		task.AttachmentID = &id
	}
	return task
}

func mapUser(a apiUser) domain.User {
	id := a.ID
	doc := a.DocumentID
	return domain.User{
		ID:         &id,
		DocumentID: &doc,
		Username:   a.Username,
		Email:      a.Email,
		Confirmed:  a.Confirmed,
		Blocked:    a.Blocked,
	}
}

func toTaskPayload(t domain.Task) taskPayload {
	return taskPayload{
		Title:      t.Title,
		Date:       formatDate(t.Date),
		Hours:      t.Hours,
		TypeOfWork: t.TypeOfWork.String(),
		Projects:   t.Project,
		Attachment: t.AttachmentID,
	}
}

// parseDate accepts a calendar date or a full timestamp. Unparseable
// values map to the zero time.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(domain.DateLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.DateLayout)
}
