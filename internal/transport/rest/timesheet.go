package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/timesheet-relay/internal/domain"
	"github.com/heartmarshall/timesheet-relay/internal/service/reconciler"
	"github.com/heartmarshall/timesheet-relay/internal/service/timesheet"
)

const (
	maxTaskBodyBytes  = 64 << 10
	maxUploadBytes    = 10 << 20
	uploadFormField   = "file"
	weekNotFoundError = "No timesheet found for this week"
)

type timesheetService interface {
	List(ctx context.Context, input timesheet.ListInput) (*domain.TimesheetPage, error)
	GetByWeek(ctx context.Context, input timesheet.WeekInput) (*domain.Timesheet, error)
	Create(ctx context.Context, input timesheet.CreateInput) (*domain.Timesheet, error)
	Delete(ctx context.Context, documentID string) error
	Snapshot(ctx context.Context, documentID string) (reconciler.State, error)
}

type taskReconciler interface {
	OnTaskCreated(ctx context.Context, st reconciler.State, input reconciler.TaskInput) (*reconciler.Result, error)
	OnTaskUpdated(ctx context.Context, st reconciler.State, taskID string, input reconciler.TaskInput) (*reconciler.Result, error)
	OnTaskDeleted(ctx context.Context, st reconciler.State, taskID string) (*reconciler.Result, error)
}

type uploader interface {
	Upload(ctx context.Context, filename string, content io.Reader) (*domain.Attachment, error)
}

// TimesheetHandler serves timesheet, task and upload endpoints on behalf of
// the signed-in user.
type TimesheetHandler struct {
	timesheets timesheetService
	tasks      taskReconciler
	uploads    uploader
	log        *slog.Logger
}

// NewTimesheetHandler creates a TimesheetHandler.
func NewTimesheetHandler(timesheets timesheetService, tasks taskReconciler, uploads uploader, logger *slog.Logger) *TimesheetHandler {
	return &TimesheetHandler{
		timesheets: timesheets,
		tasks:      tasks,
		uploads:    uploads,
		log:        logger.With("handler", "timesheet"),
	}
}

// ---------------------------------------------------------------------------
// Wire types
// ---------------------------------------------------------------------------

type taskResponse struct {
	ID         int     `json:"id"`
	DocumentID string  `json:"documentId"`
	Title      string  `json:"title"`
	Date       string  `json:"date"`
	Hours      float64 `json:"hours"`
	TypeOfWork string  `json:"typeOfWork"`
	Projects   string  `json:"projects"`
	Attachment *int    `json:"attachment"`
}

type timesheetResponse struct {
	ID         int            `json:"id"`
	DocumentID string         `json:"documentId"`
	Week       int            `json:"week"`
	Year       int            `json:"year"`
	Month      int            `json:"month"`
	StartDate  string         `json:"startDate"`
	EndDate    string         `json:"endDate"`
	DateRange  string         `json:"dateRange"`
	TotalHours float64        `json:"totalHours"`
	WorkStatus string         `json:"workStatus"`
	Tasks      []taskResponse `json:"tasks"`
}

type paginationResponse struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

type listResponse struct {
	Data []timesheetResponse `json:"data"`
	Meta struct {
		Pagination paginationResponse `json:"pagination"`
	} `json:"meta"`
}

type aggregateResponse struct {
	TotalHours float64        `json:"totalHours"`
	WorkStatus string         `json:"workStatus"`
	Tasks      []taskResponse `json:"tasks"`
}

type mutationResponse struct {
	Task        *taskResponse     `json:"task,omitempty"`
	Timesheet   aggregateResponse `json:"timesheet"`
	Commit      string            `json:"commit"`
	ParentStale bool              `json:"parentStale"`
}

type taskRequest struct {
	Title      string  `json:"title"`
	Date       string  `json:"date"`
	Hours      float64 `json:"hours"`
	TypeOfWork string  `json:"typeOfWork"`
	Projects   string  `json:"projects"`
	Attachment *int    `json:"attachment"`
}

type createTimesheetRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type attachmentResponse struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	URL  string  `json:"url"`
	Mime string  `json:"mime"`
	Size float64 `json:"size"`
}

// ---------------------------------------------------------------------------
// Timesheets
// ---------------------------------------------------------------------------

// List handles GET /api/timesheets?page=&pageSize=&status=.
func (h *TimesheetHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var fields []domain.FieldError
	page, ok := queryInt(q.Get("page"))
	if !ok {
		fields = append(fields, domain.FieldError{Field: "page", Message: "must be an integer"})
	}
	pageSize, ok := queryInt(q.Get("pageSize"))
	if !ok {
		fields = append(fields, domain.FieldError{Field: "pageSize", Message: "must be an integer"})
	}
	if len(fields) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(fields))
		return
	}

	res, err := h.timesheets.List(r.Context(), timesheet.ListInput{
		Page:     page,
		PageSize: pageSize,
		Status:   domain.WorkStatus(q.Get("status")),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var resp listResponse
	resp.Data = make([]timesheetResponse, 0, len(res.Items))
	for i := range res.Items {
		resp.Data = append(resp.Data, toTimesheetResponse(&res.Items[i]))
	}
	resp.Meta.Pagination = paginationResponse{
		Page:      res.Page,
		PageSize:  res.PageSize,
		PageCount: res.PageCount,
		Total:     res.Total,
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetByWeek handles GET /api/timesheets/week/{week}/{year}.
func (h *TimesheetHandler) GetByWeek(w http.ResponseWriter, r *http.Request) {
	week, err := strconv.Atoi(r.PathValue("week"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("week", "must be an integer"))
		return
	}
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("year", "must be an integer"))
		return
	}

	ts, err := h.timesheets.GetByWeek(r.Context(), timesheet.WeekInput{Week: week, Year: year})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, weekNotFoundError)
			return
		}
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTimesheetResponse(ts))
}

// Create handles POST /api/timesheets. An empty body creates the current week.
func (h *TimesheetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTimesheetRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, maxTaskBodyBytes, &req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	var input timesheet.CreateInput
	var fields []domain.FieldError
	if d, ok := parseDate(req.StartDate); ok {
		input.StartDate = d
	} else {
		fields = append(fields, domain.FieldError{Field: "startDate", Message: "must be YYYY-MM-DD"})
	}
	if d, ok := parseDate(req.EndDate); ok {
		input.EndDate = d
	} else {
		fields = append(fields, domain.FieldError{Field: "endDate", Message: "must be YYYY-MM-DD"})
	}
	if len(fields) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(fields))
		return
	}

	ts, err := h.timesheets.Create(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTimesheetResponse(ts))
}

// Delete handles DELETE /api/timesheets/{id}.
func (h *TimesheetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.timesheets.Delete(r.Context(), r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Tasks
// ---------------------------------------------------------------------------

// CreateTask handles POST /api/timesheets/{id}/tasks.
func (h *TimesheetHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	input, ok := h.readTask(w, r)
	if !ok {
		return
	}
	st, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	res, err := h.tasks.OnTaskCreated(r.Context(), st, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMutationResponse(res))
}

// UpdateTask handles PUT /api/timesheets/{id}/tasks/{taskId}.
func (h *TimesheetHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	input, ok := h.readTask(w, r)
	if !ok {
		return
	}
	st, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	res, err := h.tasks.OnTaskUpdated(r.Context(), st, r.PathValue("taskId"), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMutationResponse(res))
}

// DeleteTask handles DELETE /api/timesheets/{id}/tasks/{taskId}.
func (h *TimesheetHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	st, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	res, err := h.tasks.OnTaskDeleted(r.Context(), st, r.PathValue("taskId"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMutationResponse(res))
}

// Upload handles POST /api/uploads with a multipart "file" field.
func (h *TimesheetHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		handleError(h.log, w, r, domain.NewValidationError(uploadFormField, "required"))
		return
	}
	defer file.Close()

	att, err := h.uploads.Upload(r.Context(), header.Filename, file)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, attachmentResponse{
		ID:   att.ID,
		Name: att.Name,
		URL:  att.URL,
		Mime: att.Mime,
		Size: att.Size,
	})
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// snapshot loads the prior state of the timesheet named in the path.
func (h *TimesheetHandler) snapshot(w http.ResponseWriter, r *http.Request) (reconciler.State, bool) {
	st, err := h.timesheets.Snapshot(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return reconciler.State{}, false
	}
	return st, true
}

func (h *TimesheetHandler) readTask(w http.ResponseWriter, r *http.Request) (reconciler.TaskInput, bool) {
	var req taskRequest
	if err := decodeJSON(w, r, maxTaskBodyBytes, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return reconciler.TaskInput{}, false
	}

	date, ok := parseDate(req.Date)
	if !ok {
		handleError(h.log, w, r, domain.NewValidationError("date", "must be YYYY-MM-DD"))
		return reconciler.TaskInput{}, false
	}

	return reconciler.TaskInput{
		Title:        req.Title,
		Date:         date,
		Hours:        req.Hours,
		TypeOfWork:   domain.WorkType(req.TypeOfWork),
		Project:      req.Projects,
		AttachmentID: req.Attachment,
	}, true
}

// parseDate accepts an empty string as the zero time.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// queryInt accepts an empty string as zero.
func queryInt(s string) (int, bool) {
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.DateLayout)
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:         t.ID,
		DocumentID: t.DocumentID,
		Title:      t.Title,
		Date:       formatDate(t.Date),
		Hours:      t.Hours,
		TypeOfWork: string(t.TypeOfWork),
		Projects:   t.Project,
		Attachment: t.AttachmentID,
	}
}

func toTaskResponses(tasks []domain.Task) []taskResponse {
	out := make([]taskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, toTaskResponse(&tasks[i]))
	}
	return out
}

func toTimesheetResponse(ts *domain.Timesheet) timesheetResponse {
	return timesheetResponse{
		ID:         ts.ID,
		DocumentID: ts.DocumentID,
		Week:       ts.Week,
		Year:       ts.Year,
		Month:      ts.Month,
		StartDate:  formatDate(ts.StartDate),
		EndDate:    formatDate(ts.EndDate),
		DateRange:  ts.DateRange,
		TotalHours: ts.TotalHours,
		WorkStatus: string(ts.WorkStatus),
		Tasks:      toTaskResponses(ts.Tasks),
	}
}

func toMutationResponse(res *reconciler.Result) mutationResponse {
	resp := mutationResponse{
		Timesheet: aggregateResponse{
			TotalHours: res.State.TotalHours,
			WorkStatus: string(res.State.WorkStatus),
			Tasks:      toTaskResponses(res.State.Tasks),
		},
		Commit:      res.Commit.String(),
		ParentStale: res.ParentStale,
	}
	if res.Task != nil {
		t := toTaskResponse(res.Task)
		resp.Task = &t
	}
	return resp
}
