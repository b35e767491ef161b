package cms

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/heartmarshall/timesheet-relay/internal/domain"
)

// ListTimesheets returns one page of timesheets, newest week first.
func (c *Client) ListTimesheets(ctx context.Context, f domain.TimesheetFilter) (*domain.TimesheetPage, error) {
	q := url.Values{}
	q.Set("populate", "*")
	q.Set("sort", "week:desc")
	q.Set("pagination[page]", strconv.Itoa(f.Page))
	q.Set("pagination[pageSize]", strconv.Itoa(f.PageSize))
	if f.Status != "" {
		q.Set("filters[workStatus][$eq]", f.Status.String())
	}

	var resp envelope[[]apiTimesheet]
	if err := c.doJSON(ctx, "list timesheets", http.MethodGet, "/api/timesheets", q, nil, &resp); err != nil {
		return nil, err
	}

	page := &domain.TimesheetPage{
		Items:     make([]domain.Timesheet, 0, len(resp.Data)),
		Page:      resp.Meta.Pagination.Page,
		PageSize:  resp.Meta.Pagination.PageSize,
		PageCount: resp.Meta.Pagination.PageCount,
		Total:     resp.Meta.Pagination.Total,
	}
	for _, ts := range resp.Data {
		page.Items = append(page.Items, mapTimesheet(ts))
	}
	return page, nil
}

// FindTimesheetByWeek returns the first timesheet for the given week and year.
func (c *Client) FindTimesheetByWeek(ctx context.Context, week, year int) (*domain.Timesheet, error) {
	q := url.Values{}
	q.Set("populate", "*")
	q.Set("filters[week][$eq]", strconv.Itoa(week))
	q.Set("filters[year][$eq]", strconv.Itoa(year))
	q.Set("pagination[pageSize]", "1")

	var resp envelope[[]apiTimesheet]
	if err := c.doJSON(ctx, "find timesheet", http.MethodGet, "/api/timesheets", q, nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("cms: find timesheet week %d/%d: %w", week, year, domain.ErrNotFound)
	}

	ts := mapTimesheet(resp.Data[0])
	return &ts, nil
}

// GetTimesheet fetches a timesheet with its tasks.
func (c *Client) GetTimesheet(ctx context.Context, documentID string) (*domain.Timesheet, error) {
	q := url.Values{}
	q.Set("populate", "*")

	var resp envelope[apiTimesheet]
	if err := c.doJSON(ctx, "get timesheet", http.MethodGet, "/api/timesheets/"+url.PathEscape(documentID), q, nil, &resp); err != nil {
		return nil, err
	}

	ts := mapTimesheet(resp.Data)
	return &ts, nil
}

// CreateTimesheet stores a new timesheet.
func (c *Client) CreateTimesheet(ctx context.Context, ts domain.Timesheet) (*domain.Timesheet, error) {
	body := dataPayload[timesheetPayload]{Data: timesheetPayload{
		Week:       ts.Week,
		Year:       ts.Year,
		Month:      ts.Month,
		StartDate:  formatDate(ts.StartDate),
		EndDate:    formatDate(ts.EndDate),
		DateRange:  ts.DateRange,
		TotalHours: ts.TotalHours,
		WorkStatus: ts.WorkStatus.String(),
		Tasks:      ts.TaskIDs(),
	}}

	var resp envelope[apiTimesheet]
	if err := c.doJSON(ctx, "create timesheet", http.MethodPost, "/api/timesheets", nil, body, &resp); err != nil {
		return nil, err
	}

	created := mapTimesheet(resp.Data)
	return &created, nil
}

// UpdateTimesheetAggregate writes the parent aggregate after a task mutation.
func (c *Client) UpdateTimesheetAggregate(ctx context.Context, documentID string, upd domain.AggregateUpdate) error {
	body := dataPayload[aggregatePayload]{Data: aggregatePayload{
		Tasks:      upd.TaskIDs,
		TotalHours: upd.TotalHours,
		WorkStatus: upd.WorkStatus.String(),
	}}
	return c.doJSON(ctx, "update timesheet", http.MethodPut, "/api/timesheets/"+url.PathEscape(documentID), nil, body, nil)
}

// DeleteTimesheet removes a timesheet.
func (c *Client) DeleteTimesheet(ctx context.Context, documentID string) error {
	return c.doJSON(ctx, "delete timesheet", http.MethodDelete, "/api/timesheets/"+url.PathEscape(documentID), nil, nil, nil)
}
