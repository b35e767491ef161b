package cms

import (
	"context"
	"net/http"
	"net/url"

	"github.com/heartmarshall/timesheet-relay/internal/domain"
)

// CreateTask stores a new task. The task's IDs are ignored and the stored
// record is returned.
func (c *Client) CreateTask(ctx context.Context, task domain.Task) (*domain.Task, error) {
	var resp envelope[apiTask]
	body := dataPayload[taskPayload]{Data: toTaskPayload(task)}
	if err := c.doJSON(ctx, "create task", http.MethodPost, "/api/tasks", nil, body, &resp); err != nil {
		return nil, err
	}
	created := mapTask(resp.Data)
	return &created, nil
}

// UpdateTask replaces the editable fields of a task.
func (c *Client) UpdateTask(ctx context.Context, documentID string, task domain.Task) (*domain.Task, error) {
	var resp envelope[apiTask]
	body := dataPayload[taskPayload]{Data: toTaskPayload(task)}
	if err := c.doJSON(ctx, "update task", http.MethodPut, "/api/tasks/"+url.PathEscape(documentID), nil, body, &resp); err != nil {
		return nil, err
	}
	updated := mapTask(resp.Data)
	return &updated, nil
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, documentID string) error {
	return c.doJSON(ctx, "delete task", http.MethodDelete, "/api/tasks/"+url.PathEscape(documentID), nil, nil, nil)
}
