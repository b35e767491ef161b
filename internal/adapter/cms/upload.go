package cms

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/heartmarshall/timesheet-relay/internal/domain"
)

// Upload stores a file and returns the attachment a task can reference.
func (c *Client) Upload(ctx context.Context, filename string, content io.Reader) (*domain.Attachment, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("files", filename)
	if err != nil {
		return nil, fmt.Errorf("cms: upload: create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("cms: upload: copy content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("cms: upload: close form: %w", err)
	}

	var resp []apiMedia
	if err := c.do(ctx, "upload", http.MethodPost, "/api/upload", nil, mw.FormDataContentType(), buf.Bytes(), &resp); err != nil {
		return nil, err
	}
	if len(resp) == 0 {
		return nil, fmt.Errorf("cms: upload: empty response: %w", domain.ErrUpstream)
	}

	m := resp[0]
	return &domain.Attachment{ID: m.ID, Name: m.Name, URL: m.URL, Mime: m.Mime, Size: m.Size}, nil
}
