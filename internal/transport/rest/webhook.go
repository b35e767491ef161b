package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/timesheet-relay/internal/domain"
	"github.com/heartmarshall/timesheet-relay/internal/relay"
)

// relayHub is the part of relay.Hub the webhook endpoints use.
type relayHub interface {
	Subscribe() (*relay.Subscriber, error)
	Stream(ctx context.Context, sub *relay.Subscriber, w relay.FlushWriter) error
	Publish(ctx context.Context, ev domain.ChangeEvent) (int, error)
}

// WebhookHandler serves the live update stream and the change ingestion
// endpoint that feeds it.
type WebhookHandler struct {
	hub      relayHub
	maxBytes int64
	log      *slog.Logger
}

// NewWebhookHandler creates a WebhookHandler. maxBytes caps ingested bodies.
func NewWebhookHandler(hub relayHub, maxBytes int64, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{hub: hub, maxBytes: maxBytes, log: logger.With("handler", "webhook")}
}

type ingestResponse struct {
	Success         bool   `json:"success"`
	ClientsNotified *int   `json:"clientsNotified,omitempty"`
	Error           string `json:"error,omitempty"`
}

const invalidPayload = "Invalid webhook payload"

// Publish handles POST /api/webhooks/timesheet.
func (h *WebhookHandler) Publish(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, ingestResponse{Error: "payload too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, ingestResponse{Error: invalidPayload})
		return
	}

	ev, err := relay.ParseEvent(body)
	if err != nil {
		h.log.WarnContext(r.Context(), "webhook rejected", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ingestResponse{Error: invalidPayload})
		return
	}

	n, err := h.hub.Publish(r.Context(), ev)
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, ingestResponse{Error: "relay unavailable"})
		return
	}

	h.log.InfoContext(r.Context(), "webhook relayed",
		slog.String("event", ev.Event),
		slog.String("model", ev.Model),
		slog.Int("clients_notified", n))

	writeJSON(w, http.StatusOK, ingestResponse{Success: true, ClientsNotified: &n})
}

// Subscribe handles GET /api/webhooks/timesheet. The response is an event
// stream that stays open until the client disconnects or the server shuts
// down.
func (h *WebhookHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	sub, err := h.hub.Subscribe()
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "relay unavailable")
		return
	}

	rc := http.NewResponseController(w)
	// The stream outlives any server-wide write timeout.
	_ = rc.SetWriteDeadline(time.Time{})

	hdr := w.Header()
	hdr.Set("Content-Type", "text/event-stream")
	hdr.Set("Cache-Control", "no-cache")
	hdr.Set("Connection", "keep-alive")
	hdr.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	h.log.DebugContext(r.Context(), "subscriber connected", slog.String("subscriber_id", sub.ID()))

	err = h.hub.Stream(r.Context(), sub, streamWriter{w: w, rc: rc})
	if err != nil {
		h.log.DebugContext(r.Context(), "subscriber dropped",
			slog.String("subscriber_id", sub.ID()),
			slog.String("error", err.Error()))
		return
	}
	h.log.DebugContext(r.Context(), "subscriber disconnected", slog.String("subscriber_id", sub.ID()))
}

// streamWriter flushes through http.ResponseController so wrapped
// response writers still reach the connection.
type streamWriter struct {
	w  http.ResponseWriter
	rc *http.ResponseController
}

func (s streamWriter) Write(p []byte) (int, error) { return s.w.Write(p) }
func (s streamWriter) Flush() error                { return s.rc.Flush() }
