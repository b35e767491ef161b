// Package relay fans out change notifications to live update subscribers.
//
// A Hub is constructed at server start and closed at shutdown. Delivery is
// best effort: events are never persisted or replayed, a subscriber whose
// queue is full or whose connection fails is dropped, and a publisher never
// waits for any subscriber.
package relay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/timesheet-relay/internal/domain"
)

// ErrHubClosed is returned by Subscribe after Close.
var ErrHubClosed = errors.New("relay: hub closed")

const (
	DefaultKeepAlive = 30 * time.Second
	DefaultBuffer    = 16
)

// Options tune a Hub. Zero values fall back to the defaults.
type Options struct {
	KeepAlive time.Duration
	Buffer    int
	Now       func() time.Time
}

// FlushWriter is the output side of one stream, typically an HTTP response.
type FlushWriter interface {
	io.Writer
	Flush() error
}

// Hub is the registry of open subscribers.
type Hub struct {
	log  *slog.Logger
	opts Options

	mu     sync.Mutex
	subs   map[string]*Subscriber
	closed bool
}

// NewHub creates an empty Hub.
func NewHub(logger *slog.Logger, opts Options) *Hub {
	if opts.KeepAlive <= 0 {
		opts.KeepAlive = DefaultKeepAlive
	}
	if opts.Buffer <= 0 {
		opts.Buffer = DefaultBuffer
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Hub{
		log:  logger.With("component", "relay"),
		opts: opts,
		subs: make(map[string]*Subscriber),
	}
}

// Subscribe opens a new subscriber, queues the connected greeting and
// registers it. The caller must eventually call Unsubscribe or hand the
// subscriber to Stream, which does so on every exit path.
func (h *Hub) Subscribe() (*Subscriber, error) {
	sub := newSubscriber(uuid.NewString(), h.opts.Buffer)
	sub.frames <- connectedFrame()

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		sub.close(StateClosedByError)
		return nil, ErrHubClosed
	}
	sub.open()
	h.subs[sub.id] = sub

	h.log.Debug("subscriber connected", slog.String("subscriber_id", sub.id), slog.Int("subscribers", len(h.subs)))
	return sub, nil
}

// Unsubscribe removes sub and moves it to the given terminal state.
// Calling it more than once is a no-op.
func (h *Hub) Unsubscribe(sub *Subscriber, final State) {
	h.mu.Lock()
	delete(h.subs, sub.id)
	remaining := len(h.subs)
	h.mu.Unlock()

	if sub.close(final) {
		h.log.Debug("subscriber removed",
			slog.String("subscriber_id", sub.id),
			slog.String("state", final.String()),
			slog.Int("subscribers", remaining),
		)
	}
}

// Publish stamps ev with the current time and queues it on every open
// subscriber. Subscribers that cannot take the frame are removed. It returns
// the number of subscribers that accepted the event.
func (h *Hub) Publish(ctx context.Context, ev domain.ChangeEvent) (int, error) {
	if ev.Type == "" {
		ev.Type = domain.EventTypeTimesheetUpdate
	}
	ev.Timestamp = h.opts.Now().UTC()

	frame, err := EncodeData(ev)
	if err != nil {
		return 0, err
	}

	var failed []*Subscriber
	notified := 0

	h.mu.Lock()
	for id, sub := range h.subs {
		if sub.offer(frame) {
			notified++
			continue
		}
		delete(h.subs, id)
		failed = append(failed, sub)
	}
	h.mu.Unlock()

	for _, sub := range failed {
		sub.close(StateClosedByError)
	}

	h.log.InfoContext(ctx, "event published",
		slog.String("event", ev.Event),
		slog.Int("notified", notified),
		slog.Int("dropped", len(failed)),
	)

	return notified, nil
}

// Stream writes sub's frames to w until ctx ends, the subscriber is removed
// or a write fails. A keep-alive comment is written every KeepAlive interval.
// On return the subscriber is unregistered and its timer stopped.
func (h *Hub) Stream(ctx context.Context, sub *Subscriber, w FlushWriter) error {
	ticker := time.NewTicker(h.opts.KeepAlive)
	final := StateClosedByClient
	defer func() {
		ticker.Stop()
		h.Unsubscribe(sub, final)
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sub.Done():
			return nil
		case frame := <-sub.Frames():
			if sub.State() != StateOpen {
				return nil
			}
			if err := writeFrame(w, frame); err != nil {
				final = StateClosedByError
				return fmt.Errorf("relay: write frame: %w", err)
			}
		case <-ticker.C:
			if sub.State() != StateOpen {
				return nil
			}
			if err := writeFrame(w, PingFrame); err != nil {
				final = StateClosedByError
				return fmt.Errorf("relay: write keep-alive: %w", err)
			}
		}
	}
}

// Serve subscribes and streams until the caller goes away.
func (h *Hub) Serve(ctx context.Context, w FlushWriter) error {
	sub, err := h.Subscribe()
	if err != nil {
		return err
	}
	return h.Stream(ctx, sub, w)
}

// Len returns the number of registered subscribers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close drops every subscriber and rejects new subscriptions.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	subs := h.subs
	h.subs = make(map[string]*Subscriber)
	h.mu.Unlock()

	for _, sub := range subs {
		sub.close(StateClosedByError)
	}
	h.log.Info("relay closed", slog.Int("dropped", len(subs)))
}

func writeFrame(w FlushWriter, frame []byte) error {
	if _, err := w.Write(frame); err != nil {
		return err
	}
	return w.Flush()
}
