package rest

import (
	"context"
	"net/http"
	"time"
)

// backendPinger defines the minimal interface for content backend health checks.
type backendPinger interface {
	Ping(ctx context.Context) error
}

// subscriberCounter reports how many live update streams are open.
type subscriberCounter interface {
	Len() int
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	backend backendPinger
	relay   subscriberCounter
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(backend backendPinger, relay subscriberCounter, version string) *HealthHandler {
	return &HealthHandler{backend: backend, relay: relay, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status      string                `json:"status"`
	Version     string                `json:"version,omitempty"`
	Components  map[string]CompStatus `json:"components,omitempty"`
	Subscribers *int                  `json:"subscribers,omitempty"`
	Timestamp   time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings the backend: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.backend.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check: backend latency, version and the number
// of open live update streams.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	start := time.Now()
	err := h.backend.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		components["backend"] = CompStatus{Status: "down"}
		overallStatus = "down"
	} else {
		components["backend"] = CompStatus{
			Status:  "ok",
			Latency: latency.String(),
		}
	}

	resp := HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	}
	if h.relay != nil {
		n := h.relay.Len()
		resp.Subscribers = &n
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, resp)
}
