package relay

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/heartmarshall/timesheet-relay/internal/domain"
)

// webhookPayload is the subset of an inbound change notification the relay
// cares about. Unknown fields are ignored.
type webhookPayload struct {
	Event *string         `json:"event"`
	Model json.RawMessage `json:"model"`
}

// ParseEvent validates an inbound webhook body. It must be a JSON object
// with a non-empty string "event". A string "model" is carried along when
// present. The returned event has no timestamp; Publish stamps it.
func ParseEvent(body []byte) (domain.ChangeEvent, error) {
	trimmed := strings.TrimSpace(string(body))
	if !strings.HasPrefix(trimmed, "{") {
		return domain.ChangeEvent{}, fmt.Errorf("%w: body is not a JSON object", domain.ErrMalformedEvent)
	}

	var p webhookPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return domain.ChangeEvent{}, fmt.Errorf("%w: %v", domain.ErrMalformedEvent, err)
	}
	if p.Event == nil || strings.TrimSpace(*p.Event) == "" {
		return domain.ChangeEvent{}, fmt.Errorf("%w: event is required", domain.ErrMalformedEvent)
	}

	ev := domain.ChangeEvent{
		Type:  domain.EventTypeTimesheetUpdate,
		Event: *p.Event,
	}

	var model string
	if len(p.Model) > 0 && json.Unmarshal(p.Model, &model) == nil {
		ev.Model = model
	}

	return ev, nil
}
