package relay

import (
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/timesheet-relay/internal/domain"
)

// PingFrame is the comment-only keep-alive frame. Consumers must ignore it.
var PingFrame = []byte(": ping\n\n")

// connectedMessage is the greeting sent to every new subscriber.
type connectedMessage struct {
	Type string `json:"type"`
}

// EncodeData renders v as a single "data: <json>\n\n" frame.
func EncodeData(v any) ([]byte, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("relay: encode frame: %w", err)
	}
	frame := make([]byte, 0, len(payload)+8)
	frame = append(frame, "data: "...)
	frame = append(frame, payload...)
	frame = append(frame, '\n', '\n')
	return frame, nil
}

func connectedFrame() []byte {
	frame, _ := EncodeData(connectedMessage{Type: domain.EventTypeConnected})
	return frame
}
