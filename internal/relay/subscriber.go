package relay

import "sync"

// State is the lifecycle position of a single subscriber.
type State int32

const (
	StateConnecting State = iota
	StateOpen
	StateClosedByClient
	StateClosedByError
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "CONNECTING"
	case StateOpen:
		return "OPEN"
	case StateClosedByClient:
		return "CLOSED_BY_CLIENT"
	case StateClosedByError:
		return "CLOSED_BY_ERROR"
	}
	return "UNKNOWN"
}

// IsClosed reports whether s is one of the terminal states.
func (s State) IsClosed() bool {
	return s == StateClosedByClient || s == StateClosedByError
}

// Subscriber is one open live update channel. Frames are queued in a
// bounded buffer; a full buffer counts as a failed delivery.
//
// The frames channel is never closed. Consumers select on Done to learn
// that the subscriber has been removed.
type Subscriber struct {
	id     string
	frames chan []byte
	done   chan struct{}

	mu    sync.Mutex
	state State
}

func newSubscriber(id string, buffer int) *Subscriber {
	return &Subscriber{
		id:     id,
		frames: make(chan []byte, buffer),
		done:   make(chan struct{}),
		state:  StateConnecting,
	}
}

// ID returns the subscriber's unique identifier.
func (s *Subscriber) ID() string { return s.id }

// Frames returns the queue of encoded frames waiting to be written.
func (s *Subscriber) Frames() <-chan []byte { return s.frames }

// Done is closed once the subscriber reaches a terminal state.
func (s *Subscriber) Done() <-chan struct{} { return s.done }

// State returns the current lifecycle state.
func (s *Subscriber) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// open moves a connecting subscriber to OPEN. It reports false when the
// subscriber was already closed.
func (s *Subscriber) open() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateConnecting {
		return false
	}
	s.state = StateOpen
	return true
}

// offer enqueues a frame without blocking. It fails when the subscriber is
// not OPEN or its buffer is full.
func (s *Subscriber) offer(frame []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateOpen {
		return false
	}
	select {
	case s.frames <- frame:
		return true
	default:
		return false
	}
}

// close moves the subscriber to a terminal state. Only the first call has an
// effect; it reports whether this call performed the transition.
func (s *Subscriber) close(final State) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.IsClosed() {
		return false
	}
	s.state = final
	close(s.done)
	return true
}
