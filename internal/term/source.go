package term

import (
	"errors"
	"time"
)

// ErrClosed is returned by ReadEvent once the source is closed and drained
var ErrClosed = errors.New("event source closed")

// ChanSource is a channel-backed EventSource. The host side sends without
// blocking (Send drops nothing as long as the buffer holds) while a widget
// loop reads synchronously.
type ChanSource struct {
	ch chan Event
}

// NewChanSource creates a source buffered for the given number of pending
// events.
func NewChanSource(buffer int) *ChanSource {
	return &ChanSource{ch: make(chan Event, buffer)}
}

// Send queues an event for the reading side
func (s *ChanSource) Send(ev Event) {
	s.ch <- ev
}

// Close ends the stream; pending events are still delivered
func (s *ChanSource) Close() {
	close(s.ch)
}

// ReadEvent returns the next event, blocking forever on a zero timeout or
// returning TimeoutEvent after the given duration.
func (s *ChanSource) ReadEvent(timeout time.Duration) (Event, error) {
	if timeout <= 0 {
		ev, ok := <-s.ch
		if !ok {
			return nil, ErrClosed
		}
		return ev, nil
	}
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case ev, ok := <-s.ch:
		if !ok {
			return nil, ErrClosed
		}
		return ev, nil
	case <-t.C:
		return TimeoutEvent{}, nil
	}
}
