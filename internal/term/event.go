// Package term defines the boundary between the widget cores and the
// terminal/session collaborator: a tagged event type decided once at the
// edge, and the source that blocks for events so the widgets never have to.
package term

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Event is one resolved occurrence from the session: a keystroke, a named
// out-of-band payload, or a timeout. The variant is fixed at the boundary so
// widget logic switches on types, never on kind strings.
type Event interface {
	isEvent()
}

// KeyEvent carries one decoded keystroke
type KeyEvent struct {
	Key tea.KeyMsg
}

// DataEvent carries a non-keyboard session occurrence that widgets pass
// through to their caller untouched.
type DataEvent struct {
	Kind    string
	Payload any
}

// TimeoutEvent reports that no event arrived within the requested window
type TimeoutEvent struct{}

func (KeyEvent) isEvent()     {}
func (DataEvent) isEvent()    {}
func (TimeoutEvent) isEvent() {}

// EventSource supplies events to a synchronous widget loop. A zero timeout
// blocks until an event arrives; a positive timeout yields TimeoutEvent when
// nothing does. Blocking happens here, never inside widget logic.
type EventSource interface {
	ReadEvent(timeout time.Duration) (Event, error)
}
