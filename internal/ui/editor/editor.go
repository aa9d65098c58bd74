// Package editor implements a single-line input editor: append and
// remove-at-end editing with plain or masked echo. Like the selector it
// emits abstract echo instructions and leaves byte generation to the render
// collaborator.
package editor

import (
	"errors"
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"lightbar/internal/term"
)

// ErrInvalidGeometry rejects a non-positive maximum width at construction
var ErrInvalidGeometry = errors.New("invalid editor geometry")

// Outcome classifies what one event (or one Edit run) produced
type Outcome int

const (
	// OutcomeContinue means the event was consumed (or ignored) and editing goes on
	OutcomeContinue Outcome = iota
	// OutcomeSubmitted means the terminator key accepted the buffer
	OutcomeSubmitted
	// OutcomeCancelled means the exit key abandoned the input; the value is
	// discarded so callers can tell "cancelled" from "empty string submitted"
	OutcomeCancelled
	// OutcomePassThrough means a non-keyboard event arrived and is handed
	// back to the caller with the value accumulated so far
	OutcomePassThrough
)

// EchoKind tags one echo instruction
type EchoKind int

const (
	// EchoRune echoes a single character (the mask character in hidden mode)
	EchoRune EchoKind = iota
	// EchoErase backs over the last echoed character
	EchoErase
	// EchoAlert rings the terminal bell
	EchoAlert
)

// Echo is one abstract echo instruction; Rune is set for EchoRune only
type Echo struct {
	Kind EchoKind
	Rune rune
}

// Options configures one editing session
type Options struct {
	Value       string        // initial buffer contents
	MaxWidth    int           // maximum number of characters accepted
	Mask        rune          // when non-zero, echoed in place of every typed rune
	Interactive bool          // return from Edit after a single event
	Silent      bool          // suppress alert instructions
	Timeout     time.Duration // per-event wait in Edit; zero blocks
}

// Result is the outcome of an Edit run
type Result struct {
	Value   string     // final buffer; empty when cancelled
	Outcome Outcome
	Event   term.Event // the pass-through event, when applicable
	Echoes  []Echo     // every echo instruction produced during the run
}

// Editor holds the mutable line buffer. Each instance serves one editing
// session and is driven one event at a time through Feed.
type Editor struct {
	opts Options
	buf  []rune
}

// New validates the options and seeds the buffer with the initial value
func New(opts Options) (*Editor, error) {
	if opts.MaxWidth < 1 {
		return nil, ErrInvalidGeometry
	}
	buf := []rune(opts.Value)
	if len(buf) > opts.MaxWidth {
		buf = buf[:opts.MaxWidth]
	}
	return &Editor{opts: opts, buf: buf}, nil
}

// Value returns the current buffer contents
func (e *Editor) Value() string {
	return string(e.buf)
}

// InitialEcho returns the instructions that display the seeded value,
// masked when a mask rune is configured.
func (e *Editor) InitialEcho() []Echo {
	out := make([]Echo, 0, len(e.buf))
	for _, r := range e.buf {
		out = append(out, Echo{Kind: EchoRune, Rune: e.echoRune(r)})
	}
	return out
}

// Feed processes exactly one event and returns what happened plus any echo
// instructions. Unrecognized keycodes are dropped silently.
func (e *Editor) Feed(ev term.Event) (Outcome, []Echo) {
	kev, ok := ev.(term.KeyEvent)
	if !ok {
		// non-keyboard event, hand it back untouched
		return OutcomePassThrough, nil
	}

	msg := kev.Key
	switch msg.Type {
	case tea.KeyEsc:
		return OutcomeCancelled, nil
	case tea.KeyEnter:
		return OutcomeSubmitted, nil
	case tea.KeyBackspace:
		if len(e.buf) == 0 {
			return OutcomeContinue, e.alert()
		}
		e.buf = e.buf[:len(e.buf)-1]
		return OutcomeContinue, []Echo{{Kind: EchoErase}}
	case tea.KeyRunes, tea.KeySpace:
		runes := msg.Runes
		if msg.Type == tea.KeySpace && len(runes) == 0 {
			runes = []rune{' '}
		}
		var echoes []Echo
		for _, r := range runes {
			if !unicode.IsPrint(r) {
				continue
			}
			if len(e.buf) >= e.opts.MaxWidth {
				echoes = append(echoes, e.alert()...)
				continue
			}
			e.buf = append(e.buf, r)
			echoes = append(echoes, Echo{Kind: EchoRune, Rune: e.echoRune(r)})
		}
		return OutcomeContinue, echoes
	}
	return OutcomeContinue, nil
}

func (e *Editor) echoRune(r rune) rune {
	if e.opts.Mask != 0 {
		return e.opts.Mask
	}
	return r
}

func (e *Editor) alert() []Echo {
	if e.opts.Silent {
		return nil
	}
	return []Echo{{Kind: EchoAlert}}
}

// Edit runs a full editing session against an event source: echo the initial
// value once, then feed events until a terminal outcome. With
// Options.Interactive it returns after the first event so callers can
// interleave other work between keystrokes. When Options.Timeout elapses
// with no event, the resulting TimeoutEvent comes back as a pass-through.
func Edit(src term.EventSource, opts Options) (Result, error) {
	e, err := New(opts)
	if err != nil {
		return Result{}, err
	}
	echoes := e.InitialEcho()

	for {
		ev, err := src.ReadEvent(opts.Timeout)
		if err != nil {
			return Result{Value: e.Value(), Outcome: OutcomeContinue, Echoes: echoes}, err
		}
		out, es := e.Feed(ev)
		echoes = append(echoes, es...)

		switch out {
		case OutcomeSubmitted:
			return Result{Value: e.Value(), Outcome: out, Echoes: echoes}, nil
		case OutcomeCancelled:
			return Result{Outcome: out, Echoes: echoes}, nil
		case OutcomePassThrough:
			return Result{Value: e.Value(), Outcome: out, Event: ev, Echoes: echoes}, nil
		}
		if opts.Interactive {
			return Result{Value: e.Value(), Outcome: out, Echoes: echoes}, nil
		}
	}
}
