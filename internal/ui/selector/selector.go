// Package selector implements a scrolling "lightbar" view-model: it maps a
// content list onto a fixed-height window, tracks the highlighted entry and
// produces minimal redraw instructions for a render collaborator. It performs
// no terminal I/O itself.
package selector

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Selector owns the mapping from a content list to a bounded visible window.
// Content is replaced wholesale via Replace; keystrokes are fed one at a time
// to ProcessKey. All operations are synchronous and O(1).
type Selector struct {
	content []string
	height  int
	keys    KeyMap

	st    state
	prev  state
	moved bool
	quit  bool
}

// New creates a selector for a window of the given height. The keymap is
// copied; callers may share one KeyMap value across instances safely.
func New(height int, keys KeyMap) (*Selector, error) {
	if height < 1 {
		return nil, ErrInvalidGeometry
	}
	return &Selector{height: height, keys: keys}, nil
}

// Replace installs a new content list. Selection and scroll position carry
// over as far as the new list allows; when the list shrank past the current
// selection the window is pulled back and the selection clamped to the new
// last entry.
func (s *Selector) Replace(entries []string) {
	s.content = entries
	next := normalize(s.st, s.height, len(entries))
	s.prev = s.st
	s.moved = next != s.st
	s.st = next
}

// ProcessKey consumes one keystroke, applies at most one navigation command
// and returns the minimal render instructions for the change: nil when
// nothing moved, a full window when the page shifted, and exactly two rows
// otherwise.
func (s *Selector) ProcessKey(msg tea.KeyMsg) []RenderInstruction {
	s.moved = false

	cmd := s.match(msg)
	if cmd == cmdNone {
		return nil
	}
	if cmd == cmdExit {
		s.quit = true
		return nil
	}

	next := step(s.st, cmd, s.height, len(s.content))
	if next == s.st {
		return nil
	}
	s.prev = s.st
	s.st = next
	s.moved = true

	if s.st.offset != s.prev.offset {
		// page shift, every visible row changed
		return s.FullRender()
	}
	return []RenderInstruction{
		{Row: s.prev.row, Kind: RowNormal, Index: s.prev.offset + s.prev.row},
		{Row: s.st.row, Kind: RowHighlight, Index: s.st.offset + s.st.row},
	}
}

func (s *Selector) match(msg tea.KeyMsg) command {
	switch {
	case key.Matches(msg, s.keys.Home):
		return cmdHome
	case key.Matches(msg, s.keys.End):
		return cmdEnd
	case key.Matches(msg, s.keys.PageUp):
		return cmdPageUp
	case key.Matches(msg, s.keys.PageDown):
		return cmdPageDown
	case key.Matches(msg, s.keys.Up):
		return cmdUp
	case key.Matches(msg, s.keys.Down):
		return cmdDown
	case key.Matches(msg, s.keys.Exit):
		return cmdExit
	}
	return cmdNone
}

// FullRender returns one instruction per visible row, top to bottom. Rows
// past the end of the content render as fill.
func (s *Selector) FullRender() []RenderInstruction {
	out := make([]RenderInstruction, 0, s.height)
	for y := 0; y < s.height; y++ {
		idx := s.st.offset + y
		if idx >= len(s.content) {
			out = append(out, RenderInstruction{Row: y, Kind: RowFill})
			continue
		}
		kind := RowNormal
		if y == s.st.row {
			kind = RowHighlight
		}
		out = append(out, RenderInstruction{Row: y, Kind: kind, Index: idx})
	}
	return out
}

// Selected returns the entry at the current absolute index. It fails with
// ErrOutOfRange on empty content so callers check length instead of relying
// on a sentinel value.
func (s *Selector) Selected() (string, error) {
	if len(s.content) == 0 {
		return "", ErrOutOfRange
	}
	return s.content[s.Index()], nil
}

// Index returns the absolute index of the current selection
func (s *Selector) Index() int {
	return s.st.offset + s.st.row
}

// LastIndex returns the absolute index before the most recent change
func (s *Selector) LastIndex() int {
	return s.prev.offset + s.prev.row
}

// Position returns the window-relative row and the scroll offset
func (s *Selector) Position() (row, offset int) {
	return s.st.row, s.st.offset
}

// Moved reports whether the last command changed the selection or the scroll
// offset. Hosts use it to decide whether to re-query the selection.
func (s *Selector) Moved() bool {
	return s.moved
}

// Quit reports whether the last keystroke was a terminating one
func (s *Selector) Quit() bool {
	return s.quit
}

// Len returns the number of content entries
func (s *Selector) Len() int {
	return len(s.content)
}

// Height returns the window height in rows
func (s *Selector) Height() int {
	return s.height
}

// step applies one navigation command to a position. It is a pure function:
// no Selector bookkeeping happens here, only the transition itself.
func step(st state, cmd command, height, count int) state {
	if count == 0 {
		return state{}
	}
	switch cmd {
	case cmdDown:
		if st.offset+st.row >= count-1 {
			return st
		}
		if st.row+1 < height {
			st.row++
		} else {
			st.offset++
		}
	case cmdUp:
		if st.offset+st.row == 0 {
			return st
		}
		if st.row > 0 {
			st.row--
		} else {
			st.offset--
		}
	case cmdPageDown:
		switch {
		case count <= height:
			return state{row: count - 1}
		case st.offset+height < count-height:
			st.offset += height
		case st.offset != count-height:
			// land on the last page without overshooting
			st.offset = count - height
		default:
			return step(st, cmdEnd, height, count)
		}
	case cmdPageUp:
		switch {
		case st.offset-height > 0:
			st.offset -= height
		case st.offset > 0:
			st.offset = 0
		default:
			return step(st, cmdHome, height, count)
		}
	case cmdHome:
		return state{}
	case cmdEnd:
		if count <= height {
			return state{row: count - 1}
		}
		return state{row: height - 1, offset: count - height}
	}
	return normalize(st, height, count)
}

// normalize re-establishes the selector invariant after a mutation: first
// pull the window back while its bottom extends past the content, keeping
// the highlighted entry stable, then clamp the row until the absolute index
// is in bounds.
func normalize(st state, height, count int) state {
	if count == 0 {
		return state{}
	}
	for st.offset > 0 && st.offset+height > count {
		st.offset--
		st.row++
	}
	for st.row > 0 && st.offset+st.row >= count {
		st.row--
	}
	return st
}
