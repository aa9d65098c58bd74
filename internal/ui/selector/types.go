package selector

import "errors"

// Errors surfaced by the selector. Geometry problems are construction-time
// failures; everything else is a defined no-op.
var (
	ErrOutOfRange      = errors.New("selection out of range")
	ErrInvalidGeometry = errors.New("invalid window geometry")
)

// state is the full navigation state: the highlighted row relative to the
// window, and the content index mapped to row 0.
type state struct {
	row    int
	offset int
}

// command is a single navigation action resolved from a keystroke
type command int

const (
	cmdNone command = iota
	cmdUp
	cmdDown
	cmdPageUp
	cmdPageDown
	cmdHome
	cmdEnd
	cmdExit
)

// RowKind tells the render collaborator how to draw one window row
type RowKind int

const (
	// RowNormal draws the entry at Index unhighlighted
	RowNormal RowKind = iota
	// RowHighlight draws the entry at Index as the current selection
	RowHighlight
	// RowFill draws a filler row past the end of the content
	RowFill
)

// RenderInstruction designates one window-relative row to redraw. Index is
// only meaningful for RowNormal and RowHighlight.
type RenderInstruction struct {
	Row   int
	Kind  RowKind
	Index int
}
