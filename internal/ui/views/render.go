// Package views turns the widgets' abstract render and echo instructions
// into styled terminal text. Escape sequences and byte concerns stop here;
// the widget cores never see them.
package views

import (
	"strings"

	"lightbar/internal/ui/editor"
	"lightbar/internal/ui/selector"
)

// Renderer handles widget rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a renderer for a style set
func NewRenderer(styles *Styles) *Renderer {
	return &Renderer{styles: styles}
}

// Styles exposes the style set for hosts that render their own chrome
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Row renders one instruction against the content list, padded or truncated
// to the window width.
func (r *Renderer) Row(inst selector.RenderInstruction, content []string, width int) string {
	if width < 1 {
		return ""
	}
	if inst.Kind == selector.RowFill || inst.Index >= len(content) {
		return r.styles.Normal.Render(strings.Repeat(r.styles.Fill, width))
	}
	line := r.styles.Lowlight
	if inst.Kind == selector.RowHighlight {
		line = r.styles.Highlight
	}
	return line.Width(width).MaxWidth(width).Render(content[inst.Index])
}

// Window renders a full instruction sequence top to bottom
func (r *Renderer) Window(instructions []selector.RenderInstruction, content []string, width int) string {
	rows := make([]string, 0, len(instructions))
	for _, inst := range instructions {
		rows = append(rows, r.Row(inst, content, width))
	}
	return strings.Join(rows, "\n")
}

// Echo converts one editor echo instruction into terminal text. Erase backs
// over the previous cell with the pad character; alert is the bell.
func (r *Renderer) Echo(e editor.Echo) string {
	switch e.Kind {
	case editor.EchoErase:
		return "\b" + r.styles.Pad + "\b"
	case editor.EchoAlert:
		return "\a"
	default:
		return string(e.Rune)
	}
}

// EchoLine renders an echo stream into the visible line it leaves behind,
// for hosts that repaint rather than stream (a bubbletea view does).
func (r *Renderer) EchoLine(echoes []editor.Echo) string {
	var b strings.Builder
	for _, e := range echoes {
		switch e.Kind {
		case editor.EchoRune:
			b.WriteRune(e.Rune)
		case editor.EchoErase:
			s := b.String()
			if len(s) > 0 {
				rs := []rune(s)
				b.Reset()
				b.WriteString(string(rs[:len(rs)-1]))
			}
		}
	}
	return b.String()
}
