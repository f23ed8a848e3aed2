package termhost

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/listbox/pkg/listbox"
)

type line struct {
	text   string
	state  listbox.StateFlags
	focus  bool
	header bool
	drop   bool
}

// LineCanvas collects one frame of list box paint requests for a window of
// terminal lines. One list box unit is one line or one column.
type LineCanvas struct {
	top   int
	width int
	lines []line
}

// NewLineCanvas covers list box lines [top, top+height).
func NewLineCanvas(top, width, height int) *LineCanvas {
	return &LineCanvas{
		top:   top,
		width: max(width, 0),
		lines: make([]line, max(height, 0)),
	}
}

func (c *LineCanvas) line(y int32) *line {
	i := int(y) - c.top
	if i < 0 || i >= len(c.lines) {
		return nil
	}
	return &c.lines[i]
}

// RenderBackground records row states. The list box background carries no
// row state and leaves lines untouched.
func (c *LineCanvas) RenderBackground(r listbox.Rect, state listbox.StateFlags) {
	state &^= listbox.StateFocused
	if state == listbox.StateNormal {
		return
	}
	for y := r.Y; y < r.Y+r.H; y++ {
		if l := c.line(y); l != nil {
			l.state |= state
		}
	}
}

func (c *LineCanvas) RenderFocus(r listbox.Rect) {
	for y := r.Y; y < r.Y+r.H; y++ {
		if l := c.line(y); l != nil {
			l.focus = true
		}
	}
}

// WriteText places text, one line per terminal line, inside r.
func (c *LineCanvas) WriteText(r listbox.Rect, text string, header, drop bool) {
	for i, s := range strings.Split(text, "\n") {
		if int32(i) >= r.H {
			return
		}
		if l := c.line(r.Y + int32(i)); l != nil {
			l.text = s
			l.header = header
			l.drop = drop
		}
	}
}

// Render draws the frame. Each line starts with a one-column focus gutter.
func (c *LineCanvas) Render(s Styles, ringing bool) string {
	marker := s.FocusMarker
	if ringing {
		marker = s.Bell
	}
	gutter := lipgloss.Width(marker.String())
	textWidth := max(c.width-gutter, 0)

	out := make([]string, len(c.lines))
	for i, l := range c.lines {
		prefix := strings.Repeat(" ", gutter)
		if l.focus {
			prefix = marker.String()
		}

		style := s.rowStyle(l.state)
		switch {
		case l.header:
			style = s.Header
		case l.drop:
			style = s.DropTarget.Inherit(style)
		}
		out[i] = prefix + style.Width(textWidth).MaxWidth(textWidth).Render(l.text)
	}
	return strings.Join(out, "\n")
}
