package termhost

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/listbox/pkg/listbox"
)

// TextRow is a list row showing plain text, possibly several lines.
type TextRow struct {
	listbox.Base

	text   string
	header bool
}

func NewTextRow(text string) *TextRow {
	r := &TextRow{text: text}
	r.Show()
	return r
}

// NewHeaderRow creates a group header, meant to be used as a separator.
func NewHeaderRow(text string) *TextRow {
	r := NewTextRow(text)
	r.header = true
	return r
}

func (r *TextRow) Text() string { return r.text }

// SetText changes the text. Callers that sort or filter on the text should
// follow with ListBox.ChildChanged.
func (r *TextRow) SetText(text string) { r.text = text }

func (r *TextRow) IsHeader() bool { return r.header }

func (r *TextRow) PreferredWidth() (int32, int32) {
	return 1, int32(lipgloss.Width(r.text))
}

func (r *TextRow) PreferredHeightForWidth(int32) (int32, int32) {
	h := int32(lipgloss.Height(r.text))
	return h, h
}

func (r *TextRow) Draw(canvas listbox.Canvas) {
	if c, ok := canvas.(*LineCanvas); ok {
		c.WriteText(r.Allocation(), r.text, r.header, r.DragHighlighted())
	}
}
