package listbox

import (
	"github.com/BrandonKowalski/listbox/pkg/listbox/internal"
)

// DragHighlightWidget marks child as the drop target, clearing the previous
// one. Rows implementing DragHighlighter are told about the change.
func (lb *ListBox) DragHighlightWidget(child Element) {
	if child == nil || child == lb.dragHighlighted {
		return
	}
	lb.DragUnhighlightWidget()
	if h, ok := child.(DragHighlighter); ok {
		h.SetDragHighlight(true)
	}
	lb.dragHighlighted = child
}

// DragUnhighlightWidget clears the drop target, if any.
func (lb *ListBox) DragUnhighlightWidget() {
	if lb.dragHighlighted == nil {
		return
	}
	if h, ok := lb.dragHighlighted.(DragHighlighter); ok {
		h.SetDragHighlight(false)
	}
	lb.dragHighlighted = nil
}

// DragHighlighted returns the current drop target, or nil.
func (lb *ListBox) DragHighlighted() Element {
	return lb.dragHighlighted
}

// DragMotion arms auto-scroll when y, in list box coordinates, is within
// the auto-scroll margin of the top or bottom of the visible page. Every
// tick then nudges the adjustment by one step in that direction. Any
// earlier auto-scroll is cancelled first. It never claims the event.
func (lb *ListBox) DragMotion(x, y float64) bool {
	lb.cancelAutoScroll()

	adj := lb.adjustment
	if adj == nil || lb.timers == nil {
		return false
	}

	margin := lb.settings.AutoScrollMargin
	move := 0.0
	switch {
	case y < adj.Value()+margin:
		move = -1
	case y > adj.Value()+adj.PageSize()-margin:
		move = 1
	default:
		return false
	}

	lb.autoScrollTimer = lb.timers.Every(lb.settings.AutoScrollInterval, func() bool {
		if lb.adjustment != nil {
			lb.adjustment.SetValue(lb.adjustment.Value() + lb.adjustment.StepIncrement()*move)
		}
		return true
	})
	lb.autoScrolling = true

	internal.GetInternalLogger().Debug("Drag auto-scroll armed", "x", x, "y", y, "direction", move)
	return false
}

// DragLeave clears the drop target and stops auto-scroll.
func (lb *ListBox) DragLeave() {
	lb.DragUnhighlightWidget()
	lb.cancelAutoScroll()
}

// AutoScrolling reports whether a drag auto-scroll timer is armed.
func (lb *ListBox) AutoScrolling() bool {
	return lb.autoScrolling
}

func (lb *ListBox) cancelAutoScroll() {
	if !lb.autoScrolling {
		return
	}
	if lb.timers != nil {
		lb.timers.Cancel(lb.autoScrollTimer)
	}
	lb.autoScrollTimer = 0
	lb.autoScrolling = false
}
