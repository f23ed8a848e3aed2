package listbox

import (
	"github.com/BrandonKowalski/listbox/pkg/listbox/internal"
)

// childRecord is the list box's bookkeeping for one row.
type childRecord struct {
	node      *internal.Node[*childRecord]
	widget    Element
	separator Element

	// Vertical placement from the last allocation, in list box coordinates.
	y      int32
	height int32

	stopWatching func()
}

func (lb *ListBox) lookup(child Element) *childRecord {
	if child == nil {
		return nil
	}
	return lb.rows[child]
}

// Add appends child, or inserts it in sort order when a sort func is set,
// and applies the filter to it.
func (lb *ListBox) Add(child Element) {
	if child == nil {
		lb.reportUsage("add", ErrNilElement)
		return
	}
	if _, ok := lb.rows[child]; ok {
		lb.reportUsage("add", ErrAlreadyChild)
		return
	}
	if _, ok := lb.separators[child]; ok {
		lb.reportUsage("add", ErrAlreadyChild)
		return
	}

	rec := &childRecord{widget: child}
	lb.rows[child] = rec
	if lb.sortFunc != nil {
		rec.node = lb.children.InsertSorted(rec, lb.compareRecords)
	} else {
		rec.node = lb.children.Append(rec)
	}

	child.SetParent(lb)
	lb.applyFilter(child)

	if lb.Visible() {
		lb.updateSeparator(rec.node)
		lb.updateSeparator(lb.nextVisible(rec.node))
		if child.Visible() {
			lb.host.QueueResize()
		}
	}

	rec.stopWatching = child.OnVisibilityChanged(func() {
		lb.childVisibilityChanged(child)
	})
}

// Remove detaches a row or a separator. Removing a row drops any
// selection, hover, cursor or press state that pointed at it and destroys
// its separator.
func (lb *ListBox) Remove(child Element) {
	if child == nil {
		lb.reportUsage("remove", ErrNotChild)
		return
	}
	wasVisible := child.Visible()

	rec, ok := lb.rows[child]
	if !ok {
		owner, isSeparator := lb.separators[child]
		if !isSeparator {
			lb.reportUsage("remove", ErrNotChild)
			return
		}
		delete(lb.separators, child)
		owner.separator = nil
		child.SetParent(nil)
		if wasVisible && lb.Visible() {
			lb.host.QueueResize()
		}
		return
	}

	if rec.stopWatching != nil {
		rec.stopWatching()
		rec.stopWatching = nil
	}

	if rec.separator != nil {
		lb.dropSeparator(rec, true)
	}

	if rec == lb.selected {
		lb.updateSelected(nil)
	}
	if rec == lb.prelight {
		lb.prelight = nil
	}
	if rec == lb.cursor {
		lb.cursor = nil
	}
	if rec == lb.active {
		lb.active = nil
		lb.activeFlag = false
	}
	if lb.focusChild == child {
		lb.focusChild = nil
	}
	if lb.dragHighlighted == child {
		lb.DragUnhighlightWidget()
	}

	next := lb.nextVisible(rec.node)

	child.SetParent(nil)
	delete(lb.rows, child)
	lb.children.Remove(rec.node)

	if lb.Visible() {
		lb.updateSeparator(next)
	}
	if wasVisible && lb.Visible() {
		lb.host.QueueResize()
	}
}

// ForAll calls fn for every row in order. With includeInternals each row's
// separator is visited just before the row. fn may remove the element it is
// given.
func (lb *ListBox) ForAll(includeInternals bool, fn func(Element)) {
	n := lb.children.First()
	for n != nil {
		rec := n.Value
		n = n.Next()

		if includeInternals && rec.separator != nil {
			fn(rec.separator)
		}
		fn(rec.widget)
	}
}

// Children returns the rows in display order, hidden ones included.
func (lb *ListBox) Children() []Element {
	children := make([]Element, 0, lb.children.Len())
	for rec := range lb.children.All() {
		children = append(children, rec.widget)
	}
	return children
}

// Len returns the number of rows.
func (lb *ListBox) Len() int {
	return lb.children.Len()
}

// Separator returns the separator currently shown above child, if any.
func (lb *ListBox) Separator(child Element) Element {
	if rec := lb.lookup(child); rec != nil {
		return rec.separator
	}
	return nil
}

func (lb *ListBox) childVisibilityChanged(child Element) {
	rec := lb.lookup(child)
	if rec == nil || !lb.Visible() {
		return
	}
	lb.updateSeparator(rec.node)
	lb.updateSeparator(lb.nextVisible(rec.node))
	lb.host.QueueResize()
}
