package listbox

import (
	"github.com/BrandonKowalski/listbox/pkg/listbox/internal"
)

// FilterFunc decides whether a row is shown.
type FilterFunc func(child Element) bool

// SetFilterFunc installs fn, or removes filtering when fn is nil, and
// refilters every row. The previous filter's OnRelease hook runs first.
func (lb *ListBox) SetFilterFunc(fn FilterFunc, opts ...PolicyOption) {
	runRelease(&lb.filterRelease)
	lb.filterFunc = fn
	lb.filterRelease = releaseHook(opts)
	lb.Refilter()
}

// Refilter re-applies the filter to every row.
func (lb *ListBox) Refilter() {
	for rec := range lb.children.All() {
		lb.applyFilter(rec.widget)
	}
	lb.Reseparate()
	lb.host.QueueResize()
}

// applyFilter sets child-visible from the filter and reports whether it
// changed.
func (lb *ListBox) applyFilter(child Element) bool {
	show := true
	if lb.filterFunc != nil {
		show = lb.filterFunc(child)
	}
	if child.ChildVisible() == show {
		return false
	}
	child.SetChildVisible(show)
	return true
}

func (lb *ListBox) nextVisible(n *internal.Node[*childRecord]) *internal.Node[*childRecord] {
	if n == nil {
		return nil
	}
	for n = n.Next(); n != nil; n = n.Next() {
		if isDisplayed(n.Value.widget) {
			return n
		}
	}
	return nil
}

func (lb *ListBox) previousVisible(n *internal.Node[*childRecord]) *internal.Node[*childRecord] {
	if n == nil {
		return nil
	}
	for n = n.Prev(); n != nil; n = n.Prev() {
		if isDisplayed(n.Value.widget) {
			return n
		}
	}
	return nil
}

func (lb *ListBox) firstVisible() *childRecord {
	for n := lb.children.First(); n != nil; n = n.Next() {
		if isDisplayed(n.Value.widget) {
			return n.Value
		}
	}
	return nil
}

func (lb *ListBox) lastVisible() *childRecord {
	for n := lb.children.Last(); n != nil; n = n.Prev() {
		if isDisplayed(n.Value.widget) {
			return n.Value
		}
	}
	return nil
}

func recordWidget(rec *childRecord) Element {
	if rec == nil {
		return nil
	}
	return rec.widget
}

func nodeWidget(n *internal.Node[*childRecord]) Element {
	if n == nil {
		return nil
	}
	return n.Value.widget
}

// FirstVisible returns the first shown row, or nil.
func (lb *ListBox) FirstVisible() Element {
	return recordWidget(lb.firstVisible())
}

// LastVisible returns the last shown row, or nil.
func (lb *ListBox) LastVisible() Element {
	return recordWidget(lb.lastVisible())
}

// NextVisible returns the first shown row after child, or nil.
func (lb *ListBox) NextVisible(child Element) Element {
	rec := lb.lookup(child)
	if rec == nil {
		return nil
	}
	return nodeWidget(lb.nextVisible(rec.node))
}

// PreviousVisible returns the last shown row before child, or nil.
func (lb *ListBox) PreviousVisible(child Element) Element {
	rec := lb.lookup(child)
	if rec == nil {
		return nil
	}
	return nodeWidget(lb.previousVisible(rec.node))
}
