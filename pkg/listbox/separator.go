package listbox

import (
	"github.com/BrandonKowalski/listbox/pkg/listbox/internal"
)

type separatorActionKind int

const (
	separatorKeep separatorActionKind = iota
	separatorClear
	separatorReplace
)

// SeparatorAction is what a SeparatorFunc wants done with a row's
// separator.
type SeparatorAction struct {
	kind    separatorActionKind
	element Element
}

// SeparatorKeep leaves the current separator, or its absence, in place.
func SeparatorKeep() SeparatorAction {
	return SeparatorAction{kind: separatorKeep}
}

// SeparatorClear removes the current separator.
func SeparatorClear() SeparatorAction {
	return SeparatorAction{kind: separatorClear}
}

// SeparatorReplace installs e as the separator. A nil e clears it.
func SeparatorReplace(e Element) SeparatorAction {
	if e == nil {
		return SeparatorClear()
	}
	return SeparatorAction{kind: separatorReplace, element: e}
}

// SeparatorFunc decides the separator shown above child. current is the
// separator it has now, before the previous shown row (nil for the first).
type SeparatorFunc func(current, child, before Element) SeparatorAction

// SetSeparatorFunc installs fn, or removes separators when fn is nil, and
// recomputes every separator. The previous func's OnRelease hook runs first.
func (lb *ListBox) SetSeparatorFunc(fn SeparatorFunc, opts ...PolicyOption) {
	runRelease(&lb.separatorRelease)
	lb.separatorFunc = fn
	lb.separatorRelease = releaseHook(opts)
	lb.Reseparate()
}

// Reseparate recomputes the separator of every row.
func (lb *ListBox) Reseparate() {
	for n := lb.children.First(); n != nil; n = n.Next() {
		lb.updateSeparator(n)
	}
	lb.host.QueueResize()
}

func (lb *ListBox) updateSeparator(n *internal.Node[*childRecord]) {
	if n == nil {
		return
	}
	rec := n.Value

	if lb.separatorFunc == nil || !isDisplayed(rec.widget) {
		if rec.separator != nil {
			lb.dropSeparator(rec, true)
			lb.host.QueueResize()
		}
		return
	}

	var before Element
	if prev := lb.previousVisible(n); prev != nil {
		before = prev.Value.widget
	}

	old := rec.separator
	next := old
	action := lb.separatorFunc(old, rec.widget, before)
	switch action.kind {
	case separatorClear:
		next = nil
	case separatorReplace:
		next = action.element
	}
	if next == old {
		return
	}

	if old != nil {
		lb.dropSeparator(rec, false)
	}
	if next != nil {
		rec.separator = next
		lb.separators[next] = rec
		next.SetParent(lb)
		next.Show()
	}
	lb.host.QueueResize()
}

// dropSeparator detaches the separator of rec and, with destroy, destroys
// it.
func (lb *ListBox) dropSeparator(rec *childRecord, destroy bool) {
	sep := rec.separator
	rec.separator = nil
	delete(lb.separators, sep)
	sep.SetParent(nil)
	if destroy {
		sep.Destroy()
	}
}
