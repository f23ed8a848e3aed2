package listbox

// SortFunc orders two rows. It returns a negative number when a sorts
// before b, a positive number when after, and zero to keep their current
// relative order.
type SortFunc func(a, b Element) int

func (lb *ListBox) compareRecords(a, b *childRecord) int {
	return lb.sortFunc(a.widget, b.widget)
}

// SetSortFunc installs fn, or removes sorting when fn is nil, and resorts.
// The previous sort func's OnRelease hook runs first.
func (lb *ListBox) SetSortFunc(fn SortFunc, opts ...PolicyOption) {
	runRelease(&lb.sortRelease)
	lb.sortFunc = fn
	lb.sortRelease = releaseHook(opts)
	lb.Resort()
}

// Resort reorders every row. Without a sort func the order is unchanged.
func (lb *ListBox) Resort() {
	if lb.sortFunc != nil {
		lb.children.Sort(lb.compareRecords)
	}
	lb.Reseparate()
	lb.host.QueueResize()
}

// ChildChanged tells the list box that child's sort key or filter input
// changed. The row is repositioned and refiltered, and only the separators
// around its old and new position are recomputed.
func (lb *ListBox) ChildChanged(child Element) {
	rec := lb.lookup(child)
	if rec == nil {
		return
	}

	prevNext := lb.nextVisible(rec.node)

	if lb.sortFunc != nil {
		lb.children.SortChanged(rec.node, lb.compareRecords)
		lb.host.QueueResize()
	}

	if lb.applyFilter(child) {
		lb.host.QueueResize()
	}

	if lb.Visible() {
		lb.updateSeparator(rec.node)
		lb.updateSeparator(lb.nextVisible(rec.node))
		lb.updateSeparator(prevNext)
	}
}
