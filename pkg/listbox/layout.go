package listbox

// RequestMode says which dimension an element wants fixed before it can
// report the other.
type RequestMode int

const (
	HeightForWidth RequestMode = iota
	WidthForHeight
)

func (lb *ListBox) RequestMode() RequestMode {
	return HeightForWidth
}

// rowPadding is the space kept on each side of a row for the focus
// indicator.
func (lb *ListBox) rowPadding() int32 {
	return lb.settings.FocusLineWidth + lb.settings.FocusPadding
}

// PreferredWidth is the widest shown row plus focus padding on both sides,
// or the widest separator, whichever is larger.
func (lb *ListBox) PreferredWidth() (minimum, natural int32) {
	pad := 2 * lb.rowPadding()
	for rec := range lb.children.All() {
		if !isDisplayed(rec.widget) {
			continue
		}

		childMin, childNat := rec.widget.PreferredWidth()
		minimum = max(minimum, childMin+pad)
		natural = max(natural, childNat+pad)

		if rec.separator != nil {
			sepMin, sepNat := rec.separator.PreferredWidth()
			minimum = max(minimum, sepMin)
			natural = max(natural, sepNat)
		}
	}
	return minimum, natural
}

// PreferredHeightForWidth stacks every shown row and its separator at the
// given width. Minimum and natural are equal.
func (lb *ListBox) PreferredHeightForWidth(width int32) (minimum, natural int32) {
	p := lb.rowPadding()
	for rec := range lb.children.All() {
		if !isDisplayed(rec.widget) {
			continue
		}

		if rec.separator != nil {
			sepMin, _ := rec.separator.PreferredHeightForWidth(width)
			minimum += sepMin
		}

		childMin, _ := rec.widget.PreferredHeightForWidth(width - 2*p)
		minimum += childMin + 2*p
	}
	return minimum, minimum
}

// PreferredHeight is the height needed at the natural width.
func (lb *ListBox) PreferredHeight() (minimum, natural int32) {
	_, width := lb.PreferredWidth()
	return lb.PreferredHeightForWidth(width)
}

// PreferredWidthForHeight ignores height.
func (lb *ListBox) PreferredWidthForHeight(int32) (minimum, natural int32) {
	return lb.PreferredWidth()
}

// SizeAllocate lays the list box out at width by height, starting at the
// origin.
func (lb *ListBox) SizeAllocate(width, height int32) {
	lb.Allocate(Rect{W: width, H: height})
}

// Allocate places rows top to bottom. Rows are inset by the focus padding
// on all sides; separators take the full width above their row. Hidden and
// filtered rows get zero height at the current offset so hit-testing and
// paging never land on them. Child rectangles are relative to the list box.
func (lb *ListBox) Allocate(r Rect) {
	lb.Base.Allocate(r)

	p := lb.rowPadding()
	childWidth := r.W - 2*p
	y := int32(0)

	for rec := range lb.children.All() {
		if !isDisplayed(rec.widget) {
			rec.y = y
			rec.height = 0
			continue
		}

		if rec.separator != nil {
			sepHeight, _ := rec.separator.PreferredHeightForWidth(r.W)
			rec.separator.Allocate(Rect{X: 0, Y: y, W: r.W, H: sepHeight})
			y += sepHeight
		}

		childHeight, _ := rec.widget.PreferredHeightForWidth(childWidth)
		rec.y = y
		rec.height = childHeight + 2*p
		rec.widget.Allocate(Rect{X: p, Y: y + p, W: childWidth, H: childHeight})
		y += rec.height
	}
}

// RowBounds returns the full row rectangle of child, focus padding
// included, as of the last allocation.
func (lb *ListBox) RowBounds(child Element) (Rect, bool) {
	rec := lb.lookup(child)
	if rec == nil {
		return Rect{}, false
	}
	return Rect{X: 0, Y: rec.y, W: lb.Allocation().W, H: rec.height}, true
}
