package listbox

// Host is the toolkit side of a list box: the thing that repaints, re-runs
// layout and beeps.
type Host interface {
	QueueResize()
	QueueDraw()
	ErrorBell()
}

type nopHost struct{}

func (nopHost) QueueResize() {}
func (nopHost) QueueDraw()   {}
func (nopHost) ErrorBell()   {}

// Scrollable is a viewport that can hold one element and exposes its
// vertical scroll range.
type Scrollable interface {
	SetChild(child Element)
	VAdjustment() *Adjustment
}

// Canvas receives paint requests in list box coordinates.
type Canvas interface {
	RenderBackground(r Rect, state StateFlags)
	RenderFocus(r Rect)
}

// StateFlags describe how a row background should be painted.
type StateFlags uint8

const (
	StateNormal   StateFlags = 0
	StateSelected StateFlags = 1 << iota
	StatePrelight
	StateActive
	StateFocused
)

func (s StateFlags) Has(flag StateFlags) bool {
	return s&flag == flag
}
