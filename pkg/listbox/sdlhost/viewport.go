package sdlhost

import "github.com/BrandonKowalski/listbox/pkg/listbox"

// Viewport is a scrolled window area holding one element, normally a list
// box added through ListBox.AddToScrolled.
type Viewport struct {
	X, Y, W, H int32

	child         listbox.Element
	adj           *listbox.Adjustment
	contentHeight int32
}

func NewViewport(x, y, w, h int32) *Viewport {
	v := &Viewport{
		adj: listbox.NewAdjustment(0, 0, 0, 0, 0, 0),
	}
	v.SetArea(x, y, w, h)
	return v
}

func (v *Viewport) SetChild(child listbox.Element) {
	v.child = child
	v.Layout()
}

func (v *Viewport) Child() listbox.Element { return v.child }

func (v *Viewport) VAdjustment() *listbox.Adjustment { return v.adj }

// SetArea moves or resizes the viewport. Layout must follow.
func (v *Viewport) SetArea(x, y, w, h int32) {
	v.X, v.Y = x, y
	v.W, v.H = max(w, 0), max(h, 0)
}

// Layout measures the child at the viewport width, allocates it and updates
// the adjustment: the page is the viewport height, a step a tenth of it and
// a page increment nine tenths.
func (v *Viewport) Layout() {
	if v.child == nil {
		v.contentHeight = 0
		v.adj.Configure(0, 0, 0, 0, 0, 0)
		return
	}

	_, nat := v.child.PreferredHeightForWidth(v.W)
	v.contentHeight = nat
	v.child.Allocate(listbox.Rect{X: 0, Y: 0, W: v.W, H: max(nat, v.H)})

	page := float64(v.H)
	v.adj.Configure(v.adj.Value(), 0, float64(nat), page/10, page*0.9, page)
}

func (v *Viewport) ContentHeight() int32 { return v.contentHeight }

// ScrollBy moves the view by whole steps; positive scrolls down.
func (v *Viewport) ScrollBy(steps float64) {
	v.adj.SetValue(v.adj.Value() + steps*v.adj.StepIncrement())
}

func (v *Viewport) Contains(x, y int32) bool {
	return x >= v.X && x < v.X+v.W && y >= v.Y && y < v.Y+v.H
}

// ToChild converts window coordinates to child coordinates.
func (v *Viewport) ToChild(x, y int32) (float64, float64) {
	return float64(x - v.X), float64(y-v.Y) + v.adj.Value()
}

// Origin is where the child's (0, 0) lands in window coordinates.
func (v *Viewport) Origin() (int32, int32) {
	return v.X, v.Y - int32(v.adj.Value())
}
