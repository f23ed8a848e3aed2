package listbox

// Rect is an axis aligned rectangle in the coordinate space of the
// element's container.
type Rect struct {
	X, Y, W, H int32
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Measurer reports the sizes an element would like to be given.
type Measurer interface {
	PreferredWidth() (minimum, natural int32)
	PreferredHeightForWidth(width int32) (minimum, natural int32)
}

// Placer receives the rectangle chosen for an element by its container.
type Placer interface {
	Allocate(r Rect)
	Allocation() Rect
}

// Element is anything that can be placed in a list box, either as a row or
// as a separator. Elements are used as map keys and must be comparable,
// which in practice means pointer types.
//
// Visible is the element's own visibility. ChildVisible is controlled by
// the container (the list box uses it to apply its filter). An element is
// only laid out and drawn when both are true.
type Element interface {
	Measurer
	Placer

	Visible() bool
	Show()
	Hide()

	ChildVisible() bool
	SetChildVisible(visible bool)

	Parent() Container
	SetParent(parent Container)

	// OnVisibilityChanged registers fn to run after Show or Hide changes
	// Visible. The returned func removes the registration.
	OnVisibilityChanged(fn func()) (cancel func())

	Destroy()
}

// Container is implemented by elements that own other elements.
type Container interface {
	Add(child Element)
	Remove(child Element)
	ForAll(includeInternals bool, fn func(Element))
}

// Drawer is implemented by elements that paint themselves.
type Drawer interface {
	Draw(c Canvas)
}

// Focuser is implemented by rows containing focusable sub-elements. ChildFocus
// moves focus within the row and returns false when focus should leave it.
type Focuser interface {
	ChildFocus(dir Direction) bool
}

// DragHighlighter is implemented by rows that show drop-target feedback.
type DragHighlighter interface {
	SetDragHighlight(on bool)
}

// Direction is a keyboard focus movement.
type Direction int

const (
	DirTabForward Direction = iota
	DirTabBackward
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirTabForward:
		return "tab-forward"
	case DirTabBackward:
		return "tab-backward"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

type visibilityListener struct {
	id int
	fn func()
}

// Base implements the bookkeeping half of Element. Embed it in a row type
// and add PreferredWidth, PreferredHeightForWidth and, if needed, Draw.
//
// The zero value is hidden, child-visible and unparented.
type Base struct {
	visible     bool
	childHidden bool
	parent      Container
	alloc       Rect

	listeners    []visibilityListener
	nextListener int

	dragHighlight bool
	destroyed     bool
}

func (b *Base) Visible() bool { return b.visible }

func (b *Base) Show() {
	if b.visible {
		return
	}
	b.visible = true
	b.notifyVisibility()
}

func (b *Base) Hide() {
	if !b.visible {
		return
	}
	b.visible = false
	b.notifyVisibility()
}

func (b *Base) ChildVisible() bool { return !b.childHidden }

func (b *Base) SetChildVisible(visible bool) { b.childHidden = !visible }

func (b *Base) Parent() Container { return b.parent }

func (b *Base) SetParent(parent Container) { b.parent = parent }

func (b *Base) Allocate(r Rect) { b.alloc = r }

func (b *Base) Allocation() Rect { return b.alloc }

func (b *Base) OnVisibilityChanged(fn func()) func() {
	b.nextListener++
	id := b.nextListener
	b.listeners = append(b.listeners, visibilityListener{id: id, fn: fn})
	return func() {
		for i, l := range b.listeners {
			if l.id == id {
				b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

func (b *Base) notifyVisibility() {
	listeners := make([]visibilityListener, len(b.listeners))
	copy(listeners, b.listeners)
	for _, l := range listeners {
		l.fn()
	}
}

// Destroy drops listeners and the parent link. It does not detach the
// element from its container; call Container.Remove for that.
func (b *Base) Destroy() {
	b.destroyed = true
	b.listeners = nil
	b.parent = nil
}

func (b *Base) Destroyed() bool { return b.destroyed }

func (b *Base) SetDragHighlight(on bool) { b.dragHighlight = on }

func (b *Base) DragHighlighted() bool { return b.dragHighlight }

func isDisplayed(e Element) bool {
	return e.Visible() && e.ChildVisible()
}
