package listbox

// MovementStep is the unit of a cursor movement.
type MovementStep int

const (
	MoveBufferEnds MovementStep = iota
	MoveDisplayLines
	MovePages
)

func (s MovementStep) String() string {
	switch s {
	case MoveBufferEnds:
		return "buffer-ends"
	case MoveDisplayLines:
		return "display-lines"
	case MovePages:
		return "pages"
	default:
		return "unknown"
	}
}

// Key is a navigation key understood by HandleKey.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyTab
	KeySpace
	KeyEnter
)

// KeyEvent is a key press.
type KeyEvent struct {
	Key  Key
	Mods Modifier
}

// HandleKey runs the binding for ev and reports whether it was consumed.
//
//	Home, End              move to the first or last row
//	Ctrl+Up, Ctrl+Down     move the cursor one row
//	Page Up, Page Down     move the cursor one page
//	Up, Down, Left, Right  move focus
//	Tab, Shift+Tab         move focus
//	Enter, Space           activate the cursor row
//	Ctrl+Space             toggle the cursor row
//
// The modify-selection modifier is read from ev while the binding runs.
func (lb *ListBox) HandleKey(ev KeyEvent) bool {
	lb.currentMods = ev.Mods
	defer func() { lb.currentMods = 0 }()

	ctrl := ev.Mods.Has(ModControl)

	switch ev.Key {
	case KeyHome:
		lb.MoveCursor(MoveBufferEnds, -1)
	case KeyEnd:
		lb.MoveCursor(MoveBufferEnds, 1)
	case KeyPageUp:
		lb.MoveCursor(MovePages, -1)
	case KeyPageDown:
		lb.MoveCursor(MovePages, 1)
	case KeyUp:
		if ctrl {
			lb.MoveCursor(MoveDisplayLines, -1)
			return true
		}
		return lb.Focus(DirUp)
	case KeyDown:
		if ctrl {
			lb.MoveCursor(MoveDisplayLines, 1)
			return true
		}
		return lb.Focus(DirDown)
	case KeyLeft:
		return lb.Focus(DirLeft)
	case KeyRight:
		return lb.Focus(DirRight)
	case KeyTab:
		if ev.Mods.Has(ModShift) {
			return lb.Focus(DirTabBackward)
		}
		return lb.Focus(DirTabForward)
	case KeySpace:
		if ctrl {
			lb.ToggleCursorChild()
			return true
		}
		lb.ActivateCursorChild()
	case KeyEnter:
		lb.ActivateCursorChild()
	default:
		return false
	}
	return true
}

func (lb *ListBox) modifySelectionHeld() bool {
	return lb.currentMods.Has(lb.settings.ModifySelection)
}

// CursorChild returns the row under the keyboard cursor, or nil.
func (lb *ListBox) CursorChild() Element {
	return recordWidget(lb.cursor)
}

// HasFocus reports whether the list box itself holds keyboard focus.
func (lb *ListBox) HasFocus() bool {
	return lb.hasFocus
}

// GrabFocus gives the list box keyboard focus.
func (lb *ListBox) GrabFocus() {
	if lb.hasFocus && lb.focusChild == nil {
		return
	}
	lb.hasFocus = true
	lb.focusChild = nil
	lb.host.QueueDraw()
}

// SetFocusChild records that focus moved into a sub-element of child.
func (lb *ListBox) SetFocusChild(child Element) {
	if child != nil && lb.lookup(child) == nil {
		lb.reportUsage("set_focus_child", ErrNotChild)
		return
	}
	lb.focusChild = child
	if child != nil {
		lb.hasFocus = false
	}
	lb.host.QueueDraw()
}

func (lb *ListBox) FocusChild() Element {
	return lb.focusChild
}

// Blur drops keyboard focus. Hosts call it when focus moves elsewhere.
func (lb *ListBox) Blur() {
	if !lb.hasFocus && lb.focusChild == nil {
		return
	}
	lb.hasFocus = false
	lb.focusChild = nil
	lb.host.QueueDraw()
}

// MoveCursor emits CursorMoved and then moves the cursor. count is the
// direction for buffer ends and pages, and the number of rows for display
// lines. Running off either end rings the bell.
func (lb *ListBox) MoveCursor(step MovementStep, count int) {
	lb.CursorMoved.emit(CursorMove{Step: step, Count: count})
	lb.moveCursor(step, count)
}

func (lb *ListBox) moveCursor(step MovementStep, count int) {
	var rec *childRecord

	switch step {
	case MoveBufferEnds:
		if count < 0 {
			rec = lb.firstVisible()
		} else {
			rec = lb.lastVisible()
		}
	case MoveDisplayLines:
		if lb.cursor != nil {
			n := lb.cursor.node
			for ; count < 0 && n != nil; count++ {
				n = lb.previousVisible(n)
			}
			for ; count > 0 && n != nil; count-- {
				n = lb.nextVisible(n)
			}
			if n != nil {
				rec = n.Value
			}
		}
	case MovePages:
		rec = lb.pageTarget(count)
	default:
		return
	}

	if rec == nil {
		lb.host.ErrorBell()
		return
	}

	modify := lb.modifySelectionHeld()
	lb.updateCursor(rec)
	if !modify {
		lb.updateSelected(rec)
	}
}

// pageTarget walks shown rows from the cursor while they start within one
// page of it, then scrolls the adjustment by the distance moved.
func (lb *ListBox) pageTarget(count int) *childRecord {
	if lb.cursor == nil {
		return nil
	}

	pageSize := lb.settings.PageSize
	if lb.adjustment != nil {
		pageSize = int32(lb.adjustment.PageIncrement())
	}

	rec := lb.cursor
	startY := rec.y
	if count < 0 {
		for n := lb.previousVisible(rec.node); n != nil; n = lb.previousVisible(n) {
			if n.Value.y < startY-pageSize {
				break
			}
			rec = n.Value
		}
	} else {
		for n := lb.nextVisible(rec.node); n != nil; n = lb.nextVisible(n) {
			if n.Value.y > startY+pageSize {
				break
			}
			rec = n.Value
		}
	}

	if endY := rec.y; endY != startY && lb.adjustment != nil {
		lb.adjustment.SetValue(lb.adjustment.Value() + float64(endY-startY))
	}
	return rec
}

// ActivateCursorChild emits CursorActivated and then selects and activates
// the cursor row.
func (lb *ListBox) ActivateCursorChild() {
	lb.CursorActivated.emit(struct{}{})
	lb.selectAndActivate(lb.cursor)
}

// ToggleCursorChild emits CursorToggled and then deselects the cursor row
// if it is selected, or selects and activates it otherwise.
func (lb *ListBox) ToggleCursorChild() {
	lb.CursorToggled.emit(struct{}{})
	if lb.cursor == nil {
		return
	}
	if lb.settings.SelectionMode == SelectionSingle && lb.selected == lb.cursor {
		lb.updateSelected(nil)
		return
	}
	lb.selectAndActivate(lb.cursor)
}

// Focus moves keyboard focus in dir and reports whether focus stayed within
// the list box. Up and Down move between rows and ring the bell at either
// end. Right and Tab enter a row's sub-elements when the row implements
// Focuser; Left and Shift+Tab come back out.
func (lb *ListBox) Focus(dir Direction) bool {
	var (
		recurseInto Element
		current     *childRecord
		next        *childRecord
		focusInto   = true
	)

	switch {
	case lb.hasFocus:
		if (dir == DirRight || dir == DirTabForward) && lb.cursor != nil {
			recurseInto = lb.cursor.widget
		}
		current = lb.cursor
		if dir != DirUp && dir != DirDown {
			focusInto = false
		}
	case lb.focusChild != nil:
		recurseInto = lb.focusChild
		current = lb.lookup(lb.focusChild)
		if dir == DirRight || dir == DirTabForward {
			focusInto = false
		}
		if dir == DirLeft || dir == DirTabBackward {
			next = current
		}
	default:
		if (dir == DirLeft || dir == DirTabBackward) && lb.selected != nil {
			recurseInto = lb.selected.widget
		}
	}

	if recurseInto != nil {
		if f, ok := recurseInto.(Focuser); ok && f.ChildFocus(dir) {
			lb.SetFocusChild(recurseInto)
			return true
		}
	}

	if !focusInto {
		return false
	}

	if next == nil {
		switch {
		case current != nil:
			if dir == DirUp {
				if n := lb.previousVisible(current.node); n != nil {
					next = n.Value
				}
			} else if n := lb.nextVisible(current.node); n != nil {
				next = n.Value
			}
		case dir == DirUp || dir == DirTabBackward:
			next = lb.selected
			if next == nil {
				next = lb.lastVisible()
			}
		default:
			next = lb.selected
			if next == nil {
				next = lb.firstVisible()
			}
		}
	}

	if next == nil {
		if dir == DirUp || dir == DirDown {
			lb.host.ErrorBell()
			return true
		}
		return false
	}

	modify := lb.modifySelectionHeld()
	lb.updateCursor(next)
	if !modify {
		lb.updateSelected(next)
	}
	return true
}
