package listbox

// PointerEvent is a pointer event in list box coordinates.
type PointerEvent struct {
	X, Y   float64
	Button int // 1 is the primary button
	Clicks int // 2 for the second press of a double click
	Mods   Modifier

	// Inferior is set on a leave event when the pointer moved into a
	// sub-element of a row rather than out of the list box.
	Inferior bool
}

func (lb *ListBox) recordAtY(y int32) *childRecord {
	for rec := range lb.children.All() {
		if y >= rec.y && y < rec.y+rec.height {
			return rec
		}
	}
	return nil
}

// ChildAtY returns the row whose band contains y, or nil.
func (lb *ListBox) ChildAtY(y int32) Element {
	return recordWidget(lb.recordAtY(y))
}

// SelectedChild returns the selected row, or nil.
func (lb *ListBox) SelectedChild() Element {
	return recordWidget(lb.selected)
}

// SelectChild selects child and moves the cursor to it. nil clears the
// selection. Selecting is ignored in SelectionNone.
func (lb *ListBox) SelectChild(child Element) {
	var rec *childRecord
	if child != nil {
		rec = lb.lookup(child)
		if rec == nil {
			lb.reportUsage("select_child", ErrNotChild)
			return
		}
	}
	lb.updateSelected(rec)
}

// SelectionMode returns the current selection mode.
func (lb *ListBox) SelectionMode() SelectionMode {
	return lb.settings.SelectionMode
}

// SetSelectionMode switches between single selection and none. Switching
// to none clears the selection. SelectionMultiple is rejected.
func (lb *ListBox) SetSelectionMode(mode SelectionMode) {
	if mode == SelectionMultiple {
		lb.reportUsage("set_selection_mode", ErrMultipleSelection)
		return
	}
	if mode != SelectionNone && mode != SelectionSingle {
		lb.reportUsage("set_selection_mode", ErrInvalidSettings)
		return
	}
	if mode == SelectionNone {
		lb.updateSelected(nil)
	}
	lb.settings.SelectionMode = mode
}

func (lb *ListBox) ActivateOnSingleClick() bool {
	return lb.settings.ActivateOnSingleClick
}

func (lb *ListBox) SetActivateOnSingleClick(single bool) {
	lb.settings.ActivateOnSingleClick = single
}

// updateSelected is the single place selection changes. Clearing is always
// allowed; selecting a row needs a mode other than none.
func (lb *ListBox) updateSelected(rec *childRecord) {
	if rec != lb.selected && (rec == nil || lb.settings.SelectionMode != SelectionNone) {
		lb.selected = rec
		lb.ChildSelected.emit(recordWidget(rec))
		lb.host.QueueDraw()
	}
	if rec != nil {
		lb.updateCursor(rec)
	}
}

func (lb *ListBox) updateCursor(rec *childRecord) {
	lb.cursor = rec
	lb.GrabFocus()
	lb.host.QueueDraw()

	if rec != nil && lb.adjustment != nil {
		top := float64(rec.y + lb.Allocation().Y)
		lb.adjustment.ClampPage(top, top+float64(rec.height))
	}
}

func (lb *ListBox) selectAndActivate(rec *childRecord) {
	lb.updateSelected(rec)
	if rec != nil {
		lb.ChildActivated.emit(rec.widget)
	}
}

func (lb *ListBox) updatePrelight(rec *childRecord) {
	if rec == lb.prelight {
		return
	}
	lb.prelight = rec
	lb.host.QueueDraw()
}

func (lb *ListBox) updateActive(rec *childRecord) {
	flag := lb.active == rec
	if lb.active != nil && flag != lb.activeFlag {
		lb.activeFlag = flag
		lb.host.QueueDraw()
	}
}

func (lb *ListBox) hover(y float64) {
	rec := lb.recordAtY(int32(y))
	lb.updatePrelight(rec)
	lb.updateActive(rec)
}

func (lb *ListBox) HandleEnter(ev PointerEvent) {
	lb.hover(ev.Y)
}

func (lb *ListBox) HandleLeave(ev PointerEvent) {
	if ev.Inferior {
		lb.hover(ev.Y)
		return
	}
	lb.updatePrelight(nil)
	lb.updateActive(nil)
}

func (lb *ListBox) HandleMotion(ev PointerEvent) {
	lb.hover(ev.Y)
}

func (lb *ListBox) HandleButtonPress(ev PointerEvent) {
	if ev.Button != 1 {
		return
	}

	rec := lb.recordAtY(int32(ev.Y))
	if rec == nil {
		return
	}

	lb.active = rec
	lb.activeFlag = true
	lb.host.QueueDraw()

	if ev.Clicks == 2 && !lb.settings.ActivateOnSingleClick {
		lb.ChildActivated.emit(rec.widget)
	}
}

func (lb *ListBox) HandleButtonRelease(ev PointerEvent) {
	if ev.Button != 1 {
		return
	}

	if lb.active != nil && lb.activeFlag {
		if lb.settings.ActivateOnSingleClick {
			lb.selectAndActivate(lb.active)
		} else {
			lb.updateSelected(lb.active)
		}
	}

	lb.active = nil
	lb.activeFlag = false
	lb.host.QueueDraw()
}

// ActiveChild returns the pressed row while the pointer is still over it.
func (lb *ListBox) ActiveChild() Element {
	if lb.active == nil || !lb.activeFlag {
		return nil
	}
	return lb.active.widget
}

// PrelightChild returns the hovered row, or nil.
func (lb *ListBox) PrelightChild() Element {
	return recordWidget(lb.prelight)
}
