package listbox

type rowState struct {
	rec   *childRecord
	state StateFlags
}

// Draw paints the list box background, one state background per
// selected, hovered or pressed row (a row in several states is painted
// once with the flags merged), the focus indicator around the cursor row
// and then every shown row and separator that implements Drawer.
func (lb *ListBox) Draw(c Canvas) {
	alloc := lb.Allocation()
	base := lb.stateFlags()

	c.RenderBackground(Rect{W: alloc.W, H: alloc.H}, base)

	var rows []rowState
	mark := func(rec *childRecord, flag StateFlags) {
		for i := range rows {
			if rows[i].rec == rec {
				rows[i].state |= flag
				return
			}
		}
		rows = append(rows, rowState{rec: rec, state: base | flag})
	}
	if lb.selected != nil {
		mark(lb.selected, StateSelected)
	}
	if lb.prelight != nil {
		mark(lb.prelight, StatePrelight)
	}
	if lb.active != nil && lb.activeFlag {
		mark(lb.active, StateActive)
	}

	for _, row := range rows {
		c.RenderBackground(Rect{Y: row.rec.y, W: alloc.W, H: row.rec.height}, row.state)
	}

	if lb.hasFocus && lb.cursor != nil {
		pad := lb.settings.FocusPadding
		c.RenderFocus(Rect{
			X: pad,
			Y: lb.cursor.y + pad,
			W: alloc.W - 2*pad,
			H: lb.cursor.height - 2*pad,
		})
	}

	lb.ForAll(true, func(e Element) {
		if !isDisplayed(e) {
			return
		}
		if d, ok := e.(Drawer); ok {
			d.Draw(c)
		}
	})
}

func (lb *ListBox) stateFlags() StateFlags {
	if lb.hasFocus {
		return StateFocused
	}
	return StateNormal
}
