package listbox

import "testing"

type paintedRow struct {
	testRow
	painted int
}

func (r *paintedRow) Draw(Canvas) { r.painted++ }

func TestDrawMergesRowStates(t *testing.T) {
	f := newFixture(t)
	rows := f.addRows("A", "B", "C")
	f.lb.SizeAllocate(200, 100)

	f.lb.SelectChild(rows[0])
	f.lb.HandleMotion(PointerEvent{Y: 5})
	f.lb.HandleButtonPress(PointerEvent{Y: 5, Button: 1, Clicks: 1})

	c := &recordingCanvas{}
	f.lb.Draw(c)

	if len(c.backgrounds) != 2 {
		t.Fatalf("painted %d backgrounds, want list + one row", len(c.backgrounds))
	}
	list, row := c.backgrounds[0], c.backgrounds[1]
	if list.rect != (Rect{W: 200, H: 100}) {
		t.Fatalf("list background = %+v", list.rect)
	}
	if row.rect != (Rect{Y: 0, W: 200, H: 24}) {
		t.Fatalf("row background = %+v", row.rect)
	}
	for _, flag := range []StateFlags{StateSelected, StatePrelight, StateActive, StateFocused} {
		if !row.state.Has(flag) {
			t.Errorf("row state %b missing %b", row.state, flag)
		}
	}
}

func TestDrawSeparateRowsAndFocus(t *testing.T) {
	f := newFixture(t)
	rows := f.addRows("A", "B")
	f.lb.SizeAllocate(200, 100)

	f.lb.SelectChild(rows[0])
	f.lb.HandleMotion(PointerEvent{Y: 30})

	c := &recordingCanvas{}
	f.lb.Draw(c)

	if len(c.backgrounds) != 3 {
		t.Fatalf("painted %d backgrounds, want 3", len(c.backgrounds))
	}
	if !c.backgrounds[1].state.Has(StateSelected) || c.backgrounds[1].state.Has(StatePrelight) {
		t.Errorf("selected row state = %b", c.backgrounds[1].state)
	}
	if !c.backgrounds[2].state.Has(StatePrelight) || c.backgrounds[2].state.Has(StateSelected) {
		t.Errorf("hovered row state = %b", c.backgrounds[2].state)
	}

	pad := f.lb.Settings().FocusPadding
	want := Rect{X: pad, Y: pad, W: 200 - 2*pad, H: 24 - 2*pad}
	if len(c.focus) != 1 || c.focus[0] != want {
		t.Fatalf("focus = %+v, want %+v", c.focus, want)
	}
}

func TestDrawNoFocusWithoutFocus(t *testing.T) {
	f := newFixture(t)
	rows := f.addRows("A")
	f.lb.SizeAllocate(200, 100)
	f.lb.SelectChild(rows[0])
	f.lb.Blur()

	c := &recordingCanvas{}
	f.lb.Draw(c)

	if len(c.focus) != 0 {
		t.Fatal("focus drawn without focus")
	}
}

func TestDrawPaintsShownChildren(t *testing.T) {
	f := newFixture(t)
	shown := &paintedRow{testRow: testRow{label: "shown", width: 10, height: 10}}
	hidden := &paintedRow{testRow: testRow{label: "hidden", width: 10, height: 10}}
	shown.Show()
	hidden.Show()
	f.lb.Add(shown)
	f.lb.Add(hidden)
	f.lb.SetFilterFunc(func(e Element) bool { return e != hidden })

	f.lb.Draw(&recordingCanvas{})

	if shown.painted != 1 || hidden.painted != 0 {
		t.Fatalf("painted shown=%d hidden=%d, want 1 and 0", shown.painted, hidden.painted)
	}
}
