package listbox

import "testing"

func TestMoveCursorBufferEnds(t *testing.T) {
	f := newFixture(t)
	rows := f.addRows("A", "B", "C")
	rows[2].Hide()

	f.lb.MoveCursor(MoveBufferEnds, 1)
	if f.lb.CursorChild() != rows[1] || f.lb.SelectedChild() != rows[1] {
		t.Fatalf("cursor = %s, want B (last visible)", labelOf(f.lb.CursorChild()))
	}

	f.lb.MoveCursor(MoveBufferEnds, -1)
	if f.lb.CursorChild() != rows[0] {
		t.Fatalf("cursor = %s, want A", labelOf(f.lb.CursorChild()))
	}
}

func TestMoveCursorDisplayLinesRingsBellAtEnds(t *testing.T) {
	f := newFixture(t)
	rows := f.addRows("A", "B", "C")
	f.lb.SelectChild(rows[0])

	f.lb.MoveCursor(MoveDisplayLines, 2)
	if f.lb.CursorChild() != rows[2] {
		t.Fatalf("cursor = %s, want C", labelOf(f.lb.CursorChild()))
	}

	f.lb.MoveCursor(MoveDisplayLines, 1)
	if f.host.bells != 1 {
		t.Fatalf("bells = %d, want 1", f.host.bells)
	}
	if f.lb.CursorChild() != rows[2] {
		t.Fatal("cursor moved past the end")
	}

	f.lb.MoveCursor(MoveDisplayLines, -5)
	if f.host.bells != 2 {
		t.Fatalf("bells = %d, want 2", f.host.bells)
	}
}

func TestMoveCursorWithoutCursorRingsBell(t *testing.T) {
	f := newFixture(t)
	f.addRows("A")

	f.lb.MoveCursor(MoveDisplayLines, 1)
	f.lb.MoveCursor(MovePages, 1)

	if f.host.bells != 2 {
		t.Fatalf("bells = %d, want 2", f.host.bells)
	}
}

func TestMoveCursorPagesUsesAdjustment(t *testing.T) {
	f := newFixture(t)
	var rows []*testRow
	for range 20 {
		rows = append(rows, f.addRows("r")...)
	}
	f.lb.SizeAllocate(200, 20*24)
	adj := NewAdjustment(0, 0, 20*24, 10, 60, 100)
	f.lb.SetAdjustment(adj)
	f.lb.SelectChild(rows[0])

	// Rows are 24 tall; a 60 page reaches rows starting at 24 and 48.
	f.lb.MoveCursor(MovePages, 1)

	if f.lb.CursorChild() != rows[2] {
		t.Fatalf("cursor at y=%d, want row 2", mustBounds(t, f.lb, f.lb.CursorChild()).Y)
	}
	if adj.Value() != 48 {
		t.Fatalf("adjustment value = %v, want 48", adj.Value())
	}

	f.lb.MoveCursor(MovePages, -1)
	if f.lb.CursorChild() != rows[0] {
		t.Fatalf("cursor at y=%d, want row 0", mustBounds(t, f.lb, f.lb.CursorChild()).Y)
	}
}

func TestMoveCursorPagesFallsBackWithoutAdjustment(t *testing.T) {
	f := newFixture(t)
	var rows []*testRow
	for range 10 {
		rows = append(rows, f.addRows("r")...)
	}
	f.lb.SizeAllocate(200, 240)
	f.lb.SelectChild(rows[0])

	f.lb.MoveCursor(MovePages, 1)

	// 100 reaches rows starting at 24, 48, 72 and 96.
	if f.lb.CursorChild() != rows[4] {
		t.Fatalf("cursor at y=%d, want row 4", mustBounds(t, f.lb, f.lb.CursorChild()).Y)
	}
}

func mustBounds(t *testing.T, lb *ListBox, e Element) Rect {
	t.Helper()
	r, ok := lb.RowBounds(e)
	if !ok {
		t.Fatal("no bounds for row")
	}
	return r
}

func TestModifierMovesCursorWithoutSelecting(t *testing.T) {
	f := newFixture(t)
	rows := f.addRows("A", "B", "C")
	f.lb.SelectChild(rows[0])

	f.lb.HandleKey(KeyEvent{Key: KeyEnd, Mods: ModControl})

	if f.lb.CursorChild() != rows[2] {
		t.Fatal("ctrl+end did not move the cursor")
	}
	if f.lb.SelectedChild() != rows[0] {
		t.Fatal("ctrl+end changed the selection")
	}
}

func TestKeyBindings(t *testing.T) {
	f := newFixture(t)
	f.addRows("A", "B", "C")
	var moves []CursorMove
	f.lb.CursorMoved.Connect(func(m CursorMove) { moves = append(moves, m) })

	f.lb.HandleKey(KeyEvent{Key: KeyEnd})
	f.lb.HandleKey(KeyEvent{Key: KeyUp, Mods: ModControl})
	f.lb.HandleKey(KeyEvent{Key: KeyHome})
	f.lb.HandleKey(KeyEvent{Key: KeyPageDown})

	want := []CursorMove{
		{MoveBufferEnds, 1},
		{MoveDisplayLines, -1},
		{MoveBufferEnds, -1},
		{MovePages, 1},
	}
	if len(moves) != len(want) {
		t.Fatalf("moves = %v, want %v", moves, want)
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Fatalf("move %d = %v, want %v", i, moves[i], want[i])
		}
	}
	if f.lb.HandleKey(KeyEvent{Key: KeyNone}) {
		t.Fatal("unbound key consumed")
	}
}

func TestActivateAndToggleCursorChild(t *testing.T) {
	f := newFixture(t)
	rows := f.addRows("A", "B")
	var activated []Element
	f.lb.ChildActivated.Connect(func(e Element) { activated = append(activated, e) })

	// No cursor yet: nothing to activate or toggle.
	f.lb.HandleKey(KeyEvent{Key: KeyEnter})
	f.lb.HandleKey(KeyEvent{Key: KeySpace, Mods: ModControl})
	if len(activated) != 0 || f.lb.SelectedChild() != nil {
		t.Fatal("activation without a cursor")
	}

	f.lb.HandleKey(KeyEvent{Key: KeyEnd})
	f.lb.HandleKey(KeyEvent{Key: KeyEnter})
	if labels(activated) != "B" {
		t.Fatalf("activated = %s, want B", labels(activated))
	}

	f.lb.HandleKey(KeyEvent{Key: KeySpace, Mods: ModControl})
	if f.lb.SelectedChild() != nil {
		t.Fatal("toggle did not deselect the cursor row")
	}

	f.lb.HandleKey(KeyEvent{Key: KeySpace, Mods: ModControl})
	if f.lb.SelectedChild() != rows[1] {
		t.Fatal("toggle did not reselect the cursor row")
	}
	if labels(activated) != "B,B" {
		t.Fatalf("activated = %s, want B,B", labels(activated))
	}
}

func TestActionSignalsRunBeforeDefault(t *testing.T) {
	f := newFixture(t)
	rows := f.addRows("A")
	f.lb.SelectChild(rows[0])

	var order []string
	f.lb.CursorActivated.Connect(func(struct{}) { order = append(order, "handler") })
	f.lb.ChildActivated.Connect(func(Element) { order = append(order, "activated") })

	f.lb.ActivateCursorChild()

	if len(order) != 2 || order[0] != "handler" || order[1] != "activated" {
		t.Fatalf("order = %v, want [handler activated]", order)
	}
}

func TestFocusEntersAtSelectionOrEnds(t *testing.T) {
	f := newFixture(t)
	rows := f.addRows("A", "B", "C")

	if !f.lb.Focus(DirTabForward) {
		t.Fatal("focus did not enter the list")
	}
	if f.lb.CursorChild() != rows[0] {
		t.Fatalf("cursor = %s, want A", labelOf(f.lb.CursorChild()))
	}

	f.lb.SelectChild(nil)
	f.lb.Blur()
	f.lb.cursor = nil
	if !f.lb.Focus(DirTabBackward) {
		t.Fatal("focus did not enter the list backwards")
	}
	if f.lb.CursorChild() != rows[2] {
		t.Fatalf("cursor = %s, want C", labelOf(f.lb.CursorChild()))
	}
}

func TestFocusUpDownMovesAndRingsAtEnds(t *testing.T) {
	f := newFixture(t)
	rows := f.addRows("A", "B")
	f.lb.SelectChild(rows[0])

	if !f.lb.Focus(DirDown) || f.lb.CursorChild() != rows[1] {
		t.Fatal("down did not move to B")
	}
	if f.lb.SelectedChild() != rows[1] {
		t.Fatal("down did not select B")
	}

	if !f.lb.Focus(DirDown) {
		t.Fatal("down at the end should keep focus")
	}
	if f.host.bells != 1 {
		t.Fatalf("bells = %d, want 1", f.host.bells)
	}

	if !f.lb.HandleKey(KeyEvent{Key: KeyUp}) || f.lb.CursorChild() != rows[0] {
		t.Fatal("up key did not move to A")
	}
}

func TestFocusTabLeavesWhenFocused(t *testing.T) {
	f := newFixture(t)
	rows := f.addRows("A")
	f.lb.SelectChild(rows[0])

	if f.lb.Focus(DirTabForward) {
		t.Fatal("tab from a focused list with a plain row should leave")
	}
}

func TestFocusRecursesIntoRow(t *testing.T) {
	f := newFixture(t)
	rows := f.addRows("A", "B")
	rows[0].focusSteps = 1
	f.lb.SelectChild(rows[0])

	if !f.lb.Focus(DirRight) {
		t.Fatal("right did not enter the row")
	}
	if f.lb.FocusChild() != rows[0] || f.lb.HasFocus() {
		t.Fatal("focus child not recorded")
	}

	// The row has no more focusable parts; left returns to the row itself.
	if !f.lb.Focus(DirLeft) {
		t.Fatal("left did not return to the list")
	}
	if !f.lb.HasFocus() || f.lb.CursorChild() != rows[0] {
		t.Fatal("left should put the cursor back on A")
	}
}

func TestFocusInEmptyList(t *testing.T) {
	f := newFixture(t)

	if f.lb.Focus(DirTabForward) {
		t.Fatal("tab into an empty list should pass focus on")
	}
	if !f.lb.Focus(DirDown) {
		t.Fatal("down in an empty list should keep focus")
	}
	if f.host.bells != 1 {
		t.Fatalf("bells = %d, want 1", f.host.bells)
	}
}

func TestCursorClampsAdjustment(t *testing.T) {
	f := newFixture(t)
	var rows []*testRow
	for range 10 {
		rows = append(rows, f.addRows("r")...)
	}
	f.lb.SizeAllocate(200, 240)
	adj := NewAdjustment(0, 0, 240, 10, 45, 50)
	f.lb.SetAdjustment(adj)

	f.lb.SelectChild(rows[5])

	// Row 5 spans [120, 144); the page must end at 144.
	if adj.Value() != 94 {
		t.Fatalf("adjustment value = %v, want 94", adj.Value())
	}
}
