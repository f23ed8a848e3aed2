package listbox

import (
	"testing"
	"time"
)

func TestDragNearTopArmsAutoScrollAndLeaveCancels(t *testing.T) {
	f := newFixture(t)
	adj := NewAdjustment(200, 0, 1000, 10, 90, 100)
	f.lb.SetAdjustment(adj)

	if f.lb.DragMotion(0, 210) {
		t.Fatal("drag motion should never claim the event")
	}
	if !f.lb.AutoScrolling() || f.timers.Pending() != 1 {
		t.Fatal("drag near the top did not arm auto-scroll")
	}

	f.timers.Dispatch(f.clock.Advance(150 * time.Millisecond))
	if adj.Value() != 190 {
		t.Fatalf("value = %v after one tick, want 190", adj.Value())
	}

	f.lb.DragLeave()
	if f.lb.AutoScrolling() || f.timers.Pending() != 0 {
		t.Fatal("drag leave did not cancel auto-scroll")
	}

	f.timers.Dispatch(f.clock.Advance(time.Second))
	if adj.Value() != 190 {
		t.Fatalf("value = %v, timer fired after cancel", adj.Value())
	}
}

func TestDragNearBottomScrollsDown(t *testing.T) {
	f := newFixture(t)
	adj := NewAdjustment(200, 0, 1000, 10, 90, 100)
	f.lb.SetAdjustment(adj)

	f.lb.DragMotion(0, 290)
	f.timers.Dispatch(f.clock.Advance(150 * time.Millisecond))
	f.timers.Dispatch(f.clock.Advance(150 * time.Millisecond))

	if adj.Value() != 220 {
		t.Fatalf("value = %v after two ticks, want 220", adj.Value())
	}
}

func TestDragInMiddleDoesNotScroll(t *testing.T) {
	f := newFixture(t)
	f.lb.SetAdjustment(NewAdjustment(200, 0, 1000, 10, 90, 100))

	f.lb.DragMotion(0, 210)
	f.lb.DragMotion(0, 250)

	if f.lb.AutoScrolling() || f.timers.Pending() != 0 {
		t.Fatal("motion away from the edges left auto-scroll armed")
	}
}

func TestDragWithoutAdjustmentDoesNothing(t *testing.T) {
	f := newFixture(t)

	f.lb.DragMotion(0, 0)

	if f.lb.AutoScrolling() {
		t.Fatal("auto-scroll armed without an adjustment")
	}
}

func TestDragHighlight(t *testing.T) {
	f := newFixture(t)
	rows := f.addRows("A", "B")

	f.lb.DragHighlightWidget(rows[0])
	if !rows[0].DragHighlighted() || f.lb.DragHighlighted() != rows[0] {
		t.Fatal("A not highlighted")
	}

	f.lb.DragHighlightWidget(rows[1])
	if rows[0].DragHighlighted() || !rows[1].DragHighlighted() {
		t.Fatal("highlight did not move to B")
	}

	f.lb.DragLeave()
	if rows[1].DragHighlighted() || f.lb.DragHighlighted() != nil {
		t.Fatal("drag leave kept the highlight")
	}
}

func TestRemovingHighlightedRowClearsHighlight(t *testing.T) {
	f := newFixture(t)
	rows := f.addRows("A")
	f.lb.DragHighlightWidget(rows[0])

	f.lb.Remove(rows[0])

	if f.lb.DragHighlighted() != nil || rows[0].DragHighlighted() {
		t.Fatal("removed row still highlighted")
	}
}
