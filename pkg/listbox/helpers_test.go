package listbox

import (
	"strings"
	"testing"
	"time"
)

// testRow is a fixed-size row.
type testRow struct {
	Base
	label  string
	group  string
	width  int32
	height int32

	// focusSteps is how many ChildFocus calls succeed before focus leaves.
	focusSteps int
}

func newRow(label string) *testRow {
	r := &testRow{label: label, width: 100, height: 20}
	r.Show()
	return r
}

func (r *testRow) PreferredWidth() (int32, int32) {
	return r.width / 2, r.width
}

func (r *testRow) PreferredHeightForWidth(int32) (int32, int32) {
	return r.height, r.height * 2
}

func (r *testRow) ChildFocus(Direction) bool {
	if r.focusSteps == 0 {
		return false
	}
	r.focusSteps--
	return true
}

func labelOf(e Element) string {
	if r, ok := e.(*testRow); ok {
		return r.label
	}
	return ""
}

func byLabel(a, b Element) int {
	return strings.Compare(labelOf(a), labelOf(b))
}

// testSeparator is a fixed-height separator.
type testSeparator struct {
	Base
	height int32
}

func newSeparator() *testSeparator {
	return &testSeparator{height: 5}
}

func (s *testSeparator) PreferredWidth() (int32, int32) { return 10, 10 }

func (s *testSeparator) PreferredHeightForWidth(int32) (int32, int32) {
	return s.height, s.height
}

type recordingHost struct {
	resizes int
	draws   int
	bells   int
}

func (h *recordingHost) QueueResize() { h.resizes++ }
func (h *recordingHost) QueueDraw()   { h.draws++ }
func (h *recordingHost) ErrorBell()   { h.bells++ }

// fakeClock is a manually advanced clock for LoopTimers.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

type fixture struct {
	lb     *ListBox
	host   *recordingHost
	clock  *fakeClock
	timers *LoopTimers
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	host := &recordingHost{}
	clock := newFakeClock()
	timers := NewLoopTimers(clock.Now)
	lb := New(Options{Host: host, Timers: timers})
	return &fixture{lb: lb, host: host, clock: clock, timers: timers}
}

// addRows adds rows with the given labels and returns them in order.
func (f *fixture) addRows(labels ...string) []*testRow {
	rows := make([]*testRow, len(labels))
	for i, label := range labels {
		rows[i] = newRow(label)
		f.lb.Add(rows[i])
	}
	return rows
}

func labels(elements []Element) string {
	parts := make([]string, len(elements))
	for i, e := range elements {
		parts[i] = labelOf(e)
	}
	return strings.Join(parts, ",")
}

// selectionRecorder collects ChildSelected payloads by label, "<nil>" for
// nil.
type selectionRecorder struct {
	events []string
}

func recordSelections(lb *ListBox) *selectionRecorder {
	r := &selectionRecorder{}
	lb.ChildSelected.Connect(func(e Element) {
		if e == nil {
			r.events = append(r.events, "<nil>")
			return
		}
		r.events = append(r.events, labelOf(e))
	})
	return r
}

func (r *selectionRecorder) String() string {
	return strings.Join(r.events, ",")
}

// recordingCanvas collects paint calls.
type recordingCanvas struct {
	backgrounds []paintedBackground
	focus       []Rect
}

type paintedBackground struct {
	rect  Rect
	state StateFlags
}

func (c *recordingCanvas) RenderBackground(r Rect, state StateFlags) {
	c.backgrounds = append(c.backgrounds, paintedBackground{rect: r, state: state})
}

func (c *recordingCanvas) RenderFocus(r Rect) {
	c.focus = append(c.focus, r)
}

type viewport struct {
	child Element
	adj   *Adjustment
}

func (v *viewport) SetChild(child Element)   { v.child = child }
func (v *viewport) VAdjustment() *Adjustment { return v.adj }
