// Package listbox provides a vertical list container that owns an ordered
// set of child elements and adds selection, keyboard cursor navigation,
// hover and press feedback, sorting, filtering, separators and drag
// auto-scroll on top of them.
//
// A ListBox does not talk to a window system. A host feeds it pointer, key
// and drag events, gives it a Canvas to paint on and calls SizeAllocate when
// layout changes. In return the list box asks the host to redraw, re-run
// layout or ring the bell through the Host interface. Everything runs on the
// host's event loop goroutine; a ListBox is not safe for concurrent use.
package listbox

import (
	"github.com/BrandonKowalski/listbox/pkg/listbox/internal"
)

// Options configures a new ListBox.
type Options struct {
	Host     Host      // Receives redraw, relayout and bell requests; a no-op host is used when nil
	Timers   Timers    // Schedules drag auto-scroll; drag auto-scroll never ticks when nil
	Settings *Settings // Defaults from DefaultSettings when nil
}

// CursorMove is the payload of ListBox.CursorMoved.
type CursorMove struct {
	Step  MovementStep
	Count int
}

// ListBox is a vertical, selectable, sortable, filterable list container.
type ListBox struct {
	Base

	host     Host
	timers   Timers
	settings Settings

	children   *internal.Sequence[*childRecord]
	rows       map[Element]*childRecord
	separators map[Element]*childRecord

	sortFunc         SortFunc
	sortRelease      func()
	filterFunc       FilterFunc
	filterRelease    func()
	separatorFunc    SeparatorFunc
	separatorRelease func()

	selected *childRecord
	prelight *childRecord
	cursor   *childRecord
	active   *childRecord
	// activeFlag is true while the pointer is still over the pressed row.
	activeFlag bool

	adjustment *Adjustment

	hasFocus    bool
	focusChild  Element
	currentMods Modifier

	dragHighlighted Element
	autoScrollTimer TimerID
	autoScrolling   bool

	// ChildSelected fires with the newly selected row, or nil when the
	// selection is cleared.
	ChildSelected Signal[Element]
	// ChildActivated fires with the row that was activated.
	ChildActivated Signal[Element]

	// Action signals. Handlers run before the default behavior.
	CursorActivated Signal[struct{}]
	CursorToggled   Signal[struct{}]
	CursorMoved     Signal[CursorMove]

	// OnUsageError, when set, is told about every rejected call.
	OnUsageError func(err *UsageError)
}

// New creates an empty list box. It starts visible with single selection
// and single-click activation.
func New(options Options) *ListBox {
	lb := &ListBox{
		host:       options.Host,
		timers:     options.Timers,
		settings:   DefaultSettings(),
		children:   internal.NewSequence[*childRecord](),
		rows:       make(map[Element]*childRecord),
		separators: make(map[Element]*childRecord),
	}
	if lb.host == nil {
		lb.host = nopHost{}
	}
	if options.Settings != nil {
		lb.ApplySettings(*options.Settings)
	}
	lb.Base.Show()

	internal.GetInternalLogger().Debug("List box created",
		"selection_mode", lb.settings.SelectionMode.String(),
		"activate_on_single_click", lb.settings.ActivateOnSingleClick)
	return lb
}

// Settings returns a copy of the current settings.
func (lb *ListBox) Settings() Settings {
	return lb.settings
}

// ApplySettings replaces every tunable at once. Settings that fail
// Validate are rejected as a whole and the current ones kept.
func (lb *ListBox) ApplySettings(s Settings) {
	if err := s.Validate(); err != nil {
		lb.reportUsage("apply_settings", err)
		return
	}
	mode := s.SelectionMode
	s.SelectionMode = lb.settings.SelectionMode
	lb.settings = s
	lb.SetSelectionMode(mode)
	lb.host.QueueResize()
}

func (lb *ListBox) SetHost(host Host) {
	if host == nil {
		host = nopHost{}
	}
	lb.host = host
}

func (lb *ListBox) SetTimers(timers Timers) {
	lb.cancelAutoScroll()
	lb.timers = timers
}

// Show makes the list box visible. Separators are recomputed first because
// they are not maintained while the list box is hidden.
func (lb *ListBox) Show() {
	if lb.Visible() {
		return
	}
	lb.Reseparate()
	lb.Base.Show()
	lb.host.QueueResize()
}

func (lb *ListBox) Hide() {
	if !lb.Visible() {
		return
	}
	lb.Base.Hide()
	lb.host.QueueResize()
}

// Destroy removes every row, releases the policies and stops auto-scroll.
// Rows are detached but not destroyed; separators are destroyed. No policy
// runs and no signal fires while the rows are removed.
func (lb *ListBox) Destroy() {
	if lb.Destroyed() {
		return
	}
	lb.cancelAutoScroll()
	lb.DragUnhighlightWidget()

	lb.sortFunc = nil
	lb.filterFunc = nil
	lb.separatorFunc = nil

	lb.ChildSelected.disconnectAll()
	lb.ChildActivated.disconnectAll()
	lb.CursorActivated.disconnectAll()
	lb.CursorToggled.disconnectAll()
	lb.CursorMoved.disconnectAll()
	lb.OnUsageError = nil

	for _, child := range lb.Children() {
		lb.Remove(child)
	}

	runRelease(&lb.sortRelease)
	runRelease(&lb.filterRelease)
	runRelease(&lb.separatorRelease)

	lb.adjustment = nil
	lb.Base.Destroy()
}

// SetAdjustment attaches the vertical scroll range used to keep the cursor
// in view, size page movement and drive drag auto-scroll. nil detaches it.
func (lb *ListBox) SetAdjustment(adj *Adjustment) {
	lb.adjustment = adj
}

func (lb *ListBox) Adjustment() *Adjustment {
	return lb.adjustment
}

// AddToScrolled places the list box in a viewport and adopts its vertical
// adjustment.
func (lb *ListBox) AddToScrolled(viewport Scrollable) {
	viewport.SetChild(lb)
	lb.SetAdjustment(viewport.VAdjustment())
}
