// Package termhost runs a list box in a terminal with bubbletea. Rows are
// one list box unit per terminal line; mouse, keyboard and resize messages
// are translated into list box calls and the frame is painted with lipgloss.
package termhost

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrandonKowalski/listbox/pkg/listbox"
	"github.com/BrandonKowalski/listbox/pkg/listbox/constants"
	"github.com/BrandonKowalski/listbox/pkg/listbox/internal"
)

const (
	frameInterval = 50 * time.Millisecond
	bellDuration  = 300 * time.Millisecond
	wheelLines    = 3
)

// Settings returns list box settings suited to a character grid: no focus
// ring padding, a two-line auto-scroll margin and ten-line pages.
func Settings() listbox.Settings {
	s := listbox.DefaultSettings()
	s.FocusLineWidth = 0
	s.FocusPadding = 0
	s.AutoScrollMargin = 2
	s.PageSize = 10
	return s
}

type tickMsg time.Time

type termHost struct {
	needsLayout bool
	bellUntil   time.Time
	now         func() time.Time
}

func (h *termHost) QueueResize() { h.needsLayout = true }

// QueueDraw is a no-op: bubbletea repaints after every message.
func (h *termHost) QueueDraw() {}

func (h *termHost) ErrorBell() {
	h.bellUntil = h.now().Add(bellDuration)
}

func (h *termHost) ringing() bool {
	return h.now().Before(h.bellUntil)
}

// Model is a bubbletea model wrapping one list box.
type Model struct {
	Box    *listbox.ListBox
	Keys   KeyMap
	Styles Styles
	Timers *listbox.LoopTimers

	child listbox.Element
	adj   *listbox.Adjustment
	host  *termHost
	now   func() time.Time

	width, height int

	pointerInside bool
	dragging      bool
	lastPress     listbox.Element
	lastPressAt   time.Time
}

// Option configures a Model.
type Option func(*Model)

// WithClock replaces time.Now for double-click detection, the bell and
// timers. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// WithStyles replaces DefaultStyles.
func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.Styles = s
	}
}

// NewModel puts box in a terminal-sized scroll area and routes its
// relayout, bell and timer requests through the model.
func NewModel(box *listbox.ListBox, opts ...Option) *Model {
	m := &Model{
		Box:    box,
		Keys:   DefaultKeyMap,
		Styles: DefaultStyles(),
		adj:    listbox.NewAdjustment(0, 0, 0, 0, 0, 0),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.host = &termHost{needsLayout: true, now: m.now}
	m.Timers = listbox.NewLoopTimers(m.now)

	box.SetHost(m.host)
	box.SetTimers(m.Timers)
	box.AddToScrolled(m)
	return m
}

func (m *Model) SetChild(child listbox.Element) {
	m.child = child
	m.host.needsLayout = true
}

func (m *Model) VAdjustment() *listbox.Adjustment { return m.adj }

func (m *Model) tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init focuses the first row and starts the frame tick that drives timers.
func (m *Model) Init() tea.Cmd {
	m.Box.Focus(listbox.DirTabForward)
	return m.tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tickMsg:
		m.Timers.Dispatch(time.Time(msg))
		cmd = m.tick()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.host.needsLayout = true

	case tea.KeyMsg:
		if key.Matches(msg, m.Keys.Quit) {
			return m, tea.Quit
		}
		if ev, ok := m.Keys.keyEvent(msg); ok {
			m.Box.HandleKey(ev)
		}

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	if m.host.needsLayout {
		m.layout()
	}
	return m, cmd
}

// layout allocates the child at the terminal width and configures the
// adjustment: the page is the terminal height, a step one line.
func (m *Model) layout() {
	m.host.needsLayout = false
	if m.child == nil {
		return
	}

	w, h := int32(m.width), int32(m.height)
	_, nat := m.child.PreferredHeightForWidth(w)
	m.child.Allocate(listbox.Rect{W: w, H: max(nat, h)})

	page := float64(h)
	m.adj.Configure(m.adj.Value(), 0, float64(nat), 1, max(page-1, 1), page)
	internal.GetInternalLogger().Debug("Terminal layout", "width", w, "height", h, "content", nat)
}

func (m *Model) pointer(msg tea.MouseMsg) listbox.PointerEvent {
	var mods listbox.Modifier
	if msg.Shift {
		mods |= listbox.ModShift
	}
	if msg.Ctrl {
		mods |= listbox.ModControl
	}
	if msg.Alt {
		mods |= listbox.ModAlt
	}
	return listbox.PointerEvent{
		X:    float64(msg.X),
		Y:    float64(msg.Y) + m.adj.Value(),
		Mods: mods,
	}
}

// clicks counts a press on the same row within the double-click window as
// the second click. Terminals do not report click counts.
func (m *Model) clicks(ev listbox.PointerEvent) int {
	row := m.Box.ChildAtY(int32(ev.Y))
	now := m.now()
	double := row != nil && row == m.lastPress && now.Sub(m.lastPressAt) <= constants.DoubleClickWindow

	if double {
		m.lastPress = nil
		return 2
	}
	m.lastPress, m.lastPressAt = row, now
	return 1
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	ev := m.pointer(msg)

	inside := msg.X >= 0 && msg.X < m.width && msg.Y >= 0 && msg.Y < m.height
	if !inside {
		if m.pointerInside {
			m.pointerInside = false
			m.Box.HandleLeave(ev)
		}
		return
	}
	if !m.pointerInside {
		m.pointerInside = true
		m.Box.HandleEnter(ev)
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		lines := float64(wheelLines)
		if msg.Button == tea.MouseButtonWheelUp {
			lines = -lines
		}
		m.adj.SetValue(m.adj.Value() + lines*m.adj.StepIncrement())
		m.Box.HandleMotion(m.pointer(msg))

	case tea.MouseButtonRight:
		switch msg.Action {
		case tea.MouseActionPress:
			m.dragging = true
			m.dragMotion(ev)
		case tea.MouseActionRelease:
			m.endDrag()
		default:
			m.dragMotion(ev)
		}

	case tea.MouseButtonLeft:
		ev.Button = 1
		switch msg.Action {
		case tea.MouseActionPress:
			ev.Clicks = m.clicks(ev)
			m.Box.HandleButtonPress(ev)
		case tea.MouseActionRelease:
			m.Box.HandleButtonRelease(ev)
		default:
			m.Box.HandleMotion(ev)
		}

	default:
		// Some terminals report releases without the button.
		switch {
		case msg.Action == tea.MouseActionRelease && m.dragging:
			m.endDrag()
		case msg.Action == tea.MouseActionRelease:
			ev.Button = 1
			m.Box.HandleButtonRelease(ev)
		case m.dragging:
			m.dragMotion(ev)
		default:
			m.Box.HandleMotion(ev)
		}
	}
}

// dragMotion treats a held right button as a drag over the list.
func (m *Model) dragMotion(ev listbox.PointerEvent) {
	m.Box.DragMotion(ev.X, ev.Y)
	if target := m.Box.ChildAtY(int32(ev.Y)); target != nil {
		m.Box.DragHighlightWidget(target)
	}
}

func (m *Model) endDrag() {
	m.dragging = false
	m.Box.DragLeave()
}

func (m *Model) View() string {
	c := NewLineCanvas(int(m.adj.Value()), m.width, m.height)
	m.Box.Draw(c)
	return c.Render(m.Styles, m.host.ringing())
}

// Run shows box full screen with mouse support until the user quits or ctx
// is done.
func Run(ctx context.Context, box *listbox.ListBox, opts ...Option) error {
	m := NewModel(box, opts...)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}
