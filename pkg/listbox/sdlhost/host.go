package sdlhost

import (
	"time"

	"github.com/BrandonKowalski/listbox/pkg/listbox/internal"
)

const bellDuration = 150 * time.Millisecond

// frameHost collects list box requests until the next frame.
type frameHost struct {
	needsLayout bool
	needsDraw   bool
	bellUntil   time.Time
	now         func() time.Time
}

func newFrameHost(now func() time.Time) *frameHost {
	if now == nil {
		now = time.Now
	}
	return &frameHost{needsLayout: true, needsDraw: true, now: now}
}

func (h *frameHost) QueueResize() {
	h.needsLayout = true
	h.needsDraw = true
}

func (h *frameHost) QueueDraw() {
	h.needsDraw = true
}

func (h *frameHost) ErrorBell() {
	internal.GetInternalLogger().Debug("Bell")
	h.bellUntil = h.now().Add(bellDuration)
	h.needsDraw = true
}

// ringing reports whether the bell flash is still showing. While it is the
// frame keeps being redrawn so the flash disappears on time.
func (h *frameHost) ringing() bool {
	if h.bellUntil.IsZero() {
		return false
	}
	if h.now().Before(h.bellUntil) {
		return true
	}
	h.bellUntil = time.Time{}
	h.needsDraw = true
	return false
}

// takeLayout reports and clears a pending relayout.
func (h *frameHost) takeLayout() bool {
	v := h.needsLayout
	h.needsLayout = false
	return v
}

// takeDraw reports and clears a pending redraw.
func (h *frameHost) takeDraw() bool {
	v := h.needsDraw
	h.needsDraw = false
	return v
}
