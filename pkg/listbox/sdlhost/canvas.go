package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/listbox/pkg/listbox"
)

type paintedState struct {
	rect  listbox.Rect
	state listbox.StateFlags
}

// Canvas paints list box requests onto an SDL renderer. Rectangles arrive in
// list box coordinates and are shifted by the origin, which already accounts
// for the scroll offset.
type Canvas struct {
	Renderer *sdl.Renderer
	Theme    Theme
	OriginX  int32
	OriginY  int32
	// Clip is the visible area in window coordinates.
	Clip sdl.Rect

	painted []paintedState
}

// NewCanvas returns a canvas that starts a fresh frame.
func NewCanvas(renderer *sdl.Renderer, theme Theme, originX, originY int32, clip sdl.Rect) *Canvas {
	return &Canvas{
		Renderer: renderer,
		Theme:    theme,
		OriginX:  originX,
		OriginY:  originY,
		Clip:     clip,
	}
}

// ToWindow converts a list box rectangle into window coordinates.
func (c *Canvas) ToWindow(r listbox.Rect) sdl.Rect {
	return sdl.Rect{X: r.X + c.OriginX, Y: r.Y + c.OriginY, W: r.W, H: r.H}
}

// Visible reports whether any part of r lands inside the clip area.
func (c *Canvas) Visible(r listbox.Rect) bool {
	wr := c.ToWindow(r)
	_, ok := wr.Intersect(&c.Clip)
	return ok
}

func (c *Canvas) RenderBackground(r listbox.Rect, state listbox.StateFlags) {
	c.painted = append(c.painted, paintedState{rect: r, state: state})

	color, ok := c.Theme.BackgroundFor(state)
	if !ok {
		color = c.Theme.BackgroundColor
	}
	c.fill(r, color)
}

func (c *Canvas) RenderFocus(r listbox.Rect) {
	wr := c.ToWindow(r)
	if _, ok := wr.Intersect(&c.Clip); !ok {
		return
	}
	fc := c.Theme.FocusColor
	c.Renderer.SetDrawColor(fc.R, fc.G, fc.B, fc.A)
	c.Renderer.DrawRect(&wr)
}

// StateAt returns the merged row state painted under the point this frame.
// Labels use it to pick their text color.
func (c *Canvas) StateAt(x, y int32) listbox.StateFlags {
	var state listbox.StateFlags
	for _, p := range c.painted {
		if p.rect.Contains(x, y) {
			state |= p.state
		}
	}
	return state
}

func (c *Canvas) fill(r listbox.Rect, color sdl.Color) {
	wr := c.ToWindow(r)
	clipped, ok := wr.Intersect(&c.Clip)
	if !ok {
		return
	}
	c.Renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	c.Renderer.FillRect(&clipped)
}

// CopyTexture draws tex at r, a list box rectangle, trimmed to the clip area.
func (c *Canvas) CopyTexture(tex *sdl.Texture, texW, texH int32, r listbox.Rect) {
	dst := c.ToWindow(r)
	clipped, ok := dst.Intersect(&c.Clip)
	if !ok {
		return
	}

	src := sdl.Rect{
		X: clipped.X - dst.X,
		Y: clipped.Y - dst.Y,
		W: min(clipped.W, texW-(clipped.X-dst.X)),
		H: min(clipped.H, texH-(clipped.Y-dst.Y)),
	}
	if src.W <= 0 || src.H <= 0 {
		return
	}
	clipped.W, clipped.H = src.W, src.H
	c.Renderer.Copy(tex, &src, &clipped)
}

// Flash outlines the clip area in the bell color.
func (c *Canvas) Flash() {
	bc := c.Theme.BellColor
	c.Renderer.SetDrawColor(bc.R, bc.G, bc.B, bc.A)
	for i := int32(0); i < 3; i++ {
		r := sdl.Rect{X: c.Clip.X + i, Y: c.Clip.Y + i, W: c.Clip.W - 2*i, H: c.Clip.H - 2*i}
		c.Renderer.DrawRect(&r)
	}
}
