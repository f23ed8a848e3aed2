package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/listbox/pkg/listbox"
	"github.com/BrandonKowalski/listbox/pkg/listbox/internal"
)

const (
	labelTextureCacheSize = 4
	iconGap               = int32(10)
)

type textureKey struct {
	text  string
	color sdl.Color
}

type cachedTexture struct {
	tex  *sdl.Texture
	w, h int32
}

// Label is a list row showing one line of text and an optional icon. Header
// labels use the smaller header font and are meant to be used as separators.
type Label struct {
	listbox.Base

	text    string
	header  bool
	iconSVG string
	padding internal.Padding

	icon     *sdl.Texture
	iconSize int32
	textures *internal.LRU[textureKey, cachedTexture]
}

// NewLabel creates a text row.
func NewLabel(text string) *Label {
	l := &Label{
		text:    text,
		padding: internal.Padding{Top: 8, Right: 20, Bottom: 8, Left: 20},
	}
	l.textures = internal.NewLRUWithSize(labelTextureCacheSize, func(_ textureKey, c cachedTexture) {
		c.tex.Destroy()
	})
	l.Show()
	return l
}

// NewHeader creates a group header row.
func NewHeader(text string) *Label {
	l := NewLabel(text)
	l.header = true
	l.padding = internal.Padding{Top: 12, Right: 12, Bottom: 4, Left: 12}
	return l
}

// WithIcon puts an SVG icon in front of the text.
func (l *Label) WithIcon(svg string) *Label {
	l.iconSVG = svg
	l.dropIcon()
	return l
}

func (l *Label) Text() string { return l.text }

// SetText changes the text. Callers that sort or filter on the text should
// follow with ListBox.ChildChanged.
func (l *Label) SetText(text string) {
	l.text = text
}

func (l *Label) IsHeader() bool { return l.header }

func (l *Label) font() *ttf.Font {
	if l.header {
		return fonts.header
	}
	return fonts.row
}

func (l *Label) textSize() (int32, int32) {
	f := l.font()
	if f == nil {
		return 0, 0
	}
	if l.text == "" {
		return 0, int32(f.Height())
	}
	w, h, err := f.SizeUTF8(l.text)
	if err != nil {
		internal.GetInternalLogger().Debug("Failed to measure label", "text", l.text, "error", err)
		return 0, int32(f.Height())
	}
	return int32(w), int32(h)
}

func (l *Label) iconExtent() int32 {
	if l.iconSVG == "" {
		return 0
	}
	_, h := l.textSize()
	return h
}

func (l *Label) PreferredWidth() (int32, int32) {
	w, _ := l.textSize()
	icon := l.iconExtent()
	if icon > 0 {
		icon += iconGap
	}
	nat := l.padding.Horizontal() + icon + w
	return l.padding.Horizontal() + icon, nat
}

func (l *Label) PreferredHeightForWidth(int32) (int32, int32) {
	_, h := l.textSize()
	h += l.padding.Vertical()
	return h, h
}

func (l *Label) textColor(c *Canvas) sdl.Color {
	if l.header {
		return c.Theme.HeaderTextColor
	}
	a := l.Allocation()
	if c.StateAt(a.X+a.W/2, a.Y+a.H/2).Has(listbox.StateSelected) {
		return c.Theme.HighlightedTextColor
	}
	return c.Theme.TextColor
}

func (l *Label) Draw(canvas listbox.Canvas) {
	c, ok := canvas.(*Canvas)
	if !ok || !c.Visible(l.Allocation()) {
		return
	}
	a := l.Allocation()
	if l.DragHighlighted() {
		c.RenderFocus(a)
	}
	x := a.X + l.padding.Left
	y := a.Y + l.padding.Top

	if size := l.iconExtent(); size > 0 {
		if l.icon == nil || l.iconSize != size {
			l.dropIcon()
			tex, err := iconTexture(c.Renderer, l.iconSVG, int(size))
			if err != nil {
				internal.GetInternalLogger().Warn("Failed to rasterize icon", "error", err)
				l.iconSVG = ""
			} else {
				l.icon, l.iconSize = tex, size
			}
		}
		if l.icon != nil {
			col := l.textColor(c)
			l.icon.SetColorMod(col.R, col.G, col.B)
			c.CopyTexture(l.icon, size, size, listbox.Rect{X: x, Y: y, W: size, H: size})
			x += size + iconGap
		}
	}

	if l.text == "" || l.font() == nil {
		return
	}
	t, ok := l.texture(c.Renderer, l.textColor(c))
	if !ok {
		return
	}
	maxW := a.X + a.W - l.padding.Right - x
	c.CopyTexture(t.tex, t.w, t.h, listbox.Rect{X: x, Y: y, W: min(t.w, max(maxW, 0)), H: t.h})
}

func (l *Label) texture(renderer *sdl.Renderer, color sdl.Color) (cachedTexture, bool) {
	key := textureKey{text: l.text, color: color}
	if t, ok := l.textures.Get(key); ok {
		return t, true
	}

	surface, err := l.font().RenderUTF8Blended(l.text, color)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to render label text", "text", l.text, "error", err)
		return cachedTexture{}, false
	}
	defer surface.Free()

	tex, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to create label texture", "error", err)
		return cachedTexture{}, false
	}

	t := cachedTexture{tex: tex, w: surface.W, h: surface.H}
	l.textures.Set(key, t)
	return t, true
}

func (l *Label) dropIcon() {
	if l.icon != nil {
		l.icon.Destroy()
		l.icon = nil
	}
	l.iconSize = 0
}

// Destroy releases the label's textures.
func (l *Label) Destroy() {
	l.textures.Purge()
	l.dropIcon()
	l.Base.Destroy()
}
