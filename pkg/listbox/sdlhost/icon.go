package sdlhost

import (
	"errors"
	"image"
	"strings"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

var errEmptyIcon = errors.New("empty icon")

// RasterizeIcon renders an SVG document into a size x size RGBA image.
func RasterizeIcon(svg string, size int) (*image.RGBA, error) {
	if size <= 0 || strings.TrimSpace(svg) == "" {
		return nil, errEmptyIcon
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}

// iconTexture uploads a rasterized icon to the renderer.
func iconTexture(renderer *sdl.Renderer, svg string, size int) (*sdl.Texture, error) {
	rgba, err := RasterizeIcon(svg, size)
	if err != nil {
		return nil, err
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		int32(size), int32(size), 32, int32(rgba.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, NewInfrastructureError("icon_surface", err)
	}
	defer surface.Free()

	tex, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, NewInfrastructureError("icon_texture", err)
	}
	tex.SetBlendMode(sdl.BLENDMODE_BLEND)
	return tex, nil
}
