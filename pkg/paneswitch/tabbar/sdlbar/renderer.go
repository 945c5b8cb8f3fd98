// Package sdlbar draws a tabbar.Bar with SDL.
package sdlbar

import (
	"fmt"
	"image"
	"image/color"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/paneswitch/pkg/paneswitch/internal"
	"github.com/BrandonKowalski/paneswitch/pkg/paneswitch/tabbar"
)

// indicatorHeight is the height of the accent line under the active tab.
const indicatorHeight = 3

// Renderer draws one bar. It must be used from the goroutine that owns the
// SDL renderer.
type Renderer[V ~string] struct {
	bar     *tabbar.Bar[V]
	cache   *textureCache
	version uint64
}

// NewRenderer creates a renderer for bar.
func NewRenderer[V ~string](bar *tabbar.Bar[V]) *Renderer[V] {
	return &Renderer[V]{
		bar:     bar,
		cache:   newTextureCache(defaultMaxCacheSize),
		version: bar.IconVersion(),
	}
}

// Draw draws the bar into bounds using the active theme.
func (r *Renderer[V]) Draw(renderer *sdl.Renderer, bounds image.Rectangle) error {
	r.syncIcons()
	theme := internal.GetTheme()

	for _, tab := range r.bar.Layout(bounds) {
		bg := theme.BackgroundColor
		if tab.Active {
			bg = theme.HighlightColor
		}
		if err := fill(renderer, tab.Bounds, bg); err != nil {
			return err
		}

		if tab.Active {
			line := image.Rect(tab.Bounds.Min.X, tab.Bounds.Max.Y-indicatorHeight, tab.Bounds.Max.X, tab.Bounds.Max.Y)
			if err := fill(renderer, line, theme.AccentColor); err != nil {
				return err
			}
		}

		if tab.Icon == nil || tab.Content.Empty() {
			continue
		}

		texture, err := r.texture(renderer, string(tab.View), tab.Icon)
		if err != nil {
			return err
		}

		dst := toRect(centered(tab.Content, tab.Icon.Bounds().Size()))
		if err := renderer.Copy(texture, nil, &dst); err != nil {
			return fmt.Errorf("sdlbar: copy icon %s: %w", string(tab.View), err)
		}
	}

	return nil
}

// syncIcons drops cached textures once the bar's icons changed.
func (r *Renderer[V]) syncIcons() {
	if v := r.bar.IconVersion(); v != r.version {
		r.cache.destroy()
		r.version = v
	}
}

// Close releases cached textures.
func (r *Renderer[V]) Close() {
	r.cache.destroy()
}

func (r *Renderer[V]) texture(renderer *sdl.Renderer, key string, icon *image.RGBA) (*sdl.Texture, error) {
	if t := r.cache.get(key); t != nil {
		return t, nil
	}

	size := icon.Bounds().Size()
	// image.RGBA stores bytes as R,G,B,A which is ABGR8888 on little-endian hosts.
	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&icon.Pix[0]),
		int32(size.X), int32(size.Y), 32, int32(icon.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, fmt.Errorf("sdlbar: icon surface %s: %w", key, err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("sdlbar: icon texture %s: %w", key, err)
	}

	r.cache.set(key, texture)
	return texture, nil
}

func fill(renderer *sdl.Renderer, rect image.Rectangle, c color.RGBA) error {
	if err := renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return fmt.Errorf("sdlbar: set draw color: %w", err)
	}
	r := toRect(rect)
	if err := renderer.FillRect(&r); err != nil {
		return fmt.Errorf("sdlbar: fill: %w", err)
	}
	return nil
}

// centered fits an icon of size into area, keeping it centered and never scaling up.
func centered(area image.Rectangle, size image.Point) image.Rectangle {
	side := min(area.Dx(), area.Dy(), size.X)
	origin := image.Pt(
		area.Min.X+(area.Dx()-side)/2,
		area.Min.Y+(area.Dy()-side)/2,
	)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(side, side))}
}

func toRect(r image.Rectangle) sdl.Rect {
	return sdl.Rect{
		X: int32(r.Min.X),
		Y: int32(r.Min.Y),
		W: int32(r.Dx()),
		H: int32(r.Dy()),
	}
}
