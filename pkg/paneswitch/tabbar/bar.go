// Package tabbar lays out a row of tabs, one per view of a navigation controller,
// and turns taps on them into navigation requests. Drawing lives in sdlbar.
package tabbar

import (
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/paneswitch/pkg/paneswitch/internal"
	"github.com/BrandonKowalski/paneswitch/pkg/paneswitch/navigation"
	"github.com/BrandonKowalski/paneswitch/pkg/paneswitch/titles"
)

// Tab is one laid out tab.
type Tab[V ~string] struct {
	View    V
	Title   string
	Active  bool
	Bounds  image.Rectangle // hit area
	Content image.Rectangle // Bounds minus padding
	Icon    *image.RGBA     // nil when the view has no icon
}

// Bar holds the tabs of one navigation controller.
type Bar[V ~string] struct {
	nav     navigation.Navigation[V]
	titles  *titles.Catalog
	padding internal.Padding

	mu      sync.RWMutex
	icons   map[V]*image.RGBA
	version uint64 // bumped on every icon change
}

// New creates a bar for nav. A nil catalog uses English fallback titles.
func New[V ~string](nav navigation.Navigation[V], catalog *titles.Catalog) *Bar[V] {
	if catalog == nil {
		catalog = titles.NewCatalog(language.English)
	}
	return &Bar[V]{
		nav:     nav,
		titles:  catalog,
		padding: internal.UniformPadding(4),
		icons:   make(map[V]*image.RGBA),
	}
}

// SetPadding sets the uniform padding between a tab's edge and its content.
func (b *Bar[V]) SetPadding(px int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.padding = internal.UniformPadding(px)
}

// SetIcon rasterizes the SVG read from svg into a size x size icon for view.
func (b *Bar[V]) SetIcon(view V, svg io.Reader, size int) error {
	if size <= 0 {
		return fmt.Errorf("tabbar: invalid icon size %d", size)
	}

	img, err := Rasterize(svg, size)
	if err != nil {
		return fmt.Errorf("tabbar: icon for %s: %w", string(view), err)
	}

	b.mu.Lock()
	b.icons[view] = img
	b.version++
	b.mu.Unlock()
	return nil
}

// IconVersion changes whenever an icon is set. Renderers use it to drop cached textures.
func (b *Bar[V]) IconVersion() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.version
}

// Layout splits bounds into equal-width tabs in view declaration order.
// Rounding leftovers go to the later tabs so the row always fills bounds.
func (b *Bar[V]) Layout(bounds image.Rectangle) []Tab[V] {
	views := b.nav.Views()
	if len(views) == 0 || bounds.Empty() {
		return nil
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	tabs := make([]Tab[V], 0, len(views))
	width := bounds.Dx()
	for i, v := range views {
		outer := image.Rect(
			bounds.Min.X+i*width/len(views), bounds.Min.Y,
			bounds.Min.X+(i+1)*width/len(views), bounds.Max.Y,
		)
		tabs = append(tabs, Tab[V]{
			View:    v,
			Title:   b.titles.Title(string(v)),
			Active:  b.nav.IsActive(v),
			Bounds:  outer,
			Content: inset(outer, b.padding),
			Icon:    b.icons[v],
		})
	}
	return tabs
}

// Tap navigates to the tab under pt. It reports false when pt hits no tab.
func (b *Bar[V]) Tap(bounds image.Rectangle, pt image.Point) (navigation.Outcome, bool) {
	for _, tab := range b.Layout(bounds) {
		if pt.In(tab.Bounds) {
			return b.nav.Navigate(tab.View), true
		}
	}
	return 0, false
}

func inset(r image.Rectangle, p internal.Padding) image.Rectangle {
	out := image.Rectangle{
		Min: image.Pt(r.Min.X+p.Left, r.Min.Y+p.Top),
		Max: image.Pt(r.Max.X-p.Right, r.Max.Y-p.Bottom),
	}
	if out.Empty() {
		return image.Rectangle{Min: r.Min, Max: r.Min}
	}
	return out
}

// Rasterize renders an SVG document into a size x size RGBA image.
func Rasterize(svg io.Reader, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(svg)
	if err != nil {
		return nil, err
	}

	icon.SetTarget(0, 0, float64(size), float64(size))
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)

	return img, nil
}
