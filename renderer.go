package txtcaptcha

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/txtcaptcha/font"
import "github.com/tinne26/txtcaptcha/mask"
import "github.com/tinne26/txtcaptcha/cache"
import "github.com/tinne26/txtcaptcha/sizer"

// Default values for new renderers.
const (
	DefaultSize   = 24
	DefaultInk    = "!"
	DefaultFamily = font.Monospace
)

// Maximum size (in pixels) accepted by renderers. It bounds the canvas
// height and, indirectly, the memory needed to rasterize text.
const MaxSize = 1024

// The [Renderer] rasterizes text into ASCII art. It holds the font
// library, the font family, the pixel size, the ink symbol and the
// rasterization pipeline (sizer, mask rasterizer and optional cache).
//
// Renderers can't be used concurrently, as they hold internal buffers.
// Use one renderer per goroutine; they can all share the same
// [font.Library] and [cache.MaskCache].
//
// For one-off renders, the package level [Render]() function is simpler.
type Renderer struct {
	library    *font.Library
	fontSizer  sizer.Sizer
	rasterizer mask.Rasterizer
	maskCache  *cache.MaskCache
	buffer     sfnt.Buffer

	ink    string
	size   int
	family font.Family
}

// Creates a new [Renderer] using [font.DefaultLibrary](), [DefaultFamily],
// [DefaultSize], [DefaultInk], a [mask.SharpRasterizer] and a
// [sizer.DefaultSizer]. No cache is set.
func NewRenderer() *Renderer {
	return &Renderer{
		library: font.DefaultLibrary(),
		fontSizer: &sizer.DefaultSizer{},
		rasterizer: &mask.SharpRasterizer{},
		ink: DefaultInk,
		size: DefaultSize,
		family: DefaultFamily,
	}
}

// Sets the font library used to resolve font families. A nil
// library restores [font.DefaultLibrary]().
func (self *Renderer) SetLibrary(library *font.Library) {
	if library == nil { library = font.DefaultLibrary() }
	self.library = library
}

// Returns the current font library.
func (self *Renderer) GetLibrary() *font.Library { return self.library }

// Sets the font family to be used on subsequent operations. Invalid
// families are reported when rendering.
func (self *Renderer) SetFamily(family font.Family) { self.family = family }

// Returns the current font family. The default is [DefaultFamily].
func (self *Renderer) GetFamily() font.Family { return self.family }

// Sets the text size in pixels. This is both the font size and the
// canvas height, which makes it an upper bound for the number of
// output lines. Sizes must be in [1, MaxSize]; invalid sizes are
// reported when rendering.
func (self *Renderer) SetSize(size int) { self.size = size }

// Returns the current text size in pixels.
func (self *Renderer) GetSize() int { return self.size }

// Sets the ink symbol used for foreground cells. It must be a single
// visible rune, ideally part of the noise pixel ramp. Invalid inks are
// reported when rendering.
func (self *Renderer) SetInk(ink string) { self.ink = ink }

// Returns the current ink symbol.
func (self *Renderer) GetInk() string { return self.ink }

// Sets the sizer used for metrics on subsequent operations. Nil
// sizers are not allowed.
func (self *Renderer) SetSizer(fontSizer sizer.Sizer) {
	if fontSizer == nil { panic("nil sizer") }
	self.fontSizer = fontSizer
}

// Returns the current [sizer.Sizer].
func (self *Renderer) GetSizer() sizer.Sizer { return self.fontSizer }

// Sets the glyph mask rasterizer. Nil rasterizers are not allowed.
//
// Antialiased rasterizers like [mask.DefaultRasterizer] are allowed,
// but only fully opaque pixels count as foreground, so glyphs will look
// thinner than with the default [mask.SharpRasterizer].
func (self *Renderer) SetRasterizer(rasterizer mask.Rasterizer) {
	if rasterizer == nil { panic("nil rasterizer") }
	self.rasterizer = rasterizer
}

// Returns the current glyph mask rasterizer.
func (self *Renderer) GetRasterizer() mask.Rasterizer { return self.rasterizer }

// Sets a glyph mask cache, or removes it if nil.
func (self *Renderer) SetCache(maskCache *cache.MaskCache) { self.maskCache = maskCache }

// Returns the current glyph mask cache, which may be nil.
func (self *Renderer) GetCache() *cache.MaskCache { return self.maskCache }
