package txtcaptcha

import "fmt"
import "image"
import "image/draw"
import "strings"
import "unicode"
import "unicode/utf8"

import "golang.org/x/text/unicode/norm"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/txtcaptcha/font"
import "github.com/tinne26/txtcaptcha/mask"
import "github.com/tinne26/txtcaptcha/cache"
import "github.com/tinne26/txtcaptcha/sizer"

// Renders the given text as ASCII art with a new [Renderer] configured
// with the given size, family and ink. Safe for concurrent use.
//
// See [Renderer.Render]() for the details on the output format.
func Render(text string, height int, family font.Family, ink string) (string, error) {
	renderer := NewRenderer()
	renderer.SetSize(height)
	renderer.SetFamily(family)
	renderer.SetInk(ink)
	return renderer.Render(text)
}

// Renders the given single line text as ASCII art: each foreground
// pixel of the rasterized text becomes the ink symbol and background
// pixels become spaces. Rows without any foreground pixel are dropped,
// and every retained row is followed by a line break. All lines have
// the same number of runes, equal to the text width in pixels.
//
// The output only contains the ink symbol, spaces and line breaks.
// Invalid arguments return an error wrapping [ErrInvalidArgument].
func (self *Renderer) Render(text string) (string, error) {
	if err := self.validateInk(); err != nil { return "", err }
	grid, err := self.Rasterize(text)
	if err != nil { return "", err }
	return artFromGrid(grid, self.ink), nil
}

// Rasterizes the given single line text into a coverage grid as wide
// as the measured text and as tall as the renderer's size. The text is
// drawn left aligned, with the baseline at ascent - descent.
func (self *Renderer) Rasterize(text string) (*mask.Grid, error) {
	text = norm.NFC.String(text)
	sfntFont, err := self.prepare(text)
	if err != nil { return nil, err }

	size := fixed.I(self.size)
	glyphs := self.glyphIndices(sfntFont, text)
	width := self.measureGlyphs(sfntFont, size, glyphs)
	canvas := image.NewAlpha(image.Rect(0, 0, width, self.size))

	baseline := sizer.Baseline(self.fontSizer, sfntFont, &self.buffer, size)
	dot := fixed.Point26_6{ Y: fixed.I(baseline.Round()) }
	for i, glyphIndex := range glyphs {
		if i > 0 {
			dot.X += self.fontSizer.Kern(sfntFont, &self.buffer, size, glyphs[i - 1], glyphIndex)
		}
		glyphMask, err := self.glyphMask(sfntFont, size, glyphIndex, dot)
		if err != nil { return nil, err }
		if glyphMask != nil {
			target := glyphMask.Rect.Add(image.Pt(dot.X.Floor(), dot.Y.Floor()))
			draw.Draw(canvas, target, glyphMask, glyphMask.Rect.Min, draw.Over)
		}
		dot.X += self.fontSizer.GlyphAdvance(sfntFont, &self.buffer, size, glyphIndex)
	}

	// only fully opaque pixels are considered foreground
	return mask.GridFromAlpha(canvas, 255), nil
}

// Returns the width in pixels of the canvas needed to rasterize the
// given single line text: the sum of the glyph advances and the
// kerning between them, rounded up.
func (self *Renderer) Measure(text string) (int, error) {
	text = norm.NFC.String(text)
	sfntFont, err := self.prepare(text)
	if err != nil { return 0, err }
	size := fixed.I(self.size)
	return self.measureGlyphs(sfntFont, size, self.glyphIndices(sfntFont, text)), nil
}

// ---- helpers ----

// Validates the renderer state and the text, and returns the font to
// be used after syncing the sizer with it.
func (self *Renderer) prepare(text string) (*sfnt.Font, error) {
	if text == "" { return nil, invalidArgf("empty text") }
	if strings.ContainsAny(text, "\r\n") { return nil, invalidArgf("text must be a single line") }
	if !utf8.ValidString(text) { return nil, invalidArgf("text is not valid UTF-8") }
	if self.size < 1 || self.size > MaxSize {
		return nil, invalidArgf("size %d outside [1, %d]", self.size, MaxSize)
	}
	if !self.family.Valid() { return nil, fmt.Errorf("%w: %w %d", ErrInvalidArgument, font.ErrUnknownFamily, self.family) }

	sfntFont := self.library.Font(self.family)
	if sfntFont == nil { return nil, invalidArgf("no font bound to family %s", self.family) }
	missing, err := font.GetMissingRunes(sfntFont, text)
	if err != nil { return nil, err }
	if len(missing) > 0 { return nil, fmtMissingGlyphs(missing) }

	self.fontSizer.NotifyChange(sfntFont, &self.buffer, fixed.I(self.size))
	return sfntFont, nil
}

func (self *Renderer) validateInk() error {
	ink, size := utf8.DecodeRuneInString(self.ink)
	if size == 0 || size != len(self.ink) || ink == utf8.RuneError {
		return invalidArgf("ink %q must be a single rune", self.ink)
	}
	if unicode.IsSpace(ink) || !unicode.IsGraphic(ink) {
		return invalidArgf("ink %q must be a visible symbol", self.ink)
	}
	return nil
}

func (self *Renderer) glyphIndices(sfntFont *sfnt.Font, text string) []sfnt.GlyphIndex {
	glyphs := make([]sfnt.GlyphIndex, 0, len(text))
	for _, codePoint := range text {
		index, err := sfntFont.GlyphIndex(&self.buffer, codePoint)
		if err != nil { panic("font.GlyphIndex error: " + err.Error()) }
		glyphs = append(glyphs, index)
	}
	return glyphs
}

func (self *Renderer) measureGlyphs(sfntFont *sfnt.Font, size fixed.Int26_6, glyphs []sfnt.GlyphIndex) int {
	var width fixed.Int26_6
	for i, glyphIndex := range glyphs {
		if i > 0 {
			width += self.fontSizer.Kern(sfntFont, &self.buffer, size, glyphs[i - 1], glyphIndex)
		}
		width += self.fontSizer.GlyphAdvance(sfntFont, &self.buffer, size, glyphIndex)
	}
	if width <= 0 { return 0 }
	return width.Ceil()
}

// Returns the mask for the given glyph, going through the cache
// if the renderer has one.
func (self *Renderer) glyphMask(sfntFont *sfnt.Font, size fixed.Int26_6, index sfnt.GlyphIndex, dot fixed.Point26_6) (*image.Alpha, error) {
	var key cache.Key
	if self.maskCache != nil {
		key = cache.Key{
			Font: sfntFont, Size: size, Glyph: index, Fract: dot,
			Signature: self.rasterizer.Signature(),
		}
		if glyphMask, found := self.maskCache.Get(key); found { return glyphMask, nil }
	}

	outline, err := sfntFont.LoadGlyph(&self.buffer, index, size, nil)
	if err != nil { return nil, err }
	glyphMask, err := mask.Rasterize(outline, self.rasterizer, dot)
	if err != nil { return nil, err }
	if self.maskCache != nil { self.maskCache.Put(key, glyphMask) }
	return glyphMask, nil
}

func artFromGrid(grid *mask.Grid, ink string) string {
	var art strings.Builder
	var line strings.Builder
	for y := 0; y < grid.Height(); y++ {
		line.Reset()
		for x := 0; x < grid.Width(); x++ {
			if grid.At(x, y) {
				line.WriteString(ink)
			} else {
				line.WriteByte(' ')
			}
		}
		if strings.TrimSpace(line.String()) == "" { continue }
		art.WriteString(line.String())
		art.WriteByte('\n')
	}
	return art.String()
}

func fmtMissingGlyphs(missing []rune) error {
	return fmt.Errorf("%w %q", ErrMissingGlyphs, string(missing))
}
