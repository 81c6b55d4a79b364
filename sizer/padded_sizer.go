package sizer

import . "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

var _ Sizer = (*PaddedSizer)(nil)

// A [DefaultSizer] that adds a configurable horizontal padding to the
// kerning between consecutive glyphs. Spreading glyphs apart keeps
// them from touching once they become ASCII art, which helps
// readability at small captcha sizes.
type PaddedSizer struct {
	DefaultSizer
	padding fixed.Int26_6
}

// Sets the horizontal padding added between each pair of glyphs.
func (self *PaddedSizer) SetPadding(value fixed.Int26_6) { self.padding = value }

// Returns the horizontal padding added between each pair of glyphs.
func (self *PaddedSizer) GetPadding() fixed.Int26_6 { return self.padding }

// Satisfies the [Sizer] interface.
func (self *PaddedSizer) Kern(font *Font, buffer *Buffer, size fixed.Int26_6, g1, g2 GlyphIndex) fixed.Int26_6 {
	return self.DefaultSizer.Kern(font, buffer, size, g1, g2) + self.padding
}
