// The sizer subpackage provides the font metrics used to size a
// captcha canvas: ascent and descent for the baseline, glyph advances
// and kerning for the canvas width.
package sizer

import . "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

// When rasterizing text we need some information related to the
// "font metrics": how far the pen advances after each glyph, the
// kerning between a specific pair of glyphs, and the ascent and
// descent used to place the baseline within the canvas.
//
// Sizers are the interface that renderers use to obtain that
// information. Sizes are given in 26.6 fixed point pixels per em.
type Sizer interface {
	// Returns the ascent of the given font, at the given size,
	// as an absolute value.
	//
	// The given font and size must be consistent with the
	// latest NotifyChange() call.
	Ascent(*Font, *Buffer, fixed.Int26_6) fixed.Int26_6

	// Returns the descent of the given font, at the given size,
	// as an absolute value.
	//
	// The given font and size must be consistent with the
	// latest NotifyChange() call.
	Descent(*Font, *Buffer, fixed.Int26_6) fixed.Int26_6

	// Returns the recommended line height of the given font
	// at the given size.
	LineHeight(*Font, *Buffer, fixed.Int26_6) fixed.Int26_6

	// Returns the advance of the given glyph for the given font
	// and size.
	GlyphAdvance(*Font, *Buffer, fixed.Int26_6, GlyphIndex) fixed.Int26_6

	// Returns the kerning value between two glyphs of the given
	// font and size.
	Kern(*Font, *Buffer, fixed.Int26_6, GlyphIndex, GlyphIndex) fixed.Int26_6

	// Must be called to sync the state of the sizer and allow it
	// to do any caching it may want to do in relation to the given
	// active font or size.
	NotifyChange(*Font, *Buffer, fixed.Int26_6)
}

// Returns the vertical position of the baseline within a canvas:
// ascent minus descent, so that descenders still fit in a canvas
// as tall as the font size.
func Baseline(sizer Sizer, font *Font, buffer *Buffer, size fixed.Int26_6) fixed.Int26_6 {
	return sizer.Ascent(font, buffer, size) - sizer.Descent(font, buffer, size)
}
