package sizer

import "strconv"
import . "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font"
import "golang.org/x/image/math/fixed"

var _ Sizer = (*DefaultSizer)(nil)

// The default [Sizer], using the unhinted font metrics as they are.
type DefaultSizer struct {
	cachedAscent     fixed.Int26_6
	cachedDescent    fixed.Int26_6
	cachedLineHeight fixed.Int26_6
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) Ascent(*Font, *Buffer, fixed.Int26_6) fixed.Int26_6 {
	return self.cachedAscent
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) Descent(*Font, *Buffer, fixed.Int26_6) fixed.Int26_6 {
	return self.cachedDescent
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) LineHeight(*Font, *Buffer, fixed.Int26_6) fixed.Int26_6 {
	return self.cachedLineHeight
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) GlyphAdvance(font *Font, buffer *Buffer, size fixed.Int26_6, g GlyphIndex) fixed.Int26_6 {
	advance, err := font.GlyphAdvance(buffer, g, size, hintingNone)
	if err == nil { return advance }
	panic("font.GlyphAdvance(index = " + strconv.Itoa(int(g)) + ") error: " + err.Error())
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) Kern(font *Font, buffer *Buffer, size fixed.Int26_6, g1, g2 GlyphIndex) fixed.Int26_6 {
	kern, err := font.Kern(buffer, g1, g2, size, hintingNone)
	if err == nil { return kern }
	if err == ErrNotFound { return 0 }

	msg := "font.Kern failed for glyphs with indices "
	msg += strconv.Itoa(int(g1)) + " and "
	msg += strconv.Itoa(int(g2)) + ": " + err.Error()
	panic(msg)
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) NotifyChange(font *Font, buffer *Buffer, size fixed.Int26_6) {
	if font == nil || size == 0 {
		self.cachedAscent     = 0
		self.cachedDescent    = 0
		self.cachedLineHeight = 0
		return
	}
	metrics, err := font.Metrics(buffer, size, hintingNone)
	if err != nil { panic("font.Metrics error: " + err.Error()) }
	self.cachedAscent     = metrics.Ascent
	self.cachedDescent    = metrics.Descent
	self.cachedLineHeight = metrics.Height
}

const hintingNone = font.HintingNone
