package mask

import "image"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

var _ Rasterizer = (*SharpRasterizer)(nil)

// The threshold used by a zero value [SharpRasterizer].
const DefaultSharpThreshold uint8 = 128

// A rasterizer that quantizes all glyph mask values to fully opaque
// or fully transparent, like drawing text without antialiasing. This
// is what captcha rendering needs: each pixel becomes either an ink
// cell or a blank cell, with no blurry edges in between.
//
// Since the implementation leverages type embedding, the available methods
// are the same as the ones for [DefaultRasterizer] (including skewing).
type SharpRasterizer struct {
	DefaultRasterizer
	threshold uint8 // zero means DefaultSharpThreshold
}

// Sets the alpha value from which mask pixels become fully opaque.
// A zero threshold restores [DefaultSharpThreshold].
func (self *SharpRasterizer) SetThreshold(threshold uint8) { self.threshold = threshold }

// Returns the alpha value from which mask pixels become fully opaque.
func (self *SharpRasterizer) GetThreshold() uint8 {
	if self.threshold == 0 { return DefaultSharpThreshold }
	return self.threshold
}

// Satisfies the [Rasterizer] interface.
func (self *SharpRasterizer) Signature() uint64 {
	return self.DefaultRasterizer.Signature() | 0x5A00_0000_0000_0000 | uint64(self.GetThreshold()) << 40
}

// Satisfies the [Rasterizer] interface.
func (self *SharpRasterizer) Rasterize(outline sfnt.Segments, origin fixed.Point26_6) (*image.Alpha, error) {
	mask, err := self.DefaultRasterizer.Rasterize(outline, origin)
	if err != nil { return mask, err }
	threshold := self.GetThreshold()
	for i := 0; i < len(mask.Pix); i++ {
		if mask.Pix[i] < threshold {
			mask.Pix[i] = 0
		} else {
			mask.Pix[i] = 255
		}
	}
	return mask, nil
}
