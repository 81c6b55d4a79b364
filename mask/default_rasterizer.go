package mask

import "image"
import "image/draw"

import "golang.org/x/image/vector"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

var _ Rasterizer = (*DefaultRasterizer)(nil)

// The DefaultRasterizer is a wrapper to make [golang.org/x/image/vector.Rasterizer]
// conform to the [Rasterizer] interface. It produces antialiased masks and
// can optionally skew outlines to draw oblique glyphs.
type DefaultRasterizer struct {
	rasterizer vector.Rasterizer
	normOffset fixed.Point26_6 // offset to normalize points to the positive
	                           // quadrant starting from the fractional coords
	skewing float32 // between -1 (45 degrees) and 1 (-45 degrees)

	// Notice that the x/image/vector rasterizer expects coords in the
	// positive quadrant, which is why we need so many offsets here.
}

// Sets the oblique skewing factor, which is expected to be in [-1, 1].
// Values outside this range will be silently clamped.
//
// A skew factor of 1 tilts glyphs 45 degrees right (forwards leaning),
// -1 tilts them 45 degrees left and 0 disables the effect. Mild values
// like 0.2 keep captchas readable while breaking vertical strokes.
func (self *DefaultRasterizer) SetSkewFactor(factor float32) {
	self.skewing = clampUnit32(factor)
}

// Gets the skewing factor set with [DefaultRasterizer.SetSkewFactor]().
func (self *DefaultRasterizer) GetSkewFactor() float32 { return self.skewing }

// Satisfies the [Rasterizer] interface. The signature is zero unless
// skewing is active, in which case the lowest 16 bits encode the skew.
func (self *DefaultRasterizer) Signature() uint64 {
	if self.skewing == 0 { return 0 }
	return 0x0000_1000_0000_0000 | uint64(uint16(int16(self.skewing*32767)))
}

// Moves the current position to the given point.
func (self *DefaultRasterizer) MoveTo(point fixed.Point26_6) {
	self.rasterizer.MoveTo(self.transform(point))
}

// Creates a straight boundary from the current position to the given point.
func (self *DefaultRasterizer) LineTo(point fixed.Point26_6) {
	self.rasterizer.LineTo(self.transform(point))
}

// Creates a quadratic Bézier curve (also known as a conic Bézier curve)
// to the given target passing through the given control point.
func (self *DefaultRasterizer) QuadTo(control, target fixed.Point26_6) {
	cx, cy := self.transform(control)
	tx, ty := self.transform(target)
	self.rasterizer.QuadTo(cx, cy, tx, ty)
}

// Creates a cubic Bézier curve to the given target passing through
// the given control points.
func (self *DefaultRasterizer) CubeTo(controlA, controlB, target fixed.Point26_6) {
	cax, cay := self.transform(controlA)
	cbx, cby := self.transform(controlB)
	tx , ty  := self.transform(target)
	self.rasterizer.CubeTo(cax, cay, cbx, cby, tx, ty)
}

// Satisfies the [Rasterizer] interface.
func (self *DefaultRasterizer) Rasterize(outline sfnt.Segments, origin fixed.Point26_6) (*image.Alpha, error) {
	bounds := self.skewBounds(outline.Bounds())

	// prepare rasterizer
	var width, height int
	var rectOffset image.Point
	width, height, self.normOffset, rectOffset = figureOutBounds(bounds, origin)
	self.rasterizer.Reset(width, height)
	self.rasterizer.DrawOp = draw.Src

	// allocate glyph mask and process outline
	mask := image.NewAlpha(self.rasterizer.Bounds())
	processOutline(self, outline)

	// the source is uniform, so the sampling start point is irrelevant
	self.rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	// translate the mask to its final position
	mask.Rect = mask.Rect.Add(rectOffset)
	return mask, nil
}

// Skews the point (if necessary), normalizes it to the positive
// quadrant and converts it to float32 coordinates.
func (self *DefaultRasterizer) transform(point fixed.Point26_6) (float32, float32) {
	if self.skewing != 0 {
		point.X -= fixed.Int26_6(self.skewing*float32(point.Y))
	}
	return toFloat32s(point.Add(self.normOffset))
}

// Returns the bounds of the outline once skewed. Outline y coordinates
// grow downwards, so points above the baseline have negative y.
func (self *DefaultRasterizer) skewBounds(bounds fixed.Rectangle26_6) fixed.Rectangle26_6 {
	if self.skewing == 0 { return bounds }
	shiftTop    := -fixed.Int26_6(self.skewing*float32(bounds.Min.Y))
	shiftBottom := -fixed.Int26_6(self.skewing*float32(bounds.Max.Y))
	if shiftTop < shiftBottom {
		bounds.Min.X += shiftTop
		bounds.Max.X += shiftBottom
	} else {
		bounds.Min.X += shiftBottom
		bounds.Max.X += shiftTop
	}
	return bounds
}
