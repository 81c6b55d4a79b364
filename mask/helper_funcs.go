package mask

import "image"

import "golang.org/x/image/math/fixed"

// Given the glyph bounds and an origin position indicating the subpixel
// positioning (only lowest bits will be taken into account), it returns
// the bounding integer width and heights, the normalization offset to be
// applied to keep the coordinates in the positive plane, and the final
// offset to be applied on the final mask to align its bounds to the glyph
// origin.
func figureOutBounds(bounds fixed.Rectangle26_6, origin fixed.Point26_6) (int, int, fixed.Point26_6, image.Point) {
	floorMinX, floorMinY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	normOffset := fixed.Point26_6{
		X: -fixed.I(floorMinX) + fractShift(origin.X),
		Y: -fixed.I(floorMinY) + fractShift(origin.Y),
	}
	width  := (bounds.Max.X + normOffset.X).Ceil()
	height := (bounds.Max.Y + normOffset.Y).Ceil()
	return width, height, normOffset, image.Pt(floorMinX, floorMinY)
}

// Returns the fractional part of the value, always in [0, 63].
func fractShift(value fixed.Int26_6) fixed.Int26_6 { return value & 0x3F }

func toFloat32s(point fixed.Point26_6) (float32, float32) {
	return float32(point.X)/64.0, float32(point.Y)/64.0
}

func clampUnit32(value float32) float32 {
	if value >  1.0 { return  1.0 }
	if value < -1.0 { return -1.0 }
	return value
}
