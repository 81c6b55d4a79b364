package mask

import "math/rand"

import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"

// outlineBuilder chains outline segments given in float pixel units.
type outlineBuilder struct {
	segments sfnt.Segments
}

func px(value float64) fixed.Int26_6 { return fixed.Int26_6(value*64) }

func (self *outlineBuilder) add(op sfnt.SegmentOp, coords ...float64) *outlineBuilder {
	segment := sfnt.Segment{ Op: op }
	for i := 0; i + 1 < len(coords); i += 2 {
		segment.Args[i/2] = fixed.Point26_6{ X: px(coords[i]), Y: px(coords[i + 1]) }
	}
	self.segments = append(self.segments, segment)
	return self
}

func (self *outlineBuilder) moveTo(x, y float64) *outlineBuilder {
	return self.add(sfnt.SegmentOpMoveTo, x, y)
}

func (self *outlineBuilder) lineTo(x, y float64) *outlineBuilder {
	return self.add(sfnt.SegmentOpLineTo, x, y)
}

// Closed outline with random lines and curves inside a w x h box.
func randomSegments(rng *rand.Rand, lines, w, h int) sfnt.Segments {
	point := func() []float64 {
		return []float64{ rng.Float64()*float64(w), rng.Float64()*float64(h) }
	}

	start := point()
	outline := (&outlineBuilder{}).moveTo(start[0], start[1])
	for i := 0; i < lines; i++ {
		switch rng.Intn(3) {
		case 0:
			outline.add(sfnt.SegmentOpLineTo, point()...)
		case 1:
			outline.add(sfnt.SegmentOpQuadTo, append(point(), point()...)...)
		default:
			outline.add(sfnt.SegmentOpCubeTo, append(append(point(), point()...), point()...)...)
		}
	}
	return outline.lineTo(start[0], start[1]).segments
}

// Closed polygon from x, y pairs. At least three points are required.
func polySegments(coords []float64) sfnt.Segments {
	if len(coords) < 6 || len(coords) % 2 != 0 { panic("polygon needs 3+ x, y pairs") }
	outline := (&outlineBuilder{}).moveTo(coords[0], coords[1])
	for i := 2; i < len(coords); i += 2 {
		outline.lineTo(coords[i], coords[i + 1])
	}
	return outline.lineTo(coords[0], coords[1]).segments
}
