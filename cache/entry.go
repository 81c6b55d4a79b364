package cache

import "image"
import "time"
import "sync/atomic"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

// Identifies a glyph mask. Masks are only interchangeable when they
// come from the same font at the same size and fractional position,
// rasterized with rasterizers sharing a signature.
type Key struct {
	Font       *sfnt.Font
	Size       fixed.Int26_6
	Glyph      sfnt.GlyphIndex
	Fract      fixed.Point26_6 // only the 6 lowest bits of each coord matter
	Signature  uint64
}

// Returns the key with its fractional position normalized.
func (self Key) normalized() Key {
	self.Fract.X &= 0x3F
	self.Fract.Y &= 0x3F
	return self
}

// Approximate byte overhead of an entry besides its mask pixels.
const entryOverhead = 56

// Returns the approximate number of bytes taken by the given mask,
// which may be nil for glyphs without contours.
func MaskByteSize(mask *image.Alpha) int {
	if mask == nil { return entryOverhead }
	return len(mask.Pix) + entryOverhead
}

// A cached mask with additional information to estimate how
// much the entry is being used.
type cacheEntry struct {
	mask     *image.Alpha // read-only
	byteSize int          // read-only
	created  time.Time    // read-only
	hits     atomic.Uint32
}

func newCacheEntry(mask *image.Alpha, now time.Time) *cacheEntry {
	entry := &cacheEntry{ mask: mask, byteSize: MaskByteSize(mask), created: now }
	entry.hits.Store(1)
	return entry
}

// A measure of "bytes accessed per time". Coldest entries
// (smallest values) are candidates for eviction.
func (self *cacheEntry) hotness(now time.Time) int {
	const evictionCost = 1000 // additional threshold and pad
	bytesHit := self.byteSize*int(self.hits.Load())
	elapsed := int(now.Sub(self.created)/(10*time.Millisecond))
	if elapsed <= 0 { elapsed = 1 }
	return (evictionCost + bytesHit)/elapsed
}
