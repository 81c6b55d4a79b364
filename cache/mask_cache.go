package cache

import "image"
import "sync"
import "time"

// A concurrent-safe glyph mask cache with memory bounds that uses
// random sampling for evicting entries. Cached masks are shared and
// must never be modified.
type MaskCache struct {
	mutex     sync.Mutex
	masks     map[Key]*cacheEntry
	byteLimit int
	bytesUsed int
	peakBytes int
	now       func() time.Time
}

// Creates a new cache bounded by the given size in bytes. Negative
// values will panic.
func NewMaskCache(maxByteSize int) *MaskCache {
	if maxByteSize < 0 { panic("maxByteSize < 0") } // likely a dev mistake
	return &MaskCache{
		masks: make(map[Key]*cacheEntry, 128),
		byteLimit: maxByteSize,
		now: time.Now,
	}
}

// Gets the mask associated to the given key. The bool indicates
// whether the mask has been found, as cached masks may be nil.
func (self *MaskCache) Get(key Key) (*image.Alpha, bool) {
	self.mutex.Lock()
	entry, found := self.masks[key.normalized()]
	self.mutex.Unlock()
	if !found { return nil, false }
	entry.hits.Add(1)
	return entry.mask, true
}

// Stores the given mask with the given key. Masks bigger than the whole
// cache are ignored, and so are masks that can't fit after trying to
// evict a couple of colder entries. Passing a mask for a key that is
// already cached does nothing.
func (self *MaskCache) Put(key Key, mask *image.Alpha) {
	const maxEvictAttempts = 2

	key = key.normalized()
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if _, found := self.masks[key]; found { return }

	now := self.now()
	entry := newCacheEntry(mask, now)
	if entry.byteSize > self.byteLimit { return }
	hotness := entry.hotness(now)
	for i := 0; self.bytesUsed + entry.byteSize > self.byteLimit; i++ {
		if i >= maxEvictAttempts || !self.evictColderThan(hotness, now) { return }
	}

	self.masks[key] = entry
	self.bytesUsed += entry.byteSize
	if self.bytesUsed > self.peakBytes { self.peakBytes = self.bytesUsed }
}

// Samples a few entries and removes the coldest one if it's colder
// than the given hotness. Returns whether anything was removed. Must
// be called with the mutex held.
func (self *MaskCache) evictColderThan(hotness int, now time.Time) bool {
	const sampleSize = 10

	var selectedKey Key
	var selected *cacheEntry
	samples := 0
	for key, entry := range self.masks {
		if selected == nil || entry.hotness(now) < selected.hotness(now) {
			selectedKey, selected = key, entry
		}
		samples += 1
		if samples >= sampleSize { break }
	}
	if selected == nil || selected.hotness(now) >= hotness { return false }
	delete(self.masks, selectedKey)
	self.bytesUsed -= selected.byteSize
	return true
}

// Returns the number of cached masks.
func (self *MaskCache) Len() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return len(self.masks)
}

// Returns an approximation of the number of bytes taken by the
// glyph masks currently stored in the cache.
func (self *MaskCache) ApproxByteSize() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.bytesUsed
}

// Returns an approximation of the maximum amount of bytes that the
// cache has been filled with at any point of its life. Useful to
// tune the cache capacity.
func (self *MaskCache) PeakSize() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.peakBytes
}
