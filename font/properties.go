package font

import "sync/atomic"
import "errors"

import "golang.org/x/image/font/sfnt"

var ErrNotFound = errors.New("font property not found or empty")

// A single shared sfnt.Buffer for property lookups. When another
// goroutine is holding it, lookups proceed with a nil buffer, which
// sfnt accepts at the cost of an allocation.
var sharedBuffer sfnt.Buffer
var sharedBufferInUse uint32

func acquireBuffer() *sfnt.Buffer {
	if !atomic.CompareAndSwapUint32(&sharedBufferInUse, 0, 1) { return nil }
	return &sharedBuffer
}

func releaseBuffer(buffer *sfnt.Buffer) {
	if buffer != nil { atomic.StoreUint32(&sharedBufferInUse, 0) }
}

// Returns the requested name table property of the given font.
// If the property is missing, [ErrNotFound] will be returned.
func GetProperty(font *sfnt.Font, property sfnt.NameID) (string, error) {
	buffer := acquireBuffer()
	defer releaseBuffer(buffer)
	str, err := font.Name(buffer, property)
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	return str, err
}

// Returns the full name of the font (e.g. "Go Mono Bold").
func GetName(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFull)
}

// Returns the family name stored in the font file (e.g. "Go Mono").
// Not to be confused with the logical [Family] a font is bound to.
func GetFamilyName(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFamily)
}

// Returns the subfamily name of the font. Captcha fonts are expected
// to report "Bold".
func GetSubfamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDSubfamily)
}

// Returns the runes in the given text that the font can't represent,
// in order of appearance and without duplicates. Line breaks are
// never reported.
func GetMissingRunes(font *sfnt.Font, text string) ([]rune, error) {
	buffer := acquireBuffer()
	defer releaseBuffer(buffer)

	var missing []rune
	for _, codePoint := range text {
		if codePoint == '\n' { continue }
		index, err := font.GlyphIndex(buffer, codePoint)
		if err != nil { return missing, err }
		if index == 0 && !containsRune(missing, codePoint) {
			missing = append(missing, codePoint)
		}
	}
	return missing, nil
}

func containsRune(runes []rune, target rune) bool {
	for _, r := range runes {
		if r == target { return true }
	}
	return false
}
