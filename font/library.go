package font

import "os"
import "path"
import "io/fs"
import "fmt"
import "sync"
import "errors"
import "path/filepath"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/gofont/gobold"
import "golang.org/x/image/font/gofont/gomonobold"

// A collection of fonts accessible by name, plus the binding from
// each logical [Family] to one of those fonts.
//
// Libraries are safe for concurrent use. The fonts they hold are
// shared read-only by every renderer that uses the library.
type Library struct {
	mutex    sync.RWMutex
	fonts    map[string]*sfnt.Font
	bindings [numFamilies]string
}

// Creates a new, empty font [Library]. No family is bound.
func NewLibrary() *Library {
	return &Library{ fonts: make(map[string]*sfnt.Font) }
}

var defaultLibrary *Library
var defaultLibraryOnce sync.Once

// Returns a shared library holding Go Bold and Go Mono Bold, with
// families bound as follows:
//  - [Dialog], [SansSerif]: Go Bold.
//  - [DialogInput], [Monospace], [Serif]: Go Mono Bold (slab serifs).
//
// The returned library is shared; use [NewGoLibrary]() if you intend
// to rebind families or add fonts.
func DefaultLibrary() *Library {
	defaultLibraryOnce.Do(func() {
		lib, err := NewGoLibrary()
		if err != nil { panic("bundled Go fonts failed to parse: " + err.Error()) }
		defaultLibrary = lib
	})
	return defaultLibrary
}

// Creates a new library with the default Go font bindings described
// in [DefaultLibrary]().
func NewGoLibrary() (*Library, error) {
	lib := NewLibrary()
	sansName, err := lib.ParseFromBytes(gobold.TTF)
	if err != nil { return nil, err }
	monoName, err := lib.ParseFromBytes(gomonobold.TTF)
	if err != nil { return nil, err }

	bindings := map[Family]string{
		Dialog: sansName, SansSerif: sansName,
		DialogInput: monoName, Monospace: monoName, Serif: monoName,
	}
	for family, name := range bindings {
		if err := lib.Bind(family, name); err != nil { return nil, err }
	}
	return lib, nil
}

// Returns the current number of fonts in the library.
func (self *Library) Size() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return len(self.fonts)
}

// Finds out whether a font with the given name exists in the library.
func (self *Library) HasFont(name string) bool {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	_, found := self.fonts[name]
	return found
}

// Returns the font with the given name, or nil if not found.
func (self *Library) GetFont(name string) *sfnt.Font {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return self.fonts[name]
}

// Binds the given family to the font with the given name, which must
// already be present in the library. Rebinding is allowed.
func (self *Library) Bind(family Family, name string) error {
	if !family.Valid() { return ErrUnknownFamily }
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if _, found := self.fonts[name]; !found {
		return fmt.Errorf("%w: no font named '%s' to bind to %s", ErrNotFound, name, family)
	}
	self.bindings[family] = name
	return nil
}

// Returns the name of the font bound to the given family, or an
// empty string if the family is unbound.
func (self *Library) Binding(family Family) string {
	if !family.Valid() { return "" }
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return self.bindings[family]
}

// Returns the font bound to the given family, or nil if the family
// is invalid or unbound.
func (self *Library) Font(family Family) *sfnt.Font {
	if !family.Valid() { return nil }
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	name := self.bindings[family]
	if name == "" { return nil }
	return self.fonts[name]
}

// Adds the given font into the library and returns its name. If the
// given font is nil, the method will panic. If another font with the
// same name was already present, [ErrAlreadyPresent] is returned.
func (self *Library) AddFont(font *sfnt.Font) (string, error) {
	if font == nil { panic("can't add nil font to library") }
	name, err := GetName(font)
	if err != nil { return "", err }
	return name, self.addNewFont(font, name)
}

// Removes the font with the given name, along any family binding that
// pointed to it. Returns false if the font was not found.
func (self *Library) RemoveFont(name string) bool {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if _, found := self.fonts[name]; !found { return false }
	delete(self.fonts, name)
	for i, bound := range self.bindings {
		if bound == name { self.bindings[i] = "" }
	}
	return true
}

// Parses the font at the given path and adds it to the library.
// Returns the font name and any error. A font with the same name
// already in the library results in [ErrAlreadyPresent].
func (self *Library) ParseFromPath(path string) (string, error) {
	font, name, err := ParseFromPath(path)
	if err != nil { return name, err }
	return name, self.addNewFont(font, name)
}

// The equivalent of [Library.ParseFromPath]() for raw font bytes.
// The bytes must not be modified while the font is in use.
func (self *Library) ParseFromBytes(fontBytes []byte) (string, error) {
	font, name, err := ParseFromBytes(fontBytes)
	if err != nil { return name, err }
	return name, self.addNewFont(font, name)
}

// The equivalent of [Library.ParseFromPath]() for filesystems.
func (self *Library) ParseFromFS(filesys fs.FS, path string) (string, error) {
	font, name, err := ParseFromFS(filesys, path)
	if err != nil { return name, err }
	return name, self.addNewFont(font, name)
}

// Returned when a font is not added due to its name already being
// present in the [Library].
var ErrAlreadyPresent = errors.New("font already present in the library")

func (self *Library) addNewFont(font *sfnt.Font, name string) error {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if _, found := self.fonts[name]; found { return ErrAlreadyPresent }
	self.fonts[name] = font
	return nil
}

// Special error that can be returned from an [Library.EachFont]()
// callback to stop early without making EachFont() fail.
var ErrBreakEach = errors.New("EachFont() early break")

// Calls the given function for each font in the library, in
// pseudo-random order. The library is read-locked during the
// whole iteration, so the callback must not modify it.
func (self *Library) EachFont(fontFunc func(string, *sfnt.Font) error) error {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	for name, font := range self.fonts {
		err := fontFunc(name, font)
		if err == ErrBreakEach { return nil }
		if err != nil { return err }
	}
	return nil
}

// Walks the given directory non-recursively and adds all the .ttf
// and .otf fonts in it. Returns the number of fonts added, the number
// of fonts skipped because their name was already present, and any
// error found during the process.
func (self *Library) ParseAllFromPath(dirName string) (added, skipped int, err error) {
	absDirPath, err := filepath.Abs(dirName)
	if err != nil { return 0, 0, err }
	return self.ParseAllFromFS(os.DirFS(absDirPath), ".")
}

// The equivalent of [Library.ParseAllFromPath]() for filesystems.
func (self *Library) ParseAllFromFS(filesys fs.FS, dirName string) (added, skipped int, err error) {
	entries, err := fs.ReadDir(filesys, dirName)
	if err != nil { return 0, 0, err }

	for _, entry := range entries {
		if entry.IsDir() || !hasValidFontExtension(entry.Name()) { continue }
		_, err = self.ParseFromFS(filesys, path.Join(dirName, entry.Name()))
		if err == ErrAlreadyPresent {
			skipped += 1
			continue
		}
		if err != nil { return added, skipped, err }
		added += 1
	}
	return added, skipped, nil
}
