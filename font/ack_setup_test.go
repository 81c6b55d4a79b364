package font

// Test fixtures: the bold Go fonts are parsed once and shared,
// plus an in-memory filesystem holding them as font files.

import "sync"
import "testing"
import "testing/fstest"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/gofont/gobold"
import "golang.org/x/image/font/gofont/gomonobold"

var testFontA *sfnt.Font // Go Bold
var testFontB *sfnt.Font // Go Mono Bold
var testNameA, testNameB string
var testAssetsOnce sync.Once

var testfs = fstest.MapFS{
	"fonts/go-bold.ttf":      &fstest.MapFile{ Data: gobold.TTF },
	"fonts/go-mono-bold.TTF": &fstest.MapFile{ Data: gomonobold.TTF },
	"fonts/readme.txt":       &fstest.MapFile{ Data: []byte("not a font") },
	"fonts/nested/other.ttf": &fstest.MapFile{ Data: []byte{1, 2, 3} },
}

func ensureTestAssetsLoaded(t *testing.T) {
	testAssetsOnce.Do(func() {
		var err error
		testFontA, testNameA, err = ParseFromBytes(gobold.TTF)
		if err != nil { panic(err) }
		testFontB, testNameB, err = ParseFromBytes(gomonobold.TTF)
		if err != nil { panic(err) }
	})
	if testNameA == testNameB {
		t.Fatalf("test fonts must have different names, both are '%s'", testNameA)
	}
}

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}
