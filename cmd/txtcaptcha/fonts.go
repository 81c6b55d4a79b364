package main

import "fmt"

import "github.com/tinne26/txtcaptcha/font"

// Returns nil (the default library) when no font directory is given.
// Otherwise, the fonts in the directory are added to a new Go fonts
// library and the given families are rebound to them by name.
func loadLibrary(fontDir string, bindings map[font.Family]string) (*font.Library, error) {
	if fontDir == "" { return nil, nil }
	library, err := font.NewGoLibrary()
	if err != nil { return nil, err }
	added, skipped, err := library.ParseAllFromPath(fontDir)
	if err != nil { return nil, fmt.Errorf("loading fonts from %s: %w", fontDir, err) }
	verbose.Printf("%d fonts added from %s (%d skipped)", added, fontDir, skipped)

	for _, family := range font.Families() {
		name, found := bindings[family]
		if !found { continue }
		if err := library.Bind(family, name); err != nil { return nil, err }
		verbose.Printf("family %s bound to '%s'", family, name)
	}
	return library, nil
}
