package font

import "os"
import "io"
import "io/fs"
import "fmt"
import "errors"
import "strings"

import "golang.org/x/image/font/sfnt"

// Returned when trying to parse a font from a path that doesn't
// end in .ttf or .otf.
var ErrInvalidPath = errors.New("invalid font path")

// Parses the given font bytes and returns the font along its full
// name. The bytes must not be modified while the font is in use.
//
// This is a low level function; you may prefer to use a [Library].
func ParseFromBytes(fontBytes []byte) (*sfnt.Font, string, error) {
	font, err := sfnt.Parse(fontBytes)
	if err != nil { return nil, "", err }
	name, err := GetName(font)
	if err != nil { return nil, "", err }
	return font, name, nil
}

// Parses the .ttf or .otf font at the given path and returns it
// along its name.
func ParseFromPath(path string) (*sfnt.Font, string, error) {
	if !hasValidFontExtension(path) {
		return nil, "", fmt.Errorf("%w '%s'", ErrInvalidPath, path)
	}
	file, err := os.Open(path)
	if err != nil { return nil, "", err }
	return parseAndClose(file)
}

// Same as [ParseFromPath](), but for [fs.FS] filesystems (e.g. embed.FS).
func ParseFromFS(filesys fs.FS, path string) (*sfnt.Font, string, error) {
	if !hasValidFontExtension(path) {
		return nil, "", fmt.Errorf("%w '%s'", ErrInvalidPath, path)
	}
	file, err := filesys.Open(path)
	if err != nil { return nil, "", err }
	return parseAndClose(file)
}

func parseAndClose(file io.ReadCloser) (*sfnt.Font, string, error) {
	fontBytes, err := io.ReadAll(file)
	closeErr := file.Close()
	if err != nil { return nil, "", err }
	if closeErr != nil { return nil, "", closeErr }
	return ParseFromBytes(fontBytes)
}

// Whether the path ends in .ttf or .otf (case insensitive).
func hasValidFontExtension(path string) bool {
	if len(path) < 4 { return false }
	ext := strings.ToLower(path[len(path) - 4:])
	return ext == ".ttf" || ext == ".otf"
}
