package txtcaptcha

import "fmt"
import "errors"

// Returned (wrapped) when a render operation receives empty text,
// a non-positive or too big size, an invalid font family or an ink
// that isn't a single visible symbol. Use errors.Is() to check.
var ErrInvalidArgument = errors.New("invalid argument")

// Returned (wrapped) when the font bound to the requested family can't
// represent some of the runes in the text. It also matches
// [ErrInvalidArgument] through errors.Is().
var ErrMissingGlyphs = fmt.Errorf("%w: missing glyphs", ErrInvalidArgument)

func invalidArgf(format string, args ...any) error {
	return fmt.Errorf("%w: " + format, append([]any{ErrInvalidArgument}, args...)...)
}
