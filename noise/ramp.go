package noise

import "fmt"
import "errors"
import "unicode/utf8"

// The default pixel ramp. All of these symbols have the same width
// in the chat font the captchas are displayed with.
const Pixels = "|!;[]{},.°"

// Returned by [NewRamp]() for empty ramps, ramps with repeated
// symbols, line breaks or invalid UTF-8.
var ErrInvalidRamp = errors.New("invalid pixel ramp")

// A Ramp is an immutable ordered sequence of distinct symbols. The
// zero value is an empty ramp, which is only useful as a placeholder.
type Ramp struct {
	symbols []rune
}

var defaultRamp = MustRamp(Pixels)

// Returns the ramp for [Pixels].
func DefaultRamp() Ramp { return defaultRamp }

// Creates a new ramp from the given symbols, in order.
func NewRamp(symbols string) (Ramp, error) {
	if symbols == "" { return Ramp{}, fmt.Errorf("%w: empty", ErrInvalidRamp) }
	if !utf8.ValidString(symbols) { return Ramp{}, fmt.Errorf("%w: invalid UTF-8", ErrInvalidRamp) }
	runes := []rune(symbols)
	for i, symbol := range runes {
		if symbol == '\n' { return Ramp{}, fmt.Errorf("%w: line break at #%d", ErrInvalidRamp, i) }
		for _, prev := range runes[:i] {
			if prev == symbol {
				return Ramp{}, fmt.Errorf("%w: repeated symbol %q", ErrInvalidRamp, symbol)
			}
		}
	}
	return Ramp{ symbols: runes }, nil
}

// Like [NewRamp](), but panics on error. Intended for constants.
func MustRamp(symbols string) Ramp {
	ramp, err := NewRamp(symbols)
	if err != nil { panic(err) }
	return ramp
}

// Returns the number of symbols in the ramp.
func (self Ramp) Len() int { return len(self.symbols) }

// Returns the symbol at the given ramp position. Panics if the
// position is out of range.
func (self Ramp) At(position int) rune { return self.symbols[position] }

// Returns the ramp position of the given symbol, or -1 if the
// symbol is not part of the ramp.
func (self Ramp) Index(symbol rune) int {
	for i, rampSymbol := range self.symbols {
		if rampSymbol == symbol { return i }
	}
	return -1
}

// Returns whether the given symbol is part of the ramp.
func (self Ramp) Contains(symbol rune) bool { return self.Index(symbol) != -1 }

// Returns the ramp symbols as a string.
func (self Ramp) String() string { return string(self.symbols) }

// Returns the [min, max) range of ramp positions a symbol at the given
// position can be replaced with. See the package documentation for the
// details. The range is empty (max <= min) when strength is zero or
// when position is -1 and strength <= 1; in that case replacements
// use min.
func (self Ramp) ReplacementRange(position int, strength float64) (int, int) {
	if !(strength > 0) { strength = 0 } // also catches NaN
	lo := int(max(float64(position) - strength, 0))
	hi := int(min(float64(position) + strength, float64(len(self.symbols))))
	return lo, hi
}
