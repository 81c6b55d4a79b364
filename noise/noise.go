package noise

import "math"
import "math/rand"

// Source supplies uniform random integers in [0, n). A *rand.Rand
// satisfies this interface.
type Source interface {
	Intn(n int) int
}

// GlobalSource is a [Source] that draws from the math/rand top-level
// functions, which are safe for concurrent use.
type GlobalSource struct{}

// Satisfies the [Source] interface.
func (GlobalSource) Intn(n int) int { return rand.Intn(n) }

// An Injector replaces random symbols of a text with nearby ramp
// symbols. Injectors are as safe for concurrent use as their [Source].
type Injector struct {
	source Source
	ramp   Ramp
}

// Functional options for [NewInjector]().
type Option func(*Injector)

// Sets the ramp used for replacements. Empty ramps are ignored.
func WithRamp(ramp Ramp) Option {
	return func(injector *Injector) {
		if ramp.Len() > 0 { injector.ramp = ramp }
	}
}

// Creates a new injector drawing randomness from the given source. A
// nil source uses the math/rand global source, safe for concurrent use.
func NewInjector(source Source, options ...Option) *Injector {
	if source == nil { source = GlobalSource{} }
	injector := &Injector{ source: source, ramp: defaultRamp }
	for _, option := range options { option(injector) }
	return injector
}

// Creates a new injector with its own deterministic source. The
// returned injector can't be used concurrently.
func NewSeededInjector(seed int64, options ...Option) *Injector {
	return NewInjector(rand.New(rand.NewSource(seed)), options...)
}

var defaultInjector = NewInjector(nil)

// Applies noise to the given text using the default ramp and the
// global random source. See [Injector.Noise]().
func Noise(text string, amount, strength float64) string {
	return defaultInjector.Noise(text, amount, strength)
}

// Returns the ramp used by the injector.
func (self *Injector) Ramp() Ramp { return self.ramp }

// Returns the number of replacement attempts [Injector.Noise]() makes
// for the given text and amount. Amounts below 1 are a fraction of the
// text length in runes, other amounts are absolute counts. The result
// is truncated. Negative and non-finite amounts make zero attempts.
func (self *Injector) Attempts(text string, amount float64) int {
	if !(amount > 0) || math.IsInf(amount, 0) { return 0 }
	if amount < 1 {
		var length int
		for range text { length += 1 }
		return int(amount*float64(length))
	}
	if amount >= math.MaxInt32 { return math.MaxInt32 }
	return int(amount)
}

// Returns a copy of the text where up to [Injector.Attempts]() random
// runes have been replaced by nearby ramp symbols. Each attempt picks a
// uniformly random rune position, including line breaks; attempts that
// land on a line break are skipped, and the same position can be picked
// more than once.
//
// The result always has the same number of runes as the text, with
// line breaks in the same positions. Invalid UTF-8 bytes are treated
// as U+FFFD runes.
func (self *Injector) Noise(text string, amount, strength float64) string {
	tokens := []rune(text)
	if len(tokens) == 0 { return text }
	count := self.Attempts(text, amount)
	for i := 0; i < count; i++ {
		index := self.source.Intn(len(tokens))
		if tokens[index] == '\n' { continue }
		position := self.ramp.Index(tokens[index])
		tokens[index] = self.ramp.At(self.replacement(position, strength))
	}
	return string(tokens)
}

// Draws a replacement ramp position uniformly from the replacement range.
func (self *Injector) replacement(position int, strength float64) int {
	lo, hi := self.ramp.ReplacementRange(position, strength)
	if hi <= lo { return lo }
	return lo + self.source.Intn(hi - lo)
}
