package captcha

import "fmt"
import "math"
import "errors"
import "strings"
import "unicode"
import "unicode/utf8"

import "github.com/tinne26/txtcaptcha"
import "github.com/tinne26/txtcaptcha/font"
import "github.com/tinne26/txtcaptcha/noise"

// Returned (wrapped) by [Config.Validate]() and [NewGenerator]().
var ErrInvalidConfig = errors.New("invalid captcha config")

// Configuration for a [Generator]. Use [DefaultConfig]() as the
// starting point; the zero value is not valid.
type Config struct {
	Length   int         // answer length in runes
	Charset  string      // answer runes, [Alphanumeric] if empty
	Size     int         // art height in pixels
	Family   font.Family
	Ink      string      // single rune, should belong to the ramp
	Noise    float64     // see [noise.Injector.Attempts]()
	Strength float64     // max ramp drift of each replacement
	Seed     int64       // zero for a time based seed

	Spacing int     // extra horizontal pixels between glyphs
	Skew    float32 // oblique factor in [-1, 1], zero for upright glyphs

	Library   *font.Library // nil for [font.DefaultLibrary]()
	CacheSize int           // glyph mask cache capacity in bytes, zero to disable
}

// Returns the configuration of the classic captcha: seven alphanumeric
// runes, 24 pixels of monospaced bold text drawn with '!', and noise
// on 3% of the art with strength 5.
func DefaultConfig() Config {
	return Config{
		Length: 7,
		Size: SizeLarge,
		Family: font.Monospace,
		Ink: "!",
		Noise: 0.03,
		Strength: 5,
		CacheSize: 2*1024*1024,
	}
}

// Returns nil if the configuration is valid, or an error wrapping
// [ErrInvalidConfig] that describes the first problem found.
func (self *Config) Validate() error {
	if self.Length < 1 { return configErrorf("length %d must be positive", self.Length) }
	if self.Size < 1 || self.Size > txtcaptcha.MaxSize {
		return configErrorf("size %d outside [1, %d]", self.Size, txtcaptcha.MaxSize)
	}
	if !self.Family.Valid() { return fmt.Errorf("%w: %w %d", ErrInvalidConfig, font.ErrUnknownFamily, self.Family) }
	ink, inkSize := utf8.DecodeRuneInString(self.Ink)
	if inkSize == 0 || inkSize != len(self.Ink) || ink == utf8.RuneError {
		return configErrorf("ink %q must be a single rune", self.Ink)
	}
	if unicode.IsSpace(ink) || !unicode.IsGraphic(ink) {
		return configErrorf("ink %q must be a visible symbol", self.Ink)
	}
	if !utf8.ValidString(self.Charset) || strings.ContainsAny(self.Charset, "\r\n") {
		return configErrorf("charset %q must be valid single line text", self.Charset)
	}
	if !isFiniteNonNeg(self.Noise) { return configErrorf("noise %v must be a finite non-negative number", self.Noise) }
	if !isFiniteNonNeg(self.Strength) {
		return configErrorf("strength %v must be a finite non-negative number", self.Strength)
	}
	if self.Spacing < 0 || self.Spacing > self.Size {
		return configErrorf("spacing %d outside [0, %d]", self.Spacing, self.Size)
	}
	if !(self.Skew >= -1 && self.Skew <= 1) { return configErrorf("skew %v outside [-1, 1]", self.Skew) }
	if self.CacheSize < 0 { return configErrorf("negative cache size %d", self.CacheSize) }
	return nil
}

// Returns whether the ink is part of the default noise ramp. Inks
// outside the ramp are accepted, but the injector treats them as
// unknown symbols and always replaces them with early ramp symbols.
func (self *Config) InkInRamp() bool {
	ink, _ := utf8.DecodeRuneInString(self.Ink)
	return noise.DefaultRamp().Contains(ink)
}

func (self *Config) charset() string {
	if self.Charset == "" { return Alphanumeric }
	return self.Charset
}

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: " + format, append([]any{ErrInvalidConfig}, args...)...)
}

func isFiniteNonNeg(value float64) bool {
	return value >= 0 && !math.IsInf(value, 1)
}
