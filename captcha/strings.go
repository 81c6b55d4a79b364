package captcha

import "strings"
import "unicode/utf8"

import "github.com/tinne26/txtcaptcha/noise"

// Default charset for captcha answers. Look-alike letters and
// digits (I, O, Q, i, l, q, 0, 1...) are excluded.
const Alphanumeric = "ABCDEFGHJKLMNPRSTUVWXYZabcdefghjkmnoprstuvwxyz"

// Common art sizes, in pixels (and thus in lines at most).
const (
	SizeSmall  = 12
	SizeMedium = 18
	SizeLarge  = 24
	SizeHuge   = 32
)

// Returns a random string of the given length with runes drawn
// uniformly from [Alphanumeric]. A nil source uses the math/rand
// global source. Non-positive lengths return an empty string.
func RandomString(length int, source noise.Source) string {
	return randomFromCharset(length, Alphanumeric, source)
}

func randomFromCharset(length int, charset string, source noise.Source) string {
	if length <= 0 { return "" }
	if source == nil { source = noise.GlobalSource{} }
	runes := []rune(charset)

	var builder strings.Builder
	builder.Grow(length*utf8.UTFMax)
	for i := 0; i < length; i++ {
		builder.WriteRune(runes[source.Intn(len(runes))])
	}
	return builder.String()
}

// Wraps the given art into a chat command that sends it as a single
// message:
//	js Call.sendMessage("<line 1>\n" + "<line 2>\n" + "")
// Every line break becomes the two characters '\' 'n' followed by
// the string concatenation `" + "`. Other runes are copied verbatim.
func Command(art string) string {
	var command strings.Builder
	command.Grow(len(art) + 32 + strings.Count(art, "\n")*6)
	command.WriteString(`js Call.sendMessage("`)
	for _, codePoint := range art {
		if codePoint == '\n' {
			command.WriteString(`\n" + "`)
		} else {
			command.WriteRune(codePoint)
		}
	}
	command.WriteString(`")`)
	return command.String()
}
