// The noise subpackage degrades ASCII art by replacing random symbols
// with nearby symbols from an ordered "pixel ramp".
//
// The default ramp is [Pixels]. Its symbols are ordered by visual
// weight and all have the same width in the target chat font, so
// replacements blur the art without breaking its alignment.
//
// Replacements are bounded by a strength: a symbol at ramp position p
// can only become a symbol in [max(p - strength, 0), min(p + strength,
// len)), truncating the bounds toward zero. When that range is empty,
// the lower bound is used. Symbols that are not part of the ramp are
// treated as sitting at position -1, right before the start of the
// ramp, so they become one of the first symbols of the ramp.
package noise
