// The cache subpackage provides a concurrent-safe, memory bounded cache
// for rasterized glyph masks.
//
// Captchas are short and built from a small alphabet, so the same glyph
// masks come up again and again when many captchas are generated with
// the same font and size. Sharing a [MaskCache] between renderers skips
// most of the rasterization work in batch generation.
//
// Eviction is not LRU: when the cache is full, a few random entries are
// sampled and the one with the lowest "hotness" (bytes hit per time
// alive) is removed, but only if it's colder than the incoming entry.
//
// A rough size reference: a glyph mask takes about width*height bytes
// plus a constant overhead, so at 24px a few hundred KiB already hold
// every glyph of a typical captcha alphabet.
package cache
