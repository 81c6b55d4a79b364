// The mask subpackage defines the [Rasterizer] interface used to turn
// glyph outlines into alpha masks, a few ready-to-use implementations,
// and the [Grid] type that samples a rasterized canvas into boolean
// foreground/background coverage.
//
// In this context, "[Rasterizer]" refers to a "glyph mask rasterizer":
// font glyphs are extracted from font files as outlines (sets of lines
// and curves) and must be drawn into a raster image (a grid of pixels)
// before we can decide which captcha cells are inked.
//
// The [SharpRasterizer] is the one used by default for captchas, as it
// produces bilevel masks with no antialiasing, so every pixel is either
// fully foreground or fully background.
package mask
