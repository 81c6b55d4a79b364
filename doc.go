// txtcaptcha is a package to render short strings as ASCII art captchas
// for text-only chat surfaces.
//
// The rendering pipeline has two stages. First, the text is rasterized
// with a bold font into a coverage grid and every foreground pixel becomes
// an "ink" symbol (see [Render] and [Renderer]). Then, the [noise]
// subpackage replaces some of the symbols with nearby symbols from a pixel
// ramp, so the result stays readable for humans but gets annoying for
// naive OCR:
//   art, err := txtcaptcha.Render("XkRbTwa", 24, font.Monospace, "!")
//   if err != nil { ... }
//   captcha := noise.Noise(art, 0.03, 5)
//
// The [captcha] subpackage puts everything together, including random
// answers and the chat command template.
//
// [noise]: https://pkg.go.dev/github.com/tinne26/txtcaptcha/noise
// [captcha]: https://pkg.go.dev/github.com/tinne26/txtcaptcha/captcha
package txtcaptcha
