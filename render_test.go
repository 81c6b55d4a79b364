package txtcaptcha

import "strings"
import "testing"
import "unicode/utf8"

import "github.com/stretchr/testify/require"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/txtcaptcha/font"
import "github.com/tinne26/txtcaptcha/mask"
import "github.com/tinne26/txtcaptcha/cache"
import "github.com/tinne26/txtcaptcha/sizer"

func requireArt(t *testing.T, art string, ink string, maxLines int) []string {
	t.Helper()
	require.NotEmpty(t, art)
	require.True(t, strings.HasSuffix(art, "\n"), "art must end with a line break")
	lines := strings.Split(strings.TrimSuffix(art, "\n"), "\n")
	require.LessOrEqual(t, len(lines), maxLines)
	width := utf8.RuneCountInString(lines[0])
	for i, line := range lines {
		require.NotEmpty(t, strings.TrimSpace(line), "line #%d is blank", i)
		require.Equal(t, width, utf8.RuneCountInString(line), "line #%d has a different width", i)
		require.Empty(t, strings.ReplaceAll(strings.ReplaceAll(line, ink, ""), " ", ""),
			"line #%d has symbols other than ink and spaces", i)
	}
	return lines
}

func TestRenderCharset(t *testing.T) {
	for _, family := range font.Families() {
		art, err := Render("XkRbTwa", 24, family, "!")
		require.NoError(t, err, "family %s", family)
		requireArt(t, art, "!", 24)
		for _, r := range art {
			require.Contains(t, []rune{'!', ' ', '\n'}, r)
		}
	}
}

func TestRenderDimensions(t *testing.T) {
	renderer := NewRenderer()
	width, err := renderer.Measure("Captcha")
	require.NoError(t, err)
	require.Positive(t, width)

	grid, err := renderer.Rasterize("Captcha")
	require.NoError(t, err)
	require.Equal(t, width, grid.Width())
	require.Equal(t, DefaultSize, grid.Height())
	require.Positive(t, grid.Count())

	art, err := renderer.Render("Captcha")
	require.NoError(t, err)
	lines := requireArt(t, art, DefaultInk, DefaultSize)
	require.Equal(t, width, len(lines[0]))

	nonEmptyRows := 0
	for y := 0; y < grid.Height(); y++ {
		if !grid.RowIsEmpty(y) { nonEmptyRows += 1 }
	}
	require.Equal(t, nonEmptyRows, len(lines))
}

func TestRenderBlankRowElision(t *testing.T) {
	for _, text := range []string{" ", "   "} {
		art, err := Render(text, 18, font.Dialog, "!")
		require.NoError(t, err)
		require.Equal(t, "", art)
	}

	// small sizes still produce some rows, never blank ones
	art, err := Render("Hi", 6, font.SansSerif, "#")
	require.NoError(t, err)
	for _, line := range strings.Split(strings.TrimSuffix(art, "\n"), "\n") {
		if art == "" { break }
		require.NotEmpty(t, strings.TrimSpace(line))
	}
}

func TestRenderInvalidArguments(t *testing.T) {
	tests := []struct {
		text   string
		height int
		family font.Family
		ink    string
	}{
		{"", 24, font.Monospace, "!"},
		{"abc", 0, font.Monospace, "!"},
		{"abc", -3, font.Monospace, "!"},
		{"abc", MaxSize + 1, font.Monospace, "!"},
		{"abc", 24, font.Family(99), "!"},
		{"abc", 24, font.Monospace, ""},
		{"abc", 24, font.Monospace, "!!"},
		{"abc", 24, font.Monospace, " "},
		{"abc", 24, font.Monospace, "\n"},
		{"a\nb", 24, font.Monospace, "!"},
		{"\xff", 24, font.Monospace, "!"},
	}
	for i, test := range tests {
		art, err := Render(test.text, test.height, test.family, test.ink)
		require.ErrorIs(t, err, ErrInvalidArgument, "test #%d", i)
		require.Empty(t, art, "test #%d", i)
	}

	_, err := Render("a\U0001F600b", 24, font.Monospace, "!")
	require.ErrorIs(t, err, ErrMissingGlyphs)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Render("abc", 24, font.Family(42), "!")
	require.ErrorIs(t, err, font.ErrUnknownFamily)

	renderer := NewRenderer()
	renderer.SetLibrary(font.NewLibrary())
	_, err = renderer.Render("abc")
	require.ErrorIs(t, err, ErrInvalidArgument, "unbound families must be rejected")
}

func TestRenderDeterminism(t *testing.T) {
	first, err := Render("Determinism", 18, font.Serif, "|")
	require.NoError(t, err)
	second, err := Render("Determinism", 18, font.Serif, "|")
	require.NoError(t, err)
	require.Equal(t, first, second)

	// NFC normalization: decomposed and composed forms render the same
	composed, err := Render("caf\u00e9", 18, font.Dialog, "!")
	require.NoError(t, err)
	decomposed, err := Render("cafe\u0301", 18, font.Dialog, "!")
	require.NoError(t, err)
	require.Equal(t, composed, decomposed)
}

func TestRenderMultibyteInk(t *testing.T) {
	art, err := Render("Ab", 24, font.Monospace, "°")
	require.NoError(t, err)
	requireArt(t, art, "°", 24)

	ascii, err := Render("Ab", 24, font.Monospace, "!")
	require.NoError(t, err)
	require.Equal(t, ascii, strings.ReplaceAll(art, "°", "!"))
}

func TestMeasure(t *testing.T) {
	renderer := NewRenderer()
	renderer.SetFamily(font.Monospace)
	narrow, err := renderer.Measure("iii")
	require.NoError(t, err)
	wide, err := renderer.Measure("WWW")
	require.NoError(t, err)
	require.Equal(t, narrow, wide, "monospaced glyphs must share advances")

	short, err := renderer.Measure("AB")
	require.NoError(t, err)
	long, err := renderer.Measure("ABC")
	require.NoError(t, err)
	require.Greater(t, long, short)

	renderer.SetSize(48)
	doubled, err := renderer.Measure("ABC")
	require.NoError(t, err)
	require.Greater(t, doubled, long)

	_, err = renderer.Measure("")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRendererPipelineOptions(t *testing.T) {
	plain := NewRenderer()
	reference, err := plain.Render("Pipeline")
	require.NoError(t, err)

	// cached renders must match uncached ones, including on cache hits
	cached := NewRenderer()
	maskCache := cache.NewMaskCache(1024*1024)
	cached.SetCache(maskCache)
	require.Same(t, maskCache, cached.GetCache())
	for i := 0; i < 2; i++ {
		art, err := cached.Render("Pipeline")
		require.NoError(t, err)
		require.Equal(t, reference, art)
	}
	require.Positive(t, maskCache.Len())

	// padding between glyphs widens the canvas
	padded := NewRenderer()
	paddedSizer := &sizer.PaddedSizer{}
	paddedSizer.SetPadding(fixed.I(2))
	padded.SetSizer(paddedSizer)
	baseWidth, err := plain.Measure("Pipeline")
	require.NoError(t, err)
	paddedWidth, err := padded.Measure("Pipeline")
	require.NoError(t, err)
	require.Equal(t, baseWidth + 2*7, paddedWidth)

	// oblique glyphs keep the output format
	skewed := NewRenderer()
	rasterizer := &mask.SharpRasterizer{}
	rasterizer.SetSkewFactor(0.25)
	skewed.SetRasterizer(rasterizer)
	skewed.SetInk("|")
	art, err := skewed.Render("Pipeline")
	require.NoError(t, err)
	requireArt(t, art, "|", DefaultSize)
	require.NotEqual(t, strings.ReplaceAll(reference, "!", "|"), art)

	require.Panics(t, func() { skewed.SetRasterizer(nil) })
	require.Panics(t, func() { skewed.SetSizer(nil) })
}

func TestRendererDefaults(t *testing.T) {
	renderer := NewRenderer()
	require.Equal(t, DefaultSize, renderer.GetSize())
	require.Equal(t, DefaultInk, renderer.GetInk())
	require.Equal(t, DefaultFamily, renderer.GetFamily())
	require.Same(t, font.DefaultLibrary(), renderer.GetLibrary())
	require.IsType(t, &mask.SharpRasterizer{}, renderer.GetRasterizer())
	require.IsType(t, &sizer.DefaultSizer{}, renderer.GetSizer())
	require.Nil(t, renderer.GetCache())

	renderer.SetLibrary(font.NewLibrary())
	renderer.SetLibrary(nil)
	require.Same(t, font.DefaultLibrary(), renderer.GetLibrary())
}
