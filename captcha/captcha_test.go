package captcha

import "context"
import "strings"
import "testing"
import "math/rand"
import "unicode/utf8"

import "github.com/stretchr/testify/require"

import "github.com/tinne26/txtcaptcha/font"
import "github.com/tinne26/txtcaptcha/noise"

func TestRandomString(t *testing.T) {
	random := rand.New(rand.NewSource(3))
	for _, length := range []int{1, 7, 64} {
		answer := RandomString(length, random)
		require.Equal(t, length, utf8.RuneCountInString(answer))
		for _, codePoint := range answer {
			require.True(t, strings.ContainsRune(Alphanumeric, codePoint), "unexpected rune %q", codePoint)
		}
	}
	require.Equal(t, "", RandomString(0, random))
	require.Equal(t, "", RandomString(-4, nil))
	require.Len(t, RandomString(12, nil), 12)
	require.Len(t, RandomString(12, noise.GlobalSource{}), 12)

	first  := RandomString(16, rand.New(rand.NewSource(9)))
	second := RandomString(16, rand.New(rand.NewSource(9)))
	require.Equal(t, first, second)

	for _, lookAlike := range "IOQilq01" {
		require.False(t, strings.ContainsRune(Alphanumeric, lookAlike))
	}
}

func TestCommand(t *testing.T) {
	require.Equal(t, `js Call.sendMessage("")`, Command(""))
	require.Equal(t, `js Call.sendMessage("! !\n" + "")`, Command("! !\n"))
	require.Equal(t,
		`js Call.sendMessage("!!\n" + " °\n" + "")`,
		Command("!!\n °\n"),
	)
	require.Equal(t, `js Call.sendMessage("ab")`, Command("ab"))
}

func TestConfigValidate(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, config.Validate())
	require.True(t, config.InkInRamp())

	mutations := []func(*Config){
		func(c *Config) { c.Length = 0 },
		func(c *Config) { c.Size = 0 },
		func(c *Config) { c.Size = 1 << 20 },
		func(c *Config) { c.Family = font.Family(77) },
		func(c *Config) { c.Ink = "" },
		func(c *Config) { c.Ink = "!!" },
		func(c *Config) { c.Ink = " " },
		func(c *Config) { c.Ink = "\x01" },
		func(c *Config) { c.Ink = "\u200b" },
		func(c *Config) { c.Ink = "\xff" },
		func(c *Config) { c.Charset = "ab\ncd" },
		func(c *Config) { c.Noise = -0.5 },
		func(c *Config) { c.Strength = -1 },
		func(c *Config) { c.Spacing = -1 },
		func(c *Config) { c.Spacing = 999 },
		func(c *Config) { c.Skew = 1.5 },
		func(c *Config) { c.CacheSize = -1 },
	}
	for i, mutate := range mutations {
		config := DefaultConfig()
		mutate(&config)
		require.ErrorIs(t, config.Validate(), ErrInvalidConfig, "mutation #%d", i)
		_, err := NewGenerator(config)
		require.ErrorIs(t, err, ErrInvalidConfig, "mutation #%d", i)
	}

	config.Ink = "#"
	require.NoError(t, config.Validate())
	require.False(t, config.InkInRamp())
}

func requireChallenge(t *testing.T, config Config, challenge Challenge) {
	t.Helper()
	require.Equal(t, config.Length, utf8.RuneCountInString(challenge.Answer))
	require.NotEmpty(t, challenge.Art)
	require.True(t, strings.HasSuffix(challenge.Art, "\n"))
	require.LessOrEqual(t, strings.Count(challenge.Art, "\n"), config.Size)
	require.Equal(t, Command(challenge.Art), challenge.Command)

	allowed := noise.Pixels + " \n" + config.Ink
	for _, codePoint := range challenge.Art {
		require.True(t, strings.ContainsRune(allowed, codePoint), "unexpected rune %q", codePoint)
	}
}

func TestGenerate(t *testing.T) {
	config := DefaultConfig()
	config.Seed = 1234
	generator, err := NewGenerator(config)
	require.NoError(t, err)
	require.Equal(t, int64(1234), generator.Seed())
	require.Equal(t, config, generator.Config())
	require.NotNil(t, generator.Cache())

	twin, err := NewGenerator(config)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		challenge, err := generator.Generate()
		require.NoError(t, err)
		requireChallenge(t, config, challenge)

		twinChallenge, err := twin.Generate()
		require.NoError(t, err)
		require.Equal(t, challenge, twinChallenge)
	}
	require.Positive(t, generator.Cache().Len())

	config.Seed = 0
	config.CacheSize = 0
	timed, err := NewGenerator(config)
	require.NoError(t, err)
	require.NotZero(t, timed.Seed())
	require.Nil(t, timed.Cache())
}

func TestGenerateOptions(t *testing.T) {
	base := DefaultConfig()
	base.Seed = 99
	base.Noise = 0
	plainGenerator, err := NewGenerator(base)
	require.NoError(t, err)
	plain, err := plainGenerator.Generate()
	require.NoError(t, err)

	// spacing widens every line of the same answer
	spaced := base
	spaced.Spacing = 3
	spacedGenerator, err := NewGenerator(spaced)
	require.NoError(t, err)
	wide, err := spacedGenerator.Generate()
	require.NoError(t, err)
	require.Equal(t, plain.Answer, wide.Answer)
	plainWidth := strings.Index(plain.Art, "\n")
	wideWidth  := strings.Index(wide.Art, "\n")
	require.Equal(t, plainWidth + 3*(base.Length - 1), wideWidth)

	// skewed glyphs, custom charset and a serif family
	custom := base
	custom.Skew = 0.3
	custom.Charset = "XYZ"
	custom.Family = font.Serif
	custom.Ink = "°"
	customGenerator, err := NewGenerator(custom)
	require.NoError(t, err)
	challenge, err := customGenerator.Generate()
	require.NoError(t, err)
	requireChallenge(t, custom, challenge)
	require.Empty(t, strings.Trim(challenge.Answer, "XYZ"))
	require.Empty(t, strings.Trim(challenge.Art, "° \n"), "zero noise keeps the art clean")
}

func TestGenerateBatch(t *testing.T) {
	config := DefaultConfig()
	config.Seed = 42
	generator, err := NewGenerator(config)
	require.NoError(t, err)
	batch, err := generator.GenerateBatch(context.Background(), 12)
	require.NoError(t, err)
	require.Len(t, batch, 12)
	for _, challenge := range batch { requireChallenge(t, config, challenge) }

	// same seed, same batches; successive batches differ
	twin, err := NewGenerator(config)
	require.NoError(t, err)
	twinBatch, err := twin.GenerateBatch(context.Background(), 12)
	require.NoError(t, err)
	require.Equal(t, batch, twinBatch)

	next, err := generator.GenerateBatch(context.Background(), 12)
	require.NoError(t, err)
	require.NotEqual(t, batch, next)

	empty, err := generator.GenerateBatch(context.Background(), 0)
	require.NoError(t, err)
	require.Empty(t, empty)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cancelled, err := generator.GenerateBatch(ctx, 8)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, cancelled)
}

func TestGenerateMissingGlyphs(t *testing.T) {
	config := DefaultConfig()
	config.Charset = "\U0001F600"
	generator, err := NewGenerator(config)
	require.NoError(t, err)
	_, err = generator.Generate()
	require.Error(t, err)
	_, err = generator.GenerateBatch(context.Background(), 4)
	require.Error(t, err)
}
