package main

import "os"
import "fmt"
import "flag"
import "errors"
import "strconv"
import "strings"
import "path/filepath"

import "github.com/joho/godotenv"

import "github.com/tinne26/txtcaptcha/font"
import "github.com/tinne26/txtcaptcha/captcha"

const envPrefix = "TXTCAPTCHA_"

type outputMode string

const (
	outputAll     outputMode = "all"
	outputArt     outputMode = "art"
	outputCommand outputMode = "command"
	outputAnswer  outputMode = "answer"
)

type options struct {
	length   int
	size     int
	family   font.Family
	ink      string
	noise    float64
	strength float64
	seed     int64
	spacing  int
	skew     float64
	count    int
	output   outputMode
	preview  bool
	verbose  bool
	envDir   string
	envFile  string // loaded .env file, if any
	fontDir  string
	bindings map[font.Family]string
}

type lookupFunc func(key string) (string, bool)

// Loads .env.local or, failing that, .env from the given directory
// into the process environment. Missing files are not an error, and
// variables already set are never overridden.
func loadEnvFiles(dir string) (string, error) {
	for _, name := range []string{".env.local", ".env"} {
		envPath := filepath.Join(dir, name)
		if _, err := os.Stat(envPath); err != nil { continue }
		if err := godotenv.Load(envPath); err != nil {
			return envPath, fmt.Errorf("loading %s: %w", envPath, err)
		}
		return envPath, nil
	}
	return "", nil
}

// Parses the command line arguments, taking defaults from the
// environment. The -env flag is resolved first, so the .env file it
// points to can provide the defaults of every other flag.
func parseOptions(args []string, lookup lookupFunc) (*options, error) {
	envDir := "."
	for i, arg := range args {
		if value, found := strings.CutPrefix(arg, "-env="); found { envDir = value }
		if value, found := strings.CutPrefix(arg, "--env="); found { envDir = value }
		if (arg == "-env" || arg == "--env") && i + 1 < len(args) { envDir = args[i + 1] }
	}
	envPath, err := loadEnvFiles(envDir)
	if err != nil { return nil, err }

	env := envDefaults{ lookup: lookup }
	opts := &options{ envFile: envPath, output: outputAll, bindings: make(map[font.Family]string) }
	defaults := captcha.DefaultConfig()
	opts.size = env.size("SIZE", defaults.Size)

	flags := flag.NewFlagSet("txtcaptcha", flag.ContinueOnError)
	flags.StringVar(&opts.envDir, "env", envDir, "directory with the optional .env.local or .env file")
	flags.IntVar(&opts.length, "length", env.int("LENGTH", defaults.Length), "answer length")
	flags.Func("size", "art height in pixels, or small, medium, large or huge (default " +
		strconv.Itoa(opts.size) + ")", func(value string) error {
		size, err := parseSize(value)
		opts.size = size
		return err
	})
	opts.family = env.family("FONT", defaults.Family)
	flags.TextVar(&opts.family, "font", opts.family, "font family: dialog, dialog-input, monospace, serif or sans-serif")
	flags.StringVar(&opts.ink, "ink", env.string("INK", defaults.Ink), "symbol for the text pixels")
	flags.Float64Var(&opts.noise, "noise", env.float("NOISE", defaults.Noise), "noise amount: fraction of the art if < 1, replacement attempts otherwise")
	flags.Float64Var(&opts.strength, "strength", env.float("STRENGTH", defaults.Strength), "max ramp drift of each noise replacement")
	flags.Int64Var(&opts.seed, "seed", env.int64("SEED", 0), "random seed, 0 for a time based one")
	flags.IntVar(&opts.spacing, "spacing", env.int("SPACING", 0), "extra pixels between glyphs")
	flags.Float64Var(&opts.skew, "skew", env.float("SKEW", 0), "oblique factor in [-1, 1]")
	flags.IntVar(&opts.count, "count", 1, "number of captchas to generate")
	flags.Func("output", "what to print: all, art, command or answer (default all)", func(value string) error {
		mode, err := parseOutputMode(value)
		opts.output = mode
		return err
	})
	flags.BoolVar(&opts.preview, "preview", false, "show the art on a full terminal screen until a key is pressed")
	flags.BoolVar(&opts.verbose, "v", false, "log diagnostics to stderr")
	flags.StringVar(&opts.fontDir, "font-dir", env.string("FONT_DIR", ""), "directory with additional .ttf and .otf fonts")

	if env.err != nil { return nil, env.err }
	if err := flags.Parse(args); err != nil { return nil, err }
	if flags.NArg() > 0 { return nil, fmt.Errorf("unexpected arguments: %v", flags.Args()) }
	if opts.count < 1 { return nil, fmt.Errorf("count %d must be positive", opts.count) }

	for _, family := range font.Families() {
		if name := env.string(familyEnvKey(family), ""); name != "" {
			opts.bindings[family] = name
		}
	}
	if len(opts.bindings) > 0 && opts.fontDir == "" {
		return nil, errors.New(envPrefix + "FONT_<FAMILY> bindings require a font directory")
	}
	return opts, nil
}

func (self *options) captchaConfig(library *font.Library) captcha.Config {
	config := captcha.DefaultConfig()
	config.Length   = self.length
	config.Size     = self.size
	config.Family   = self.family
	config.Ink      = self.ink
	config.Noise    = self.noise
	config.Strength = self.strength
	config.Seed     = self.seed
	config.Spacing  = self.spacing
	config.Skew     = float32(self.skew)
	config.Library  = library
	return config
}

// Returns the environment key suffix for the font bound to the
// given family, like "FONT_SANS_SERIF".
func familyEnvKey(family font.Family) string {
	name := strings.ToUpper(strings.ReplaceAll(family.String(), "-", "_"))
	return "FONT_" + name
}

func parseSize(value string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "small" : return captcha.SizeSmall, nil
	case "medium": return captcha.SizeMedium, nil
	case "large" : return captcha.SizeLarge, nil
	case "huge"  : return captcha.SizeHuge, nil
	}
	size, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil { return 0, fmt.Errorf("invalid size '%s'", value) }
	return size, nil
}

func parseOutputMode(value string) (outputMode, error) {
	mode := outputMode(strings.ToLower(strings.TrimSpace(value)))
	switch mode {
	case outputAll, outputArt, outputCommand, outputAnswer:
		return mode, nil
	}
	return outputAll, fmt.Errorf("invalid output mode '%s'", value)
}

// envDefaults reads TXTCAPTCHA_* variables. The first malformed
// value is kept in err and its fallback is used instead.
type envDefaults struct {
	lookup lookupFunc
	err    error
}

func (self *envDefaults) string(key, fallback string) string {
	value, found := self.lookup(envPrefix + key)
	if !found || value == "" { return fallback }
	return value
}

func (self *envDefaults) int(key string, fallback int) int {
	value := self.string(key, "")
	if value == "" { return fallback }
	n, err := strconv.Atoi(value)
	if err != nil {
		self.fail(key, value)
		return fallback
	}
	return n
}

func (self *envDefaults) int64(key string, fallback int64) int64 {
	value := self.string(key, "")
	if value == "" { return fallback }
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		self.fail(key, value)
		return fallback
	}
	return n
}

func (self *envDefaults) float(key string, fallback float64) float64 {
	value := self.string(key, "")
	if value == "" { return fallback }
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		self.fail(key, value)
		return fallback
	}
	return f
}

func (self *envDefaults) size(key string, fallback int) int {
	value := self.string(key, "")
	if value == "" { return fallback }
	size, err := parseSize(value)
	if err != nil {
		self.fail(key, value)
		return fallback
	}
	return size
}

func (self *envDefaults) family(key string, fallback font.Family) font.Family {
	value := self.string(key, "")
	if value == "" { return fallback }
	family, err := font.ParseFamily(value)
	if err != nil {
		self.fail(key, value)
		return fallback
	}
	return family
}

func (self *envDefaults) fail(key, value string) {
	if self.err != nil { return }
	self.err = fmt.Errorf("invalid %s%s value '%s'", envPrefix, key, value)
}
