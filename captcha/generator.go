package captcha

import "sync"
import "time"
import "context"
import "runtime"
import "math/rand"

import "golang.org/x/sync/errgroup"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/txtcaptcha"
import "github.com/tinne26/txtcaptcha/mask"
import "github.com/tinne26/txtcaptcha/cache"
import "github.com/tinne26/txtcaptcha/noise"
import "github.com/tinne26/txtcaptcha/sizer"

// A captcha challenge.
type Challenge struct {
	Answer  string // the text the user must type back
	Art     string // noisy ASCII art of the answer
	Command string // chat command that displays the art
}

// A Generator creates [Challenge] values for a fixed [Config].
// Generators are safe for concurrent use.
type Generator struct {
	config    Config
	seed      int64
	maskCache *cache.MaskCache

	mutex    sync.Mutex
	renderer *txtcaptcha.Renderer
	random   *rand.Rand
	batches  uint64 // challenges handed out by GenerateBatch
}

// Creates a new generator. The configuration is validated first.
// When the configured seed is zero, a time based one is used.
func NewGenerator(config Config) (*Generator, error) {
	if err := config.Validate(); err != nil { return nil, err }
	seed := config.Seed
	if seed == 0 { seed = time.Now().UnixNano() }

	generator := &Generator{ config: config, seed: seed }
	if config.CacheSize > 0 { generator.maskCache = cache.NewMaskCache(config.CacheSize) }
	generator.renderer = generator.newRenderer()
	generator.random = rand.New(rand.NewSource(seed))
	return generator, nil
}

// Returns the generator configuration.
func (self *Generator) Config() Config { return self.config }

// Returns the seed in use, which is only different from the
// configured seed when that one was zero.
func (self *Generator) Seed() int64 { return self.seed }

// Returns the glyph mask cache shared by the generator renderers,
// or nil if caching is disabled.
func (self *Generator) Cache() *cache.MaskCache { return self.maskCache }

// Creates a new challenge. Challenges from generators with the same
// non-zero seed and configuration follow the same sequence.
func (self *Generator) Generate() (Challenge, error) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.generate(self.renderer, self.random)
}

// Creates n challenges concurrently. Each challenge is rendered with
// its own renderer and random source derived from the generator seed
// and the challenge position, so for a fixed seed successive batches
// are reproducible regardless of scheduling. The first error cancels
// the remaining work and is returned, as is the context error if
// the context is cancelled before all the challenges are done.
func (self *Generator) GenerateBatch(ctx context.Context, n int) ([]Challenge, error) {
	if n <= 0 { return nil, nil }
	self.mutex.Lock()
	offset := self.batches
	self.batches += uint64(n)
	self.mutex.Unlock()

	challenges := make([]Challenge, n)
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		if groupCtx.Err() != nil { break }
		i := i // per-iteration copy (pre-Go 1.22 loop semantics)
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil { return err }
			random := rand.New(rand.NewSource(deriveSeed(self.seed, offset + uint64(i))))
			challenge, err := self.generate(self.newRenderer(), random)
			if err != nil { return err }
			challenges[i] = challenge
			return nil
		})
	}
	if err := group.Wait(); err != nil { return nil, err }
	if err := ctx.Err(); err != nil { return nil, err }
	return challenges, nil
}

func (self *Generator) generate(renderer *txtcaptcha.Renderer, random *rand.Rand) (Challenge, error) {
	answer := randomFromCharset(self.config.Length, self.config.charset(), random)
	art, err := renderer.Render(answer)
	if err != nil { return Challenge{}, err }
	art = noise.NewInjector(random).Noise(art, self.config.Noise, self.config.Strength)
	return Challenge{ Answer: answer, Art: art, Command: Command(art) }, nil
}

func (self *Generator) newRenderer() *txtcaptcha.Renderer {
	renderer := txtcaptcha.NewRenderer()
	renderer.SetLibrary(self.config.Library)
	renderer.SetSize(self.config.Size)
	renderer.SetFamily(self.config.Family)
	renderer.SetInk(self.config.Ink)
	renderer.SetCache(self.maskCache)
	if self.config.Spacing > 0 {
		paddedSizer := &sizer.PaddedSizer{}
		paddedSizer.SetPadding(fixed.I(self.config.Spacing))
		renderer.SetSizer(paddedSizer)
	}
	if self.config.Skew != 0 {
		rasterizer := &mask.SharpRasterizer{}
		rasterizer.SetSkewFactor(self.config.Skew)
		renderer.SetRasterizer(rasterizer)
	}
	return renderer
}

// splitmix64 step, keeps the sources of neighbouring challenges apart
func deriveSeed(seed int64, index uint64) int64 {
	z := uint64(seed) + (index + 1)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30))*0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27))*0x94D049BB133111EB
	return int64(z ^ (z >> 31))
}
