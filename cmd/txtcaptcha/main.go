// Command txtcaptcha prints a random text captcha: its noisy ASCII art,
// the chat command that displays it and the expected answer.
//
// Defaults come from TXTCAPTCHA_* environment variables, which can also
// be set in a .env.local or .env file. Flags take precedence. Run with
// -h for the list of flags.
package main

import "os"
import "io"
import "fmt"
import "log"
import "context"
import "os/signal"

import "github.com/tinne26/txtcaptcha/captcha"

// Diagnostics enabled by -v. Fatal errors go through the standard
// logger instead, which always writes to stderr.
var verbose = log.New(io.Discard, "txtcaptcha: ", 0)

func main() {
	log.SetFlags(0)
	log.SetPrefix("txtcaptcha: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		stop()
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	opts, err := parseOptions(args, os.LookupEnv)
	if err != nil { return err }
	if opts.verbose { verbose.SetOutput(os.Stderr) }
	if opts.envFile != "" { verbose.Printf("loaded %s", opts.envFile) }

	library, err := loadLibrary(opts.fontDir, opts.bindings)
	if err != nil { return err }
	config := opts.captchaConfig(library)
	if !config.InkInRamp() {
		verbose.Printf("ink %q is outside the noise ramp, noise will replace it with early ramp symbols", config.Ink)
	}

	generator, err := captcha.NewGenerator(config)
	if err != nil { return err }
	verbose.Printf("seed: %d", generator.Seed())

	challenges, err := generateChallenges(ctx, generator, opts.count)
	if err != nil { return err }
	for i, challenge := range challenges {
		if i > 0 { fmt.Fprintln(out) }
		writeChallenge(out, opts.output, challenge)
	}

	if opts.preview && len(challenges) > 0 {
		return previewArt(challenges[len(challenges) - 1].Art)
	}
	return nil
}

func generateChallenges(ctx context.Context, generator *captcha.Generator, count int) ([]captcha.Challenge, error) {
	if count == 1 {
		challenge, err := generator.Generate()
		if err != nil { return nil, err }
		return []captcha.Challenge{challenge}, nil
	}
	return generator.GenerateBatch(ctx, count)
}

func writeChallenge(out io.Writer, mode outputMode, challenge captcha.Challenge) {
	switch mode {
	case outputArt:
		fmt.Fprint(out, challenge.Art)
	case outputCommand:
		fmt.Fprintln(out, challenge.Command)
	case outputAnswer:
		fmt.Fprintln(out, challenge.Answer)
	default: // art, two blank lines, command, answer
		fmt.Fprintln(out, challenge.Art)
		fmt.Fprintln(out)
		fmt.Fprintln(out, challenge.Command)
		fmt.Fprintln(out, challenge.Answer)
	}
}
