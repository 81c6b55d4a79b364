// The captcha subpackage puts the renderer and the noise injector
// together to produce complete text captcha challenges: a random
// answer, its noisy ASCII art and the chat command that displays it.
//
// Quick usage:
//	generator, err := captcha.NewGenerator(captcha.DefaultConfig())
//	if err != nil { ... }
//	challenge, err := generator.Generate()
//	if err != nil { ... }
//	fmt.Print(challenge.Art)
//	fmt.Println(challenge.Command)
//
// Generators are safe for concurrent use, and [Generator.GenerateBatch]()
// can render many challenges in parallel.
package captcha
