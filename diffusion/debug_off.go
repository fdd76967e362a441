//go:build !dgdebug

package diffusion

// debugChecks enables operand validation in Registry.Apply; build with -tags dgdebug.
const debugChecks = false
