//go:build dgdebug

package diffusion

const debugChecks = true
