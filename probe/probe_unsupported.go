//go:build !unix && !windows

package probe

// Default returns the prober for this platform.
func Default() Prober { return Unsupported{} }
