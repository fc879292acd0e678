//go:build windows

package probe

// Default returns the prober for this platform.
func Default() Prober { return Platform{} }
