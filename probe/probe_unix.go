//go:build unix

package probe

import (
	"errors"
	"syscall"
)

// POSIX probes with a null signal. EPERM means the process exists but is
// owned by someone else, so it counts as alive. Errnos other than ESRCH
// are ambiguous and fall back to the process-table filesystem entry.
type POSIX struct{}

func (POSIX) Probe(pid int) Status {
	if pid <= 0 {
		return StatusDead
	}
	err := syscall.Kill(pid, 0)
	switch {
	case err == nil:
		return StatusAlive
	case errors.Is(err, syscall.EPERM):
		return StatusAlive
	case errors.Is(err, syscall.ESRCH):
		return StatusDead
	}
	return Procfs{}.Probe(pid)
}

// Default returns the prober for this platform.
func Default() Prober { return POSIX{} }
