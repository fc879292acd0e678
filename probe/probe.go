// Package probe implements best-effort process liveness checks.
//
// A Prober answers whether a pid currently corresponds to a running
// process. The answer is three-valued: platforms without any process
// introspection facility report StatusUnknown rather than guessing.
//
// Default selects the right variant for the host platform once, at
// startup: a POSIX signal-0 probe on unix, the OS process API on Windows,
// and Unsupported everywhere else. Pid reuse by the OS between the caller's
// read and the probe is a known, accepted race.
package probe

import (
	"os"
	"strconv"

	gopsproc "github.com/shirou/gopsutil/v4/process"
)

// Status is the outcome of a liveness probe.
type Status int

const (
	// StatusUnknown means no facility could determine liveness.
	StatusUnknown Status = iota
	// StatusAlive means a process with the pid exists.
	StatusAlive
	// StatusDead means no process with the pid exists.
	StatusDead
)

// String returns the status name for logging.
func (s Status) String() string {
	switch s {
	case StatusAlive:
		return "alive"
	case StatusDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Prober is a strategy that determines whether a process is running.
// Implementations must be safe for concurrent use.
type Prober interface {
	Probe(pid int) Status
}

// Func adapts a plain function to the Prober interface.
type Func func(pid int) Status

func (f Func) Probe(pid int) Status { return f(pid) }

// Unsupported is the prober for platforms without process introspection.
// It always reports StatusUnknown.
type Unsupported struct{}

func (Unsupported) Probe(int) Status { return StatusUnknown }

// Procfs probes for a process-table filesystem entry under /proc.
// On hosts without a /proc mount it reports StatusUnknown.
type Procfs struct{}

func (Procfs) Probe(pid int) Status {
	if pid <= 0 {
		return StatusDead
	}
	if _, err := os.Stat("/proc"); err != nil {
		return StatusUnknown
	}
	if _, err := os.Stat("/proc/" + strconv.Itoa(pid)); err != nil {
		if os.IsNotExist(err) {
			return StatusDead
		}
		return StatusUnknown
	}
	return StatusAlive
}

// Platform probes through the OS process API via gopsutil. It works on
// every platform gopsutil supports, including Windows.
type Platform struct{}

func (Platform) Probe(pid int) Status {
	if pid <= 0 {
		return StatusDead
	}
	exists, err := gopsproc.PidExists(int32(pid))
	if err != nil {
		return StatusUnknown
	}
	if exists {
		return StatusAlive
	}
	return StatusDead
}
