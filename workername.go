package resquestatus

import (
	"fmt"
	"strconv"
	"strings"
)

// WorkerName is the composite worker identifier, host:pid:queues, with
// queues a comma-separated list. It names a worker for pause and
// scheduler-identity checks; the worker table is keyed by pid alone.
type WorkerName struct {
	Host   string
	PID    int
	Queues []string
}

// ParseWorkerName parses a host:pid:queues identifier. The pid must be
// the second colon-delimited field and numeric; anything else is
// ErrMalformedWorkerName.
func ParseWorkerName(name string) (WorkerName, error) {
	parts := strings.SplitN(name, ":", 3)
	if len(parts) < 2 {
		return WorkerName{}, fmt.Errorf("%w: %q", ErrMalformedWorkerName, name)
	}
	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return WorkerName{}, fmt.Errorf("%w: %q: non-numeric pid", ErrMalformedWorkerName, name)
	}
	wn := WorkerName{Host: parts[0], PID: pid}
	if len(parts) == 3 && parts[2] != "" {
		wn.Queues = strings.Split(parts[2], ",")
	}
	return wn, nil
}

// String reassembles the canonical host:pid:queues form.
func (w WorkerName) String() string {
	return w.Host + ":" + strconv.Itoa(w.PID) + ":" + strings.Join(w.Queues, ",")
}
