package resquestatus

import (
	"context"
	"fmt"
	"strconv"
)

// Args is the untyped bag of runtime arguments stored for a worker. Its
// contents are understood only by the caller; the registry encodes and
// decodes it with the configured codec and otherwise treats it as opaque.
type Args map[string]any

// AddWorker records a worker and its restart arguments in the worker
// table, overwriting any existing entry for the pid. The registry never
// verifies the pid corresponds to a live process; staleness is discovered
// lazily during scheduler reconciliation.
func (r *Registry) AddWorker(ctx context.Context, pid int, args Args) error {
	payload, err := r.codec.Encode(args)
	if err != nil {
		return fmt.Errorf("resquestatus: encode worker args: %w", err)
	}
	if err := r.store.HashSet(ctx, r.config.WorkerTableKey, strconv.Itoa(pid), payload); err != nil {
		return fmt.Errorf("resquestatus: add worker: %w", err)
	}
	return nil
}

// Workers returns every registered worker and its decoded arguments.
// An empty table yields an empty map, never an error.
func (r *Registry) Workers(ctx context.Context) (map[int]Args, error) {
	fields, err := r.store.HashGetAll(ctx, r.config.WorkerTableKey)
	if err != nil {
		return nil, fmt.Errorf("resquestatus: list workers: %w", err)
	}

	workers := make(map[int]Args, len(fields))
	for field, payload := range fields {
		pid, err := strconv.Atoi(field)
		if err != nil {
			// Foreign field in the table; skip rather than fail the read.
			r.logger.Warn("non-numeric worker table field", "field", field)
			continue
		}
		var args Args
		if err := r.codec.Decode(payload, &args); err != nil {
			return nil, fmt.Errorf("resquestatus: decode worker %d args: %w", pid, err)
		}
		workers[pid] = args
	}
	return workers, nil
}

// RemoveWorker deletes the worker table entry for pid. Removing an absent
// entry is a no-op.
func (r *Registry) RemoveWorker(ctx context.Context, pid int) error {
	if err := r.store.HashDelete(ctx, r.config.WorkerTableKey, strconv.Itoa(pid)); err != nil {
		return fmt.Errorf("resquestatus: remove worker: %w", err)
	}
	return nil
}

// ClearWorkers empties the worker table and the paused set as one logical
// reset. Both keys go into a single store Delete, so backends with a
// native multi-key delete perform the reset atomically; elsewhere a failed
// call can leave one of the two cleared, and re-invoking completes it.
func (r *Registry) ClearWorkers(ctx context.Context) error {
	if _, err := r.store.Delete(ctx, r.config.WorkerTableKey, r.config.PausedSetKey); err != nil {
		return fmt.Errorf("resquestatus: clear workers: %w", err)
	}
	return nil
}
