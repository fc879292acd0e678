package resquestatus

import (
	"context"
	"fmt"
	"strconv"

	"github.com/TBScreen/resque-status/probe"
)

// RegisterScheduler records pid as the active scheduler worker,
// unconditionally overwriting any previous registration (last writer
// wins). At-most-one-scheduler is the caller's responsibility: check
// SchedulerRunning first and accept the benign race between the check and
// this call.
func (r *Registry) RegisterScheduler(ctx context.Context, pid int) error {
	if err := r.store.Set(ctx, r.config.SchedulerSlotKey, strconv.Itoa(pid)); err != nil {
		return fmt.Errorf("resquestatus: register scheduler: %w", err)
	}
	return nil
}

// UnregisterScheduler clears the scheduler slot. The bool reports whether
// a registration was actually present and removed.
func (r *Registry) UnregisterScheduler(ctx context.Context) (bool, error) {
	removed, err := r.store.Delete(ctx, r.config.SchedulerSlotKey)
	if err != nil {
		return false, fmt.Errorf("resquestatus: unregister scheduler: %w", err)
	}
	return removed > 0, nil
}

// SchedulerPID returns the pid in the scheduler slot, or false when the
// slot is empty. The value is not validated for liveness; use
// SchedulerRunning for that.
func (r *Registry) SchedulerPID(ctx context.Context) (int, bool, error) {
	value, ok, err := r.store.Get(ctx, r.config.SchedulerSlotKey)
	if err != nil {
		return 0, false, fmt.Errorf("resquestatus: read scheduler slot: %w", err)
	}
	if !ok {
		return 0, false, nil
	}
	pid, err := strconv.Atoi(value)
	if err != nil {
		return 0, false, fmt.Errorf("resquestatus: scheduler slot %q: %w", value, err)
	}
	return pid, true, nil
}

// IsScheduler reports whether the worker identified by name holds the
// scheduler slot. The comparison is textual: the pid field parsed from
// name against the raw slot value. An empty slot matches nothing.
func (r *Registry) IsScheduler(ctx context.Context, name string) (bool, error) {
	wn, err := ParseWorkerName(name)
	if err != nil {
		return false, err
	}
	value, ok, err := r.store.Get(ctx, r.config.SchedulerSlotKey)
	if err != nil {
		return false, fmt.Errorf("resquestatus: read scheduler slot: %w", err)
	}
	return ok && value == strconv.Itoa(wn.PID), nil
}

// SchedulerRunning reports whether the registered scheduler worker is
// believed to be running, reconciling the slot along the way:
//
//   - empty slot: false.
//   - slot pid absent from the worker table: the registration is stale;
//     it is cleared and the result is false.
//   - otherwise the liveness probe decides. A definite alive/dead answer
//     is authoritative; an unknown answer falls back to trusting table
//     presence, so the result is true.
//
// The probe's answer is not re-checked against table membership — if
// membership changes while the probe runs the result can be stale, which
// is accepted; every step is idempotent and the caller can simply ask
// again. A dead answer leaves the slot in place for the next reconcile.
func (r *Registry) SchedulerRunning(ctx context.Context) (bool, error) {
	value, ok, err := r.store.Get(ctx, r.config.SchedulerSlotKey)
	if err != nil {
		return false, fmt.Errorf("resquestatus: read scheduler slot: %w", err)
	}
	if !ok {
		return false, nil
	}

	fields, err := r.store.HashGetAll(ctx, r.config.WorkerTableKey)
	if err != nil {
		return false, fmt.Errorf("resquestatus: list workers: %w", err)
	}
	if _, present := fields[value]; !present {
		if _, err := r.store.Delete(ctx, r.config.SchedulerSlotKey); err != nil {
			return false, fmt.Errorf("resquestatus: clear stale scheduler: %w", err)
		}
		r.logger.Debug("cleared stale scheduler registration", "pid", value)
		return false, nil
	}

	pid, err := strconv.Atoi(value)
	if err != nil {
		// Table membership matched textually but the value is not a pid we
		// can probe; table presence is the only evidence available.
		return true, nil
	}
	switch status := r.probe.Probe(pid); status {
	case probe.StatusAlive:
		return true, nil
	case probe.StatusDead:
		return false, nil
	default:
		return true, nil
	}
}
