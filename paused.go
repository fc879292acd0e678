package resquestatus

import (
	"context"
	"fmt"
)

// SetPaused adds name to the paused set when paused is true and removes
// it when false. Both directions are idempotent. The name is the composite
// worker identifier (host:pid:queues), independent of the worker table —
// no referential integrity is enforced between the two.
func (r *Registry) SetPaused(ctx context.Context, name string, paused bool) error {
	if paused {
		if err := r.store.SetAdd(ctx, r.config.PausedSetKey, name); err != nil {
			return fmt.Errorf("resquestatus: pause worker: %w", err)
		}
		return nil
	}
	if err := r.store.SetRemove(ctx, r.config.PausedSetKey, name); err != nil {
		return fmt.Errorf("resquestatus: unpause worker: %w", err)
	}
	return nil
}

// Paused returns the names of all currently paused workers. An empty set
// yields an empty slice, never an error.
func (r *Registry) Paused(ctx context.Context) ([]string, error) {
	members, err := r.store.SetMembers(ctx, r.config.PausedSetKey)
	if err != nil {
		return nil, fmt.Errorf("resquestatus: list paused workers: %w", err)
	}
	return members, nil
}

// IsPaused reports whether name is in the paused set.
func (r *Registry) IsPaused(ctx context.Context, name string) (bool, error) {
	members, err := r.Paused(ctx)
	if err != nil {
		return false, err
	}
	for _, m := range members {
		if m == name {
			return true, nil
		}
	}
	return false, nil
}
