package resquestatus

import "context"

// Store defines the key-value persistence contract the registry consumes.
// It is the minimal slice of a Redis-shaped store: hashes, plain strings,
// and sets, each operation atomic on its own key.
//
// Payloads are opaque bytes to the store; encoding and decoding of the
// worker argument bag happens above it (see the codec package).
//
// Multi-request sequences performed by the registry on top of this
// contract (the check-then-delete in SchedulerRunning, for one) are not
// transactional — concurrent writers can interleave between steps. Every
// step is idempotent so retries are always safe.
type Store interface {
	// HashSet writes payload under field in the hash at key, creating
	// the hash if needed and overwriting any existing field value.
	HashSet(ctx context.Context, key, field string, payload []byte) error

	// HashGetAll returns every field of the hash at key. A missing
	// hash yields an empty map, not an error.
	HashGetAll(ctx context.Context, key string) (map[string][]byte, error)

	// HashDelete removes field from the hash at key. Removing an
	// absent field is a no-op.
	HashDelete(ctx context.Context, key, field string) error

	// Set writes a plain string value, overwriting any previous one.
	Set(ctx context.Context, key, value string) error

	// Get reads a plain string value. ok is false when the key is
	// absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Delete removes the given keys regardless of type and returns how
	// many existed. Backends with a native multi-key delete perform
	// the removal as a single atomic request.
	Delete(ctx context.Context, keys ...string) (removed int64, err error)

	// SetAdd adds member to the set at key. Adding an existing member
	// is a no-op.
	SetAdd(ctx context.Context, key, member string) error

	// SetRemove removes member from the set at key. Removing an absent
	// member is a no-op.
	SetRemove(ctx context.Context, key, member string) error

	// SetMembers returns the members of the set at key. A missing set
	// yields an empty slice, not an error.
	SetMembers(ctx context.Context, key string) ([]string, error)

	// Ping verifies the store connection is alive.
	Ping(ctx context.Context) error
}
