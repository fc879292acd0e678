package resquestatus

import (
	"context"
	"log/slog"

	"github.com/TBScreen/resque-status/codec"
	"github.com/TBScreen/resque-status/probe"
)

// Option configures a Registry.
type Option func(*Registry) error

// Registry is the shared-state view over worker, scheduler, and pause
// records in the store. It is stateless and safe for concurrent use by any
// number of processes; the store is the sole owner of all state.
type Registry struct {
	config Config
	store  Store
	codec  codec.Codec
	probe  probe.Prober
	logger *slog.Logger
}

// New creates a Registry over the given store.
func New(store Store, opts ...Option) (*Registry, error) {
	if store == nil {
		return nil, ErrNoStore
	}
	r := &Registry{
		config: DefaultConfig(),
		store:  store,
		codec:  codec.JSON{},
		probe:  probe.Default(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// WithConfig overrides the store key names.
func WithConfig(cfg Config) Option {
	return func(r *Registry) error { r.config = cfg; return nil }
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) error { r.logger = l; return nil }
}

// WithCodec sets the serializer for worker argument payloads.
func WithCodec(c codec.Codec) Option {
	return func(r *Registry) error { r.codec = c; return nil }
}

// WithProber sets the process liveness probe consulted during scheduler
// reconciliation.
func WithProber(p probe.Prober) Option {
	return func(r *Registry) error { r.probe = p; return nil }
}

// Config returns a copy of the registry's configuration.
func (r *Registry) Config() Config { return r.config }

// Store returns the underlying store.
func (r *Registry) Store() Store { return r.store }

// Ping verifies the store connection is alive.
func (r *Registry) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}
