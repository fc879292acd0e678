// Package resquestatus tracks the runtime status of a pool of Resque worker
// processes and a singleton scheduler process in a shared key-value store.
//
// The registry is a thin, stateless view over three records in the store:
//
//   - a worker table (hash) mapping worker pids to their restart arguments
//   - a scheduler slot (string) holding the pid of the registered scheduler
//   - a paused set holding the names of workers currently paused
//
// Every operation is a bounded number of store round trips; the registry
// holds no cache and owns no background goroutines. Concurrency correctness
// rests entirely on the store's per-key atomicity.
//
// # Quick Start
//
//	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	reg, err := resquestatus.New(redisstore.New(client))
//	if err != nil { ... }
//
//	reg.AddWorker(ctx, os.Getpid(), resquestatus.Args{"queues": "default"})
//	running, err := reg.SchedulerRunning(ctx)
//
// # Architecture
//
// The registry follows a composable store pattern: the Store interface in
// this package is the full persistence contract, and a backend implements it
// once. store/redis is the production backend; store/memory backs tests and
// development. Argument payloads are opaque bytes to the store — a pluggable
// codec (JSON by default, see the codec package) runs above it.
//
// The scheduler slot is reconciled lazily: a registration whose pid has
// disappeared from the worker table is cleared on the next
// [Registry.SchedulerRunning] call, after a best-effort process liveness
// probe (see the probe package).
package resquestatus
