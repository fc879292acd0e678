package resquestatus

// Config holds the store key names the registry operates on.
//
// The defaults are the wire contract shared with existing Resque
// deployments and external tools that inspect the store directly. Override
// them only for key-namespace isolation (e.g. multi-tenant stores), and
// keep the structural shapes: the worker table is a hash, the scheduler
// slot a plain string, the paused set a set.
type Config struct {
	// WorkerTableKey is the hash mapping worker pids to encoded
	// runtime arguments.
	WorkerTableKey string

	// SchedulerSlotKey is the string cell holding the pid of the
	// registered scheduler worker, or nothing.
	SchedulerSlotKey string

	// PausedSetKey is the set of worker names currently paused.
	PausedSetKey string
}

// DefaultConfig returns the legacy key names used by existing deployments.
func DefaultConfig() Config {
	return Config{
		WorkerTableKey:   "ResqueWorker",
		SchedulerSlotKey: "ResqueSchedulerWorker",
		PausedSetKey:     "PausedWorker",
	}
}
