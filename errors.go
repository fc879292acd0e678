package resquestatus

import "errors"

var (
	// ErrNoStore is returned by New when no store is supplied.
	ErrNoStore = errors.New("resquestatus: no store configured")

	// ErrMalformedWorkerName is returned when a worker identifier does not
	// have the host:pid:queues shape. The pid field is a caller contract,
	// not something the registry recovers from.
	ErrMalformedWorkerName = errors.New("resquestatus: malformed worker name")
)
