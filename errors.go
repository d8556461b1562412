package brc

import "errors"

// Error kinds. Everything the engine can fail with wraps one of these,
// usually together with the byte offset where it happened.
var (
	ErrInputUnavailable     = errors.New("input unavailable")
	ErrMalformedInput       = errors.New("malformed input")
	ErrMalformedLine        = errors.New("malformed line")
	ErrMalformedTemperature = errors.New("malformed temperature")
	ErrTableFull            = errors.New("aggregation table full")
	ErrWorkerFailure        = errors.New("worker failure")
)
