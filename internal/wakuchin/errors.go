package wakuchin

import (
	"errors"
	"strconv"
)

// Sentinel errors returned by the engine and builder. Callers should use
// errors.Is to test for these, and errors.As for the wrapped dynamic
// error kinds below.
var (
	// ErrTimesIsZero is returned when times == 0. This is a precondition
	// failure, checked before any worker is spawned.
	ErrTimesIsZero = errors.New("wakuchin: times cannot be zero")

	// ErrCancelled is returned when a run is interrupted by the operator
	// (OS signal or caller context cancellation) before completion. The
	// partial result is discarded.
	ErrCancelled = errors.New("wakuchin: cancelled")

	// ErrInvalidConfiguration is returned by the builder's Run* methods
	// when a required field (tries, times, regex) was never set.
	ErrInvalidConfiguration = errors.New("wakuchin: invalid configuration")

	// ErrUnknownOutputFormat is returned when parsing an output format
	// string that isn't "text" or "json".
	ErrUnknownOutputFormat = errors.New("wakuchin: unknown output format")

	// ErrUnknownHandler is returned when parsing a progress handler name
	// that isn't one of "console", "msgpack", "msgpack_base64".
	ErrUnknownHandler = errors.New("wakuchin: unknown progress handler")
)

// WorkerError wraps a panic or other abnormal termination observed while
// joining a worker goroutine.
type WorkerError struct {
	WorkerID int
	Cause    error
}

func (e *WorkerError) Error() string {
	return "wakuchin: worker " + strconv.Itoa(e.WorkerID) + " failed: " + e.Cause.Error()
}

func (e *WorkerError) Unwrap() error { return e.Cause }

// HandlerError wraps an error returned by the external progress handler.
type HandlerError struct {
	Cause error
}

func (e *HandlerError) Error() string {
	return "wakuchin: progress handler failed: " + e.Cause.Error()
}

func (e *HandlerError) Unwrap() error { return e.Cause }

// SerializationError wraps a failure to render a WakuchinResult.
type SerializationError struct {
	Cause error
}

func (e *SerializationError) Error() string {
	return "wakuchin: failed to serialize result: " + e.Cause.Error()
}

func (e *SerializationError) Unwrap() error { return e.Cause }
