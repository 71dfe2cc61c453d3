package etfwatch

import (
	"errors"
	"fmt"
)

// FailReason classifies why an upstream data retrieval came back empty handed.
type FailReason string

const (
	// FailTransient is a network or timeout class failure: retried up to the
	// configured maximum, then downgraded to a null result.
	FailTransient FailReason = "transient"
	// FailNotFound means the symbol does not resolve in any provider.
	FailNotFound FailReason = "not-found"
	// FailBadData means the upstream payload did not have the expected shape.
	FailBadData FailReason = "bad-data"
)

// FetchError is the typed, non-exceptional outcome of an unsuccessful upstream
// retrieval. Pipelines consume it as ordinary data: a FetchError never crosses
// the pipeline boundary as control flow, it becomes a row with null quote
// fields, an empty candidate list, or a skipped trending candidate.
type FetchError struct {
	Ticker string
	Reason FailReason
	Err    error // underlying cause, may be nil for FailNotFound
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("fetch %s: %s", e.Ticker, e.Reason)
	}
	return fmt.Sprintf("fetch %s: %s: %v", e.Ticker, e.Reason, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Transient wraps err as a retriable fetch failure.
func Transient(ticker string, err error) *FetchError {
	return &FetchError{Ticker: ticker, Reason: FailTransient, Err: err}
}

// NotFound reports that ticker does not exist upstream.
func NotFound(ticker string) *FetchError {
	return &FetchError{Ticker: ticker, Reason: FailNotFound}
}

// BadData wraps err as an upstream schema mismatch.
func BadData(ticker string, err error) *FetchError {
	return &FetchError{Ticker: ticker, Reason: FailBadData, Err: err}
}

// ReasonOf returns the failure reason carried by err, or FailTransient when
// err is not a FetchError (an unclassified error is treated as retriable).
func ReasonOf(err error) FailReason {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Reason
	}
	return FailTransient
}
