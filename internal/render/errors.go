package render

import (
	"errors"
	"fmt"
	"strings"
)

// Messages shown in the error region.
const (
	MsgMissingInput    = "Country code is missing in the URL"
	MsgInvalidResponse = "Invalid API response"
	msgPrimaryPrefix   = "Error fetching country details: "
	msgNeighborsPrefix = "Error fetching neighboring countries: "
)

var (
	ErrMissingInput    = errors.New("country code missing")
	ErrInvalidResponse = errors.New("invalid API response")
)

// Stage identifies which of the two fetches failed.
type Stage int

const (
	StagePrimary Stage = iota
	StageNeighbors
)

func (s Stage) String() string {
	switch s {
	case StagePrimary:
		return "country details"
	case StageNeighbors:
		return "neighboring countries"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// FetchError wraps a failed upstream call with the stage it happened in.
type FetchError struct {
	Stage Stage
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Stage, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Reason is the innermost message of the wrapped error. Wrapping layers that
// only add a prefix are peeled off; a layer that adds detail after the cause,
// like "country not found: ZZ", is kept whole.
func (e *FetchError) Reason() string {
	if e.Err == nil {
		return ""
	}
	err := e.Err
	for {
		inner := errors.Unwrap(err)
		if inner == nil || inner.Error() == "" || !strings.HasSuffix(err.Error(), inner.Error()) {
			return err.Error()
		}
		err = inner
	}
}

// Message is the text written to the error region.
func (e *FetchError) Message() string {
	if e.Stage == StageNeighbors {
		return msgNeighborsPrefix + e.Reason()
	}
	return msgPrimaryPrefix + e.Reason()
}

// IsRecoverable reports whether the page still reached a non-error state,
// which only happens when the neighbor lookup failed.
func IsRecoverable(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr) && fetchErr.Stage == StageNeighbors
}
