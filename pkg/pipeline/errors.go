package pipeline

import "fmt"

// Kind enumerates the error categories surfaces to the caller.
type Kind int

const (
	InvalidBBox Kind = iota
	InvalidScale
	OSMFetchError
	ElevationFetchError
	IOError
	TimeoutPartial
	SessionLockBusy
	CorruptedTile
)

func (k Kind) String() string {
	switch k {
		case InvalidBBox:
		return "InvalidBBox"
		case InvalidScale:
		return "InvalidScale"
		case OSMFetchError:
		return "OSMFetchError"
		case ElevationFetchError:
		return "ElevationFetchError"
		case IOError:
		return "IOError"
		case TimeoutPartial:
		return "TimeoutPartial"
		case SessionLockBusy:
		return "SessionLockBusy"
		case CorruptedTile:
		return "CorruptedTile"
		default:
		return "Unknown"
	}
}

// Error wraps a Kind with the underlying cause, matching 's
// propagation policy: writer and lock failures carry IOError/
// SessionLockBusy up to the top level and abort the run; the flood-fill
// deadline and elevation fetch failures carry their own kinds but are
// logged as warnings and do not abort.
type Error struct {
	Kind Kind
	Cause error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

func wrap(k Kind, cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: k, Cause: cause}
}
