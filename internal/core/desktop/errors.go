package desktop

import (
	"errors"
	"fmt"
)

// Reason identifies why a descriptor file did not yield an Entry
type Reason int

const (
	ReasonInvalidGroupHeader Reason = iota + 1
	ReasonNotApplication
	ReasonHidden
	ReasonOnlyShowIn
	ReasonNotShowIn
	ReasonMissingName
	ReasonMissingExec
	ReasonIOFailure
)

// Sentinel errors, one per Reason, usable with errors.Is
var (
	ErrInvalidGroupHeader = errors.New("invalid group header")
	ErrNotApplication     = errors.New("not an application")
	ErrHidden             = errors.New("hidden")
	ErrOnlyShowIn         = errors.New("not shown in this desktop (OnlyShowIn)")
	ErrNotShowIn          = errors.New("not shown in this desktop (NotShowIn)")
	ErrMissingName        = errors.New("missing Name")
	ErrMissingExec        = errors.New("missing Exec")
	ErrIOFailure          = errors.New("read failure")
)

var reasonErrors = map[Reason]error{
	ReasonInvalidGroupHeader: ErrInvalidGroupHeader,
	ReasonNotApplication:     ErrNotApplication,
	ReasonHidden:             ErrHidden,
	ReasonOnlyShowIn:         ErrOnlyShowIn,
	ReasonNotShowIn:          ErrNotShowIn,
	ReasonMissingName:        ErrMissingName,
	ReasonMissingExec:        ErrMissingExec,
	ReasonIOFailure:          ErrIOFailure,
}

var reasonNames = map[Reason]string{
	ReasonInvalidGroupHeader: "InvalidGroupHeader",
	ReasonNotApplication:     "NotApplication",
	ReasonHidden:             "Hidden",
	ReasonOnlyShowIn:         "OnlyShowIn",
	ReasonNotShowIn:          "NotShowIn",
	ReasonMissingName:        "MissingName",
	ReasonMissingExec:        "MissingExec",
	ReasonIOFailure:          "IOFailure",
}

// String returns the name of the reason
func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// Silent reports whether the reason is an expected filtering outcome.
// Silent rejections are dropped without being reported.
func (r Reason) Silent() bool {
	switch r {
	case ReasonNotApplication, ReasonHidden, ReasonOnlyShowIn, ReasonNotShowIn:
		return true
	default:
		return false
	}
}

// RejectError is returned by the parser when a descriptor is not usable
type RejectError struct {
	Reason Reason
	Err    error // underlying cause, only set for ReasonIOFailure
}

func reject(reason Reason) *RejectError {
	return &RejectError{Reason: reason}
}

// Error implements the error interface
func (e *RejectError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", reasonErrors[e.Reason], e.Err)
	}
	if err, ok := reasonErrors[e.Reason]; ok {
		return err.Error()
	}
	return e.Reason.String()
}

// Unwrap exposes the underlying cause
func (e *RejectError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error belonging to the reason
func (e *RejectError) Is(target error) bool {
	return reasonErrors[e.Reason] == target
}

// ReasonOf extracts the rejection reason from err
func ReasonOf(err error) (Reason, bool) {
	var rej *RejectError
	if errors.As(err, &rej) {
		return rej.Reason, true
	}
	return 0, false
}

// IsSilent reports whether err is a silent-skip rejection
func IsSilent(err error) bool {
	reason, ok := ReasonOf(err)
	return ok && reason.Silent()
}
