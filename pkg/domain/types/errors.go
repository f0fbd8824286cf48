package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")
)

// Error tags classify remote failures so that the retry policy can
// dispatch on kind instead of matching message text. Every error
// returned by the remote clients carries exactly one of these tags.
var (
	TagAuth      = goerr.NewTag("auth")
	TagNotFound  = goerr.NewTag("not_found")
	TagConflict  = goerr.NewTag("conflict")
	TagTransient = goerr.NewTag("transient")
)

// IsAuth reports a credential failure (bad key, unknown installation,
// expired token). Never retried.
func IsAuth(err error) bool { return goerr.HasTag(err, TagAuth) }

// IsNotFound reports a missing path or ref. Never retried.
func IsNotFound(err error) bool { return goerr.HasTag(err, TagNotFound) }

// IsConflict reports an optimistic-concurrency loss: the branch head
// or content sha moved between read and write. Retried with fresh state.
func IsConflict(err error) bool { return goerr.HasTag(err, TagConflict) }

// IsTransient reports a network or 5xx failure. Retried with backoff.
func IsTransient(err error) bool { return goerr.HasTag(err, TagTransient) }

// Retryable reports whether the retry policy may re-attempt after err.
func Retryable(err error) bool {
	return IsConflict(err) || IsTransient(err)
}
