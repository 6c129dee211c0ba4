package board

import "errors"

var (
	ErrEmptyContent    = errors.New("empty content")
	ErrContentTooLong  = errors.New("content too long")
	ErrUnknownMessage  = errors.New("unknown message")
	ErrUnknownReaction = errors.New("unknown reaction")
	ErrUnknownAvatar   = errors.New("unknown avatar")
)

// ValidationError rejects a submission before any network call. Message is
// the localized text already shown to the user.
type ValidationError struct {
	Reason  error
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}
