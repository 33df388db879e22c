package interactions

import (
	"errors"
	"fmt"

	"github.com/ponder-labs/interactor/pkg/discord"
)

var (
	// ErrUnhandled is returned by handlers that do not implement
	// an interaction kind, or do not recognize a specific request.
	ErrUnhandled = errors.New("interaction not handled")

	// ErrInvalidResponseTransition means that a handler replied to a
	// modal submission with another modal, which Discord does not allow.
	ErrInvalidResponseTransition = errors.New("invalid response transition: modal in reply to modal submission")

	// ErrTooManyComponents means that a response needs more component
	// rows than Discord allows in a single message or modal.
	ErrTooManyComponents = errors.New("too many components")

	ErrUnknownResponse = errors.New("unknown response type")
)

var (
	ErrMissingField        = errors.New("missing required field")
	ErrMalformedComponents = errors.New("malformed component tree")
	ErrUnknownType         = errors.New("unsupported interaction type")
)

// DecodeError reports an interaction payload that cannot be translated
// into a request. It wraps [ErrMissingField], [ErrMalformedComponents],
// or [ErrUnknownType].
type DecodeError struct {
	Type  discord.InteractionType
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("decode %s interaction: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("decode %s interaction: %s: %v", e.Type, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
