package syntax

import (
	"errors"
	"fmt"
)

// ErrSyntax is matched by every error returned from Parse.
var ErrSyntax = errors.New("syntax error")

// Error describes why a pattern could not be parsed.
type Error struct {
	Pos Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("syntax error at %s: %s", e.Pos, e.Msg)
}

// Is makes errors.Is(err, ErrSyntax) hold for any *Error.
func (e *Error) Is(target error) bool {
	return target == ErrSyntax
}
