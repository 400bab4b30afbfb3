package promoter

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a level value does not name one of
// major, minor or patch.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidLevel(value string) error {
	return fmt.Errorf("%w: unknown level %q, expected one of major, minor, patch", ErrInvalidArgument, value)
}
