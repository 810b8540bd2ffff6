package truncprime

import (
	"errors"
	"fmt"

	"github.com/primefold/truncprime/internal/digits"
	"github.com/primefold/truncprime/internal/resource"
	"github.com/primefold/truncprime/membership/bittable"
)

var (
	// ErrResourceLimit is returned when the configured memory budget
	// refuses an allocation. Nothing is retried; whatever the failed run
	// reserved has been released.
	ErrResourceLimit = errors.New("resource limit exceeded")
)

// ErrDigitsOutOfRange indicates a digit bound outside the supported range.
//
// Digit bounds are capped at digits.MaxDigits (19) because 10^19-1 is the
// largest full digit range representable in a uint64.
type ErrDigitsOutOfRange struct {
	Digits int
}

func (e *ErrDigitsOutOfRange) Error() string {
	return fmt.Sprintf("digits out of range: %d (must be between 1 and %d)", e.Digits, digits.MaxDigits)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Budget refusals unify under the public sentinel, whichever layer
	// they surface from.
	if errors.Is(err, resource.ErrMemoryLimitExceeded) {
		return fmt.Errorf("%w: %w", ErrResourceLimit, err)
	}
	var rtl *bittable.ErrRangeTooLarge
	if errors.As(err, &rtl) {
		return fmt.Errorf("%w: %w", ErrResourceLimit, err)
	}

	return err
}
