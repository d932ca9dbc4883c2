package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnauthorized covers a missing, malformed, badly signed or expired
	// bearer token. Which of those happened is deliberately not exposed.
	ErrUnauthorized = errors.New("invalid or expired token")

	// ErrGeocodeFailed means the address resolved to nothing. Review records
	// require coordinates, so the submission is rejected.
	ErrGeocodeFailed = errors.New("address could not be geocoded")
)

// ValidationError reports missing required fields or an out-of-range value.
// A malformed numeric value counts as out of range.
type ValidationError struct {
	Missing    []string
	RangeField string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("field %s is out of range", e.RangeField)
}
