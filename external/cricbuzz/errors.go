package cricbuzz

import (
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

var (
	// ErrNoData means the upstream call produced nothing usable. The HTTP layer has already logged why.
	ErrNoData           = crerr.New("no data from upstream")
	ErrInvalidInput     = crerr.New("invalid input")
	ErrMalformedPayload = crerr.New("malformed upstream payload")
	// ErrLookup marks a payload that references an id missing from its own roster.
	ErrLookup = crerr.New("unknown id in lookup table")
)

type LookupError struct {
	Kind  string // "player" or "team"
	ID    ID
	Where string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s id %d referenced by %s is not in the match roster", e.Kind, e.ID, e.Where)
}

func (e *LookupError) Is(target error) bool {
	return target == ErrLookup
}

// withKind attaches a sentinel to a detailed cause so both stay reachable through errors.Is.
func withKind(kind, cause error) error {
	return fmt.Errorf("%w: %w", kind, cause)
}
