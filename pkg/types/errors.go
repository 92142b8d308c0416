package types

import (
	"errors"
	"fmt"
	"strings"
)

// Engine operation errors (prd001-tag-engine-core R7). Every engine failure
// wraps one of these so callers can classify with errors.Is.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrAmbiguousMatch   = errors.New("ambiguous task name")
	ErrPropertyNotFound = errors.New("property not found")
	ErrProtectedKey     = errors.New("property is protected")
	ErrEmptyKey         = errors.New("property key must not be empty")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrIO               = errors.New("i/o failure")
)

// AmbiguousMatchError reports a fragment that matched more than one task
// file. Candidates hold absolute paths in directory iteration order, fully
// enumerated.
type AmbiguousMatchError struct {
	Fragment   string
	Candidates []string
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("ambiguous task name %q: matches %s",
		e.Fragment, strings.Join(e.Candidates, ", "))
}

// Is matches ErrAmbiguousMatch so errors.Is classifies this error without
// losing the candidate list.
func (e *AmbiguousMatchError) Is(target error) bool {
	return target == ErrAmbiguousMatch
}
