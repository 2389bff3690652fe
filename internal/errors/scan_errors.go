package errors

import (
	"errors"
	"fmt"
)

// ErrEmptyInput marks every failure that leaves the run with no usable
// rows: a missing input file, a file with no data rows, or a header
// without the required columns. Callers treat all three the same way,
// writing empty outputs before exiting non-zero.
var ErrEmptyInput = errors.New("input data empty")

// MissingColumnsError reports a header that lacks required columns.
type MissingColumnsError struct {
	Path    string
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s missing columns: %v", e.Path, e.Missing)
}

// Is lets errors.Is(err, ErrEmptyInput) match, since a header without
// the required columns yields no usable rows either.
func (e *MissingColumnsError) Is(target error) bool {
	return target == ErrEmptyInput
}
