// Package errs holds the error kinds shared by the tree and list containers.
package errs

import (
	"github.com/pkg/errors"
)

// Invalid wraps one of the InvalidOperationError kinds with the caller's stack.
// errors.Is still matches the original kind.
func Invalid(kind *InvalidOperationError) error {
	return errors.WithStack(kind)
}

// IsInvalidOperation reports whether err is any InvalidOperationError.
func IsInvalidOperation(err error) bool {
	var target *InvalidOperationError
	return errors.As(err, &target)
}
