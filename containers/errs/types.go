package errs

// InvalidOperationError is returned when a call violates a container precondition.
// These never occur in correct usage; the container is left untouched.
type InvalidOperationError struct {
	Reason string
}

func (e *InvalidOperationError) Error() string {
	return "invalid operation: " + e.Reason
}

var (
	ErrNonEmptyRoot = &InvalidOperationError{Reason: "non-empty root"}
	ErrEmptyList    = &InvalidOperationError{Reason: "empty list"}
	ErrCyclicLink   = &InvalidOperationError{Reason: "link would create an ownership cycle"}
	ErrForeignNode  = &InvalidOperationError{Reason: "node belongs to another container"}
	ErrReleased     = &InvalidOperationError{Reason: "node handle already released"}
	ErrNilNode      = &InvalidOperationError{Reason: "nil node"}
)
