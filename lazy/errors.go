package lazy

import "errors"

// Sentinel errors returned by wrapping and materialization.
var (
	// ErrLengthMismatch is returned when an expression cannot serve every
	// index of the destination collection, i.e. some operand collection is
	// shorter than the destination.
	ErrLengthMismatch = errors.New("lazy: expression shorter than destination collection")

	// ErrNilCollection is returned by WrapCollection when given a nil
	// Collection.
	ErrNilCollection = errors.New("lazy: cannot wrap a nil collection")
)
