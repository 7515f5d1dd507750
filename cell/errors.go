package cell

import "github.com/pkg/errors"

var (
	// ErrNilValue is returned by New, and is the panic value of Set and
	// CompareAndSet, when a nil pointer is offered for storage.
	ErrNilValue = errors.New("cell: nil value")
	// ErrUpdateContention reports that a non-spinning Update lost its
	// compare-and-set to a concurrent writer.
	ErrUpdateContention = errors.New("cell: atomic update failed")
)
