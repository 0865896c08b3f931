package levels

import "errors"

var (
	// ErrUnsafeOrdering indicates an ordering that places a level above a
	// level it depends on.
	ErrUnsafeOrdering = errors.New("levels: ordering violates a level dependency")

	// ErrCyclicConstraints indicates dependencies that admit no ordering.
	ErrCyclicConstraints = errors.New("levels: cyclic level constraints")
)
