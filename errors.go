package roi

import (
	"errors"
	"fmt"
)

var (
	// ErrShear reports a matrix with a shear component. The decomposition
	// returned alongside it is the closest scale/rotate/translate state.
	ErrShear = errors.New("matrix contains shear")

	// ErrDegenerate reports a matrix with a zero-length basis column.
	ErrDegenerate = errors.New("matrix is degenerate")

	// ErrNoRotationAxis reports a 3D linear part with no eigenvalue near 1.
	ErrNoRotationAxis = errors.New("no rotation axis")

	// ErrInvalidHandleGeometry marks a drag sample whose pivot vector has
	// zero length. The sample is skipped and the gesture continues.
	ErrInvalidHandleGeometry = errors.New("invalid handle geometry")

	// ErrConstraintViolation marks a candidate state that left the ROI's
	// bounding region. The previous state is retained.
	ErrConstraintViolation = errors.New("constraint violation")
)

// DecompositionError is returned when a matrix cannot be expressed exactly as
// translate·rotate·scale.
type DecompositionError struct {
	Residual float64 // max abs element error of the best-effort result
	Err      error   // ErrShear, ErrDegenerate or ErrNoRotationAxis
}

func (e *DecompositionError) Error() string {
	return fmt.Sprintf("roi: decompose: %v (residual %g)", e.Err, e.Residual)
}

func (e *DecompositionError) Unwrap() error { return e.Err }

// InvariantBreach is the panic value raised on structural misuse of the API,
// such as removing a handle from an ROI that does not own it.
type InvariantBreach struct {
	Op     string
	Detail string
}

func (e *InvariantBreach) Error() string {
	return fmt.Sprintf("roi: %s: %s", e.Op, e.Detail)
}

func breach(op, format string, args ...any) {
	panic(&InvariantBreach{Op: op, Detail: fmt.Sprintf(format, args...)})
}
