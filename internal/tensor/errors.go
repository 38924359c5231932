package tensor

import "fmt"

// ShapeMismatchError reports two shapes that are incompatible for an
// operation: element-wise broadcasting, matrix multiplication inner
// dimensions, or indexing with the wrong arity.
type ShapeMismatchError struct {
	Op    string // Operation that failed (e.g. "add", "matmul")
	Left  Shape  // Shape of the left operand
	Right Shape  // Shape of the right operand
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: shape mismatch %v vs %v", e.Op, e.Left, e.Right)
}

// UnsupportedOperationError reports an operation applied to ranks it does
// not cover, such as a matmul rank pair outside the dispatch table or a
// transpose of a non-2D tensor.
type UnsupportedOperationError struct {
	Op    string
	Left  Shape
	Right Shape // nil for unary operations
}

// Error implements the error interface.
func (e *UnsupportedOperationError) Error() string {
	if e.Right == nil {
		return fmt.Sprintf("%s: unsupported for shape %v (rank %d)", e.Op, e.Left, e.Left.Rank())
	}
	return fmt.Sprintf("%s: unsupported rank combination %v (rank %d) and %v (rank %d)",
		e.Op, e.Left, e.Left.Rank(), e.Right, e.Right.Rank())
}

// IndexError reports an index out of bounds for a dimension.
// Index violations are precondition failures: At and Set panic with this
// error instead of returning it.
type IndexError struct {
	Index int
	Dim   int
	Size  int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", e.Index, e.Dim, e.Size)
}
