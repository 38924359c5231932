// Package tensor provides the public API for the skainet tensor engine: a
// float64 multi-dimensional array with shape-aware indexing, broadcasting
// arithmetic, rank-dispatched matrix multiplication and numerically stable
// softmax.
//
// Example:
//
//	a, _ := tensor.New(tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
//	b := tensor.Full(tensor.Shape{3}, 10)
//	c, _ := a.Add(b) // broadcast over rows
package tensor

import (
	"github.com/sk-ai-net/skainet-go/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is the read contract shared by every storage representation.
type Tensor = tensor.Tensor

// Dense is a full-precision float64 tensor.
type Dense = tensor.Dense

// Error types surfaced by tensor operations.
type (
	// ShapeMismatchError reports incompatible operand shapes.
	ShapeMismatchError = tensor.ShapeMismatchError
	// UnsupportedOperationError reports a rank combination outside an
	// operation's dispatch table.
	UnsupportedOperationError = tensor.UnsupportedOperationError
	// IndexError reports an out-of-bounds index.
	IndexError = tensor.IndexError
)

// Creation functions

// New creates a Dense tensor from a shape and a flat row-major buffer.
func New(shape Shape, data []float64) (*Dense, error) {
	return tensor.New(shape, data)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Dense {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Dense {
	return tensor.Ones(shape)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64) *Dense {
	return tensor.Full(shape, value)
}

// Scalar creates a rank-0 tensor holding a single value.
func Scalar(value float64) *Dense {
	return tensor.Scalar(value)
}

// Arange creates a 1D tensor with values from start to end (exclusive).
func Arange(start, end float64) *Dense {
	return tensor.Arange(start, end)
}

// Eye creates an n×n identity matrix.
func Eye(n int) *Dense {
	return tensor.Eye(n)
}

// Rand creates a tensor with uniform random values in [0, 1).
func Rand(shape Shape) *Dense {
	return tensor.Rand(shape)
}

// Randn creates a tensor with standard normal random values.
func Randn(shape Shape) *Dense {
	return tensor.Randn(shape)
}

// BroadcastShapes resolves the result shape of broadcasting a against b.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}
