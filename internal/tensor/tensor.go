// Package tensor implements a float64 multi-dimensional array with
// shape-aware indexing, broadcasting arithmetic, rank-dispatched matrix
// multiplication and numerically stable reductions.
//
// All operations are pure: operands are never mutated and every operation
// allocates a fresh result tensor. There is no shared mutable state, so
// concurrent use on disjoint tensors needs no synchronization.
package tensor

import "fmt"

// Tensor is the read contract shared by every storage representation.
// Dense implements it directly; the quantized variants implement it by
// dequantizing on access. Binary operations accept any Tensor and
// materialize non-Dense operands before applying the math kernel, so the
// result of mixing representations is always Dense.
type Tensor interface {
	// Shape returns the logical shape.
	Shape() Shape

	// At returns the element at the given indices.
	// Panics if the arity or any index is out of bounds.
	At(indices ...int) float64

	// Dense materializes the tensor as full-precision storage.
	Dense() *Dense
}

// Dense is a full-precision tensor: a shape plus a flat row-major float64
// buffer. The tensor owns its buffer outright; operations never alias it.
type Dense struct {
	shape Shape
	data  []float64
}

// Shape returns the tensor's shape.
func (t *Dense) Shape() Shape {
	return t.shape
}

// Elements returns the total number of elements.
func (t *Dense) Elements() int {
	return t.shape.Elements()
}

// Data returns the flat row-major buffer without copying; writes through
// the slice are visible in the tensor.
func (t *Dense) Data() []float64 {
	return t.data
}

// Dense implements the Tensor contract; a Dense tensor is already
// materialized.
func (t *Dense) Dense() *Dense {
	return t
}

// At returns the element at the given indices.
// Panics if indices are out of bounds or of the wrong arity.
//
// Example:
//
//	t, _ := tensor.New(tensor.Shape{3, 4}, data)
//	value := t.At(1, 2) // Row 1, column 2
func (t *Dense) At(indices ...int) float64 {
	offset, err := t.shape.FlatIndex(indices...)
	if err != nil {
		panic(err)
	}
	return t.data[offset]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds or of the wrong arity.
func (t *Dense) Set(value float64, indices ...int) {
	offset, err := t.shape.FlatIndex(indices...)
	if err != nil {
		panic(err)
	}
	t.data[offset] = value
}

// Item returns the value of a single-element tensor.
// Panics if the tensor holds more than one element.
func (t *Dense) Item() float64 {
	if t.Elements() != 1 {
		panic(fmt.Sprintf("Item() only works for single-element tensors, got shape %v", t.shape))
	}
	return t.data[0]
}

// Clone creates a deep copy of the tensor.
func (t *Dense) Clone() *Dense {
	data := make([]float64, len(t.data))
	copy(data, t.data)
	return &Dense{shape: t.shape.Clone(), data: data}
}

// String returns a human-readable representation of the tensor.
func (t *Dense) String() string {
	return fmt.Sprintf("Dense%v (%d elements)", t.shape, t.Elements())
}
