package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
// An empty Shape describes a scalar: rank 0, one element.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Elements returns the total number of elements described by the shape.
func (s Shape) Elements() int {
	if len(s) == 0 {
		return 1 // rank-0 scalar
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate rejects shapes with zero or negative dimension sizes.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal reports whether the two shapes match dimension for dimension.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Strides returns the row-major stride per dimension: each entry is the
// element count of everything to its right, with the last stride fixed
// at 1.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// FlatIndex converts multi-dimensional indices into a row-major linear
// offset. It requires exactly one index per dimension and each index to be
// within bounds.
func (s Shape) FlatIndex(indices ...int) (int, error) {
	if len(indices) != len(s) {
		return 0, &ShapeMismatchError{Op: "index", Left: s, Right: Shape(indices)}
	}

	offset := 0
	strides := s.Strides()
	for i, idx := range indices {
		if idx < 0 || idx >= s[i] {
			return 0, &IndexError{Index: idx, Dim: i, Size: s[i]}
		}
		offset += idx * strides[i]
	}
	return offset, nil
}

// Unravel is the inverse of FlatIndex: it decodes a linear offset into
// multi-dimensional indices. Used by reductions and broadcasting to recover
// coordinates from a linear scan position.
func (s Shape) Unravel(flat int) []int {
	indices := make([]int, len(s))
	strides := s.Strides()
	for i := range s {
		indices[i] = flat / strides[i]
		flat %= strides[i]
	}
	return indices
}

// maxInt returns the maximum of two integers.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
