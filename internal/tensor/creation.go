package tensor

import (
	"fmt"
	"math"
	"math/rand"
)

// New creates a Dense tensor from a shape and a flat row-major buffer.
// The buffer is copied into the tensor's own memory.
func New(shape Shape, data []float64) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.Elements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.Elements(), len(data))
	}

	buf := make([]float64, len(data))
	copy(buf, data)
	return &Dense{shape: shape.Clone(), data: buf}, nil
}

// Zeros creates a tensor filled with zeros.
// Panics if the shape is invalid.
//
// Example:
//
//	t := tensor.Zeros(tensor.Shape{3, 4})
func Zeros(shape Shape) *Dense {
	if err := shape.Validate(); err != nil {
		panic(err)
	}
	return &Dense{shape: shape.Clone(), data: make([]float64, shape.Elements())}
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Dense {
	return Full(shape, 1)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full(tensor.Shape{3, 3}, 3.14)
func Full(shape Shape, value float64) *Dense {
	t := Zeros(shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// Scalar creates a rank-0 tensor holding a single value.
// Used by the scalar arithmetic overloads to reuse the broadcasting path.
func Scalar(value float64) *Dense {
	return &Dense{shape: Shape{}, data: []float64{value}}
}

// Arange creates a 1-D tensor with values [start, end) in steps of 1.
//
// Example:
//
//	t := tensor.Arange(0, 5) // [0, 1, 2, 3, 4]
func Arange(start, end float64) *Dense {
	n := int(math.Ceil(end - start))
	if n < 0 {
		n = 0
	}
	data := make([]float64, n)
	for i := range data {
		data[i] = start + float64(i)
	}
	return &Dense{shape: Shape{n}, data: data}
}

// Eye creates an n×n identity matrix.
func Eye(n int) *Dense {
	t := Zeros(Shape{n, n})
	for i := 0; i < n; i++ {
		t.data[i*n+i] = 1
	}
	return t
}

// Rand creates a tensor with random values uniformly distributed in [0, 1).
// Note: Uses math/rand (not crypto/rand) - appropriate for numerical purposes.
func Rand(shape Shape) *Dense {
	t := Zeros(shape)
	for i := range t.data {
		t.data[i] = rand.Float64() //nolint:gosec // G404: numeric code uses math/rand intentionally
	}
	return t
}

// Randn creates a tensor with random values from a normal distribution
// (mean=0, std=1) via the Box-Muller transform.
func Randn(shape Shape) *Dense {
	t := Zeros(shape)
	data := t.data
	for i := 0; i < len(data); i += 2 {
		u1 := rand.Float64() //nolint:gosec // G404: numeric code uses math/rand intentionally
		u2 := rand.Float64() //nolint:gosec // G404: numeric code uses math/rand intentionally
		z0 := math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
		z1 := math.Sqrt(-2.0*math.Log(u1)) * math.Sin(2.0*math.Pi*u2)
		data[i] = z0
		if i+1 < len(data) {
			data[i+1] = z1
		}
	}
	return t
}
