package tensor

import "math"

// Softmax computes softmax along the specified dimension.
// Softmax(x_i) = exp(x_i) / sum(exp(x_j)) for all j in the dimension.
// Negative dimensions count from the end: -1 is the last dimension.
//
// The maximum of each group is subtracted before exponentiation, so every
// output group sums to 1 even for large-magnitude inputs that would
// otherwise overflow.
func (t *Dense) Softmax(dim int) (*Dense, error) {
	shape := t.shape
	ndim := shape.Rank()

	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		return nil, &UnsupportedOperationError{Op: "softmax", Left: shape}
	}

	src := t.data
	dst := make([]float64, len(src))
	strides := shape.Strides()

	dimSize := shape[dim]
	dimStride := strides[dim]

	// Number of groups: elements that share every coordinate except dim.
	numRows := 1
	for i := range shape {
		if i != dim {
			numRows *= shape[i]
		}
	}

	for row := 0; row < numRows; row++ {
		// Decode the row counter into the non-reduced coordinates to get
		// the group's base offset.
		baseIdx := 0
		remaining := row
		for i := 0; i < ndim; i++ {
			if i == dim {
				continue
			}
			coord := remaining % shape[i]
			remaining /= shape[i]
			baseIdx += coord * strides[i]
		}

		// Subtracting the group max keeps exp from overflowing.
		maxVal := math.Inf(-1)
		for i := 0; i < dimSize; i++ {
			idx := baseIdx + i*dimStride
			if src[idx] > maxVal {
				maxVal = src[idx]
			}
		}

		var sum float64
		for i := 0; i < dimSize; i++ {
			idx := baseIdx + i*dimStride
			expVal := math.Exp(src[idx] - maxVal)
			dst[idx] = expVal
			sum += expVal
		}

		for i := 0; i < dimSize; i++ {
			idx := baseIdx + i*dimStride
			dst[idx] /= sum
		}
	}

	return &Dense{shape: shape.Clone(), data: dst}, nil
}
