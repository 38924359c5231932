package tensor

import "math"

// SumDim sums tensor elements along the specified dimension. Negative
// dims count from the end, so -1 is the last dimension. With keepDim the
// reduced dimension survives as size 1; otherwise it is dropped.
//
// Example:
//
//	x := tensor.Rand(tensor.Shape{2, 3, 4})
//	y, _ := x.SumDim(-1, true)  // shape: [2, 3, 1]
//	z, _ := x.SumDim(-1, false) // shape: [2, 3]
func (t *Dense) SumDim(dim int, keepDim bool) (*Dense, error) {
	return t.reduceDim("sumdim", dim, keepDim, false)
}

// MeanDim computes the mean of tensor elements along the specified
// dimension. Same dim/keepDim conventions as SumDim.
func (t *Dense) MeanDim(dim int, keepDim bool) (*Dense, error) {
	result, err := t.reduceDim("meandim", dim, keepDim, false)
	if err != nil {
		return nil, err
	}

	ndim := t.shape.Rank()
	if dim < 0 {
		dim = ndim + dim
	}
	divisor := float64(t.shape[dim])
	for i := range result.data {
		result.data[i] /= divisor
	}
	return result, nil
}

// MaxDim computes the maximum of tensor elements along the specified
// dimension. Same dim/keepDim conventions as SumDim.
func (t *Dense) MaxDim(dim int, keepDim bool) (*Dense, error) {
	return t.reduceDim("maxdim", dim, keepDim, true)
}

// Sum computes the total sum of all elements (rank-0 result).
func (t *Dense) Sum() *Dense {
	var sum float64
	for _, v := range t.data {
		sum += v
	}
	return Scalar(sum)
}

// reduceDim accumulates input elements into an output tensor whose reduced
// dimension has been collapsed. Each input element's output offset is its
// own offset with the reduced coordinate dropped.
func (t *Dense) reduceDim(op string, dim int, keepDim bool, useMax bool) (*Dense, error) {
	shape := t.shape
	ndim := shape.Rank()

	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		return nil, &UnsupportedOperationError{Op: op, Left: shape}
	}

	// Output shape with the reduced dimension kept at size 1; squeezed
	// afterwards when keepDim is false.
	var outShape Shape
	if keepDim {
		outShape = shape.Clone()
		outShape[dim] = 1
	} else {
		outShape = make(Shape, 0, ndim-1)
		for i := 0; i < ndim; i++ {
			if i != dim {
				outShape = append(outShape, shape[i])
			}
		}
	}

	result := make([]float64, outShape.Elements())
	if useMax {
		for i := range result {
			result[i] = math.Inf(-1)
		}
	}

	strides := shape.Strides()
	keptShape := shape.Clone()
	keptShape[dim] = 1
	outStrides := keptShape.Strides()

	for i := 0; i < len(t.data); i++ {
		outIdx := 0
		temp := i
		for d := 0; d < ndim; d++ {
			coord := temp / strides[d]
			temp %= strides[d]

			// The reduced dimension always maps to coordinate 0.
			if d != dim {
				outIdx += coord * outStrides[d]
			}
		}

		if useMax {
			if t.data[i] > result[outIdx] {
				result[outIdx] = t.data[i]
			}
		} else {
			result[outIdx] += t.data[i]
		}
	}

	return &Dense{shape: outShape, data: result}, nil
}
