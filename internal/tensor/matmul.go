package tensor

// MatMul performs matrix multiplication, dispatching on the rank pair:
//
//	(0, 0)  scalar product
//	(0, n)  scalar scales every element of the right operand
//	(n, 0)  scalar scales every element of the left operand
//	(1, 2)  vector · matrix: (K) @ (K, N) → (N)
//	(2, 2)  matrix product: (M, K) @ (K, N) → (M, N)
//	(≥3, 2) batched: leading dims are treated as a batch of row vectors
//	        multiplied against the matrix, the last dim becomes N
//
// Any other combination fails with *UnsupportedOperationError. Inner
// dimension mismatches fail with *ShapeMismatchError.
//
// Example:
//
//	a := tensor.Rand(tensor.Shape{3, 4})
//	b := tensor.Rand(tensor.Shape{4, 5})
//	c, err := a.MatMul(b) // Shape: [3, 5]
func (t *Dense) MatMul(other Tensor) (*Dense, error) {
	b := other.Dense()
	leftRank := t.shape.Rank()
	rightRank := b.shape.Rank()

	switch {
	case leftRank == 0 && rightRank == 0:
		return Scalar(t.data[0] * b.data[0]), nil

	case leftRank == 0:
		return b.MulScalar(t.data[0]), nil

	case rightRank == 0:
		return t.MulScalar(b.data[0]), nil

	case leftRank == 1 && rightRank == 2:
		return t.vecMat(b)

	case leftRank == 2 && rightRank == 2:
		return t.matMat(b)

	case leftRank >= 3 && rightRank == 2:
		return t.batchedMat(b)

	default:
		return nil, &UnsupportedOperationError{Op: "matmul", Left: t.shape, Right: b.shape}
	}
}

// vecMat computes (K) @ (K, N) → (N).
func (t *Dense) vecMat(b *Dense) (*Dense, error) {
	k := t.shape[0]
	if k != b.shape[0] {
		return nil, &ShapeMismatchError{Op: "matmul", Left: t.shape, Right: b.shape}
	}
	n := b.shape[1]

	data := make([]float64, n)
	for j := 0; j < n; j++ {
		sum := float64(0)
		for kIdx := 0; kIdx < k; kIdx++ {
			sum += t.data[kIdx] * b.data[kIdx*n+j]
		}
		data[j] = sum
	}
	return &Dense{shape: Shape{n}, data: data}, nil
}

// matMat computes the standard product (M, K) @ (K, N) → (M, N).
// Naive O(n³) triple loop.
func (t *Dense) matMat(b *Dense) (*Dense, error) {
	m, k := t.shape[0], t.shape[1]
	if k != b.shape[0] {
		return nil, &ShapeMismatchError{Op: "matmul", Left: t.shape, Right: b.shape}
	}
	n := b.shape[1]

	data := make([]float64, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum := float64(0)
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += t.data[i*k+kIdx] * b.data[kIdx*n+j]
			}
			data[i*n+j] = sum
		}
	}
	return &Dense{shape: Shape{m, n}, data: data}, nil
}

// batchedMat treats a rank≥3 left operand as a batch of matrices over all
// leading dimensions, each multiplied against the 2-D right operand on the
// left operand's last axis. The result keeps every leading dimension and
// replaces the last with b's column count.
func (t *Dense) batchedMat(b *Dense) (*Dense, error) {
	ndim := t.shape.Rank()
	k := t.shape[ndim-1]
	if k != b.shape[0] {
		return nil, &ShapeMismatchError{Op: "matmul", Left: t.shape, Right: b.shape}
	}
	n := b.shape[1]

	// Collapse all leading dims into a batch of rows.
	rows := 1
	for i := 0; i < ndim-1; i++ {
		rows *= t.shape[i]
	}

	outShape := t.shape.Clone()
	outShape[ndim-1] = n

	data := make([]float64, rows*n)
	for r := 0; r < rows; r++ {
		for j := 0; j < n; j++ {
			sum := float64(0)
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += t.data[r*k+kIdx] * b.data[kIdx*n+j]
			}
			data[r*n+j] = sum
		}
	}
	return &Dense{shape: outShape, data: data}, nil
}
