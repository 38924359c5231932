package tensor

// T transposes a rank-2 tensor: new[j,i] = old[i,j].
// Any other rank fails with *UnsupportedOperationError.
func (t *Dense) T() (*Dense, error) {
	if t.shape.Rank() != 2 {
		return nil, &UnsupportedOperationError{Op: "transpose", Left: t.shape}
	}

	rows, cols := t.shape[0], t.shape[1]
	data := make([]float64, len(t.data))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[j*rows+i] = t.data[i*cols+j]
		}
	}
	return &Dense{shape: Shape{cols, rows}, data: data}, nil
}

// Reshape returns a tensor with the same data but a different shape.
// The new shape must describe the same number of elements.
//
// Example:
//
//	t := tensor.Arange(0, 12)       // Shape: [12]
//	r, _ := t.Reshape(3, 4)         // Shape: [3, 4]
func (t *Dense) Reshape(dims ...int) (*Dense, error) {
	newShape := Shape(dims)
	if err := newShape.Validate(); err != nil {
		return nil, err
	}
	if newShape.Elements() != t.Elements() {
		return nil, &ShapeMismatchError{Op: "reshape", Left: t.shape, Right: newShape}
	}

	data := make([]float64, len(t.data))
	copy(data, t.data)
	return &Dense{shape: newShape.Clone(), data: data}, nil
}

// Flatten collapses the contiguous dimension range [start, end] into a
// single dimension equal to the product of the collapsed sizes. Negative
// indices count from the end. When the requested range exceeds the current
// rank, virtual leading dimensions of size 1 are inserted first so the
// operation stays well-defined. The buffer is already row-major, so only
// the shape descriptor changes.
//
// Example:
//
//	t := tensor.Rand(tensor.Shape{2, 3, 4})
//	f, _ := t.Flatten(1, -1) // Shape: [2, 12]
func (t *Dense) Flatten(start, end int) (*Dense, error) {
	dims := t.shape.Clone()
	s, e := start, end
	if s < 0 {
		s += len(dims)
	}
	if e < 0 {
		e += len(dims)
	}

	// A start before the first dimension tracks its original position, so
	// padding shifts both bounds.
	for s < 0 {
		dims = append(Shape{1}, dims...)
		s++
		e++
	}
	// An end past the last dimension grows the rank from the front until it
	// fits. The start stays put, so the inserted dimensions land inside the
	// collapsed range, same as when a negative start forced the padding.
	for e >= len(dims) {
		dims = append(Shape{1}, dims...)
	}

	if s > e {
		return nil, &UnsupportedOperationError{Op: "flatten", Left: t.shape}
	}

	collapsed := 1
	for i := s; i <= e; i++ {
		collapsed *= dims[i]
	}

	newShape := make(Shape, 0, len(dims)-(e-s))
	newShape = append(newShape, dims[:s]...)
	newShape = append(newShape, collapsed)
	newShape = append(newShape, dims[e+1:]...)

	data := make([]float64, len(t.data))
	copy(data, t.data)
	return &Dense{shape: newShape, data: data}, nil
}

// Unsqueeze inserts a dimension of size 1 at the given position.
// Negative positions count from the end (after insertion).
func (t *Dense) Unsqueeze(dim int) (*Dense, error) {
	ndim := t.shape.Rank()
	if dim < 0 {
		dim = ndim + dim + 1
	}
	if dim < 0 || dim > ndim {
		return nil, &UnsupportedOperationError{Op: "unsqueeze", Left: t.shape}
	}

	newShape := make(Shape, 0, ndim+1)
	newShape = append(newShape, t.shape[:dim]...)
	newShape = append(newShape, 1)
	newShape = append(newShape, t.shape[dim:]...)

	data := make([]float64, len(t.data))
	copy(data, t.data)
	return &Dense{shape: newShape, data: data}, nil
}

// Squeeze removes a dimension of size 1 at the given position.
// Negative positions count from the end.
func (t *Dense) Squeeze(dim int) (*Dense, error) {
	ndim := t.shape.Rank()
	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		return nil, &UnsupportedOperationError{Op: "squeeze", Left: t.shape}
	}
	if t.shape[dim] != 1 {
		return nil, &UnsupportedOperationError{Op: "squeeze", Left: t.shape}
	}

	newShape := make(Shape, 0, ndim-1)
	newShape = append(newShape, t.shape[:dim]...)
	newShape = append(newShape, t.shape[dim+1:]...)

	data := make([]float64, len(t.data))
	copy(data, t.data)
	return &Dense{shape: newShape, data: data}, nil
}
