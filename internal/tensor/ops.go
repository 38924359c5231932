package tensor

import "math"

// binaryFunc combines one element from each operand.
type binaryFunc func(a, b float64) float64

// Add performs element-wise addition with broadcasting.
// The other operand may be any storage variant; the result is always Dense.
//
// Example:
//
//	a := tensor.Ones(tensor.Shape{3, 1})
//	b := tensor.Ones(tensor.Shape{3, 5})
//	c, err := a.Add(b) // Shape: [3, 5] (broadcasted)
func (t *Dense) Add(other Tensor) (*Dense, error) {
	add := func(a, b float64) float64 { return a + b }
	return t.binaryOp("add", other, add, add)
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Dense) Sub(other Tensor) (*Dense, error) {
	return t.binaryOp("sub", other,
		func(a, b float64) float64 { return a - b },
		func(b, a float64) float64 { return a - b })
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Dense) Mul(other Tensor) (*Dense, error) {
	mul := func(a, b float64) float64 { return a * b }
	return t.binaryOp("mul", other, mul, mul)
}

// Div performs element-wise division with broadcasting.
func (t *Dense) Div(other Tensor) (*Dense, error) {
	return t.binaryOp("div", other,
		func(a, b float64) float64 { return a / b },
		func(b, a float64) float64 { return a / b })
}

// Pow raises elements of t to the power of the corresponding elements of
// other, with broadcasting.
func (t *Dense) Pow(other Tensor) (*Dense, error) {
	return t.binaryOp("pow", other,
		math.Pow,
		func(b, a float64) float64 { return math.Pow(a, b) })
}

// AddScalar adds a constant to every element.
// Implemented by wrapping the constant in a rank-0 tensor so the scalar
// path and the tensor path share the same broadcasting code.
func (t *Dense) AddScalar(v float64) *Dense {
	return mustBinary(t.Add(Scalar(v)))
}

// SubScalar subtracts a constant from every element.
func (t *Dense) SubScalar(v float64) *Dense {
	return mustBinary(t.Sub(Scalar(v)))
}

// MulScalar multiplies every element by a constant.
func (t *Dense) MulScalar(v float64) *Dense {
	return mustBinary(t.Mul(Scalar(v)))
}

// DivScalar divides every element by a constant.
func (t *Dense) DivScalar(v float64) *Dense {
	return mustBinary(t.Div(Scalar(v)))
}

// mustBinary unwraps a scalar-overload result. A rank-0 operand is
// broadcast-compatible with every shape, so the error is unreachable.
func mustBinary(r *Dense, err error) *Dense {
	if err != nil {
		panic(err)
	}
	return r
}

// binaryOp applies a binary function element-wise over two operands with
// broadcasting.
//
// forward is applied as forward(left, right). reverse is the same function
// with its parameters swapped, reverse(right, left); for commutative
// operators the two are identical. When the broadcast stretches only the
// left operand while the right operand keeps its shape, the reverse
// function is applied to the operands in swapped order so the orientation
// of non-commutative operators is preserved. This classification follows
// the operands' structure, not a general proof, and is kept deliberately:
// equal-rank shapes broadcasting on different axes are both classified as
// stretched and take the forward path.
func (t *Dense) binaryOp(op string, other Tensor, forward, reverse binaryFunc) (*Dense, error) {
	b := other.Dense()

	// Fast path: identical shapes need no broadcasting machinery.
	if t.shape.Equal(b.shape) {
		data := make([]float64, len(t.data))
		for i := range data {
			data[i] = forward(t.data[i], b.data[i])
		}
		return &Dense{shape: t.shape.Clone(), data: data}, nil
	}

	outShape, _, err := BroadcastShapes(t.shape, b.shape)
	if err != nil {
		return nil, &ShapeMismatchError{Op: op, Left: t.shape, Right: b.shape}
	}

	fn := forward
	swapped := false
	if stretchedBy(t.shape, outShape) && !stretchedBy(b.shape, outShape) {
		fn = reverse
		swapped = true
	}

	outStrides := outShape.Strides()
	leftStrides := broadcastStrides(t.shape, outShape)
	rightStrides := broadcastStrides(b.shape, outShape)

	data := make([]float64, outShape.Elements())
	for i := range data {
		lv := t.data[remapIndex(i, outStrides, leftStrides)]
		rv := b.data[remapIndex(i, outStrides, rightStrides)]
		if swapped {
			data[i] = fn(rv, lv)
		} else {
			data[i] = fn(lv, rv)
		}
	}

	return &Dense{shape: outShape, data: data}, nil
}
