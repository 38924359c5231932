package tensor

import "math"

// apply maps fn over every element into a fresh tensor of the same shape.
func (t *Dense) apply(fn func(float64) float64) *Dense {
	data := make([]float64, len(t.data))
	for i, v := range t.data {
		data[i] = fn(v)
	}
	return &Dense{shape: t.shape.Clone(), data: data}
}

// Sin computes element-wise sine.
func (t *Dense) Sin() *Dense {
	return t.apply(math.Sin)
}

// Cos computes element-wise cosine.
func (t *Dense) Cos() *Dense {
	return t.apply(math.Cos)
}

// Tan computes element-wise tangent.
func (t *Dense) Tan() *Dense {
	return t.apply(math.Tan)
}

// Exp computes element-wise exponential: exp(x).
func (t *Dense) Exp() *Dense {
	return t.apply(math.Exp)
}

// Log computes element-wise natural logarithm: ln(x).
func (t *Dense) Log() *Dense {
	return t.apply(math.Log)
}

// Sqrt computes element-wise square root.
func (t *Dense) Sqrt() *Dense {
	return t.apply(math.Sqrt)
}

// Tanh computes element-wise hyperbolic tangent.
func (t *Dense) Tanh() *Dense {
	return t.apply(math.Tanh)
}

// Abs computes element-wise absolute value.
func (t *Dense) Abs() *Dense {
	return t.apply(math.Abs)
}

// Neg negates every element.
func (t *Dense) Neg() *Dense {
	return t.apply(func(v float64) float64 { return -v })
}

// Sigmoid computes element-wise 1 / (1 + exp(-x)).
func (t *Dense) Sigmoid() *Dense {
	return t.apply(func(v float64) float64 { return 1.0 / (1.0 + math.Exp(-v)) })
}

// ReLU computes element-wise max(0, x).
func (t *Dense) ReLU() *Dense {
	return t.apply(func(v float64) float64 { return math.Max(0, v) })
}

// PowScalar raises every element to a constant power.
func (t *Dense) PowScalar(p float64) *Dense {
	return t.apply(func(v float64) float64 { return math.Pow(v, p) })
}
