package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	d, err := New(Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, d.Shape())
	assert.Equal(t, 6, d.Elements())
	assert.Equal(t, 5.0, d.At(1, 1))
}

func TestNewLengthMismatch(t *testing.T) {
	_, err := New(Shape{2, 3}, []float64{1, 2, 3})
	assert.Error(t, err)
}

func TestNewInvalidShape(t *testing.T) {
	_, err := New(Shape{2, 0}, nil)
	assert.Error(t, err)
}

func TestNewCopiesBuffer(t *testing.T) {
	src := []float64{1, 2, 3}
	d, err := New(Shape{3}, src)
	require.NoError(t, err)

	src[0] = 99
	assert.Equal(t, 1.0, d.At(0), "tensor must own its buffer")
}

func TestAtPanics(t *testing.T) {
	d := Zeros(Shape{2, 3})

	assert.Panics(t, func() { d.At(0) }, "wrong arity")
	assert.Panics(t, func() { d.At(2, 0) }, "row out of range")
	assert.Panics(t, func() { d.At(0, -1) }, "negative index")
}

func TestSet(t *testing.T) {
	d := Zeros(Shape{2, 2})
	d.Set(7.5, 1, 0)
	assert.Equal(t, 7.5, d.At(1, 0))
	assert.Panics(t, func() { d.Set(1, 5, 0) })
}

func TestItem(t *testing.T) {
	assert.Equal(t, 42.0, Scalar(42).Item())

	one, err := New(Shape{1, 1}, []float64{3})
	require.NoError(t, err)
	assert.Equal(t, 3.0, one.Item())

	assert.Panics(t, func() { Zeros(Shape{2}).Item() })
}

func TestScalarShape(t *testing.T) {
	s := Scalar(1.5)
	assert.Equal(t, 0, s.Shape().Rank())
	assert.Equal(t, 1, s.Elements())
	assert.Equal(t, 1.5, s.At())
}

func TestClone(t *testing.T) {
	d, err := New(Shape{2}, []float64{1, 2})
	require.NoError(t, err)

	c := d.Clone()
	c.Set(9, 0)
	assert.Equal(t, 1.0, d.At(0), "Clone must not share the buffer")
	assert.Equal(t, 9.0, c.At(0))
}

func TestOperationsDoNotMutateOperands(t *testing.T) {
	a, err := New(Shape{2}, []float64{1, 2})
	require.NoError(t, err)
	b, err := New(Shape{2}, []float64{10, 20})
	require.NoError(t, err)

	_, err = a.Add(b)
	require.NoError(t, err)
	_, err = a.Sub(b)
	require.NoError(t, err)
	_ = a.Exp()

	assert.Equal(t, []float64{1, 2}, a.Data())
	assert.Equal(t, []float64{10, 20}, b.Data())
}

func TestCreation(t *testing.T) {
	assert.Equal(t, []float64{0, 0, 0, 0}, Zeros(Shape{2, 2}).Data())
	assert.Equal(t, []float64{1, 1, 1}, Ones(Shape{3}).Data())
	assert.Equal(t, []float64{2.5, 2.5}, Full(Shape{2}, 2.5).Data())
	assert.Equal(t, []float64{0, 1, 2, 3}, Arange(0, 4).Data())
	assert.Equal(t, []float64{1, 0, 0, 1}, Eye(2).Data())
}

func TestRandRange(t *testing.T) {
	r := Rand(Shape{100})
	for _, v := range r.Data() {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}
