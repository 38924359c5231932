package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoftmaxVector(t *testing.T) {
	v, _ := New(Shape{3}, []float64{1, 2, 3})

	s, err := v.Softmax(-1)
	require.NoError(t, err)

	sum := 0.0
	for _, x := range s.Data() {
		sum += x
	}
	assert.InDelta(t, 1.0, sum, 1e-10)

	// Larger inputs get larger probabilities.
	assert.Less(t, s.At(0), s.At(1))
	assert.Less(t, s.At(1), s.At(2))
}

func TestSoftmaxNumericalStability(t *testing.T) {
	// exp(1000) overflows float64; max subtraction must keep this finite.
	v, _ := New(Shape{3}, []float64{1000, 1000, 1000})

	s, err := v.Softmax(-1)
	require.NoError(t, err)

	for _, x := range s.Data() {
		require.False(t, math.IsNaN(x))
		require.False(t, math.IsInf(x, 0))
		assert.InDelta(t, 1.0/3.0, x, 1e-10)
	}
}

func TestSoftmaxShiftInvariance(t *testing.T) {
	v, _ := New(Shape{4}, []float64{0.5, -1.2, 3.3, 0})

	base, err := v.Softmax(-1)
	require.NoError(t, err)

	shifted, err := v.AddScalar(500).Softmax(-1)
	require.NoError(t, err)

	for i := range base.Data() {
		assert.InDelta(t, base.Data()[i], shifted.Data()[i], 1e-10)
	}
}

func TestSoftmaxMatrixRows(t *testing.T) {
	m, _ := New(Shape{2, 3}, []float64{1, 2, 3, 10, 20, 30})

	s, err := m.Softmax(-1)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, s.Shape())

	for i := 0; i < 2; i++ {
		sum := 0.0
		for j := 0; j < 3; j++ {
			sum += s.At(i, j)
		}
		assert.InDelta(t, 1.0, sum, 1e-10, "row %d must sum to 1", i)
	}
}

func TestSoftmaxAlongFirstDim(t *testing.T) {
	m, _ := New(Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})

	s, err := m.Softmax(0)
	require.NoError(t, err)

	// Groups run down the columns now.
	for j := 0; j < 3; j++ {
		sum := s.At(0, j) + s.At(1, j)
		assert.InDelta(t, 1.0, sum, 1e-10, "column %d must sum to 1", j)
	}
}

func TestSoftmax3D(t *testing.T) {
	x := Rand(Shape{2, 3, 4})

	s, err := x.Softmax(1)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for k := 0; k < 4; k++ {
			sum := 0.0
			for j := 0; j < 3; j++ {
				sum += s.At(i, j, k)
			}
			assert.InDelta(t, 1.0, sum, 1e-10)
		}
	}
}

func TestSoftmaxBadDim(t *testing.T) {
	v := Zeros(Shape{3})

	_, err := v.Softmax(1)
	var unsupported *UnsupportedOperationError
	require.ErrorAs(t, err, &unsupported)

	_, err = v.Softmax(-2)
	require.Error(t, err)
}
