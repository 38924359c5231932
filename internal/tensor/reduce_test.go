package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumDim(t *testing.T) {
	// [[1, 2, 3],
	//  [4, 5, 6]]
	m, _ := New(Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})

	sum0, err := m.SumDim(0, false)
	require.NoError(t, err)
	assert.Equal(t, Shape{3}, sum0.Shape())
	assert.Equal(t, []float64{5, 7, 9}, sum0.Data())

	sum1, err := m.SumDim(1, false)
	require.NoError(t, err)
	assert.Equal(t, Shape{2}, sum1.Shape())
	assert.Equal(t, []float64{6, 15}, sum1.Data())

	sumKeep, err := m.SumDim(0, true)
	require.NoError(t, err)
	assert.Equal(t, Shape{1, 3}, sumKeep.Shape())

	sumNeg, err := m.SumDim(-1, false)
	require.NoError(t, err)
	assert.Equal(t, sum1.Data(), sumNeg.Data())
}

func TestMeanDim(t *testing.T) {
	m, _ := New(Shape{2, 3}, []float64{2, 4, 6, 8, 10, 12})

	mean0, err := m.MeanDim(0, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 7, 9}, mean0.Data())

	mean1, err := m.MeanDim(-1, true)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 1}, mean1.Shape())
	assert.Equal(t, []float64{4, 10}, mean1.Data())
}

func TestMaxDim(t *testing.T) {
	m, _ := New(Shape{2, 3}, []float64{1, 9, 3, -4, 5, -6})

	max1, err := m.MaxDim(1, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 5}, max1.Data())

	max0, err := m.MaxDim(0, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 9, 3}, max0.Data())
}

func TestReduceDimOutOfRange(t *testing.T) {
	m := Zeros(Shape{2, 3})

	_, err := m.SumDim(2, false)
	var unsupported *UnsupportedOperationError
	require.ErrorAs(t, err, &unsupported)

	_, err = m.MeanDim(-3, false)
	require.Error(t, err)
}

func TestSum(t *testing.T) {
	m, _ := New(Shape{2, 2}, []float64{1, 2, 3, 4})
	s := m.Sum()
	assert.Equal(t, 0, s.Shape().Rank())
	assert.Equal(t, 10.0, s.Item())
}
