package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sk-ai-net/skainet-go/tensor"
)

// TestPublicAPIWorkflow runs a small end-to-end computation through the
// public surface: construction, broadcasting arithmetic, matmul, softmax.
func TestPublicAPIWorkflow(t *testing.T) {
	x, err := tensor.New(tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	bias, err := tensor.New(tensor.Shape{1, 3}, []float64{10, 20, 30})
	require.NoError(t, err)

	h, err := x.Add(bias)
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 22, 33, 14, 25, 36}, h.Data())

	w := tensor.Eye(3)
	out, err := h.MatMul(w)
	require.NoError(t, err)
	assert.Equal(t, h.Data(), out.Data())

	probs, err := out.Softmax(-1)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		sum := 0.0
		for j := 0; j < 3; j++ {
			sum += probs.At(i, j)
		}
		assert.InDelta(t, 1.0, sum, 1e-10)
	}
}

func TestPublicErrorTypes(t *testing.T) {
	a := tensor.Zeros(tensor.Shape{3, 4})
	b := tensor.Zeros(tensor.Shape{3, 5})

	_, err := a.Add(b)
	var mismatch *tensor.ShapeMismatchError
	require.ErrorAs(t, err, &mismatch)

	_, err = a.MatMul(tensor.Zeros(tensor.Shape{4}))
	var unsupported *tensor.UnsupportedOperationError
	require.ErrorAs(t, err, &unsupported)
}

func TestPublicBroadcastShapes(t *testing.T) {
	shape, needed, err := tensor.BroadcastShapes(tensor.Shape{3, 1}, tensor.Shape{5})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 5}, shape)
	assert.True(t, needed)
}
