package quant

import (
	"fmt"

	"github.com/sk-ai-net/skainet-go/internal/tensor"
)

// Q4Tensor packs two signed 4-bit codes per byte, high nibble first.
// Memory: half a byte per element versus 8 for dense storage.
type Q4Tensor struct {
	shape     tensor.Shape
	data      []byte
	scale     float64
	zeroPoint int
}

// NewQ4 quantizes a float buffer into 4-bit storage using the given
// strategy. The strategy must produce 4-bit codes.
func NewQ4(shape tensor.Shape, values []float64, q Quantizer) (*Q4Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.Elements() != len(values) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.Elements(), len(values))
	}
	if q.Bits() != 4 {
		return nil, fmt.Errorf("4-bit tensor requires a 4-bit quantizer, got %d bits", q.Bits())
	}

	r := q.Quantize(values)
	return &Q4Tensor{
		shape:     shape.Clone(),
		data:      r.Data,
		scale:     r.Scale,
		zeroPoint: r.ZeroPoint,
	}, nil
}

// Shape returns the tensor's shape.
func (t *Q4Tensor) Shape() tensor.Shape {
	return t.shape
}

// At returns the dequantized element at the given indices.
// Panics if indices are out of bounds or of the wrong arity.
func (t *Q4Tensor) At(indices ...int) float64 {
	offset, err := t.shape.FlatIndex(indices...)
	if err != nil {
		panic(err)
	}
	return t.dequant(offset)
}

// Dense materializes the tensor as full-precision storage.
func (t *Q4Tensor) Dense() *tensor.Dense {
	data := make([]float64, t.shape.Elements())
	for i := range data {
		data[i] = t.dequant(i)
	}
	d, err := tensor.New(t.shape, data)
	if err != nil {
		panic(err) // shape was validated at construction
	}
	return d
}

// Scale returns the dequantization scale.
func (t *Q4Tensor) Scale() float64 { return t.scale }

// ZeroPoint returns the code representing 0.0.
func (t *Q4Tensor) ZeroPoint() int { return t.zeroPoint }

// PackedSize returns the byte length of the packed code buffer.
func (t *Q4Tensor) PackedSize() int { return len(t.data) }

func (t *Q4Tensor) dequant(flat int) float64 {
	return float64(int(unpackNibble(t.data, flat))-t.zeroPoint) * t.scale
}
