package quant

import (
	"fmt"

	"github.com/sk-ai-net/skainet-go/internal/tensor"
)

// Ternary 2-bit code patterns. 11 is unused and reads as 0.
const (
	ternaryZero  = 0b00
	ternaryOne   = 0b01
	ternaryMinus = 0b10
)

// TernaryTensor packs four 2-bit codes per byte, high pair first, holding
// only the values {-1, 0, 1}. Values above 0.5 code to 1, below -0.5 to -1,
// everything else to 0. Memory: a quarter byte per element.
type TernaryTensor struct {
	shape tensor.Shape
	data  []byte
	scale float64
}

// NewTernary quantizes a float buffer into ternary storage.
func NewTernary(shape tensor.Shape, values []float64) (*TernaryTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.Elements() != len(values) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.Elements(), len(values))
	}

	data := make([]byte, (len(values)+3)/4)
	for i, v := range values {
		var code byte = ternaryZero
		switch {
		case v > 0.5:
			code = ternaryOne
		case v < -0.5:
			code = ternaryMinus
		}
		shift := uint(6 - 2*(i%4))
		data[i/4] |= code << shift
	}

	return &TernaryTensor{shape: shape.Clone(), data: data, scale: 1}, nil
}

// Shape returns the tensor's shape.
func (t *TernaryTensor) Shape() tensor.Shape {
	return t.shape
}

// At returns the decoded element at the given indices: -1, 0 or 1.
// Panics if indices are out of bounds or of the wrong arity.
func (t *TernaryTensor) At(indices ...int) float64 {
	offset, err := t.shape.FlatIndex(indices...)
	if err != nil {
		panic(err)
	}
	return t.dequant(offset)
}

// Dense materializes the tensor as full-precision storage.
func (t *TernaryTensor) Dense() *tensor.Dense {
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

// Scale returns the dequantization scale. Ternary codes are the values
// themselves, so the scale is 1 and the zero-point 0.
func (t *TernaryTensor) Scale() float64 { return t.scale }

// ZeroPoint returns the code representing 0.0.
func (t *TernaryTensor) ZeroPoint() int { return 0 }

// PackedSize returns the byte length of the packed code buffer.
func (t *TernaryTensor) PackedSize() int { return len(t.data) }

func (t *TernaryTensor) dequant(flat int) float64 {
	shift := uint(6 - 2*(flat%4))
	switch (t.data[flat/4] >> shift) & 0x3 {
	case ternaryOne:
		return t.scale
	case ternaryMinus:
		return -t.scale
	default:
		return 0
	}
}
