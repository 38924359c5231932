// Package quant provides the public API for memory-reduced tensor storage:
// quantization strategies and the bit-packed 8-bit, 4-bit and ternary
// tensor variants. The variants satisfy the tensor read contract, so they
// mix freely with dense tensors in arithmetic; mixed operations always
// produce a dense result.
//
// Example:
//
//	weights, _ := quant.NewQ8(tensor.Shape{64, 64}, values, quant.NewLinear(8))
//	out, _ := activations.MatMul(weights.Dense())
package quant

import (
	"github.com/sk-ai-net/skainet-go/internal/quant"
	"github.com/sk-ai-net/skainet-go/internal/tensor"
)

// Result holds packed codes plus the affine dequantization parameters.
type Result = quant.Result

// Quantizer converts a float buffer into packed narrow-width codes.
type Quantizer = quant.Quantizer

// Quantization strategies.
type (
	// Linear maps the observed [min, max] range onto the full signed range.
	Linear = quant.Linear
	// Symmetric maps the observed range onto [-half, half] around zero.
	Symmetric = quant.Symmetric
	// Custom applies the same formulas over an explicit caller range.
	Custom = quant.Custom
)

// Storage variants.
type (
	// Q8Tensor stores one signed byte per element.
	Q8Tensor = quant.Q8Tensor
	// Q4Tensor packs two signed 4-bit codes per byte.
	Q4Tensor = quant.Q4Tensor
	// TernaryTensor packs four 2-bit {-1, 0, 1} codes per byte.
	TernaryTensor = quant.TernaryTensor
)

// NewLinear creates a linear quantizer for the given bit width (4 or 8).
func NewLinear(bits int) Linear {
	return quant.NewLinear(bits)
}

// NewSymmetric creates a symmetric quantizer for the given bit width (4 or 8).
func NewSymmetric(bits int) Symmetric {
	return quant.NewSymmetric(bits)
}

// NewCustom creates a quantizer over an explicit [min, max] range.
func NewCustom(min, max float64, bits int, symmetric bool) Custom {
	return quant.NewCustom(min, max, bits, symmetric)
}

// NewQ8 quantizes a float buffer into 8-bit storage.
func NewQ8(shape tensor.Shape, values []float64, q Quantizer) (*Q8Tensor, error) {
	return quant.NewQ8(shape, values, q)
}

// NewQ4 quantizes a float buffer into 4-bit storage.
func NewQ4(shape tensor.Shape, values []float64, q Quantizer) (*Q4Tensor, error) {
	return quant.NewQ4(shape, values, q)
}

// NewTernary quantizes a float buffer into ternary storage.
func NewTernary(shape tensor.Shape, values []float64) (*TernaryTensor, error) {
	return quant.NewTernary(shape, values)
}
