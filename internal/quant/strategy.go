// Package quant provides memory-reduced tensor storage: pluggable
// quantization strategies that map float64 buffers onto narrow signed
// integer codes, and bit-packed tensor variants (8-bit, 4-bit, ternary)
// that implement the same read contract as dense tensors by dequantizing
// on access.
//
// Dequantization follows the affine rule
//
//	value = (code - zeroPoint) * scale
//
// for every strategy. Out-of-range inputs are clamped at quantize time;
// quantization is lossy but total, there is no error path for range
// violations.
package quant

import "math"

// Result holds the packed codes of a quantized buffer together with the
// affine dequantization parameters.
type Result struct {
	Data      []byte
	Scale     float64
	ZeroPoint int
}

// Quantizer converts a float buffer into packed narrow-width codes.
// Implementations choose scale and zero-point; all of them clamp codes to
// the representable range of their bit width.
type Quantizer interface {
	Quantize(values []float64) Result

	// Bits returns the code width: 8 or 4.
	Bits() int
}

// Linear is the asymmetric strategy: the observed [min, max] range is
// mapped onto the full signed range of the bit width, with the zero-point
// chosen so the minimum lands on the lowest representable level.
type Linear struct {
	bits int
}

// NewLinear creates a linear quantizer for the given bit width (4 or 8).
func NewLinear(bits int) Linear {
	checkBits(bits)
	return Linear{bits: bits}
}

// Bits returns the code width.
func (l Linear) Bits() int { return l.bits }

// Quantize maps values onto [lo, hi] with scale (max-min)/levels.
func (l Linear) Quantize(values []float64) Result {
	minVal, maxVal := minMax(values)
	return quantizeAffine(values, minVal, maxVal, l.bits)
}

// Symmetric maps the observed range onto [-half, half] around a fixed
// zero-point of 0, with scale max|v| / half. Symmetric codes keep 0.0
// exactly representable.
type Symmetric struct {
	bits int
}

// NewSymmetric creates a symmetric quantizer for the given bit width (4 or 8).
func NewSymmetric(bits int) Symmetric {
	checkBits(bits)
	return Symmetric{bits: bits}
}

// Bits returns the code width.
func (s Symmetric) Bits() int { return s.bits }

// Quantize maps values onto [-half, half] with zero-point 0.
func (s Symmetric) Quantize(values []float64) Result {
	maxAbs := 0.0
	for _, v := range values {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	return quantizeSymmetric(values, maxAbs, s.bits)
}

// Custom applies the linear or symmetric formulas over an explicit
// [Min, Max] range instead of the observed data range. Inputs outside the
// range are clamped before coding.
type Custom struct {
	Min, Max  float64
	bits      int
	Symmetric bool
}

// NewCustom creates a custom-range quantizer.
func NewCustom(min, max float64, bits int, symmetric bool) Custom {
	checkBits(bits)
	return Custom{Min: min, Max: max, bits: bits, Symmetric: symmetric}
}

// Bits returns the code width.
func (c Custom) Bits() int { return c.bits }

// Quantize clamps values into [Min, Max] and codes them with the
// range-parameterized formulas.
func (c Custom) Quantize(values []float64) Result {
	clamped := make([]float64, len(values))
	for i, v := range values {
		clamped[i] = clampFloat(v, c.Min, c.Max)
	}

	if c.Symmetric {
		maxAbs := math.Max(math.Abs(c.Min), math.Abs(c.Max))
		return quantizeSymmetric(clamped, maxAbs, c.bits)
	}
	return quantizeAffine(clamped, c.Min, c.Max, c.bits)
}

func checkBits(bits int) {
	if bits != 4 && bits != 8 {
		panic("quant: bit width must be 4 or 8")
	}
}

// quantizeAffine codes values with scale (max-min)/levels and a zero-point
// that maps min onto the lowest representable level.
func quantizeAffine(values []float64, minVal, maxVal float64, bits int) Result {
	lo := -(1 << (bits - 1))     // -128 or -8
	hi := (1 << (bits - 1)) - 1  // 127 or 7
	levels := float64(hi - lo)   // 255 or 15

	scale := (maxVal - minVal) / levels
	if scale == 0 {
		scale = 1 // constant input, keep the mapping defined
	}

	// The zero-point must stay a representable code, so a range far from
	// zero (say [10, 20]) saturates the clamp and the codes collapse; the
	// scheme assumes data whose range straddles or touches zero.
	zeroPoint := clampInt(lo-int(math.Round(minVal/scale)), lo, hi)

	codes := make([]int8, len(values))
	for i, v := range values {
		codes[i] = int8(clampInt(int(math.Round(v/scale))+zeroPoint, lo, hi))
	}
	return Result{Data: pack(codes, bits), Scale: scale, ZeroPoint: zeroPoint}
}

// quantizeSymmetric codes values with scale maxAbs/half and zero-point 0,
// using the symmetric range [-half, half].
func quantizeSymmetric(values []float64, maxAbs float64, bits int) Result {
	half := (1 << (bits - 1)) - 1 // 127 or 7

	scale := maxAbs / float64(half)
	if scale == 0 {
		scale = 1
	}

	codes := make([]int8, len(values))
	for i, v := range values {
		codes[i] = int8(clampInt(int(math.Round(v/scale)), -half, half))
	}
	return Result{Data: pack(codes, bits), Scale: scale, ZeroPoint: 0}
}

// pack stores codes at the given width: one per byte for 8 bits, two per
// byte (high nibble first) for 4 bits.
func pack(codes []int8, bits int) []byte {
	if bits == 8 {
		data := make([]byte, len(codes))
		for i, c := range codes {
			data[i] = byte(c)
		}
		return data
	}

	data := make([]byte, (len(codes)+1)/2)
	for i, c := range codes {
		nibble := byte(c) & 0x0F
		if i%2 == 0 {
			data[i/2] = nibble << 4
		} else {
			data[i/2] |= nibble
		}
	}
	return data
}

// unpackNibble extracts and sign-extends the 4-bit code at position i.
func unpackNibble(data []byte, i int) int8 {
	b := data[i/2]
	var nibble byte
	if i%2 == 0 {
		nibble = b >> 4
	} else {
		nibble = b & 0x0F
	}
	if nibble&0x8 != 0 {
		nibble |= 0xF0 // sign extend
	}
	return int8(nibble)
}

// minMax returns the observed minimum and maximum of values, or (0, 0)
// for empty input.
func minMax(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return minVal, maxVal
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
