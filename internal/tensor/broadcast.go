package tensor

// BroadcastShapes resolves the common shape two operands broadcast to.
// Shapes are walked right to left; at each position the sizes must match
// or one of them must be 1, and a shorter shape is padded with 1s on the
// left. The bool result is true when either operand actually needs to be
// stretched, so callers can skip the remapping machinery for same-shape
// operands. Incompatible sizes yield a *ShapeMismatchError.
//
// For instance, (3, 1) against (3, 5) resolves to (3, 5) with stretching,
// (3, 5) against itself resolves without, and (3, 4) against (3, 5)
// fails.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	maxLen := maxInt(len(a), len(b))
	result := make(Shape, maxLen)
	needsBroadcast := false

	for i := 0; i < maxLen; i++ {
		aIdx := len(a) - 1 - i
		bIdx := len(b) - 1 - i

		aDim := 1
		if aIdx >= 0 {
			aDim = a[aIdx]
		}

		bDim := 1
		if bIdx >= 0 {
			bDim = b[bIdx]
		}

		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
			needsBroadcast = true
		case bDim == 1:
			result[maxLen-1-i] = aDim
			needsBroadcast = true
		default:
			return nil, false, &ShapeMismatchError{Op: "broadcast", Left: a, Right: b}
		}
	}

	return result, needsBroadcast, nil
}

// broadcastStrides computes strides for broadcasting inShape to outShape.
// Dimensions introduced by alignment and dimensions of size 1 get stride 0,
// so indexing into them always reads the operand's single value.
func broadcastStrides(inShape, outShape Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	inDim := len(inShape)
	offset := outDim - inDim // left padding from rank alignment

	origStrides := inShape.Strides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0 || inIdx >= inDim:
			strides[i] = 0
		case inShape[inIdx] == 1:
			strides[i] = 0
		default:
			strides[i] = origStrides[inIdx]
		}
	}

	return strides
}

// remapIndex translates a flat position in the output buffer into the
// matching flat position in a source operand. The output strides peel the
// position into per-dimension coordinates, and each coordinate is re-priced
// with the operand's broadcast-adjusted stride; zero strides pin repeated
// dimensions to the operand's single value.
func remapIndex(outIdx int, outStrides, inStrides []int) int {
	ndim := len(outStrides)
	flatIdx := 0

	for i := 0; i < ndim; i++ {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		flatIdx += coord * inStrides[i]
	}

	return flatIdx
}

// stretchedBy reports whether broadcasting in to out repeats any of in's
// values: the operand has smaller rank than the result, or a size-1
// dimension aligned against a larger result dimension.
func stretchedBy(in, out Shape) bool {
	if len(in) < len(out) {
		return true
	}
	offset := len(out) - len(in)
	for i, dim := range in {
		if dim == 1 && out[i+offset] > 1 {
			return true
		}
	}
	return false
}
