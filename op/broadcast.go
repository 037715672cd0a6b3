package op

import "github.com/ariaghora/gosonnx/gerr"

// BroadcastShape computes the NumPy-style right-aligned broadcast of two
// shapes: the shorter is padded on the left with 1s, and each aligned
// axis pair must be equal or contain a 1. It also returns, for each
// side, the "logical stride" per axis of the *common* rank: the
// physical stride for that axis if the side actually owns it, or 0 if
// the axis was broadcast (size 1 against a larger peer) or padded in.
func BroadcastShape(a, b []int64) (common []int64, strideA, strideB []int64, err error) {
	rank := len(a)
	if len(b) > rank {
		rank = len(b)
	}
	padded := func(s []int64) []int64 {
		out := make([]int64, rank)
		pad := rank - len(s)
		for i := 0; i < pad; i++ {
			out[i] = 1
		}
		copy(out[pad:], s)
		return out
	}
	pa, pb := padded(a), padded(b)

	common = make([]int64, rank)
	for i := 0; i < rank; i++ {
		switch {
		case pa[i] == pb[i]:
			common[i] = pa[i]
		case pa[i] == 1:
			common[i] = pb[i]
		case pb[i] == 1:
			common[i] = pa[i]
		default:
			return nil, nil, nil, &gerr.IncompatibleShape{
				Msg:      "cannot broadcast shapes",
				Expected: a,
				Found:    b,
			}
		}
	}

	strideA = physicalStrides(pa, common)
	strideB = physicalStrides(pb, common)
	return common, strideA, strideB, nil
}

// physicalStrides computes row-major physical strides for padded, then
// zeroes out any axis where padded disagrees with common (broadcast or
// padded-in axis), yielding the "logical stride" used for address
// arithmetic in the generated shader.
func physicalStrides(padded, common []int64) []int64 {
	rank := len(padded)
	phys := make([]int64, rank)
	acc := int64(1)
	for i := rank - 1; i >= 0; i-- {
		phys[i] = acc
		acc *= padded[i]
	}
	out := make([]int64, rank)
	for i := 0; i < rank; i++ {
		if padded[i] == common[i] && padded[i] != 1 {
			out[i] = phys[i]
		} else if padded[i] == common[i] && padded[i] == 1 && common[i] == 1 {
			out[i] = phys[i]
		} else {
			out[i] = 0
		}
	}
	return out
}

// IndexerBody synthesizes a GLSL function body mapping a flat output
// index to the per-side input offset implied by strides, decomposing
// the flat index across axes of shape. This is pushed into the shader
// template as a string variable rather than computed on the GPU from
// the shape directly, since the binary templates must emit straight
// line code.
func IndexerBody(funcName string, shape, strides []int64) string {
	body := "int " + funcName + "(int flat_idx) {\n  int offset = 0;\n  int rem = flat_idx;\n"
	for i := 0; i < len(shape); i++ {
		divisor := productFrom(shape, i+1)
		body += "  int d" + itoa(i) + " = rem / " + itoa64(divisor) + ";\n"
		body += "  rem = rem % " + itoa64(divisor) + ";\n"
		if strides[i] != 0 {
			body += "  offset += d" + itoa(i) + " * " + itoa64(strides[i]) + ";\n"
		}
	}
	body += "  return offset;\n}\n"
	return body
}

func productFrom(shape []int64, from int) int64 {
	p := int64(1)
	for i := from; i < len(shape); i++ {
		p *= shape[i]
	}
	return p
}

func itoa(i int) string   { return itoa64(int64(i)) }
func itoa64(i int64) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}
