// Package tensor holds the tagged-union tensor value type shared by the
// graph, op-compile, and executor layers.
package tensor

import (
	"github.com/ariaghora/gosonnx/gerr"
)

//go:generate stringer -type=Type

// Type is the closed set of element types a Tensor may carry.
type Type int32

const (
	F32 Type = iota
	F64
	I64
)

// Tensor is a tagged variant over {F32, F64, I64}. Values may be absent
// (e.g. a declared model input with shape only); Shape is always
// present and fully known before execution.
type Tensor struct {
	Type    Type
	F32Vals []float32
	F64Vals []float64
	I64Vals []int64
	Shape   []int64
}

// NewF32 builds an F32 tensor, validating that, when present, values'
// length matches the shape's element count.
func NewF32(values []float32, shape []int64) (Tensor, error) {
	if values != nil && int64(len(values)) != NumElements(shape) {
		return Tensor{}, &gerr.TensorCreateError{
			Msg: "cannot create f32 tensor and resize it to the given shape",
		}
	}
	return Tensor{Type: F32, F32Vals: values, Shape: shape}, nil
}

// NewI64 builds an I64 tensor with the same validation as NewF32.
func NewI64(values []int64, shape []int64) (Tensor, error) {
	if values != nil && int64(len(values)) != NumElements(shape) {
		return Tensor{}, &gerr.TensorCreateError{
			Msg: "cannot create i64 tensor and resize it to the given shape",
		}
	}
	return Tensor{Type: I64, I64Vals: values, Shape: shape}, nil
}

// NewF64 builds an F64 tensor with the same validation as NewF32.
func NewF64(values []float64, shape []int64) (Tensor, error) {
	if values != nil && int64(len(values)) != NumElements(shape) {
		return Tensor{}, &gerr.TensorCreateError{
			Msg: "cannot create f64 tensor and resize it to the given shape",
		}
	}
	return Tensor{Type: F64, F64Vals: values, Shape: shape}, nil
}

// NumElements is the product of a shape's dimensions; an empty shape
// denotes a scalar (product 1).
func NumElements(shape []int64) int64 {
	n := int64(1)
	for _, d := range shape {
		n *= d
	}
	return n
}

// HasValues reports whether the tensor carries host-resident values for
// its declared type.
func (t Tensor) HasValues() bool {
	switch t.Type {
	case F32:
		return t.F32Vals != nil
	case F64:
		return t.F64Vals != nil
	case I64:
		return t.I64Vals != nil
	default:
		return false
	}
}

// Len returns the number of host-resident values, or 0 if absent.
func (t Tensor) Len() int {
	switch t.Type {
	case F32:
		return len(t.F32Vals)
	case F64:
		return len(t.F64Vals)
	case I64:
		return len(t.I64Vals)
	default:
		return 0
	}
}

// TypeGLSL is the GLSL scalar type a shader binds this tensor's storage
// buffer as.
func (t Tensor) TypeGLSL() string {
	switch t.Type {
	case F32:
		return "float"
	case F64:
		return "double"
	case I64:
		return "int" // GLSL has no first-class 64-bit integer type
	default:
		return "float"
	}
}

// ByteSize is the size in bytes the tensor's storage buffer must be
// allocated at, using the element count implied by Shape (not the
// length of the host-resident values, which may be absent). A shape
// whose element count is zero still needs a 4-byte placeholder because
// the underlying GPU API forbids zero-sized bindings.
func (t Tensor) ByteSize() int {
	n := NumElements(t.Shape)
	var elemSize int64
	switch t.Type {
	case F32:
		elemSize = 4
	case F64:
		elemSize = 8
	case I64:
		elemSize = 8
	default:
		elemSize = 4
	}
	size := n * elemSize
	if size == 0 {
		return 4
	}
	return int(size)
}
