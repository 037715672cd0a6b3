// Package gerr defines the closed error taxonomy used across gosonnx.
//
// The variants mirror the GosonnxError enum from the original project:
// one struct per failure kind, all satisfying the standard error
// interface in the manner of *fs.PathError.
package gerr

import "fmt"

// AttributeNotFound reports a missing required ONNX attribute.
type AttributeNotFound struct {
	Name string
}

func (e *AttributeNotFound) Error() string {
	return fmt.Sprintf("attribute not found: %s", e.Name)
}

// TensorCreateError reports a failed tensor construction, usually a
// values/shape mismatch.
type TensorCreateError struct {
	Msg string
}

func (e *TensorCreateError) Error() string { return e.Msg }

// TensorNotFound reports a lookup against an unknown tensor name.
type TensorNotFound struct {
	Name string
}

func (e *TensorNotFound) Error() string {
	return fmt.Sprintf("tensor not found: %s", e.Name)
}

// ShapeMismatchError reports an operator shape invariant violation that
// does not carry the richer expected/found pair of IncompatibleShape.
type ShapeMismatchError struct{}

func (e *ShapeMismatchError) Error() string { return "shape mismatch" }

// ShaderCompileError wraps a failure inside the shader template engine.
type ShaderCompileError struct {
	Msg string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("shader compile error: %s", e.Msg)
}

// UnsupportedONNXOps reports an operator type the importer does not know
// how to map onto an OperatorKind.
type UnsupportedONNXOps struct {
	Name string
}

func (e *UnsupportedONNXOps) Error() string {
	return fmt.Sprintf("unsupported onnx op: %s", e.Name)
}

// OpsOnIncompatibleType reports a binary op applied to mismatched element
// types.
type OpsOnIncompatibleType struct {
	Left, Right string
}

func (e *OpsOnIncompatibleType) Error() string {
	return fmt.Sprintf("op on incompatible types: %s vs %s", e.Left, e.Right)
}

// InvalidInputDimension reports a rank mismatch against a fixed contract
// (e.g. Conv requiring rank-4 input).
type InvalidInputDimension struct {
	Expected, Found int
}

func (e *InvalidInputDimension) Error() string {
	return fmt.Sprintf("invalid input dimension: expected %d, found %d", e.Expected, e.Found)
}

// InvalidInputNo reports an operator invoked with the wrong number of
// inputs.
type InvalidInputNo struct {
	Expected, Found int
}

func (e *InvalidInputNo) Error() string {
	return fmt.Sprintf("invalid input count: expected %d, found %d", e.Expected, e.Found)
}

// InvalidType reports a tensor element type mismatch against an
// operator's expectation.
type InvalidType struct {
	Expected, Found string
}

func (e *InvalidType) Error() string {
	return fmt.Sprintf("invalid type: expected %s, found %s", e.Expected, e.Found)
}

// IncompatibleShape reports a shape that cannot be broadcast or
// otherwise does not fit an operator's contract.
type IncompatibleShape struct {
	Msg              string
	Expected, Found []int64
}

func (e *IncompatibleShape) Error() string {
	return fmt.Sprintf("incompatible shape: %s (expected %v, found %v)", e.Msg, e.Expected, e.Found)
}

// UnknownTensorType reports a tensor element-type tag the system does
// not recognize.
type UnknownTensorType struct {
	Type string
}

func (e *UnknownTensorType) Error() string {
	return fmt.Sprintf("unknown tensor type: %s", e.Type)
}

// Error is the catch-all variant for failures that do not fit a more
// specific kind.
type Error struct {
	Msg string
}

func (e *Error) Error() string { return e.Msg }
