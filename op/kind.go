// Package op defines the closed OperatorKind enumeration and, for each
// kind, the attribute record and compile/workgroup-size behavior that
// turns an operator plus its graph context into shader template
// bindings and a launch geometry.
package op

import (
	"encoding/json"

	"github.com/goki/ki/kit"
)

//go:generate stringer -type=Kind

// Kind is the closed set of operator kinds gosonnx can compile and
// execute. It is modeled as a single enum with a side-table of
// per-kind attribute records (the *Attrs types in attrs.go) rather than a tagged union,
// since Go has no native sum type; adding an operator means adding one
// Kind constant, one Attrs implementation, and one entry in the
// dispatch tables in compile.go.
type Kind int32

const (
	Add Kind = iota
	Mul
	Div
	Clip
	Relu
	Sigmoid
	HardSigmoid
	Flatten
	Gemm
	Conv
	ConvTranspose
	MaxPool
	AveragePool
	GlobalAveragePool
	BatchNormalization
	Concat
	Resize
	Unknown
	KindN
)

// KiT_Kind registers Kind with the goki reflection system so it can
// participate in generic param-setting and enum-aware JSON round trips,
// matching the registration pattern used for every closed enum in the
// teacher codebase.
var KiT_Kind = kit.Enums.AddEnum(KindN, kit.NotBitFlag, nil)

func (k Kind) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(k) }
func (k *Kind) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(k, b) }

// activableKinds is the set of operator kinds whose shader template
// supports an inlined post-activation tail, i.e. valid fusion anchors.
var activableKinds = map[Kind]bool{
	Gemm:               true,
	Conv:               true,
	ConvTranspose:      true,
	BatchNormalization: true,
}

// Activable reports whether an operator of this kind can serve as a
// fusion anchor for a following activation operator.
func (k Kind) Activable() bool {
	return activableKinds[k]
}

// activationKinds is the set of operator kinds the optimizer treats as
// fusible activations.
var activationKinds = map[Kind]bool{
	Relu:        true,
	Sigmoid:     true,
	HardSigmoid: true,
}

// IsActivation reports whether this kind is an activation eligible for
// fusion into a preceding activable anchor.
func (k Kind) IsActivation() bool {
	return activationKinds[k]
}

var _ json.Marshaler = Kind(0)
