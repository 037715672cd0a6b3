package op

// UnOpAttrs is the (empty) attribute record shared by the pure
// elementwise activations Relu and Sigmoid: their behavior is fixed by
// kind alone.
type UnOpAttrs struct{}

// BinOpAttrs is the (empty) attribute record shared by Add, Mul, Div:
// their behavior is fixed by kind and broadcasting is derived purely
// from the two input shapes.
type BinOpAttrs struct{}

// ClipAttrs holds Clip's bounds as compile-time operator attributes
// (not tensor inputs), following the ONNX opset version the original
// project's ClipOp targets.
type ClipAttrs struct {
	Min *float32
	Max *float32
}

// HardSigmoidAttrs holds the linear coefficients of
// HardSigmoid(x) = max(0, min(1, alpha*x + beta)).
type HardSigmoidAttrs struct {
	Alpha float32
	Beta  float32
}

// FlattenAttrs holds Flatten's axis attribute.
type FlattenAttrs struct {
	Axis int64
}

// GemmAttrs holds Gemm's scalar coefficients, transpose flags, and the
// activation fused into it by the optimizer (empty string if none).
type GemmAttrs struct {
	Alpha             float32
	Beta              float32
	TransA            bool
	TransB            bool
	FusedActivation   string
	FusedHSAlpha      float32
	FusedHSBeta       float32
}

// ConvAttrs holds Conv's spatial attributes.
type ConvAttrs struct {
	Dilations       []int64
	Group           int64
	KernelShape     []int64
	Pads            []int64
	Strides         []int64
	FusedActivation string
	FusedHSAlpha    float32
	FusedHSBeta     float32
}

// ConvTransposeAttrs holds ConvTranspose's spatial attributes; Group is
// restricted to 1 by the compile contract.
type ConvTransposeAttrs struct {
	Dilations       []int64
	Group           int64
	KernelShape     []int64
	OutputPadding   []int64
	OutputShape     []int64
	Pads            []int64
	Strides         []int64
	FusedActivation string
	FusedHSAlpha    float32
	FusedHSBeta     float32
}

// PoolAttrs is shared by MaxPool and AveragePool.
type PoolAttrs struct {
	CeilMode    int64
	KernelShape []int64
	Pads        []int64
	Strides     []int64
	Dilations   []int64
	AutoPad     string
}

// BatchNormAttrs holds BatchNormalization's numerical attributes.
type BatchNormAttrs struct {
	Epsilon         float32
	Momentum        float32
	FusedActivation string
	FusedHSAlpha    float32
	FusedHSBeta     float32
}

// ConcatAttrs holds Concat's join axis.
type ConcatAttrs struct {
	Axis int64
}

// ResizeAttrs holds Resize's full attribute set, resolved at compile
// time to nearest-neighbor addressing regardless of the requested mode
// (see compile.go for the downgrade policy, grounded in the original
// project's ops/resize.rs).
type ResizeAttrs struct {
	Antialias                   *int64
	Axes                        []int64
	CoordinateTransformationMode string
	CubicCoeffA                  *float32
	ExcludeOutside               *int64
	ExtrapolationValue           *float32
	KeepAspectRatioPolicy        string
	Mode                         string
	NearestMode                  string
}
