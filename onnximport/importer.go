// Package onnximport is the graph-builder / ONNX-importer contract:
// the protobuf decode itself is an external collaborator (this package
// never depends on a protobuf runtime), but the event stream a decoder
// must drive, and what each event does to the resulting graph.Graph,
// is fully specified here.
package onnximport

import (
	"fmt"
	"os"

	"github.com/ariaghora/gosonnx/attr"
	"github.com/ariaghora/gosonnx/gerr"
	"github.com/ariaghora/gosonnx/graph"
	"github.com/ariaghora/gosonnx/onnxproto"
	"github.com/ariaghora/gosonnx/op"
)

// EventSink is the interface a caller-supplied ONNX decoder drives:
// one call per input, output, initializer, value-info entry, and node,
// in any order the decoder finds them in the source model, except that
// all tensor-producing events (Input/Output/Initializer/ValueInfo) are
// expected before the first Node event is processed meaningfully (an
// operator may reference a tensor not yet declared, since nodes are
// resolved against the tensor store only at Graph.Run time).
type EventSink interface {
	OnInput(v *onnxproto.ValueInfoProto) error
	OnOutput(v *onnxproto.ValueInfoProto) error
	OnInitializer(t *onnxproto.TensorProto) error
	OnValueInfo(v *onnxproto.ValueInfoProto) error
	OnNode(n *onnxproto.NodeProto) error
}

// Builder accumulates ONNX events into a graph.Graph. Operator nodes
// without a Name are assigned a synthetic "unnamed_<n>" name, with a
// monotonically increasing counter starting at 1 that preserves
// source order.
type Builder struct {
	g              *graph.Graph
	unnamedCounter int
}

// NewBuilder returns a Builder writing into a fresh graph.Graph.
func NewBuilder() *Builder {
	return &Builder{g: graph.New()}
}

// Graph returns the graph built so far.
func (b *Builder) Graph() *graph.Graph { return b.g }

// OnInput adds a tensor for a declared graph input (values absent,
// shape declared).
func (b *Builder) OnInput(v *onnxproto.ValueInfoProto) error {
	return b.declareTensor(v)
}

// OnOutput adds a tensor for a declared graph output.
func (b *Builder) OnOutput(v *onnxproto.ValueInfoProto) error {
	return b.declareTensor(v)
}

// OnValueInfo adds a tensor for an intermediate value-info entry.
func (b *Builder) OnValueInfo(v *onnxproto.ValueInfoProto) error {
	return b.declareTensor(v)
}

func (b *Builder) declareTensor(v *onnxproto.ValueInfoProto) error {
	if v.Type == nil || v.Type.TensorType == nil {
		return &gerr.Error{Msg: fmt.Sprintf("value info %q has no tensor type", v.Name)}
	}
	tt := v.Type.TensorType
	if tt.ElemType != int32(onnxproto.ElemFloat) {
		return &gerr.UnknownTensorType{Type: fmt.Sprintf("elem_type=%d", tt.ElemType)}
	}
	shape := make([]int64, 0)
	if tt.Shape != nil {
		for _, d := range tt.Shape.Dim {
			shape = append(shape, d.DimValue)
		}
	}
	return b.g.NewTensorF32(v.Name, nil, shape)
}

// OnInitializer adds a tensor whose values are stored in the model
// file. A zero-element initializer is represented with an empty (not
// absent) value buffer.
func (b *Builder) OnInitializer(t *onnxproto.TensorProto) error {
	n := int64(1)
	for _, d := range t.Dims {
		n *= d
	}
	switch onnxproto.Pos(t.DataType) {
	case onnxproto.ElemFloat:
		var values []float32
		if n == 0 {
			values = []float32{}
		} else {
			values = decodeF32LE(t.RawData)
		}
		return b.g.NewTensorF32(t.Name, values, t.Dims)
	case onnxproto.ElemInt64:
		var values []int64
		if n == 0 {
			values = []int64{}
		} else {
			values = decodeI64LE(t.RawData)
		}
		return b.g.NewTensorI64(t.Name, values, t.Dims)
	case onnxproto.ElemDouble:
		var values []float64
		if n == 0 {
			values = []float64{}
		} else {
			values = decodeF64LE(t.RawData)
		}
		return b.g.NewTensorF64(t.Name, values, t.Dims)
	default:
		return &gerr.UnknownTensorType{Type: fmt.Sprintf("data_type=%d", t.DataType)}
	}
}

// OnNode translates one NodeProto into a graph.Op, mapping op_type to
// an op.Kind and parsing its attribute list into the matching Attrs
// struct. Unknown op_types fail with UnsupportedONNXOps.
func (b *Builder) OnNode(n *onnxproto.NodeProto) error {
	name := n.Name
	if name == "" {
		b.unnamedCounter++
		name = fmt.Sprintf("unnamed_%d", b.unnamedCounter)
	}

	kind, err := op.FromString(n.OpType)
	if err != nil || kind == op.Unknown || kind == op.KindN {
		return &gerr.UnsupportedONNXOps{Name: n.OpType}
	}

	attrs, err := buildAttrs(kind, attr.NewList(n.Attribute))
	if err != nil {
		return err
	}
	return b.g.NewOp(n.Input, n.Output, name, kind, attrs)
}

func buildAttrs(kind op.Kind, a attr.List) (any, error) {
	switch kind {
	case op.Add, op.Mul, op.Div:
		return op.BinOpAttrs{}, nil
	case op.Relu, op.Sigmoid:
		return op.UnOpAttrs{}, nil
	case op.HardSigmoid:
		return op.HardSigmoidAttrs{
			Alpha: a.FloatOr("alpha", 0.2),
			Beta:  a.FloatOr("beta", 0.5),
		}, nil
	case op.Clip:
		var min, max *float32
		if a.Has("min") {
			v := a.FloatOr("min", 0)
			min = &v
		}
		if a.Has("max") {
			v := a.FloatOr("max", 0)
			max = &v
		}
		return op.ClipAttrs{Min: min, Max: max}, nil
	case op.Flatten:
		return op.FlattenAttrs{Axis: a.IntOr("axis", 1)}, nil
	case op.Gemm:
		return op.GemmAttrs{
			Alpha:  a.FloatOr("alpha", 1.0),
			Beta:   a.FloatOr("beta", 1.0),
			TransA: a.IntOr("transA", 0) != 0,
			TransB: a.IntOr("transB", 0) != 0,
		}, nil
	case op.Conv:
		return op.ConvAttrs{
			Dilations:   a.IntsOr("dilations", []int64{1, 1}),
			Group:       a.IntOr("group", 1),
			KernelShape: a.IntsOr("kernel_shape", nil),
			Pads:        a.IntsOr("pads", []int64{0, 0, 0, 0}),
			Strides:     a.IntsOr("strides", []int64{1, 1}),
		}, nil
	case op.ConvTranspose:
		return op.ConvTransposeAttrs{
			Dilations:     a.IntsOr("dilations", []int64{1, 1}),
			Group:         a.IntOr("group", 1),
			KernelShape:   a.IntsOr("kernel_shape", nil),
			OutputPadding: a.IntsOr("output_padding", []int64{0, 0}),
			OutputShape:   a.IntsOr("output_shape", nil),
			Pads:          a.IntsOr("pads", []int64{0, 0, 0, 0}),
			Strides:       a.IntsOr("strides", []int64{1, 1}),
		}, nil
	case op.MaxPool, op.AveragePool:
		return op.PoolAttrs{
			CeilMode:    a.IntOr("ceil_mode", 0),
			KernelShape: a.IntsOr("kernel_shape", nil),
			Pads:        a.IntsOr("pads", []int64{0, 0, 0, 0}),
			Strides:     a.IntsOr("strides", []int64{1, 1}),
			Dilations:   a.IntsOr("dilations", nil),
			AutoPad:     a.StringOr("auto_pad", ""),
		}, nil
	case op.GlobalAveragePool:
		return nil, nil
	case op.BatchNormalization:
		return op.BatchNormAttrs{
			Epsilon:  a.FloatOr("epsilon", 1e-5),
			Momentum: a.FloatOr("momentum", 0.9),
		}, nil
	case op.Concat:
		return op.ConcatAttrs{Axis: a.IntOr("axis", 0)}, nil
	case op.Resize:
		return op.ResizeAttrs{
			CoordinateTransformationMode: a.StringOr("coordinate_transformation_mode", "half_pixel"),
			Mode:                         a.StringOr("mode", "nearest"),
			NearestMode:                  a.StringOr("nearest_mode", "round_prefer_floor"),
			KeepAspectRatioPolicy:        a.StringOr("keep_aspect_ratio_policy", "stretch"),
		}, nil
	default:
		return nil, &gerr.UnsupportedONNXOps{Name: kind.String()}
	}
}

// Decoder parses raw ONNX protobuf bytes into the schema structs this
// package consumes; the decode itself remains an external collaborator,
// so callers must supply one (e.g. backed by a generated protobuf
// package of their choosing).
type Decoder func(data []byte) (*onnxproto.ModelProto, error)

// Load reads an ONNX model file from disk, decodes it with decode, and
// drives a fresh Builder over its graph, mirroring the original
// project's Graph::open_onnx convenience constructor.
func Load(path string, decode Decoder) (*graph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &gerr.Error{Msg: err.Error()}
	}
	model, err := decode(data)
	if err != nil {
		return nil, &gerr.Error{Msg: err.Error()}
	}
	if model.Graph == nil {
		return nil, &gerr.Error{Msg: "model has no graph"}
	}
	b := NewBuilder()
	for _, v := range model.Graph.Input {
		if err := b.OnInput(v); err != nil {
			return nil, err
		}
	}
	for _, v := range model.Graph.Output {
		if err := b.OnOutput(v); err != nil {
			return nil, err
		}
	}
	for _, v := range model.Graph.ValueInfo {
		if err := b.OnValueInfo(v); err != nil {
			return nil, err
		}
	}
	for _, t := range model.Graph.Initializer {
		if err := b.OnInitializer(t); err != nil {
			return nil, err
		}
	}
	for _, n := range model.Graph.Node {
		if err := b.OnNode(n); err != nil {
			return nil, err
		}
	}
	return b.Graph(), nil
}

var _ EventSink = (*Builder)(nil)
