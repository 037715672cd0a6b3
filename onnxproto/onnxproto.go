// Package onnxproto is the schema contract the ONNX protobuf decoder must
// satisfy. Decoding the wire format itself is an external collaborator —
// this package only declares the plain Go structs the importer consumes.
// Raw tensor bytes are little-endian and are reinterpreted according to
// the declared element type by the caller.
package onnxproto

// AttributeProto is a single named attribute attached to a NodeProto.
// Only the fields gosonnx actually reads are present.
type AttributeProto struct {
	Name     string
	F        float32
	I        int64
	S        []byte
	Floats   []float32
	Ints     []int64
	Strings  [][]byte
}

// NodeProto is one operator invocation in the graph.
type NodeProto struct {
	Input      []string
	Output     []string
	Name       string
	OpType     string
	Attribute  []*AttributeProto
}

// TensorShapeProtoDim is a single dimension of a TensorShapeProto.
type TensorShapeProtoDim struct {
	DimValue int64
}

// TensorShapeProto is the shape portion of a TypeProto_Tensor.
type TensorShapeProto struct {
	Dim []*TensorShapeProtoDim
}

// TypeProtoTensor is the tensor arm of a TypeProto's oneof value.
type TypeProtoTensor struct {
	ElemType int32
	Shape    *TensorShapeProto
}

// TypeProto wraps the oneof {tensor_type, sequence_type, map_type,
// optional_type, sparse_tensor_type}; gosonnx only supports tensor_type.
type TypeProto struct {
	TensorType *TypeProtoTensor
}

// ValueInfoProto describes a named graph input, output, or intermediate
// value's declared type and shape.
type ValueInfoProto struct {
	Name string
	Type *TypeProto
}

// TensorProto is an initializer: a tensor whose values live in the model
// file itself.
type TensorProto struct {
	Dims     []int64
	DataType int32
	RawData  []byte
	Name     string
}

// GraphProto is the flattened node/input/output/initializer/value-info
// listing for one ONNX graph.
type GraphProto struct {
	Node         []*NodeProto
	Input        []*ValueInfoProto
	Output       []*ValueInfoProto
	Initializer  []*TensorProto
	ValueInfo    []*ValueInfoProto
	Name         string
}

// ModelProto is the top-level parsed unit; only the embedded graph
// matters to gosonnx.
type ModelProto struct {
	Graph *GraphProto
}

// Element type codes gosonnx recognizes, taken from the public ONNX
// TensorProto.DataType enumeration. Only FLOAT is required for
// value-info entries per the import contract; others are accepted for
// initializers where the element type is already pinned by usage.
const (
	ElemFloat Pos = 1
	ElemInt64 Pos = 7
	ElemDouble Pos = 11
)

// Pos is a raw ONNX element-type code.
type Pos int32
