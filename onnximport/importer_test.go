package onnximport_test

import (
	"encoding/binary"
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariaghora/gosonnx/onnximport"
	"github.com/ariaghora/gosonnx/onnxproto"
)

func f32le(v ...float32) []byte {
	buf := make([]byte, 4*len(v))
	for i, x := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(x))
	}
	return buf
}

func TestOnInputDeclaresShapeOnlyTensor(t *testing.T) {
	b := onnximport.NewBuilder()
	v := &onnxproto.ValueInfoProto{
		Name: "x",
		Type: &onnxproto.TypeProto{TensorType: &onnxproto.TypeProtoTensor{
			ElemType: int32(onnxproto.ElemFloat),
			Shape:    &onnxproto.TensorShapeProto{Dim: []*onnxproto.TensorShapeProtoDim{{DimValue: 2}, {DimValue: 3}}},
		}},
	}
	require.NoError(t, b.OnInput(v))

	tt, ok := b.Graph().Tensor("x")
	require.True(t, ok)
	assert.Equal(t, []int64{2, 3}, tt.Shape)
	assert.False(t, tt.HasValues())
}

func TestOnInitializerDecodesRawData(t *testing.T) {
	b := onnximport.NewBuilder()
	tp := &onnxproto.TensorProto{
		Name:     "w",
		Dims:     []int64{2},
		DataType: int32(onnxproto.ElemFloat),
		RawData:  f32le(1.5, -2.5),
	}
	require.NoError(t, b.OnInitializer(tp))

	tt, ok := b.Graph().Tensor("w")
	require.True(t, ok)
	assert.Equal(t, []float32{1.5, -2.5}, tt.F32Vals)
}

func TestOnInitializerZeroElementIsEmptyNotAbsent(t *testing.T) {
	b := onnximport.NewBuilder()
	tp := &onnxproto.TensorProto{
		Name:     "empty",
		Dims:     []int64{0},
		DataType: int32(onnxproto.ElemFloat),
		RawData:  nil,
	}
	require.NoError(t, b.OnInitializer(tp))

	tt, ok := b.Graph().Tensor("empty")
	require.True(t, ok)
	assert.True(t, tt.HasValues())
	assert.Equal(t, 0, tt.Len())
}

func TestOnNodeAssignsSyntheticNameWhenMissing(t *testing.T) {
	b := onnximport.NewBuilder()
	n := &onnxproto.NodeProto{OpType: "Relu", Input: []string{"x"}, Output: []string{"y"}}
	require.NoError(t, b.OnNode(n))

	ops := b.Graph().Ops()
	_, ok := ops["unnamed_1"]
	assert.True(t, ok)
}

func TestOnNodeUnknownOpTypeFails(t *testing.T) {
	b := onnximport.NewBuilder()
	n := &onnxproto.NodeProto{Name: "n0", OpType: "TotallyMadeUp", Input: []string{"x"}, Output: []string{"y"}}
	err := b.OnNode(n)
	assert.Error(t, err)
}

func TestLoadDrivesBuilderFromDecodedModel(t *testing.T) {
	decode := func(data []byte) (*onnxproto.ModelProto, error) {
		return &onnxproto.ModelProto{
			Graph: &onnxproto.GraphProto{
				Input: []*onnxproto.ValueInfoProto{{
					Name: "x",
					Type: &onnxproto.TypeProto{TensorType: &onnxproto.TypeProtoTensor{
						ElemType: int32(onnxproto.ElemFloat),
						Shape:    &onnxproto.TensorShapeProto{Dim: []*onnxproto.TensorShapeProtoDim{{DimValue: 1}}},
					}},
				}},
				Output: []*onnxproto.ValueInfoProto{{
					Name: "y",
					Type: &onnxproto.TypeProto{TensorType: &onnxproto.TypeProtoTensor{
						ElemType: int32(onnxproto.ElemFloat),
						Shape:    &onnxproto.TensorShapeProto{Dim: []*onnxproto.TensorShapeProtoDim{{DimValue: 1}}},
					}},
				}},
				Node: []*onnxproto.NodeProto{
					{Name: "relu0", OpType: "Relu", Input: []string{"x"}, Output: []string{"y"}},
				},
			},
		}, nil
	}

	tmp := t.TempDir() + "/model.json"
	require.NoError(t, os.WriteFile(tmp, []byte("{}"), 0o644))

	g, err := onnximport.Load(tmp, decode)
	require.NoError(t, err)

	_, ok := g.Tensor("x")
	assert.True(t, ok)
	_, ok = g.Ops()["relu0"]
	assert.True(t, ok)
}
