package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariaghora/gosonnx/graph"
	"github.com/ariaghora/gosonnx/tensor"
)

func mustF32(t *testing.T, values []float32, shape []int64) tensor.Tensor {
	t.Helper()
	tt, err := tensor.NewF32(values, shape)
	require.NoError(t, err)
	return tt
}

func TestNewTensorF32RejectsShapeMismatch(t *testing.T) {
	g := graph.New()
	err := g.NewTensorF32("x", []float32{1, 2, 3}, []int64{2, 2})
	assert.Error(t, err)
}

func TestSetTensorRequiresSameShape(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.NewTensorF32("x", []float32{1, 2}, []int64{2}))

	require.NoError(t, g.SetTensor("x", mustF32(t, []float32{3, 4}, []int64{2})))

	err := g.SetTensor("x", mustF32(t, []float32{1, 2, 3}, []int64{3}))
	assert.Error(t, err)
}

func TestSetTensorUnknownName(t *testing.T) {
	g := graph.New()
	err := g.SetTensor("missing", mustF32(t, []float32{1}, []int64{1}))
	assert.Error(t, err)
}

func TestAddOptionalOutputRequiresExistingTensor(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.NewTensorF32("x", []float32{1}, []int64{1}))
	require.NoError(t, g.AddOptionalOutput("x"))
	assert.Equal(t, []string{"x"}, g.OptionalOutputs())

	assert.Error(t, g.AddOptionalOutput("missing"))
}

func TestTensorShapeAndTypeGLSL(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.NewTensorF32("x", []float32{1, 2, 3, 4}, []int64{2, 2}))

	shape, err := g.TensorShape("x")
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 2}, shape)

	glslType, err := g.TensorTypeGLSL("x")
	require.NoError(t, err)
	assert.Equal(t, "float", glslType)

	_, err = g.TensorShape("missing")
	assert.Error(t, err)
}
