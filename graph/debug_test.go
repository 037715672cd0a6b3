package graph_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariaghora/gosonnx/graph"
	"github.com/ariaghora/gosonnx/op"
)

func TestWriteDebugListsOpsAndTensors(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.NewTensorF32("x", []float32{1, 2}, []int64{2}))
	require.NoError(t, g.NewTensorF32("y", nil, []int64{2}))
	require.NoError(t, g.NewOp([]string{"x"}, []string{"y"}, "relu0", op.Relu, op.UnOpAttrs{}))
	g.InferEdges()

	var buf bytes.Buffer
	require.NoError(t, g.WriteDebug(&buf))

	out := buf.String()
	assert.Contains(t, out, "ops:")
	assert.Contains(t, out, "relu0: kind=Relu")
	assert.Contains(t, out, "tensors:")
	assert.Contains(t, out, "x: type=F32 shape=[2]")
}
