package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariaghora/gosonnx/graph"
	"github.com/ariaghora/gosonnx/op"
)

func buildGemmRelu(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.NewTensorF32("x", []float32{1, 2, 3, 4}, []int64{2, 2}))
	require.NoError(t, g.NewTensorF32("w", []float32{1, 0, 0, 1}, []int64{2, 2}))
	require.NoError(t, g.NewTensorF32("bias", []float32{1, 1}, []int64{2}))
	require.NoError(t, g.NewTensorF32("gemm_out", nil, []int64{2, 2}))
	require.NoError(t, g.NewTensorF32("relu_out", nil, []int64{2, 2}))

	require.NoError(t, g.NewOp(
		[]string{"x", "w", "bias"}, []string{"gemm_out"}, "gemm0", op.Gemm,
		op.GemmAttrs{Alpha: 1, Beta: 1},
	))
	require.NoError(t, g.NewOp(
		[]string{"gemm_out"}, []string{"relu_out"}, "relu0", op.Relu, op.UnOpAttrs{},
	))
	return g
}

func TestOptimizerFusesReluIntoGemm(t *testing.T) {
	g := buildGemmRelu(t)
	g.InferEdges()
	require.NoError(t, graph.NewOptimizer().Optimize(g))

	_, reluStillPresent := g.Ops()["relu0"]
	assert.False(t, reluStillPresent)

	gemm, ok := g.Ops()["gemm0"]
	require.True(t, ok)
	assert.Equal(t, []string{"relu_out"}, gemm.Outputs)
	assert.Empty(t, gemm.Successors)

	attrs, ok := gemm.Attrs.(op.GemmAttrs)
	require.True(t, ok)
	assert.Equal(t, "Relu", attrs.FusedActivation)
}

func TestOptimizerDoesNotFuseIntoNonActivableAnchor(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.NewTensorF32("a", []float32{1}, []int64{1}))
	require.NoError(t, g.NewTensorF32("b", []float32{1}, []int64{1}))
	require.NoError(t, g.NewTensorF32("gemm_out", nil, []int64{1}))
	require.NoError(t, g.NewTensorF32("other_out", nil, []int64{1}))
	require.NoError(t, g.NewTensorF32("relu_out", nil, []int64{1}))

	require.NoError(t, g.NewOp([]string{"a"}, []string{"gemm_out"}, "gemm0", op.Gemm, op.GemmAttrs{}))
	require.NoError(t, g.NewOp([]string{"b"}, []string{"other_out"}, "id0", op.Relu, op.UnOpAttrs{}))
	// relu1 has a single predecessor, id0, whose kind (Relu) is not
	// Activable, so the fusion must leave relu1 in place. gemm0 is not
	// connected to relu1.
	require.NoError(t, g.NewOp([]string{"other_out"}, []string{"relu_out"}, "relu1", op.Sigmoid, op.UnOpAttrs{}))

	g.InferEdges()
	require.NoError(t, graph.NewOptimizer().Optimize(g))

	// id0 (Relu) is not Activable, so relu1 (Sigmoid) must not fuse into it.
	_, stillPresent := g.Ops()["relu1"]
	assert.True(t, stillPresent)
}
