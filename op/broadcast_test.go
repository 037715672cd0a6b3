package op_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariaghora/gosonnx/op"
)

func TestBroadcastShapeSameRank(t *testing.T) {
	common, strideA, strideB, err := op.BroadcastShape([]int64{4, 3}, []int64{4, 3})
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 3}, common)
	assert.Equal(t, []int64{3, 1}, strideA)
	assert.Equal(t, []int64{3, 1}, strideB)
}

func TestBroadcastShapeScalarBSide(t *testing.T) {
	common, strideA, strideB, err := op.BroadcastShape([]int64{2, 3}, []int64{1})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, common)
	assert.Equal(t, []int64{3, 1}, strideA)
	assert.Equal(t, []int64{0, 0}, strideB)
}

func TestBroadcastShapeRankMismatch(t *testing.T) {
	// a: (2,3) b: (3,) -> right-aligned, b broadcasts on axis 0
	common, strideA, strideB, err := op.BroadcastShape([]int64{2, 3}, []int64{3})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, common)
	assert.Equal(t, []int64{3, 1}, strideA)
	assert.Equal(t, []int64{0, 1}, strideB)
}

func TestBroadcastShapeIncompatible(t *testing.T) {
	_, _, _, err := op.BroadcastShape([]int64{2, 3}, []int64{2, 4})
	assert.Error(t, err)
}

func TestIndexerBodyEmitsOffsetPerAxis(t *testing.T) {
	body := op.IndexerBody("idxA", []int64{2, 3}, []int64{3, 1})
	assert.Contains(t, body, "int idxA(int flat_idx)")
	assert.Contains(t, body, "offset += d0 * 3")
	assert.Contains(t, body, "offset += d1 * 1")
}

func TestIndexerBodySkipsZeroStrideAxis(t *testing.T) {
	body := op.IndexerBody("idxB", []int64{2, 3}, []int64{0, 1})
	assert.NotContains(t, body, "offset += d0")
	assert.Contains(t, body, "offset += d1 * 1")
}
