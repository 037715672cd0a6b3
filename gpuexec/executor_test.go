package gpuexec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariaghora/gosonnx/tensor"
)

func TestTensorBytesAndDecodeRoundTripF32(t *testing.T) {
	tt, err := tensor.NewF32([]float32{1, 2, 3, 4}, []int64{2, 2})
	require.NoError(t, err)

	buf := tensorBytes(tt)
	assert.Len(t, buf, 16)

	decoded := decodeTensor(tensor.Tensor{Type: tensor.F32, Shape: []int64{2, 2}}, buf)
	assert.Equal(t, []float32{1, 2, 3, 4}, decoded.F32Vals)
}

func TestTensorBytesAndDecodeRoundTripI64(t *testing.T) {
	tt, err := tensor.NewI64([]int64{5, 6}, []int64{2})
	require.NoError(t, err)

	buf := tensorBytes(tt)
	assert.Len(t, buf, 16)

	decoded := decodeTensor(tensor.Tensor{Type: tensor.I64, Shape: []int64{2}}, buf)
	assert.Equal(t, []int64{5, 6}, decoded.I64Vals)
}

func TestTensorBytesZeroElementPlaceholder(t *testing.T) {
	tt, err := tensor.NewF32([]float32{}, []int64{0})
	require.NoError(t, err)
	buf := tensorBytes(tt)
	assert.Len(t, buf, 4)
}
