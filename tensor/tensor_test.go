package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariaghora/gosonnx/tensor"
)

func TestNewF32ValidatesShape(t *testing.T) {
	tt, err := tensor.NewF32([]float32{1, 2, 3, 4}, []int64{2, 2})
	require.NoError(t, err)
	assert.Equal(t, tensor.F32, tt.Type)
	assert.True(t, tt.HasValues())
	assert.Equal(t, 4, tt.Len())

	_, err = tensor.NewF32([]float32{1, 2, 3}, []int64{2, 2})
	assert.Error(t, err)
}

func TestNewF32AllowsAbsentValues(t *testing.T) {
	tt, err := tensor.NewF32(nil, []int64{2, 3})
	require.NoError(t, err)
	assert.False(t, tt.HasValues())
	assert.Equal(t, int64(6), tensor.NumElements(tt.Shape))
}

func TestByteSizeZeroElementPlaceholder(t *testing.T) {
	tt, err := tensor.NewF32([]float32{}, []int64{0, 4})
	require.NoError(t, err)
	assert.Equal(t, 4, tt.ByteSize())
}

func TestByteSizeByType(t *testing.T) {
	f32, _ := tensor.NewF32([]float32{1, 2}, []int64{2})
	assert.Equal(t, 8, f32.ByteSize())

	i64, _ := tensor.NewI64([]int64{1, 2}, []int64{2})
	assert.Equal(t, 16, i64.ByteSize())

	f64, _ := tensor.NewF64([]float64{1, 2}, []int64{2})
	assert.Equal(t, 16, f64.ByteSize())
}

func TestTypeGLSL(t *testing.T) {
	f32, _ := tensor.NewF32(nil, []int64{1})
	i64, _ := tensor.NewI64(nil, []int64{1})
	f64, _ := tensor.NewF64(nil, []int64{1})
	assert.Equal(t, "float", f32.TypeGLSL())
	assert.Equal(t, "int", i64.TypeGLSL())
	assert.Equal(t, "double", f64.TypeGLSL())
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "F32", tensor.F32.String())
	assert.Equal(t, "F64", tensor.F64.String())
	assert.Equal(t, "I64", tensor.I64.String())
}
