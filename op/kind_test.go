package op_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariaghora/gosonnx/op"
)

func TestKindStringRoundTrip(t *testing.T) {
	for k := op.Add; k < op.KindN; k++ {
		name := k.String()
		got, err := op.FromString(name)
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
}

func TestFromStringUnknown(t *testing.T) {
	_, err := op.FromString("NotAnOp")
	assert.Error(t, err)
}

func TestActivable(t *testing.T) {
	assert.True(t, op.Gemm.Activable())
	assert.True(t, op.Conv.Activable())
	assert.True(t, op.ConvTranspose.Activable())
	assert.True(t, op.BatchNormalization.Activable())
	assert.False(t, op.Add.Activable())
}

func TestIsActivation(t *testing.T) {
	assert.True(t, op.Relu.IsActivation())
	assert.True(t, op.Sigmoid.IsActivation())
	assert.True(t, op.HardSigmoid.IsActivation())
	assert.False(t, op.Gemm.IsActivation())
}

func TestKindJSONRoundTrip(t *testing.T) {
	b, err := op.Conv.MarshalJSON()
	require.NoError(t, err)

	var k op.Kind
	require.NoError(t, k.UnmarshalJSON(b))
	assert.Equal(t, op.Conv, k)
}
