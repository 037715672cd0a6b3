package attr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariaghora/gosonnx/attr"
	"github.com/ariaghora/gosonnx/onnxproto"
)

func sampleAttrs() []*onnxproto.AttributeProto {
	return []*onnxproto.AttributeProto{
		{Name: "alpha", F: 0.25},
		{Name: "axis", I: 2},
		{Name: "kernel_shape", Ints: []int64{3, 3}},
		{Name: "mode", S: []byte("nearest")},
	}
}

func TestRequiredLookups(t *testing.T) {
	l := attr.NewList(sampleAttrs())

	f, err := l.Float("alpha")
	require.NoError(t, err)
	assert.Equal(t, float32(0.25), f)

	i, err := l.Int("axis")
	require.NoError(t, err)
	assert.Equal(t, int64(2), i)

	ints, err := l.Ints("kernel_shape")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 3}, ints)

	s, err := l.String("mode")
	require.NoError(t, err)
	assert.Equal(t, "nearest", s)
}

func TestMissingRequiredReturnsAttributeNotFound(t *testing.T) {
	l := attr.NewList(sampleAttrs())
	_, err := l.Float("beta")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "beta")
}

func TestOrFallbacks(t *testing.T) {
	l := attr.NewList(sampleAttrs())
	assert.Equal(t, float32(0.25), l.FloatOr("alpha", 9))
	assert.Equal(t, float32(9), l.FloatOr("missing", 9))
	assert.Equal(t, int64(2), l.IntOr("axis", 0))
	assert.Equal(t, int64(0), l.IntOr("missing", 0))
}

func TestHas(t *testing.T) {
	l := attr.NewList(sampleAttrs())
	assert.True(t, l.Has("alpha"))
	assert.False(t, l.Has("beta"))
}

func TestDuplicateNameLastWins(t *testing.T) {
	l := attr.NewList([]*onnxproto.AttributeProto{
		{Name: "alpha", F: 0.1},
		{Name: "alpha", F: 0.9},
	})
	assert.Equal(t, float32(0.9), l.FloatOr("alpha", 0))
}
