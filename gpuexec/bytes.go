package gpuexec

import (
	"encoding/binary"
	"math"
)

// Tensor byte encoding is little-endian throughout, matching the ONNX
// raw_data convention and the GPU API's native buffer layout.

func putF32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

func getF32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func putF64(b []byte, v float64) {
	binary.LittleEndian.PutUint64(b, math.Float64bits(v))
}

func getF64(b []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}

func putI64(b []byte, v int64) {
	binary.LittleEndian.PutUint64(b, uint64(v))
}

func getI64(b []byte) int64 {
	return int64(binary.LittleEndian.Uint64(b))
}
