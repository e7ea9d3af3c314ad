package embedding

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Vectors are persisted as raw little-endian float64 bytes, matching the
// BYTEA column in the resources table.

// EncodeVector serializes a vector for storage.
func EncodeVector(vec []float64) []byte {
	buf := make([]byte, 8*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return buf
}

// DecodeVector deserializes a stored vector.
func DecodeVector(data []byte) ([]float64, error) {
	if len(data)%8 != 0 {
		return nil, fmt.Errorf("embedding: malformed vector of %d bytes", len(data))
	}
	vec := make([]float64, len(data)/8)
	for i := range vec {
		vec[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[i*8:]))
	}
	return vec, nil
}
