package flatbuffers

import (
	"encoding/binary"
	"math"
)

type (
	// A SOffsetT stores a signed offset into arbitrary data.
	SOffsetT int32
	// A UOffsetT stores an unsigned offset into vector data.
	UOffsetT uint32
	// A VOffsetT stores an unsigned offset in a vtable.
	VOffsetT uint16
)

// Scalar lists the fixed-width types that can be stored inline.
type Scalar interface {
	bool | int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 | float32 | float64
}

var le = binary.LittleEndian

// GetByte decodes a little-endian byte from a byte slice.
func GetByte(buf []byte) byte { return buf[0] }

// GetBool decodes a little-endian bool from a byte slice.
func GetBool(buf []byte) bool { return buf[0] != 0 }

// GetUint8 decodes a little-endian uint8 from a byte slice.
func GetUint8(buf []byte) uint8 { return buf[0] }

// GetUint16 decodes a little-endian uint16 from a byte slice.
func GetUint16(buf []byte) uint16 { return le.Uint16(buf) }

// GetUint32 decodes a little-endian uint32 from a byte slice.
func GetUint32(buf []byte) uint32 { return le.Uint32(buf) }

// GetUint64 decodes a little-endian uint64 from a byte slice.
func GetUint64(buf []byte) uint64 { return le.Uint64(buf) }

// GetInt8 decodes a little-endian int8 from a byte slice.
func GetInt8(buf []byte) int8 { return int8(buf[0]) }

// GetInt16 decodes a little-endian int16 from a byte slice.
func GetInt16(buf []byte) int16 { return int16(le.Uint16(buf)) }

// GetInt32 decodes a little-endian int32 from a byte slice.
func GetInt32(buf []byte) int32 { return int32(le.Uint32(buf)) }

// GetInt64 decodes a little-endian int64 from a byte slice.
func GetInt64(buf []byte) int64 { return int64(le.Uint64(buf)) }

// GetFloat32 decodes a little-endian float32 from a byte slice.
func GetFloat32(buf []byte) float32 { return math.Float32frombits(le.Uint32(buf)) }

// GetFloat64 decodes a little-endian float64 from a byte slice.
func GetFloat64(buf []byte) float64 { return math.Float64frombits(le.Uint64(buf)) }

// GetUOffsetT decodes a little-endian UOffsetT from a byte slice.
func GetUOffsetT(buf []byte) UOffsetT { return UOffsetT(le.Uint32(buf)) }

// GetSOffsetT decodes a little-endian SOffsetT from a byte slice.
func GetSOffsetT(buf []byte) SOffsetT { return SOffsetT(le.Uint32(buf)) }

// GetVOffsetT decodes a little-endian VOffsetT from a byte slice.
func GetVOffsetT(buf []byte) VOffsetT { return VOffsetT(le.Uint16(buf)) }

// WriteByte encodes a little-endian byte into a byte slice.
func WriteByte(buf []byte, n byte) { buf[0] = n }

// WriteBool encodes a little-endian bool into a byte slice.
func WriteBool(buf []byte, b bool) {
	buf[0] = 0
	if b {
		buf[0] = 1
	}
}

// WriteUint8 encodes a little-endian uint8 into a byte slice.
func WriteUint8(buf []byte, n uint8) { buf[0] = n }

// WriteUint16 encodes a little-endian uint16 into a byte slice.
func WriteUint16(buf []byte, n uint16) { le.PutUint16(buf, n) }

// WriteUint32 encodes a little-endian uint32 into a byte slice.
func WriteUint32(buf []byte, n uint32) { le.PutUint32(buf, n) }

// WriteUint64 encodes a little-endian uint64 into a byte slice.
func WriteUint64(buf []byte, n uint64) { le.PutUint64(buf, n) }

// WriteInt8 encodes a little-endian int8 into a byte slice.
func WriteInt8(buf []byte, n int8) { buf[0] = byte(n) }

// WriteInt16 encodes a little-endian int16 into a byte slice.
func WriteInt16(buf []byte, n int16) { le.PutUint16(buf, uint16(n)) }

// WriteInt32 encodes a little-endian int32 into a byte slice.
func WriteInt32(buf []byte, n int32) { le.PutUint32(buf, uint32(n)) }

// WriteInt64 encodes a little-endian int64 into a byte slice.
func WriteInt64(buf []byte, n int64) { le.PutUint64(buf, uint64(n)) }

// WriteFloat32 encodes a little-endian float32 into a byte slice.
func WriteFloat32(buf []byte, n float32) { le.PutUint32(buf, math.Float32bits(n)) }

// WriteFloat64 encodes a little-endian float64 into a byte slice.
func WriteFloat64(buf []byte, n float64) { le.PutUint64(buf, math.Float64bits(n)) }

// WriteVOffsetT encodes a little-endian VOffsetT into a byte slice.
func WriteVOffsetT(buf []byte, n VOffsetT) { le.PutUint16(buf, uint16(n)) }

// WriteSOffsetT encodes a little-endian SOffsetT into a byte slice.
func WriteSOffsetT(buf []byte, n SOffsetT) { le.PutUint32(buf, uint32(n)) }

// WriteUOffsetT encodes a little-endian UOffsetT into a byte slice.
func WriteUOffsetT(buf []byte, n UOffsetT) { le.PutUint32(buf, uint32(n)) }

// SizeOf returns the encoded width of T. For every scalar the width is
// also its alignment.
func SizeOf[T Scalar]() int {
	var zero T
	switch any(zero).(type) {
	case bool, int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32, float32:
		return 4
	default:
		return 8
	}
}

// GetScalar decodes a T from the front of buf.
func GetScalar[T Scalar](buf []byte) T {
	var v T
	switch p := any(&v).(type) {
	case *bool:
		*p = GetBool(buf)
	case *int8:
		*p = GetInt8(buf)
	case *uint8:
		*p = GetUint8(buf)
	case *int16:
		*p = GetInt16(buf)
	case *uint16:
		*p = GetUint16(buf)
	case *int32:
		*p = GetInt32(buf)
	case *uint32:
		*p = GetUint32(buf)
	case *int64:
		*p = GetInt64(buf)
	case *uint64:
		*p = GetUint64(buf)
	case *float32:
		*p = GetFloat32(buf)
	case *float64:
		*p = GetFloat64(buf)
	}
	return v
}

// WriteScalar encodes x at the front of buf.
func WriteScalar[T Scalar](buf []byte, x T) {
	switch v := any(x).(type) {
	case bool:
		WriteBool(buf, v)
	case int8:
		WriteInt8(buf, v)
	case uint8:
		WriteUint8(buf, v)
	case int16:
		WriteInt16(buf, v)
	case uint16:
		WriteUint16(buf, v)
	case int32:
		WriteInt32(buf, v)
	case uint32:
		WriteUint32(buf, v)
	case int64:
		WriteInt64(buf, v)
	case uint64:
		WriteUint64(buf, v)
	case float32:
		WriteFloat32(buf, v)
	case float64:
		WriteFloat64(buf, v)
	}
}

// scalarTypeName names T in verifier errors.
func scalarTypeName[T Scalar]() string {
	var zero T
	switch any(zero).(type) {
	case bool:
		return "bool"
	case int8:
		return "int8"
	case uint8:
		return "uint8"
	case int16:
		return "int16"
	case uint16:
		return "uint16"
	case int32:
		return "int32"
	case uint32:
		return "uint32"
	case int64:
		return "int64"
	case uint64:
		return "uint64"
	case float32:
		return "float32"
	default:
		return "float64"
	}
}
