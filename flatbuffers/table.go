package flatbuffers

// Table wraps a byte slice and provides read access to its data.
//
// The variable `Pos` indicates the root of the FlatBuffers object therein.
//
// Pos 指向 table 的起始位置，开头 4B 是指向 vtable 的 SOffsetT（vtable = Pos - soffset）。
//
//	vtable:
//	+-------------------+-------------------+-------------------+-----+
//	| vtable length (2B)| object size (2B)  | field0 offset (2B)| ... |
//	+-------------------+-------------------+-------------------+-----+
//
//	object:
//	+-------------------+-------------------+-------------------+-----+
//	| soffset to vtable | data for field0   | data for field1   | ... |
//	+-------------------+-------------------+-------------------+-----+
//
// Accessors do not check bounds: only read buffers that came from a
// Builder or passed the Verifier.
type Table struct {
	Bytes []byte
	Pos   UOffsetT // Always < 1<<31.
}

// Offset provides access into the Table's vtable.
//
// Fields which are deprecated are ignored by checking against the vtable's length.
func (t *Table) Offset(vtableOffset VOffsetT) VOffsetT {
	vtable := FollowSOffset(t.Bytes, t.Pos)
	// vtable 之外的字段（新 schema 增加的字段）视为不存在，返回 0 由调用方取默认值。
	if vtableOffset < FollowVOffset(t.Bytes, vtable) {
		return FollowVOffset(t.Bytes, vtable+UOffsetT(vtableOffset))
	}
	return 0
}

// Field returns the absolute position of the field stored at vtable offset
// `slot`, and false when the field is absent.
func (t *Table) Field(slot VOffsetT) (UOffsetT, bool) {
	off := t.Offset(slot)
	if off == 0 {
		return 0, false
	}
	return t.Pos + UOffsetT(off), true
}

// Indirect retrieves the relative offset stored at `offset`.
func (t *Table) Indirect(off UOffsetT) UOffsetT {
	return FollowUOffset(t.Bytes, off)
}

// String gets a string from data stored inside the flatbuffer.
func (t *Table) String(off UOffsetT) string {
	return byteSliceToString(t.ByteVector(off))
}

// ByteVector gets a byte slice from data stored inside the flatbuffer.
func (t *Table) ByteVector(off UOffsetT) []byte {
	off = FollowUOffset(t.Bytes, off)
	start := off + UOffsetT(SizeUOffsetT)
	length := GetUOffsetT(t.Bytes[off:])
	return t.Bytes[start : start+length]
}

// VectorLen retrieves the length of the vector whose offset is stored at
// "off" in this object.
func (t *Table) VectorLen(off UOffsetT) int {
	off = FollowUOffset(t.Bytes, off+t.Pos)
	return int(GetUOffsetT(t.Bytes[off:]))
}

// Vector retrieves the start of data of the vector whose offset is stored
// at "off" in this object.
func (t *Table) Vector(off UOffsetT) UOffsetT {
	return FollowUOffset(t.Bytes, off+t.Pos) + UOffsetT(SizeUOffsetT)
}

// Union initializes any Table-derived type to point to the union at the given
// offset.
func (t *Table) Union(t2 *Table, off UOffsetT) {
	t2.Pos = FollowUOffset(t.Bytes, off+t.Pos)
	t2.Bytes = t.Bytes
}

// GetSlot retrieves the scalar at vtable offset `slot`, or `d` when the
// field is absent.
func GetSlot[T Scalar](t *Table, slot VOffsetT, d T) T {
	if pos, ok := t.Field(slot); ok {
		return GetScalar[T](t.Bytes[pos:])
	}
	return d
}

// MutateSlot overwrites the scalar at vtable offset `slot` in place. It
// returns false, leaving the buffer untouched, when the field is absent:
// a defaulted field has no storage to overwrite.
func MutateSlot[T Scalar](t *Table, slot VOffsetT, n T) bool {
	pos, ok := t.Field(slot)
	if !ok {
		return false
	}
	WriteScalar(t.Bytes[pos:], n)
	return true
}

// GetBool retrieves a bool at the given offset.
func (t *Table) GetBool(off UOffsetT) bool { return GetBool(t.Bytes[off:]) }

// GetByte retrieves a byte at the given offset.
func (t *Table) GetByte(off UOffsetT) byte { return GetByte(t.Bytes[off:]) }

// GetUint8 retrieves a uint8 at the given offset.
func (t *Table) GetUint8(off UOffsetT) uint8 { return GetUint8(t.Bytes[off:]) }

// GetUint16 retrieves a uint16 at the given offset.
func (t *Table) GetUint16(off UOffsetT) uint16 { return GetUint16(t.Bytes[off:]) }

// GetUint32 retrieves a uint32 at the given offset.
func (t *Table) GetUint32(off UOffsetT) uint32 { return GetUint32(t.Bytes[off:]) }

// GetUint64 retrieves a uint64 at the given offset.
func (t *Table) GetUint64(off UOffsetT) uint64 { return GetUint64(t.Bytes[off:]) }

// GetInt8 retrieves a int8 at the given offset.
func (t *Table) GetInt8(off UOffsetT) int8 { return GetInt8(t.Bytes[off:]) }

// GetInt16 retrieves a int16 at the given offset.
func (t *Table) GetInt16(off UOffsetT) int16 { return GetInt16(t.Bytes[off:]) }

// GetInt32 retrieves a int32 at the given offset.
func (t *Table) GetInt32(off UOffsetT) int32 { return GetInt32(t.Bytes[off:]) }

// GetInt64 retrieves a int64 at the given offset.
func (t *Table) GetInt64(off UOffsetT) int64 { return GetInt64(t.Bytes[off:]) }

// GetFloat32 retrieves a float32 at the given offset.
func (t *Table) GetFloat32(off UOffsetT) float32 { return GetFloat32(t.Bytes[off:]) }

// GetFloat64 retrieves a float64 at the given offset.
func (t *Table) GetFloat64(off UOffsetT) float64 { return GetFloat64(t.Bytes[off:]) }

// GetUOffsetT retrieves a UOffsetT at the given offset.
func (t *Table) GetUOffsetT(off UOffsetT) UOffsetT { return GetUOffsetT(t.Bytes[off:]) }

// GetVOffsetT retrieves a VOffsetT at the given offset.
func (t *Table) GetVOffsetT(off UOffsetT) VOffsetT { return GetVOffsetT(t.Bytes[off:]) }

// GetSOffsetT retrieves a SOffsetT at the given offset.
func (t *Table) GetSOffsetT(off UOffsetT) SOffsetT { return GetSOffsetT(t.Bytes[off:]) }

// GetBoolSlot retrieves the bool that the given vtable location
// points to. If the vtable value is zero, the default value `d`
// will be returned.
func (t *Table) GetBoolSlot(slot VOffsetT, d bool) bool { return GetSlot(t, slot, d) }

// GetByteSlot retrieves the byte that the given vtable location
// points to. If the vtable value is zero, the default value `d`
// will be returned.
func (t *Table) GetByteSlot(slot VOffsetT, d byte) byte { return GetSlot(t, slot, d) }

// GetInt8Slot retrieves the int8 that the given vtable location
// points to. If the vtable value is zero, the default value `d`
// will be returned.
func (t *Table) GetInt8Slot(slot VOffsetT, d int8) int8 { return GetSlot(t, slot, d) }

// GetUint8Slot retrieves the uint8 that the given vtable location
// points to. If the vtable value is zero, the default value `d`
// will be returned.
func (t *Table) GetUint8Slot(slot VOffsetT, d uint8) uint8 { return GetSlot(t, slot, d) }

// GetInt16Slot retrieves the int16 that the given vtable location
// points to. If the vtable value is zero, the default value `d`
// will be returned.
func (t *Table) GetInt16Slot(slot VOffsetT, d int16) int16 { return GetSlot(t, slot, d) }

// GetUint16Slot retrieves the uint16 that the given vtable location
// points to. If the vtable value is zero, the default value `d`
// will be returned.
func (t *Table) GetUint16Slot(slot VOffsetT, d uint16) uint16 { return GetSlot(t, slot, d) }

// GetInt32Slot retrieves the int32 that the given vtable location
// points to. If the vtable value is zero, the default value `d`
// will be returned.
func (t *Table) GetInt32Slot(slot VOffsetT, d int32) int32 { return GetSlot(t, slot, d) }

// GetUint32Slot retrieves the uint32 that the given vtable location
// points to. If the vtable value is zero, the default value `d`
// will be returned.
func (t *Table) GetUint32Slot(slot VOffsetT, d uint32) uint32 { return GetSlot(t, slot, d) }

// GetInt64Slot retrieves the int64 that the given vtable location
// points to. If the vtable value is zero, the default value `d`
// will be returned.
func (t *Table) GetInt64Slot(slot VOffsetT, d int64) int64 { return GetSlot(t, slot, d) }

// GetUint64Slot retrieves the uint64 that the given vtable location
// points to. If the vtable value is zero, the default value `d`
// will be returned.
func (t *Table) GetUint64Slot(slot VOffsetT, d uint64) uint64 { return GetSlot(t, slot, d) }

// GetFloat32Slot retrieves the float32 that the given vtable location
// points to. If the vtable value is zero, the default value `d`
// will be returned.
func (t *Table) GetFloat32Slot(slot VOffsetT, d float32) float32 { return GetSlot(t, slot, d) }

// GetFloat64Slot retrieves the float64 that the given vtable location
// points to. If the vtable value is zero, the default value `d`
// will be returned.
func (t *Table) GetFloat64Slot(slot VOffsetT, d float64) float64 { return GetSlot(t, slot, d) }

// GetVOffsetTSlot retrieves the VOffsetT that the given vtable location
// points to. If the vtable value is zero, the default value `d`
// will be returned.
func (t *Table) GetVOffsetTSlot(slot VOffsetT, d VOffsetT) VOffsetT {
	if off := t.Offset(slot); off != 0 {
		return off
	}
	return d
}

// MutateBool updates a bool at the given offset.
func (t *Table) MutateBool(off UOffsetT, n bool) bool { WriteBool(t.Bytes[off:], n); return true }

// MutateByte updates a byte at the given offset.
func (t *Table) MutateByte(off UOffsetT, n byte) bool { WriteByte(t.Bytes[off:], n); return true }

// MutateUint8 updates a uint8 at the given offset.
func (t *Table) MutateUint8(off UOffsetT, n uint8) bool { WriteUint8(t.Bytes[off:], n); return true }

// MutateUint16 updates a uint16 at the given offset.
func (t *Table) MutateUint16(off UOffsetT, n uint16) bool { WriteUint16(t.Bytes[off:], n); return true }

// MutateUint32 updates a uint32 at the given offset.
func (t *Table) MutateUint32(off UOffsetT, n uint32) bool { WriteUint32(t.Bytes[off:], n); return true }

// MutateUint64 updates a uint64 at the given offset.
func (t *Table) MutateUint64(off UOffsetT, n uint64) bool { WriteUint64(t.Bytes[off:], n); return true }

// MutateInt8 updates a int8 at the given offset.
func (t *Table) MutateInt8(off UOffsetT, n int8) bool { WriteInt8(t.Bytes[off:], n); return true }

// MutateInt16 updates a int16 at the given offset.
func (t *Table) MutateInt16(off UOffsetT, n int16) bool { WriteInt16(t.Bytes[off:], n); return true }

// MutateInt32 updates a int32 at the given offset.
func (t *Table) MutateInt32(off UOffsetT, n int32) bool { WriteInt32(t.Bytes[off:], n); return true }

// MutateInt64 updates a int64 at the given offset.
func (t *Table) MutateInt64(off UOffsetT, n int64) bool { WriteInt64(t.Bytes[off:], n); return true }

// MutateFloat32 updates a float32 at the given offset.
func (t *Table) MutateFloat32(off UOffsetT, n float32) bool {
	WriteFloat32(t.Bytes[off:], n)
	return true
}

// MutateFloat64 updates a float64 at the given offset.
func (t *Table) MutateFloat64(off UOffsetT, n float64) bool {
	WriteFloat64(t.Bytes[off:], n)
	return true
}

// MutateBoolSlot updates the bool at given vtable location
func (t *Table) MutateBoolSlot(slot VOffsetT, n bool) bool { return MutateSlot(t, slot, n) }

// MutateByteSlot updates the byte at given vtable location
func (t *Table) MutateByteSlot(slot VOffsetT, n byte) bool { return MutateSlot(t, slot, n) }

// MutateInt8Slot updates the int8 at given vtable location
func (t *Table) MutateInt8Slot(slot VOffsetT, n int8) bool { return MutateSlot(t, slot, n) }

// MutateUint8Slot updates the uint8 at given vtable location
func (t *Table) MutateUint8Slot(slot VOffsetT, n uint8) bool { return MutateSlot(t, slot, n) }

// MutateInt16Slot updates the int16 at given vtable location
func (t *Table) MutateInt16Slot(slot VOffsetT, n int16) bool { return MutateSlot(t, slot, n) }

// MutateUint16Slot updates the uint16 at given vtable location
func (t *Table) MutateUint16Slot(slot VOffsetT, n uint16) bool { return MutateSlot(t, slot, n) }

// MutateInt32Slot updates the int32 at given vtable location
func (t *Table) MutateInt32Slot(slot VOffsetT, n int32) bool { return MutateSlot(t, slot, n) }

// MutateUint32Slot updates the uint32 at given vtable location
func (t *Table) MutateUint32Slot(slot VOffsetT, n uint32) bool { return MutateSlot(t, slot, n) }

// MutateInt64Slot updates the int64 at given vtable location
func (t *Table) MutateInt64Slot(slot VOffsetT, n int64) bool { return MutateSlot(t, slot, n) }

// MutateUint64Slot updates the uint64 at given vtable location
func (t *Table) MutateUint64Slot(slot VOffsetT, n uint64) bool { return MutateSlot(t, slot, n) }

// MutateFloat32Slot updates the float32 at given vtable location
func (t *Table) MutateFloat32Slot(slot VOffsetT, n float32) bool { return MutateSlot(t, slot, n) }

// MutateFloat64Slot updates the float64 at given vtable location
func (t *Table) MutateFloat64Slot(slot VOffsetT, n float64) bool { return MutateSlot(t, slot, n) }

// Struct wraps a byte slice and provides read access to a fixed-layout
// struct stored inline at Pos. Structs have no vtable: every field lives
// at a constant offset from Pos.
type Struct struct {
	Table
}
