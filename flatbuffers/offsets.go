package flatbuffers

// WIP offsets record the used space of the Builder at the moment an object
// was written, i.e. its distance from the end of the buffer. They stay
// valid across growth because growth keeps the used suffix at the tail.
//
// The named types below carry no extra data. They only exist so that the
// compiler rejects, for example, passing a vector to EndTable.

// Offset is implemented by every finished object a Builder can point to.
type Offset interface {
	Value() UOffsetT
}

// UnfinishedTable marks a table between StartTable and EndTable.
type UnfinishedTable UOffsetT

// TableOffset points to a finished table.
type TableOffset UOffsetT

// VectorOffset points to a finished vector.
type VectorOffset UOffsetT

// StringOffset points to a finished string.
type StringOffset UOffsetT

// UnionOffset points to the payload of a union field.
type UnionOffset UOffsetT

func (o UnfinishedTable) Value() UOffsetT { return UOffsetT(o) }
func (o TableOffset) Value() UOffsetT     { return UOffsetT(o) }
func (o VectorOffset) Value() UOffsetT    { return UOffsetT(o) }
func (o StringOffset) Value() UOffsetT    { return UOffsetT(o) }
func (o UnionOffset) Value() UOffsetT     { return UOffsetT(o) }

// AsUnion reinterprets a table as a union payload.
func (o TableOffset) AsUnion() UnionOffset { return UnionOffset(o) }

// AsUnion reinterprets a vector as a union payload.
func (o VectorOffset) AsUnion() UnionOffset { return UnionOffset(o) }

// AsUnion reinterprets a string as a union payload.
func (o StringOffset) AsUnion() UnionOffset { return UnionOffset(o) }

// FieldIndexToOffset converts a schema field index to the byte offset of
// its entry in the vtable.
func FieldIndexToOffset(fieldIndex VOffsetT) VOffsetT {
	return (VtableMetadataFields + fieldIndex) * SizeVOffsetT
}

// fieldLoc records, for the table under construction, where a field was
// written and which vtable entry describes it.
type fieldLoc struct {
	off UOffsetT
	id  VOffsetT
}
