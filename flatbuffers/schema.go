package flatbuffers

import (
	"fmt"
)

// FieldType is the wire type of a field described by a FieldDescriptor.
type FieldType uint8

const (
	TypeNone FieldType = iota
	TypeBool
	TypeInt8
	TypeUint8
	TypeInt16
	TypeUint16
	TypeInt32
	TypeUint32
	TypeInt64
	TypeUint64
	TypeFloat32
	TypeFloat64
	TypeString
	TypeVector
	TypeTable
	TypeStruct
	TypeUnion
	TypeUType
)

var fieldTypeNames = [...]string{
	TypeNone: "none", TypeBool: "bool", TypeInt8: "int8", TypeUint8: "uint8",
	TypeInt16: "int16", TypeUint16: "uint16", TypeInt32: "int32", TypeUint32: "uint32",
	TypeInt64: "int64", TypeUint64: "uint64", TypeFloat32: "float32", TypeFloat64: "float64",
	TypeString: "string", TypeVector: "vector", TypeTable: "table", TypeStruct: "struct",
	TypeUnion: "union", TypeUType: "utype",
}

func (t FieldType) String() string {
	if int(t) < len(fieldTypeNames) {
		return fieldTypeNames[t]
	}
	return fmt.Sprintf("FieldType(%d)", uint8(t))
}

// TableDescriptor describes the fields of a table type, for verifying
// buffers without generated code.
type TableDescriptor struct {
	Name   string
	Fields []FieldDescriptor
}

// FieldDescriptor describes one table field.
type FieldDescriptor struct {
	Name     string
	Slot     VOffsetT // vtable offset, see FieldIndexToOffset
	Type     FieldType
	Required bool

	// Elem is the element type of a TypeVector field.
	Elem FieldType
	// Table describes TypeTable fields and vectors of tables.
	Table *TableDescriptor
	// StructSize and StructAlign describe TypeStruct fields and vectors of
	// structs.
	StructSize  int
	StructAlign int
	// Union describes a TypeUnion field. Its discriminant lives in the
	// TypeUType field at Union.KeySlot.
	Union *UnionDescriptor
	// Nested, on a [ubyte] vector, is the root table of the buffer the
	// vector holds.
	Nested *TableDescriptor
}

// UnionDescriptor lists the table variants of a union.
type UnionDescriptor struct {
	Name     string
	KeySlot  VOffsetT
	Variants map[uint8]UnionVariant
}

// UnionVariant is one member of a union.
type UnionVariant struct {
	Name  string
	Table *TableDescriptor
}

// Verifier returns a VerifyFunc that checks a table laid out as d
// describes. It runs the same checks, in the same order, as generated
// verifiers.
func (d *TableDescriptor) Verifier() VerifyFunc {
	return func(v *Verifier, pos UOffsetT) error {
		return v.VisitTable(pos, d.verifyFields)
	}
}

func (d *TableDescriptor) verifyFields(tv *TableVerifier) error {
	for i := range d.Fields {
		f := &d.Fields[i]
		var err error
		switch f.Type {
		case TypeUType:
			// checked together with its TypeUnion field
		case TypeUnion:
			err = tv.VisitUnion(f.Name+"_type", f.Union.KeySlot, f.Name, f.Slot, f.Required, f.Union.verify)
		default:
			err = tv.VisitField(f.Name, f.Slot, f.verifyFunc(), f.Required)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (u *UnionDescriptor) verify(v *Verifier, key uint8, pos UOffsetT) error {
	variant, ok := u.Variants[key]
	if !ok {
		return NewUnknownUnionVariantError(u.Name, key, pos)
	}
	return v.VerifyUnionVariant(variant.Name, pos, Forward(variant.Table.Verifier()))
}

func (f *FieldDescriptor) verifyFunc() VerifyFunc {
	switch f.Type {
	case TypeString:
		return Forward((*Verifier).VerifyString)
	case TypeTable:
		return Forward(f.Table.Verifier())
	case TypeStruct:
		size, align := f.StructSize, f.StructAlign
		return func(v *Verifier, pos UOffsetT) error {
			return v.VerifyStruct(pos, size, align)
		}
	case TypeVector:
		return Forward(f.vectorFunc())
	default:
		return scalarVerifyFunc(f.Type)
	}
}

func (f *FieldDescriptor) vectorFunc() VerifyFunc {
	if f.Nested != nil {
		root := f.Nested.Verifier()
		return func(v *Verifier, pos UOffsetT) error {
			return v.VerifyNestedFlatbuffer(pos, root)
		}
	}
	switch f.Elem {
	case TypeString:
		return func(v *Verifier, pos UOffsetT) error {
			return v.VerifyVectorOfOffsets(pos, (*Verifier).VerifyString)
		}
	case TypeTable:
		elem := f.Table.Verifier()
		return func(v *Verifier, pos UOffsetT) error {
			return v.VerifyVectorOfOffsets(pos, elem)
		}
	case TypeStruct:
		size, align := f.StructSize, f.StructAlign
		return func(v *Verifier, pos UOffsetT) error {
			return v.VerifyStructVector(pos, size, align)
		}
	case TypeBool:
		return VerifyScalarVector[bool]
	case TypeInt8:
		return VerifyScalarVector[int8]
	case TypeUint8, TypeUType:
		return VerifyScalarVector[uint8]
	case TypeInt16:
		return VerifyScalarVector[int16]
	case TypeUint16:
		return VerifyScalarVector[uint16]
	case TypeInt32:
		return VerifyScalarVector[int32]
	case TypeUint32:
		return VerifyScalarVector[uint32]
	case TypeInt64:
		return VerifyScalarVector[int64]
	case TypeUint64:
		return VerifyScalarVector[uint64]
	case TypeFloat32:
		return VerifyScalarVector[float32]
	case TypeFloat64:
		return VerifyScalarVector[float64]
	}
	panic(fmt.Sprintf("flatbuffers: field %s: unsupported vector element type %s", f.Name, f.Elem))
}

func scalarVerifyFunc(t FieldType) VerifyFunc {
	switch t {
	case TypeBool:
		return VerifyScalar[bool]
	case TypeInt8:
		return VerifyScalar[int8]
	case TypeUint8:
		return VerifyScalar[uint8]
	case TypeInt16:
		return VerifyScalar[int16]
	case TypeUint16:
		return VerifyScalar[uint16]
	case TypeInt32:
		return VerifyScalar[int32]
	case TypeUint32:
		return VerifyScalar[uint32]
	case TypeInt64:
		return VerifyScalar[int64]
	case TypeUint64:
		return VerifyScalar[uint64]
	case TypeFloat32:
		return VerifyScalar[float32]
	case TypeFloat64:
		return VerifyScalar[float64]
	}
	panic(fmt.Sprintf("flatbuffers: unsupported field type %s", t))
}
