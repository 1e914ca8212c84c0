package flatbuffers

import (
	"unicode/utf8"
)

// VerifyFunc verifies the object at pos. Generated code supplies one per
// table type (see MonsterVerify in internal/mygame); TableDescriptor
// builds them from a schema description.
type VerifyFunc func(v *Verifier, pos UOffsetT) error

// Verifier walks an untrusted buffer and checks every offset, range and
// alignment before anything is read through a Table or Vector view.
//
// A Verifier is good for one pass: depth, table count and apparent size
// accumulate across calls until Reset.
type Verifier struct {
	buf  []byte
	opts VerifierOptions

	depth        int
	numTables    int
	apparentSize int64
}

// NewVerifier returns a Verifier for buf.
func NewVerifier(buf []byte, opts VerifierOptions) *Verifier {
	return &Verifier{buf: buf, opts: opts}
}

// Reset clears the counters so the Verifier can check buf again.
func (v *Verifier) Reset() {
	v.depth = 0
	v.numTables = 0
	v.apparentSize = 0
}

// Bytes returns the buffer under verification.
func (v *Verifier) Bytes() []byte { return v.buf }

// Options returns the limits the Verifier enforces.
func (v *Verifier) Options() VerifierOptions { return v.opts }

// NumTables returns the number of tables visited so far.
func (v *Verifier) NumTables() int { return v.numTables }

// ApparentSize returns the sum of all ranges checked so far.
func (v *Verifier) ApparentSize() int64 { return v.apparentSize }

// InBuffer checks that [pos, pos+size) lies inside the buffer and charges
// size to the apparent size budget.
func (v *Verifier) InBuffer(pos UOffsetT, size int) error {
	end := uint64(pos) + uint64(size)
	if size < 0 || end > uint64(len(v.buf)) {
		return &VerifyError{Kind: KindRangeOutOfBounds, Pos: pos, End: end}
	}
	v.apparentSize += int64(size)
	if v.apparentSize > v.opts.MaxApparentSize {
		return ErrApparentSizeTooLarge
	}
	return nil
}

// IsAligned checks that pos is a multiple of align, which must be a power
// of two.
func (v *Verifier) IsAligned(pos UOffsetT, align int) error {
	return v.isAligned(pos, align, "")
}

func (v *Verifier) isAligned(pos UOffsetT, align int, typ string) error {
	if align > 1 && pos&UOffsetT(align-1) != 0 {
		return &VerifyError{Kind: KindUnaligned, Pos: pos, Name: typ}
	}
	return nil
}

// VerifyScalar checks that a T can be read at pos.
func VerifyScalar[T Scalar](v *Verifier, pos UOffsetT) error {
	sz := SizeOf[T]()
	if err := v.isAligned(pos, sz, scalarTypeName[T]()); err != nil {
		return err
	}
	return v.InBuffer(pos, sz)
}

// DerefUOffset checks the forward offset at pos and returns its target.
func (v *Verifier) DerefUOffset(pos UOffsetT) (UOffsetT, error) {
	if err := VerifyScalar[uint32](v, pos); err != nil {
		return 0, err
	}
	target := uint64(pos) + uint64(GetUOffsetT(v.buf[pos:]))
	if target >= uint64(len(v.buf)) {
		return 0, &VerifyError{Kind: KindRangeOutOfBounds, Pos: pos, End: target}
	}
	return UOffsetT(target), nil
}

// ForwardOffset follows the offset at pos and verifies its target with
// next.
func (v *Verifier) ForwardOffset(pos UOffsetT, next VerifyFunc) error {
	target, err := v.DerefUOffset(pos)
	if err != nil {
		return err
	}
	return next(v, target)
}

// Forward adapts next into a VerifyFunc for a field that holds an offset
// to the object next checks.
func Forward(next VerifyFunc) VerifyFunc {
	return func(v *Verifier, pos UOffsetT) error {
		return v.ForwardOffset(pos, next)
	}
}

// derefSOffset checks the table at pos and returns its vtable position.
func (v *Verifier) derefSOffset(pos UOffsetT) (UOffsetT, error) {
	if err := VerifyScalar[int32](v, pos); err != nil {
		return 0, err
	}
	soff := GetSOffsetT(v.buf[pos:])
	target := int64(pos) - int64(soff)
	if target < 0 || target >= int64(len(v.buf)) {
		return 0, &VerifyError{Kind: KindSignedOffsetOutOfBounds, Pos: pos, Value: int64(soff)}
	}
	return UOffsetT(target), nil
}

// verifyVectorRange checks the length prefix at pos and the element
// storage that follows it. It returns the first element and the count.
func (v *Verifier) verifyVectorRange(pos UOffsetT, elemSize, align int, typ string) (UOffsetT, int, error) {
	if err := VerifyScalar[uint32](v, pos); err != nil {
		return 0, 0, err
	}
	n := GetUOffsetT(v.buf[pos:])
	start := pos + UOffsetT(SizeUOffsetT)
	if err := v.isAligned(start, align, typ); err != nil {
		return 0, 0, err
	}
	size := uint64(n) * uint64(elemSize)
	if size > uint64(len(v.buf)) {
		return 0, 0, &VerifyError{Kind: KindRangeOutOfBounds, Pos: start, End: uint64(start) + size}
	}
	if err := v.InBuffer(start, int(size)); err != nil {
		return 0, 0, err
	}
	return start, int(n), nil
}

// VerifyString checks the string whose length prefix is at pos: the bytes
// must be in range, valid UTF-8 and, unless the options say otherwise,
// followed by a NUL.
func (v *Verifier) VerifyString(pos UOffsetT) error {
	start, n, err := v.verifyVectorRange(pos, SizeByte, 1, "string")
	if err != nil {
		return err
	}
	end := start + UOffsetT(n)
	if !utf8.Valid(v.buf[start:end]) {
		return &VerifyError{Kind: KindUtf8, Pos: start, End: uint64(end)}
	}
	if !v.opts.IgnoreMissingNullTerminator {
		if int(end) >= len(v.buf) || v.buf[end] != 0 {
			return &VerifyError{Kind: KindMissingNullTerminator, Pos: start, End: uint64(end)}
		}
	}
	return nil
}

// VerifyScalarVector checks a vector of T whose length prefix is at pos.
func VerifyScalarVector[T Scalar](v *Verifier, pos UOffsetT) error {
	sz := SizeOf[T]()
	_, _, err := v.verifyVectorRange(pos, sz, sz, scalarTypeName[T]())
	return err
}

// VerifyStructVector checks a vector of inline structs.
func (v *Verifier) VerifyStructVector(pos UOffsetT, size, align int) error {
	_, _, err := v.verifyVectorRange(pos, size, align, "struct")
	return err
}

// VerifyVectorOfOffsets checks a vector of offsets and verifies each
// element's target with elem. A failing element adds its index to the
// trace.
func (v *Verifier) VerifyVectorOfOffsets(pos UOffsetT, elem VerifyFunc) error {
	start, n, err := v.verifyVectorRange(pos, SizeUOffsetT, SizeUOffsetT, "UOffsetT")
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		elemPos := start + UOffsetT(i*SizeUOffsetT)
		if err := v.ForwardOffset(elemPos, elem); err != nil {
			return withTrace(err, TraceFrame{Kind: TraceVectorElement, Index: i, Pos: elemPos})
		}
	}
	return nil
}

// VerifyStruct checks an inline struct of the given size and alignment.
func (v *Verifier) VerifyStruct(pos UOffsetT, size, align int) error {
	if err := v.isAligned(pos, align, "struct"); err != nil {
		return err
	}
	return v.InBuffer(pos, size)
}

// VerifyNestedFlatbuffer checks a [ubyte] vector at pos that holds a
// complete buffer with the given root. An empty vector is accepted. The
// nested pass shares this Verifier's limits and counters.
func (v *Verifier) VerifyNestedFlatbuffer(pos UOffsetT, root VerifyFunc) error {
	start, n, err := v.verifyVectorRange(pos, SizeByte, 1, "uint8")
	if err != nil || n == 0 {
		return err
	}
	child := v.child(v.buf[start : start+UOffsetT(n)])
	err = child.VerifyRoot(root)
	v.absorb(child)
	return err
}

func (v *Verifier) child(buf []byte) *Verifier {
	return &Verifier{
		buf:          buf,
		opts:         v.opts,
		depth:        v.depth,
		numTables:    v.numTables,
		apparentSize: v.apparentSize,
	}
}

func (v *Verifier) absorb(c *Verifier) {
	v.numTables = c.numTables
	v.apparentSize = c.apparentSize
}

// VisitTable checks the table at pos and its vtable, counts it against the
// table and depth limits, and hands a TableVerifier to fn for the fields.
// The depth is restored however fn returns.
func (v *Verifier) VisitTable(pos UOffsetT, fn func(tv *TableVerifier) error) error {
	vtable, err := v.derefSOffset(pos)
	if err != nil {
		return err
	}
	if err := VerifyScalar[uint16](v, vtable); err != nil {
		return err
	}
	vtableLen := GetVOffsetT(v.buf[vtable:])
	if err := v.isAligned(vtable+UOffsetT(vtableLen), SizeVOffsetT, "VOffsetT"); err != nil {
		return err
	}
	if err := v.InBuffer(vtable, int(vtableLen)); err != nil {
		return err
	}

	v.numTables++
	if v.numTables > v.opts.MaxTables {
		return ErrTooManyTables
	}
	v.depth++
	defer func() { v.depth-- }()
	if v.depth > v.opts.MaxDepth {
		return ErrDepthLimitReached
	}

	tv := TableVerifier{v: v, pos: pos, vtable: vtable, vtableLen: vtableLen}
	return fn(&tv)
}

// VerifyUnionVariant verifies a union value with fn and names the variant
// in the trace on failure.
func (v *Verifier) VerifyUnionVariant(name string, pos UOffsetT, fn VerifyFunc) error {
	if err := fn(v, pos); err != nil {
		return withTrace(err, TraceFrame{Kind: TraceUnionVariant, Name: name, Pos: pos})
	}
	return nil
}

// VerifyRoot verifies the buffer's root table with root.
func (v *Verifier) VerifyRoot(root VerifyFunc) error {
	return v.ForwardOffset(0, root)
}

// VerifyWithIdentifier checks the file identifier that follows the root
// offset, then verifies the root.
func (v *Verifier) VerifyWithIdentifier(fid string, root VerifyFunc) error {
	if err := v.verifyIdentifier(SizeUOffsetT, fid); err != nil {
		return err
	}
	return v.VerifyRoot(root)
}

func (v *Verifier) verifyIdentifier(pos UOffsetT, fid string) error {
	if len(fid) != FileIdentifierLength {
		panic("incorrect file identifier length")
	}
	if err := v.InBuffer(pos, FileIdentifierLength); err != nil {
		return err
	}
	if string(v.buf[pos:pos+FileIdentifierLength]) != fid {
		return &VerifyError{Kind: KindFileIdentifierMismatch, Pos: pos, Name: fid}
	}
	return nil
}

// VerifySizePrefixedRoot checks the 4-byte size prefix, then verifies the
// root of the buffer it encloses. An empty fid skips the identifier check.
// Bytes past the declared size are ignored.
func (v *Verifier) VerifySizePrefixedRoot(fid string, root VerifyFunc) error {
	if err := VerifyScalar[uint32](v, 0); err != nil {
		return err
	}
	end := uint64(SizePrefixLength) + uint64(GetUint32(v.buf))
	if end > uint64(len(v.buf)) {
		return &VerifyError{Kind: KindRangeOutOfBounds, Pos: SizePrefixLength, End: end}
	}

	child := v.child(v.buf[:end])
	defer v.absorb(child)
	if fid != "" {
		if err := child.verifyIdentifier(SkipRootOffset(SizePrefixLength), fid); err != nil {
			return err
		}
	}
	return child.ForwardOffset(SizePrefixLength, root)
}

// TableVerifier verifies the fields of one table. It is only valid inside
// the callback passed to VisitTable.
type TableVerifier struct {
	v         *Verifier
	pos       UOffsetT
	vtable    UOffsetT
	vtableLen VOffsetT
}

// Pos returns the table's position.
func (tv *TableVerifier) Pos() UOffsetT { return tv.pos }

// Verifier returns the Verifier driving this table.
func (tv *TableVerifier) Verifier() *Verifier { return tv.v }

// deref returns the absolute position of the field at vtable offset
// field, if the vtable has a non-zero entry for it.
func (tv *TableVerifier) deref(field VOffsetT) (UOffsetT, bool) {
	if int(field)+SizeVOffsetT > int(tv.vtableLen) {
		return 0, false
	}
	off := GetVOffsetT(tv.v.buf[tv.vtable+UOffsetT(field):])
	if off == 0 {
		return 0, false
	}
	return tv.pos + UOffsetT(off), true
}

// VisitField verifies the field at vtable offset field with fn. An absent
// field fails only when it is required.
func (tv *TableVerifier) VisitField(name string, field VOffsetT, fn VerifyFunc, required bool) error {
	pos, ok := tv.deref(field)
	if !ok {
		if required {
			return &VerifyError{Kind: KindMissingRequiredField, Name: name, Pos: tv.pos}
		}
		return nil
	}
	if err := fn(tv.v, pos); err != nil {
		return withTrace(err, TraceFrame{Kind: TraceTableField, Name: name, Pos: pos})
	}
	return nil
}

// UnionVerifyFunc verifies a union value. key is the discriminant and pos
// the position of the value's offset.
type UnionVerifyFunc func(v *Verifier, key uint8, pos UOffsetT) error

// VisitUnion verifies a union stored as a uint8 discriminant field and an
// offset field. Exactly one of the two being present is an error, except
// for an explicitly written NONE (0) discriminant with no value.
func (tv *TableVerifier) VisitUnion(keyName string, keyField VOffsetT, valName string, valField VOffsetT, required bool, fn UnionVerifyFunc) error {
	keyPos, hasKey := tv.deref(keyField)
	valPos, hasVal := tv.deref(valField)

	if !hasKey && !hasVal {
		if required {
			return &VerifyError{Kind: KindMissingRequiredField, Name: valName, Pos: tv.pos}
		}
		return nil
	}
	if hasKey {
		if err := VerifyScalar[uint8](tv.v, keyPos); err != nil {
			return withTrace(err, TraceFrame{Kind: TraceTableField, Name: keyName, Pos: keyPos})
		}
	}
	if hasKey != hasVal {
		if hasKey && !hasVal && tv.v.buf[keyPos] == 0 && !required {
			return nil
		}
		return &VerifyError{Kind: KindInconsistentUnion, Name: valName, Pos: tv.pos}
	}

	key := GetUint8(tv.v.buf[keyPos:])
	if err := fn(tv.v, key, valPos); err != nil {
		return withTrace(err, TraceFrame{Kind: TraceTableField, Name: valName, Pos: valPos})
	}
	return nil
}
