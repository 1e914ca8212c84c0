package flatbuffers

import (
	"fmt"
	"iter"

	"golang.org/x/xerrors"
)

// ErrIndexOutOfRange is returned by Vector.Get for an index outside
// [0, Len()).
var ErrIndexOutOfRange = xerrors.New("flatbuffers: vector index out of range")

// Vector is a zero-copy view of a vector stored in a buffer. Elements are
// decoded on access; nothing is copied up front.
//
// A Vector is only as safe as its buffer: build views over buffers that
// came from a Builder or passed the Verifier.
type Vector[T any] struct {
	buf    []byte
	start  UOffsetT // first element
	n      int
	width  UOffsetT
	decode func(buf []byte, pos UOffsetT) T
}

func newVector[T any](buf []byte, pos UOffsetT, width int, decode func([]byte, UOffsetT) T) Vector[T] {
	return Vector[T]{
		buf:    buf,
		start:  pos + UOffsetT(SizeUOffsetT),
		n:      int(GetUOffsetT(buf[pos:])),
		width:  UOffsetT(width),
		decode: decode,
	}
}

// ScalarVector views the vector of T whose length prefix is at pos.
func ScalarVector[T Scalar](buf []byte, pos UOffsetT) Vector[T] {
	return newVector(buf, pos, SizeOf[T](), func(b []byte, p UOffsetT) T {
		return GetScalar[T](b[p:])
	})
}

// ByteVectorView views a [ubyte] vector.
func ByteVectorView(buf []byte, pos UOffsetT) Vector[byte] {
	return ScalarVector[byte](buf, pos)
}

// StringVector views a vector of strings.
func StringVector(buf []byte, pos UOffsetT) Vector[string] {
	return newVector(buf, pos, SizeUOffsetT, func(b []byte, p UOffsetT) string {
		t := Table{Bytes: b}
		return t.String(p)
	})
}

// TableVector views a vector of tables.
func TableVector(buf []byte, pos UOffsetT) Vector[Table] {
	return newVector(buf, pos, SizeUOffsetT, func(b []byte, p UOffsetT) Table {
		return Table{Bytes: b, Pos: FollowUOffset(b, p)}
	})
}

// StructVector views a vector of inline structs of the given size.
func StructVector(buf []byte, pos UOffsetT, size int) Vector[Struct] {
	return newVector(buf, pos, size, func(b []byte, p UOffsetT) Struct {
		return Struct{Table{Bytes: b, Pos: p}}
	})
}

// Len returns the number of elements.
func (v Vector[T]) Len() int { return v.n }

// At returns element i. It panics if i is out of range.
func (v Vector[T]) At(i int) T {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("flatbuffers: index %d out of range [0, %d)", i, v.n))
	}
	return v.decode(v.buf, v.start+UOffsetT(i)*v.width)
}

// Get is At without the panic.
func (v Vector[T]) Get(i int) (T, error) {
	if i < 0 || i >= v.n {
		var zero T
		return zero, xerrors.Errorf("flatbuffers: index %d of %d: %w", i, v.n, ErrIndexOutOfRange)
	}
	return v.decode(v.buf, v.start+UOffsetT(i)*v.width), nil
}

// All iterates over the elements front to back.
func (v Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(i, v.decode(v.buf, v.start+UOffsetT(i)*v.width)) {
				return
			}
		}
	}
}

// Backward iterates over the elements back to front.
func (v Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.n - 1; i >= 0; i-- {
			if !yield(i, v.decode(v.buf, v.start+UOffsetT(i)*v.width)) {
				return
			}
		}
	}
}

// Bytes returns the raw element storage.
func (v Vector[T]) Bytes() []byte {
	end := v.start + UOffsetT(v.n)*v.width
	return v.buf[v.start:end]
}

// VectorAt returns the position of the length prefix of the vector stored
// at vtable offset `slot`, and false when the field is absent.
func (t *Table) VectorAt(slot VOffsetT) (UOffsetT, bool) {
	pos, ok := t.Field(slot)
	if !ok {
		return 0, false
	}
	return FollowUOffset(t.Bytes, pos), true
}
