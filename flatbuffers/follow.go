package flatbuffers

import (
	"golang.org/x/xerrors"
)

// A buffer is read by composing a handful of moves: follow a forward
// offset, follow a table's signed offset back to its vtable, read a vtable
// entry, or skip one of the fixed-size root headers. Table and Vector
// accessors are built from these, and the Verifier checks each of them
// before it is taken.

// FollowUOffset returns the position referenced by the forward offset
// stored at pos.
func FollowUOffset(buf []byte, pos UOffsetT) UOffsetT {
	return pos + GetUOffsetT(buf[pos:])
}

// FollowSOffset returns the vtable position of the table stored at pos.
func FollowSOffset(buf []byte, pos UOffsetT) UOffsetT {
	return UOffsetT(SOffsetT(pos) - GetSOffsetT(buf[pos:]))
}

// FollowVOffset reads the vtable entry at pos.
func FollowVOffset(buf []byte, pos UOffsetT) VOffsetT {
	return GetVOffsetT(buf[pos:])
}

// SkipSizePrefix moves past a 4-byte length prefix.
func SkipSizePrefix(pos UOffsetT) UOffsetT { return pos + SizePrefixLength }

// SkipFileIdentifier moves past a 4-byte file identifier.
func SkipFileIdentifier(pos UOffsetT) UOffsetT { return pos + FileIdentifierLength }

// SkipRootOffset moves past the root table offset.
func SkipRootOffset(pos UOffsetT) UOffsetT { return pos + SizeUOffsetT }

// ErrOutOfRange is returned by the Try* readers when a read or an offset
// target falls outside the buffer.
var ErrOutOfRange = xerrors.New("flatbuffers: position out of range")

// TryGetScalar is GetScalar with a bounds check.
func TryGetScalar[T Scalar](buf []byte, pos UOffsetT) (T, error) {
	var zero T
	if uint64(pos)+uint64(SizeOf[T]()) > uint64(len(buf)) {
		return zero, xerrors.Errorf("flatbuffers: read %s at %d of %d bytes: %w",
			scalarTypeName[T](), pos, len(buf), ErrOutOfRange)
	}
	return GetScalar[T](buf[pos:]), nil
}

// TryFollowUOffset is FollowUOffset with bounds checks on both the offset
// and its target.
func TryFollowUOffset(buf []byte, pos UOffsetT) (UOffsetT, error) {
	off, err := TryGetScalar[uint32](buf, pos)
	if err != nil {
		return 0, err
	}
	target := uint64(pos) + uint64(off)
	if target >= uint64(len(buf)) {
		return 0, xerrors.Errorf("flatbuffers: offset at %d points to %d: %w", pos, target, ErrOutOfRange)
	}
	return UOffsetT(target), nil
}

// TryFollowSOffset is FollowSOffset with bounds checks on both the offset
// and the vtable it refers to.
func TryFollowSOffset(buf []byte, pos UOffsetT) (UOffsetT, error) {
	off, err := TryGetScalar[int32](buf, pos)
	if err != nil {
		return 0, err
	}
	target := int64(pos) - int64(off)
	if target < 0 || target >= int64(len(buf)) {
		return 0, xerrors.Errorf("flatbuffers: soffset at %d points to %d: %w", pos, target, ErrOutOfRange)
	}
	return UOffsetT(target), nil
}
