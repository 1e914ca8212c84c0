package flatbuffers

import (
	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

// GetRootAsTable returns the root table of a finished buffer whose root
// offset is at `offset`. It does not verify anything.
func GetRootAsTable(buf []byte, offset UOffsetT) Table {
	return Table{Bytes: buf, Pos: FollowUOffset(buf, offset)}
}

// GetSizePrefixedRootAsTable is GetRootAsTable for a size-prefixed buffer.
func GetSizePrefixedRootAsTable(buf []byte, offset UOffsetT) Table {
	pos := SkipSizePrefix(offset)
	return Table{Bytes: buf, Pos: FollowUOffset(buf, pos)}
}

// GetSizePrefix reads the size prefix at `offset`.
func GetSizePrefix(buf []byte, offset UOffsetT) uint32 {
	return GetUint32(buf[offset:])
}

// GetBufferIdentifier returns the file identifier of a buffer.
func GetBufferIdentifier(buf []byte, sizePrefixed bool) string {
	pos := SkipRootOffset(0)
	if sizePrefixed {
		pos = SkipSizePrefix(pos)
	}
	return string(buf[pos:SkipFileIdentifier(pos)])
}

// BufferHasIdentifier reports whether buf carries the file identifier id.
// Short buffers never do.
func BufferHasIdentifier(buf []byte, id string, sizePrefixed bool) bool {
	need := SizeUOffsetT + FileIdentifierLength
	if sizePrefixed {
		need += SizePrefixLength
	}
	if len(buf) < need {
		return false
	}
	return GetBufferIdentifier(buf, sizePrefixed) == id
}

// Root verifies buf with the default options and returns its root table.
func Root(buf []byte, root VerifyFunc) (Table, error) {
	return RootWithOptions(buf, DefaultVerifierOptions(), root)
}

// RootWithOptions verifies buf with opts and returns its root table.
func RootWithOptions(buf []byte, opts VerifierOptions, root VerifyFunc) (Table, error) {
	v := NewVerifier(buf, opts)
	if err := v.VerifyRoot(root); err != nil {
		logVerifyFailure(buf, err)
		return Table{}, err
	}
	return GetRootAsTable(buf, 0), nil
}

// RootWithIdentifier verifies buf, including its file identifier, and
// returns its root table.
func RootWithIdentifier(buf []byte, fid string, root VerifyFunc) (Table, error) {
	v := NewVerifier(buf, DefaultVerifierOptions())
	if err := v.VerifyWithIdentifier(fid, root); err != nil {
		logVerifyFailure(buf, err)
		return Table{}, err
	}
	return GetRootAsTable(buf, 0), nil
}

// SizePrefixedRoot verifies a size-prefixed buffer with the default
// options and returns its root table.
func SizePrefixedRoot(buf []byte, root VerifyFunc) (Table, error) {
	v := NewVerifier(buf, DefaultVerifierOptions())
	if err := v.VerifySizePrefixedRoot("", root); err != nil {
		logVerifyFailure(buf, err)
		return Table{}, xerrors.Errorf("flatbuffers: size-prefixed root: %w", err)
	}
	return GetSizePrefixedRootAsTable(buf, 0), nil
}

func logVerifyFailure(buf []byte, err error) {
	if ce := Logger().Check(zap.DebugLevel, "flatbuffers: verification failed"); ce != nil {
		ce.Write(zap.Int("len", len(buf)), zap.Bool("resource", IsResourceError(err)), zap.Error(err))
	}
}
