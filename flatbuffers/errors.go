package flatbuffers

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/xerrors"
)

// ErrorKind classifies a VerifyError.
type ErrorKind uint8

const (
	KindMissingRequiredField ErrorKind = iota + 1
	KindInconsistentUnion
	KindUnknownUnionVariant
	KindUtf8
	KindMissingNullTerminator
	KindUnaligned
	KindRangeOutOfBounds
	KindSignedOffsetOutOfBounds
	KindFileIdentifierMismatch
)

var kindNames = [...]string{
	KindMissingRequiredField:    "missing required field",
	KindInconsistentUnion:       "inconsistent union",
	KindUnknownUnionVariant:     "unknown union variant",
	KindUtf8:                    "invalid utf-8",
	KindMissingNullTerminator:   "missing null terminator",
	KindUnaligned:               "unaligned",
	KindRangeOutOfBounds:        "range out of bounds",
	KindSignedOffsetOutOfBounds: "signed offset out of bounds",
	KindFileIdentifierMismatch:  "file identifier mismatch",
}

func (k ErrorKind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// TraceKind tells what a TraceFrame was verifying.
type TraceKind uint8

const (
	TraceTableField TraceKind = iota
	TraceVectorElement
	TraceUnionVariant
)

// TraceFrame is one step of the path from the root to a failed check.
type TraceFrame struct {
	Kind  TraceKind
	Name  string // field or union variant name
	Index int    // vector element index
	Pos   UOffsetT
}

func (f TraceFrame) String() string {
	switch f.Kind {
	case TraceVectorElement:
		return fmt.Sprintf("while verifying vector element %d at position %d", f.Index, f.Pos)
	case TraceUnionVariant:
		return fmt.Sprintf("while verifying union variant `%s` at position %d", f.Name, f.Pos)
	default:
		return fmt.Sprintf("while verifying table field `%s` at position %d", f.Name, f.Pos)
	}
}

// ErrorTrace lists frames innermost first, in the order the failed
// recursion unwound.
type ErrorTrace []TraceFrame

func (t ErrorTrace) String() string {
	var sb strings.Builder
	for _, f := range t {
		sb.WriteString("\n\t")
		sb.WriteString(f.String())
	}
	return sb.String()
}

// Path renders the trace root first, e.g. "weapons[1].name".
func (t ErrorTrace) Path() string {
	var sb strings.Builder
	for i := len(t) - 1; i >= 0; i-- {
		f := t[i]
		switch f.Kind {
		case TraceVectorElement:
			fmt.Fprintf(&sb, "[%d]", f.Index)
		case TraceUnionVariant:
			fmt.Fprintf(&sb, "(%s)", f.Name)
		default:
			if sb.Len() > 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(f.Name)
		}
	}
	return sb.String()
}

// VerifyError is a data error found by the Verifier. It carries the path
// that led to the failed check.
type VerifyError struct {
	Kind  ErrorKind
	Pos   UOffsetT // where the failed check started
	End   uint64   // exclusive end, for range checks
	Name  string   // field, type or identifier involved
	Value int64    // offending signed offset or union key
	Trace ErrorTrace

	sentinel bool
}

func (e *VerifyError) Error() string {
	var msg string
	switch e.Kind {
	case KindMissingRequiredField:
		msg = fmt.Sprintf("missing required field `%s`", e.Name)
	case KindInconsistentUnion:
		msg = fmt.Sprintf("exactly one of union discriminant and value of `%s` is present", e.Name)
	case KindUnknownUnionVariant:
		msg = fmt.Sprintf("union `%s` has unknown variant %d at position %d", e.Name, e.Value, e.Pos)
	case KindUtf8:
		msg = fmt.Sprintf("string in range [%d, %d) is not valid utf-8", e.Pos, e.End)
	case KindMissingNullTerminator:
		msg = fmt.Sprintf("string in range [%d, %d) is missing its null terminator", e.Pos, e.End)
	case KindUnaligned:
		msg = fmt.Sprintf("type `%s` at position %d is unaligned", e.Name, e.Pos)
	case KindRangeOutOfBounds:
		msg = fmt.Sprintf("range [%d, %d) is out of bounds", e.Pos, e.End)
	case KindSignedOffsetOutOfBounds:
		msg = fmt.Sprintf("signed offset at position %d has value %d which points out of bounds", e.Pos, e.Value)
	case KindFileIdentifierMismatch:
		msg = fmt.Sprintf("file identifier mismatch: want %q", e.Name)
	default:
		msg = e.Kind.String()
	}
	if e.sentinel {
		return "flatbuffers: " + e.Kind.String()
	}
	return "flatbuffers: " + msg + e.Trace.String()
}

// Is reports whether target is a VerifyError of the same kind, so that
// errors.Is(err, ErrRangeOutOfBounds) works for any range error.
func (e *VerifyError) Is(target error) bool {
	t, ok := target.(*VerifyError)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is. They are never returned themselves.
var (
	ErrMissingRequiredField    = &VerifyError{Kind: KindMissingRequiredField, sentinel: true}
	ErrInconsistentUnion       = &VerifyError{Kind: KindInconsistentUnion, sentinel: true}
	ErrUnknownUnionVariant     = &VerifyError{Kind: KindUnknownUnionVariant, sentinel: true}
	ErrUtf8                    = &VerifyError{Kind: KindUtf8, sentinel: true}
	ErrMissingNullTerminator   = &VerifyError{Kind: KindMissingNullTerminator, sentinel: true}
	ErrUnaligned               = &VerifyError{Kind: KindUnaligned, sentinel: true}
	ErrRangeOutOfBounds        = &VerifyError{Kind: KindRangeOutOfBounds, sentinel: true}
	ErrSignedOffsetOutOfBounds = &VerifyError{Kind: KindSignedOffsetOutOfBounds, sentinel: true}
	ErrFileIdentifierMismatch  = &VerifyError{Kind: KindFileIdentifierMismatch, sentinel: true}
)

// Resource errors. They carry no trace: a buffer that trips them is
// rejected as a whole.
var (
	ErrTooManyTables        = xerrors.New("flatbuffers: too many tables")
	ErrApparentSizeTooLarge = xerrors.New("flatbuffers: apparent size too large")
	ErrDepthLimitReached    = xerrors.New("flatbuffers: depth limit reached")
)

// IsResourceError reports whether err is one of the trace-free resource
// limit errors.
func IsResourceError(err error) bool {
	return errors.Is(err, ErrTooManyTables) ||
		errors.Is(err, ErrApparentSizeTooLarge) ||
		errors.Is(err, ErrDepthLimitReached)
}

// NewUnknownUnionVariantError reports a union discriminant with no known
// variant. Generated union verifiers return it from their default case.
func NewUnknownUnionVariantError(union string, key uint8, pos UOffsetT) error {
	return &VerifyError{Kind: KindUnknownUnionVariant, Name: union, Value: int64(key), Pos: pos}
}

// withTrace appends f to the trace of a VerifyError. Other errors pass
// through untouched.
func withTrace(err error, f TraceFrame) error {
	var ve *VerifyError
	if errors.As(err, &ve) && !ve.sentinel {
		ve.Trace = append(ve.Trace, f)
	}
	return err
}
