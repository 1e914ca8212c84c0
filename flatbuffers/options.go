package flatbuffers

import (
	"bytes"
	"io"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// VerifierOptions bounds the work a Verifier does on one buffer.
type VerifierOptions struct {
	// MaxDepth is the deepest chain of nested tables accepted.
	MaxDepth int `yaml:"max_depth"`
	// MaxTables is the number of tables a buffer may contain, counting a
	// table once per reference to it.
	MaxTables int `yaml:"max_tables"`
	// MaxApparentSize caps the sum of every range checked, so that many
	// offsets to one large vector cannot amplify the work.
	MaxApparentSize int64 `yaml:"max_apparent_size"`
	// IgnoreMissingNullTerminator accepts strings without a trailing NUL.
	IgnoreMissingNullTerminator bool `yaml:"ignore_missing_null_terminator"`
}

// DefaultVerifierOptions returns the limits used by Root.
func DefaultVerifierOptions() VerifierOptions {
	return VerifierOptions{
		MaxDepth:        64,
		MaxTables:       1_000_000,
		MaxApparentSize: MaxBufferSize,
	}
}

// Validate reports options that would reject every buffer.
func (o VerifierOptions) Validate() error {
	switch {
	case o.MaxDepth <= 0:
		return xerrors.Errorf("flatbuffers: max_depth must be positive, got %d", o.MaxDepth)
	case o.MaxTables <= 0:
		return xerrors.Errorf("flatbuffers: max_tables must be positive, got %d", o.MaxTables)
	case o.MaxApparentSize <= 0:
		return xerrors.Errorf("flatbuffers: max_apparent_size must be positive, got %d", o.MaxApparentSize)
	}
	return nil
}

// ParseVerifierOptions reads options from a YAML document. Keys left out
// keep their DefaultVerifierOptions value; unknown keys are an error.
//
//	max_depth: 32
//	max_tables: 10000
//	ignore_missing_null_terminator: true
func ParseVerifierOptions(data []byte) (VerifierOptions, error) {
	opts := DefaultVerifierOptions()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && err != io.EOF {
		return VerifierOptions{}, xerrors.Errorf("flatbuffers: parse verifier options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return VerifierOptions{}, err
	}
	return opts, nil
}
