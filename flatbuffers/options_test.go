package flatbuffers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flatbuffers "github.com/blastbao/gomem/flatbuffers"
)

func TestParseVerifierOptions(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    func(o *flatbuffers.VerifierOptions)
		wantErr string
	}{
		{name: "empty", doc: "", want: func(*flatbuffers.VerifierOptions) {}},
		{
			name: "overlay",
			doc:  "max_depth: 8\nignore_missing_null_terminator: true\n",
			want: func(o *flatbuffers.VerifierOptions) {
				o.MaxDepth = 8
				o.IgnoreMissingNullTerminator = true
			},
		},
		{
			name: "all",
			doc:  "max_depth: 2\nmax_tables: 3\nmax_apparent_size: 4096\n",
			want: func(o *flatbuffers.VerifierOptions) {
				o.MaxDepth = 2
				o.MaxTables = 3
				o.MaxApparentSize = 4096
			},
		},
		{name: "unknown key", doc: "max_dept: 8\n", wantErr: "parse verifier options"},
		{name: "wrong type", doc: "max_tables: lots\n", wantErr: "parse verifier options"},
		{name: "zero depth", doc: "max_depth: 0\n", wantErr: "max_depth must be positive"},
		{name: "negative tables", doc: "max_tables: -1\n", wantErr: "max_tables must be positive"},
		{name: "zero apparent size", doc: "max_apparent_size: 0\n", wantErr: "max_apparent_size must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := flatbuffers.ParseVerifierOptions([]byte(tt.doc))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			want := flatbuffers.DefaultVerifierOptions()
			tt.want(&want)
			assert.Equal(t, want, got)
		})
	}
}

func TestDefaultVerifierOptions(t *testing.T) {
	opts := flatbuffers.DefaultVerifierOptions()
	assert.NoError(t, opts.Validate())
	assert.Equal(t, 64, opts.MaxDepth)
	assert.Equal(t, 1_000_000, opts.MaxTables)
	assert.Equal(t, int64(flatbuffers.MaxBufferSize), opts.MaxApparentSize)
	assert.False(t, opts.IgnoreMissingNullTerminator)
}
