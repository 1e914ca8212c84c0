package flatbuffers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	flatbuffers "github.com/blastbao/gomem/flatbuffers"
	"github.com/blastbao/gomem/memory"
)

var fo = flatbuffers.FieldIndexToOffset

func TestByteLayout(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *flatbuffers.Builder)
		want  []byte
	}{
		{
			name: "uint8 then uint16",
			build: func(b *flatbuffers.Builder) {
				b.PrependUint8(1)
				b.PrependUint16(2)
			},
			want: []byte{2, 0, 0, 1},
		},
		{
			name: "uint16 vector",
			build: func(b *flatbuffers.Builder) {
				b.StartVector(flatbuffers.SizeUint16, 2, flatbuffers.SizeUint16)
				b.PrependUint16(0xABCD)
				b.PrependUint16(0xDCBA)
				b.EndVector(2)
			},
			want: []byte{2, 0, 0, 0, 0xBA, 0xDC, 0xCD, 0xAB},
		},
		{
			name: "two strings",
			build: func(b *flatbuffers.Builder) {
				b.CreateString("foo")
				b.CreateString("moop")
			},
			want: []byte{
				4, 0, 0, 0, 'm', 'o', 'o', 'p', 0, 0, 0, 0, // moop, padded
				3, 0, 0, 0, 'f', 'o', 'o', 0,
			},
		},
		{
			name: "empty table",
			build: func(b *flatbuffers.Builder) {
				b.EndTable(b.StartTable())
			},
			want: []byte{4, 0, 4, 0, 4, 0, 0, 0},
		},
		{
			name: "table with one int16",
			build: func(b *flatbuffers.Builder) {
				start := b.StartTable()
				b.PrependInt16Slot(fo(0), 0x789A, 0)
				b.EndTable(start)
			},
			want: []byte{
				6, 0, // vtable bytes
				8, 0, // object size
				6, 0, // offset to value
				6, 0, 0, 0, // offset to vtable
				0, 0, // padding
				0x9A, 0x78,
			},
		},
		{
			name: "table with a bool",
			build: func(b *flatbuffers.Builder) {
				start := b.StartTable()
				b.PrependBoolSlot(fo(0), true, false)
				b.EndTable(start)
			},
			want: []byte{6, 0, 8, 0, 7, 0, 6, 0, 0, 0, 0, 0, 0, 1},
		},
		{
			name: "table with a default bool",
			build: func(b *flatbuffers.Builder) {
				start := b.StartTable()
				b.PrependBoolSlot(fo(0), false, false)
				b.EndTable(start)
			},
			want: []byte{4, 0, 4, 0, 4, 0, 0, 0},
		},
		{
			name: "forced default bool",
			build: func(b *flatbuffers.Builder) {
				b.ForceDefaults(true)
				start := b.StartTable()
				b.PrependBoolSlot(fo(0), false, false)
				b.EndTable(start)
			},
			want: []byte{6, 0, 8, 0, 7, 0, 6, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "table pointing at a vector",
			build: func(b *flatbuffers.Builder) {
				b.StartVector(flatbuffers.SizeInt16, 2, flatbuffers.SizeInt16)
				b.PrependInt16(0x1234)
				b.PrependInt16(0x5678)
				vec := b.EndVector(2)
				start := b.StartTable()
				b.PrependOffsetSlot(fo(1), vec)
				b.PrependInt16Slot(fo(0), 55, 0)
				b.EndTable(start)
			},
			want: []byte{
				8, 0, 12, 0, 6, 0, 8, 0, // vtable
				8, 0, 0, 0, // offset to vtable
				0, 0, 55, 0, // padding, value 0
				4, 0, 0, 0, // offset to vector
				2, 0, 0, 0, 0x78, 0x56, 0x34, 0x12,
			},
		},
		{
			name: "two empty tables share a vtable",
			build: func(b *flatbuffers.Builder) {
				b.EndTable(b.StartTable())
				b.EndTable(b.StartTable())
			},
			want: []byte{252, 255, 255, 255, 4, 0, 4, 0, 4, 0, 0, 0},
		},
		{
			name: "two tables with uint64 and uint32 share a vtable",
			build: func(b *flatbuffers.Builder) {
				start := b.StartTable()
				b.PrependUint64Slot(fo(0), 100, 0)
				b.PrependUint32Slot(fo(1), 101, 0)
				b.EndTable(start)
				start = b.StartTable()
				b.PrependUint64Slot(fo(0), 200, 0)
				b.PrependUint32Slot(fo(1), 201, 0)
				b.EndTable(start)
			},
			want: []byte{
				240, 255, 255, 255, // second table: offset to the first vtable
				201, 0, 0, 0,
				200, 0, 0, 0, 0, 0, 0, 0,
				8, 0, 16, 0, 8, 0, 4, 0, // shared vtable
				8, 0, 0, 0,
				101, 0, 0, 0,
				100, 0, 0, 0, 0, 0, 0, 0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := flatbuffers.NewBuilder(0)
			tt.build(b)
			assert.Equal(t, tt.want, b.UnfinishedBytes())
		})
	}
}

func TestFinishedLayout(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	start := b.StartTable()
	b.PrependInt8Slot(fo(0), 33, 0)
	b.PrependInt16Slot(fo(1), 66, 0)
	b.Finish(b.EndTable(start))

	want := []byte{
		12, 0, 0, 0, // root offset
		8, 0, 8, 0, 7, 0, 4, 0, // vtable
		8, 0, 0, 0, // offset to vtable
		66, 0, 0, 33,
	}
	assert.Equal(t, want, b.FinishedBytes())
}

func TestStringOffsets(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	assert.Equal(t, flatbuffers.StringOffset(8), b.CreateString("foo"))
	assert.Equal(t, []byte("\x03\x00\x00\x00foo\x00"), b.UnfinishedBytes())
	assert.Equal(t, flatbuffers.StringOffset(20), b.CreateString("moop"))
}

func TestGrowFromZeroCapacity(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	off := b.PrependBytes(data)

	assert.Equal(t, flatbuffers.UOffsetT(9), off)
	assert.Len(t, b.Bytes, 16)
	assert.Equal(t, data, b.Bytes[7:])
	assert.Equal(t, make([]byte, 7), b.Bytes[:7])
}

func TestAlignment(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	b.PrependByte(1)
	b.PrependUint64(2)
	assert.Equal(t, flatbuffers.UOffsetT(16), b.Offset())

	b.PrependByte(3)
	b.PrependFloat32(4)
	assert.Zero(t, b.Offset()%4)

	off := flatbuffers.PrependScalar(b, int16(5))
	assert.Zero(t, off%2)
	assert.Equal(t, off, b.Offset())
}

func TestVtableDeduplication(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	for i := 0; i < 1000; i++ {
		start := b.StartTable()
		b.PrependInt32Slot(fo(0), int32(i)+1, 0)
		b.PrependBoolSlot(fo(1), true, false)
		b.EndTable(start)
	}
	assert.Equal(t, 1, b.NumWrittenVtables())

	// a different set of fields needs its own vtable
	start := b.StartTable()
	b.PrependInt32Slot(fo(1), 7, 0)
	last := b.EndTable(start)
	assert.Equal(t, 2, b.NumWrittenVtables())

	b.Finish(last)
	assert.Equal(t, 0, b.NumWrittenVtables())
}

func TestVtableDeduplicationWithPadding(t *testing.T) {
	// The padding before each table varies with the alignment of the
	// table's start, so the object size cycles through a few values.
	b := flatbuffers.NewBuilder(0)
	for i := 0; i < 1000; i++ {
		start := b.StartTable()
		b.PrependInt32Slot(fo(0), int32(i)+1, 0)
		b.PrependBoolSlot(fo(2), true, false)
		b.EndTable(start)
	}
	assert.LessOrEqual(t, b.NumWrittenVtables(), 10)
}

func TestSharedStrings(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	a1 := b.CreateSharedString("alpha")
	beta := b.CreateSharedString("beta")
	a2 := b.CreateSharedString("alpha")
	empty1 := b.CreateSharedString("")
	empty2 := b.CreateSharedString("")

	assert.Equal(t, a1, a2)
	assert.Equal(t, empty1, empty2)
	assert.NotEqual(t, a1, beta)

	// a plain CreateString never joins the pool
	assert.NotEqual(t, a1, b.CreateString("alpha"))

	b.Reset()
	assert.Equal(t, 0, len(b.UnfinishedBytes()))
	c := b.CreateSharedString("beta")
	assert.Equal(t, flatbuffers.StringOffset(12), c)
}

func TestCreateVectors(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	flatbuffers.CreateVector(b, []uint16{1, 2, 3})
	assert.Equal(t, []byte{3, 0, 0, 0, 1, 0, 2, 0, 3, 0, 0, 0}, b.UnfinishedBytes())

	b.Reset()
	s1 := b.CreateString("a")
	s2 := b.CreateString("b")
	vec := flatbuffers.CreateOffsetVector(b, []flatbuffers.StringOffset{s1, s2})
	b.Finish(vec)

	buf := b.FinishedBytes()
	v := flatbuffers.StringVector(buf, flatbuffers.FollowUOffset(buf, 0))
	require.Equal(t, 2, v.Len())
	assert.Equal(t, "a", v.At(0))
	assert.Equal(t, "b", v.At(1))

	b.Reset()
	bv := b.CreateByteVector([]byte("xyz"))
	b.Finish(bv)
	buf = b.FinishedBytes()
	assert.Equal(t, []byte("xyz"), flatbuffers.ByteVectorView(buf, flatbuffers.FollowUOffset(buf, 0)).Bytes())
}

func TestFinishVariants(t *testing.T) {
	build := func(b *flatbuffers.Builder) flatbuffers.TableOffset {
		start := b.StartTable()
		b.PrependUint64Slot(fo(0), 42, 0)
		return b.EndTable(start)
	}

	t.Run("file identifier", func(t *testing.T) {
		b := flatbuffers.NewBuilder(0)
		b.FinishWithFileIdentifier(build(b), []byte("TEST"))
		buf := b.FinishedBytes()
		assert.Zero(t, len(buf)%8)
		assert.True(t, flatbuffers.BufferHasIdentifier(buf, "TEST", false))
		assert.False(t, flatbuffers.BufferHasIdentifier(buf, "NOPE", false))
		tab := flatbuffers.GetRootAsTable(buf, 0)
		assert.Equal(t, uint64(42), tab.GetUint64Slot(fo(0), 0))
	})

	t.Run("size prefix", func(t *testing.T) {
		b := flatbuffers.NewBuilder(0)
		b.FinishSizePrefixed(build(b))
		buf := b.FinishedBytes()
		assert.Equal(t, uint32(len(buf)-flatbuffers.SizePrefixLength), flatbuffers.GetSizePrefix(buf, 0))
		tab := flatbuffers.GetSizePrefixedRootAsTable(buf, 0)
		assert.Equal(t, uint64(42), tab.GetUint64Slot(fo(0), 0))
	})

	t.Run("size prefix and file identifier", func(t *testing.T) {
		b := flatbuffers.NewBuilder(0)
		b.FinishSizePrefixedWithFileIdentifier(build(b), []byte("TEST"))
		buf := b.FinishedBytes()
		assert.Equal(t, uint32(len(buf)-flatbuffers.SizePrefixLength), flatbuffers.GetSizePrefix(buf, 0))
		assert.True(t, flatbuffers.BufferHasIdentifier(buf, "TEST", true))
		assert.Equal(t, "TEST", flatbuffers.GetBufferIdentifier(buf, true))
	})
}

func TestResetReuse(t *testing.T) {
	build := func(b *flatbuffers.Builder) []byte {
		name := b.CreateString("reuse")
		start := b.StartTable()
		b.PrependOffsetSlot(fo(0), name)
		b.PrependInt32Slot(fo(1), 9, 0)
		b.Finish(b.EndTable(start))
		return append([]byte(nil), b.FinishedBytes()...)
	}

	b := flatbuffers.NewBuilder(0)
	first := build(b)
	capBefore := len(b.Bytes)
	b.Reset()
	second := build(b)

	assert.Equal(t, first, second)
	assert.Equal(t, capBefore, len(b.Bytes))
	assert.Equal(t, first, build(flatbuffers.NewBuilder(1024)))
}

func TestBuilderPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(b *flatbuffers.Builder)
	}{
		{"end table without start", func(b *flatbuffers.Builder) { b.EndTable(0) }},
		{"nested table", func(b *flatbuffers.Builder) { b.StartTable(); b.StartTable() }},
		{"string inside table", func(b *flatbuffers.Builder) { b.StartTable(); b.CreateString("x") }},
		{"vector inside table", func(b *flatbuffers.Builder) { b.StartTable(); b.StartVector(1, 1, 1) }},
		{"slot outside table", func(b *flatbuffers.Builder) { b.PrependInt32Slot(fo(0), 1, 0) }},
		{"bad slot", func(b *flatbuffers.Builder) { b.StartTable(); b.PrependInt32(1); b.Slot(3) }},
		{"finished bytes before finish", func(b *flatbuffers.Builder) { b.FinishedBytes() }},
		{"finish twice", func(b *flatbuffers.Builder) {
			tab := b.EndTable(b.StartTable())
			b.Finish(tab)
			b.Finish(tab)
		}},
		{"write after finish", func(b *flatbuffers.Builder) {
			b.Finish(b.EndTable(b.StartTable()))
			b.PrependInt32(1)
		}},
		{"short file identifier", func(b *flatbuffers.Builder) {
			b.FinishWithFileIdentifier(b.EndTable(b.StartTable()), []byte("AB"))
		}},
		{"missing required field", func(b *flatbuffers.Builder) {
			tab := b.EndTable(b.StartTable())
			b.Required(tab, fo(0), "name")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := flatbuffers.NewBuilder(0)
			assert.Panics(t, func() { tt.fn(b) })
		})
	}
}

func TestRequiredPresent(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	name := b.CreateString("x")
	start := b.StartTable()
	b.PrependOffsetSlot(fo(0), name)
	tab := b.EndTable(start)
	assert.NotPanics(t, func() { b.Required(tab, fo(0), "name") })
}

func TestBuilderAllocator(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	b := flatbuffers.NewBuilderWithAllocator(0, mem)
	for i := 0; i < 100; i++ {
		b.CreateString("grow the buffer a few times")
	}
	assert.Greater(t, len(b.Bytes), 2048)
	mem.AssertSize(t, len(b.Bytes))
}

func TestBuilderLogsGrowth(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	flatbuffers.SetLogger(zap.New(core))
	defer flatbuffers.SetLogger(nil)

	b := flatbuffers.NewBuilder(0)
	b.PrependUint32(1)

	growth := logs.FilterMessage("flatbuffers: grew builder buffer").All()
	require.Len(t, growth, 3) // 0 -> 1 -> 2 -> 4
	assert.Equal(t, int64(2), growth[2].ContextMap()["old"])
	assert.Equal(t, int64(4), growth[2].ContextMap()["new"])
}

func BenchmarkBuildTables(b *testing.B) {
	bld := flatbuffers.NewBuilder(1024)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		bld.Reset()
		var last flatbuffers.TableOffset
		for j := 0; j < 100; j++ {
			start := bld.StartTable()
			bld.PrependInt32Slot(fo(0), int32(j), 0)
			bld.PrependInt16Slot(fo(1), 7, 0)
			last = bld.EndTable(start)
		}
		bld.Finish(last)
	}
}

func BenchmarkCreateSharedString(b *testing.B) {
	bld := flatbuffers.NewBuilder(1024)
	names := []string{"sword", "axe", "bow", "staff", "dagger"}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		bld.Reset()
		for j := 0; j < 100; j++ {
			bld.CreateSharedString(names[j%len(names)])
		}
	}
}
