package flatbuffers_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flatbuffers "github.com/blastbao/gomem/flatbuffers"
)

type scalars struct {
	b   bool
	i8  int8
	u8  uint8
	i16 int16
	u16 uint16
	i32 int32
	u32 uint32
	i64 int64
	u64 uint64
	f32 float32
	f64 float64
}

func buildScalars(s scalars) []byte {
	b := flatbuffers.NewBuilder(0)
	start := b.StartTable()
	b.PrependBoolSlot(fo(0), s.b, false)
	b.PrependInt8Slot(fo(1), s.i8, 0)
	b.PrependUint8Slot(fo(2), s.u8, 0)
	b.PrependInt16Slot(fo(3), s.i16, 0)
	b.PrependUint16Slot(fo(4), s.u16, 0)
	b.PrependInt32Slot(fo(5), s.i32, 0)
	b.PrependUint32Slot(fo(6), s.u32, 0)
	b.PrependInt64Slot(fo(7), s.i64, 0)
	b.PrependUint64Slot(fo(8), s.u64, 0)
	b.PrependFloat32Slot(fo(9), s.f32, 0)
	b.PrependFloat64Slot(fo(10), s.f64, 0)
	b.Finish(b.EndTable(start))
	return b.FinishedBytes()
}

func readScalars(tab *flatbuffers.Table) scalars {
	return scalars{
		b:   tab.GetBoolSlot(fo(0), false),
		i8:  tab.GetInt8Slot(fo(1), 0),
		u8:  tab.GetUint8Slot(fo(2), 0),
		i16: tab.GetInt16Slot(fo(3), 0),
		u16: tab.GetUint16Slot(fo(4), 0),
		i32: tab.GetInt32Slot(fo(5), 0),
		u32: tab.GetUint32Slot(fo(6), 0),
		i64: tab.GetInt64Slot(fo(7), 0),
		u64: tab.GetUint64Slot(fo(8), 0),
		f32: tab.GetFloat32Slot(fo(9), 0),
		f64: tab.GetFloat64Slot(fo(10), 0),
	}
}

func TestScalarRoundTrip(t *testing.T) {
	tests := []scalars{
		{true, math.MinInt8, math.MaxUint8, math.MinInt16, math.MaxUint16, math.MinInt32, math.MaxUint32, math.MinInt64, math.MaxUint64, math.MaxFloat32, math.MaxFloat64},
		{true, math.MaxInt8, 1, math.MaxInt16, 1, math.MaxInt32, 1, math.MaxInt64, 1, math.SmallestNonzeroFloat32, -math.SmallestNonzeroFloat64},
		{false, -1, 0, -1, 0, -1, 0, -1, 0, -1.5, 2.25},
	}

	for _, want := range tests {
		buf := buildScalars(want)
		tab := flatbuffers.GetRootAsTable(buf, 0)
		assert.Equal(t, want, readScalars(&tab))
	}
}

func TestFloatBitsRoundTrip(t *testing.T) {
	negZero64 := math.Copysign(0, -1)
	negZero32 := float32(negZero64)
	nan64 := math.Float64frombits(0x7ff8000000000abc)
	nan32 := math.Float32frombits(0x7fc00abc)

	for _, f := range []struct {
		f32 float32
		f64 float64
	}{{negZero32, negZero64}, {nan32, nan64}, {float32(math.Inf(-1)), math.Inf(1)}} {
		b := flatbuffers.NewBuilder(0)
		b.ForceDefaults(true)
		start := b.StartTable()
		b.PrependFloat32Slot(fo(0), f.f32, 0)
		b.PrependFloat64Slot(fo(1), f.f64, 0)
		b.Finish(b.EndTable(start))

		tab := flatbuffers.GetRootAsTable(b.FinishedBytes(), 0)
		assert.Equal(t, math.Float32bits(f.f32), math.Float32bits(tab.GetFloat32Slot(fo(0), 1)))
		assert.Equal(t, math.Float64bits(f.f64), math.Float64bits(tab.GetFloat64Slot(fo(1), 1)))
	}
}

func TestTableDefaultsAndAbsentFields(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	start := b.StartTable()
	b.PrependInt16Slot(fo(0), 10, 0)
	b.Finish(b.EndTable(start))
	tab := flatbuffers.GetRootAsTable(b.FinishedBytes(), 0)

	assert.Equal(t, int16(10), tab.GetInt16Slot(fo(0), 0))
	assert.Equal(t, int32(77), tab.GetInt32Slot(fo(1), 77))
	// beyond the end of the vtable: written by an older schema
	assert.Equal(t, int64(-3), flatbuffers.GetSlot(&tab, fo(40), int64(-3)))
	assert.Equal(t, flatbuffers.VOffsetT(0), tab.Offset(fo(40)))
	assert.Equal(t, flatbuffers.VOffsetT(9), tab.GetVOffsetTSlot(fo(5), 9))

	_, ok := tab.Field(fo(1))
	assert.False(t, ok)
	pos, ok := tab.Field(fo(0))
	require.True(t, ok)
	assert.Equal(t, int16(10), tab.GetInt16(pos))
}

func TestTableMutate(t *testing.T) {
	buf := buildScalars(scalars{b: true, i32: 5, f64: 1.5})
	tab := flatbuffers.GetRootAsTable(buf, 0)

	assert.True(t, tab.MutateInt32Slot(fo(5), -9))
	assert.True(t, tab.MutateFloat64Slot(fo(10), 2.5))
	assert.True(t, tab.MutateBoolSlot(fo(0), false))
	assert.True(t, flatbuffers.MutateSlot(&tab, fo(5), int32(12)))

	// absent fields have no storage
	assert.False(t, tab.MutateInt16Slot(fo(3), 1))
	assert.False(t, tab.MutateUint64Slot(fo(8), 1))

	assert.Equal(t, int32(12), tab.GetInt32Slot(fo(5), 0))
	assert.Equal(t, 2.5, tab.GetFloat64Slot(fo(10), 0))
	assert.False(t, tab.GetBoolSlot(fo(0), true))
	assert.Equal(t, int16(0), tab.GetInt16Slot(fo(3), 0))
}

func TestTableStringsAndUnions(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	inner := b.EndTable(b.StartTable())
	name := b.CreateString("orc")
	raw := b.CreateByteString([]byte{0xff, 0})
	start := b.StartTable()
	b.PrependOffsetSlot(fo(0), name)
	b.PrependOffsetSlot(fo(1), inner.AsUnion())
	b.PrependOffsetSlot(fo(2), raw)
	b.Finish(b.EndTable(start))

	tab := flatbuffers.GetRootAsTable(b.FinishedBytes(), 0)
	pos, ok := tab.Field(fo(0))
	require.True(t, ok)
	assert.Equal(t, "orc", tab.String(pos))

	pos, ok = tab.Field(fo(2))
	require.True(t, ok)
	assert.Equal(t, []byte{0xff, 0}, tab.ByteVector(pos))
	assert.Equal(t, 2, tab.VectorLen(flatbuffers.UOffsetT(tab.Offset(fo(2)))))

	var u flatbuffers.Table
	tab.Union(&u, flatbuffers.UOffsetT(tab.Offset(fo(1))))
	assert.Equal(t, flatbuffers.VOffsetT(4), u.GetVOffsetT(flatbuffers.FollowSOffset(u.Bytes, u.Pos)))
}
