package flatbuffers

import (
	"bytes"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/blastbao/gomem/memory"
)

// Builder is a state machine for creating FlatBuffer objects.
// Use a Builder to construct object(s) starting from leaf nodes.
//
// A Builder constructs byte buffers in a last-first manner for simplicity and
// performance.
//
// Builder 从 buffer 的尾部向头部写入数据，head 指向有效数据的起始位置，
// 所有返回给调用方的 offset 都是相对 buffer 结尾的距离（即写入时的 used space），
// 因此扩容时只要把旧数据整体拷贝到新 buffer 的尾部，这些 offset 依然有效。
type Builder struct {
	// `Bytes` gives raw access to the buffer. Most users will want to use
	// FinishedBytes() instead.
	Bytes []byte

	alloc         memory.Allocator
	minalign      int
	fieldLocs     []fieldLoc
	vtables       []UOffsetT // written vtables, sorted by their bytes
	sharedStrings []UOffsetT // shared strings, sorted by content
	head          UOffsetT
	nested        bool
	finished      bool
	forceDefaults bool
}

// NewBuilder initializes a Builder of size `initial_size`.
// The internal buffer is grown as needed.
func NewBuilder(initialSize int) *Builder {
	return NewBuilderWithAllocator(initialSize, memory.DefaultAllocator)
}

// NewBuilderWithAllocator is like NewBuilder but obtains every backing
// buffer from alloc.
func NewBuilderWithAllocator(initialSize int, alloc memory.Allocator) *Builder {
	if initialSize <= 0 {
		initialSize = 0
	}
	if int64(initialSize) > MaxBufferSize {
		panic("cannot initialize buffer bigger than 2 gigabytes")
	}
	if alloc == nil {
		alloc = memory.DefaultAllocator
	}

	b := &Builder{alloc: alloc}
	b.Bytes = alloc.Allocate(initialSize)
	memory.Set(b.Bytes, 0)
	b.head = UOffsetT(initialSize)
	b.minalign = 1
	b.vtables = make([]UOffsetT, 0, 16) // sensible default capacity

	return b
}

// Reset truncates the underlying Builder buffer, facilitating alloc-free
// reuse of a Builder. It also resets bookkeeping data.
func (b *Builder) Reset() {
	memory.Set(b.Bytes[b.head:], 0)

	b.fieldLocs = b.fieldLocs[:0]
	b.vtables = b.vtables[:0]
	b.sharedStrings = b.sharedStrings[:0]

	b.head = UOffsetT(len(b.Bytes))
	b.minalign = 1
	b.nested = false
	b.finished = false
}

// FinishedBytes returns a pointer to the written data in the byte buffer.
// Panics if the builder is not in a finished state (which is caused by calling
// `Finish()`).
func (b *Builder) FinishedBytes() []byte {
	b.assertFinished()
	return b.Bytes[b.Head():]
}

// UnfinishedBytes returns the data written so far, whether or not the
// buffer has been finished.
func (b *Builder) UnfinishedBytes() []byte {
	return b.Bytes[b.Head():]
}

// ForceDefaults makes the Prepend*Slot methods write values even when they
// equal the schema default.
func (b *Builder) ForceDefaults(force bool) {
	b.forceDefaults = force
}

// NumWrittenVtables reports how many distinct vtables the current buffer
// holds. It is reset by Finish and Reset.
func (b *Builder) NumWrittenVtables() int {
	return len(b.vtables)
}

// StartTable initializes bookkeeping for writing a new table.
func (b *Builder) StartTable() UnfinishedTable {
	b.assertNotFinished()
	b.assertNotNested()
	b.nested = true
	b.fieldLocs = b.fieldLocs[:0]
	return UnfinishedTable(b.Offset())
}

// EndTable writes the vtable for the table opened by StartTable and
// returns the finished table.
func (b *Builder) EndTable(start UnfinishedTable) TableOffset {
	b.assertNested()
	n := b.writeVtable(start)
	b.nested = false
	return TableOffset(n)
}

// writeVtable serializes the vtable for the current object.
//
// The new vtable is written into the buffer and then looked up, by its
// bytes, in the sorted list of vtables written earlier. On a hit the new
// bytes are zeroed and reclaimed and the object points at the old vtable.
//
// A vtable has the following format:
//
//	<VOffsetT: size of the vtable in bytes, including this value>
//	<VOffsetT: size of the object in bytes, including the vtable offset>
//	<VOffsetT: offset for a field> * N, where N is one more than the
//	        highest field written. Absent fields are 0.
//
// An object has the following format:
//
//	<SOffsetT: offset to this object's vtable (may be negative)>
//	<byte: data>+
func (b *Builder) writeVtable(start UnfinishedTable) UOffsetT {
	// Object 的开头是 4B 的 SOffsetT，先写 0 占位，确定 vtable 位置后再回填。
	b.Prep(SizeSOffsetT, 0)
	b.PlaceSOffsetT(0)

	objectOffset := b.Offset()
	objectSize := objectOffset - start.Value()
	if objectSize > 0xFFFF {
		panic("table inline data exceeds 64KiB: vtable offsets are 16 bits")
	}

	vtLen := vtableByteLen(b.fieldLocs)
	b.ensureSpace(vtLen)
	b.head -= UOffsetT(vtLen)
	vt := b.Bytes[b.head : int(b.head)+vtLen]
	clear(vt)

	WriteVOffsetT(vt, VOffsetT(vtLen))
	WriteVOffsetT(vt[SizeVOffsetT:], VOffsetT(objectSize))
	for _, fl := range b.fieldLocs {
		WriteVOffsetT(vt[fl.id:], VOffsetT(objectOffset-fl.off))
	}

	i, found := slices.BinarySearchFunc(b.vtables, vt, func(old UOffsetT, target []byte) int {
		return bytes.Compare(b.vtableBytes(old), target)
	})

	var vtRevPos UOffsetT
	if found {
		// Found a duplicate vtable: drop the bytes we just wrote.
		clear(vt)
		b.head += UOffsetT(vtLen)
		vtRevPos = b.vtables[i]
	} else {
		vtRevPos = b.Offset()
		b.vtables = slices.Insert(b.vtables, i, vtRevPos)
	}

	// Write the offset to the chosen vtable in the already-allocated
	// SOffsetT at the beginning of this object:
	objectStart := UOffsetT(len(b.Bytes)) - objectOffset
	WriteSOffsetT(b.Bytes[objectStart:], SOffsetT(vtRevPos)-SOffsetT(objectOffset))

	b.fieldLocs = b.fieldLocs[:0]
	return objectOffset
}

// vtableBytes returns the serialized vtable written at WIP offset off.
func (b *Builder) vtableBytes(off UOffsetT) []byte {
	pos := UOffsetT(len(b.Bytes)) - off
	n := UOffsetT(GetVOffsetT(b.Bytes[pos:]))
	return b.Bytes[pos : pos+n]
}

func vtableByteLen(locs []fieldLoc) int {
	if len(locs) == 0 {
		return VtableMetadataFields * SizeVOffsetT
	}
	var max VOffsetT
	for _, fl := range locs {
		if fl.id > max {
			max = fl.id
		}
	}
	return int(max) + SizeVOffsetT
}

// Doubles the size of the byteslice, and copies the old data towards the
// end of the new byteslice (since we build the buffer backwards).
//
// 扩容到原来 2 倍的大小，旧数据会被 copy 到新 buffer 的末尾，空出的前半部分清零。
func (b *Builder) growByteBuffer() {
	oldLen := len(b.Bytes)
	newLen := oldLen * 2
	if newLen == 0 {
		newLen = 1
	}
	if int64(newLen) > MaxBufferSize {
		panic("cannot grow buffer beyond 2 gigabytes")
	}

	buf := b.alloc.Allocate(newLen)
	middle := newLen - oldLen
	memory.Set(buf[:middle], 0)
	copy(buf[middle:], b.Bytes)
	b.alloc.Free(b.Bytes)
	b.Bytes = buf
	b.head += UOffsetT(middle)

	if ce := Logger().Check(zap.DebugLevel, "flatbuffers: grew builder buffer"); ce != nil {
		ce.Write(zap.Int("old", oldLen), zap.Int("new", newLen))
	}
}

// ensureSpace grows the buffer until at least n unused bytes precede head.
func (b *Builder) ensureSpace(n int) {
	if int64(n) > MaxBufferSize {
		panic("cannot grow buffer beyond 2 gigabytes")
	}
	for int(b.head) < n {
		b.growByteBuffer()
	}
}

// Head gives the start of useful data in the underlying byte buffer.
// Note: unlike other functions, this value is interpreted as from the left.
func (b *Builder) Head() UOffsetT {
	return b.head
}

// Offset relative to the end of the buffer.
//
// 当前已写入数据的长度，也就是刚写入对象相对于 buffer 结尾的偏移。
func (b *Builder) Offset() UOffsetT {
	return UOffsetT(len(b.Bytes)) - b.head
}

// Pad places zeros at the current offset.
func (b *Builder) Pad(n int) {
	for i := 0; i < n; i++ {
		b.PlaceByte(0)
	}
}

// Prep prepares to write an element of `size` after `additional_bytes`
// have been written, e.g. if you write a string, you need to align such
// the int length field is aligned to SizeInt32, and the string data follows it
// directly.
// If all you need to do is align, `additionalBytes` will be 0.
//
// size 必须是 2 的幂。Prep 保证写入 additionalBytes 字节之后的位置按 size 对齐，
// 并预留 size+additionalBytes 字节的空间，之后可以直接 Place 而无需再检查容量。
func (b *Builder) Prep(size, additionalBytes int) {
	b.assertNotFinished()

	// Track the biggest thing we've ever aligned to.
	if size > b.minalign {
		b.minalign = size
	}

	// Find the amount of alignment needed such that `size` is properly
	// aligned after `additionalBytes`:
	alignSize := (^(int(b.Offset()) + additionalBytes)) + 1
	alignSize &= (size - 1)

	b.ensureSpace(alignSize + size + additionalBytes)
	b.Pad(alignSize)
}

// PrependSOffsetT prepends an SOffsetT, relative to where it will be written.
func (b *Builder) PrependSOffsetT(off SOffsetT) UOffsetT {
	b.Prep(SizeSOffsetT, 0) // Ensure alignment is already done.
	if !(UOffsetT(off) <= b.Offset()) {
		panic("unreachable: off <= b.Offset()")
	}
	off2 := SOffsetT(b.Offset()) - off + SOffsetT(SizeSOffsetT)
	b.PlaceSOffsetT(off2)
	return b.Offset()
}

// PrependUOffsetT prepends an UOffsetT, relative to where it will be written.
func (b *Builder) PrependUOffsetT(off UOffsetT) UOffsetT {
	b.Prep(SizeUOffsetT, 0) // Ensure alignment is already done.
	if !(off <= b.Offset()) {
		panic("unreachable: off <= b.Offset()")
	}
	// 存储的是写入位置到目标对象的相对距离，外加 offset 自身的 4 字节。
	off2 := b.Offset() - off + UOffsetT(SizeUOffsetT)
	b.PlaceUOffsetT(off2)
	return b.Offset()
}

// PrependOffset prepends a forward reference to a finished object.
func (b *Builder) PrependOffset(off Offset) UOffsetT {
	return b.PrependUOffsetT(off.Value())
}

// PrependBytes prepends raw bytes without alignment or a length prefix and
// returns the resulting offset.
func (b *Builder) PrependBytes(x []byte) UOffsetT {
	b.Prep(SizeByte, len(x))
	b.head -= UOffsetT(len(x))
	copy(b.Bytes[b.head:], x)
	return b.Offset()
}

// PrependScalar aligns for and prepends x, returning its offset.
func PrependScalar[T Scalar](b *Builder, x T) UOffsetT {
	sz := SizeOf[T]()
	b.Prep(sz, 0)
	b.head -= UOffsetT(sz)
	WriteScalar(b.Bytes[b.head:], x)
	return b.Offset()
}

// StartVector initializes bookkeeping for writing a new vector.
//
// A vector has the following format:
//
//	<UOffsetT: number of elements in this vector>
//	<T: data>+, where T is the type of elements of this vector.
//
// Elements must be prepended in reverse order.
func (b *Builder) StartVector(elemSize, numElems, alignment int) UOffsetT {
	b.assertNotFinished()
	b.assertNotNested()
	b.nested = true

	b.Prep(SizeUint32, elemSize*numElems)
	b.Prep(alignment, elemSize*numElems) // Just in case alignment > int.
	return b.Offset()
}

// EndVector writes data necessary to finish vector construction.
func (b *Builder) EndVector(vectorNumElems int) VectorOffset {
	b.assertNested()

	b.Prep(SizeUOffsetT, 0)
	b.PlaceUOffsetT(UOffsetT(vectorNumElems))

	b.nested = false
	return VectorOffset(b.Offset())
}

// CreateVector writes a vector of scalars.
func CreateVector[T Scalar](b *Builder, xs []T) VectorOffset {
	sz := SizeOf[T]()
	b.StartVector(sz, len(xs), sz)
	for i := len(xs) - 1; i >= 0; i-- {
		PrependScalar(b, xs[i])
	}
	return b.EndVector(len(xs))
}

// CreateOffsetVector writes a vector of forward references to previously
// finished tables, strings or vectors.
func CreateOffsetVector[O Offset](b *Builder, offs []O) VectorOffset {
	b.StartVector(SizeUOffsetT, len(offs), SizeUOffsetT)
	for i := len(offs) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offs[i].Value())
	}
	return b.EndVector(len(offs))
}

// CreateString writes a null-terminated string as a vector.
//
// 字符串按 vector 存储，从左到右依次是 [长度, 字符数据, 结尾 0]，长度不含结尾的 0。
func (b *Builder) CreateString(s string) StringOffset {
	b.assertNotNested()

	b.Prep(SizeUOffsetT, (len(s)+1)*SizeByte)
	b.PlaceByte(0)

	l := UOffsetT(len(s))

	b.head -= l
	copy(b.Bytes[b.head:b.head+l], s)

	b.PlaceUOffsetT(l)
	return StringOffset(b.Offset())
}

// CreateByteString writes a byte slice as a string (null-terminated).
func (b *Builder) CreateByteString(s []byte) StringOffset {
	b.assertNotNested()

	b.Prep(SizeUOffsetT, (len(s)+1)*SizeByte)
	b.PlaceByte(0)

	l := UOffsetT(len(s))

	b.head -= l
	copy(b.Bytes[b.head:b.head+l], s)

	b.PlaceUOffsetT(l)
	return StringOffset(b.Offset())
}

// CreateSharedString writes s once per buffer: later calls with equal
// content return the offset of the first copy. The pool is cleared by
// Reset.
func (b *Builder) CreateSharedString(s string) StringOffset {
	b.assertNotNested()

	i, found := slices.BinarySearchFunc(b.sharedStrings, s, func(off UOffsetT, target string) int {
		return strings.Compare(byteSliceToString(b.stringBytes(off)), target)
	})
	if found {
		return StringOffset(b.sharedStrings[i])
	}

	off := b.CreateString(s)
	b.sharedStrings = slices.Insert(b.sharedStrings, i, off.Value())
	return off
}

// stringBytes returns the content of the string written at WIP offset off.
func (b *Builder) stringBytes(off UOffsetT) []byte {
	pos := UOffsetT(len(b.Bytes)) - off
	n := GetUOffsetT(b.Bytes[pos:])
	start := pos + SizeUOffsetT
	return b.Bytes[start : start+n]
}

// CreateByteVector writes a ubyte vector
func (b *Builder) CreateByteVector(v []byte) VectorOffset {
	b.assertNotNested()

	b.Prep(SizeUOffsetT, len(v)*SizeByte)

	l := UOffsetT(len(v))

	b.head -= l
	copy(b.Bytes[b.head:b.head+l], v)

	b.PlaceUOffsetT(l)
	return VectorOffset(b.Offset())
}

func (b *Builder) assertNested() {
	// If you get this assert, you're in an object while trying to write
	// data that belongs outside of an object.
	// To fix this, write non-inline data (like vectors) before creating
	// objects.
	if !b.nested {
		panic("Incorrect creation order: must be inside object.")
	}
}

func (b *Builder) assertNotNested() {
	// If you hit this, you're trying to construct a Table/Vector/String
	// during the construction of its parent table (between the MyTableBuilder
	// and builder.Finish()).
	// Move the creation of these sub-objects to above the MyTableBuilder to
	// not get this assert.
	// Ignoring this assert may appear to work in simple cases, but the reason
	// it is here is that storing objects in-line may cause vtable offsets
	// to not fit anymore. It also leads to vtable duplication.
	if b.nested {
		panic("Incorrect creation order: object must not be nested.")
	}
}

func (b *Builder) assertFinished() {
	// If you get this assert, you're attempting to get access a buffer
	// which hasn't been finished yet. Be sure to call builder.Finish()
	// with your root table.
	// If you really need to access an unfinished buffer, use
	// UnfinishedBytes.
	if !b.finished {
		panic("Incorrect use of FinishedBytes(): must call 'Finish' first.")
	}
}

func (b *Builder) assertNotFinished() {
	// A finished buffer is immutable until Reset.
	if b.finished {
		panic("Incorrect use of Builder: buffer is finished, call Reset first.")
	}
}

// PrependBoolSlot prepends a bool onto the object at vtable slot `o`.
// If value `x` equals default `d`, then the slot will be set to zero and no
// other data will be written.
func (b *Builder) PrependBoolSlot(o VOffsetT, x, d bool) {
	val := byte(0)
	if x {
		val = 1
	}
	def := byte(0)
	if d {
		def = 1
	}
	b.PrependByteSlot(o, val, def)
}

// PrependByteSlot prepends a byte onto the object at vtable slot `o`.
// If value `x` equals default `d`, then the slot will be set to zero and no
// other data will be written.
func (b *Builder) PrependByteSlot(o VOffsetT, x, d byte) {
	if x != d || b.forceDefaults {
		b.PrependByte(x)
		b.Slot(o)
	}
}

// PrependUint8Slot prepends a uint8 onto the object at vtable slot `o`.
// If value `x` equals default `d`, then the slot will be set to zero and no
// other data will be written.
func (b *Builder) PrependUint8Slot(o VOffsetT, x, d uint8) {
	if x != d || b.forceDefaults {
		b.PrependUint8(x)
		b.Slot(o)
	}
}

// PrependUint16Slot prepends a uint16 onto the object at vtable slot `o`.
// If value `x` equals default `d`, then the slot will be set to zero and no
// other data will be written.
func (b *Builder) PrependUint16Slot(o VOffsetT, x, d uint16) {
	if x != d || b.forceDefaults {
		b.PrependUint16(x)
		b.Slot(o)
	}
}

// PrependUint32Slot prepends a uint32 onto the object at vtable slot `o`.
// If value `x` equals default `d`, then the slot will be set to zero and no
// other data will be written.
func (b *Builder) PrependUint32Slot(o VOffsetT, x, d uint32) {
	if x != d || b.forceDefaults {
		b.PrependUint32(x)
		b.Slot(o)
	}
}

// PrependUint64Slot prepends a uint64 onto the object at vtable slot `o`.
// If value `x` equals default `d`, then the slot will be set to zero and no
// other data will be written.
func (b *Builder) PrependUint64Slot(o VOffsetT, x, d uint64) {
	if x != d || b.forceDefaults {
		b.PrependUint64(x)
		b.Slot(o)
	}
}

// PrependInt8Slot prepends a int8 onto the object at vtable slot `o`.
// If value `x` equals default `d`, then the slot will be set to zero and no
// other data will be written.
func (b *Builder) PrependInt8Slot(o VOffsetT, x, d int8) {
	if x != d || b.forceDefaults {
		b.PrependInt8(x)
		b.Slot(o)
	}
}

// PrependInt16Slot prepends a int16 onto the object at vtable slot `o`.
// If value `x` equals default `d`, then the slot will be set to zero and no
// other data will be written.
func (b *Builder) PrependInt16Slot(o VOffsetT, x, d int16) {
	if x != d || b.forceDefaults {
		// 先写值，再把当前 offset 记到 vtable 槽位 o 上。
		b.PrependInt16(x)
		b.Slot(o)
	}
}

// PrependInt32Slot prepends a int32 onto the object at vtable slot `o`.
// If value `x` equals default `d`, then the slot will be set to zero and no
// other data will be written.
func (b *Builder) PrependInt32Slot(o VOffsetT, x, d int32) {
	if x != d || b.forceDefaults {
		b.PrependInt32(x)
		b.Slot(o)
	}
}

// PrependInt64Slot prepends a int64 onto the object at vtable slot `o`.
// If value `x` equals default `d`, then the slot will be set to zero and no
// other data will be written.
func (b *Builder) PrependInt64Slot(o VOffsetT, x, d int64) {
	if x != d || b.forceDefaults {
		b.PrependInt64(x)
		b.Slot(o)
	}
}

// PrependFloat32Slot prepends a float32 onto the object at vtable slot `o`.
// If value `x` equals default `d`, then the slot will be set to zero and no
// other data will be written.
func (b *Builder) PrependFloat32Slot(o VOffsetT, x, d float32) {
	if x != d || b.forceDefaults {
		b.PrependFloat32(x)
		b.Slot(o)
	}
}

// PrependFloat64Slot prepends a float64 onto the object at vtable slot `o`.
// If value `x` equals default `d`, then the slot will be set to zero and no
// other data will be written.
func (b *Builder) PrependFloat64Slot(o VOffsetT, x, d float64) {
	if x != d || b.forceDefaults {
		b.PrependFloat64(x)
		b.Slot(o)
	}
}

// PrependScalarSlot is the generic form of the Prepend*Slot methods.
func PrependScalarSlot[T Scalar](b *Builder, o VOffsetT, x, d T) {
	if x != d || b.forceDefaults {
		PrependScalar(b, x)
		b.Slot(o)
	}
}

// PrependUOffsetTSlot prepends an UOffsetT onto the object at vtable slot `o`.
// If value `x` equals default `d`, then the slot will be set to zero and no
// other data will be written.
func (b *Builder) PrependUOffsetTSlot(o VOffsetT, x, d UOffsetT) {
	if x != d {
		b.PrependUOffsetT(x)
		b.Slot(o)
	}
}

// PrependOffsetSlot prepends a reference to a finished object onto the
// object at vtable slot `o`. A zero offset means "absent" and writes nothing.
func (b *Builder) PrependOffsetSlot(o VOffsetT, off Offset) {
	if off.Value() != 0 {
		b.PrependUOffsetT(off.Value())
		b.Slot(o)
	}
}

// PrependStructSlot prepends a struct onto the object at vtable slot `o`.
// Structs are stored inline, so nothing additional is being added.
// In generated code, `d` is always 0.
func (b *Builder) PrependStructSlot(o VOffsetT, x, d UOffsetT) {
	if x != d {
		b.assertNested()
		if x != b.Offset() {
			panic("inline data write outside of object")
		}
		b.Slot(o)
	}
}

// Slot records the current location in the buffer as the value of the
// vtable entry at byte offset `o`.
func (b *Builder) Slot(o VOffsetT) {
	b.assertNested()
	if o < VtableMetadataFields*SizeVOffsetT || o%SizeVOffsetT != 0 {
		panic("invalid vtable offset: use FieldIndexToOffset")
	}
	b.fieldLocs = append(b.fieldLocs, fieldLoc{off: b.Offset(), id: o})
}

// Required panics when field `o` of the just finished table was not
// written. Generated code calls it for fields declared required.
func (b *Builder) Required(table TableOffset, o VOffsetT, name string) {
	pos := UOffsetT(len(b.Bytes)) - table.Value()
	t := Table{Bytes: b.Bytes, Pos: pos}
	if t.Offset(o) == 0 {
		panic("missing required field " + name)
	}
}

// Finish finalizes a buffer, pointing to the given `rootTable`.
func (b *Builder) Finish(rootTable Offset) {
	b.finish(rootTable, nil, false)
}

// FinishWithFileIdentifier finalizes a buffer, pointing to the given `rootTable`.
// as well as applys a file identifier
func (b *Builder) FinishWithFileIdentifier(rootTable Offset, fid []byte) {
	if len(fid) != FileIdentifierLength {
		panic("incorrect file identifier length")
	}
	b.finish(rootTable, fid, false)
}

// FinishSizePrefixed finalizes a buffer, pointing to the given `rootTable`,
// and prefixes it with its own length.
func (b *Builder) FinishSizePrefixed(rootTable Offset) {
	b.finish(rootTable, nil, true)
}

// FinishSizePrefixedWithFileIdentifier combines FinishSizePrefixed and
// FinishWithFileIdentifier.
func (b *Builder) FinishSizePrefixedWithFileIdentifier(rootTable Offset, fid []byte) {
	if len(fid) != FileIdentifierLength {
		panic("incorrect file identifier length")
	}
	b.finish(rootTable, fid, true)
}

func (b *Builder) finish(rootTable Offset, fid []byte, sizePrefixed bool) {
	if b.finished {
		panic("buffer cannot be finished when it is already finished")
	}
	b.assertNotNested()

	b.vtables = b.vtables[:0]

	toAlign := SizeUOffsetT
	if fid != nil {
		toAlign += FileIdentifierLength
	}
	if sizePrefixed {
		toAlign += SizePrefixLength
	}
	b.Prep(b.minalign, toAlign)

	if fid != nil {
		b.PrependBytes(fid)
	}
	b.PrependUOffsetT(rootTable.Value())
	if sizePrefixed {
		b.PrependUint32(uint32(b.Offset()))
	}
	b.finished = true
}

// PrependBool prepends a bool to the Builder buffer.
// Aligns and checks for space.
func (b *Builder) PrependBool(x bool) UOffsetT {
	b.Prep(SizeBool, 0)
	b.PlaceBool(x)
	return b.Offset()
}

// PrependUint8 prepends a uint8 to the Builder buffer.
// Aligns and checks for space.
func (b *Builder) PrependUint8(x uint8) UOffsetT {
	b.Prep(SizeUint8, 0)
	b.PlaceUint8(x)
	return b.Offset()
}

// PrependUint16 prepends a uint16 to the Builder buffer.
// Aligns and checks for space.
func (b *Builder) PrependUint16(x uint16) UOffsetT {
	b.Prep(SizeUint16, 0)
	b.PlaceUint16(x)
	return b.Offset()
}

// PrependUint32 prepends a uint32 to the Builder buffer.
// Aligns and checks for space.
func (b *Builder) PrependUint32(x uint32) UOffsetT {
	b.Prep(SizeUint32, 0)
	b.PlaceUint32(x)
	return b.Offset()
}

// PrependUint64 prepends a uint64 to the Builder buffer.
// Aligns and checks for space.
func (b *Builder) PrependUint64(x uint64) UOffsetT {
	b.Prep(SizeUint64, 0)
	b.PlaceUint64(x)
	return b.Offset()
}

// PrependInt8 prepends a int8 to the Builder buffer.
// Aligns and checks for space.
func (b *Builder) PrependInt8(x int8) UOffsetT {
	b.Prep(SizeInt8, 0)
	b.PlaceInt8(x)
	return b.Offset()
}

// PrependInt16 prepends a int16 to the Builder buffer.
// Aligns and checks for space.
func (b *Builder) PrependInt16(x int16) UOffsetT {
	b.Prep(SizeInt16, 0)
	b.PlaceInt16(x)
	return b.Offset()
}

// PrependInt32 prepends a int32 to the Builder buffer.
// Aligns and checks for space.
func (b *Builder) PrependInt32(x int32) UOffsetT {
	b.Prep(SizeInt32, 0)
	b.PlaceInt32(x)
	return b.Offset()
}

// PrependInt64 prepends a int64 to the Builder buffer.
// Aligns and checks for space.
func (b *Builder) PrependInt64(x int64) UOffsetT {
	b.Prep(SizeInt64, 0)
	b.PlaceInt64(x)
	return b.Offset()
}

// PrependFloat32 prepends a float32 to the Builder buffer.
// Aligns and checks for space.
func (b *Builder) PrependFloat32(x float32) UOffsetT {
	b.Prep(SizeFloat32, 0)
	b.PlaceFloat32(x)
	return b.Offset()
}

// PrependFloat64 prepends a float64 to the Builder buffer.
// Aligns and checks for space.
func (b *Builder) PrependFloat64(x float64) UOffsetT {
	b.Prep(SizeFloat64, 0)
	b.PlaceFloat64(x)
	return b.Offset()
}

// PrependByte prepends a byte to the Builder buffer.
// Aligns and checks for space.
func (b *Builder) PrependByte(x byte) UOffsetT {
	b.Prep(SizeByte, 0)
	b.PlaceByte(x)
	return b.Offset()
}

// PrependVOffsetT prepends a VOffsetT to the Builder buffer.
// Aligns and checks for space.
func (b *Builder) PrependVOffsetT(x VOffsetT) UOffsetT {
	b.Prep(SizeVOffsetT, 0)
	b.PlaceVOffsetT(x)
	return b.Offset()
}

// PlaceBool prepends a bool to the Builder, without checking for space.
func (b *Builder) PlaceBool(x bool) {
	b.head -= UOffsetT(SizeBool)
	WriteBool(b.Bytes[b.head:], x)
}

// PlaceUint8 prepends a uint8 to the Builder, without checking for space.
func (b *Builder) PlaceUint8(x uint8) {
	b.head -= UOffsetT(SizeUint8)
	WriteUint8(b.Bytes[b.head:], x)
}

// PlaceUint16 prepends a uint16 to the Builder, without checking for space.
func (b *Builder) PlaceUint16(x uint16) {
	b.head -= UOffsetT(SizeUint16)
	WriteUint16(b.Bytes[b.head:], x)
}

// PlaceUint32 prepends a uint32 to the Builder, without checking for space.
func (b *Builder) PlaceUint32(x uint32) {
	b.head -= UOffsetT(SizeUint32)
	WriteUint32(b.Bytes[b.head:], x)
}

// PlaceUint64 prepends a uint64 to the Builder, without checking for space.
func (b *Builder) PlaceUint64(x uint64) {
	b.head -= UOffsetT(SizeUint64)
	WriteUint64(b.Bytes[b.head:], x)
}

// PlaceInt8 prepends a int8 to the Builder, without checking for space.
func (b *Builder) PlaceInt8(x int8) {
	b.head -= UOffsetT(SizeInt8)
	WriteInt8(b.Bytes[b.head:], x)
}

// PlaceInt16 prepends a int16 to the Builder, without checking for space.
func (b *Builder) PlaceInt16(x int16) {
	b.head -= UOffsetT(SizeInt16)
	WriteInt16(b.Bytes[b.head:], x)
}

// PlaceInt32 prepends a int32 to the Builder, without checking for space.
func (b *Builder) PlaceInt32(x int32) {
	b.head -= UOffsetT(SizeInt32)
	WriteInt32(b.Bytes[b.head:], x)
}

// PlaceInt64 prepends a int64 to the Builder, without checking for space.
func (b *Builder) PlaceInt64(x int64) {
	b.head -= UOffsetT(SizeInt64)
	WriteInt64(b.Bytes[b.head:], x)
}

// PlaceFloat32 prepends a float32 to the Builder, without checking for space.
func (b *Builder) PlaceFloat32(x float32) {
	b.head -= UOffsetT(SizeFloat32)
	WriteFloat32(b.Bytes[b.head:], x)
}

// PlaceFloat64 prepends a float64 to the Builder, without checking for space.
func (b *Builder) PlaceFloat64(x float64) {
	b.head -= UOffsetT(SizeFloat64)
	WriteFloat64(b.Bytes[b.head:], x)
}

// PlaceByte prepends a byte to the Builder, without checking for space.
func (b *Builder) PlaceByte(x byte) {
	b.head -= UOffsetT(SizeByte)
	WriteByte(b.Bytes[b.head:], x)
}

// PlaceVOffsetT prepends a VOffsetT to the Builder, without checking for space.
func (b *Builder) PlaceVOffsetT(x VOffsetT) {
	b.head -= UOffsetT(SizeVOffsetT)
	WriteVOffsetT(b.Bytes[b.head:], x)
}

// PlaceSOffsetT prepends a SOffsetT to the Builder, without checking for space.
func (b *Builder) PlaceSOffsetT(x SOffsetT) {
	b.head -= UOffsetT(SizeSOffsetT)
	WriteSOffsetT(b.Bytes[b.head:], x)
}

// PlaceUOffsetT prepends a UOffsetT to the Builder, without checking for space.
func (b *Builder) PlaceUOffsetT(x UOffsetT) {
	b.head -= UOffsetT(SizeUOffsetT)
	WriteUOffsetT(b.Bytes[b.head:], x)
}
