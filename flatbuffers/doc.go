// Package flatbuffers provides facilities to read, write and verify
// flatbuffers objects.
//
// A Builder serializes a tree of tables, vectors, strings and structs into
// one buffer, writing from the back of the buffer towards the front so
// that children always precede (in write order) the parents that point to
// them. Tables with identical layouts share a single vtable.
//
// A finished buffer is read in place through Table, Struct and Vector
// views. The views do no bounds checking: buffers from untrusted sources
// must first pass a Verifier, which re-derives every offset and checks
// range, alignment, nesting depth, table count and apparent size. Root,
// RootWithOptions and SizePrefixedRoot do both in one call.
//
// Building and reading a table with an int32 at field 0 and a string at
// field 1:
//
//	b := flatbuffers.NewBuilder(0)
//	name := b.CreateString("hello")
//	start := b.StartTable()
//	b.PrependOffsetSlot(flatbuffers.FieldIndexToOffset(1), name)
//	b.PrependInt32Slot(flatbuffers.FieldIndexToOffset(0), 42, 0)
//	b.Finish(b.EndTable(start))
//
//	t := flatbuffers.GetRootAsTable(b.FinishedBytes(), 0)
//	n := t.GetInt32Slot(flatbuffers.FieldIndexToOffset(0), 0) // 42
//	if pos, ok := t.Field(flatbuffers.FieldIndexToOffset(1)); ok {
//		s := t.String(pos) // "hello"
//	}
package flatbuffers

// 简单来说 FlatBuffers 就是把对象数据保存在一个一维的 []byte 中，每个 table 分为两部分：
//	vtable：元数据，记录每个字段相对 table 起始位置的偏移（2B 一项，0 表示字段未设置）；
//	table_data：开头 4B 是指向 vtable 的 SOffsetT，之后是各字段的值。
//
// 标量和 struct 直接内联存储在 table_data 中；string、vector、子 table 只存一个 4B 的 UOffsetT，
// 需要再做一次相对寻址才能拿到真实数据。
//
// 所有数据都按小端存储。写入从 buffer 尾部向头部进行，读取则按正常顺序从头部开始：
//	[size prefix (可选)] [root UOffsetT] [file identifier (可选)] ... [vtable] [table] ...
//
// 第 i 个字段在 vtable 中的位置为 4 + 2*i（前 4B 是 vtable 长度和 table 长度），即 FieldIndexToOffset(i)。
// 字段超出 vtable 长度（旧代码写的数据）时同样视为未设置，读取时返回默认值，以此实现前后向兼容。
