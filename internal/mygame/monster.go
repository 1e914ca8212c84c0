package mygame

import (
	flatbuffers "github.com/blastbao/gomem/flatbuffers"
)

// MonsterIdentifier is the file identifier of Monster buffers.
const MonsterIdentifier = "MONS"

const (
	MonsterVTPos                  = 4
	MonsterVTMana                 = 6
	MonsterVTHp                   = 8
	MonsterVTName                 = 10
	MonsterVTInventory            = 12
	MonsterVTColor                = 14
	MonsterVTWeapons              = 16
	MonsterVTEquippedType         = 18
	MonsterVTEquipped             = 20
	MonsterVTPath                 = 22
	MonsterVTEnemy                = 24
	MonsterVTTestbool             = 26
	MonsterVTTestf                = 28
	MonsterVTTestnestedflatbuffer = 30
	MonsterVTNames                = 32
)

type Monster struct {
	_tab flatbuffers.Table
}

func GetRootAsMonster(buf []byte, offset flatbuffers.UOffsetT) *Monster {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &Monster{}
	x.Init(buf, n+offset)
	return x
}

func GetSizePrefixedRootAsMonster(buf []byte, offset flatbuffers.UOffsetT) *Monster {
	n := flatbuffers.GetUOffsetT(buf[offset+flatbuffers.SizePrefixLength:])
	x := &Monster{}
	x.Init(buf, n+offset+flatbuffers.SizePrefixLength)
	return x
}

// RootAsMonster verifies buf and returns its root Monster.
func RootAsMonster(buf []byte) (*Monster, error) {
	t, err := flatbuffers.Root(buf, MonsterVerify)
	if err != nil {
		return nil, err
	}
	x := &Monster{}
	x.Init(t.Bytes, t.Pos)
	return x, nil
}

// RootAsMonsterWithOptions is RootAsMonster with explicit verifier limits.
func RootAsMonsterWithOptions(buf []byte, opts flatbuffers.VerifierOptions) (*Monster, error) {
	t, err := flatbuffers.RootWithOptions(buf, opts, MonsterVerify)
	if err != nil {
		return nil, err
	}
	x := &Monster{}
	x.Init(t.Bytes, t.Pos)
	return x, nil
}

func MonsterBufferHasIdentifier(buf []byte) bool {
	return flatbuffers.BufferHasIdentifier(buf, MonsterIdentifier, false)
}

func (rcv *Monster) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Monster) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *Monster) Pos(obj *Vec3) *Vec3 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(MonsterVTPos))
	if o != 0 {
		x := o + rcv._tab.Pos
		if obj == nil {
			obj = new(Vec3)
		}
		obj.Init(rcv._tab.Bytes, x)
		return obj
	}
	return nil
}

func (rcv *Monster) Mana() int16 {
	return rcv._tab.GetInt16Slot(MonsterVTMana, 150)
}

func (rcv *Monster) MutateMana(n int16) bool {
	return rcv._tab.MutateInt16Slot(MonsterVTMana, n)
}

func (rcv *Monster) Hp() int16 {
	return rcv._tab.GetInt16Slot(MonsterVTHp, 100)
}

func (rcv *Monster) MutateHp(n int16) bool {
	return rcv._tab.MutateInt16Slot(MonsterVTHp, n)
}

func (rcv *Monster) Name() string {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(MonsterVTName))
	if o != 0 {
		return rcv._tab.String(o + rcv._tab.Pos)
	}
	return ""
}

func (rcv *Monster) Inventory() flatbuffers.Vector[byte] {
	if pos, ok := rcv._tab.VectorAt(MonsterVTInventory); ok {
		return flatbuffers.ByteVectorView(rcv._tab.Bytes, pos)
	}
	return flatbuffers.Vector[byte]{}
}

func (rcv *Monster) InventoryBytes() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(MonsterVTInventory))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func (rcv *Monster) Color() Color {
	return Color(rcv._tab.GetInt8Slot(MonsterVTColor, int8(ColorBlue)))
}

func (rcv *Monster) MutateColor(n Color) bool {
	return rcv._tab.MutateInt8Slot(MonsterVTColor, int8(n))
}

func (rcv *Monster) Weapons(obj *Weapon, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(MonsterVTWeapons))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * 4
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func (rcv *Monster) WeaponsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(MonsterVTWeapons))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *Monster) EquippedType() Equipment {
	return Equipment(rcv._tab.GetByteSlot(MonsterVTEquippedType, 0))
}

func (rcv *Monster) Equipped(obj *flatbuffers.Table) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(MonsterVTEquipped))
	if o != 0 {
		rcv._tab.Union(obj, o)
		return true
	}
	return false
}

func (rcv *Monster) Path() flatbuffers.Vector[flatbuffers.Struct] {
	if pos, ok := rcv._tab.VectorAt(MonsterVTPath); ok {
		return flatbuffers.StructVector(rcv._tab.Bytes, pos, Vec3Size)
	}
	return flatbuffers.Vector[flatbuffers.Struct]{}
}

func (rcv *Monster) Enemy(obj *Monster) *Monster {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(MonsterVTEnemy))
	if o != 0 {
		x := rcv._tab.Indirect(o + rcv._tab.Pos)
		if obj == nil {
			obj = new(Monster)
		}
		obj.Init(rcv._tab.Bytes, x)
		return obj
	}
	return nil
}

func (rcv *Monster) Testbool() bool {
	return rcv._tab.GetBoolSlot(MonsterVTTestbool, false)
}

func (rcv *Monster) MutateTestbool(n bool) bool {
	return rcv._tab.MutateBoolSlot(MonsterVTTestbool, n)
}

func (rcv *Monster) Testf() float32 {
	return rcv._tab.GetFloat32Slot(MonsterVTTestf, 3.14)
}

func (rcv *Monster) MutateTestf(n float32) bool {
	return rcv._tab.MutateFloat32Slot(MonsterVTTestf, n)
}

func (rcv *Monster) TestnestedflatbufferBytes() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(MonsterVTTestnestedflatbuffer))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func (rcv *Monster) TestnestedflatbufferNestedRoot() *Monster {
	b := rcv.TestnestedflatbufferBytes()
	if len(b) == 0 {
		return nil
	}
	return GetRootAsMonster(b, 0)
}

func (rcv *Monster) Names() flatbuffers.Vector[string] {
	if pos, ok := rcv._tab.VectorAt(MonsterVTNames); ok {
		return flatbuffers.StringVector(rcv._tab.Bytes, pos)
	}
	return flatbuffers.Vector[string]{}
}

func MonsterStart(builder *flatbuffers.Builder) flatbuffers.UnfinishedTable {
	return builder.StartTable()
}
func MonsterAddPos(builder *flatbuffers.Builder, pos flatbuffers.UOffsetT) {
	builder.PrependStructSlot(MonsterVTPos, pos, 0)
}
func MonsterAddMana(builder *flatbuffers.Builder, mana int16) {
	builder.PrependInt16Slot(MonsterVTMana, mana, 150)
}
func MonsterAddHp(builder *flatbuffers.Builder, hp int16) {
	builder.PrependInt16Slot(MonsterVTHp, hp, 100)
}
func MonsterAddName(builder *flatbuffers.Builder, name flatbuffers.StringOffset) {
	builder.PrependOffsetSlot(MonsterVTName, name)
}
func MonsterAddInventory(builder *flatbuffers.Builder, inventory flatbuffers.VectorOffset) {
	builder.PrependOffsetSlot(MonsterVTInventory, inventory)
}
func MonsterAddColor(builder *flatbuffers.Builder, color Color) {
	builder.PrependInt8Slot(MonsterVTColor, int8(color), int8(ColorBlue))
}
func MonsterAddWeapons(builder *flatbuffers.Builder, weapons flatbuffers.VectorOffset) {
	builder.PrependOffsetSlot(MonsterVTWeapons, weapons)
}
func MonsterStartWeaponsVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}
func MonsterAddEquippedType(builder *flatbuffers.Builder, equippedType Equipment) {
	builder.PrependByteSlot(MonsterVTEquippedType, byte(equippedType), 0)
}
func MonsterAddEquipped(builder *flatbuffers.Builder, equipped flatbuffers.UnionOffset) {
	builder.PrependOffsetSlot(MonsterVTEquipped, equipped)
}
func MonsterAddPath(builder *flatbuffers.Builder, path flatbuffers.VectorOffset) {
	builder.PrependOffsetSlot(MonsterVTPath, path)
}
func MonsterStartPathVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(Vec3Size, numElems, Vec3Align)
}
func MonsterAddEnemy(builder *flatbuffers.Builder, enemy flatbuffers.TableOffset) {
	builder.PrependOffsetSlot(MonsterVTEnemy, enemy)
}
func MonsterAddTestbool(builder *flatbuffers.Builder, testbool bool) {
	builder.PrependBoolSlot(MonsterVTTestbool, testbool, false)
}
func MonsterAddTestf(builder *flatbuffers.Builder, testf float32) {
	builder.PrependFloat32Slot(MonsterVTTestf, testf, 3.14)
}
func MonsterAddTestnestedflatbuffer(builder *flatbuffers.Builder, testnestedflatbuffer flatbuffers.VectorOffset) {
	builder.PrependOffsetSlot(MonsterVTTestnestedflatbuffer, testnestedflatbuffer)
}
func MonsterAddNames(builder *flatbuffers.Builder, names flatbuffers.VectorOffset) {
	builder.PrependOffsetSlot(MonsterVTNames, names)
}
func MonsterEnd(builder *flatbuffers.Builder, start flatbuffers.UnfinishedTable) flatbuffers.TableOffset {
	o := builder.EndTable(start)
	builder.Required(o, MonsterVTName, "name")
	return o
}

func FinishMonsterBuffer(builder *flatbuffers.Builder, offset flatbuffers.TableOffset) {
	builder.FinishWithFileIdentifier(offset, []byte(MonsterIdentifier))
}

func FinishSizePrefixedMonsterBuffer(builder *flatbuffers.Builder, offset flatbuffers.TableOffset) {
	builder.FinishSizePrefixedWithFileIdentifier(offset, []byte(MonsterIdentifier))
}

var (
	monsterNameField  = flatbuffers.Forward((*flatbuffers.Verifier).VerifyString)
	monsterBytesField = flatbuffers.Forward(flatbuffers.VerifyScalarVector[uint8])
	monsterPosField   = flatbuffers.VerifyFunc(Vec3Verify)
	monsterWeapons    = flatbuffers.Forward(func(v *flatbuffers.Verifier, pos flatbuffers.UOffsetT) error {
		return v.VerifyVectorOfOffsets(pos, WeaponVerify)
	})
	monsterPath = flatbuffers.Forward(func(v *flatbuffers.Verifier, pos flatbuffers.UOffsetT) error {
		return v.VerifyStructVector(pos, Vec3Size, Vec3Align)
	})
	monsterNames = flatbuffers.Forward(func(v *flatbuffers.Verifier, pos flatbuffers.UOffsetT) error {
		return v.VerifyVectorOfOffsets(pos, (*flatbuffers.Verifier).VerifyString)
	})
)

// MonsterVerify checks the Monster table at pos and everything it refers
// to.
func MonsterVerify(v *flatbuffers.Verifier, pos flatbuffers.UOffsetT) error {
	return v.VisitTable(pos, func(tv *flatbuffers.TableVerifier) error {
		if err := tv.VisitField("pos", MonsterVTPos, monsterPosField, false); err != nil {
			return err
		}
		if err := tv.VisitField("mana", MonsterVTMana, flatbuffers.VerifyScalar[int16], false); err != nil {
			return err
		}
		if err := tv.VisitField("hp", MonsterVTHp, flatbuffers.VerifyScalar[int16], false); err != nil {
			return err
		}
		if err := tv.VisitField("name", MonsterVTName, monsterNameField, true); err != nil {
			return err
		}
		if err := tv.VisitField("inventory", MonsterVTInventory, monsterBytesField, false); err != nil {
			return err
		}
		if err := tv.VisitField("color", MonsterVTColor, flatbuffers.VerifyScalar[int8], false); err != nil {
			return err
		}
		if err := tv.VisitField("weapons", MonsterVTWeapons, monsterWeapons, false); err != nil {
			return err
		}
		if err := tv.VisitUnion("equipped_type", MonsterVTEquippedType, "equipped", MonsterVTEquipped, false, EquipmentVerify); err != nil {
			return err
		}
		if err := tv.VisitField("path", MonsterVTPath, monsterPath, false); err != nil {
			return err
		}
		if err := tv.VisitField("enemy", MonsterVTEnemy, flatbuffers.Forward(MonsterVerify), false); err != nil {
			return err
		}
		if err := tv.VisitField("testbool", MonsterVTTestbool, flatbuffers.VerifyScalar[bool], false); err != nil {
			return err
		}
		if err := tv.VisitField("testf", MonsterVTTestf, flatbuffers.VerifyScalar[float32], false); err != nil {
			return err
		}
		nested := func(v *flatbuffers.Verifier, pos flatbuffers.UOffsetT) error {
			return v.VerifyNestedFlatbuffer(pos, MonsterVerify)
		}
		if err := tv.VisitField("testnestedflatbuffer", MonsterVTTestnestedflatbuffer, flatbuffers.Forward(nested), false); err != nil {
			return err
		}
		return tv.VisitField("names", MonsterVTNames, monsterNames, false)
	})
}
