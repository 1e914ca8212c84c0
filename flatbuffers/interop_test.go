package flatbuffers_test

import (
	"testing"

	gfb "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flatbuffers "github.com/blastbao/gomem/flatbuffers"
	"github.com/blastbao/gomem/internal/mygame"
)

// monster field indexes, as upstream slot numbers
const (
	slotPos = iota
	slotMana
	slotHp
	slotName
	slotInventory
	slotColor
	slotWeapons
	slotEquippedType
	slotEquipped
	slotPath
	slotEnemy
	slotTestbool
	slotTestf
	slotTestnestedflatbuffer
	slotNames
	monsterNumFields
)

// buildUpstreamMonster writes the same Monster as buildInteropMonster
// with the upstream Go builder.
func buildUpstreamMonster() []byte {
	b := gfb.NewBuilder(0)

	enemyName := b.CreateString("Goblin")
	b.StartObject(monsterNumFields)
	b.PrependUOffsetTSlot(slotName, enemyName, 0)
	b.PrependInt16Slot(slotHp, 20, 100)
	enemy := b.EndObject()

	var weapons []gfb.UOffsetT
	for _, w := range []struct {
		name   string
		damage int16
	}{{"Sword", 3}, {"Axe", 5}} {
		name := b.CreateString(w.name)
		b.StartObject(2)
		b.PrependUOffsetTSlot(0, name, 0)
		b.PrependInt16Slot(1, w.damage, 0)
		weapons = append(weapons, b.EndObject())
	}
	b.StartVector(4, len(weapons), 4)
	for i := len(weapons) - 1; i >= 0; i-- {
		b.PrependUOffsetT(weapons[i])
	}
	weaponsVec := b.EndVector(len(weapons))

	b.StartVector(12, 2, 4)
	for _, v := range [][3]float32{{4, 5, 6}, {1, 2, 3}} {
		b.Prep(4, 12)
		b.PrependFloat32(v[2])
		b.PrependFloat32(v[1])
		b.PrependFloat32(v[0])
	}
	path := b.EndVector(2)

	grunt := b.CreateString("grunt")
	brute := b.CreateString("brute")
	b.StartVector(4, 2, 4)
	b.PrependUOffsetT(brute)
	b.PrependUOffsetT(grunt)
	names := b.EndVector(2)

	inventory := b.CreateByteVector([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	name := b.CreateString("Orc")

	b.StartObject(monsterNumFields)
	b.Prep(4, 12)
	b.PrependFloat32(3)
	b.PrependFloat32(2)
	b.PrependFloat32(1)
	b.PrependStructSlot(slotPos, b.Offset(), 0)
	b.PrependInt16Slot(slotHp, 300, 100)
	b.PrependUOffsetTSlot(slotName, name, 0)
	b.PrependUOffsetTSlot(slotInventory, inventory, 0)
	b.PrependInt8Slot(slotColor, int8(mygame.ColorRed), int8(mygame.ColorBlue))
	b.PrependUOffsetTSlot(slotWeapons, weaponsVec, 0)
	b.PrependByteSlot(slotEquippedType, byte(mygame.EquipmentWeapon), 0)
	b.PrependUOffsetTSlot(slotEquipped, weapons[1], 0)
	b.PrependUOffsetTSlot(slotPath, path, 0)
	b.PrependUOffsetTSlot(slotEnemy, enemy, 0)
	b.PrependBoolSlot(slotTestbool, true, false)
	b.PrependFloat32Slot(slotTestf, 2.5, 3.14)
	b.PrependUOffsetTSlot(slotNames, names, 0)
	b.Finish(b.EndObject())
	return b.FinishedBytes()
}

func buildInteropMonster() []byte {
	b := flatbuffers.NewBuilder(0)

	enemyName := b.CreateString("Goblin")
	start := mygame.MonsterStart(b)
	mygame.MonsterAddName(b, enemyName)
	mygame.MonsterAddHp(b, 20)
	enemy := mygame.MonsterEnd(b, start)

	var weapons []flatbuffers.TableOffset
	for _, w := range []struct {
		name   string
		damage int16
	}{{"Sword", 3}, {"Axe", 5}} {
		name := b.CreateString(w.name)
		start := mygame.WeaponStart(b)
		mygame.WeaponAddName(b, name)
		mygame.WeaponAddDamage(b, w.damage)
		weapons = append(weapons, mygame.WeaponEnd(b, start))
	}
	weaponsVec := flatbuffers.CreateOffsetVector(b, weapons)

	mygame.MonsterStartPathVector(b, 2)
	mygame.CreateVec3(b, 4, 5, 6)
	mygame.CreateVec3(b, 1, 2, 3)
	path := b.EndVector(2)

	grunt := b.CreateString("grunt")
	brute := b.CreateString("brute")
	names := flatbuffers.CreateOffsetVector(b, []flatbuffers.StringOffset{grunt, brute})

	inventory := b.CreateByteVector([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	name := b.CreateString("Orc")

	start = mygame.MonsterStart(b)
	mygame.MonsterAddPos(b, mygame.CreateVec3(b, 1, 2, 3))
	mygame.MonsterAddHp(b, 300)
	mygame.MonsterAddName(b, name)
	mygame.MonsterAddInventory(b, inventory)
	mygame.MonsterAddColor(b, mygame.ColorRed)
	mygame.MonsterAddWeapons(b, weaponsVec)
	mygame.MonsterAddEquippedType(b, mygame.EquipmentWeapon)
	mygame.MonsterAddEquipped(b, weapons[1].AsUnion())
	mygame.MonsterAddPath(b, path)
	mygame.MonsterAddEnemy(b, enemy)
	mygame.MonsterAddTestbool(b, true)
	mygame.MonsterAddTestf(b, 2.5)
	mygame.MonsterAddNames(b, names)
	b.Finish(mygame.MonsterEnd(b, start))
	return b.FinishedBytes()
}

func TestUpstreamByteCompatibility(t *testing.T) {
	assert.Equal(t, buildUpstreamMonster(), buildInteropMonster())
}

func TestVerifyUpstreamBuffer(t *testing.T) {
	m, err := mygame.RootAsMonster(buildUpstreamMonster())
	require.NoError(t, err)

	assert.Equal(t, "Orc", m.Name())
	assert.Equal(t, int16(300), m.Hp())
	assert.Equal(t, float32(2.5), m.Testf())
	assert.Equal(t, "Goblin", m.Enemy(nil).Name())
	assert.Equal(t, 2, m.WeaponsLength())
	assert.Equal(t, []string{"grunt", "brute"}, collect(m.Names()))
}

func TestUpstreamReadsOurBuffer(t *testing.T) {
	buf := buildInteropMonster()
	tab := &gfb.Table{Bytes: buf, Pos: gfb.GetUOffsetT(buf)}

	assert.Equal(t, int16(300), tab.GetInt16Slot(gfb.VOffsetT(mygame.MonsterVTHp), 100))
	assert.Equal(t, int16(150), tab.GetInt16Slot(gfb.VOffsetT(mygame.MonsterVTMana), 150))
	o := tab.Offset(gfb.VOffsetT(mygame.MonsterVTName))
	require.NotZero(t, o)
	assert.Equal(t, "Orc", tab.String(gfb.UOffsetT(o)+tab.Pos))
}

func collect[T any](v flatbuffers.Vector[T]) []T {
	var out []T
	for _, x := range v.All() {
		out = append(out, x)
	}
	return out
}
