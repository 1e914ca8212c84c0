package mygame

import (
	flatbuffers "github.com/blastbao/gomem/flatbuffers"
)

// BuildSampleMonster writes a Monster that sets every field and returns
// the finished buffer. b is reset first.
func BuildSampleMonster(b *flatbuffers.Builder) []byte {
	b.Reset()
	nestedBuf := buildNamedMonster("Nested")

	enemyName := b.CreateString("Goblin")
	enemyStart := MonsterStart(b)
	MonsterAddName(b, enemyName)
	enemy := MonsterEnd(b, enemyStart)

	sword := b.CreateSharedString("Sword")
	axe := b.CreateSharedString("Axe")
	weapons := make([]flatbuffers.TableOffset, 0, 2)
	for _, w := range []struct {
		name   flatbuffers.StringOffset
		damage int16
	}{{sword, 3}, {axe, 5}} {
		start := WeaponStart(b)
		WeaponAddName(b, w.name)
		WeaponAddDamage(b, w.damage)
		weapons = append(weapons, WeaponEnd(b, start))
	}
	weaponsVec := flatbuffers.CreateOffsetVector(b, weapons)

	MonsterStartPathVector(b, 2)
	CreateVec3(b, 4, 5, 6)
	CreateVec3(b, 1, 2, 3)
	path := b.EndVector(2)

	names := flatbuffers.CreateOffsetVector(b, []flatbuffers.StringOffset{
		b.CreateString("grunt"), b.CreateString("brute"),
	})
	inventory := b.CreateByteVector([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	nested := b.CreateByteVector(nestedBuf)
	name := b.CreateString("Orc")

	start := MonsterStart(b)
	MonsterAddPos(b, CreateVec3(b, 1, 2, 3))
	MonsterAddHp(b, 300)
	MonsterAddName(b, name)
	MonsterAddInventory(b, inventory)
	MonsterAddColor(b, ColorRed)
	MonsterAddWeapons(b, weaponsVec)
	MonsterAddEquippedType(b, EquipmentWeapon)
	MonsterAddEquipped(b, weapons[1].AsUnion())
	MonsterAddPath(b, path)
	MonsterAddEnemy(b, enemy)
	MonsterAddTestbool(b, true)
	MonsterAddTestnestedflatbuffer(b, nested)
	MonsterAddNames(b, names)
	FinishMonsterBuffer(b, MonsterEnd(b, start))
	return b.FinishedBytes()
}

func buildNamedMonster(name string) []byte {
	b := flatbuffers.NewBuilder(0)
	n := b.CreateString(name)
	start := MonsterStart(b)
	MonsterAddName(b, n)
	b.Finish(MonsterEnd(b, start))
	return b.FinishedBytes()
}
