package mygame

import (
	flatbuffers "github.com/blastbao/gomem/flatbuffers"
)

const (
	WeaponVTName   = 4
	WeaponVTDamage = 6
)

type Weapon struct {
	_tab flatbuffers.Table
}

func GetRootAsWeapon(buf []byte, offset flatbuffers.UOffsetT) *Weapon {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &Weapon{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *Weapon) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Weapon) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *Weapon) Name() string {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(WeaponVTName))
	if o != 0 {
		return rcv._tab.String(o + rcv._tab.Pos)
	}
	return ""
}

func (rcv *Weapon) Damage() int16 {
	return rcv._tab.GetInt16Slot(WeaponVTDamage, 0)
}

func (rcv *Weapon) MutateDamage(n int16) bool {
	return rcv._tab.MutateInt16Slot(WeaponVTDamage, n)
}

func WeaponStart(builder *flatbuffers.Builder) flatbuffers.UnfinishedTable {
	return builder.StartTable()
}
func WeaponAddName(builder *flatbuffers.Builder, name flatbuffers.StringOffset) {
	builder.PrependOffsetSlot(WeaponVTName, name)
}
func WeaponAddDamage(builder *flatbuffers.Builder, damage int16) {
	builder.PrependInt16Slot(WeaponVTDamage, damage, 0)
}
func WeaponEnd(builder *flatbuffers.Builder, start flatbuffers.UnfinishedTable) flatbuffers.TableOffset {
	return builder.EndTable(start)
}

var weaponNameField = flatbuffers.Forward((*flatbuffers.Verifier).VerifyString)

func WeaponVerify(v *flatbuffers.Verifier, pos flatbuffers.UOffsetT) error {
	return v.VisitTable(pos, func(tv *flatbuffers.TableVerifier) error {
		if err := tv.VisitField("name", WeaponVTName, weaponNameField, false); err != nil {
			return err
		}
		return tv.VisitField("damage", WeaponVTDamage, flatbuffers.VerifyScalar[int16], false)
	})
}
