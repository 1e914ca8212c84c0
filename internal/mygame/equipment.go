package mygame

import (
	"strconv"

	flatbuffers "github.com/blastbao/gomem/flatbuffers"
)

type Equipment byte

const (
	EquipmentNONE   Equipment = 0
	EquipmentWeapon Equipment = 1
)

var EnumNamesEquipment = map[Equipment]string{
	EquipmentNONE:   "NONE",
	EquipmentWeapon: "Weapon",
}

func (v Equipment) String() string {
	if s, ok := EnumNamesEquipment[v]; ok {
		return s
	}
	return "Equipment(" + strconv.FormatInt(int64(v), 10) + ")"
}

// EquipmentVerify checks the union value at pos, an offset to the variant
// selected by key.
func EquipmentVerify(v *flatbuffers.Verifier, key uint8, pos flatbuffers.UOffsetT) error {
	switch Equipment(key) {
	case EquipmentWeapon:
		return v.VerifyUnionVariant("Weapon", pos, flatbuffers.Forward(WeaponVerify))
	default:
		return flatbuffers.NewUnknownUnionVariantError("Equipment", key, pos)
	}
}
