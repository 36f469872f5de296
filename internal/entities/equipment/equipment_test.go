package equipment_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-warband/internal/entities/equipment"
)

type EquipmentTestSuite struct {
	suite.Suite
}

func TestEquipmentSuite(t *testing.T) {
	suite.Run(t, new(EquipmentTestSuite))
}

func (s *EquipmentTestSuite) TestWeaponDamage() {
	testCases := []struct {
		name       string
		weapon     equipment.Weapon
		weaponType equipment.WeaponType
		damage     int
	}{
		{"one-handed sword", equipment.NewSword(false), equipment.WeaponSword, 60},
		{"two-handed sword", equipment.NewSword(true), equipment.WeaponSword, 120},
		{"bow", equipment.NewBow(), equipment.WeaponBow, 80},
		{"crossbow", equipment.NewCrossbow(), equipment.WeaponCrossbow, 120},
		{"spear", equipment.NewSpear(), equipment.WeaponSpear, 100},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.weaponType, tc.weapon.Type())
			// Damage never changes between calls
			for i := 0; i < 3; i++ {
				s.Assert().Equal(tc.damage, tc.weapon.Damage())
			}
		})
	}
}

func (s *EquipmentTestSuite) TestSwordTwoHanded() {
	s.Assert().True(equipment.NewSword(true).TwoHanded())
	s.Assert().False(equipment.NewSword(false).TwoHanded())
}

func (s *EquipmentTestSuite) TestHorseSpeed() {
	s.Assert().Equal(40, equipment.NewHorse(40).Speed())
	s.Assert().Equal(0, equipment.NewHorse(0).Speed())
}

func (s *EquipmentTestSuite) TestWeaponTypes() {
	for _, wt := range equipment.AllWeaponTypes() {
		s.Assert().True(wt.IsValid(), wt.String())
	}
	s.Assert().False(equipment.WeaponType("lance").IsValid())
}
