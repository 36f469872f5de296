// Package equipment defines the weapons and mounts warriors are assembled from.
package equipment

// WeaponType identifies a weapon variant
type WeaponType string

// Define all available weapon types
const (
	WeaponSword    WeaponType = "sword"
	WeaponBow      WeaponType = "bow"
	WeaponCrossbow WeaponType = "crossbow"
	WeaponSpear    WeaponType = "spear"
)

// String returns the string representation of the weapon type
func (w WeaponType) String() string {
	return string(w)
}

// IsValid checks if the weapon type is valid
func (w WeaponType) IsValid() bool {
	switch w {
	case WeaponSword, WeaponBow, WeaponCrossbow, WeaponSpear:
		return true
	default:
		return false
	}
}

// AllWeaponTypes returns a slice of all valid weapon types
func AllWeaponTypes() []WeaponType {
	return []WeaponType{
		WeaponSword,
		WeaponBow,
		WeaponCrossbow,
		WeaponSpear,
	}
}

// Base damage values
const (
	SwordDamage    = 60
	BowDamage      = 80
	CrossbowDamage = 120
	SpearDamage    = 100
)

// Weapon is anything a warrior can hit with
type Weapon interface {
	Type() WeaponType
	Damage() int
}
