package equipment

// Sword deals double damage when wielded two-handed
type Sword struct {
	twoHanded bool
}

// NewSword creates a sword
func NewSword(twoHanded bool) *Sword {
	return &Sword{twoHanded: twoHanded}
}

// TwoHanded reports whether the sword is wielded with both hands
func (s *Sword) TwoHanded() bool {
	return s.twoHanded
}

// Type returns WeaponSword
func (s *Sword) Type() WeaponType {
	return WeaponSword
}

// Damage returns 60, or 120 two-handed
func (s *Sword) Damage() int {
	if s.twoHanded {
		return SwordDamage * 2
	}
	return SwordDamage
}

// Bow is the archer's weapon
type Bow struct{}

// NewBow creates a bow
func NewBow() *Bow {
	return &Bow{}
}

func (b *Bow) Type() WeaponType { return WeaponBow }

func (b *Bow) Damage() int { return BowDamage }

// Crossbow is the crossbowman's weapon
type Crossbow struct{}

// NewCrossbow creates a crossbow
func NewCrossbow() *Crossbow {
	return &Crossbow{}
}

func (c *Crossbow) Type() WeaponType { return WeaponCrossbow }

func (c *Crossbow) Damage() int { return CrossbowDamage }

// Spear is carried by spearmen and knights
type Spear struct{}

// NewSpear creates a spear
func NewSpear() *Spear {
	return &Spear{}
}

func (s *Spear) Type() WeaponType { return WeaponSpear }

func (s *Spear) Damage() int { return SpearDamage }

// Verify all weapons implement Weapon
var (
	_ Weapon = (*Sword)(nil)
	_ Weapon = (*Bow)(nil)
	_ Weapon = (*Crossbow)(nil)
	_ Weapon = (*Spear)(nil)
)
