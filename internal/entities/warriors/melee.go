package warriors

import (
	"context"

	"github.com/KirkDiggler/rpg-warband/internal/combatlog"
	"github.com/KirkDiggler/rpg-warband/internal/entities/equipment"
)

// Swordsman fights with a sword
type Swordsman struct {
	base
	sword *equipment.Sword
}

// NewSwordsman creates a swordsman. A nil recorder discards entries.
func NewSwordsman(id string, sword *equipment.Sword, recorder combatlog.Recorder) *Swordsman {
	return &Swordsman{
		base:  newBase(id, KindSwordsman, recorder),
		sword: sword,
	}
}

// Weapon returns the sword
func (s *Swordsman) Weapon() equipment.Weapon {
	return s.sword
}

// Attack always hits for the sword's damage
func (s *Swordsman) Attack(ctx context.Context, target Warrior) *combatlog.Entry {
	return s.record(ctx, target, s.sword.Damage(), combatlog.OutcomeHit)
}

// Spearman fights with a spear
type Spearman struct {
	base
	spear *equipment.Spear
}

// NewSpearman creates a spearman. A nil recorder discards entries.
func NewSpearman(id string, spear *equipment.Spear, recorder combatlog.Recorder) *Spearman {
	return &Spearman{
		base:  newBase(id, KindSpearman, recorder),
		spear: spear,
	}
}

// Weapon returns the spear
func (s *Spearman) Weapon() equipment.Weapon {
	return s.spear
}

// Attack always hits for the spear's damage
func (s *Spearman) Attack(ctx context.Context, target Warrior) *combatlog.Entry {
	return s.record(ctx, target, s.spear.Damage(), combatlog.OutcomeHit)
}

// Knight rides a horse and fights with a spear
type Knight struct {
	base
	spear *equipment.Spear
	horse *equipment.Horse
}

// NewKnight creates a knight. A nil recorder discards entries.
func NewKnight(id string, spear *equipment.Spear, horse *equipment.Horse, recorder combatlog.Recorder) *Knight {
	return &Knight{
		base:  newBase(id, KindKnight, recorder),
		spear: spear,
		horse: horse,
	}
}

// Weapon returns the spear
func (k *Knight) Weapon() equipment.Weapon {
	return k.spear
}

// Horse returns the knight's mount
func (k *Knight) Horse() *equipment.Horse {
	return k.horse
}

// Damage is spear damage plus horse speed
func (k *Knight) Damage() int {
	return k.spear.Damage() + k.horse.Speed()
}

// Attack always hits; the charge adds the horse's speed to the spear
func (k *Knight) Attack(ctx context.Context, target Warrior) *combatlog.Entry {
	return k.record(ctx, target, k.Damage(), combatlog.OutcomeHit)
}

var (
	_ Warrior = (*Swordsman)(nil)
	_ Warrior = (*Spearman)(nil)
	_ Warrior = (*Knight)(nil)
)
