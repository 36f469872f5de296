// Package warriors defines the combat units assembled by the builders.
package warriors

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-warband/internal/combatlog"
	"github.com/KirkDiggler/rpg-warband/internal/entities/equipment"
)

// Kind identifies a warrior variant
type Kind string

// Define all warrior kinds
const (
	KindSwordsman   Kind = "swordsman"
	KindArcher      Kind = "archer"
	KindCrossbowman Kind = "crossbowman"
	KindSpearman    Kind = "spearman"
	KindKnight      Kind = "knight"
)

var kindNames = map[Kind]string{
	KindSwordsman:   "Swordsman",
	KindArcher:      "Archer",
	KindCrossbowman: "Crossbowman",
	KindSpearman:    "Spearman",
	KindKnight:      "Knight",
}

// String returns the string representation of the kind
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the kind is valid
func (k Kind) IsValid() bool {
	_, ok := kindNames[k]
	return ok
}

// DisplayName returns the name warriors of this kind fight under
func (k Kind) DisplayName() string {
	return kindNames[k]
}

// Kinds returns every kind in muster order
func Kinds() []Kind {
	return []Kind{
		KindSwordsman,
		KindArcher,
		KindCrossbowman,
		KindKnight,
		KindSpearman,
	}
}

// Warrior is a combat unit. Warriors are not safe for concurrent use; callers
// serialize attacks.
type Warrior interface {
	core.Entity

	Name() string
	Kind() Kind
	Weapon() equipment.Weapon

	// Attack strikes target and records exactly one entry, which it also
	// returns. The target is never modified.
	Attack(ctx context.Context, target Warrior) *combatlog.Entry
}

// base holds what every variant shares
type base struct {
	id       string
	kind     Kind
	recorder combatlog.Recorder
}

func newBase(id string, kind Kind, recorder combatlog.Recorder) base {
	if recorder == nil {
		recorder = combatlog.Discard
	}
	return base{id: id, kind: kind, recorder: recorder}
}

// GetID returns the warrior's ID
func (b *base) GetID() string {
	return b.id
}

// GetType returns the kind for rpg-toolkit
func (b *base) GetType() string {
	return b.kind.String()
}

// Name returns the display name
func (b *base) Name() string {
	return b.kind.DisplayName()
}

// Kind returns the warrior kind
func (b *base) Kind() Kind {
	return b.kind
}

func (b *base) record(ctx context.Context, target Warrior, damage int, outcome combatlog.Outcome) *combatlog.Entry {
	entry := &combatlog.Entry{
		AttackerID: b.id,
		Attacker:   b.Name(),
		DefenderID: target.GetID(),
		Defender:   target.Name(),
		Damage:     damage,
		Outcome:    outcome,
	}
	b.recorder.Record(ctx, entry)
	return entry
}
