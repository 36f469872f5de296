package warriors

import (
	"context"

	"github.com/KirkDiggler/rpg-warband/internal/combatlog"
	"github.com/KirkDiggler/rpg-warband/internal/entities/equipment"
)

// quiver is a depletable ammunition count. It never goes below zero and is
// never refilled.
type quiver struct {
	capacity  int
	remaining int
}

func newQuiver(capacity int) quiver {
	if capacity < 0 {
		capacity = 0
	}
	return quiver{capacity: capacity, remaining: capacity}
}

// draw takes one round if any is left
func (q *quiver) draw() bool {
	if q.remaining == 0 {
		return false
	}
	q.remaining--
	return true
}

// Archer shoots arrows from a bow
type Archer struct {
	base
	bow    *equipment.Bow
	arrows quiver
}

// NewArcher creates an archer carrying quiverCapacity arrows. A nil recorder
// discards entries.
func NewArcher(id string, bow *equipment.Bow, quiverCapacity int, recorder combatlog.Recorder) *Archer {
	return &Archer{
		base:   newBase(id, KindArcher, recorder),
		bow:    bow,
		arrows: newQuiver(quiverCapacity),
	}
}

// Weapon returns the bow
func (a *Archer) Weapon() equipment.Weapon {
	return a.bow
}

// QuiverCapacity returns how many arrows the archer started with
func (a *Archer) QuiverCapacity() int {
	return a.arrows.capacity
}

// Ammo returns the arrows left
func (a *Archer) Ammo() int {
	return a.arrows.remaining
}

// Attack spends one arrow. With none left it records "No arrows" and does
// nothing else.
func (a *Archer) Attack(ctx context.Context, target Warrior) *combatlog.Entry {
	if !a.arrows.draw() {
		return a.record(ctx, target, 0, combatlog.OutcomeNoArrows)
	}
	return a.record(ctx, target, a.bow.Damage(), combatlog.OutcomeHit)
}

// Crossbowman shoots bolts from a crossbow
type Crossbowman struct {
	base
	crossbow *equipment.Crossbow
	bolts    quiver
}

// NewCrossbowman creates a crossbowman carrying quiverCapacity bolts. A nil
// recorder discards entries.
func NewCrossbowman(id string, crossbow *equipment.Crossbow, quiverCapacity int, recorder combatlog.Recorder) *Crossbowman {
	return &Crossbowman{
		base:     newBase(id, KindCrossbowman, recorder),
		crossbow: crossbow,
		bolts:    newQuiver(quiverCapacity),
	}
}

// Weapon returns the crossbow
func (c *Crossbowman) Weapon() equipment.Weapon {
	return c.crossbow
}

// QuiverCapacity returns how many bolts the crossbowman started with
func (c *Crossbowman) QuiverCapacity() int {
	return c.bolts.capacity
}

// Ammo returns the bolts left
func (c *Crossbowman) Ammo() int {
	return c.bolts.remaining
}

// Attack spends one bolt. With none left it records "No bolts" and does
// nothing else.
func (c *Crossbowman) Attack(ctx context.Context, target Warrior) *combatlog.Entry {
	if !c.bolts.draw() {
		return c.record(ctx, target, 0, combatlog.OutcomeNoBolts)
	}
	return c.record(ctx, target, c.crossbow.Damage(), combatlog.OutcomeHit)
}

var (
	_ Warrior = (*Archer)(nil)
	_ Warrior = (*Crossbowman)(nil)
)
