// Package directors holds the fixed assembly recipes.
//
// A director knows which steps build a warrior and in what order; the bound
// builder decides how each step is carried out. Directors only see the
// capability interfaces below, so any builder that offers those steps can
// be driven by the same recipe.
package directors

import (
	"github.com/KirkDiggler/rpg-warband/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-warband/internal/errors"
)

// Recipe constants
const (
	ArcherQuiver      = 40
	CrossbowmanQuiver = 25
	KnightHorseSpeed  = 40
)

// Director runs one recipe against its bound builder
type Director interface {
	Build()
}

// Producer hands back what a builder assembled
type Producer[T any] interface {
	Result() (T, error)
}

// Assemble runs the director's recipe and returns the producer's result.
// The producer is expected to be the builder the director is bound to.
func Assemble[T any](d Director, p Producer[T]) (T, error) {
	d.Build()

	result, err := p.Result()
	if err != nil {
		var zero T
		return zero, errors.Wrap(err, "failed to assemble warrior")
	}
	return result, nil
}

// SwordsmanBuilder is the step set the swordsman recipe needs
type SwordsmanBuilder interface {
	Reset()
	SetSword(sword *equipment.Sword)
}

// ArcherBuilder is the step set the archer recipe needs
type ArcherBuilder interface {
	Reset()
	SetBow(bow *equipment.Bow)
	SetQuiverCapacity(capacity int)
}

// CrossbowmanBuilder is the step set the crossbowman recipe needs
type CrossbowmanBuilder interface {
	Reset()
	SetCrossbow(crossbow *equipment.Crossbow)
	SetQuiverCapacity(capacity int)
}

// SpearmanBuilder is the step set the spearman recipe needs
type SpearmanBuilder interface {
	Reset()
	SetSpear(spear *equipment.Spear)
}

// KnightBuilder is the step set the knight recipe needs
type KnightBuilder interface {
	Reset()
	SetSpear(spear *equipment.Spear)
	SetHorse(horse *equipment.Horse)
}
