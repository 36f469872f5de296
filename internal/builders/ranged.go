package builders

import (
	"github.com/KirkDiggler/rpg-warband/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-warband/internal/entities/warriors"
)

// ArcherBuilder assembles archers
type ArcherBuilder struct {
	opts           options
	bow            *equipment.Bow
	quiverCapacity int
}

// NewArcherBuilder creates an archer builder with the default quiver
func NewArcherBuilder(opts ...Option) *ArcherBuilder {
	b := &ArcherBuilder{opts: newOptions(warriors.KindArcher, opts)}
	b.Reset()
	return b
}

// Reset clears the bow and restores the default quiver
func (b *ArcherBuilder) Reset() {
	b.bow = nil
	b.quiverCapacity = DefaultArcherQuiver
}

// SetBow stores the bow
func (b *ArcherBuilder) SetBow(bow *equipment.Bow) {
	b.bow = bow
}

// SetQuiverCapacity sets how many arrows the archer starts with
func (b *ArcherBuilder) SetQuiverCapacity(capacity int) {
	b.quiverCapacity = capacity
}

// Result returns a new archer with its own bow and a full quiver
func (b *ArcherBuilder) Result() (*warriors.Archer, error) {
	if b.bow == nil {
		return nil, missing(warriors.KindArcher, "no bow provided", "bow")
	}
	if err := validateQuiver(warriors.KindArcher, b.quiverCapacity); err != nil {
		return nil, err
	}
	bow := *b.bow
	return warriors.NewArcher(b.opts.idGen.Generate(), &bow, b.quiverCapacity, b.opts.recorder), nil
}

// CrossbowmanBuilder assembles crossbowmen
type CrossbowmanBuilder struct {
	opts           options
	crossbow       *equipment.Crossbow
	quiverCapacity int
}

// NewCrossbowmanBuilder creates a crossbowman builder with the default quiver
func NewCrossbowmanBuilder(opts ...Option) *CrossbowmanBuilder {
	b := &CrossbowmanBuilder{opts: newOptions(warriors.KindCrossbowman, opts)}
	b.Reset()
	return b
}

// Reset clears the crossbow and restores the default quiver
func (b *CrossbowmanBuilder) Reset() {
	b.crossbow = nil
	b.quiverCapacity = DefaultCrossbowmanQuiver
}

// SetCrossbow stores the crossbow
func (b *CrossbowmanBuilder) SetCrossbow(crossbow *equipment.Crossbow) {
	b.crossbow = crossbow
}

// SetQuiverCapacity sets how many bolts the crossbowman starts with
func (b *CrossbowmanBuilder) SetQuiverCapacity(capacity int) {
	b.quiverCapacity = capacity
}

// Result returns a new crossbowman with its own crossbow and a full quiver
func (b *CrossbowmanBuilder) Result() (*warriors.Crossbowman, error) {
	if b.crossbow == nil {
		return nil, missing(warriors.KindCrossbowman, "no crossbow provided", "crossbow")
	}
	if err := validateQuiver(warriors.KindCrossbowman, b.quiverCapacity); err != nil {
		return nil, err
	}
	crossbow := *b.crossbow
	return warriors.NewCrossbowman(b.opts.idGen.Generate(), &crossbow, b.quiverCapacity, b.opts.recorder), nil
}
