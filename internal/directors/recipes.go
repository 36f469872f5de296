package directors

import (
	"github.com/KirkDiggler/rpg-warband/internal/entities/equipment"
)

// SwordsmanDirector arms a swordsman with a two-handed sword
type SwordsmanDirector struct {
	builder SwordsmanBuilder
}

// NewSwordsmanDirector binds the swordsman recipe to b
func NewSwordsmanDirector(b SwordsmanBuilder) *SwordsmanDirector {
	return &SwordsmanDirector{builder: b}
}

// Build resets the builder and runs the swordsman recipe
func (d *SwordsmanDirector) Build() {
	d.builder.Reset()
	d.builder.SetSword(equipment.NewSword(true))
}

// ArcherDirector gives an archer a bow and 40 arrows
type ArcherDirector struct {
	builder ArcherBuilder
}

// NewArcherDirector binds the archer recipe to b
func NewArcherDirector(b ArcherBuilder) *ArcherDirector {
	return &ArcherDirector{builder: b}
}

// Build resets the builder and runs the archer recipe
func (d *ArcherDirector) Build() {
	d.builder.Reset()
	d.builder.SetBow(equipment.NewBow())
	d.builder.SetQuiverCapacity(ArcherQuiver)
}

// CrossbowmanDirector gives a crossbowman a crossbow and 25 bolts
type CrossbowmanDirector struct {
	builder CrossbowmanBuilder
}

// NewCrossbowmanDirector binds the crossbowman recipe to b
func NewCrossbowmanDirector(b CrossbowmanBuilder) *CrossbowmanDirector {
	return &CrossbowmanDirector{builder: b}
}

// Build resets the builder and runs the crossbowman recipe
func (d *CrossbowmanDirector) Build() {
	d.builder.Reset()
	d.builder.SetCrossbow(equipment.NewCrossbow())
	d.builder.SetQuiverCapacity(CrossbowmanQuiver)
}

// SpearmanDirector arms a spearman with a spear
type SpearmanDirector struct {
	builder SpearmanBuilder
}

// NewSpearmanDirector binds the spearman recipe to b
func NewSpearmanDirector(b SpearmanBuilder) *SpearmanDirector {
	return &SpearmanDirector{builder: b}
}

// Build resets the builder and runs the spearman recipe
func (d *SpearmanDirector) Build() {
	d.builder.Reset()
	d.builder.SetSpear(equipment.NewSpear())
}

// KnightDirector mounts a knight on a speed 40 horse with a spear
type KnightDirector struct {
	builder KnightBuilder
}

// NewKnightDirector binds the knight recipe to b
func NewKnightDirector(b KnightBuilder) *KnightDirector {
	return &KnightDirector{builder: b}
}

// Build resets the builder and runs the knight recipe
func (d *KnightDirector) Build() {
	d.builder.Reset()
	d.builder.SetSpear(equipment.NewSpear())
	d.builder.SetHorse(equipment.NewHorse(KnightHorseSpeed))
}

var (
	_ Director = (*SwordsmanDirector)(nil)
	_ Director = (*ArcherDirector)(nil)
	_ Director = (*CrossbowmanDirector)(nil)
	_ Director = (*SpearmanDirector)(nil)
	_ Director = (*KnightDirector)(nil)
)
