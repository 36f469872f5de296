package builders

import (
	"github.com/KirkDiggler/rpg-warband/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-warband/internal/entities/warriors"
)

// SwordsmanBuilder assembles swordsmen
type SwordsmanBuilder struct {
	opts  options
	sword *equipment.Sword
}

// NewSwordsmanBuilder creates an empty swordsman builder
func NewSwordsmanBuilder(opts ...Option) *SwordsmanBuilder {
	return &SwordsmanBuilder{opts: newOptions(warriors.KindSwordsman, opts)}
}

// Reset clears the sword
func (b *SwordsmanBuilder) Reset() {
	b.sword = nil
}

// SetSword stores the sword
func (b *SwordsmanBuilder) SetSword(sword *equipment.Sword) {
	b.sword = sword
}

// Result returns a new swordsman holding its own copy of the sword
func (b *SwordsmanBuilder) Result() (*warriors.Swordsman, error) {
	if b.sword == nil {
		return nil, missing(warriors.KindSwordsman, "no sword provided", "sword")
	}
	sword := *b.sword
	return warriors.NewSwordsman(b.opts.idGen.Generate(), &sword, b.opts.recorder), nil
}

// SpearmanBuilder assembles spearmen
type SpearmanBuilder struct {
	opts  options
	spear *equipment.Spear
}

// NewSpearmanBuilder creates an empty spearman builder
func NewSpearmanBuilder(opts ...Option) *SpearmanBuilder {
	return &SpearmanBuilder{opts: newOptions(warriors.KindSpearman, opts)}
}

// Reset clears the spear
func (b *SpearmanBuilder) Reset() {
	b.spear = nil
}

// SetSpear stores the spear
func (b *SpearmanBuilder) SetSpear(spear *equipment.Spear) {
	b.spear = spear
}

// Result returns a new spearman holding its own copy of the spear
func (b *SpearmanBuilder) Result() (*warriors.Spearman, error) {
	if b.spear == nil {
		return nil, missing(warriors.KindSpearman, "no spear provided", "spear")
	}
	spear := *b.spear
	return warriors.NewSpearman(b.opts.idGen.Generate(), &spear, b.opts.recorder), nil
}

// KnightBuilder assembles knights. Both a spear and a horse are required.
type KnightBuilder struct {
	opts  options
	spear *equipment.Spear
	horse *equipment.Horse
}

// NewKnightBuilder creates an empty knight builder
func NewKnightBuilder(opts ...Option) *KnightBuilder {
	return &KnightBuilder{opts: newOptions(warriors.KindKnight, opts)}
}

// Reset clears the spear and horse
func (b *KnightBuilder) Reset() {
	b.spear = nil
	b.horse = nil
}

// SetSpear stores the spear
func (b *KnightBuilder) SetSpear(spear *equipment.Spear) {
	b.spear = spear
}

// SetHorse stores the horse
func (b *KnightBuilder) SetHorse(horse *equipment.Horse) {
	b.horse = horse
}

// Result returns a new knight with its own spear and horse
func (b *KnightBuilder) Result() (*warriors.Knight, error) {
	var absent []string
	if b.spear == nil {
		absent = append(absent, "spear")
	}
	if b.horse == nil {
		absent = append(absent, "horse")
	}
	if len(absent) > 0 {
		return nil, missing(warriors.KindKnight, "knight requires both horse and spear", absent...)
	}
	spear, horse := *b.spear, *b.horse
	return warriors.NewKnight(b.opts.idGen.Generate(), &spear, &horse, b.opts.recorder), nil
}
