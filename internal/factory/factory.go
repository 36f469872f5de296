// Package factory dispenses fully assembled warriors.
//
// Every Create call pairs a fresh builder with the matching director, runs
// the recipe and returns the result. The process-wide factory is reached
// through Instance; New builds an independent one for callers that inject
// their own recorder or ID generator.
package factory

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/KirkDiggler/rpg-warband/internal/builders"
	"github.com/KirkDiggler/rpg-warband/internal/combatlog"
	"github.com/KirkDiggler/rpg-warband/internal/directors"
	"github.com/KirkDiggler/rpg-warband/internal/entities/warriors"
	"github.com/KirkDiggler/rpg-warband/internal/errors"
	"github.com/KirkDiggler/rpg-warband/internal/pkg/idgen"
)

// Config holds the dependencies for a WarriorFactory
type Config struct {
	Recorder    combatlog.Recorder
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Recorder == nil {
		vb.RequiredField("Recorder")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// WarriorFactory produces warriors from the built-in recipes
type WarriorFactory struct {
	recorder combatlog.Recorder
	idGen    idgen.Generator
}

var (
	instanceOnce sync.Once
	instance     *WarriorFactory
)

// Instance returns the shared factory, creating it on first use. Its
// warriors print their combat log to stdout.
func Instance() *WarriorFactory {
	instanceOnce.Do(func() {
		instance = &WarriorFactory{
			recorder: combatlog.NewWriterRecorder(os.Stdout),
			idGen:    idgen.NewUUID("warrior"),
		}
	})
	return instance
}

// New creates a factory with the provided dependencies
func New(cfg *Config) (*WarriorFactory, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &WarriorFactory{
		recorder: cfg.Recorder,
		idGen:    cfg.IDGenerator,
	}, nil
}

func (f *WarriorFactory) options() []builders.Option {
	return []builders.Option{
		builders.WithRecorder(f.recorder),
		builders.WithIDGenerator(f.idGen),
	}
}

// CreateSwordsman returns a swordsman with a two-handed sword
func (f *WarriorFactory) CreateSwordsman() (warriors.Warrior, error) {
	b := builders.NewSwordsmanBuilder(f.options()...)
	return produce[*warriors.Swordsman](directors.NewSwordsmanDirector(b), b)
}

// CreateArcher returns an archer with 40 arrows
func (f *WarriorFactory) CreateArcher() (warriors.Warrior, error) {
	b := builders.NewArcherBuilder(f.options()...)
	return produce[*warriors.Archer](directors.NewArcherDirector(b), b)
}

// CreateCrossbowman returns a crossbowman with 25 bolts
func (f *WarriorFactory) CreateCrossbowman() (warriors.Warrior, error) {
	b := builders.NewCrossbowmanBuilder(f.options()...)
	return produce[*warriors.Crossbowman](directors.NewCrossbowmanDirector(b), b)
}

// CreateSpearman returns a spearman
func (f *WarriorFactory) CreateSpearman() (warriors.Warrior, error) {
	b := builders.NewSpearmanBuilder(f.options()...)
	return produce[*warriors.Spearman](directors.NewSpearmanDirector(b), b)
}

// CreateKnight returns a mounted knight
func (f *WarriorFactory) CreateKnight() (warriors.Warrior, error) {
	b := builders.NewKnightBuilder(f.options()...)
	return produce[*warriors.Knight](directors.NewKnightDirector(b), b)
}

// Create dispatches on kind
func (f *WarriorFactory) Create(kind warriors.Kind) (warriors.Warrior, error) {
	switch kind {
	case warriors.KindSwordsman:
		return f.CreateSwordsman()
	case warriors.KindArcher:
		return f.CreateArcher()
	case warriors.KindCrossbowman:
		return f.CreateCrossbowman()
	case warriors.KindSpearman:
		return f.CreateSpearman()
	case warriors.KindKnight:
		return f.CreateKnight()
	default:
		return nil, errors.InvalidArgumentf("unknown warrior kind: %q", kind)
	}
}

// Muster returns rounds warriors of every kind. Each round lists the kinds
// in warriors.Kinds order.
func (f *WarriorFactory) Muster(ctx context.Context, rounds int) ([]warriors.Warrior, error) {
	if rounds < 1 {
		return nil, errors.InvalidArgumentf("rounds must be at least 1: %d", rounds)
	}

	kinds := warriors.Kinds()
	army := make([]warriors.Warrior, 0, rounds*len(kinds))
	for i := 0; i < rounds; i++ {
		for _, kind := range kinds {
			w, err := f.Create(kind)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to muster %s", kind)
			}
			army = append(army, w)
		}
	}

	slog.InfoContext(ctx, "Warband mustered",
		"rounds", rounds,
		"warriors", len(army),
	)

	return army, nil
}

// produce runs a recipe. The built-in recipes set every component, so a
// failure here is a programming error and is reported as internal.
func produce[T warriors.Warrior](d directors.Director, p directors.Producer[T]) (warriors.Warrior, error) {
	w, err := directors.Assemble(d, p)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "recipe left builder incomplete")
	}
	return w, nil
}
