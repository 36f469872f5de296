// Package builders assembles warriors step by step.
//
// A builder holds partial construction state until Result is called. Result
// checks that every required component was set and fails with a
// construction error naming what is missing. Builders are not reused across
// builds without a Reset.
package builders

import (
	"github.com/KirkDiggler/rpg-warband/internal/combatlog"
	"github.com/KirkDiggler/rpg-warband/internal/entities/warriors"
	"github.com/KirkDiggler/rpg-warband/internal/errors"
	"github.com/KirkDiggler/rpg-warband/internal/pkg/idgen"
)

// Default quiver sizes restored by Reset
const (
	DefaultArcherQuiver      = 30
	DefaultCrossbowmanQuiver = 20
)

// Builder is the part every builder shares: it can be reset and asked for
// its product.
type Builder[T warriors.Warrior] interface {
	Reset()
	Result() (T, error)
}

// Option configures a builder. Options are not construction state and
// survive Reset.
type Option func(*options)

type options struct {
	recorder combatlog.Recorder
	idGen    idgen.Generator
}

// WithRecorder sets the recorder handed to every warrior the builder makes
func WithRecorder(r combatlog.Recorder) Option {
	return func(o *options) {
		if r != nil {
			o.recorder = r
		}
	}
}

// WithIDGenerator sets the generator used for warrior IDs
func WithIDGenerator(g idgen.Generator) Option {
	return func(o *options) {
		if g != nil {
			o.idGen = g
		}
	}
}

func newOptions(kind warriors.Kind, opts []Option) options {
	o := options{
		recorder: combatlog.Discard,
		idGen:    idgen.NewUUID(kind.String()),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func missing(kind warriors.Kind, message string, components ...string) *errors.Error {
	return errors.Construction(message).
		WithMeta("kind", kind.String()).
		WithMeta("missing", components)
}

func validateQuiver(kind warriors.Kind, capacity int) error {
	if capacity < 0 {
		return errors.InvalidArgumentf("quiver capacity must not be negative: %d", capacity).
			WithMeta("kind", kind.String())
	}
	return nil
}

var (
	_ Builder[*warriors.Swordsman]   = (*SwordsmanBuilder)(nil)
	_ Builder[*warriors.Archer]      = (*ArcherBuilder)(nil)
	_ Builder[*warriors.Crossbowman] = (*CrossbowmanBuilder)(nil)
	_ Builder[*warriors.Spearman]    = (*SpearmanBuilder)(nil)
	_ Builder[*warriors.Knight]      = (*KnightBuilder)(nil)
)
