// Package skirmish runs the randomized pairwise combat simulation.
//
// Warriors are shuffled once when the skirmish is created. On every tick two
// indices are drawn independently and the first warrior attacks the second;
// the indices may coincide, in which case a warrior attacks itself. Ticks
// stop for good once the configured duration has elapsed.
package skirmish

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-warband/internal/combatlog"
	"github.com/KirkDiggler/rpg-warband/internal/entities/warriors"
	"github.com/KirkDiggler/rpg-warband/internal/errors"
	"github.com/KirkDiggler/rpg-warband/internal/pkg/clock"
)

const (
	// DefaultTickInterval is the time between attacks
	DefaultTickInterval = 500 * time.Millisecond

	// DefaultDuration bounds the whole skirmish
	DefaultDuration = 5 * time.Second
)

// Config holds the dependencies for a skirmish. Zero intervals fall back to
// the defaults.
type Config struct {
	Warriors     []warriors.Warrior
	Clock        clock.Clock
	Roller       dice.Roller
	TickInterval time.Duration
	Duration     time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	errors.ValidateMin("Warriors", len(c.Warriors), 1, vb)
	for i, w := range c.Warriors {
		if w == nil {
			vb.Fieldf("Warriors", "entry %d is nil", i)
		}
	}
	errors.ValidatePositiveDuration("TickInterval", c.TickInterval, vb)
	errors.ValidatePositiveDuration("Duration", c.Duration, vb)

	return vb.Build()
}

// Skirmish owns the shuffled warriors and serializes attacks between them
type Skirmish struct {
	clock    clock.Clock
	roller   dice.Roller
	tick     time.Duration
	duration time.Duration

	// size is fixed at New
	size int

	mu       sync.Mutex
	warriors []warriors.Warrior
}

// New shuffles a copy of the configured warriors and returns a skirmish
// ready to run
func New(cfg *Config) (*Skirmish, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	c := *cfg
	if c.TickInterval == 0 {
		c.TickInterval = DefaultTickInterval
	}
	if c.Duration == 0 {
		c.Duration = DefaultDuration
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	s := &Skirmish{
		clock:    c.Clock,
		roller:   c.Roller,
		tick:     c.TickInterval,
		duration: c.Duration,
		size:     len(c.Warriors),
		warriors: append([]warriors.Warrior(nil), c.Warriors...),
	}
	if err := s.shuffle(); err != nil {
		return nil, err
	}

	return s, nil
}

// Warriors returns the battle order
func (s *Skirmish) Warriors() []warriors.Warrior {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]warriors.Warrior(nil), s.warriors...)
}

// shuffle is a Fisher-Yates pass driven by the roller
func (s *Skirmish) shuffle() error {
	for i := len(s.warriors) - 1; i > 0; i-- {
		j, err := s.draw(i + 1)
		if err != nil {
			return errors.Wrap(err, "failed to shuffle warriors")
		}
		s.warriors[i], s.warriors[j] = s.warriors[j], s.warriors[i]
	}
	return nil
}

// draw returns a uniform index in [0, n-1]
func (s *Skirmish) draw(n int) (int, error) {
	roll, err := s.roller.Roll(n)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll d%d", n)
	}
	if roll < 1 || roll > n {
		return 0, errors.Internalf("roll %d out of range for d%d", roll, n)
	}
	return roll - 1, nil
}

// Tick performs one attack between two randomly drawn warriors
func (s *Skirmish) Tick(ctx context.Context) (*combatlog.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.warriors)
	attacker, err := s.draw(n)
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw attacker")
	}
	defender, err := s.draw(n)
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw defender")
	}

	return s.warriors[attacker].Attack(ctx, s.warriors[defender]), nil
}

// Run ticks until the duration elapses or ctx is done. Ticks never overlap
// and none is started once the bounding timer has fired or ctx is done,
// even when a tick is pending at the same moment.
func (s *Skirmish) Run(ctx context.Context) (*RunOutput, error) {
	ticker := s.clock.NewTicker(s.tick)
	defer ticker.Stop()
	deadline := s.clock.After(s.duration)

	out := &RunOutput{StartedAt: s.clock.Now()}

	slog.InfoContext(ctx, "Skirmish started",
		"warriors", s.size,
		"tick_interval", s.tick,
		"duration", s.duration,
	)

	for {
		select {
		case <-ctx.Done():
			return nil, s.canceled(ctx, out)

		case <-deadline:
			return s.finish(ctx, ticker, out), nil

		case <-ticker.C():
			// A pending tick loses to cancellation and the deadline
			select {
			case <-ctx.Done():
				return nil, s.canceled(ctx, out)
			case <-deadline:
				return s.finish(ctx, ticker, out), nil
			default:
			}

			entry, err := s.Tick(ctx)
			if err != nil {
				return nil, errors.Wrap(err, "skirmish tick failed")
			}

			out.Ticks++
			if entry.Outcome.OutOfAmmo() {
				out.OutOfAmmo++
			} else {
				out.Hits++
			}
		}
	}
}

func (s *Skirmish) finish(ctx context.Context, ticker clock.Ticker, out *RunOutput) *RunOutput {
	ticker.Stop()
	out.FinishedAt = s.clock.Now()

	slog.InfoContext(ctx, "Skirmish finished",
		"ticks", out.Ticks,
		"hits", out.Hits,
		"out_of_ammo", out.OutOfAmmo,
	)
	return out
}

func (s *Skirmish) canceled(ctx context.Context, out *RunOutput) error {
	slog.WarnContext(ctx, "Skirmish canceled",
		"ticks", out.Ticks,
	)
	return errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "skirmish canceled")
}
