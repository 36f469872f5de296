package combatlog

import (
	"context"
	"io"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-warband/internal/errors"
)

// Event types published for attacks
const (
	EventAttack    = "combat.attack"
	EventOutOfAmmo = "combat.out_of_ammo"
)

// Event context keys
const (
	ContextKeyDamage  = "damage"
	ContextKeyOutcome = "outcome"
	ContextKeyLine    = "line"
)

// BusRecorderConfig holds the dependencies for a BusRecorder
type BusRecorderConfig struct {
	Bus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *BusRecorderConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Bus == nil {
		vb.RequiredField("Bus")
	}

	return vb.Build()
}

// BusRecorder publishes entries as rpg-toolkit game events, with the
// attacker as source and the defender as target.
type BusRecorder struct {
	bus events.EventBus
}

// NewBusRecorder creates a recorder publishing to the configured bus
func NewBusRecorder(cfg *BusRecorderConfig) (*BusRecorder, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &BusRecorder{bus: cfg.Bus}, nil
}

// Record publishes the entry. Publish failures are logged, not returned;
// an attack has already happened by the time it is recorded.
func (r *BusRecorder) Record(ctx context.Context, entry *Entry) {
	eventType := EventAttack
	if entry.Outcome.OutOfAmmo() {
		eventType = EventOutOfAmmo
	}

	event := events.NewGameEvent(
		eventType,
		&participant{id: entry.AttackerID, name: entry.Attacker},
		&participant{id: entry.DefenderID, name: entry.Defender},
	)
	event.Context().Set(ContextKeyDamage, entry.Damage)
	event.Context().Set(ContextKeyOutcome, string(entry.Outcome))
	event.Context().Set(ContextKeyLine, entry.String())

	if err := r.bus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish combat event",
			"event_type", eventType,
			"attacker_id", entry.AttackerID,
			"error", err,
		)
	}
}

// SubscribeWriter prints the line of every published attack event to w.
// It returns the subscription IDs.
func SubscribeWriter(bus events.EventBus, w io.Writer) []string {
	out := NewWriterRecorder(w)
	return subscribeAll(bus, func(_ context.Context, event events.Event) error {
		return out.writeLine(lineOf(event))
	})
}

// SubscribeSlog logs every published attack event at debug level
func SubscribeSlog(bus events.EventBus, logger *slog.Logger) []string {
	return subscribeAll(bus, func(ctx context.Context, event events.Event) error {
		attrs := []any{
			"event_type", event.Type(),
			"line", lineOf(event),
		}
		if src := event.Source(); src != nil {
			attrs = append(attrs, "attacker_id", src.GetID(), "attacker", src.GetType())
		}
		if tgt := event.Target(); tgt != nil {
			attrs = append(attrs, "defender_id", tgt.GetID(), "defender", tgt.GetType())
		}
		if damage, ok := event.Context().Get(ContextKeyDamage); ok {
			attrs = append(attrs, "damage", damage)
		}
		logger.DebugContext(ctx, "Combat event", attrs...)
		return nil
	})
}

func subscribeAll(bus events.EventBus, fn events.HandlerFunc) []string {
	return []string{
		bus.SubscribeFunc(EventAttack, 0, fn),
		bus.SubscribeFunc(EventOutOfAmmo, 0, fn),
	}
}

func lineOf(event events.Event) string {
	if v, ok := event.Context().Get(ContextKeyLine); ok {
		if line, ok := v.(string); ok {
			return line
		}
	}
	return ""
}

// participant carries an attack side onto the event bus
type participant struct {
	id   string
	name string
}

func (p *participant) GetID() string {
	return p.id
}

func (p *participant) GetType() string {
	return p.name
}
