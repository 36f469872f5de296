// Package combatlog records the outcome of every attack.
//
// An attack produces one Entry. Entries are handed to a Recorder, which may
// print them, publish them on an rpg-toolkit event bus, or both.
package combatlog

import (
	"context"
	"fmt"
)

//go:generate mockgen -destination=mock/mock.go -package=combatlogmock github.com/KirkDiggler/rpg-warband/internal/combatlog Recorder

// Outcome is the result of a single attack
type Outcome string

const (
	OutcomeHit      Outcome = "hit"
	OutcomeNoArrows Outcome = "no_arrows"
	OutcomeNoBolts  Outcome = "no_bolts"
)

// OutOfAmmo reports whether the attack was skipped for lack of ammunition
func (o Outcome) OutOfAmmo() bool {
	return o == OutcomeNoArrows || o == OutcomeNoBolts
}

// Entry describes one attack
type Entry struct {
	AttackerID string
	Attacker   string
	DefenderID string
	Defender   string
	Damage     int
	Outcome    Outcome
}

// String renders the combat log line
func (e *Entry) String() string {
	switch e.Outcome {
	case OutcomeNoArrows:
		return "No arrows"
	case OutcomeNoBolts:
		return "No bolts"
	default:
		return fmt.Sprintf("%s attacks %s. Damage: %d", e.Attacker, e.Defender, e.Damage)
	}
}

// Recorder receives attack entries
type Recorder interface {
	Record(ctx context.Context, entry *Entry)
}

// Discard drops every entry
var Discard Recorder = discard{}

type discard struct{}

func (discard) Record(context.Context, *Entry) {}

// Multi fans each entry out to every recorder in order
func Multi(recorders ...Recorder) Recorder {
	return multi(recorders)
}

type multi []Recorder

func (m multi) Record(ctx context.Context, entry *Entry) {
	for _, r := range m {
		r.Record(ctx, entry)
	}
}
