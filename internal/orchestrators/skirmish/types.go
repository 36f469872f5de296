package skirmish

import "time"

// RunOutput summarizes a finished skirmish
type RunOutput struct {
	Ticks      int
	Hits       int
	OutOfAmmo  int
	StartedAt  time.Time
	FinishedAt time.Time
}
