package equipment

// Horse is a mount. Its speed adds to a rider's damage.
type Horse struct {
	speed int
}

// NewHorse creates a horse with the given speed
func NewHorse(speed int) *Horse {
	return &Horse{speed: speed}
}

// Speed returns the horse's speed
func (h *Horse) Speed() int {
	return h.speed
}
