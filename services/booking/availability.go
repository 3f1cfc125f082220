package booking

import (
	"math/rand"
	"sync"
)

// AvailabilitySource answers whether the slot starting at the given minute of
// day is bookable on the given date. Production uses a simulated source; the
// interface exists so callers and tests can inject a deterministic one.
type AvailabilitySource interface {
	IsAvailable(date string, minute int) bool
}

// AvailabilityFunc adapts a plain function to an AvailabilitySource.
type AvailabilityFunc func(date string, minute int) bool

func (f AvailabilityFunc) IsAvailable(date string, minute int) bool {
	return f(date, minute)
}

// RandomAvailability marks each slot available with a fixed probability.
// Availability is simulated, not derived from real scheduling conflicts, so
// re-generating slots for the same date can yield a different set.
type RandomAvailability struct {
	Rate float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomAvailability returns a source with the given availability rate.
func NewRandomAvailability(rate float64, seed int64) *RandomAvailability {
	return &RandomAvailability{
		Rate: rate,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (r *RandomAvailability) IsAvailable(string, int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64() < r.Rate
}
