package lazyconf

import (
	"math"
	"sync/atomic"

	"github.com/lazyconf/lazyconf-go/internal/errors"
)

// fuelTracker limits the number of calls one evaluation may make. Lazy
// elements may be forced long after the call that created them, so the
// counter is shared by every thunk of a State.
type fuelTracker struct {
	initial   uint64
	remaining atomic.Int64
}

func newFuelTracker(fuel uint64) *fuelTracker {
	if fuel > math.MaxInt64 {
		fuel = math.MaxInt64
	}
	tracker := &fuelTracker{initial: fuel}
	tracker.remaining.Store(int64(fuel))
	return tracker
}

func (f *fuelTracker) consume(amount int64) error {
	if f == nil || amount == 0 {
		return nil
	}
	remaining := f.remaining.Add(-amount)
	if remaining < 0 {
		return errors.Errorf(errors.ErrOutOfFuel,
			"evaluation exceeded its budget of %d calls", f.initial)
	}
	return nil
}

func (f *fuelTracker) remainingFuel() uint64 {
	remaining := f.remaining.Load()
	if remaining <= 0 {
		return 0
	}
	return uint64(remaining)
}

func (f *fuelTracker) consumedFuel() uint64 {
	remaining := f.remainingFuel()
	if remaining >= f.initial {
		return 0
	}
	return f.initial - remaining
}
