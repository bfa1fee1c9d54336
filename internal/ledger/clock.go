package ledger

import (
	"time"
)

// Clock supplies the wall-clock timestamps stamped onto events and
// records. The engine never calls time.Now directly, so tests can pin
// time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns the real-time clock.
func SystemClock() Clock {
	return systemClock{}
}
