// Package clock provides helpers for time-related operations.
package clock

import (
	bclock "github.com/benbjohnson/clock"
)

// Clock is the time source used by the helpers. Production code passes
// New(); tests pass bclock.NewMock().
type Clock = bclock.Clock

// New returns the wall clock.
func New() Clock {
	return bclock.New()
}
