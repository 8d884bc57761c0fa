package server

import (
	"fmt"
	"sync"

	"github.com/blockberries/querykit"
	"github.com/blockberries/querykit/types"
)

// CounterGuard enforces that each creator's query counters strictly
// increase. A query whose counter does not exceed the last one
// admitted for the same creator is a replay and is refused.
//
// Safe for concurrent use.
type CounterGuard struct {
	mu   sync.Mutex
	last map[types.AccountID]uint64
}

// NewCounterGuard creates a guard with no history.
func NewCounterGuard() *CounterGuard {
	return &CounterGuard{last: make(map[types.AccountID]uint64)}
}

// Admit records counter for creator, or returns an error wrapping
// querykit.ErrStaleCounter if it is not greater than the last one.
func (g *CounterGuard) Admit(creator types.AccountID, counter uint64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if last, ok := g.last[creator]; ok && counter <= last {
		return fmt.Errorf("%w: %s sent %d, last accepted %d", querykit.ErrStaleCounter, creator, counter, last)
	}
	g.last[creator] = counter
	return nil
}

// Last returns the last counter admitted for creator.
func (g *CounterGuard) Last(creator types.AccountID) (uint64, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	n, ok := g.last[creator]
	return n, ok
}
