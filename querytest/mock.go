// Package querytest provides test utilities for code that builds
// and dispatches queries: a configurable mock service and a harness
// that builds, signs and dispatches in one call.
package querytest

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/blockberries/querykit"
	"github.com/blockberries/querykit/types"
)

// Compile-time interface check.
var _ querykit.QueryService = (*MockService)(nil)

// MockService is a configurable QueryService. If FindFn is nil,
// Find answers every query with CodeOK and no value.
type MockService struct {
	mu sync.Mutex

	FindFn func(context.Context, types.Query) (types.QueryResponse, error)

	// Call counter (atomic for concurrent access).
	FindCalls atomic.Int64

	received []types.Query
}

func (m *MockService) Find(ctx context.Context, q types.Query) (types.QueryResponse, error) {
	m.FindCalls.Add(1)
	m.mu.Lock()
	m.received = append(m.received, q)
	m.mu.Unlock()
	if m.FindFn != nil {
		return m.FindFn(ctx, q)
	}
	return types.QueryResponse{Code: types.CodeOK}, nil
}

// Received returns the queries seen so far, in arrival order.
func (m *MockService) Received() []types.Query {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]types.Query(nil), m.received...)
}
