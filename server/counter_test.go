package server

import (
	"errors"
	"sync"
	"testing"

	"github.com/blockberries/querykit"
)

func TestCounterGuard_Increasing(t *testing.T) {
	g := NewCounterGuard()

	if err := g.Admit("alice", 1); err != nil {
		t.Fatalf("first counter rejected: %v", err)
	}
	if err := g.Admit("alice", 5); err != nil {
		t.Fatalf("larger counter rejected: %v", err)
	}
	if n, ok := g.Last("alice"); !ok || n != 5 {
		t.Fatalf("expected last=5, got %d (%v)", n, ok)
	}
}

func TestCounterGuard_Replay(t *testing.T) {
	g := NewCounterGuard()
	if err := g.Admit("alice", 3); err != nil {
		t.Fatal(err)
	}

	for _, n := range []uint64{3, 2} {
		err := g.Admit("alice", n)
		if !errors.Is(err, querykit.ErrStaleCounter) {
			t.Fatalf("counter %d: expected ErrStaleCounter, got %v", n, err)
		}
	}
	if n, _ := g.Last("alice"); n != 3 {
		t.Fatalf("rejected counter must not move last, got %d", n)
	}
}

func TestCounterGuard_PerCreator(t *testing.T) {
	g := NewCounterGuard()
	if err := g.Admit("alice", 10); err != nil {
		t.Fatal(err)
	}
	if err := g.Admit("bob", 1); err != nil {
		t.Fatalf("bob's counter must be independent of alice's: %v", err)
	}
	if _, ok := g.Last("carol"); ok {
		t.Fatal("expected no history for carol")
	}
}

func TestCounterGuard_Concurrent(t *testing.T) {
	g := NewCounterGuard()

	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.Admit("alice", 1) == nil {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if admitted != 1 {
		t.Fatalf("expected exactly one admission of counter 1, got %d", admitted)
	}
}
