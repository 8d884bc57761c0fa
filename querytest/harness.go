package querytest

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/blockberries/querykit"
	"github.com/blockberries/querykit/builder"
	"github.com/blockberries/querykit/example/ledger"
	"github.com/blockberries/querykit/signer"
	"github.com/blockberries/querykit/types"
)

// Harness signs and dispatches queries for one creator, advancing
// the query counter on every call.
type Harness struct {
	t       *testing.T
	svc     querykit.QueryService
	key     *signer.Ed25519
	creator types.AccountID
	counter uint64
	now     func() time.Time
}

// FixedKey returns the key every harness signs with.
func FixedKey() *signer.Ed25519 {
	key, err := signer.NewEd25519(bytes.Repeat([]byte{0x5E}, 32))
	if err != nil {
		panic(err)
	}
	return key
}

// DemoLedger returns ledger.Demo with FixedKey enrolled as a
// signatory of every demo account.
func DemoLedger() *ledger.Ledger {
	l := ledger.Demo()
	key := FixedKey().PublicKey()
	for _, a := range []types.AccountID{"alice@test", "bob@test"} {
		if err := l.AddSignatory(a, key); err != nil {
			panic(err)
		}
	}
	return l
}

// NewHarness creates a harness issuing queries as creator against svc,
// signed with FixedKey.
func NewHarness(t *testing.T, svc querykit.QueryService, creator types.AccountID) *Harness {
	t.Helper()
	return &Harness{
		t:       t,
		svc:     svc,
		key:     FixedKey(),
		creator: creator,
		now:     func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) },
	}
}

// Key returns the signing key.
func (h *Harness) Key() *signer.Ed25519 {
	return h.key
}

// Counter returns the last counter used.
func (h *Harness) Counter() uint64 {
	return h.counter
}

// Prepare returns a builder with everything but the query kind set:
// the harness's creator, the current time and the next counter.
func (h *Harness) Prepare() builder.Builder[builder.Set, builder.Set, builder.Unset, builder.Set] {
	h.counter++
	return builder.New().
		CreatedTime(types.TimeToMillis(h.now())).
		CreatorAccountID(h.creator).
		QueryCounter(h.counter)
}

// Sign builds and signs b.
func (h *Harness) Sign(b builder.Ready) types.Query {
	h.t.Helper()
	q, err := builder.Build(b).Sign(h.key)
	if err != nil {
		h.t.Fatalf("Sign failed: %v", err)
	}
	return q
}

// Find builds, signs and dispatches b.
func (h *Harness) Find(b builder.Ready) types.QueryResponse {
	h.t.Helper()
	resp, err := h.svc.Find(context.Background(), h.Sign(b))
	if err != nil {
		h.t.Fatalf("Find failed: %v", err)
	}
	return resp
}

// MustOK dispatches b and asserts the query succeeded.
func (h *Harness) MustOK(b builder.Ready) types.QueryResponse {
	h.t.Helper()
	resp := h.Find(b)
	if !resp.OK() {
		h.t.Fatalf("expected OK, got code=%d info=%q", resp.Code, resp.Info)
	}
	return resp
}

// MustReject dispatches b and asserts the response code.
func (h *Harness) MustReject(b builder.Ready, code types.ResponseCode) types.QueryResponse {
	h.t.Helper()
	resp := h.Find(b)
	if resp.Code != code {
		h.t.Fatalf("expected code %d, got code=%d info=%q", code, resp.Code, resp.Info)
	}
	return resp
}
