// Package querykit assembles signed ledger queries.
//
// A query is built field by field through the typed builder in
// package builder. The builder tracks which of the four mandatory
// fields (creation time, creator account, query kind, query counter)
// have been written, and builder.Build only accepts a builder on
// which all four are set. Anything else fails to compile.
//
// The finished builder.UnsignedQuery is handed to a [Signer] and
// the resulting types.Query is dispatched through a [QueryService],
// either in-process (package local) or over gRPC (package grpc).
package querykit

import (
	"context"

	"github.com/blockberries/querykit/types"
)

// Signer authorizes a finished payload. The signing scheme is
// owned by the implementation; package signer provides Ed25519.
type Signer interface {
	// PublicKey returns the key that verifies this signer's output.
	PublicKey() types.PublicKey

	// Sign signs msg, which is the hash of the encoded payload.
	Sign(msg []byte) ([]byte, error)
}

// QueryService answers signed queries.
type QueryService interface {
	// Find executes a query against the current ledger state.
	//
	// Returns an error only on transport or internal failure.
	// Rejections are reported through QueryResponse.Code.
	//
	// This method MUST be safe for concurrent use.
	Find(ctx context.Context, q types.Query) (types.QueryResponse, error)
}

// Connection is a transport-agnostic handle on a QueryService.
// Both the gRPC client and the in-process adapter implement it.
type Connection interface {
	QueryService

	// Close terminates the connection.
	Close() error
}

// KeyResolver looks up the keys allowed to sign for an account.
// A service that owns account state implements it so that a server
// in front of it can refuse queries signed by someone else's key.
type KeyResolver interface {
	// Signatories returns the account's signing keys. An unknown
	// account has none and a nil error.
	Signatories(ctx context.Context, account types.AccountID) ([]types.PublicKey, error)
}

// KeyResolverFunc adapts a function to KeyResolver.
type KeyResolverFunc func(ctx context.Context, account types.AccountID) ([]types.PublicKey, error)

func (f KeyResolverFunc) Signatories(ctx context.Context, account types.AccountID) ([]types.PublicKey, error) {
	return f(ctx, account)
}
