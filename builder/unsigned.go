package builder

import (
	"fmt"

	"github.com/blockberries/querykit"
	"github.com/blockberries/querykit/types"
)

// UnsignedQuery is a complete payload awaiting a signature.
// It has no mutators; accessors return copies.
type UnsignedQuery struct {
	payload types.QueryPayload
	fields  types.FieldSet
}

// Payload returns a copy of the finished payload.
func (u UnsignedQuery) Payload() types.QueryPayload {
	return clonePayload(u.payload)
}

// CreatedTime returns the creation time in milliseconds.
func (u UnsignedQuery) CreatedTime() uint64 { return u.payload.CreatedTime }

// CreatorAccountID returns the issuing account.
func (u UnsignedQuery) CreatorAccountID() types.AccountID { return u.payload.CreatorAccountID }

// Kind returns the query kind carried by the payload.
func (u UnsignedQuery) Kind() types.QueryKind { return u.payload.Query.Kind() }

// QueryCounter returns the query counter.
func (u UnsignedQuery) QueryCounter() uint64 { return u.payload.QueryCounter }

// Bytes returns the deterministic encoding of the payload.
func (u UnsignedQuery) Bytes() ([]byte, error) {
	return types.EncodePayload(u.payload)
}

// Hash returns the hash a signer signs.
func (u UnsignedQuery) Hash() (types.Hash, error) {
	return types.HashPayload(u.payload)
}

// Sign signs the payload hash with s and returns the transmittable query.
//
// The zero UnsignedQuery was not produced by a builder and is rejected
// with *querykit.IncompleteError.
func (u UnsignedQuery) Sign(s querykit.Signer) (types.Query, error) {
	if !u.fields.Complete() {
		return types.Query{}, querykit.NewIncompleteError(u.fields)
	}
	h, err := u.Hash()
	if err != nil {
		return types.Query{}, err
	}
	sig, err := s.Sign(h[:])
	if err != nil {
		return types.Query{}, fmt.Errorf("querykit: sign payload: %w", err)
	}
	return types.Query{
		Payload: u.Payload(),
		Signature: &types.Signature{
			PublicKey: s.PublicKey(),
			Signature: sig,
		},
	}, nil
}
