package types

import (
	"fmt"

	"github.com/blockberries/cramberry/pkg/cramberry"
)

// ResponseCode classifies the outcome of a query.
type ResponseCode uint32

const (
	CodeOK ResponseCode = iota
	CodeStatelessInvalid
	CodeStatefulInvalid
	CodeNoAccount
	CodeNoAsset
	CodeNoRoles
	CodeNoSignatories
	CodeNotSupported
)

// QueryResponse is the service's answer to a query.
type QueryResponse struct {
	Code ResponseCode `cramberry:"1"`
	// Hash of the payload this response answers.
	QueryHash Hash `cramberry:"2"`
	// Result record, cramberry-encoded. Schema depends on the query kind.
	Value []byte `cramberry:"3"`
	// Debugging info. Non-deterministic.
	Info string `cramberry:"4"`
}

// OK returns true if the query succeeded.
func (r QueryResponse) OK() bool { return r.Code == CodeOK }

// DecodeResult decodes r.Value into the result record T.
func DecodeResult[T any](r QueryResponse) (T, error) {
	var out T
	if err := cramberry.Unmarshal(r.Value, &out); err != nil {
		return out, fmt.Errorf("cramberry unmarshal result: %w", err)
	}
	return out, nil
}
