package querykit

import (
	"errors"
	"fmt"

	"github.com/blockberries/querykit/types"
)

var (
	// ErrUnsigned is returned when a query carries no signature.
	ErrUnsigned = errors.New("querykit: query is not signed")

	// ErrInvalidSignature is returned when a signature does not
	// verify against the payload, or when the signing key is not
	// one of the creator's signatories.
	ErrInvalidSignature = errors.New("querykit: invalid signature")

	// ErrStaleCounter is returned when a query counter does not
	// exceed the last counter accepted for the same creator.
	ErrStaleCounter = errors.New("querykit: stale query counter")

	// ErrUnsupportedQuery is returned by services that do not
	// handle the requested query kind.
	ErrUnsupportedQuery = errors.New("querykit: unsupported query")
)

// IncompleteError reports an attempt to finalize a query before
// every mandatory field was written.
//
// The typed builder makes this unrepresentable. It surfaces only
// from the runtime Draft, from forged builder values, and from
// servers receiving a payload with zero-valued fields.
type IncompleteError struct {
	Missing types.FieldSet
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("querykit: required fields are not set: %s", e.Missing)
}

// NewIncompleteError creates an IncompleteError for the fields
// absent from have.
func NewIncompleteError(have types.FieldSet) *IncompleteError {
	return &IncompleteError{Missing: have.Missing()}
}

// IsIncomplete checks whether an error is an IncompleteError and returns it.
func IsIncomplete(err error) (*IncompleteError, bool) {
	var e *IncompleteError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
