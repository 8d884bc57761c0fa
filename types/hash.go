package types

import (
	"fmt"

	"github.com/blockberries/cramberry/pkg/cramberry"
	"golang.org/x/crypto/sha3"
)

// EncodePayload returns the deterministic encoding of p.
// These are the bytes a signature covers (via HashPayload).
func EncodePayload(p QueryPayload) ([]byte, error) {
	data, err := cramberry.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("cramberry marshal payload: %w", err)
	}
	return data, nil
}

// HashPayload returns the SHA3-256 hash of the encoded payload.
func HashPayload(p QueryPayload) (Hash, error) {
	data, err := EncodePayload(p)
	if err != nil {
		return Hash{}, err
	}
	return sha3.Sum256(data), nil
}
