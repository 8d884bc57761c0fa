// Package signer provides an Ed25519 implementation of
// querykit.Signer and verification of signed queries.
//
// Signatures cover the SHA3-256 hash of the cramberry-encoded
// payload (see types.HashPayload).
package signer

import (
	"crypto/ed25519"
	"fmt"
	"io"

	"github.com/blockberries/querykit"
	"github.com/blockberries/querykit/types"
)

// Compile-time interface check.
var _ querykit.Signer = (*Ed25519)(nil)

// Ed25519 is a keypair that signs query payload hashes.
type Ed25519 struct {
	priv ed25519.PrivateKey
}

// NewEd25519 derives a keypair from a 32-byte seed.
func NewEd25519(seed []byte) (*Ed25519, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("signer: seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	return &Ed25519{priv: ed25519.NewKeyFromSeed(seed)}, nil
}

// GenerateEd25519 creates a keypair from rand (crypto/rand.Reader if nil).
func GenerateEd25519(rand io.Reader) (*Ed25519, error) {
	_, priv, err := ed25519.GenerateKey(rand)
	if err != nil {
		return nil, fmt.Errorf("signer: generate key: %w", err)
	}
	return &Ed25519{priv: priv}, nil
}

// PublicKey returns the verifying key.
func (k *Ed25519) PublicKey() types.PublicKey {
	pub := k.priv.Public().(ed25519.PublicKey)
	return types.PublicKey(append([]byte(nil), pub...))
}

// Seed returns the 32-byte seed the keypair was derived from.
func (k *Ed25519) Seed() []byte {
	return k.priv.Seed()
}

// Sign signs msg.
func (k *Ed25519) Sign(msg []byte) ([]byte, error) {
	return ed25519.Sign(k.priv, msg), nil
}

// Verify checks the signature attached to q against its payload.
// Returns querykit.ErrUnsigned or querykit.ErrInvalidSignature on failure.
func Verify(q types.Query) error {
	if !q.Signed() {
		return querykit.ErrUnsigned
	}
	if len(q.Signature.PublicKey) != ed25519.PublicKeySize {
		return fmt.Errorf("%w: public key is %d bytes", querykit.ErrInvalidSignature, len(q.Signature.PublicKey))
	}
	h, err := types.HashPayload(q.Payload)
	if err != nil {
		return err
	}
	if !ed25519.Verify(ed25519.PublicKey(q.Signature.PublicKey), h[:], q.Signature.Signature) {
		return querykit.ErrInvalidSignature
	}
	return nil
}
