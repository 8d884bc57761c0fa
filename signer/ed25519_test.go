package signer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockberries/querykit"
	"github.com/blockberries/querykit/builder"
	"github.com/blockberries/querykit/signer"
)

func testKey(t *testing.T) *signer.Ed25519 {
	t.Helper()
	k, err := signer.NewEd25519(bytes.Repeat([]byte{0x42}, 32))
	require.NoError(t, err)
	return k
}

func TestNewEd25519_SeedLength(t *testing.T) {
	_, err := signer.NewEd25519([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestEd25519_Deterministic(t *testing.T) {
	a := testKey(t)
	b := testKey(t)
	assert.Equal(t, a.PublicKey(), b.PublicKey())
	assert.Equal(t, bytes.Repeat([]byte{0x42}, 32), a.Seed())
}

func TestSignAndVerify(t *testing.T) {
	key := testKey(t)
	u := builder.Build(builder.New().
		CreatedTime(100).
		CreatorAccountID("alice@test").
		GetAccount("bob@test").
		QueryCounter(1))

	q, err := u.Sign(key)
	require.NoError(t, err)
	require.True(t, q.Signed())
	assert.Equal(t, key.PublicKey(), q.Signature.PublicKey)
	require.NoError(t, signer.Verify(q))

	// Any change to the payload invalidates the signature.
	q.Payload.QueryCounter = 2
	assert.ErrorIs(t, signer.Verify(q), querykit.ErrInvalidSignature)
}

func TestVerify_Unsigned(t *testing.T) {
	u := builder.Build(builder.New().
		CreatedTime(100).
		CreatorAccountID("alice@test").
		GetRoles().
		QueryCounter(1))
	q, err := u.Sign(testKey(t))
	require.NoError(t, err)
	q.Signature = nil
	assert.ErrorIs(t, signer.Verify(q), querykit.ErrUnsigned)
}

func TestVerify_ShortKey(t *testing.T) {
	u := builder.Build(builder.New().
		CreatedTime(100).
		CreatorAccountID("alice@test").
		GetRoles().
		QueryCounter(1))
	q, err := u.Sign(testKey(t))
	require.NoError(t, err)
	q.Signature.PublicKey = q.Signature.PublicKey[:5]
	assert.ErrorIs(t, signer.Verify(q), querykit.ErrInvalidSignature)
}
