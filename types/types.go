// Package types defines the data types carried by querykit
// requests: identifiers, the query payload and its query-kind
// union, signatures and responses.
//
// These are plain Go structs with cramberry struct tags for
// deterministic binary serialization. The bytes produced for a
// QueryPayload are the bytes that get hashed and signed.
package types

// Hash is a 32-byte cryptographic hash.
type Hash [32]byte

// AccountID identifies an account (e.g., "alice@wonderland").
// Opaque to querykit; never validated here.
type AccountID string

// AssetID identifies an asset (e.g., "coin#wonderland").
type AssetID string

// RoleID identifies a role (e.g., "admin").
type RoleID string

// PublicKey is a raw public key of the signing account.
type PublicKey []byte
