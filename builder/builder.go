// Package builder assembles query payloads one field at a time and
// rejects, at compile time, any attempt to finish a payload before
// its four mandatory fields are written.
//
// Builder carries one phantom type parameter per mandatory field.
// Each is Unset until the matching setter runs and Set afterwards:
//
//	q := builder.Build(builder.New().
//		CreatedTime(ts).
//		CreatorAccountID("alice@test").
//		GetAccount("bob@test").
//		QueryCounter(1))
//
// Build only accepts Builder[Set, Set, Set, Set]. Leaving any setter
// out changes the argument's type and the call does not compile.
//
// Use Draft when the set of fields is only known at run time.
package builder

import (
	"fmt"

	"github.com/jinzhu/copier"

	"github.com/blockberries/querykit"
	"github.com/blockberries/querykit/types"
)

// Unset marks a mandatory field that has not been written.
type Unset struct{}

// Set marks a mandatory field that has been written.
type Set struct{}

// Slot is the closed set of per-field markers.
type Slot interface {
	Unset | Set
}

// Builder is a partially filled query payload. The type parameters
// record, in order, whether CreatedTime, CreatorAccountID, the query
// kind and QueryCounter have been set.
//
// Builder is a value. Setters return a new Builder and leave the
// receiver untouched, so chains forked from one value are independent.
type Builder[T, C, Q, N Slot] struct {
	payload types.QueryPayload
	fields  types.FieldSet
}

// Empty is the initial state: nothing written.
type Empty = Builder[Unset, Unset, Unset, Unset]

// Ready is the only state Build accepts.
type Ready = Builder[Set, Set, Set, Set]

// New returns an empty builder.
func New() Empty {
	return Empty{}
}

// Fields returns the mandatory fields written so far.
func (b Builder[T, C, Q, N]) Fields() types.FieldSet {
	return b.fields
}

// CreatedTime sets the creation time, in milliseconds since the Unix epoch.
//
// Zero marks the field set here, but a receiver reading the encoded
// payload sees zero as absent and rejects the query as incomplete.
func (b Builder[T, C, Q, N]) CreatedTime(ms uint64) Builder[Set, C, Q, N] {
	b.payload.CreatedTime = ms
	return Builder[Set, C, Q, N]{payload: b.payload, fields: b.fields.With(types.FieldCreatedTime)}
}

// CreatorAccountID sets the account issuing the query.
func (b Builder[T, C, Q, N]) CreatorAccountID(id types.AccountID) Builder[T, Set, Q, N] {
	b.payload.CreatorAccountID = id
	return Builder[T, Set, Q, N]{payload: b.payload, fields: b.fields.With(types.FieldCreatorAccountID)}
}

// QueryCounter sets the per-creator query counter.
//
// As with CreatedTime, a zero counter is accepted here but reads as
// absent once encoded, so servers reject it. Start counting at 1.
func (b Builder[T, C, Q, N]) QueryCounter(n uint64) Builder[T, C, Q, Set] {
	b.payload.QueryCounter = n
	return Builder[T, C, Q, Set]{payload: b.payload, fields: b.fields.With(types.FieldQueryCounter)}
}

// --- Query kinds ---
//
// Every query-kind setter fills the same slot. Calling more than one
// is allowed; the last call wins.

// GetAccount queries an account's details.
func (b Builder[T, C, Q, N]) GetAccount(account types.AccountID) Builder[T, C, Set, N] {
	return b.query(getAccount(account))
}

// GetSignatories queries the keys attached to an account.
func (b Builder[T, C, Q, N]) GetSignatories(account types.AccountID) Builder[T, C, Set, N] {
	return b.query(getSignatories(account))
}

// GetAccountTransactions queries the transactions created by an account.
func (b Builder[T, C, Q, N]) GetAccountTransactions(account types.AccountID) Builder[T, C, Set, N] {
	return b.query(getAccountTransactions(account))
}

// GetAccountAssetTransactions queries an account's transactions on one asset.
func (b Builder[T, C, Q, N]) GetAccountAssetTransactions(account types.AccountID, asset types.AssetID) Builder[T, C, Set, N] {
	return b.query(getAccountAssetTransactions(account, asset))
}

// GetAccountAssets queries an account's balance of an asset.
func (b Builder[T, C, Q, N]) GetAccountAssets(account types.AccountID, asset types.AssetID) Builder[T, C, Set, N] {
	return b.query(getAccountAssets(account, asset))
}

// GetRoles queries every role.
func (b Builder[T, C, Q, N]) GetRoles() Builder[T, C, Set, N] {
	return b.query(getRoles())
}

// GetAssetInfo queries an asset's definition.
func (b Builder[T, C, Q, N]) GetAssetInfo(asset types.AssetID) Builder[T, C, Set, N] {
	return b.query(getAssetInfo(asset))
}

// GetRolePermissions queries the permissions of a role.
func (b Builder[T, C, Q, N]) GetRolePermissions(role types.RoleID) Builder[T, C, Set, N] {
	return b.query(getRolePermissions(role))
}

func (b Builder[T, C, Q, N]) query(u types.QueryUnion) Builder[T, C, Set, N] {
	noteReplace(b.payload.Query.Kind(), u.Kind())
	b.payload.Query = u
	return Builder[T, C, Set, N]{payload: b.payload, fields: b.fields.With(types.FieldQuery)}
}

// Build finishes a builder on which every mandatory field is set and
// returns the payload as an immutable UnsignedQuery.
//
// A Ready value can only be forged as a zero literal. Build panics
// with *querykit.IncompleteError if handed one.
func Build(b Ready) UnsignedQuery {
	if !b.fields.Complete() {
		panic(querykit.NewIncompleteError(b.fields))
	}
	return UnsignedQuery{payload: clonePayload(b.payload), fields: b.fields}
}

// clonePayload deep-copies p so the result shares no pointers with it.
func clonePayload(p types.QueryPayload) types.QueryPayload {
	var out types.QueryPayload
	if err := copier.CopyWithOption(&out, &p, copier.Option{DeepCopy: true}); err != nil {
		// Source and destination share a type; copier cannot fail here.
		panic(fmt.Sprintf("querykit: copy payload: %v", err))
	}
	return out
}
