package builder

import (
	"github.com/blockberries/querykit"
	"github.com/blockberries/querykit/types"
)

// Draft is the run-time checked counterpart of Builder, for callers
// that only learn which fields to set while running (flags, config,
// decoded requests). Completeness is checked when Build is called.
//
// A Draft is mutated in place and is not safe for concurrent use.
type Draft struct {
	payload types.QueryPayload
	fields  types.FieldSet
}

// NewDraft returns an empty draft.
func NewDraft() *Draft {
	return &Draft{}
}

// Fields returns the mandatory fields written so far.
func (d *Draft) Fields() types.FieldSet { return d.fields }

// Missing returns the mandatory fields not yet written.
func (d *Draft) Missing() types.FieldSet { return d.fields.Missing() }

// CreatedTime sets the creation time, in milliseconds since the Unix epoch.
// Zero reads as absent on the receiving side.
func (d *Draft) CreatedTime(ms uint64) *Draft {
	d.payload.CreatedTime = ms
	d.fields = d.fields.With(types.FieldCreatedTime)
	return d
}

// CreatorAccountID sets the account issuing the query.
func (d *Draft) CreatorAccountID(id types.AccountID) *Draft {
	d.payload.CreatorAccountID = id
	d.fields = d.fields.With(types.FieldCreatorAccountID)
	return d
}

// QueryCounter sets the per-creator query counter.
// Zero reads as absent on the receiving side.
func (d *Draft) QueryCounter(n uint64) *Draft {
	d.payload.QueryCounter = n
	d.fields = d.fields.With(types.FieldQueryCounter)
	return d
}

// GetAccount queries an account's details.
func (d *Draft) GetAccount(account types.AccountID) *Draft {
	return d.query(getAccount(account))
}

// GetSignatories queries the keys attached to an account.
func (d *Draft) GetSignatories(account types.AccountID) *Draft {
	return d.query(getSignatories(account))
}

// GetAccountTransactions queries the transactions created by an account.
func (d *Draft) GetAccountTransactions(account types.AccountID) *Draft {
	return d.query(getAccountTransactions(account))
}

// GetAccountAssetTransactions queries an account's transactions on one asset.
func (d *Draft) GetAccountAssetTransactions(account types.AccountID, asset types.AssetID) *Draft {
	return d.query(getAccountAssetTransactions(account, asset))
}

// GetAccountAssets queries an account's balance of an asset.
func (d *Draft) GetAccountAssets(account types.AccountID, asset types.AssetID) *Draft {
	return d.query(getAccountAssets(account, asset))
}

// GetRoles queries every role.
func (d *Draft) GetRoles() *Draft {
	return d.query(getRoles())
}

// GetAssetInfo queries an asset's definition.
func (d *Draft) GetAssetInfo(asset types.AssetID) *Draft {
	return d.query(getAssetInfo(asset))
}

// GetRolePermissions queries the permissions of a role.
func (d *Draft) GetRolePermissions(role types.RoleID) *Draft {
	return d.query(getRolePermissions(role))
}

func (d *Draft) query(u types.QueryUnion) *Draft {
	noteReplace(d.payload.Query.Kind(), u.Kind())
	d.payload.Query = u
	d.fields = d.fields.With(types.FieldQuery)
	return d
}

// Build returns the finished payload, or *querykit.IncompleteError
// naming every mandatory field still unset. The draft may keep being
// edited afterwards; the returned query does not observe those edits.
func (d *Draft) Build() (UnsignedQuery, error) {
	if !d.fields.Complete() {
		return UnsignedQuery{}, querykit.NewIncompleteError(d.fields)
	}
	return UnsignedQuery{payload: clonePayload(d.payload), fields: d.fields}, nil
}

// MustBuild is like Build but panics if a mandatory field is unset.
func (d *Draft) MustBuild() UnsignedQuery {
	q, err := d.Build()
	if err != nil {
		panic(err)
	}
	return q
}
