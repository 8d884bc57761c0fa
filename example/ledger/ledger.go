// Package ledger implements an in-memory QueryService over a small
// world state of accounts, assets and roles. It answers every query
// kind and is used by the tests and the CLI's local mode.
//
// Result records are cramberry-encoded types.*Result values.
package ledger

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/blockberries/cramberry/pkg/cramberry"

	"github.com/blockberries/querykit"
	"github.com/blockberries/querykit/types"
)

// Compile-time interface checks.
var (
	_ querykit.QueryService = (*Ledger)(nil)
	_ querykit.KeyResolver  = (*Ledger)(nil)
)

// Account is the ledger's record of an account.
type Account struct {
	ID          types.AccountID
	Quorum      uint32
	Roles       []types.RoleID
	Signatories []types.PublicKey
	// Balances by asset, as decimal strings.
	Balances map[types.AssetID]string
	// Transactions created by the account, oldest first.
	Txs []Tx
}

// Tx is a transaction hash plus the assets it touched.
type Tx struct {
	Hash   types.Hash
	Assets []types.AssetID
}

// Asset is an asset definition.
type Asset struct {
	ID        types.AssetID
	Precision uint32
}

// Ledger is a mutable in-memory world state.
// Find is safe for concurrent use with the mutators.
type Ledger struct {
	mu       sync.RWMutex
	accounts map[types.AccountID]Account
	assets   map[types.AssetID]Asset
	roles    map[types.RoleID][]string
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{
		accounts: make(map[types.AccountID]Account),
		assets:   make(map[types.AssetID]Asset),
		roles:    make(map[types.RoleID][]string),
	}
}

// PutAccount inserts or replaces an account.
func (l *Ledger) PutAccount(a Account) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.accounts[a.ID] = a
}

// PutAsset inserts or replaces an asset definition.
func (l *Ledger) PutAsset(a Asset) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.assets[a.ID] = a
}

// PutRole inserts or replaces a role and its permissions.
func (l *Ledger) PutRole(role types.RoleID, permissions ...string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.roles[role] = append([]string(nil), permissions...)
}

// AddSignatory appends key to an existing account's signatories.
func (l *Ledger) AddSignatory(account types.AccountID, key types.PublicKey) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.accounts[account]
	if !ok {
		return fmt.Errorf("ledger: no account %s", account)
	}
	a.Signatories = append(append([]types.PublicKey(nil), a.Signatories...), key)
	l.accounts[account] = a
	return nil
}

// Signatories returns the keys allowed to sign for account.
// An unknown account has none.
func (l *Ledger) Signatories(_ context.Context, account types.AccountID) ([]types.PublicKey, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	a, ok := l.accounts[account]
	if !ok {
		return nil, nil
	}
	return append([]types.PublicKey(nil), a.Signatories...), nil
}

// Find answers q from the current state.
func (l *Ledger) Find(_ context.Context, q types.Query) (types.QueryResponse, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	u := q.Payload.Query
	switch u.Kind() {
	case types.KindGetAccount:
		a, ok := l.accounts[u.GetAccount.AccountID]
		if !ok {
			return notFound(types.CodeNoAccount, u.GetAccount.AccountID), nil
		}
		return result(types.AccountResult{AccountID: a.ID, Quorum: a.Quorum, Roles: a.Roles})

	case types.KindGetSignatories:
		a, ok := l.accounts[u.GetSignatories.AccountID]
		if !ok {
			return notFound(types.CodeNoAccount, u.GetSignatories.AccountID), nil
		}
		if len(a.Signatories) == 0 {
			return notFound(types.CodeNoSignatories, a.ID), nil
		}
		return result(types.SignatoriesResult{Keys: a.Signatories})

	case types.KindGetAccountTransactions:
		a, ok := l.accounts[u.GetAccountTransactions.AccountID]
		if !ok {
			return notFound(types.CodeNoAccount, u.GetAccountTransactions.AccountID), nil
		}
		return result(types.TransactionsResult{Hashes: txHashes(a.Txs, "")})

	case types.KindGetAccountAssetTransactions:
		req := u.GetAccountAssetTransactions
		a, ok := l.accounts[req.AccountID]
		if !ok {
			return notFound(types.CodeNoAccount, req.AccountID), nil
		}
		if _, ok := l.assets[req.AssetID]; !ok {
			return notFound(types.CodeNoAsset, req.AssetID), nil
		}
		return result(types.TransactionsResult{Hashes: txHashes(a.Txs, req.AssetID)})

	case types.KindGetAccountAssets:
		req := u.GetAccountAssets
		a, ok := l.accounts[req.AccountID]
		if !ok {
			return notFound(types.CodeNoAccount, req.AccountID), nil
		}
		bal, ok := a.Balances[req.AssetID]
		if !ok {
			return notFound(types.CodeNoAsset, req.AssetID), nil
		}
		return result(types.AccountAssetResult{AccountID: a.ID, AssetID: req.AssetID, Balance: bal})

	case types.KindGetRoles:
		if len(l.roles) == 0 {
			return notFound(types.CodeNoRoles, "roles"), nil
		}
		roles := make([]types.RoleID, 0, len(l.roles))
		for r := range l.roles {
			roles = append(roles, r)
		}
		sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
		return result(types.RolesResult{Roles: roles})

	case types.KindGetAssetInfo:
		a, ok := l.assets[u.GetAssetInfo.AssetID]
		if !ok {
			return notFound(types.CodeNoAsset, u.GetAssetInfo.AssetID), nil
		}
		return result(types.AssetResult{AssetID: a.ID, Precision: a.Precision})

	case types.KindGetRolePermissions:
		perms, ok := l.roles[u.GetRolePermissions.RoleID]
		if !ok {
			return notFound(types.CodeNoRoles, u.GetRolePermissions.RoleID), nil
		}
		return result(types.RolePermissionsResult{Permissions: perms})

	default:
		return types.QueryResponse{}, fmt.Errorf("ledger: %w: %s", querykit.ErrUnsupportedQuery, u.Kind())
	}
}

// txHashes returns the hashes of txs, restricted to those touching
// asset unless asset is empty.
func txHashes(txs []Tx, asset types.AssetID) []types.Hash {
	var out []types.Hash
	for _, tx := range txs {
		if asset == "" || touches(tx, asset) {
			out = append(out, tx.Hash)
		}
	}
	return out
}

func touches(tx Tx, asset types.AssetID) bool {
	for _, a := range tx.Assets {
		if a == asset {
			return true
		}
	}
	return false
}

func result(v any) (types.QueryResponse, error) {
	data, err := cramberry.Marshal(v)
	if err != nil {
		return types.QueryResponse{}, fmt.Errorf("ledger: encode result: %w", err)
	}
	return types.QueryResponse{Code: types.CodeOK, Value: data}, nil
}

func notFound[T ~string](code types.ResponseCode, id T) types.QueryResponse {
	return types.QueryResponse{Code: code, Info: fmt.Sprintf("%s not found", string(id))}
}
