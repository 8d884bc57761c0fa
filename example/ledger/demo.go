package ledger

import "github.com/blockberries/querykit/types"

// Demo returns a ledger seeded with two accounts, one asset and two
// roles. Tests and the CLI's local mode run against it.
func Demo() *Ledger {
	l := New()
	l.PutAsset(Asset{ID: "coin#test", Precision: 2})
	l.PutRole("admin", "can_get_all_accounts", "can_get_roles", "can_get_all_txs")
	l.PutRole("user", "can_get_my_account", "can_get_my_txs")
	l.PutAccount(Account{
		ID:          "alice@test",
		Quorum:      1,
		Roles:       []types.RoleID{"admin"},
		Signatories: []types.PublicKey{{0xA1}},
		Balances:    map[types.AssetID]string{"coin#test": "100.00"},
		Txs: []Tx{
			{Hash: types.Hash{0x01}, Assets: []types.AssetID{"coin#test"}},
			{Hash: types.Hash{0x02}},
		},
	})
	l.PutAccount(Account{
		ID:       "bob@test",
		Quorum:   1,
		Roles:    []types.RoleID{"user"},
		Balances: map[types.AssetID]string{"coin#test": "5.50"},
	})
	return l
}
