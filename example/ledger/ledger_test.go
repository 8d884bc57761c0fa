package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/blockberries/querykit"
	"github.com/blockberries/querykit/builder"
	"github.com/blockberries/querykit/types"
)

// query wraps a payload built by the typed builder. The ledger does
// not check signatures, so none is attached.
func query(b builder.Ready) types.Query {
	return types.Query{Payload: builder.Build(b).Payload()}
}

func base() builder.Builder[builder.Set, builder.Set, builder.Unset, builder.Set] {
	return builder.New().CreatedTime(100).CreatorAccountID("alice@test").QueryCounter(1)
}

func find(t *testing.T, l *Ledger, q types.Query) types.QueryResponse {
	t.Helper()
	resp, err := l.Find(context.Background(), q)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	return resp
}

func decode[T any](t *testing.T, resp types.QueryResponse) T {
	t.Helper()
	if !resp.OK() {
		t.Fatalf("expected OK, got code %d: %s", resp.Code, resp.Info)
	}
	v, err := types.DecodeResult[T](resp)
	if err != nil {
		t.Fatalf("DecodeResult: %v", err)
	}
	return v
}

func TestLedger_GetAccount(t *testing.T) {
	l := Demo()
	acct := decode[types.AccountResult](t, find(t, l, query(base().GetAccount("bob@test"))))
	if acct.AccountID != "bob@test" || acct.Quorum != 1 {
		t.Fatalf("unexpected account %+v", acct)
	}
	if len(acct.Roles) != 1 || acct.Roles[0] != "user" {
		t.Fatalf("unexpected roles %v", acct.Roles)
	}

	resp := find(t, l, query(base().GetAccount("nobody@test")))
	if resp.Code != types.CodeNoAccount {
		t.Fatalf("expected NoAccount, got %d", resp.Code)
	}
}

func TestLedger_GetSignatories(t *testing.T) {
	l := Demo()
	sigs := decode[types.SignatoriesResult](t, find(t, l, query(base().GetSignatories("alice@test"))))
	if len(sigs.Keys) != 1 {
		t.Fatalf("expected 1 signatory, got %d", len(sigs.Keys))
	}
	if resp := find(t, l, query(base().GetSignatories("bob@test"))); resp.Code != types.CodeNoSignatories {
		t.Fatalf("expected NoSignatories, got %d", resp.Code)
	}
}

func TestLedger_Transactions(t *testing.T) {
	l := Demo()
	all := decode[types.TransactionsResult](t, find(t, l, query(base().GetAccountTransactions("alice@test"))))
	if len(all.Hashes) != 2 {
		t.Fatalf("expected 2 txs, got %d", len(all.Hashes))
	}

	coin := decode[types.TransactionsResult](t, find(t, l, query(base().GetAccountAssetTransactions("alice@test", "coin#test"))))
	if len(coin.Hashes) != 1 || coin.Hashes[0] != (types.Hash{0x01}) {
		t.Fatalf("unexpected asset txs %v", coin.Hashes)
	}

	resp := find(t, l, query(base().GetAccountAssetTransactions("alice@test", "gold#test")))
	if resp.Code != types.CodeNoAsset {
		t.Fatalf("expected NoAsset, got %d", resp.Code)
	}
}

func TestLedger_GetAccountAssets(t *testing.T) {
	l := Demo()
	bal := decode[types.AccountAssetResult](t, find(t, l, query(base().GetAccountAssets("bob@test", "coin#test"))))
	if bal.Balance != "5.50" {
		t.Fatalf("unexpected balance %q", bal.Balance)
	}
}

func TestLedger_Roles(t *testing.T) {
	l := Demo()
	roles := decode[types.RolesResult](t, find(t, l, query(base().GetRoles())))
	if len(roles.Roles) != 2 || roles.Roles[0] != "admin" || roles.Roles[1] != "user" {
		t.Fatalf("unexpected roles %v", roles.Roles)
	}

	perms := decode[types.RolePermissionsResult](t, find(t, l, query(base().GetRolePermissions("user"))))
	if len(perms.Permissions) != 2 {
		t.Fatalf("unexpected permissions %v", perms.Permissions)
	}

	if resp := find(t, New(), query(base().GetRoles())); resp.Code != types.CodeNoRoles {
		t.Fatalf("expected NoRoles on empty ledger, got %d", resp.Code)
	}
}

func TestLedger_GetAssetInfo(t *testing.T) {
	l := Demo()
	asset := decode[types.AssetResult](t, find(t, l, query(base().GetAssetInfo("coin#test"))))
	if asset.Precision != 2 {
		t.Fatalf("unexpected precision %d", asset.Precision)
	}
}

func TestLedger_NoQuery(t *testing.T) {
	_, err := Demo().Find(context.Background(), types.Query{})
	if !errors.Is(err, querykit.ErrUnsupportedQuery) {
		t.Fatalf("expected ErrUnsupportedQuery, got %v", err)
	}
}

func TestLedger_Signatories(t *testing.T) {
	l := Demo()
	ctx := context.Background()

	keys, err := l.Signatories(ctx, "alice@test")
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 1 || keys[0][0] != 0xA1 {
		t.Fatalf("unexpected alice keys %v", keys)
	}

	if err := l.AddSignatory("bob@test", types.PublicKey{0xB0}); err != nil {
		t.Fatalf("AddSignatory: %v", err)
	}
	keys, _ = l.Signatories(ctx, "bob@test")
	if len(keys) != 1 || keys[0][0] != 0xB0 {
		t.Fatalf("unexpected bob keys %v", keys)
	}
	sigs := decode[types.SignatoriesResult](t, find(t, l, query(base().GetSignatories("bob@test"))))
	if len(sigs.Keys) != 1 {
		t.Fatalf("expected GetSignatories to see the new key, got %d", len(sigs.Keys))
	}

	if err := l.AddSignatory("nobody@test", types.PublicKey{0x01}); err == nil {
		t.Fatal("expected error for unknown account")
	}
	if keys, err := l.Signatories(ctx, "nobody@test"); err != nil || keys != nil {
		t.Fatalf("unknown account: keys=%v err=%v", keys, err)
	}
}
