package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/blockberries/querykit/builder"
	"github.com/blockberries/querykit/internal/config"
	"github.com/blockberries/querykit/types"
)

// queryFlags are the flags shared by build and find.
type queryFlags struct {
	createdTime uint64
	creator     string
	counter     uint64
	kind        string
	account     string
	asset       string
	role        string
}

func (f *queryFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.Uint64Var(&f.createdTime, "created-time", 0, "creation time in ms since epoch (default now)")
	fs.StringVar(&f.creator, "creator", "", "creator account (default $QUERYKIT_CREATOR)")
	fs.Uint64Var(&f.counter, "counter", 0, "query counter")
	fs.StringVar(&f.kind, "kind", "", "query kind, e.g. GetAccount or get-account")
	fs.StringVar(&f.account, "account", "", "account argument of the query")
	fs.StringVar(&f.asset, "asset", "", "asset argument of the query")
	fs.StringVar(&f.role, "role", "", "role argument of the query")
}

// draft fills a Draft from the flags the user actually passed.
// Fields left unset surface as an IncompleteError from Build.
func (f *queryFlags) draft(cmd *cobra.Command, cfg config.Config, now time.Time) (*builder.Draft, error) {
	d := builder.NewDraft()

	if cmd.Flags().Changed("created-time") {
		d.CreatedTime(f.createdTime)
	} else {
		d.CreatedTime(types.TimeToMillis(now))
	}

	switch {
	case cmd.Flags().Changed("creator"):
		d.CreatorAccountID(types.AccountID(f.creator))
	case cfg.Creator != "":
		d.CreatorAccountID(types.AccountID(cfg.Creator))
	}

	if cmd.Flags().Changed("counter") {
		d.QueryCounter(f.counter)
	}

	if f.kind != "" {
		if err := applyKind(d, f.kind, types.AccountID(f.account), types.AssetID(f.asset), types.RoleID(f.role)); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// parseKind accepts a kind's Go name ("GetAccountAssets") or its
// dashed form ("get-account-assets"), case-insensitively.
func parseKind(s string) (types.QueryKind, error) {
	want := strings.ToLower(strings.ReplaceAll(s, "-", ""))
	for k := types.KindGetAccount; k <= types.KindGetRolePermissions; k++ {
		if strings.ToLower(k.String()) == want {
			return k, nil
		}
	}
	return types.KindNone, fmt.Errorf("unknown query kind %q", s)
}

func applyKind(d *builder.Draft, kind string, account types.AccountID, asset types.AssetID, role types.RoleID) error {
	k, err := parseKind(kind)
	if err != nil {
		return err
	}
	switch k {
	case types.KindGetAccount:
		d.GetAccount(account)
	case types.KindGetSignatories:
		d.GetSignatories(account)
	case types.KindGetAccountTransactions:
		d.GetAccountTransactions(account)
	case types.KindGetAccountAssetTransactions:
		d.GetAccountAssetTransactions(account, asset)
	case types.KindGetAccountAssets:
		d.GetAccountAssets(account, asset)
	case types.KindGetRoles:
		d.GetRoles()
	case types.KindGetAssetInfo:
		d.GetAssetInfo(asset)
	case types.KindGetRolePermissions:
		d.GetRolePermissions(role)
	}
	return nil
}

// decodeResult decodes a response value into the record for kind.
func decodeResult(kind types.QueryKind, resp types.QueryResponse) (any, error) {
	switch kind {
	case types.KindGetAccount:
		return types.DecodeResult[types.AccountResult](resp)
	case types.KindGetSignatories:
		return types.DecodeResult[types.SignatoriesResult](resp)
	case types.KindGetAccountTransactions, types.KindGetAccountAssetTransactions:
		return types.DecodeResult[types.TransactionsResult](resp)
	case types.KindGetAccountAssets:
		return types.DecodeResult[types.AccountAssetResult](resp)
	case types.KindGetRoles:
		return types.DecodeResult[types.RolesResult](resp)
	case types.KindGetAssetInfo:
		return types.DecodeResult[types.AssetResult](resp)
	case types.KindGetRolePermissions:
		return types.DecodeResult[types.RolePermissionsResult](resp)
	default:
		return nil, fmt.Errorf("no result record for %s", kind)
	}
}
