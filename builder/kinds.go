package builder

import "github.com/blockberries/querykit/types"

// Each constructor returns a fresh union so a new variant never
// shares storage with the one it replaces. Tag is always set: it is
// the only trace GetRoles leaves in the encoded payload.

func getAccount(account types.AccountID) types.QueryUnion {
	return types.QueryUnion{
		Tag:        types.KindGetAccount,
		GetAccount: &types.GetAccount{AccountID: account},
	}
}

func getSignatories(account types.AccountID) types.QueryUnion {
	return types.QueryUnion{
		Tag:            types.KindGetSignatories,
		GetSignatories: &types.GetSignatories{AccountID: account},
	}
}

func getAccountTransactions(account types.AccountID) types.QueryUnion {
	return types.QueryUnion{
		Tag:                    types.KindGetAccountTransactions,
		GetAccountTransactions: &types.GetAccountTransactions{AccountID: account},
	}
}

func getAccountAssetTransactions(account types.AccountID, asset types.AssetID) types.QueryUnion {
	return types.QueryUnion{
		Tag: types.KindGetAccountAssetTransactions,
		GetAccountAssetTransactions: &types.GetAccountAssetTransactions{
			AccountID: account,
			AssetID:   asset,
		},
	}
}

func getAccountAssets(account types.AccountID, asset types.AssetID) types.QueryUnion {
	return types.QueryUnion{
		Tag: types.KindGetAccountAssets,
		GetAccountAssets: &types.GetAccountAssets{
			AccountID: account,
			AssetID:   asset,
		},
	}
}

func getRoles() types.QueryUnion {
	return types.QueryUnion{
		Tag:      types.KindGetRoles,
		GetRoles: &types.GetRoles{},
	}
}

func getAssetInfo(asset types.AssetID) types.QueryUnion {
	return types.QueryUnion{
		Tag:          types.KindGetAssetInfo,
		GetAssetInfo: &types.GetAssetInfo{AssetID: asset},
	}
}

func getRolePermissions(role types.RoleID) types.QueryUnion {
	return types.QueryUnion{
		Tag:                types.KindGetRolePermissions,
		GetRolePermissions: &types.GetRolePermissions{RoleID: role},
	}
}
