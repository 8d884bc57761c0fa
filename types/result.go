package types

// Result records carried in QueryResponse.Value, one per query kind.

// AccountResult answers GetAccount.
type AccountResult struct {
	AccountID AccountID `cramberry:"1"`
	Quorum    uint32    `cramberry:"2"`
	Roles     []RoleID  `cramberry:"3"`
}

// SignatoriesResult answers GetSignatories.
type SignatoriesResult struct {
	Keys []PublicKey `cramberry:"1"`
}

// TransactionsResult answers GetAccountTransactions and
// GetAccountAssetTransactions.
type TransactionsResult struct {
	Hashes []Hash `cramberry:"1"`
}

// AccountAssetResult answers GetAccountAssets.
type AccountAssetResult struct {
	AccountID AccountID `cramberry:"1"`
	AssetID   AssetID   `cramberry:"2"`
	Balance   string    `cramberry:"3"`
}

// RolesResult answers GetRoles.
type RolesResult struct {
	Roles []RoleID `cramberry:"1"`
}

// AssetResult answers GetAssetInfo.
type AssetResult struct {
	AssetID   AssetID `cramberry:"1"`
	Precision uint32  `cramberry:"2"`
}

// RolePermissionsResult answers GetRolePermissions.
type RolePermissionsResult struct {
	Permissions []string `cramberry:"1"`
}
