package types

import "fmt"

// QueryKind names the concrete query carried in a payload.
type QueryKind uint8

const (
	KindNone QueryKind = iota
	KindGetAccount
	KindGetSignatories
	KindGetAccountTransactions
	KindGetAccountAssetTransactions
	KindGetAccountAssets
	KindGetRoles
	KindGetAssetInfo
	KindGetRolePermissions
)

func (k QueryKind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindGetAccount:
		return "GetAccount"
	case KindGetSignatories:
		return "GetSignatories"
	case KindGetAccountTransactions:
		return "GetAccountTransactions"
	case KindGetAccountAssetTransactions:
		return "GetAccountAssetTransactions"
	case KindGetAccountAssets:
		return "GetAccountAssets"
	case KindGetRoles:
		return "GetRoles"
	case KindGetAssetInfo:
		return "GetAssetInfo"
	case KindGetRolePermissions:
		return "GetRolePermissions"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

// GetAccount requests an account's details.
type GetAccount struct {
	AccountID AccountID `cramberry:"1"`
}

// GetSignatories requests the public keys attached to an account.
type GetSignatories struct {
	AccountID AccountID `cramberry:"1"`
}

// GetAccountTransactions requests the transactions created by an account.
type GetAccountTransactions struct {
	AccountID AccountID `cramberry:"1"`
}

// GetAccountAssetTransactions requests an account's transactions
// touching a single asset.
type GetAccountAssetTransactions struct {
	AccountID AccountID `cramberry:"1"`
	AssetID   AssetID   `cramberry:"2"`
}

// GetAccountAssets requests an account's balance of an asset.
type GetAccountAssets struct {
	AccountID AccountID `cramberry:"1"`
	AssetID   AssetID   `cramberry:"2"`
}

// GetRoles requests every role known to the ledger.
type GetRoles struct{}

// GetAssetInfo requests an asset's definition.
type GetAssetInfo struct {
	AssetID AssetID `cramberry:"1"`
}

// GetRolePermissions requests the permissions granted by a role.
type GetRolePermissions struct {
	RoleID RoleID `cramberry:"1"`
}

// QueryUnion is a tagged union holding at most one concrete query.
// Tag names the variant and is part of the signed encoding; an empty
// variant such as GetRoles encodes no bytes of its own, so the tag is
// what keeps the query kind on the wire.
type QueryUnion struct {
	GetAccount                  *GetAccount                  `cramberry:"1"`
	GetSignatories              *GetSignatories              `cramberry:"2"`
	GetAccountTransactions      *GetAccountTransactions      `cramberry:"3"`
	GetAccountAssetTransactions *GetAccountAssetTransactions `cramberry:"4"`
	GetAccountAssets            *GetAccountAssets            `cramberry:"5"`
	GetRoles                    *GetRoles                    `cramberry:"6"`
	GetAssetInfo                *GetAssetInfo                `cramberry:"7"`
	GetRolePermissions          *GetRolePermissions          `cramberry:"8"`
	Tag                         QueryKind                    `cramberry:"9"`
}

// Kind reports which variant is held.
//
// When Tag is set it decides, provided the tagged variant is present
// (GetRoles carries no data and is always present once tagged).
// A union assembled without a tag falls back to the first non-nil
// variant in declaration order.
func (u QueryUnion) Kind() QueryKind {
	if u.Tag != KindNone {
		if u.holds(u.Tag) {
			return u.Tag
		}
		return KindNone
	}
	for k := KindGetAccount; k <= KindGetRolePermissions; k++ {
		if k == KindGetRoles && u.GetRoles == nil {
			continue
		}
		if u.holds(k) {
			return k
		}
	}
	return KindNone
}

func (u QueryUnion) holds(k QueryKind) bool {
	switch k {
	case KindGetAccount:
		return u.GetAccount != nil
	case KindGetSignatories:
		return u.GetSignatories != nil
	case KindGetAccountTransactions:
		return u.GetAccountTransactions != nil
	case KindGetAccountAssetTransactions:
		return u.GetAccountAssetTransactions != nil
	case KindGetAccountAssets:
		return u.GetAccountAssets != nil
	case KindGetRoles:
		return true
	case KindGetAssetInfo:
		return u.GetAssetInfo != nil
	case KindGetRolePermissions:
		return u.GetRolePermissions != nil
	default:
		return false
	}
}

// QueryPayload is the signed portion of a query.
type QueryPayload struct {
	// Creation time in milliseconds since the Unix epoch.
	CreatedTime      uint64     `cramberry:"1"`
	CreatorAccountID AccountID  `cramberry:"2"`
	Query            QueryUnion `cramberry:"3"`
	// Per-creator counter, strictly increasing. Used for replay protection.
	QueryCounter uint64 `cramberry:"4"`
}

// Fields reports which mandatory fields carry a non-zero value.
// Builders track presence exactly; this is the best a receiver
// can do with a decoded payload, where zero means absent.
func (p QueryPayload) Fields() FieldSet {
	var s FieldSet
	if p.CreatedTime != 0 {
		s = s.With(FieldCreatedTime)
	}
	if p.CreatorAccountID != "" {
		s = s.With(FieldCreatorAccountID)
	}
	if p.Query.Kind() != KindNone {
		s = s.With(FieldQuery)
	}
	if p.QueryCounter != 0 {
		s = s.With(FieldQueryCounter)
	}
	return s
}

// Signature binds a payload to the key that signed it.
type Signature struct {
	PublicKey PublicKey `cramberry:"1"`
	Signature []byte    `cramberry:"2"`
}

// Query is the transmittable request: a payload plus its signature.
// Signature is nil until the payload has been signed.
type Query struct {
	Payload   QueryPayload `cramberry:"1"`
	Signature *Signature   `cramberry:"2"`
}

// Signed returns true if a signature is attached.
func (q Query) Signed() bool {
	return q.Signature != nil
}
