package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockberries/querykit"
	"github.com/blockberries/querykit/builder"
	"github.com/blockberries/querykit/types"
)

// setters indexed by the FieldSet bit they satisfy.
var draftSetters = []struct {
	field types.FieldSet
	apply func(*builder.Draft)
}{
	{types.FieldCreatedTime, func(d *builder.Draft) { d.CreatedTime(100) }},
	{types.FieldCreatorAccountID, func(d *builder.Draft) { d.CreatorAccountID("alice") }},
	{types.FieldQuery, func(d *builder.Draft) { d.GetAccount("bob") }},
	{types.FieldQueryCounter, func(d *builder.Draft) { d.QueryCounter(1) }},
}

// Every one of the 16 subsets of mandatory fields is reachable, and
// only the full set builds.
func TestDraft_CompletenessGate(t *testing.T) {
	for mask := types.FieldSet(0); mask <= types.FieldsAll; mask++ {
		t.Run(mask.String(), func(t *testing.T) {
			d := builder.NewDraft()
			for _, s := range draftSetters {
				if mask.Has(s.field) {
					s.apply(d)
				}
			}
			require.Equal(t, mask, d.Fields())

			q, err := d.Build()
			if mask == types.FieldsAll {
				require.NoError(t, err)
				assert.Equal(t, types.KindGetAccount, q.Kind())
				return
			}
			inc, ok := querykit.IsIncomplete(err)
			require.True(t, ok, "expected IncompleteError, got %v", err)
			assert.Equal(t, mask.Missing(), inc.Missing)
			assert.Equal(t, builder.UnsignedQuery{}, q)
		})
	}
}

func TestDraft_IncompleteScenario(t *testing.T) {
	d := builder.NewDraft().CreatedTime(100).CreatorAccountID("alice")
	assert.Equal(t, types.FieldQuery|types.FieldQueryCounter, d.Missing())

	_, err := d.Build()
	assert.EqualError(t, err, "querykit: required fields are not set: Query|QueryCounter")
	assert.Panics(t, func() { d.MustBuild() })
}

func TestDraft_IdempotentUnion(t *testing.T) {
	d := builder.NewDraft().
		QueryCounter(1).
		QueryCounter(2).
		CreatedTime(100).
		CreatorAccountID("alice").
		GetRolePermissions("admin")
	assert.Equal(t, types.FieldsAll, d.Fields())

	q := d.MustBuild()
	assert.Equal(t, uint64(2), q.QueryCounter())
	assert.Equal(t, types.KindGetRolePermissions, q.Kind())
}

func TestDraft_LastWriteWins(t *testing.T) {
	q := builder.NewDraft().
		CreatedTime(100).
		CreatorAccountID("alice").
		GetAccount("bob").
		GetAssetInfo("coin#test").
		QueryCounter(1).
		MustBuild()
	p := q.Payload()
	assert.Nil(t, p.Query.GetAccount)
	require.NotNil(t, p.Query.GetAssetInfo)
	assert.Equal(t, types.AssetID("coin#test"), p.Query.GetAssetInfo.AssetID)
}

func TestDraft_EditsAfterBuildAreNotObserved(t *testing.T) {
	d := builder.NewDraft().
		CreatedTime(100).
		CreatorAccountID("alice").
		GetAccount("bob").
		QueryCounter(1)
	q := d.MustBuild()

	d.QueryCounter(5).GetRoles()
	assert.Equal(t, uint64(1), q.QueryCounter())
	assert.Equal(t, types.KindGetAccount, q.Kind())
}

func TestDraft_MatchesTypedBuilder(t *testing.T) {
	typed := builder.Build(builder.New().
		CreatedTime(100).
		CreatorAccountID("alice").
		GetAccountAssetTransactions("bob", "coin#test").
		QueryCounter(3))
	dynamic := builder.NewDraft().
		CreatedTime(100).
		CreatorAccountID("alice").
		GetAccountAssetTransactions("bob", "coin#test").
		QueryCounter(3).
		MustBuild()

	h1, err := typed.Hash()
	require.NoError(t, err)
	h2, err := dynamic.Hash()
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
}
