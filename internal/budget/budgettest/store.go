// Package budgettest checks implementations of budget.Store.
package budgettest

import (
	"context"
	"testing"

	"github.com/findash/backend/internal/budget"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStore runs the behaviour every budget.Store must have against an
// empty store.
func TestStore(t *testing.T, store budget.Store) {
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "Food & Dining")
	require.Nil(t, err)
	assert.False(t, ok, "An empty store must not return a limit")

	all, err := store.All(ctx)
	require.Nil(t, err)
	assert.Empty(t, all)

	require.Nil(t, store.Set(ctx, "Food & Dining", decimal.NewFromInt(5000)))
	require.Nil(t, store.Set(ctx, "Travel", decimal.RequireFromString("1250.50")))

	limit, ok, err := store.Get(ctx, "Food & Dining")
	require.Nil(t, err)
	assert.True(t, ok)
	assert.True(t, decimal.NewFromInt(5000).Equal(limit), "Limit is %s", limit)

	// Setting again replaces the limit
	require.Nil(t, store.Set(ctx, "Food & Dining", decimal.NewFromInt(4000)))
	limit, _, err = store.Get(ctx, "Food & Dining")
	require.Nil(t, err)
	assert.True(t, decimal.NewFromInt(4000).Equal(limit), "Limit is %s", limit)

	// Zero is a valid limit
	require.Nil(t, store.Set(ctx, "Other", decimal.Zero))
	limit, ok, err = store.Get(ctx, "Other")
	require.Nil(t, err)
	assert.True(t, ok)
	assert.True(t, limit.IsZero())

	assert.ErrorIs(t, store.Set(ctx, "Travel", decimal.NewFromInt(-1)), budget.ErrNegativeLimit)

	all, err = store.All(ctx)
	require.Nil(t, err)
	assert.Len(t, all, 3)
	assert.True(t, decimal.RequireFromString("1250.5").Equal(all.Of("Travel")), "Travel limit is %s", all.Of("Travel"))
}
