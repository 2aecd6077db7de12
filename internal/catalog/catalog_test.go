package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsAreFixed(t *testing.T) {
	got := Products()
	require.Len(t, got, 3)

	assert.Equal(t, "xtra", got[0].ID)
	assert.Equal(t, "xtacy", got[1].ID)
	assert.Equal(t, "xotica", got[2].ID)

	for _, p := range got {
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Variant)
		assert.NotEmpty(t, p.Features)
		assert.NotEmpty(t, p.Description)
	}
}

func TestStoreLocationsTable(t *testing.T) {
	locations := StoreLocations()
	require.Len(t, locations, 5)

	for state, stores := range locations {
		assert.NotEmpty(t, stores, "state %s has no stores", state)
	}
}

func TestStoresByState(t *testing.T) {
	stores, ok := StoresByState("Lagos")
	require.True(t, ok)
	assert.Contains(t, stores, "Shoprite Ikeja")

	_, ok = StoresByState("Kaduna")
	assert.False(t, ok)

	// Lookups are exact match, no normalization.
	_, ok = StoresByState("lagos")
	assert.False(t, ok)
}
