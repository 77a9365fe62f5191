package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreUpsertCreatesOncePerWallet(t *testing.T) {
	store := NewMemoryRegistryStore()

	user, created, err := store.Upsert("WALLET_A", "")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "WALLET_A", user.WalletAddress)
	assert.True(t, user.HasRequestedAccess)
	assert.Nil(t, user.Email)
	assert.False(t, user.JoinedAt.IsZero())

	again, created, err := store.Upsert("WALLET_A", "")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, user.ID, again.ID)
	assert.Equal(t, user.JoinedAt, again.JoinedAt)

	users, err := store.ListAll()
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestMemoryStoreAssignsMonotonicIDs(t *testing.T) {
	store := NewMemoryRegistryStore()

	a, _, err := store.Upsert("WALLET_A", "")
	require.NoError(t, err)
	b, _, err := store.Upsert("WALLET_B", "")
	require.NoError(t, err)
	c, _, err := store.Upsert("WALLET_C", "")
	require.NoError(t, err)

	assert.Equal(t, uint(1), a.ID)
	assert.Equal(t, uint(2), b.ID)
	assert.Equal(t, uint(3), c.ID)
}

func TestMemoryStoreEmailOnlySetWhenSupplied(t *testing.T) {
	store := NewMemoryRegistryStore()

	user, _, err := store.Upsert("WALLET_A", "")
	require.NoError(t, err)
	assert.Nil(t, user.Email)

	// Later registration supplies an email
	user, created, err := store.Upsert("WALLET_A", "a@x.com")
	require.NoError(t, err)
	assert.False(t, created)
	require.NotNil(t, user.Email)
	assert.Equal(t, "a@x.com", *user.Email)

	// An empty email on a further registration must not wipe it
	user, _, err = store.Upsert("WALLET_A", "")
	require.NoError(t, err)
	require.NotNil(t, user.Email)
	assert.Equal(t, "a@x.com", *user.Email)
}

func TestMemoryStoreWalletAddressIsCaseSensitive(t *testing.T) {
	store := NewMemoryRegistryStore()

	_, created, err := store.Upsert("Wallet", "")
	require.NoError(t, err)
	assert.True(t, created)

	_, created, err = store.Upsert("wallet", "")
	require.NoError(t, err)
	assert.True(t, created, "different casing is a different wallet")

	users, err := store.ListAll()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestMemoryStoreListAllOrdersByJoinedAtDescending(t *testing.T) {
	store := NewMemoryRegistryStore()
	now := time.Now().UTC()

	_, _, err := store.Upsert("OLD", "")
	require.NoError(t, err)
	_, _, err = store.Upsert("MID", "")
	require.NoError(t, err)
	_, _, err = store.Upsert("NEW", "")
	require.NoError(t, err)

	// Spread join times so the ordering is unambiguous
	store.mu.Lock()
	store.users[0].JoinedAt = now.Add(-2 * time.Hour)
	store.users[1].JoinedAt = now.Add(-1 * time.Hour)
	store.users[2].JoinedAt = now
	store.mu.Unlock()

	users, err := store.ListAll()
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "NEW", users[0].WalletAddress)
	assert.Equal(t, "MID", users[1].WalletAddress)
	assert.Equal(t, "OLD", users[2].WalletAddress)
}

func TestMemoryStoreListAllBreaksTiesByInsertionOrder(t *testing.T) {
	store := NewMemoryRegistryStore()
	now := time.Now().UTC()

	_, _, err := store.Upsert("FIRST", "")
	require.NoError(t, err)
	_, _, err = store.Upsert("SECOND", "")
	require.NoError(t, err)

	store.mu.Lock()
	store.users[0].JoinedAt = now
	store.users[1].JoinedAt = now
	store.mu.Unlock()

	users, err := store.ListAll()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "FIRST", users[0].WalletAddress)
	assert.Equal(t, "SECOND", users[1].WalletAddress)
}

func TestMemoryStoreFindByWalletUnknownIsNotAnError(t *testing.T) {
	store := NewMemoryRegistryStore()

	_, found, err := store.FindByWallet("NEVER_SEEN")
	require.NoError(t, err)
	assert.False(t, found)
}
