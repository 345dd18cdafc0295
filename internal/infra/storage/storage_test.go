package storage

import (
	"os"
	"path/filepath"
	"testing"

	"storefront/config"
	"storefront/internal/domain/gateway"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T) *config.Config {
	dir := t.TempDir()
	cfg := &config.Config{
		GuestCart: &config.GuestCartConfig{Path: filepath.Join(dir, "cart.json")},
		Session:   &config.SessionConfig{Path: filepath.Join(dir, "session.json")},
	}

	return cfg
}

func TestGuestCartStore_UpsertMergesSameProduct(t *testing.T) {
	store := NewGuestCartStore(newTestConfig(t))

	require.NoError(t, store.Upsert(gateway.GuestCartItem{ProductID: 7, Name: "Mug", Price: 1000, Quantity: 2}))
	require.NoError(t, store.Upsert(gateway.GuestCartItem{ProductID: 7, Name: "Mug", Price: 1000, Quantity: 1}))

	items, err := store.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.NotEqual(t, uuid.Nil, items[0].ID)
}

func TestGuestCartStore_QuantityBelowOneRemovesLine(t *testing.T) {
	store := NewGuestCartStore(newTestConfig(t))

	require.NoError(t, store.Upsert(gateway.GuestCartItem{ProductID: 1, Name: "Tea", Price: 500, Quantity: 2}))
	items, err := store.List()
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, store.UpdateQuantity(items[0].ID, 0))

	items, err = store.List()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGuestCartStore_SurvivesRestart(t *testing.T) {
	cfg := newTestConfig(t)
	store := NewGuestCartStore(cfg)
	require.NoError(t, store.Upsert(gateway.GuestCartItem{ProductID: 2, Name: "Pot", Price: 2500, Quantity: 1}))

	reopened := NewGuestCartStore(cfg)
	items, err := reopened.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ProductID)
}

func TestGuestCartStore_CorruptFileDegradesToEmpty(t *testing.T) {
	cfg := newTestConfig(t)
	require.NoError(t, os.WriteFile(cfg.GuestCart.Path, []byte("{not json"), 0o644))

	store := NewGuestCartStore(cfg)
	items, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGuestCartStore_Clear(t *testing.T) {
	store := NewGuestCartStore(newTestConfig(t))
	require.NoError(t, store.Upsert(gateway.GuestCartItem{ProductID: 3, Name: "Pan", Price: 900, Quantity: 1}))

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear()) // clearing twice is fine

	items, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSessionStore_RoundTrip(t *testing.T) {
	cfg := newTestConfig(t)
	store := NewSessionStore(cfg)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	session := &gateway.StoredSession{Token: "token-abc"}
	session.User.ID = 42
	session.User.Email = "shopper@example.com"
	require.NoError(t, store.Save(session))

	loaded, err = store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "token-abc", loaded.Token)
	assert.Equal(t, int64(42), loaded.User.ID)

	require.NoError(t, store.Clear())
	loaded, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSessionStore_RejectsEmptySession(t *testing.T) {
	store := NewSessionStore(newTestConfig(t))

	assert.Error(t, store.Save(nil))
	assert.Error(t, store.Save(&gateway.StoredSession{}))
}
