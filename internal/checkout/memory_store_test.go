package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emidobak1/happy-snail/internal/domain"
)

func TestMemoryStore_SaveAndGet(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	session := &Session{ID: "s1", Step: domain.StepCart, UpdatedAt: time.Now()}
	require.NoError(t, store.Save(session))

	got, err := store.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestMemoryStore_GetReturnsIndependentCopy(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	require.NoError(t, store.Save(&Session{ID: "s1", Step: domain.StepShipping, UpdatedAt: time.Now()}))

	first, err := store.Get("s1")
	require.NoError(t, err)
	first.Step = domain.StepConfirmation
	first.Draft.CardNumber = "4111111111111111"

	second, err := store.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepShipping, second.Step)
	assert.Empty(t, second.Draft.CardNumber)
}

func TestMemoryStore_SaveKeepsOwnCopy(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	session := &Session{ID: "s1", Step: domain.StepPayment, UpdatedAt: time.Now()}
	require.NoError(t, store.Save(session))

	session.Step = domain.StepCart

	got, err := store.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepPayment, got.Step)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	_, err := store.Get("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	require.NoError(t, store.Save(&Session{ID: "s1", UpdatedAt: time.Now()}))
	require.NoError(t, store.Delete("s1"))

	_, err := store.Get("s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_SweepExpiresStaleSessions(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	stale := &Session{ID: "stale", UpdatedAt: time.Now().Add(-2 * SessionTTL)}
	fresh := &Session{ID: "fresh", UpdatedAt: time.Now()}
	require.NoError(t, store.Save(stale))
	require.NoError(t, store.Save(fresh))

	store.expireSessions()

	_, err := store.Get("stale")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = store.Get("fresh")
	assert.NoError(t, err)
}
