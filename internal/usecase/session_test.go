package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Pings-Lab/pings-lab.github.io/pkg/formpost"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/validation"
)

type nopGateway struct{}

func (nopGateway) Submit(context.Context, string, []formpost.Field) error { return nil }

func TestSessionStoreLifecycle(t *testing.T) {
	clock := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	store := NewSessionStore(nopGateway{}, "https://example.com", validation.New(), 10*time.Minute)
	store.now = func() time.Time { return clock }

	sess, created := store.GetOrCreate("")
	assert.True(t, created)
	assert.NotEmpty(t, sess.ID)
	// Both controllers push into the same queue.
	assert.Same(t, sess.Toasts, sess.Contact.toasts)
	assert.Same(t, sess.Toasts, sess.Notify.toasts)

	again, created := store.GetOrCreate(sess.ID)
	assert.False(t, created)
	assert.Same(t, sess, again)

	clock = clock.Add(11 * time.Minute)
	_, ok := store.Get(sess.ID)
	assert.False(t, ok, "idle session expires")

	fresh, created := store.GetOrCreate(sess.ID)
	assert.True(t, created)
	assert.NotEqual(t, sess.ID, fresh.ID)
}

func TestSessionStoreSweep(t *testing.T) {
	clock := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	store := NewSessionStore(nopGateway{}, "", validation.New(), time.Minute)
	store.now = func() time.Time { return clock }

	stale, _ := store.GetOrCreate("")
	clock = clock.Add(50 * time.Second)
	live, _ := store.GetOrCreate("")
	clock = clock.Add(20 * time.Second)

	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 1, store.Len())

	_, ok := store.Get(stale.ID)
	assert.False(t, ok)
	_, ok = store.Get(live.ID)
	assert.True(t, ok)
}

func TestSessionStoreUnknownID(t *testing.T) {
	store := NewSessionStore(nopGateway{}, "", validation.New(), time.Minute)
	_, ok := store.Get("missing")
	assert.False(t, ok)
}
