package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgpartygames/odd-one-out/internal/game"
)

func newTestStore(t *testing.T) (*RoomStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return NewRoomStore(client, time.Hour), mr
}

func testRoom(t *testing.T) *game.Room {
	t.Helper()
	room, err := game.NewRoom("p1", "Alice", "Objects", "en")
	require.NoError(t, err)
	return room
}

func TestRoomStore_CreateAndGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	room := testRoom(t)
	require.NoError(t, store.Create(ctx, room))
	assert.Len(t, room.ID, 6)
	assert.Equal(t, int64(1), room.Version)

	loaded, err := store.Get(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, room.ID, loaded.ID)
	assert.Equal(t, "p1", loaded.HostID)
	assert.Equal(t, game.PhaseLobby, loaded.Phase)
	require.Len(t, loaded.Players, 1)
	assert.Equal(t, "Alice", loaded.Players[0].Name)

	_, err = store.Get(ctx, "000000x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRoomStore_CompareAndSwap(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	room := testRoom(t)
	require.NoError(t, store.Create(ctx, room))

	require.NoError(t, room.Join("p2", "Bob"))
	require.NoError(t, store.CompareAndSwap(ctx, room))
	assert.Equal(t, int64(2), room.Version)

	loaded, err := store.Get(ctx, room.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Players, 2)
	assert.Equal(t, int64(2), loaded.Version)
}

func TestRoomStore_CompareAndSwap_Conflict(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	room := testRoom(t)
	require.NoError(t, store.Create(ctx, room))

	// Two writers read the same version; the second write must fail.
	copy1, err := store.Get(ctx, room.ID)
	require.NoError(t, err)
	copy2, err := store.Get(ctx, room.ID)
	require.NoError(t, err)

	require.NoError(t, copy1.Join("p2", "Bob"))
	require.NoError(t, store.CompareAndSwap(ctx, copy1))

	require.NoError(t, copy2.Join("p3", "Cara"))
	err = store.CompareAndSwap(ctx, copy2)
	assert.ErrorIs(t, err, ErrConflict)

	// The losing write left no trace.
	loaded, err := store.Get(ctx, room.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Players, 2)
	assert.Equal(t, "Bob", loaded.Players[1].Name)
}

func TestRoomStore_CompareAndSwap_Deleted(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	room := testRoom(t)
	require.NoError(t, store.Create(ctx, room))
	require.NoError(t, store.Delete(ctx, room.ID))

	err := store.CompareAndSwap(ctx, room)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Get(ctx, room.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRoomStore_Subscribe(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	room := testRoom(t)
	require.NoError(t, store.Create(ctx, room))

	sub := store.Subscribe(ctx, room.ID)
	defer sub.Close()

	// Give the subscription a moment to attach before publishing.
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, room.Join("p2", "Bob"))
	require.NoError(t, store.CompareAndSwap(ctx, room))

	select {
	case event := <-sub.Events():
		assert.Equal(t, room.ID, event.RoomID)
		assert.False(t, event.Deleted)
		require.NotNil(t, event.Room)
		assert.Len(t, event.Room.Players, 2)
	case <-time.After(2 * time.Second):
		t.Fatal("no event received for update")
	}

	require.NoError(t, store.Delete(ctx, room.ID))

	select {
	case event := <-sub.Events():
		assert.True(t, event.Deleted)
		assert.Equal(t, room.ID, event.RoomID)
	case <-time.After(2 * time.Second):
		t.Fatal("no event received for delete")
	}
}
