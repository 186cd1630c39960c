// Package store persists room documents in Redis and propagates changes
// to subscribers over pub/sub. It is the single source of truth for all
// game state.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bgpartygames/odd-one-out/internal/game"
)

const (
	roomKeyPrefix     = "oddoneout:room:"
	roomChannelPrefix = "oddoneout:room:events:"

	roomCodeLength = 6
	roomCodeChars  = "0123456789"
)

var (
	// ErrNotFound: the room id does not exist (or was deleted).
	ErrNotFound = errors.New("room not found")
	// ErrConflict: the document changed since it was read; reload and
	// re-apply the transition.
	ErrConflict = errors.New("room was modified concurrently")
)

// Event is one change notification for a subscribed room.
type Event struct {
	RoomID  string     `json:"room_id"`
	Deleted bool       `json:"deleted,omitempty"`
	Room    *game.Room `json:"room,omitempty"`
}

// RoomStore is the Redis-backed room document store.
type RoomStore struct {
	client     *redis.Client
	expiration time.Duration
}

// NewRoomStore creates a room store. Rooms idle longer than expiration
// are evicted by Redis.
func NewRoomStore(client *redis.Client, expiration time.Duration) *RoomStore {
	return &RoomStore{client: client, expiration: expiration}
}

// Create assigns the room a fresh id and persists it at version 1.
func (s *RoomStore) Create(ctx context.Context, room *game.Room) error {
	for {
		code := generateRoomCode()
		room.ID = code
		room.Version = 1

		data, err := json.Marshal(room)
		if err != nil {
			return fmt.Errorf("marshal room: %w", err)
		}

		ok, err := s.client.SetNX(ctx, roomKeyPrefix+code, data, s.expiration).Result()
		if err != nil {
			return err
		}
		if ok {
			return s.publish(ctx, Event{RoomID: room.ID, Room: room})
		}
		// code collision, draw another
	}
}

// Get point-reads a room document.
func (s *RoomStore) Get(ctx context.Context, id string) (*game.Room, error) {
	data, err := s.client.Get(ctx, roomKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var room game.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, fmt.Errorf("unmarshal room: %w", err)
	}
	return &room, nil
}

// CompareAndSwap writes the room only if the stored version still equals
// room.Version, then bumps it. Returns ErrConflict when another writer
// got there first; the caller is expected to reload and retry so every
// transition observes a consistent prior state.
func (s *RoomStore) CompareAndSwap(ctx context.Context, room *game.Room) error {
	key := roomKeyPrefix + room.ID

	next := room.Clone()
	next.Version++
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("marshal room: %w", err)
	}

	err = s.client.Watch(ctx, func(tx *redis.Tx) error {
		stored, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return ErrNotFound
			}
			return err
		}

		var current game.Room
		if err := json.Unmarshal(stored, &current); err != nil {
			return fmt.Errorf("unmarshal room: %w", err)
		}
		if current.Version != room.Version {
			return ErrConflict
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, s.expiration)
			return nil
		})
		return err
	}, key)

	if errors.Is(err, redis.TxFailedErr) {
		return ErrConflict
	}
	if err != nil {
		return err
	}

	room.Version = next.Version
	return s.publish(ctx, Event{RoomID: room.ID, Room: next})
}

// Delete removes the room and notifies subscribers.
func (s *RoomStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, roomKeyPrefix+id).Err(); err != nil {
		return err
	}
	return s.publish(ctx, Event{RoomID: id, Deleted: true})
}

// Subscribe starts listening for changes to one room. The returned
// subscription must be closed to stop delivery.
func (s *RoomStore) Subscribe(ctx context.Context, id string) *Subscription {
	pubsub := s.client.Subscribe(ctx, roomChannelPrefix+id)
	sub := &Subscription{
		pubsub: pubsub,
		events: make(chan Event, 16),
	}
	go sub.loop()
	return sub
}

func (s *RoomStore) publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return s.client.Publish(ctx, roomChannelPrefix+event.RoomID, data).Err()
}

// Subscription delivers change events for one room.
type Subscription struct {
	pubsub *redis.PubSub
	events chan Event
}

// Events returns the change channel. It is closed when the subscription
// is closed or the underlying connection drops.
func (sub *Subscription) Events() <-chan Event {
	return sub.events
}

// Close stops delivery. In-flight writes are not cancelled.
func (sub *Subscription) Close() error {
	return sub.pubsub.Close()
}

func (sub *Subscription) loop() {
	defer close(sub.events)
	for msg := range sub.pubsub.Channel() {
		var event Event
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			continue
		}
		sub.events <- event
	}
}

func generateRoomCode() string {
	code := make([]byte, roomCodeLength)
	for i := range code {
		code[i] = roomCodeChars[rand.IntN(len(roomCodeChars))]
	}
	return string(code)
}
