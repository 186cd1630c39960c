package server

import (
	"context"
	"log"
	"sync"

	"github.com/bgpartygames/odd-one-out/internal/protocol"
	"github.com/bgpartygames/odd-one-out/internal/store"
)

// roomHub fans one room's change events out to its connected
// subscribers, each with a personalized snapshot.
type roomHub struct {
	roomID  string
	server  *Server
	sub     *store.Subscription
	clients map[*Client]struct{}
	mu      sync.Mutex
}

// subscribeClient attaches a client to a room's hub, creating the hub
// (and the store subscription) on first use.
func (s *Server) subscribeClient(c *Client, roomID string) {
	s.hubsMu.Lock()
	hub, ok := s.hubs[roomID]
	if !ok {
		hub = &roomHub{
			roomID:  roomID,
			server:  s,
			sub:     s.roomStore.Subscribe(context.Background(), roomID),
			clients: make(map[*Client]struct{}),
		}
		s.hubs[roomID] = hub
		go hub.run()
	}
	s.hubsMu.Unlock()

	hub.mu.Lock()
	hub.clients[c] = struct{}{}
	hub.mu.Unlock()

	c.SetRoom(roomID)
	c.Session().SetRoom(roomID)
}

// unsubscribeClient detaches a client from its room's hub. The hub and
// its store subscription are torn down with the last subscriber.
func (s *Server) unsubscribeClient(c *Client) {
	roomID := c.Room()
	if roomID == "" {
		return
	}
	c.SetRoom("")

	s.hubsMu.Lock()
	hub, ok := s.hubs[roomID]
	s.hubsMu.Unlock()
	if !ok {
		return
	}

	hub.mu.Lock()
	delete(hub.clients, c)
	empty := len(hub.clients) == 0
	hub.mu.Unlock()

	if empty {
		s.dropHub(roomID)
	}
}

func (s *Server) dropHub(roomID string) {
	s.hubsMu.Lock()
	hub, ok := s.hubs[roomID]
	if ok {
		delete(s.hubs, roomID)
	}
	s.hubsMu.Unlock()

	if ok {
		_ = hub.sub.Close()
	}
}

func (hub *roomHub) run() {
	for event := range hub.sub.Events() {
		if event.Deleted {
			hub.broadcastDeleted()
			hub.server.dropHub(hub.roomID)
			return
		}

		hub.mu.Lock()
		for c := range hub.clients {
			snap := event.Room.SnapshotFor(c.PlayerID())
			c.SendMessage(protocol.MustNewMessage(protocol.MsgRoomState, snap))
		}
		hub.mu.Unlock()
	}

	log.Printf("subscription for room %s closed", hub.roomID)
}

// broadcastDeleted resets every subscriber to its pre-room state.
func (hub *roomHub) broadcastDeleted() {
	msg := protocol.MustNewMessage(protocol.MsgRoomDeleted, protocol.RoomDeletedPayload{
		RoomID: hub.roomID,
	})

	hub.mu.Lock()
	defer hub.mu.Unlock()
	for c := range hub.clients {
		c.SetRoom("")
		c.Session().SetRoom("")
		c.SendMessage(msg)
	}
}
