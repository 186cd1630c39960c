// Package server runs the WebSocket game server: it owns the client
// connections, applies room transitions through the store, and fans
// document changes back out to every subscriber of a room.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/bgpartygames/odd-one-out/internal/config"
	"github.com/bgpartygames/odd-one-out/internal/identity"
	"github.com/bgpartygames/odd-one-out/internal/protocol"
	"github.com/bgpartygames/odd-one-out/internal/store"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // restrict in production
	},
}

// Server is the WebSocket game server.
type Server struct {
	config    *config.Config
	redis     *redis.Client
	roomStore *store.RoomStore
	identity  *identity.Provider
	handler   *Handler

	clients   map[*Client]struct{}
	clientsMu sync.Mutex

	hubs   map[string]*roomHub
	hubsMu sync.Mutex

	httpServer *http.Server
}

// NewServer creates a server instance and verifies the Redis
// connection.
func NewServer(cfg *config.Config) (*Server, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	s := &Server{
		config:    cfg,
		redis:     rdb,
		roomStore: store.NewRoomStore(rdb, cfg.Game.RoomExpirationDuration()),
		identity:  identity.NewProvider(),
		clients:   make(map[*Client]struct{}),
		hubs:      make(map[string]*roomHub),
	}
	s.handler = NewHandler(s)

	return s, nil
}

// Start listens for WebSocket connections until Shutdown.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	log.Printf("server listening on ws://%s/ws", addr)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the listener and closes all connections.
func (s *Server) Shutdown() {
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpServer.Shutdown(ctx)
	}

	s.clientsMu.Lock()
	for c := range s.clients {
		c.Close()
	}
	s.clientsMu.Unlock()

	_ = s.redis.Close()
}

// RoomStore exposes the document store, mainly for tests.
func (s *Server) RoomStore() *store.RoomStore {
	return s.roomStore
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("upgrade failed: %v", err)
		return
	}

	client := NewClient(s, conn)
	s.registerClient(client)

	client.SendMessage(protocol.MustNewMessage(protocol.MsgConnected, protocol.ConnectedPayload{
		PlayerID:    client.PlayerID(),
		ResumeToken: client.Session().ResumeToken,
	}))

	go client.WritePump()
	go client.ReadPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) registerClient(c *Client) {
	s.clientsMu.Lock()
	s.clients[c] = struct{}{}
	s.clientsMu.Unlock()
}

func (s *Server) unregisterClient(c *Client) {
	s.clientsMu.Lock()
	delete(s.clients, c)
	s.clientsMu.Unlock()
}
