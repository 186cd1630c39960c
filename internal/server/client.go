package server

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/bgpartygames/odd-one-out/internal/identity"
	"github.com/bgpartygames/odd-one-out/internal/protocol"
)

const (
	writeWait = 10 * time.Second
	pongWait  = 60 * time.Second
	// must be shorter than pongWait
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 4096
)

// Client is one connected player.
type Client struct {
	session *identity.Session
	name    string
	roomID  string

	server *Server
	conn   *websocket.Conn
	send   chan []byte

	mu     sync.RWMutex
	closed bool
}

// NewClient wraps an upgraded connection with a fresh anonymous
// identity.
func NewClient(s *Server, conn *websocket.Conn) *Client {
	return &Client{
		session: s.identity.Issue(),
		server:  s,
		conn:    conn,
		send:    make(chan []byte, 256),
	}
}

// PlayerID returns the stable anonymous player id.
func (c *Client) PlayerID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session.PlayerID
}

// Session returns the identity session.
func (c *Client) Session() *identity.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

// SetSession swaps the identity after a successful resume.
func (c *Client) SetSession(s *identity.Session) {
	c.mu.Lock()
	c.session = s
	c.mu.Unlock()
}

// Name returns the display nickname, if one has been chosen.
func (c *Client) Name() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.name
}

// SetName records the display nickname.
func (c *Client) SetName(name string) {
	c.mu.Lock()
	c.name = name
	c.mu.Unlock()
}

// Room returns the subscribed room id, or "".
func (c *Client) Room() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.roomID
}

// SetRoom records the subscribed room id.
func (c *Client) SetRoom(roomID string) {
	c.mu.Lock()
	c.roomID = roomID
	c.mu.Unlock()
}

// ReadPump reads frames until the connection drops.
func (c *Client) ReadPump() {
	defer func() {
		c.handleDisconnect()
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("read error: %v", err)
			}
			break
		}

		msg, err := protocol.Decode(data)
		if err != nil {
			log.Printf("message decode error: %v", err)
			c.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
			continue
		}

		c.session.Touch()
		c.server.handler.Handle(c, msg)
	}
}

// WritePump drains the send queue and keeps the connection alive with
// pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SendMessage queues a message for delivery. A client that cannot keep
// up is disconnected rather than blocking the sender.
func (c *Client) SendMessage(msg *protocol.Message) {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return
	}
	c.mu.RUnlock()

	data, err := msg.Encode()
	if err != nil {
		log.Printf("message encode error: %v", err)
		return
	}

	select {
	case c.send <- data:
	default:
		log.Printf("client %s send buffer full, dropping connection", c.PlayerID())
		c.Close()
	}
}

func (c *Client) handleDisconnect() {
	// The player stays in the room document; only the live subscription
	// goes away. Presenting the resume token restores everything.
	c.server.unsubscribeClient(c)
	c.server.unregisterClient(c)
}

// Close shuts the send queue down.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.send)
	}
}
