package client

import (
	"errors"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"github.com/bgpartygames/odd-one-out/internal/logger"
	"github.com/bgpartygames/odd-one-out/internal/protocol"
)

// Resume asks the server to restore the previous identity. The server
// replies with MsgResumed, including the room snapshot if the player
// was still in one.
func (c *Client) Resume() error {
	if c.ResumeToken == "" {
		return errors.New("no resume token")
	}
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgResume, protocol.ResumePayload{
		Token: c.ResumeToken,
	}))
}

// StartHeartbeat starts a background loop sending pings for latency
// measurement.
func (c *Client) StartHeartbeat() {
	go func() {
		ticker := time.NewTicker(heartbeatInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if c.IsConnected() {
					_ = c.Ping()
				}
			case <-c.done:
				return
			}
		}
	}()
}

// tryReconnect redials with exponential backoff and resumes the
// previous identity on success.
func (c *Client) tryReconnect() {
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			log.Printf("[PANIC] tryReconnect panic recovered: %v", r)
			c.reconnecting.Store(false)
		}
	}()

	if c.reconnecting.Load() {
		return
	}
	c.reconnecting.Store(true)

	backoff := reconnectInterval

	for c.reconnectCount < maxReconnectAttempts {
		c.reconnectCount++
		if c.OnReconnecting != nil {
			c.OnReconnecting(c.reconnectCount, maxReconnectAttempts)
		}

		time.Sleep(backoff)

		backoff *= 2
		if backoff > 30*time.Second {
			backoff = 30 * time.Second
		}

		dialer := websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
		}

		conn, _, err := dialer.Dial(c.ServerURL, nil)
		if err != nil {
			continue
		}

		c.mu.Lock()
		c.conn = conn
		c.closed = false
		c.send = make(chan []byte, 256)
		c.receive = make(chan *protocol.Message, 256)
		c.done = make(chan struct{})
		c.mu.Unlock()

		go c.readPump()
		go c.writePump()

		// Give the server a moment to send MsgConnected for the fresh
		// socket before asking it to swap in the old identity.
		time.Sleep(100 * time.Millisecond)
		if err := c.Resume(); err != nil {
			_ = c.conn.Close()
			continue
		}

		// Success is signaled by MsgResumed on the receive channel.
		return
	}

	c.reconnecting.Store(false)
	c.Close()
	if c.OnClose != nil {
		c.OnClose()
	}
}
