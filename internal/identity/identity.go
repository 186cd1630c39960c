// Package identity issues stable anonymous player identities. A client
// gets a player id plus a resume token on first connect; presenting the
// token later restores the same id, so a player survives reconnects and
// page reloads without registering anywhere.
package identity

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// Sessions idle for this long are forgotten.
	sessionExpireTime = 24 * time.Hour
	cleanupInterval   = 10 * time.Minute
)

// Session is one anonymous identity.
type Session struct {
	PlayerID    string
	ResumeToken string
	RoomID      string // room the player was last in, for resume
	LastSeen    time.Time

	mu sync.Mutex
}

// SetRoom records the room the player is in.
func (s *Session) SetRoom(roomID string) {
	s.mu.Lock()
	s.RoomID = roomID
	s.mu.Unlock()
}

// Room returns the room the player was last in.
func (s *Session) Room() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.RoomID
}

// Touch refreshes the idle timer.
func (s *Session) Touch() {
	s.mu.Lock()
	s.LastSeen = time.Now()
	s.mu.Unlock()
}

// Provider manages anonymous sessions.
type Provider struct {
	sessions map[string]*Session // playerID -> session
	tokens   map[string]string   // resume token -> playerID
	mu       sync.RWMutex
}

// NewProvider creates a provider and starts its cleanup loop.
func NewProvider() *Provider {
	p := &Provider{
		sessions: make(map[string]*Session),
		tokens:   make(map[string]string),
	}
	go p.cleanupLoop()
	return p
}

// Issue creates a fresh anonymous identity.
func (p *Provider) Issue() *Session {
	p.mu.Lock()
	defer p.mu.Unlock()

	session := &Session{
		PlayerID:    uuid.New().String(),
		ResumeToken: generateToken(),
		LastSeen:    time.Now(),
	}
	p.sessions[session.PlayerID] = session
	p.tokens[session.ResumeToken] = session.PlayerID
	return session
}

// Resume restores the identity behind a resume token, or returns nil
// for an unknown or expired token.
func (p *Provider) Resume(token string) *Session {
	p.mu.RLock()
	defer p.mu.RUnlock()

	playerID, ok := p.tokens[token]
	if !ok {
		return nil
	}
	session := p.sessions[playerID]
	if session != nil {
		session.Touch()
	}
	return session
}

// Get returns the session for a player id, or nil.
func (p *Provider) Get(playerID string) *Session {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.sessions[playerID]
}

func (p *Provider) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		p.cleanup()
	}
}

func (p *Provider) cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	cutoff := time.Now().Add(-sessionExpireTime)
	for id, session := range p.sessions {
		session.mu.Lock()
		expired := session.LastSeen.Before(cutoff)
		session.mu.Unlock()
		if expired {
			delete(p.tokens, session.ResumeToken)
			delete(p.sessions, id)
		}
	}
}

func generateToken() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(buf)
}
