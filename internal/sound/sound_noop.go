//go:build ci

package sound

// Well-known sound names the UI triggers.
const (
	SoundYourTurn = "your_turn"
	SoundReveal   = "reveal"
)

type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) Init() error {
	return nil
}

func (m *Manager) Play(name string) {
	// No-op
}

func (m *Manager) Close() {
	// No-op
}
