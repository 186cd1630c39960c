package client

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SavedSession is the state persisted between client runs so a player
// can rejoin a room after restarting the terminal.
type SavedSession struct {
	Nickname    string `yaml:"nickname"`
	ResumeToken string `yaml:"resume_token"`
	RoomID      string `yaml:"room_id"`
}

func sessionPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(homeDir, ".odd-one-out")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "session.yaml"), nil
}

// LoadSession reads the saved session. A missing file returns an empty
// session, not an error.
func LoadSession() (*SavedSession, error) {
	path, err := sessionPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return &SavedSession{}, nil
		}
		return nil, err
	}

	var s SavedSession
	if err := yaml.Unmarshal(data, &s); err != nil {
		// A corrupt file should not lock the player out.
		return &SavedSession{}, nil
	}
	return &s, nil
}

// SaveSession writes the session to disk.
func SaveSession(s *SavedSession) error {
	path, err := sessionPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// ClearSession removes the saved room so the next start lands on the
// menu. The nickname is kept.
func ClearSession() error {
	s, err := LoadSession()
	if err != nil {
		return err
	}
	s.ResumeToken = ""
	s.RoomID = ""
	return SaveSession(s)
}
