package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Redis  RedisConfig  `yaml:"redis"`
	Game   GameConfig   `yaml:"game"`
}

// ServerConfig configures the WebSocket listener.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// RedisConfig configures the room store connection.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// GameConfig holds the game tunables.
type GameConfig struct {
	ImposterProbability float64 `yaml:"imposter_probability"` // chance a round has an imposter
	MinPlayers          int     `yaml:"min_players"`          // required to start
	RoomExpiration      int     `yaml:"room_expiration"`      // idle room TTL (minutes)
}

// RoomExpirationDuration returns the idle room TTL.
func (c *GameConfig) RoomExpirationDuration() time.Duration {
	return time.Duration(c.RoomExpiration) * time.Minute
}

// Load reads a YAML config file and applies defaults for missing fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 1780
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Game.ImposterProbability == 0 {
		c.Game.ImposterProbability = 0.7
	}
	if c.Game.MinPlayers == 0 {
		c.Game.MinPlayers = 3
	}
	if c.Game.RoomExpiration == 0 {
		c.Game.RoomExpiration = 120
	}
}
