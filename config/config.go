package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/ratel-online/gofish/gofish/game"
)

type Config struct {
	TCPAddr     string        `env:"GOFISH_TCP_ADDR"     envDefault:":9999"`
	WSAddr      string        `env:"GOFISH_WS_ADDR"      envDefault:":9998"`
	DealNumber  int           `env:"GOFISH_DEAL_NUMBER"  envDefault:"5"`
	MinPlayers  int           `env:"GOFISH_MIN_PLAYERS"  envDefault:"2"`
	MaxPlayers  int           `env:"GOFISH_MAX_PLAYERS"  envDefault:"6"`
	PlayTimeout time.Duration `env:"GOFISH_PLAY_TIMEOUT" envDefault:"40s"`
	AuthTimeout time.Duration `env:"GOFISH_AUTH_TIMEOUT" envDefault:"3s"`
}

var cfg = Default()

// Default is the configuration used when nothing is set in the environment.
func Default() Config {
	return Config{
		TCPAddr:     ":9999",
		WSAddr:      ":9998",
		DealNumber:  game.DefaultDealNumber,
		MinPlayers:  2,
		MaxPlayers:  6,
		PlayTimeout: 40 * time.Second,
		AuthTimeout: 3 * time.Second,
	}
}

// Load reads the environment and makes the result the active configuration.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	cfg = c
	return c, nil
}

func (c Config) validate() error {
	if c.DealNumber < 1 {
		return fmt.Errorf("deal number must be positive, got %d", c.DealNumber)
	}
	if c.MinPlayers < 2 {
		return fmt.Errorf("a game needs at least 2 players, got min %d", c.MinPlayers)
	}
	if c.MaxPlayers < c.MinPlayers {
		return fmt.Errorf("max players %d below min players %d", c.MaxPlayers, c.MinPlayers)
	}
	if c.DealNumber*c.MaxPlayers > 52 {
		return fmt.Errorf("cannot deal %d cards to %d players", c.DealNumber, c.MaxPlayers)
	}
	return nil
}

// Get returns the active configuration.
func Get() Config {
	return cfg
}
