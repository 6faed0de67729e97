package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// GameConfig holds deployment-level knobs for KaliTiri rooms.
type GameConfig struct {
	MinPlayersToStart int `json:"min_players_to_start"`
	MaxPlayers        int `json:"max_players"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, or nil if unloaded.
func GetGameConfig() *GameConfig {
	return cfg
}

// MinPlayersToStart returns the configured minimum seat count to start a
// round, falling back to the given default when unset.
func MinPlayersToStart(def int) int {
	if cfg != nil && cfg.MinPlayersToStart > 0 {
		return cfg.MinPlayersToStart
	}
	return def
}

// MaxPlayers returns the configured seat capacity, falling back to the
// given default when unset.
func MaxPlayers(def int) int {
	if cfg != nil && cfg.MaxPlayers > 0 {
		return cfg.MaxPlayers
	}
	return def
}
