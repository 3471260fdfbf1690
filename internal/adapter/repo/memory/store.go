package memory

import (
	"sync"

	"farmstead/internal/app/ports"
	"farmstead/internal/domain/farm"
)

// Store backs the in-memory repositories. The TxManager takes the write
// lock around a whole usecase, so the repos themselves do not lock.
type Store struct {
	mu        sync.RWMutex
	players   map[string]farm.Player
	execution map[string]ports.ActionExecutionRecord
	events    map[string][]farm.DomainEvent
}

func NewStore() *Store {
	return &Store{
		players:   make(map[string]farm.Player),
		execution: make(map[string]ports.ActionExecutionRecord),
		events:    make(map[string][]farm.DomainEvent),
	}
}

func execKey(playerID, key string) string {
	return playerID + "::" + key
}

func (s *Store) SeedPlayer(player farm.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player
}
