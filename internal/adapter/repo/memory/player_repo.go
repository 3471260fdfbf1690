package memory

import (
	"context"
	"sort"

	"farmstead/internal/app/ports"
	"farmstead/internal/domain/farm"
)

type PlayerRepo struct {
	store *Store
}

func NewPlayerRepo(store *Store) PlayerRepo {
	return PlayerRepo{store: store}
}

func (r PlayerRepo) GetByID(_ context.Context, playerID string) (farm.Player, error) {
	player, ok := r.store.players[playerID]
	if !ok {
		return farm.Player{}, ports.ErrNotFound
	}
	return player, nil
}

func (r PlayerRepo) SaveWithVersion(_ context.Context, player farm.Player, expectedVersion int64) error {
	current, ok := r.store.players[player.ID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.players[player.ID] = player
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.players[player.ID] = player
	return nil
}

func (r PlayerRepo) List(_ context.Context) ([]farm.Player, error) {
	out := make([]farm.Player, 0, len(r.store.players))
	for _, p := range r.store.players {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
