package leaderboard

import (
	"context"
	"sort"

	"farmstead/internal/app/ports"
)

// Entry carries the presentation fields for one ranked player.
type Entry struct {
	Rank       int    `json:"rank"`
	PlayerID   string `json:"player_id"`
	Name       string `json:"name"`
	Level      int    `json:"level"`
	Experience int    `json:"experience"`
	Gold       int    `json:"gold"`
}

type Response struct {
	Entries []Entry `json:"entries"`
}

type UseCase struct {
	PlayerRepo ports.PlayerRepository
}

// Execute orders the persisted population by experience, then gold,
// descending. Ties beyond that keep a stable id order so ranks do not
// jitter between polls.
func (u UseCase) Execute(ctx context.Context) (Response, error) {
	players, err := u.PlayerRepo.List(ctx)
	if err != nil {
		return Response{}, err
	}
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].Experience != players[j].Experience {
			return players[i].Experience > players[j].Experience
		}
		if players[i].Gold != players[j].Gold {
			return players[i].Gold > players[j].Gold
		}
		return players[i].ID < players[j].ID
	})

	entries := make([]Entry, 0, len(players))
	for i, p := range players {
		entries = append(entries, Entry{
			Rank:       i + 1,
			PlayerID:   p.ID,
			Name:       p.Name,
			Level:      p.Level,
			Experience: p.Experience,
			Gold:       p.Gold,
		})
	}
	return Response{Entries: entries}, nil
}
