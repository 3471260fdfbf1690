package memory

import (
	"context"

	"farmstead/internal/app/ports"
	"farmstead/internal/domain/farm"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, playerID string, events []farm.DomainEvent) error {
	r.store.events[playerID] = append(r.store.events[playerID], events...)
	return nil
}

func (r EventRepo) ListByPlayerID(_ context.Context, playerID string, limit int) ([]farm.DomainEvent, error) {
	history, ok := r.store.events[playerID]
	if !ok || len(history) == 0 {
		return nil, ports.ErrNotFound
	}
	// Newest first.
	out := make([]farm.DomainEvent, 0, limit)
	for i := len(history) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, history[i])
	}
	return out, nil
}
