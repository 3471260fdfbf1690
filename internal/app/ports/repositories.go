package ports

import (
	"context"
	"time"

	"farmstead/internal/domain/farm"
)

type ActionResult struct {
	UpdatedState farm.Player
	Events       []farm.DomainEvent
	GoldGained   int
	ExpGained    int
	LevelUp      farm.LevelUp
}

type ActionExecutionRecord struct {
	PlayerID       string
	IdempotencyKey string
	IntentType     string
	Result         ActionResult
	AppliedAt      time.Time
}

type PlayerRepository interface {
	GetByID(ctx context.Context, playerID string) (farm.Player, error)
	// SaveWithVersion persists the aggregate; expectedVersion 0 means
	// create. A stale version yields ErrConflict.
	SaveWithVersion(ctx context.Context, player farm.Player, expectedVersion int64) error
	List(ctx context.Context) ([]farm.Player, error)
}

type ActionExecutionRepository interface {
	GetByIdempotencyKey(ctx context.Context, playerID, key string) (*ActionExecutionRecord, error)
	SaveExecution(ctx context.Context, execution ActionExecutionRecord) error
}

type EventRepository interface {
	Append(ctx context.Context, playerID string, events []farm.DomainEvent) error
	ListByPlayerID(ctx context.Context, playerID string, limit int) ([]farm.DomainEvent, error)
}
