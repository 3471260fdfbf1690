package replay

import (
	"context"
	"errors"
	"strings"

	"farmstead/internal/app/ports"
	"farmstead/internal/domain/farm"
)

var ErrInvalidRequest = errors.New("invalid replay request")

const defaultLimit = 50

type Request struct {
	PlayerID string
	Limit    int
}

type Response struct {
	Events []farm.DomainEvent `json:"events"`
}

// UseCase reads back the farm event log, newest first. The UI uses it for
// its notification feed.
type UseCase struct {
	Events ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.PlayerID) == "" {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	events, err := u.Events.ListByPlayerID(ctx, req.PlayerID, limit)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return Response{Events: []farm.DomainEvent{}}, nil
		}
		return Response{}, err
	}
	return Response{Events: events}, nil
}
