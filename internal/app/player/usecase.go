package player

import (
	"context"
	"errors"
	"strings"
	"time"

	"farmstead/internal/app/ports"
	"farmstead/internal/domain/farm"

	"github.com/google/uuid"
)

var ErrInvalidRequest = errors.New("invalid player request")

type CreateUseCase struct {
	TxManager  ports.TxManager
	PlayerRepo ports.PlayerRepository
	EventRepo  ports.EventRepository
	Catalog    farm.Catalog
	Now        func() time.Time
	NewID      func() string
}

// Execute creates a freshly initialized player. A blank display name is a
// client error (farm.ErrInvalidName) distinct from infrastructure
// failures.
func (u CreateUseCase) Execute(ctx context.Context, req CreateRequest) (CreateResponse, error) {
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	newID := u.NewID
	if newID == nil {
		newID = func() string { return "player_" + uuid.NewString() }
	}
	now := nowFn()

	p, err := farm.NewPlayer(u.Catalog, newID(), strings.TrimSpace(req.Name), now)
	if err != nil {
		return CreateResponse{}, err
	}

	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := u.PlayerRepo.SaveWithVersion(txCtx, p, 0); err != nil {
			return err
		}
		if u.EventRepo == nil {
			return nil
		}
		return u.EventRepo.Append(txCtx, p.ID, []farm.DomainEvent{{
			Type:       "player_created",
			OccurredAt: now,
			Payload:    map[string]any{"player_id": p.ID, "name": p.Name},
		}})
	})
	if err != nil {
		return CreateResponse{}, err
	}
	return CreateResponse{Player: p}, nil
}

type GetUseCase struct {
	PlayerRepo ports.PlayerRepository
	Catalog    farm.Catalog
	Now        func() time.Time
}

// Execute returns the aggregate plus the per-slot countdown view the UI
// polls. Readiness is derived from the current clock; the stored flags are
// not mutated here.
func (u GetUseCase) Execute(ctx context.Context, req GetRequest) (GetResponse, error) {
	if strings.TrimSpace(req.PlayerID) == "" {
		return GetResponse{}, ErrInvalidRequest
	}
	p, err := u.PlayerRepo.GetByID(ctx, req.PlayerID)
	if err != nil {
		return GetResponse{}, err
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()

	plots := make([]PlotView, 0, len(p.Plots))
	for _, plot := range p.Plots {
		view := PlotView{ID: plot.ID, CropID: plot.CropID, Ready: plot.Ready}
		if plot.ReadyAt != nil {
			view.Ready = view.Ready || !now.Before(*plot.ReadyAt)
			view.RemainingSeconds = remainingSeconds(now, *plot.ReadyAt)
		}
		plots = append(plots, view)
	}
	pens := make([]PenView, 0, len(p.Pens))
	for _, pen := range p.Pens {
		view := PenView{
			ID:               pen.ID,
			AnimalID:         pen.AnimalID,
			Ready:            pen.Ready || !now.Before(pen.ReadyAt),
			RemainingSeconds: remainingSeconds(now, pen.ReadyAt),
		}
		if animal, ok := u.Catalog.LookupAnimal(pen.AnimalID); ok {
			view.Product = animal.ProductName
		}
		pens = append(pens, view)
	}

	info := LevelInfo{Level: p.Level}
	if lvl, ok := u.Catalog.LookupLevel(p.Level); ok {
		info.Name = lvl.Name
	}
	if next, ok := u.Catalog.LevelAfter(p.Level); ok {
		info.NextLevel = next.Level
		info.NextRequiredExp = next.RequiredExp
	}

	return GetResponse{Player: p, Plots: plots, Pens: pens, Level: info}, nil
}

func remainingSeconds(now, readyAt time.Time) int {
	if !now.Before(readyAt) {
		return 0
	}
	return int(readyAt.Sub(now).Round(time.Second) / time.Second)
}
