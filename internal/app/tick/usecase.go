package tick

import (
	"context"
	"errors"
	"strings"
	"time"

	"farmstead/internal/app/ports"
	"farmstead/internal/domain/farm"
)

var ErrInvalidRequest = errors.New("invalid tick request")

// UseCase runs the readiness sweep. It is driven by an external scheduler
// (nominally once per second); the sweep itself is idempotent, so cadence
// only affects how quickly the stored flags catch up.
type UseCase struct {
	TxManager  ports.TxManager
	PlayerRepo ports.PlayerRepository
	Now        func() time.Time
}

type Report struct {
	PlayersSwept   int `json:"players_swept"`
	PlayersChanged int `json:"players_changed"`
}

// Sweep advances readiness for a single player, persisting only when
// something actually changed.
func (u UseCase) Sweep(ctx context.Context, playerID string) (bool, error) {
	if strings.TrimSpace(playerID) == "" {
		return false, ErrInvalidRequest
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	changed := false
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := u.PlayerRepo.GetByID(txCtx, playerID)
		if err != nil {
			return err
		}
		if !farm.AdvanceReadiness(&p, nowFn()) {
			return nil
		}
		expected := p.Version
		p.Version = expected + 1
		if err := u.PlayerRepo.SaveWithVersion(txCtx, p, expected); err != nil {
			return err
		}
		changed = true
		return nil
	})
	return changed, err
}

// SweepAll ticks every persisted player. A version conflict means an
// action committed between read and write; the player is skipped and the
// next tick catches up.
func (u UseCase) SweepAll(ctx context.Context) (Report, error) {
	players, err := u.PlayerRepo.List(ctx)
	if err != nil {
		return Report{}, err
	}
	report := Report{}
	for _, p := range players {
		changed, err := u.Sweep(ctx, p.ID)
		if err != nil {
			if errors.Is(err, ports.ErrConflict) || errors.Is(err, ports.ErrNotFound) {
				continue
			}
			return report, err
		}
		report.PlayersSwept++
		if changed {
			report.PlayersChanged++
		}
	}
	return report, nil
}
