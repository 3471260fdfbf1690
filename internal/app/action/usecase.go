package action

import (
	"context"
	"errors"
	"strings"
	"time"

	"farmstead/internal/app/ports"
	"farmstead/internal/domain/farm"
)

var (
	ErrInvalidRequest      = errors.New("invalid action request")
	ErrInvalidActionParams = errors.New("invalid action params")
)

type UseCase struct {
	TxManager  ports.TxManager
	PlayerRepo ports.PlayerRepository
	ActionRepo ports.ActionExecutionRepository
	EventRepo  ports.EventRepository
	Catalog    farm.Catalog
	Metrics    ports.ActionMetrics
	Now        func() time.Time
}

// Execute applies one player intent inside a transaction. Submissions
// carrying a previously seen idempotency key replay the stored result
// instead of mutating again, so HTTP retries cannot double-harvest.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.PlayerID = strings.TrimSpace(req.PlayerID)
	req.IdempotencyKey = strings.TrimSpace(req.IdempotencyKey)
	req.Intent.Type = IntentType(strings.TrimSpace(string(req.Intent.Type)))
	if req.PlayerID == "" || req.IdempotencyKey == "" || !isSupportedIntentType(req.Intent.Type) {
		return Response{}, ErrInvalidRequest
	}
	if !hasValidIntentParams(req.Intent) {
		return Response{}, ErrInvalidActionParams
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		exec, err := u.ActionRepo.GetByIdempotencyKey(txCtx, req.PlayerID, req.IdempotencyKey)
		if err == nil && exec != nil {
			out = responseFromResult(exec.Result)
			return nil
		}
		if err != nil && !errors.Is(err, ports.ErrNotFound) {
			return err
		}

		player, err := u.PlayerRepo.GetByID(txCtx, req.PlayerID)
		if err != nil {
			return err
		}
		expectedVersion := player.Version
		now := nowFn()

		// Promote anything whose timer elapsed since the last sweep so the
		// action sees fresh readiness.
		farm.AdvanceReadiness(&player, now)

		result, err := u.apply(&player, now, req.Intent)
		if err != nil {
			return err
		}

		player.Version = expectedVersion + 1
		result.UpdatedState = player
		if err := u.PlayerRepo.SaveWithVersion(txCtx, player, expectedVersion); err != nil {
			return err
		}

		for i := range result.Events {
			if result.Events[i].Payload == nil {
				result.Events[i].Payload = map[string]any{}
			}
			result.Events[i].Payload["player_id"] = req.PlayerID
		}

		execution := ports.ActionExecutionRecord{
			PlayerID:       req.PlayerID,
			IdempotencyKey: req.IdempotencyKey,
			IntentType:     string(req.Intent.Type),
			Result:         result,
			AppliedAt:      now,
		}
		if err := u.ActionRepo.SaveExecution(txCtx, execution); err != nil {
			return err
		}
		if err := u.EventRepo.Append(txCtx, req.PlayerID, result.Events); err != nil {
			return err
		}

		out = responseFromResult(result)
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			switch {
			case isDomainRejection(err):
				u.Metrics.RecordRejected(string(req.Intent.Type))
			case errors.Is(err, ports.ErrConflict):
				u.Metrics.RecordConflict()
			default:
				u.Metrics.RecordFailure()
			}
		}
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess(string(req.Intent.Type))
	}
	return out, nil
}

func (u UseCase) apply(player *farm.Player, now time.Time, intent Intent) (ports.ActionResult, error) {
	switch intent.Type {
	case IntentPlant:
		if err := farm.Plant(u.Catalog, player, now, intent.PlotID, intent.CropID); err != nil {
			return ports.ActionResult{}, err
		}
		return ports.ActionResult{
			Events: []farm.DomainEvent{{
				Type:       "crop_planted",
				OccurredAt: now,
				Payload:    map[string]any{"plot_id": intent.PlotID, "crop_id": intent.CropID},
			}},
		}, nil

	case IntentHarvest:
		res, err := farm.Harvest(u.Catalog, player, now, intent.PlotID)
		if err != nil {
			return ports.ActionResult{}, err
		}
		levelUp, err := farm.AddExperience(u.Catalog, player, now, res.ExpGained)
		if err != nil {
			return ports.ActionResult{}, err
		}
		events := []farm.DomainEvent{{
			Type:       "crop_harvested",
			OccurredAt: now,
			Payload: map[string]any{
				"plot_id": intent.PlotID,
				"crop_id": res.CropID,
				"gold":    res.GoldGained,
				"exp":     res.ExpGained,
			},
		}}
		events = appendLevelUpEvent(events, levelUp, now)
		return ports.ActionResult{
			Events:     events,
			GoldGained: res.GoldGained,
			ExpGained:  res.ExpGained,
			LevelUp:    levelUp,
		}, nil

	case IntentCollect:
		res, err := farm.Collect(u.Catalog, player, now, intent.PenID)
		if err != nil {
			return ports.ActionResult{}, err
		}
		levelUp, err := farm.AddExperience(u.Catalog, player, now, res.ExpGained)
		if err != nil {
			return ports.ActionResult{}, err
		}
		events := []farm.DomainEvent{{
			Type:       "product_collected",
			OccurredAt: now,
			Payload: map[string]any{
				"pen_id":    intent.PenID,
				"animal_id": res.AnimalID,
				"product":   res.ProductName,
				"gold":      res.GoldGained,
				"exp":       res.ExpGained,
			},
		}}
		events = appendLevelUpEvent(events, levelUp, now)
		return ports.ActionResult{
			Events:     events,
			GoldGained: res.GoldGained,
			ExpGained:  res.ExpGained,
			LevelUp:    levelUp,
		}, nil
	}
	return ports.ActionResult{}, ErrInvalidRequest
}

func appendLevelUpEvent(events []farm.DomainEvent, levelUp farm.LevelUp, now time.Time) []farm.DomainEvent {
	if !levelUp.Leveled {
		return events
	}
	return append(events, farm.DomainEvent{
		Type:       "level_up",
		OccurredAt: now,
		Payload:    map[string]any{"new_level": levelUp.NewLevel},
	})
}

func responseFromResult(result ports.ActionResult) Response {
	return Response{
		UpdatedState: result.UpdatedState,
		Events:       result.Events,
		GoldGained:   result.GoldGained,
		ExpGained:    result.ExpGained,
		LevelUp:      result.LevelUp,
	}
}

func isSupportedIntentType(t IntentType) bool {
	switch t {
	case IntentPlant, IntentHarvest, IntentCollect:
		return true
	default:
		return false
	}
}

func hasValidIntentParams(intent Intent) bool {
	switch intent.Type {
	case IntentPlant:
		return intent.PlotID != "" && intent.CropID != ""
	case IntentHarvest:
		return intent.PlotID != ""
	case IntentCollect:
		return intent.PenID != ""
	default:
		return false
	}
}

// isDomainRejection reports whether err is an expected precondition
// failure rather than an infrastructure fault.
func isDomainRejection(err error) bool {
	for _, target := range []error{
		farm.ErrPlotNotFound,
		farm.ErrPlotOccupied,
		farm.ErrPlotEmpty,
		farm.ErrUnknownCrop,
		farm.ErrCropNotUnlocked,
		farm.ErrPenNotFound,
		farm.ErrUnknownAnimal,
		farm.ErrNotReady,
		farm.ErrInsufficientGold,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
