package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"farmstead/internal/adapter/repo/gorm/model"
	"farmstead/internal/app/ports"
	"farmstead/internal/domain/farm"

	"gorm.io/gorm"
)

type ActionExecutionRepo struct {
	db *gorm.DB
}

func NewActionExecutionRepo(db *gorm.DB) ActionExecutionRepo {
	return ActionExecutionRepo{db: db}
}

func (r ActionExecutionRepo) GetByIdempotencyKey(ctx context.Context, playerID, key string) (*ports.ActionExecutionRecord, error) {
	var m model.ActionExecution
	err := getDBFromCtx(ctx, r.db).
		Where(&model.ActionExecution{PlayerID: playerID, IdempotencyKey: key}).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return &ports.ActionExecutionRecord{
		PlayerID:       m.PlayerID,
		IdempotencyKey: m.IdempotencyKey,
		IntentType:     m.IntentType,
		Result:         decodeResult(m),
		AppliedAt:      m.AppliedAt,
	}, nil
}

func (r ActionExecutionRepo) SaveExecution(ctx context.Context, execution ports.ActionExecutionRecord) error {
	stateJSON, _ := json.Marshal(execution.Result.UpdatedState)
	eventsJSON, _ := json.Marshal(execution.Result.Events)
	m := model.ActionExecution{
		PlayerID:       execution.PlayerID,
		IdempotencyKey: execution.IdempotencyKey,
		IntentType:     execution.IntentType,
		GoldGained:     int32(execution.Result.GoldGained),
		ExpGained:      int32(execution.Result.ExpGained),
		UpdatedState:   stateJSON,
		Events:         eventsJSON,
		AppliedAt:      execution.AppliedAt,
	}
	if execution.Result.LevelUp.Leveled {
		m.LeveledTo = int32(execution.Result.LevelUp.NewLevel)
	}
	return getDBFromCtx(ctx, r.db).Create(&m).Error
}

func decodeResult(m model.ActionExecution) ports.ActionResult {
	var state farm.Player
	var events []farm.DomainEvent
	_ = json.Unmarshal(m.UpdatedState, &state)
	_ = json.Unmarshal(m.Events, &events)
	result := ports.ActionResult{
		UpdatedState: state,
		Events:       events,
		GoldGained:   int(m.GoldGained),
		ExpGained:    int(m.ExpGained),
	}
	if m.LeveledTo > 0 {
		result.LevelUp = farm.LevelUp{Leveled: true, NewLevel: int(m.LeveledTo)}
	}
	return result
}
