package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"farmstead/internal/adapter/repo/gorm/model"
	"farmstead/internal/app/ports"
	"farmstead/internal/domain/farm"

	"gorm.io/gorm"
)

type PlayerRepo struct {
	db *gorm.DB
}

func NewPlayerRepo(db *gorm.DB) PlayerRepo {
	return PlayerRepo{db: db}
}

func (r PlayerRepo) GetByID(ctx context.Context, playerID string) (farm.Player, error) {
	var m model.Player
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", playerID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return farm.Player{}, ports.ErrNotFound
		}
		return farm.Player{}, err
	}
	return playerFromRow(m)
}

func (r PlayerRepo) SaveWithVersion(ctx context.Context, player farm.Player, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)
	m, err := rowFromPlayer(player)
	if err != nil {
		return err
	}

	if expectedVersion == 0 {
		return db.Create(&m).Error
	}

	res := db.Model(&model.Player{}).
		Where("id = ? AND version = ?", player.ID, expectedVersion).
		Updates(map[string]any{
			"name":       m.Name,
			"level":      m.Level,
			"experience": m.Experience,
			"gold":       m.Gold,
			"inventory":  m.Inventory,
			"plots":      m.Plots,
			"pens":       m.Pens,
			"version":    m.Version,
			"updated_at": m.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func (r PlayerRepo) List(ctx context.Context) ([]farm.Player, error) {
	var rows []model.Player
	if err := getDBFromCtx(ctx, r.db).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]farm.Player, 0, len(rows))
	for _, m := range rows {
		p, err := playerFromRow(m)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func rowFromPlayer(p farm.Player) (model.Player, error) {
	inventory, err := json.Marshal(p.Inventory)
	if err != nil {
		return model.Player{}, fmt.Errorf("encode inventory: %w", err)
	}
	plots, err := json.Marshal(p.Plots)
	if err != nil {
		return model.Player{}, fmt.Errorf("encode plots: %w", err)
	}
	pens, err := json.Marshal(p.Pens)
	if err != nil {
		return model.Player{}, fmt.Errorf("encode pens: %w", err)
	}
	return model.Player{
		ID:         p.ID,
		Name:       p.Name,
		Level:      int32(p.Level),
		Experience: int64(p.Experience),
		Gold:       int64(p.Gold),
		Inventory:  inventory,
		Plots:      plots,
		Pens:       pens,
		Version:    p.Version,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}, nil
}

func playerFromRow(m model.Player) (farm.Player, error) {
	p := farm.Player{
		ID:         m.ID,
		Name:       m.Name,
		Level:      int(m.Level),
		Experience: int(m.Experience),
		Gold:       int(m.Gold),
		Version:    m.Version,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if len(m.Inventory) > 0 {
		if err := json.Unmarshal(m.Inventory, &p.Inventory); err != nil {
			return farm.Player{}, fmt.Errorf("decode inventory for %s: %w", m.ID, err)
		}
	}
	if len(m.Plots) > 0 {
		if err := json.Unmarshal(m.Plots, &p.Plots); err != nil {
			return farm.Player{}, fmt.Errorf("decode plots for %s: %w", m.ID, err)
		}
	}
	if len(m.Pens) > 0 {
		if err := json.Unmarshal(m.Pens, &p.Pens); err != nil {
			return farm.Player{}, fmt.Errorf("decode pens for %s: %w", m.ID, err)
		}
	}
	return p, nil
}
