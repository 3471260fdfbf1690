package action

import "farmstead/internal/domain/farm"

type IntentType string

const (
	IntentPlant   IntentType = "plant"
	IntentHarvest IntentType = "harvest"
	IntentCollect IntentType = "collect"
)

type Intent struct {
	Type   IntentType `json:"type"`
	PlotID string     `json:"plot_id,omitempty"`
	CropID string     `json:"crop_id,omitempty"`
	PenID  string     `json:"pen_id,omitempty"`
}

type Request struct {
	PlayerID       string
	IdempotencyKey string
	Intent         Intent
}

type Response struct {
	UpdatedState farm.Player        `json:"updated_state"`
	Events       []farm.DomainEvent `json:"events"`
	GoldGained   int                `json:"gold_gained"`
	ExpGained    int                `json:"exp_gained"`
	LevelUp      farm.LevelUp       `json:"level_up"`
}
