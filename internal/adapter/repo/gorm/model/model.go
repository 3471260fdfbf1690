package model

import "time"

// Rows mirror migrations/0001_init.sql. Aggregate collections are stored
// as jsonb documents; the relational columns carry only what queries and
// the version guard need.

type Player struct {
	ID         string    `gorm:"column:id;primaryKey"`
	Name       string    `gorm:"column:name"`
	Level      int32     `gorm:"column:level"`
	Experience int64     `gorm:"column:experience"`
	Gold       int64     `gorm:"column:gold"`
	Inventory  []byte    `gorm:"column:inventory;type:jsonb"`
	Plots      []byte    `gorm:"column:plots;type:jsonb"`
	Pens       []byte    `gorm:"column:pens;type:jsonb"`
	Version    int64     `gorm:"column:version"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (Player) TableName() string { return "players" }

type FarmEvent struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	PlayerID   string    `gorm:"column:player_id"`
	Type       string    `gorm:"column:type"`
	OccurredAt time.Time `gorm:"column:occurred_at"`
	Payload    []byte    `gorm:"column:payload;type:jsonb"`
}

func (FarmEvent) TableName() string { return "farm_events" }

type ActionExecution struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement"`
	PlayerID       string    `gorm:"column:player_id"`
	IdempotencyKey string    `gorm:"column:idempotency_key"`
	IntentType     string    `gorm:"column:intent_type"`
	GoldGained     int32     `gorm:"column:gold_gained"`
	ExpGained      int32     `gorm:"column:exp_gained"`
	LeveledTo      int32     `gorm:"column:leveled_to"`
	UpdatedState   []byte    `gorm:"column:updated_state;type:jsonb"`
	Events         []byte    `gorm:"column:events;type:jsonb"`
	AppliedAt      time.Time `gorm:"column:applied_at"`
}

func (ActionExecution) TableName() string { return "action_executions" }
