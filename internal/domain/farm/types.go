package farm

import "time"

// Crop is a static catalog entry. Growth time is expressed in seconds.
type Crop struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	Icon          string `json:"icon" yaml:"icon"`
	GrowthSeconds int    `json:"growth_seconds" yaml:"growth_seconds"`
	ExpReward     int    `json:"exp_reward" yaml:"exp_reward"`
	SellPrice     int    `json:"sell_price" yaml:"sell_price"`
	RequiredLevel int    `json:"required_level" yaml:"required_level"`
}

func (c Crop) GrowthDuration() time.Duration {
	return time.Duration(c.GrowthSeconds) * time.Second
}

// Animal is a static catalog entry. Production time is expressed in seconds.
type Animal struct {
	ID                string `json:"id" yaml:"id"`
	Name              string `json:"name" yaml:"name"`
	Icon              string `json:"icon" yaml:"icon"`
	ProductionSeconds int    `json:"production_seconds" yaml:"production_seconds"`
	ExpReward         int    `json:"exp_reward" yaml:"exp_reward"`
	ProductName       string `json:"product_name" yaml:"product_name"`
	SellPrice         int    `json:"sell_price" yaml:"sell_price"`
	RequiredLevel     int    `json:"required_level" yaml:"required_level"`
}

func (a Animal) ProductionDuration() time.Duration {
	return time.Duration(a.ProductionSeconds) * time.Second
}

// FarmLevel describes one tier of the progression table. Unlock sets are
// cumulative: each level lists every crop/animal usable at that level.
type FarmLevel struct {
	Level       int      `json:"level" yaml:"level"`
	Name        string   `json:"name" yaml:"name"`
	RequiredExp int      `json:"required_exp" yaml:"required_exp"`
	Crops       []string `json:"crops" yaml:"crops"`
	Animals     []string `json:"animals" yaml:"animals"`
	MaxSlots    int      `json:"max_slots" yaml:"max_slots"`
}

func (l FarmLevel) UnlocksCrop(cropID string) bool {
	for _, id := range l.Crops {
		if id == cropID {
			return true
		}
	}
	return false
}

func (l FarmLevel) UnlocksAnimal(animalID string) bool {
	for _, id := range l.Animals {
		if id == animalID {
			return true
		}
	}
	return false
}

type ItemKind string

const (
	ItemSeed    ItemKind = "seed"
	ItemCrop    ItemKind = "crop"
	ItemProduct ItemKind = "product"
)

type InventoryItem struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Quantity  int      `json:"quantity"`
	Kind      ItemKind `json:"kind"`
	SellPrice int      `json:"sell_price"`
}

// FarmPlot holds at most one growing crop. CropID is empty exactly when
// PlantedAt and ReadyAt are nil.
type FarmPlot struct {
	ID        string     `json:"id"`
	CropID    string     `json:"crop_id,omitempty"`
	PlantedAt *time.Time `json:"planted_at,omitempty"`
	ReadyAt   *time.Time `json:"ready_at,omitempty"`
	Ready     bool       `json:"ready"`
}

func (p FarmPlot) Empty() bool {
	return p.CropID == ""
}

// AnimalPen is permanently bound to one animal type and is never idle:
// ReadyAt is always set.
type AnimalPen struct {
	ID             string    `json:"id"`
	AnimalID       string    `json:"animal_id"`
	LastProducedAt time.Time `json:"last_produced_at"`
	ReadyAt        time.Time `json:"ready_at"`
	Ready          bool      `json:"ready"`
}

// Player is the root aggregate. It is mutated only through the operations
// in this package; callers own sequencing and persistence.
type Player struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Level      int             `json:"level"`
	Experience int             `json:"experience"`
	Gold       int             `json:"gold"`
	Inventory  []InventoryItem `json:"inventory"`
	Plots      []FarmPlot      `json:"plots"`
	Pens       []AnimalPen     `json:"pens"`
	Version    int64           `json:"version"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Plot returns a pointer into the player's plot collection, or nil.
func (p *Player) Plot(plotID string) *FarmPlot {
	for i := range p.Plots {
		if p.Plots[i].ID == plotID {
			return &p.Plots[i]
		}
	}
	return nil
}

// Pen returns a pointer into the player's pen collection, or nil.
func (p *Player) Pen(penID string) *AnimalPen {
	for i := range p.Pens {
		if p.Pens[i].ID == penID {
			return &p.Pens[i]
		}
	}
	return nil
}

type HarvestResult struct {
	CropID     string `json:"crop_id"`
	GoldGained int    `json:"gold_gained"`
	ExpGained  int    `json:"exp_gained"`
}

type CollectResult struct {
	AnimalID    string `json:"animal_id"`
	ProductName string `json:"product_name"`
	GoldGained  int    `json:"gold_gained"`
	ExpGained   int    `json:"exp_gained"`
}

type LevelUp struct {
	Leveled  bool `json:"leveled"`
	NewLevel int  `json:"new_level,omitempty"`
}

type DomainEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}
