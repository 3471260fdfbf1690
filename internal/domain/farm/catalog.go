package farm

import (
	"errors"
	"fmt"
	"sort"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is the static, read-only registry of crop, animal and level
// definitions. Lookups never fail with an error: absence is the second
// return value and callers must branch on it.
type Catalog struct {
	crops   map[string]Crop
	animals map[string]Animal
	levels  []FarmLevel
}

// NewCatalog validates the definitions and returns an immutable catalog.
// Levels are kept sorted by level number.
func NewCatalog(crops []Crop, animals []Animal, levels []FarmLevel) (Catalog, error) {
	c := Catalog{
		crops:   make(map[string]Crop, len(crops)),
		animals: make(map[string]Animal, len(animals)),
		levels:  make([]FarmLevel, len(levels)),
	}
	for _, crop := range crops {
		if crop.ID == "" {
			return Catalog{}, fmt.Errorf("%w: crop with empty id", ErrInvalidCatalog)
		}
		if crop.GrowthSeconds <= 0 {
			return Catalog{}, fmt.Errorf("%w: crop %q growth_seconds must be > 0", ErrInvalidCatalog, crop.ID)
		}
		if crop.SellPrice < 0 {
			return Catalog{}, fmt.Errorf("%w: crop %q negative sell_price", ErrInvalidCatalog, crop.ID)
		}
		if _, dup := c.crops[crop.ID]; dup {
			return Catalog{}, fmt.Errorf("%w: duplicate crop id %q", ErrInvalidCatalog, crop.ID)
		}
		c.crops[crop.ID] = crop
	}
	for _, animal := range animals {
		if animal.ID == "" {
			return Catalog{}, fmt.Errorf("%w: animal with empty id", ErrInvalidCatalog)
		}
		if animal.ProductionSeconds <= 0 {
			return Catalog{}, fmt.Errorf("%w: animal %q production_seconds must be > 0", ErrInvalidCatalog, animal.ID)
		}
		if animal.SellPrice < 0 {
			return Catalog{}, fmt.Errorf("%w: animal %q negative sell_price", ErrInvalidCatalog, animal.ID)
		}
		if _, dup := c.animals[animal.ID]; dup {
			return Catalog{}, fmt.Errorf("%w: duplicate animal id %q", ErrInvalidCatalog, animal.ID)
		}
		c.animals[animal.ID] = animal
	}

	copy(c.levels, levels)
	sort.Slice(c.levels, func(i, j int) bool { return c.levels[i].Level < c.levels[j].Level })
	if err := c.validateLevels(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

func (c Catalog) validateLevels() error {
	if len(c.levels) == 0 {
		return fmt.Errorf("%w: no levels defined", ErrInvalidCatalog)
	}
	for i, lvl := range c.levels {
		if lvl.MaxSlots <= 0 {
			return fmt.Errorf("%w: level %d max_slots must be > 0", ErrInvalidCatalog, lvl.Level)
		}
		for _, id := range lvl.Crops {
			if _, ok := c.crops[id]; !ok {
				return fmt.Errorf("%w: level %d references unknown crop %q", ErrInvalidCatalog, lvl.Level, id)
			}
		}
		for _, id := range lvl.Animals {
			if _, ok := c.animals[id]; !ok {
				return fmt.Errorf("%w: level %d references unknown animal %q", ErrInvalidCatalog, lvl.Level, id)
			}
		}
		if i == 0 {
			continue
		}
		prev := c.levels[i-1]
		if lvl.Level <= prev.Level {
			return fmt.Errorf("%w: level numbers not strictly increasing at %d", ErrInvalidCatalog, lvl.Level)
		}
		if lvl.RequiredExp <= prev.RequiredExp {
			return fmt.Errorf("%w: required_exp not strictly increasing at level %d", ErrInvalidCatalog, lvl.Level)
		}
		if lvl.MaxSlots < prev.MaxSlots {
			return fmt.Errorf("%w: max_slots shrinks at level %d", ErrInvalidCatalog, lvl.Level)
		}
		for _, id := range prev.Crops {
			if !lvl.UnlocksCrop(id) {
				return fmt.Errorf("%w: level %d drops crop %q unlocked at level %d", ErrInvalidCatalog, lvl.Level, id, prev.Level)
			}
		}
		for _, id := range prev.Animals {
			if !lvl.UnlocksAnimal(id) {
				return fmt.Errorf("%w: level %d drops animal %q unlocked at level %d", ErrInvalidCatalog, lvl.Level, id, prev.Level)
			}
		}
	}
	return nil
}

func (c Catalog) LookupCrop(id string) (Crop, bool) {
	crop, ok := c.crops[id]
	return crop, ok
}

func (c Catalog) LookupAnimal(id string) (Animal, bool) {
	animal, ok := c.animals[id]
	return animal, ok
}

func (c Catalog) LookupLevel(level int) (FarmLevel, bool) {
	for _, lvl := range c.levels {
		if lvl.Level == level {
			return lvl, true
		}
	}
	return FarmLevel{}, false
}

// LevelAfter returns the definition of level+1, if there is one.
func (c Catalog) LevelAfter(level int) (FarmLevel, bool) {
	return c.LookupLevel(level + 1)
}

// Levels returns the level table in ascending level order.
func (c Catalog) Levels() []FarmLevel {
	out := make([]FarmLevel, len(c.levels))
	copy(out, c.levels)
	return out
}

// Crops returns all crop definitions in id order.
func (c Catalog) Crops() []Crop {
	out := make([]Crop, 0, len(c.crops))
	for _, crop := range c.crops {
		out = append(out, crop)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Animals returns all animal definitions in id order.
func (c Catalog) Animals() []Animal {
	out := make([]Animal, 0, len(c.animals))
	for _, animal := range c.animals {
		out = append(out, animal)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
