package farm

import (
	"fmt"
	"time"
)

// AddExperience records an experience award and evaluates the level table.
// The scan walks the table highest-first and applies the first level whose
// requirement is met and whose number differs from the current level, so a
// single call advances at most one level even when the award would satisfy
// several thresholds. A later call re-evaluates.
//
// On a level transition the player gains the plot-capacity delta over the
// predecessor level, one armed pen per newly unlocked animal, and
// SeedGrantPerUnlock seeds per newly unlocked crop.
func AddExperience(cat Catalog, p *Player, now time.Time, amount int) (LevelUp, error) {
	if amount < 0 {
		return LevelUp{}, ErrNegativeAmount
	}
	p.Experience += amount

	levels := cat.levels
	for i := len(levels) - 1; i >= 0; i-- {
		next := levels[i]
		if p.Experience < next.RequiredExp || p.Level == next.Level {
			continue
		}
		prev := levels[0]
		if i > 0 {
			prev = levels[i-1]
		}
		p.Level = next.Level

		for j := next.MaxSlots - prev.MaxSlots; j > 0; j-- {
			p.Plots = append(p.Plots, FarmPlot{ID: fmt.Sprintf("plot_%d", len(p.Plots))})
		}
		for _, animalID := range next.Animals {
			if prev.UnlocksAnimal(animalID) {
				continue
			}
			pen, err := armPen(cat, fmt.Sprintf("pen_%d", len(p.Pens)), animalID, now)
			if err != nil {
				return LevelUp{}, err
			}
			p.Pens = append(p.Pens, pen)
		}
		for _, cropID := range next.Crops {
			if prev.UnlocksCrop(cropID) {
				continue
			}
			grantSeeds(cat, p, cropID, SeedGrantPerUnlock)
		}

		p.UpdatedAt = now
		return LevelUp{Leveled: true, NewLevel: next.Level}, nil
	}

	p.UpdatedAt = now
	return LevelUp{}, nil
}

// armPen builds a pen already running its first production cycle.
func armPen(cat Catalog, penID, animalID string, now time.Time) (AnimalPen, error) {
	animal, ok := cat.LookupAnimal(animalID)
	if !ok {
		return AnimalPen{}, ErrUnknownAnimal
	}
	return AnimalPen{
		ID:             penID,
		AnimalID:       animalID,
		LastProducedAt: now,
		ReadyAt:        now.Add(animal.ProductionDuration()),
		Ready:          false,
	}, nil
}

// grantSeeds adds qty seed units for cropID, creating the inventory entry
// on first grant.
func grantSeeds(cat Catalog, p *Player, cropID string, qty int) {
	seedID := cropID + "_seed"
	for i := range p.Inventory {
		if p.Inventory[i].ID == seedID {
			p.Inventory[i].Quantity += qty
			return
		}
	}
	name := cropID
	if crop, ok := cat.LookupCrop(cropID); ok {
		name = crop.Name
	}
	p.Inventory = append(p.Inventory, InventoryItem{
		ID:        seedID,
		Name:      name + " Seeds",
		Quantity:  qty,
		Kind:      ItemSeed,
		SellPrice: SeedSellPrice,
	})
}
