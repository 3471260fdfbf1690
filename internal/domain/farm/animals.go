package farm

import (
	"errors"
	"time"
)

var (
	ErrPenNotFound   = errors.New("pen not found")
	ErrUnknownAnimal = errors.New("unknown animal")
)

// Collect takes the pen's product, credits its sale price and immediately
// re-arms the pen for the next cycle. A pen never sits idle. Readiness is
// re-checked against now.
func Collect(cat Catalog, p *Player, now time.Time, penID string) (CollectResult, error) {
	pen := p.Pen(penID)
	if pen == nil {
		return CollectResult{}, ErrPenNotFound
	}
	if !pen.Ready && now.Before(pen.ReadyAt) {
		return CollectResult{}, ErrNotReady
	}
	animal, ok := cat.LookupAnimal(pen.AnimalID)
	if !ok {
		return CollectResult{}, ErrUnknownAnimal
	}

	if err := Credit(p, now, animal.SellPrice); err != nil {
		return CollectResult{}, err
	}
	pen.LastProducedAt = now
	pen.ReadyAt = now.Add(animal.ProductionDuration())
	pen.Ready = false
	return CollectResult{
		AnimalID:    pen.AnimalID,
		ProductName: animal.ProductName,
		GoldGained:  animal.SellPrice,
		ExpGained:   animal.ExpReward,
	}, nil
}
