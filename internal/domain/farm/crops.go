package farm

import (
	"errors"
	"time"
)

var (
	ErrPlotNotFound    = errors.New("plot not found")
	ErrPlotOccupied    = errors.New("plot already occupied")
	ErrPlotEmpty       = errors.New("plot is empty")
	ErrUnknownCrop     = errors.New("unknown crop")
	ErrCropNotUnlocked = errors.New("crop not unlocked at current level")
	ErrNotReady        = errors.New("not ready")
)

// Plant starts a growth cycle on an empty plot. The crop must exist in the
// catalog and be unlocked at the player's current level. On failure the
// player is left unchanged.
func Plant(cat Catalog, p *Player, now time.Time, plotID, cropID string) error {
	plot := p.Plot(plotID)
	if plot == nil {
		return ErrPlotNotFound
	}
	if !plot.Empty() {
		return ErrPlotOccupied
	}
	crop, ok := cat.LookupCrop(cropID)
	if !ok {
		return ErrUnknownCrop
	}
	level, ok := cat.LookupLevel(p.Level)
	if !ok || !level.UnlocksCrop(cropID) {
		return ErrCropNotUnlocked
	}

	readyAt := now.Add(crop.GrowthDuration())
	plantedAt := now
	plot.CropID = cropID
	plot.PlantedAt = &plantedAt
	plot.ReadyAt = &readyAt
	plot.Ready = false
	p.UpdatedAt = now
	return nil
}

// Harvest credits the crop's sale price and resets the plot. Readiness is
// re-checked against now rather than trusting a stale flag. The experience
// reward is returned for the caller to feed into AddExperience.
func Harvest(cat Catalog, p *Player, now time.Time, plotID string) (HarvestResult, error) {
	plot := p.Plot(plotID)
	if plot == nil {
		return HarvestResult{}, ErrPlotNotFound
	}
	if plot.Empty() {
		return HarvestResult{}, ErrPlotEmpty
	}
	if !plot.Ready && (plot.ReadyAt == nil || now.Before(*plot.ReadyAt)) {
		return HarvestResult{}, ErrNotReady
	}
	crop, ok := cat.LookupCrop(plot.CropID)
	if !ok {
		return HarvestResult{}, ErrUnknownCrop
	}

	if err := Credit(p, now, crop.SellPrice); err != nil {
		return HarvestResult{}, err
	}
	harvested := plot.CropID
	plot.CropID = ""
	plot.PlantedAt = nil
	plot.ReadyAt = nil
	plot.Ready = false
	return HarvestResult{
		CropID:     harvested,
		GoldGained: crop.SellPrice,
		ExpGained:  crop.ExpReward,
	}, nil
}
