package player

import "farmstead/internal/domain/farm"

type CreateRequest struct {
	Name string `json:"name"`
}

type CreateResponse struct {
	Player farm.Player `json:"player"`
}

type GetRequest struct {
	PlayerID string
}

// PlotView and PenView add the countdowns the UI renders next to each
// slot; readiness is evaluated against the request's now.
type PlotView struct {
	ID               string `json:"id"`
	CropID           string `json:"crop_id,omitempty"`
	Ready            bool   `json:"ready"`
	RemainingSeconds int    `json:"remaining_seconds"`
}

type PenView struct {
	AnimalID         string `json:"animal_id"`
	ID               string `json:"id"`
	Product          string `json:"product,omitempty"`
	Ready            bool   `json:"ready"`
	RemainingSeconds int    `json:"remaining_seconds"`
}

type LevelInfo struct {
	Level           int    `json:"level"`
	Name            string `json:"name"`
	NextLevel       int    `json:"next_level,omitempty"`
	NextRequiredExp int    `json:"next_required_exp,omitempty"`
}

type GetResponse struct {
	Player farm.Player `json:"player"`
	Plots  []PlotView  `json:"plots"`
	Pens   []PenView   `json:"pens"`
	Level  LevelInfo   `json:"level"`
}
