package farm

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidName = errors.New("player name must not be blank")

// NewPlayer builds the starting aggregate: level 1, StartingGold,
// StartingPlotCount empty plots, one armed pen per StarterPens entry and
// SeedGrantPerUnlock seeds per StarterSeeds crop. The caller supplies the
// identity and the creation time.
func NewPlayer(cat Catalog, id, name string, now time.Time) (Player, error) {
	if strings.TrimSpace(name) == "" {
		return Player{}, ErrInvalidName
	}

	p := Player{
		ID:        id,
		Name:      name,
		Level:     1,
		Gold:      StartingGold,
		Plots:     make([]FarmPlot, 0, StartingPlotCount),
		Pens:      make([]AnimalPen, 0, len(StarterPens)),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for i := 0; i < StartingPlotCount; i++ {
		p.Plots = append(p.Plots, FarmPlot{ID: fmt.Sprintf("plot_%d", i)})
	}
	for i, animalID := range StarterPens {
		pen, err := armPen(cat, fmt.Sprintf("pen_%d", i), animalID, now)
		if err != nil {
			return Player{}, err
		}
		p.Pens = append(p.Pens, pen)
	}
	for _, cropID := range StarterSeeds {
		grantSeeds(cat, &p, cropID, SeedGrantPerUnlock)
	}
	return p, nil
}
