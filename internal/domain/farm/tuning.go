package farm

const (
	StartingGold      = 1000
	StartingPlotCount = 6

	SeedGrantPerUnlock = 5
	SeedSellPrice      = 10
)

// StarterPens lists the animal ids the creation factory arms, in pen order.
var StarterPens = []string{"chicken", "duck", "chicken"}

// StarterSeeds lists the crop ids granted SeedGrantPerUnlock seeds each at
// creation.
var StarterSeeds = []string{"tomato", "corn"}
