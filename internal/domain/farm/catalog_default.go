package farm

// DefaultCatalog is the built-in game balance, used when no catalog file is
// configured. The same data ships in config/catalog.yaml.
func DefaultCatalog() Catalog {
	cat, err := NewCatalog(defaultCrops, defaultAnimals, defaultLevels)
	if err != nil {
		// The built-in tables are validated by tests; reaching this means
		// the binary itself is broken.
		panic(err)
	}
	return cat
}

var defaultCrops = []Crop{
	{ID: "tomato", Name: "Tomato", Icon: "🍅", GrowthSeconds: 60, ExpReward: 10, SellPrice: 50, RequiredLevel: 1},
	{ID: "corn", Name: "Corn", Icon: "🌽", GrowthSeconds: 90, ExpReward: 15, SellPrice: 70, RequiredLevel: 1},
	{ID: "carrot", Name: "Carrot", Icon: "🥕", GrowthSeconds: 120, ExpReward: 20, SellPrice: 100, RequiredLevel: 2},
	{ID: "potato", Name: "Potato", Icon: "🥔", GrowthSeconds: 180, ExpReward: 30, SellPrice: 150, RequiredLevel: 3},
	{ID: "strawberry", Name: "Strawberry", Icon: "🍓", GrowthSeconds: 240, ExpReward: 45, SellPrice: 220, RequiredLevel: 4},
	{ID: "pumpkin", Name: "Pumpkin", Icon: "🎃", GrowthSeconds: 300, ExpReward: 60, SellPrice: 300, RequiredLevel: 5},
}

var defaultAnimals = []Animal{
	{ID: "chicken", Name: "Chicken", Icon: "🐔", ProductionSeconds: 120, ExpReward: 8, ProductName: "Egg", SellPrice: 40, RequiredLevel: 1},
	{ID: "duck", Name: "Duck", Icon: "🦆", ProductionSeconds: 150, ExpReward: 10, ProductName: "Duck Egg", SellPrice: 55, RequiredLevel: 1},
	{ID: "cow", Name: "Cow", Icon: "🐄", ProductionSeconds: 240, ExpReward: 25, ProductName: "Milk", SellPrice: 120, RequiredLevel: 2},
	{ID: "pig", Name: "Pig", Icon: "🐖", ProductionSeconds: 300, ExpReward: 30, ProductName: "Truffle", SellPrice: 160, RequiredLevel: 3},
	{ID: "sheep", Name: "Sheep", Icon: "🐑", ProductionSeconds: 360, ExpReward: 40, ProductName: "Wool", SellPrice: 200, RequiredLevel: 4},
	{ID: "goat", Name: "Goat", Icon: "🐐", ProductionSeconds: 420, ExpReward: 50, ProductName: "Goat Milk", SellPrice: 260, RequiredLevel: 5},
}

var defaultLevels = []FarmLevel{
	{
		Level: 1, Name: "Homestead", RequiredExp: 0, MaxSlots: 6,
		Crops:   []string{"tomato", "corn"},
		Animals: []string{"chicken", "duck"},
	},
	{
		Level: 2, Name: "Smallholding", RequiredExp: 100, MaxSlots: 8,
		Crops:   []string{"tomato", "corn", "carrot"},
		Animals: []string{"chicken", "duck", "cow"},
	},
	{
		Level: 3, Name: "Family Farm", RequiredExp: 300, MaxSlots: 10,
		Crops:   []string{"tomato", "corn", "carrot", "potato"},
		Animals: []string{"chicken", "duck", "cow", "pig"},
	},
	{
		Level: 4, Name: "Country Estate", RequiredExp: 600, MaxSlots: 12,
		Crops:   []string{"tomato", "corn", "carrot", "potato", "strawberry"},
		Animals: []string{"chicken", "duck", "cow", "pig", "sheep"},
	},
	{
		Level: 5, Name: "Grand Ranch", RequiredExp: 1000, MaxSlots: 15,
		Crops:   []string{"tomato", "corn", "carrot", "potato", "strawberry", "pumpkin"},
		Animals: []string{"chicken", "duck", "cow", "pig", "sheep", "goat"},
	},
}
