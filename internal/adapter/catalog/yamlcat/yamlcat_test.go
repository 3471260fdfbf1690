package yamlcat

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"farmstead/internal/domain/farm"
)

const validCatalogYAML = `
crops:
  - id: tomato
    name: Tomato
    icon: "🍅"
    growth_seconds: 60
    exp_reward: 10
    sell_price: 50
    required_level: 1
animals:
  - id: chicken
    name: Chicken
    icon: "🐔"
    production_seconds: 120
    exp_reward: 8
    product_name: Egg
    sell_price: 40
    required_level: 1
levels:
  - level: 1
    name: Homestead
    required_exp: 0
    crops: [tomato]
    animals: [chicken]
    max_slots: 6
  - level: 2
    name: Smallholding
    required_exp: 100
    crops: [tomato]
    animals: [chicken]
    max_slots: 8
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp catalog: %v", err)
	}
	return path
}

func TestLoadValidCatalog(t *testing.T) {
	cat, err := Load(writeTemp(t, validCatalogYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	crop, ok := cat.LookupCrop("tomato")
	if !ok {
		t.Fatal("tomato missing from loaded catalog")
	}
	if crop.GrowthSeconds != 60 || crop.SellPrice != 50 {
		t.Fatalf("tomato = %+v", crop)
	}
	lvl, ok := cat.LookupLevel(2)
	if !ok {
		t.Fatal("level 2 missing")
	}
	if lvl.RequiredExp != 100 || lvl.MaxSlots != 8 {
		t.Fatalf("level 2 = %+v", lvl)
	}
}

func TestLoadRejectsInvalidCatalog(t *testing.T) {
	// Level 2 drops the crop unlocked at level 1.
	bad := `
crops:
  - id: tomato
    name: Tomato
    growth_seconds: 60
    exp_reward: 10
    sell_price: 50
    required_level: 1
levels:
  - level: 1
    name: Homestead
    required_exp: 0
    crops: [tomato]
    max_slots: 6
  - level: 2
    name: Smallholding
    required_exp: 100
    crops: []
    max_slots: 8
`
	if _, err := Load(writeTemp(t, bad)); !errors.Is(err, farm.ErrInvalidCatalog) {
		t.Fatalf("Load = %v, want ErrInvalidCatalog", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
