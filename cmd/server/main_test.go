package main

import (
	"testing"

	"farmstead/internal/domain/farm"
)

func TestIntEnv(t *testing.T) {
	t.Setenv("FARMSTEAD_TICK_SECONDS", "")
	if got := intEnv("FARMSTEAD_TICK_SECONDS", 1); got != 1 {
		t.Fatalf("intEnv fallback = %d, want 1", got)
	}

	t.Setenv("FARMSTEAD_TICK_SECONDS", "5")
	if got := intEnv("FARMSTEAD_TICK_SECONDS", 1); got != 5 {
		t.Fatalf("intEnv = %d, want 5", got)
	}

	t.Setenv("FARMSTEAD_TICK_SECONDS", "not-a-number")
	if got := intEnv("FARMSTEAD_TICK_SECONDS", 1); got != 1 {
		t.Fatalf("intEnv invalid = %d, want fallback 1", got)
	}
}

func TestBuildCatalogFromEnv_Default(t *testing.T) {
	t.Setenv("FARMSTEAD_CATALOG", "")
	cat := buildCatalogFromEnv()
	if _, ok := cat.LookupCrop("tomato"); !ok {
		t.Fatal("default catalog should include tomato")
	}
	if got, want := len(cat.Levels()), len(farm.DefaultCatalog().Levels()); got != want {
		t.Fatalf("level count = %d, want %d", got, want)
	}
}
