package farm

import (
	"errors"
	"testing"
	"time"
)

func TestCreditAndDebit(t *testing.T) {
	now := time.Unix(1700000000, 0)
	p := Player{Gold: 100}

	if err := Credit(&p, now, 50); err != nil {
		t.Fatalf("credit error: %v", err)
	}
	if p.Gold != 150 {
		t.Fatalf("gold after credit: got %d want 150", p.Gold)
	}
	if err := Debit(&p, now, 150); err != nil {
		t.Fatalf("debit error: %v", err)
	}
	if p.Gold != 0 {
		t.Fatalf("gold after debit: got %d want 0", p.Gold)
	}
	if !p.UpdatedAt.Equal(now) {
		t.Fatalf("UpdatedAt not stamped")
	}
}

func TestDebit_NeverGoesNegative(t *testing.T) {
	now := time.Unix(1700000000, 0)
	p := Player{Gold: 30, UpdatedAt: time.Unix(1600000000, 0)}

	err := Debit(&p, now, 31)
	if !errors.Is(err, ErrInsufficientGold) {
		t.Fatalf("expected ErrInsufficientGold, got %v", err)
	}
	if p.Gold != 30 {
		t.Fatalf("failed debit must not mutate: gold=%d", p.Gold)
	}
	if p.UpdatedAt.Equal(now) {
		t.Fatalf("failed debit must not stamp UpdatedAt")
	}
}

func TestEconomy_RejectsNegativeAmounts(t *testing.T) {
	now := time.Unix(1700000000, 0)
	p := Player{Gold: 10}
	if err := Credit(&p, now, -1); !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount from credit, got %v", err)
	}
	if err := Debit(&p, now, -1); !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount from debit, got %v", err)
	}
	if p.Gold != 10 {
		t.Fatalf("negative amounts must not mutate: gold=%d", p.Gold)
	}
}
