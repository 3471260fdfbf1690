package farm

import (
	"errors"
	"time"
)

var (
	ErrNegativeAmount   = errors.New("amount must not be negative")
	ErrInsufficientGold = errors.New("insufficient gold")
)

// Credit increases the player's balance. Amount must be non-negative.
func Credit(p *Player, now time.Time, amount int) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	p.Gold += amount
	p.UpdatedAt = now
	return nil
}

// Debit decreases the balance only when it fully covers amount; an
// insufficient balance leaves the player untouched. Check and mutation are
// a single step under the single-writer model.
func Debit(p *Player, now time.Time, amount int) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	if p.Gold < amount {
		return ErrInsufficientGold
	}
	p.Gold -= amount
	p.UpdatedAt = now
	return nil
}
