package tick

import (
	"context"
	"testing"
	"time"

	"farmstead/internal/app/ports"
	"farmstead/internal/domain/farm"
)

type stubTxManager struct{}

func (stubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubPlayerRepo struct {
	byID  map[string]farm.Player
	saves int
}

func (r *stubPlayerRepo) GetByID(_ context.Context, playerID string) (farm.Player, error) {
	p, ok := r.byID[playerID]
	if !ok {
		return farm.Player{}, ports.ErrNotFound
	}
	return p, nil
}

func (r *stubPlayerRepo) SaveWithVersion(_ context.Context, player farm.Player, expectedVersion int64) error {
	current, ok := r.byID[player.ID]
	if !ok || current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.byID[player.ID] = player
	r.saves++
	return nil
}

func (r *stubPlayerRepo) List(_ context.Context) ([]farm.Player, error) {
	out := make([]farm.Player, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func TestSweep_PersistsOnlyOnChange(t *testing.T) {
	cat := farm.DefaultCatalog()
	base := time.Unix(1700000000, 0)
	p, err := farm.NewPlayer(cat, "player_1", "Mai", base)
	if err != nil {
		t.Fatalf("NewPlayer error: %v", err)
	}
	if err := farm.Plant(cat, &p, base, "plot_0", "tomato"); err != nil {
		t.Fatalf("plant error: %v", err)
	}
	repo := &stubPlayerRepo{byID: map[string]farm.Player{"player_1": p}}
	uc := UseCase{TxManager: stubTxManager{}, PlayerRepo: repo}

	// Nothing has elapsed yet: no write-back.
	uc.Now = func() time.Time { return base.Add(30 * time.Second) }
	changed, err := uc.Sweep(context.Background(), "player_1")
	if err != nil {
		t.Fatalf("sweep error: %v", err)
	}
	if changed || repo.saves != 0 {
		t.Fatalf("sweep without elapsed timers must not save (changed=%v saves=%d)", changed, repo.saves)
	}

	uc.Now = func() time.Time { return base.Add(60 * time.Second) }
	changed, err = uc.Sweep(context.Background(), "player_1")
	if err != nil {
		t.Fatalf("sweep error: %v", err)
	}
	if !changed || repo.saves != 1 {
		t.Fatalf("expected one persisted change, got changed=%v saves=%d", changed, repo.saves)
	}
	saved := repo.byID["player_1"]
	if !saved.Plot("plot_0").Ready {
		t.Fatalf("plot not marked ready")
	}

	// Re-running at the same instant is a no-op.
	changed, err = uc.Sweep(context.Background(), "player_1")
	if err != nil {
		t.Fatalf("sweep error: %v", err)
	}
	if changed || repo.saves != 1 {
		t.Fatalf("idempotent re-sweep must not save again")
	}
}

func TestSweepAll_CountsChangedPlayers(t *testing.T) {
	cat := farm.DefaultCatalog()
	base := time.Unix(1700000000, 0)
	repo := &stubPlayerRepo{byID: map[string]farm.Player{}}
	for _, id := range []string{"player_1", "player_2"} {
		p, err := farm.NewPlayer(cat, id, "Farmer "+id, base)
		if err != nil {
			t.Fatalf("NewPlayer error: %v", err)
		}
		repo.byID[id] = p
	}

	uc := UseCase{
		TxManager:  stubTxManager{},
		PlayerRepo: repo,
		// All starter chicken/duck pens are ready by 150s.
		Now: func() time.Time { return base.Add(150 * time.Second) },
	}
	report, err := uc.SweepAll(context.Background())
	if err != nil {
		t.Fatalf("sweep all error: %v", err)
	}
	if report.PlayersSwept != 2 || report.PlayersChanged != 2 {
		t.Fatalf("unexpected report: %+v", report)
	}
}
