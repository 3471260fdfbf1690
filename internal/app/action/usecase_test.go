package action

import (
	"context"
	"errors"
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
	if ok && current.Version != expectedVersion {
		return ports.ErrConflict
	}
	if !ok && expectedVersion != 0 {
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

type stubActionRepo struct {
	byKey map[string]ports.ActionExecutionRecord
}

func (r *stubActionRepo) GetByIdempotencyKey(_ context.Context, playerID, key string) (*ports.ActionExecutionRecord, error) {
	rec, ok := r.byKey[playerID+"::"+key]
	if !ok {
		return nil, ports.ErrNotFound
	}
	out := rec
	return &out, nil
}

func (r *stubActionRepo) SaveExecution(_ context.Context, execution ports.ActionExecutionRecord) error {
	r.byKey[execution.PlayerID+"::"+execution.IdempotencyKey] = execution
	return nil
}

type stubEventRepo struct {
	appended []farm.DomainEvent
}

func (r *stubEventRepo) Append(_ context.Context, _ string, events []farm.DomainEvent) error {
	r.appended = append(r.appended, events...)
	return nil
}

func (r *stubEventRepo) ListByPlayerID(_ context.Context, _ string, _ int) ([]farm.DomainEvent, error) {
	return r.appended, nil
}

func newTestUseCase(t *testing.T, now time.Time) (UseCase, *stubPlayerRepo, *stubEventRepo) {
	t.Helper()
	cat := farm.DefaultCatalog()
	player, err := farm.NewPlayer(cat, "player_1", "Mai", now.Add(-time.Hour))
	if err != nil {
		t.Fatalf("NewPlayer error: %v", err)
	}
	playerRepo := &stubPlayerRepo{byID: map[string]farm.Player{"player_1": player}}
	eventRepo := &stubEventRepo{}
	uc := UseCase{
		TxManager:  stubTxManager{},
		PlayerRepo: playerRepo,
		ActionRepo: &stubActionRepo{byKey: map[string]ports.ActionExecutionRecord{}},
		EventRepo:  eventRepo,
		Catalog:    cat,
		Now:        func() time.Time { return now },
	}
	return uc, playerRepo, eventRepo
}

func TestExecute_PlantThenHarvest(t *testing.T) {
	now := time.Unix(1700000000, 0)
	uc, playerRepo, eventRepo := newTestUseCase(t, now)

	resp, err := uc.Execute(context.Background(), Request{
		PlayerID:       "player_1",
		IdempotencyKey: "k-plant",
		Intent:         Intent{Type: IntentPlant, PlotID: "plot_0", CropID: "tomato"},
	})
	if err != nil {
		t.Fatalf("plant execute error: %v", err)
	}
	if resp.UpdatedState.Plot("plot_0").CropID != "tomato" {
		t.Fatalf("plot not planted in response state")
	}

	// Harvesting right away must be rejected without mutation.
	savesBefore := playerRepo.saves
	_, err = uc.Execute(context.Background(), Request{
		PlayerID:       "player_1",
		IdempotencyKey: "k-harvest-early",
		Intent:         Intent{Type: IntentHarvest, PlotID: "plot_0"},
	})
	if !errors.Is(err, farm.ErrNotReady) {
		t.Fatalf("expected ErrNotReady, got %v", err)
	}
	if playerRepo.saves != savesBefore {
		t.Fatalf("rejected action must not persist")
	}

	// After the growth duration the harvest succeeds and awards exp.
	uc.Now = func() time.Time { return now.Add(60 * time.Second) }
	resp, err = uc.Execute(context.Background(), Request{
		PlayerID:       "player_1",
		IdempotencyKey: "k-harvest",
		Intent:         Intent{Type: IntentHarvest, PlotID: "plot_0"},
	})
	if err != nil {
		t.Fatalf("harvest execute error: %v", err)
	}
	if resp.GoldGained != 50 || resp.ExpGained != 10 {
		t.Fatalf("harvest rewards: %+v", resp)
	}
	if resp.UpdatedState.Experience != 10 {
		t.Fatalf("experience not applied: %d", resp.UpdatedState.Experience)
	}
	if len(eventRepo.appended) == 0 {
		t.Fatalf("expected appended events")
	}
	for _, e := range eventRepo.appended {
		if e.Payload["player_id"] != "player_1" {
			t.Fatalf("event missing player_id payload: %+v", e)
		}
	}
}

func TestExecute_Idempotency(t *testing.T) {
	now := time.Unix(1700000000, 0)
	uc, playerRepo, _ := newTestUseCase(t, now)

	req := Request{
		PlayerID:       "player_1",
		IdempotencyKey: "k-1",
		Intent:         Intent{Type: IntentPlant, PlotID: "plot_0", CropID: "corn"},
	}
	first, err := uc.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("first execute error: %v", err)
	}
	savesAfterFirst := playerRepo.saves

	second, err := uc.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("second execute error: %v", err)
	}
	if playerRepo.saves != savesAfterFirst {
		t.Fatalf("replay must not persist again")
	}
	if first.UpdatedState.Version != second.UpdatedState.Version {
		t.Fatalf("replay state mismatch: %d vs %d",
			first.UpdatedState.Version, second.UpdatedState.Version)
	}
}

func TestExecute_CollectAwardsAndRearms(t *testing.T) {
	base := time.Unix(1700000000, 0)
	uc, playerRepo, _ := newTestUseCase(t, base)
	collectAt := base.Add(2 * time.Minute)
	uc.Now = func() time.Time { return collectAt }

	resp, err := uc.Execute(context.Background(), Request{
		PlayerID:       "player_1",
		IdempotencyKey: "k-collect",
		Intent:         Intent{Type: IntentCollect, PenID: "pen_0"},
	})
	if err != nil {
		t.Fatalf("collect execute error: %v", err)
	}
	if resp.GoldGained != 40 || resp.ExpGained != 8 {
		t.Fatalf("collect rewards: %+v", resp)
	}
	saved := playerRepo.byID["player_1"]
	if saved.Pen("pen_0").Ready {
		t.Fatalf("pen must re-arm after collect")
	}
	if want := collectAt.Add(120 * time.Second); !saved.Pen("pen_0").ReadyAt.Equal(want) {
		t.Fatalf("pen ReadyAt: got %v want %v", saved.Pen("pen_0").ReadyAt, want)
	}
}

func TestExecute_ValidatesRequest(t *testing.T) {
	now := time.Unix(1700000000, 0)
	uc, _, _ := newTestUseCase(t, now)

	cases := []Request{
		{PlayerID: "", IdempotencyKey: "k", Intent: Intent{Type: IntentHarvest, PlotID: "plot_0"}},
		{PlayerID: "player_1", IdempotencyKey: "", Intent: Intent{Type: IntentHarvest, PlotID: "plot_0"}},
		{PlayerID: "player_1", IdempotencyKey: "k", Intent: Intent{Type: "dance"}},
	}
	for _, req := range cases {
		if _, err := uc.Execute(context.Background(), req); !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("request %+v: expected ErrInvalidRequest, got %v", req, err)
		}
	}

	_, err := uc.Execute(context.Background(), Request{
		PlayerID:       "player_1",
		IdempotencyKey: "k",
		Intent:         Intent{Type: IntentPlant, PlotID: "plot_0"},
	})
	if !errors.Is(err, ErrInvalidActionParams) {
		t.Fatalf("plant without crop id: expected ErrInvalidActionParams, got %v", err)
	}
}

func TestExecute_UnknownPlayer(t *testing.T) {
	now := time.Unix(1700000000, 0)
	uc, _, _ := newTestUseCase(t, now)

	_, err := uc.Execute(context.Background(), Request{
		PlayerID:       "ghost",
		IdempotencyKey: "k",
		Intent:         Intent{Type: IntentHarvest, PlotID: "plot_0"},
	})
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ports.ErrNotFound, got %v", err)
	}
}
