package farm

import (
	"reflect"
	"testing"
	"time"
)

func TestAdvanceReadiness_Idempotent(t *testing.T) {
	cat := DefaultCatalog()
	base := time.Unix(1700000000, 0)
	p := newTestPlayer(t, base)
	if err := Plant(cat, &p, base, "plot_0", "tomato"); err != nil {
		t.Fatalf("plant error: %v", err)
	}

	now := base.Add(5 * time.Minute)
	once := clonePlayer(p)
	AdvanceReadiness(&once, now)

	twice := clonePlayer(p)
	AdvanceReadiness(&twice, now)
	if changed := AdvanceReadiness(&twice, now); changed {
		t.Fatalf("second sweep with same now reported changes")
	}

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("sweep not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestAdvanceReadiness_MonotonicUnderAdvancingClock(t *testing.T) {
	cat := DefaultCatalog()
	base := time.Unix(1700000000, 0)
	p := newTestPlayer(t, base)
	if err := Plant(cat, &p, base, "plot_0", "tomato"); err != nil {
		t.Fatalf("plant error: %v", err)
	}

	AdvanceReadiness(&p, base.Add(60*time.Second))
	if !p.Plot("plot_0").Ready {
		t.Fatalf("plot should be ready")
	}

	// Later sweeps never reset readiness; only harvest/collect do.
	AdvanceReadiness(&p, base.Add(61*time.Second))
	AdvanceReadiness(&p, base.Add(time.Hour))
	if !p.Plot("plot_0").Ready {
		t.Fatalf("readiness reset by a later sweep")
	}
}

func TestAdvanceReadiness_SkipsEmptyPlots(t *testing.T) {
	base := time.Unix(1700000000, 0)
	p := newTestPlayer(t, base)

	if changed := AdvanceReadiness(&p, base.Add(time.Minute)); changed {
		t.Fatalf("sweep over empty plots and unready pens reported changes")
	}
	for _, plot := range p.Plots {
		if plot.Ready {
			t.Fatalf("empty plot marked ready: %+v", plot)
		}
	}
}

func TestAdvanceReadiness_PromotesPens(t *testing.T) {
	base := time.Unix(1700000000, 0)
	p := newTestPlayer(t, base)

	// pen_0 is a chicken (120s); pen_1 a duck (150s).
	if changed := AdvanceReadiness(&p, base.Add(120*time.Second)); !changed {
		t.Fatalf("expected chicken pens to become ready")
	}
	if !p.Pen("pen_0").Ready || p.Pen("pen_1").Ready {
		t.Fatalf("unexpected pen readiness: pen_0=%v pen_1=%v",
			p.Pen("pen_0").Ready, p.Pen("pen_1").Ready)
	}
	AdvanceReadiness(&p, base.Add(150*time.Second))
	if !p.Pen("pen_1").Ready {
		t.Fatalf("duck pen not ready after its production time")
	}
}

// clonePlayer returns a copy whose slices do not alias the original, so a
// sweep over one copy cannot leak into another through shared backing arrays.
func clonePlayer(p Player) Player {
	out := p
	out.Inventory = append([]InventoryItem(nil), p.Inventory...)
	out.Plots = append([]FarmPlot(nil), p.Plots...)
	out.Pens = append([]AnimalPen(nil), p.Pens...)
	return out
}
