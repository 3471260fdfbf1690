package farm

import "time"

// AdvanceReadiness promotes every plot and pen whose target timestamp has
// elapsed to ready. The sweep is idempotent and monotonic: repeating it
// with a non-decreasing now never un-readies anything; only Harvest and
// Collect reset the flags. It reports whether any state changed so callers
// can skip a pointless write-back.
func AdvanceReadiness(p *Player, now time.Time) bool {
	changed := false
	for i := range p.Plots {
		plot := &p.Plots[i]
		if plot.Ready || plot.ReadyAt == nil {
			continue
		}
		if !now.Before(*plot.ReadyAt) {
			plot.Ready = true
			changed = true
		}
	}
	for i := range p.Pens {
		pen := &p.Pens[i]
		if pen.Ready {
			continue
		}
		if !now.Before(pen.ReadyAt) {
			pen.Ready = true
			changed = true
		}
	}
	if changed {
		p.UpdatedAt = now
	}
	return changed
}
