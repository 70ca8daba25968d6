package ledger

import "github.com/wagerlab/predictgate/internal/domain"

// Rules holds the business configuration for the qualification engine and
// the verification gate. Passed explicitly so the logic is testable with
// different thresholds.
type Rules struct {
	MinimumDeposit     float64
	PredictionsAwarded int
}

// Apply runs the qualification rules for one canonical event against a
// ledger record. Pure: it operates only on the value it was handed and
// returns a new value plus a flag indicating whether predictions were
// granted (observability only, never persisted).
//
// Registration is idempotent. A deposit is proof of registration even if the
// registration callback was dropped or arrives out of order. Predictions are
// granted when the deposit crosses the minimum threshold, or when the player
// was already at or above it: every deposit that pushes or keeps the
// cumulative total at-or-above the threshold is independently
// reward-bearing. A deposit that leaves the player below threshold grants
// nothing, and a non-positive deposit amount is a no-op.
func Apply(rec domain.LedgerRecord, ev domain.ConversionEvent, rules Rules) (domain.LedgerRecord, bool) {
	switch ev.Kind {
	case domain.EventRegistration:
		rec.Registered = true
		return rec, false

	case domain.EventDeposit:
		if ev.Amount <= 0 {
			return rec, false
		}
		return creditDeposit(rec, ev.Amount, rules)

	default:
		return rec, false
	}
}

func creditDeposit(rec domain.LedgerRecord, amount float64, rules Rules) (domain.LedgerRecord, bool) {
	old := rec.CumulativeDeposit
	rec.CumulativeDeposit = old + amount
	rec.Registered = true

	crossed := old < rules.MinimumDeposit && rec.CumulativeDeposit >= rules.MinimumDeposit
	topUp := old >= rules.MinimumDeposit
	if crossed || topUp {
		rec.PredictionsLeft += rules.PredictionsAwarded
		return rec, true
	}

	return rec, false
}
