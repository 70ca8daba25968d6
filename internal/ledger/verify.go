package ledger

import (
	"fmt"
	"strings"

	"github.com/wagerlab/predictgate/internal/domain"
)

// ValidPlayerID reports whether an identifier passes input validation:
// non-empty after trimming and at least MinPlayerIDLength characters. This
// is a pure input check, done before any store lookup.
func ValidPlayerID(playerID string) bool {
	return len(strings.TrimSpace(playerID)) >= MinPlayerIDLength
}

// Verify converts ledger state into a login decision. rec is nil when no
// record exists for the player. First match wins; the ordering matters: a
// registered-but-underfunded player must never see NEEDS_REDEPOSIT, which is
// reserved for players who qualified once and exhausted their predictions.
func Verify(playerID string, rec *domain.LedgerRecord, rules Rules) domain.VerificationOutcome {
	if !ValidPlayerID(playerID) {
		return domain.VerificationOutcome{
			Status:  domain.StatusInvalidID,
			Message: domain.MsgInvalidID,
		}
	}

	if rec == nil || !rec.Registered {
		return domain.VerificationOutcome{
			Status:  domain.StatusNotRegistered,
			Message: domain.MsgNotRegistered,
		}
	}

	if rec.CumulativeDeposit < rules.MinimumDeposit {
		return domain.VerificationOutcome{
			Status:         domain.StatusNeedsDeposit,
			Message:        fmt.Sprintf(domain.MsgNeedsDeposit, rules.MinimumDeposit),
			MinimumDeposit: rules.MinimumDeposit,
		}
	}

	if rec.PredictionsLeft <= 0 {
		zero := 0
		return domain.VerificationOutcome{
			Status:          domain.StatusNeedsRedeposit,
			Message:         domain.MsgNeedsRedeposit,
			PredictionsLeft: &zero,
		}
	}

	left := rec.PredictionsLeft
	return domain.VerificationOutcome{
		Success:         true,
		Status:          domain.StatusLoggedIn,
		PredictionsLeft: &left,
	}
}
