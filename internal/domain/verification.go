package domain

// VerificationStatus is the machine-readable login eligibility status tag.
type VerificationStatus string

const (
	StatusInvalidID      VerificationStatus = "INVALID_ID"
	StatusNotRegistered  VerificationStatus = "NOT_REGISTERED"
	StatusNeedsDeposit   VerificationStatus = "NEEDS_DEPOSIT"
	StatusNeedsRedeposit VerificationStatus = "NEEDS_REDEPOSIT"
	StatusLoggedIn       VerificationStatus = "LOGGED_IN"
)

// User-facing verification messages. These mirror what the frontend shows,
// so changes here are user visible.
const (
	MsgInvalidID      = "Please enter a valid Player ID."
	MsgNotRegistered  = "Sorry, this Player ID is not registered! Please use the 'Register Here' button and wait a few minutes before trying again."
	MsgNeedsDeposit   = "User is registered but needs to deposit at least $%v."
	MsgNeedsRedeposit = "You have used all predictions. Deposit again to get more."
)

// VerificationOutcome is the result of a login eligibility check.
// MinimumDeposit is populated only for NEEDS_DEPOSIT; PredictionsLeft only
// for LOGGED_IN and NEEDS_REDEPOSIT.
type VerificationOutcome struct {
	Success         bool               `json:"success"`
	Status          VerificationStatus `json:"status"`
	Message         string             `json:"message,omitempty"`
	PredictionsLeft *int               `json:"predictionsLeft,omitempty"`
	MinimumDeposit  float64            `json:"minimumDeposit,omitempty"`
}
