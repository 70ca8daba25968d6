package domain

// LedgerRecord is the aggregate conversion state for one player identifier.
// Records are created implicitly with zero values on first lookup miss and
// are never deleted by this service.
type LedgerRecord struct {
	Registered        bool    `json:"registered"`
	CumulativeDeposit float64 `json:"deposit"`
	PredictionsLeft   int     `json:"predictionsLeft"`
}

// EventKind is the canonical classification of an affiliate conversion event.
type EventKind string

const (
	EventRegistration EventKind = "registration"
	EventDeposit      EventKind = "deposit"
	EventUnrecognized EventKind = "unrecognized"
)

// ConversionEvent is a normalized affiliate postback event. RawEvent carries
// the original token for diagnostic logging; Amount is only meaningful for
// deposits and is zero when the amount parameter was absent or unparseable.
type ConversionEvent struct {
	Kind     EventKind
	Amount   float64
	RawEvent string
}

// PostbackResult reports what a processed postback did. Granted is
// observability only; it is never persisted.
type PostbackResult struct {
	PlayerID string
	Kind     EventKind
	Record   LedgerRecord
	Granted  bool
	Mutated  bool
}
