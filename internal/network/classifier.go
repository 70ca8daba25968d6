package network

import (
	"strings"

	"github.com/wagerlab/predictgate/internal/domain"
)

// Classify maps a raw event token to a canonical event kind using the
// profile's synonym table. Matching is case-insensitive and trims
// surrounding whitespace. Absent or unknown tokens classify as
// Unrecognized; the raw token is preserved for diagnostics.
func (p *Profile) Classify(rawEvent string, hasEvent bool) domain.ConversionEvent {
	if !hasEvent {
		return domain.ConversionEvent{Kind: domain.EventUnrecognized}
	}

	kind, ok := p.eventIndex[strings.ToLower(strings.TrimSpace(rawEvent))]
	if !ok {
		return domain.ConversionEvent{Kind: domain.EventUnrecognized, RawEvent: rawEvent}
	}

	return domain.ConversionEvent{Kind: kind, RawEvent: rawEvent}
}
