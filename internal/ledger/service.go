package ledger

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/wagerlab/predictgate/internal/domain"
	"github.com/wagerlab/predictgate/internal/logger"
	"github.com/wagerlab/predictgate/internal/metrics"
	"github.com/wagerlab/predictgate/internal/network"
)

// Service defines the interface for conversion ledger operations
type Service interface {
	// ProcessPostback ingests one affiliate network callback. The parameter
	// bag is the raw query string; networkName selects the vocabulary
	// profile ("" means default). A nil result is only returned with an
	// error; unrecognized events return a non-mutating result and no error
	// so the transport layer acknowledges them.
	ProcessPostback(ctx context.Context, networkName string, params map[string][]string) (*domain.PostbackResult, error)

	// CheckLogin returns the login eligibility outcome for a player
	// identifier. Invalid identifiers resolve to an INVALID_ID outcome
	// without touching the store.
	CheckLogin(ctx context.Context, playerID string) (*domain.VerificationOutcome, error)
}

type service struct {
	store    Store
	networks network.Registry
	rules    Rules
	cache    *recordCache
}

// NewService creates a new ledger service
func NewService(store Store, networks network.Registry, rules Rules) Service {
	return &service{
		store:    store,
		networks: networks,
		rules:    rules,
		cache:    newRecordCache(DefaultCacheSize, DefaultCacheTTL),
	}
}

func (s *service) ProcessPostback(ctx context.Context, networkName string, params map[string][]string) (*domain.PostbackResult, error) {
	log := logger.FromContext(ctx)

	profile := s.networks.Resolve(networkName)
	if networkName != "" && profile.Name != strings.ToLower(networkName) {
		log.Warn("Unknown network profile, using default vocabulary", "network", networkName)
	}

	normalized := profile.Normalize(params)
	if !normalized.HasPlayerID {
		metrics.PostbacksRejected.WithLabelValues(metrics.ReasonMissingPlayerID).Inc()
		log.Warn("Postback rejected: no player identifier resolved",
			"network", profile.Name,
			"expected_aliases", profile.PlayerIDAliases)
		return nil, fmt.Errorf("%w: expected one of %s",
			domain.ErrPlayerIDMissing, strings.Join(profile.PlayerIDAliases, ", "))
	}

	event := profile.Classify(normalized.RawEvent, normalized.HasEvent)
	if event.Kind == domain.EventDeposit {
		event.Amount = parseAmount(ctx, normalized)
	}

	metrics.PostbacksReceived.WithLabelValues(profile.Name, string(event.Kind)).Inc()

	result := &domain.PostbackResult{
		PlayerID: normalized.PlayerID,
		Kind:     event.Kind,
	}

	if event.Kind == domain.EventUnrecognized {
		// Acknowledged without mutation so the network stops retrying
		log.Info("Unrecognized event acknowledged",
			"player_id", normalized.PlayerID,
			"network", profile.Name,
			"raw_event", event.RawEvent)
		return result, nil
	}

	if event.Kind == domain.EventDeposit && event.Amount <= 0 {
		log.Warn("Deposit with non-positive or unparseable amount ignored",
			"player_id", normalized.PlayerID,
			"raw_amount", normalized.RawAmount)
		return result, nil
	}

	var granted bool
	record, err := s.store.Update(ctx, normalized.PlayerID, func(cur domain.LedgerRecord) domain.LedgerRecord {
		next, g := Apply(cur, event, s.rules)
		granted = g
		return next
	})
	if err != nil {
		metrics.PostbacksRejected.WithLabelValues(metrics.ReasonStoreFailure).Inc()
		metrics.StoreErrors.WithLabelValues("update").Inc()
		log.Error("Ledger update failed", "player_id", normalized.PlayerID, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	s.cache.Invalidate(normalized.PlayerID)

	result.Record = record
	result.Granted = granted
	result.Mutated = true

	if event.Kind == domain.EventDeposit {
		metrics.DepositVolume.Add(event.Amount)
	}
	if granted {
		metrics.PredictionsAwarded.Add(float64(s.rules.PredictionsAwarded))
		log.Info("Predictions granted",
			"player_id", normalized.PlayerID,
			"awarded", s.rules.PredictionsAwarded,
			"predictions_left", record.PredictionsLeft)
	}

	log.Info("Postback processed",
		"player_id", normalized.PlayerID,
		"network", profile.Name,
		"event_kind", event.Kind,
		"amount", event.Amount,
		"cumulative_deposit", record.CumulativeDeposit)

	return result, nil
}

func (s *service) CheckLogin(ctx context.Context, playerID string) (*domain.VerificationOutcome, error) {
	log := logger.FromContext(ctx)

	id := strings.TrimSpace(playerID)
	if !ValidPlayerID(id) {
		outcome := Verify(id, nil, s.rules)
		metrics.Verifications.WithLabelValues(string(outcome.Status)).Inc()
		return &outcome, nil
	}

	record, err := s.lookupRecord(ctx, id)
	if err != nil {
		metrics.StoreErrors.WithLabelValues("get").Inc()
		log.Error("Ledger lookup failed", "player_id", id, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	outcome := Verify(id, record, s.rules)
	metrics.Verifications.WithLabelValues(string(outcome.Status)).Inc()

	log.Debug("Login eligibility checked", "player_id", id, "status", outcome.Status)

	return &outcome, nil
}

// lookupRecord reads through the cache. Absent records are not cached so a
// player's very first postback is visible immediately on every instance.
func (s *service) lookupRecord(ctx context.Context, playerID string) (*domain.LedgerRecord, error) {
	if rec, ok := s.cache.Get(playerID); ok {
		return &rec, nil
	}

	rec, err := s.store.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if rec != nil {
		s.cache.Set(playerID, *rec)
	}
	return rec, nil
}

// parseAmount parses the raw amount string. Parse failures degrade to zero,
// which the engine treats as a logged no-op rather than an error.
func parseAmount(ctx context.Context, n network.Normalized) float64 {
	if !n.HasAmount {
		return 0
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(n.RawAmount), 64)
	if err != nil {
		logger.FromContext(ctx).Warn("Unparseable deposit amount", "raw_amount", n.RawAmount, "error", err)
		return 0
	}
	return amount
}
