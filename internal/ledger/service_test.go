package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagerlab/predictgate/internal/domain"
	"github.com/wagerlab/predictgate/internal/network"
)

func newTestService(t *testing.T) (Service, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	return NewService(store, network.NewBuiltinRegistry(), testRules), store
}

func TestProcessPostbackRegistration(t *testing.T) {
	svc, store := newTestService(t)

	result, err := svc.ProcessPostback(context.Background(), "", map[string][]string{
		"user_id": {"player1"},
		"event":   {"registration"},
	})

	require.NoError(t, err)
	assert.Equal(t, "player1", result.PlayerID)
	assert.Equal(t, domain.EventRegistration, result.Kind)
	assert.True(t, result.Mutated)
	assert.False(t, result.Granted)

	rec, err := store.Get(context.Background(), "player1")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.True(t, rec.Registered)
}

func TestProcessPostbackDepositGrants(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := svc.ProcessPostback(context.Background(), "", map[string][]string{
		"player_id": {"player1"},
		"event":     {"ftd"},
		"amount":    {"25.50"},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.EventDeposit, result.Kind)
	assert.True(t, result.Granted)
	assert.True(t, result.Record.Registered)
	assert.Equal(t, 25.50, result.Record.CumulativeDeposit)
	assert.Equal(t, 15, result.Record.PredictionsLeft)
}

func TestProcessPostbackAliasResolution(t *testing.T) {
	svc, _ := newTestService(t)

	// Later alias in the ordered list still resolves when earlier ones
	// are absent.
	result, err := svc.ProcessPostback(context.Background(), "", map[string][]string{
		"subid":  {"player2"},
		"status": {"dep"},
		"payout": {"10"},
	})

	require.NoError(t, err)
	assert.Equal(t, "player2", result.PlayerID)
	assert.Equal(t, domain.EventDeposit, result.Kind)
	assert.True(t, result.Granted)
}

func TestProcessPostbackMissingPlayerID(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := svc.ProcessPostback(context.Background(), "", map[string][]string{
		"event":  {"registration"},
		"amount": {"50"},
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPlayerIDMissing)
	assert.Contains(t, err.Error(), "user_id")
}

func TestProcessPostbackUnrecognizedEventNoMutation(t *testing.T) {
	svc, store := newTestService(t)

	result, err := svc.ProcessPostback(context.Background(), "", map[string][]string{
		"user_id": {"player1"},
		"event":   {"click"},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.EventUnrecognized, result.Kind)
	assert.False(t, result.Mutated)
	assert.False(t, result.Granted)

	rec, err := store.Get(context.Background(), "player1")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestProcessPostbackMissingEventUnrecognized(t *testing.T) {
	svc, store := newTestService(t)

	result, err := svc.ProcessPostback(context.Background(), "", map[string][]string{
		"user_id": {"player1"},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.EventUnrecognized, result.Kind)
	assert.False(t, result.Mutated)

	rec, err := store.Get(context.Background(), "player1")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestProcessPostbackUnparseableAmountNoMutation(t *testing.T) {
	svc, store := newTestService(t)

	result, err := svc.ProcessPostback(context.Background(), "", map[string][]string{
		"user_id": {"player1"},
		"event":   {"deposit"},
		"amount":  {"lots"},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.EventDeposit, result.Kind)
	assert.False(t, result.Mutated)

	rec, err := store.Get(context.Background(), "player1")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestProcessPostbackNegativeAmountNoMutation(t *testing.T) {
	svc, store := newTestService(t)
	store.Seed("player1", domain.LedgerRecord{Registered: true, CumulativeDeposit: 5})

	result, err := svc.ProcessPostback(context.Background(), "", map[string][]string{
		"user_id": {"player1"},
		"event":   {"deposit"},
		"amount":  {"-10"},
	})

	require.NoError(t, err)
	assert.False(t, result.Mutated)

	rec, err := store.Get(context.Background(), "player1")
	require.NoError(t, err)
	assert.Equal(t, 5.0, rec.CumulativeDeposit)
}

func TestProcessPostbackUnknownNetworkFallsBack(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := svc.ProcessPostback(context.Background(), "nosuchnetwork", map[string][]string{
		"user_id": {"player1"},
		"event":   {"reg"},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.EventRegistration, result.Kind)
	assert.True(t, result.Mutated)
}

func TestCheckLoginFlow(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	outcome, err := svc.CheckLogin(ctx, "player1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNotRegistered, outcome.Status)

	_, err = svc.ProcessPostback(ctx, "", map[string][]string{
		"user_id": {"player1"},
		"event":   {"reg"},
	})
	require.NoError(t, err)

	outcome, err = svc.CheckLogin(ctx, "player1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNeedsDeposit, outcome.Status)

	_, err = svc.ProcessPostback(ctx, "", map[string][]string{
		"user_id": {"player1"},
		"event":   {"deposit"},
		"amount":  {"10"},
	})
	require.NoError(t, err)

	outcome, err = svc.CheckLogin(ctx, "player1")
	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Equal(t, domain.StatusLoggedIn, outcome.Status)
	require.NotNil(t, outcome.PredictionsLeft)
	assert.Equal(t, 15, *outcome.PredictionsLeft)
}

func TestCheckLoginInvalidID(t *testing.T) {
	svc, _ := newTestService(t)

	outcome, err := svc.CheckLogin(context.Background(), "ab")

	require.NoError(t, err)
	assert.False(t, outcome.Success)
	assert.Equal(t, domain.StatusInvalidID, outcome.Status)
}

func TestCheckLoginTrimsIdentifier(t *testing.T) {
	svc, store := newTestService(t)
	store.Seed("player1", domain.LedgerRecord{Registered: true, CumulativeDeposit: 10, PredictionsLeft: 5})

	outcome, err := svc.CheckLogin(context.Background(), "  player1  ")

	require.NoError(t, err)
	assert.True(t, outcome.Success)
}

func TestCheckLoginSeesFreshMutation(t *testing.T) {
	// A postback must invalidate the read cache so the very next login
	// check reflects the new state.
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.ProcessPostback(ctx, "", map[string][]string{
		"user_id": {"player1"},
		"event":   {"reg"},
	})
	require.NoError(t, err)

	outcome, err := svc.CheckLogin(ctx, "player1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNeedsDeposit, outcome.Status)

	_, err = svc.ProcessPostback(ctx, "", map[string][]string{
		"user_id": {"player1"},
		"event":   {"deposit"},
		"amount":  {"10"},
	})
	require.NoError(t, err)

	outcome, err = svc.CheckLogin(ctx, "player1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusLoggedIn, outcome.Status)
}

type failingStore struct {
	err error
}

func (f *failingStore) Get(ctx context.Context, playerID string) (*domain.LedgerRecord, error) {
	return nil, f.err
}

func (f *failingStore) Update(ctx context.Context, playerID string, fn UpdateFunc) (domain.LedgerRecord, error) {
	return domain.LedgerRecord{}, f.err
}

func (f *failingStore) Ping(ctx context.Context) error { return f.err }

func (f *failingStore) Close() {}

func TestStoreFailureSurfacesAsUnavailable(t *testing.T) {
	svc := NewService(&failingStore{err: errors.New("connection refused")}, network.NewBuiltinRegistry(), testRules)
	ctx := context.Background()

	_, err := svc.ProcessPostback(ctx, "", map[string][]string{
		"user_id": {"player1"},
		"event":   {"reg"},
	})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = svc.CheckLogin(ctx, "player1")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
