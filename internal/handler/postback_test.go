package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/wagerlab/predictgate/internal/domain"
)

// MockLedgerService mocks the ledger.Service interface
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) ProcessPostback(ctx context.Context, networkName string, params map[string][]string) (*domain.PostbackResult, error) {
	args := m.Called(ctx, networkName, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostbackResult), args.Error(1)
}

func (m *MockLedgerService) CheckLogin(ctx context.Context, playerID string) (*domain.VerificationOutcome, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VerificationOutcome), args.Error(1)
}

func postbackRouter(svc *MockLedgerService) *chi.Mux {
	h := NewPostbackHandlers(svc)
	r := chi.NewRouter()
	r.Get("/postback", h.HandlePostback())
	r.Get("/postback/{network}", h.HandlePostback())
	r.Post("/postback", h.HandlePostback())
	return r
}

func TestHandlePostbackSuccess(t *testing.T) {
	svc := &MockLedgerService{}
	svc.On("ProcessPostback", mock.Anything, "", mock.Anything).Return(&domain.PostbackResult{
		PlayerID: "player1",
		Kind:     domain.EventDeposit,
		Record:   domain.LedgerRecord{Registered: true, CumulativeDeposit: 25, PredictionsLeft: 15},
		Granted:  true,
		Mutated:  true,
	}, nil)

	req := httptest.NewRequest("GET", "/postback?user_id=player1&event=deposit&amount=25", nil)
	w := httptest.NewRecorder()

	postbackRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), `"playerId":"player1"`)
	assert.Contains(t, w.Body.String(), `"event":"deposit"`)
	assert.Contains(t, w.Body.String(), `"granted":true`)
	svc.AssertExpectations(t)
}

func TestHandlePostbackPassesQueryParams(t *testing.T) {
	svc := &MockLedgerService{}
	svc.On("ProcessPostback", mock.Anything, "", map[string][]string{
		"user_id": {"player1"},
		"event":   {"reg"},
	}).Return(&domain.PostbackResult{PlayerID: "player1", Kind: domain.EventRegistration, Mutated: true}, nil)

	req := httptest.NewRequest("GET", "/postback?user_id=player1&event=reg", nil)
	w := httptest.NewRecorder()

	postbackRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestHandlePostbackNetworkPath(t *testing.T) {
	svc := &MockLedgerService{}
	svc.On("ProcessPostback", mock.Anything, "propush", mock.Anything).
		Return(&domain.PostbackResult{PlayerID: "player1", Kind: domain.EventRegistration, Mutated: true}, nil)

	req := httptest.NewRequest("GET", "/postback/propush?sub1=player1&goal=reg", nil)
	w := httptest.NewRecorder()

	postbackRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestHandlePostbackMissingPlayerID(t *testing.T) {
	svc := &MockLedgerService{}
	svc.On("ProcessPostback", mock.Anything, "", mock.Anything).
		Return(nil, fmt.Errorf("%w: expected one of sub1, subid1, user_id", domain.ErrPlayerIDMissing))

	req := httptest.NewRequest("GET", "/postback?event=deposit", nil)
	w := httptest.NewRecorder()

	postbackRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgMissingPlayerIDError)
	// The rejection must name the aliases the profile would have accepted
	assert.Contains(t, w.Body.String(), "sub1")
	assert.Contains(t, w.Body.String(), "user_id")
	svc.AssertExpectations(t)
}

func TestHandlePostbackMissingPlayerIDBareSentinel(t *testing.T) {
	svc := &MockLedgerService{}
	svc.On("ProcessPostback", mock.Anything, "", mock.Anything).
		Return(nil, domain.ErrPlayerIDMissing)

	req := httptest.NewRequest("GET", "/postback?event=deposit", nil)
	w := httptest.NewRecorder()

	postbackRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgMissingPlayerIDError)
	svc.AssertExpectations(t)
}

func TestHandlePostbackStoreUnavailable(t *testing.T) {
	svc := &MockLedgerService{}
	svc.On("ProcessPostback", mock.Anything, "", mock.Anything).
		Return(nil, domain.ErrStoreUnavailable)

	req := httptest.NewRequest("GET", "/postback?user_id=player1&event=deposit&amount=10", nil)
	w := httptest.NewRecorder()

	postbackRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgUnavailableError)
	svc.AssertExpectations(t)
}

func TestHandlePostbackFormEncodedPost(t *testing.T) {
	svc := &MockLedgerService{}
	svc.On("ProcessPostback", mock.Anything, "", map[string][]string{
		"user_id": {"player1"},
		"event":   {"ftd"},
		"amount":  {"50"},
	}).Return(&domain.PostbackResult{PlayerID: "player1", Kind: domain.EventDeposit, Granted: true, Mutated: true}, nil)

	body := strings.NewReader("user_id=player1&event=ftd&amount=50")
	req := httptest.NewRequest("POST", "/postback", body)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	postbackRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
