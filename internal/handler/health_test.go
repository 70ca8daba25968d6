package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPinger mocks the Pinger interface
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	handler := HandleHealthz()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("Store Connected - Success", func(t *testing.T) {
		store := &MockPinger{}
		store.On("Ping", mock.Anything).Return(nil)

		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()

		handler := HandleReadyz(store)
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
		store.AssertExpectations(t)
	})

	t.Run("Store Connection Failed", func(t *testing.T) {
		store := &MockPinger{}
		store.On("Ping", mock.Anything).Return(errors.New("connection refused"))

		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()

		handler := HandleReadyz(store)
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
		assert.Contains(t, w.Body.String(), `"message":"ledger store connection failed"`)
		store.AssertExpectations(t)
	})

	t.Run("Store Timeout", func(t *testing.T) {
		store := &MockPinger{}
		store.On("Ping", mock.Anything).Return(context.DeadlineExceeded)

		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()

		handler := HandleReadyz(store)
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		store.AssertExpectations(t)
	})
}
