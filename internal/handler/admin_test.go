package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/wagerlab/predictgate/internal/network"
)

// MockRegistry mocks the network.Registry interface
type MockRegistry struct {
	mock.Mock
}

func (m *MockRegistry) Resolve(name string) *network.Profile {
	args := m.Called(name)
	return args.Get(0).(*network.Profile)
}

func (m *MockRegistry) Default() *network.Profile {
	args := m.Called()
	return args.Get(0).(*network.Profile)
}

func (m *MockRegistry) Reload() error {
	args := m.Called()
	return args.Error(0)
}

func TestHandleReloadNetworks(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		registry := &MockRegistry{}
		registry.On("Reload").Return(nil)

		req := httptest.NewRequest("POST", "/api/v1/admin/reload-networks", nil)
		w := httptest.NewRecorder()

		NewAdminHandlers(registry).HandleReloadNetworks().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgNetworksReloadedSuccess)
		registry.AssertExpectations(t)
	})

	t.Run("reload failure", func(t *testing.T) {
		registry := &MockRegistry{}
		registry.On("Reload").Return(errors.New("no such file"))

		req := httptest.NewRequest("POST", "/api/v1/admin/reload-networks", nil)
		w := httptest.NewRecorder()

		NewAdminHandlers(registry).HandleReloadNetworks().ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgReloadNetworksFailed)
		registry.AssertExpectations(t)
	})
}
