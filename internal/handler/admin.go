package handler

import (
	"net/http"

	"github.com/wagerlab/predictgate/internal/logger"
	"github.com/wagerlab/predictgate/internal/network"
)

// AdminHandlers handles administrative operations
type AdminHandlers struct {
	networks network.Registry
}

// NewAdminHandlers creates a new admin handlers instance
func NewAdminHandlers(networks network.Registry) *AdminHandlers {
	return &AdminHandlers{
		networks: networks,
	}
}

// HandleReloadNetworks re-reads the network vocabulary profiles
// @Summary Reload network profiles
// @Description Re-reads the vocabulary configuration so new affiliate integrations take effect without a restart
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/reload-networks [post]
func (h *AdminHandlers) HandleReloadNetworks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if err := h.networks.Reload(); err != nil {
			log.Error("Failed to reload network profiles", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgReloadNetworksFailed)
			return
		}

		log.Info("Network profiles reloaded")
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgNetworksReloadedSuccess})
	}
}
