package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wagerlab/predictgate/internal/ledger"
	"github.com/wagerlab/predictgate/internal/logger"
)

// PostbackHandlers handles affiliate network callback requests
type PostbackHandlers struct {
	service ledger.Service
}

// NewPostbackHandlers creates a new postback handlers instance
func NewPostbackHandlers(service ledger.Service) *PostbackHandlers {
	return &PostbackHandlers{
		service: service,
	}
}

// PostbackResponse acknowledges a processed postback
type PostbackResponse struct {
	Status   string `json:"status"`
	PlayerID string `json:"playerId"`
	Event    string `json:"event"`
	Granted  bool   `json:"granted,omitempty"`
}

// HandlePostback ingests an affiliate network conversion callback
// @Summary Ingest affiliate postback
// @Description Accepts a conversion callback (registration or deposit), credits the player ledger and awards predictions when qualification rules are met
// @Tags postback
// @Produce json
// @Param network path string false "Affiliate network name"
// @Success 200 {object} PostbackResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /postback/{network} [get]
func (h *PostbackHandlers) HandlePostback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		// Networks send both GET query strings and form-encoded POSTs;
		// ParseForm merges the two into one parameter bag.
		if err := r.ParseForm(); err != nil {
			log.Warn("Failed to parse postback parameters", "error", err)
			http.Error(w, ErrMsgInvalidRequest, http.StatusBadRequest)
			return
		}

		networkName := chi.URLParam(r, "network")

		result, err := h.service.ProcessPostback(r.Context(), networkName, r.Form)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, PostbackResponse{
			Status:   "ok",
			PlayerID: result.PlayerID,
			Event:    string(result.Kind),
			Granted:  result.Granted,
		})
	}
}
