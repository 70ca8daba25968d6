package handler

import (
	"net/http"

	"github.com/wagerlab/predictgate/internal/ledger"
)

// VerifyHandlers handles login eligibility requests
type VerifyHandlers struct {
	service ledger.Service
}

// NewVerifyHandlers creates a new verify handlers instance
func NewVerifyHandlers(service ledger.Service) *VerifyHandlers {
	return &VerifyHandlers{
		service: service,
	}
}

// VerifyRequest is the JSON body for POST verification checks. The
// identifier itself is judged by the verification gate, not the validator,
// so a short or empty value yields the same INVALID_ID outcome as the GET
// variant.
type VerifyRequest struct {
	PlayerID string `json:"player_id" validate:"max=128"`
}

// HandleVerify checks login eligibility for a player identifier
// @Summary Check login eligibility
// @Description Returns the player's verification status based on registration and cumulative deposits
// @Tags verify
// @Produce json
// @Param player_id query string false "Player identifier"
// @Success 200 {object} domain.VerificationOutcome
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/verify [get]
func (h *VerifyHandlers) HandleVerify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// A missing or empty identifier falls through to the gate, which
		// answers INVALID_ID like any other too-short value.
		playerID := GetOptionalQueryParam(r, "player_id", "")

		h.respondOutcome(w, r, playerID)
	}
}

// HandleVerifyPost checks login eligibility from a JSON body
// @Summary Check login eligibility (POST)
// @Description Same check as the GET variant, for frontends that submit JSON
// @Tags verify
// @Accept json
// @Produce json
// @Param request body VerifyRequest true "Player identifier"
// @Success 200 {object} domain.VerificationOutcome
// @Failure 400 {object} ValidationErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/verify [post]
func (h *VerifyHandlers) HandleVerifyPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VerifyRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Verify player"); err != nil {
			return
		}

		h.respondOutcome(w, r, req.PlayerID)
	}
}

// respondOutcome runs the check and writes the outcome. Business rejections
// (not registered, needs deposit) are 200 responses with success=false; only
// infrastructure failures map to error statuses.
func (h *VerifyHandlers) respondOutcome(w http.ResponseWriter, r *http.Request, playerID string) {
	outcome, err := h.service.CheckLogin(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, outcome)
}
