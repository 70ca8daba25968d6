package handler

import (
	"net/http"
	"strings"

	"github.com/wagerlab/predictgate/internal/logger"
)

// placeholderUserID is substituted into the affiliate link so the network
// echoes the player identifier back in its postbacks.
const placeholderUserID = "{user_id}"

// LinkHandlers serves the affiliate registration link
type LinkHandlers struct {
	affiliateLink string
}

// NewLinkHandlers creates a new link handlers instance
func NewLinkHandlers(affiliateLink string) *LinkHandlers {
	return &LinkHandlers{
		affiliateLink: affiliateLink,
	}
}

// LinkResponse carries the resolved affiliate link
type LinkResponse struct {
	Link string `json:"link"`
}

func (h *LinkHandlers) resolve(playerID string) string {
	if playerID == "" {
		return h.affiliateLink
	}
	return strings.ReplaceAll(h.affiliateLink, placeholderUserID, playerID)
}

// HandleGetLink returns the affiliate registration link
// @Summary Get affiliate registration link
// @Description Returns the configured affiliate link, with the player identifier substituted when provided
// @Tags link
// @Produce json
// @Param player_id query string false "Player identifier to embed in the link"
// @Success 200 {object} LinkResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/link [get]
func (h *LinkHandlers) HandleGetLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.affiliateLink == "" {
			respondError(w, http.StatusNotFound, ErrMsgLinkNotConfigured)
			return
		}

		playerID := GetOptionalQueryParam(r, "player_id", "")
		respondJSON(w, http.StatusOK, LinkResponse{Link: h.resolve(playerID)})
	}
}

// HandleRedirect issues a 302 to the affiliate link so creatives can point
// at a stable URL on this service
// @Summary Redirect to affiliate registration
// @Tags link
// @Param player_id query string false "Player identifier to embed in the link"
// @Success 302
// @Failure 404 {object} ErrorResponse
// @Router /go [get]
func (h *LinkHandlers) HandleRedirect() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.affiliateLink == "" {
			respondError(w, http.StatusNotFound, ErrMsgLinkNotConfigured)
			return
		}

		playerID := GetOptionalQueryParam(r, "player_id", "")
		target := h.resolve(playerID)

		logger.FromContext(r.Context()).Debug("Redirecting to affiliate link", "player_id", playerID)
		http.Redirect(w, r, target, http.StatusFound)
	}
}
