package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trollcity/economy/internal/server/http/dto"
)

// CreditHandler serves credit score reads.
type CreditHandler struct {
	facade CreditFacade
}

// NewCreditHandler constructs CreditHandler.
func NewCreditHandler(facade CreditFacade) *CreditHandler {
	return &CreditHandler{facade: facade}
}

// Score handles GET /api/economy/credit-score.
func (h *CreditHandler) Score(c *gin.Context) {
	userID := CurrentUserID(c)
	score, err := h.facade.CreditScore(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := dto.CreditScoreResponse{
		Score:    score.Score,
		Tier:     score.Tier,
		Trend7d:  score.Trend7d,
		Trend30d: score.Trend30d,
	}
	if !score.UpdatedAt.IsZero() {
		resp.UpdatedAt = &score.UpdatedAt
	}
	c.JSON(http.StatusOK, resp)
}
