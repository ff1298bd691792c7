package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/trollcity/economy/internal/domain/errors"
	"github.com/trollcity/economy/internal/domain/model"
	"github.com/trollcity/economy/internal/server/http/dto"
)

// PayoutHandler manages payout conversion endpoints.
type PayoutHandler struct {
	facade PayoutFacade
}

// NewPayoutHandler constructs PayoutHandler.
func NewPayoutHandler(facade PayoutFacade) *PayoutHandler {
	return &PayoutHandler{facade: facade}
}

// Tiers handles GET /api/economy/tiers.
func (h *PayoutHandler) Tiers(c *gin.Context) {
	tiers := h.facade.PayoutTiers()
	resp := make([]dto.TierResponse, 0, len(tiers))
	for _, t := range tiers {
		resp = append(resp, dto.TierResponse{Coins: t.Coins, USD: t.USD, ManualReview: t.ManualReview})
	}
	c.JSON(http.StatusOK, resp)
}

// Quote handles GET /api/economy/quote?coins=N.
func (h *PayoutHandler) Quote(c *gin.Context) {
	coins, err := strconv.ParseInt(c.Query("coins"), 10, 64)
	if err != nil || coins <= 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	quote := h.facade.PayoutQuote(coins)
	c.JSON(http.StatusOK, dto.QuoteResponse{
		AmountCoins:  quote.AmountCoins,
		Rate:         quote.Rate,
		GrossUSD:     quote.GrossUSD,
		NetUSD:       quote.NetUSD,
		ManualReview: quote.ManualReview,
		Eligible:     quote.Eligible,
	})
}

// Create handles POST /api/economy/payouts.
func (h *PayoutHandler) Create(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.CreatePayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	payout, err := h.facade.CreatePayout(c.Request.Context(), userID, req.AmountCoins, req.Currency, req.AmountUSD)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAmount),
			errors.Is(err, domainErrors.ErrMissingField),
			errors.Is(err, domainErrors.ErrBelowMinimumPayout),
			errors.Is(err, domainErrors.ErrAmountMismatch):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrInsufficientBalance):
			c.Status(http.StatusPaymentRequired)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusAccepted, payoutResponse(payout))
}

// History handles GET /api/economy/payouts.
func (h *PayoutHandler) History(c *gin.Context) {
	userID := CurrentUserID(c)
	payouts, err := h.facade.Payouts(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(payouts) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.PayoutResponse, 0, len(payouts))
	for i := range payouts {
		resp = append(resp, payoutResponse(&payouts[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Approve handles POST /api/admin/payouts/:id/approve.
func (h *PayoutHandler) Approve(c *gin.Context) {
	adminID := CurrentAdminID(c)
	payoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	payout, err := h.facade.ApprovePayout(c.Request.Context(), payoutID, adminID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidState):
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrInsufficientBalance):
			c.Status(http.StatusPaymentRequired)
		case errors.Is(err, domainErrors.ErrMissingField):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, payoutResponse(payout))
}

func payoutResponse(p *model.PayoutRequest) dto.PayoutResponse {
	return dto.PayoutResponse{
		ID:           p.ID.String(),
		AmountCoins:  p.AmountCoins,
		AmountUSD:    p.AmountUSD,
		Currency:     p.Currency,
		Status:       string(p.Status),
		ManualReview: p.ManualReview,
		ApprovedBy:   p.ApprovedBy,
		ApprovedAt:   p.ApprovedAt,
		RequestedAt:  p.RequestedAt,
	}
}
