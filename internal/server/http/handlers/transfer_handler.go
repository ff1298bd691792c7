package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/trollcity/economy/internal/domain/errors"
	"github.com/trollcity/economy/internal/domain/model"
	"github.com/trollcity/economy/internal/server/http/dto"
)

// TransferHandler manages tip and entry pass endpoints.
type TransferHandler struct {
	facade TransferFacade
}

// NewTransferHandler constructs TransferHandler.
func NewTransferHandler(facade TransferFacade) *TransferHandler {
	return &TransferHandler{facade: facade}
}

// Balance handles GET /api/economy/balance.
func (h *TransferHandler) Balance(c *gin.Context) {
	userID := CurrentUserID(c)
	coins, err := h.facade.Balance(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{Coins: coins})
}

// SendTip handles POST /api/economy/tips.
func (h *TransferHandler) SendTip(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.TipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.SendTip(c.Request.Context(), userID, req.RecipientID, req.Amount, req.Message)
	if err != nil {
		transferErrorStatus(c, err)
		return
	}

	c.JSON(http.StatusOK, transferResponse(result))
}

// PayEntryPass handles POST /api/economy/entry-passes.
func (h *TransferHandler) PayEntryPass(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.EntryPassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.PayEntryPass(c.Request.Context(), userID, req.BroadcasterID, req.StreamID)
	if err != nil {
		transferErrorStatus(c, err)
		return
	}

	c.JSON(http.StatusOK, transferResponse(result))
}

// EntryPassStatus handles GET /api/economy/entry-passes/:broadcaster_id.
func (h *TransferHandler) EntryPassStatus(c *gin.Context) {
	userID := CurrentUserID(c)
	broadcasterID, err := strconv.ParseInt(c.Param("broadcaster_id"), 10, 64)
	if err != nil || broadcasterID <= 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	valid, err := h.facade.CheckEntryPass(c.Request.Context(), userID, broadcasterID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.EntryPassStatusResponse{Valid: valid})
}

func transferResponse(result *model.TransferResult) dto.TransferResponse {
	resp := dto.TransferResponse{Success: result.Success, Error: result.Error}
	if result.Success {
		resp.TransactionID = result.TransactionID.String()
	}
	return resp
}

func transferErrorStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidAmount),
		errors.Is(err, domainErrors.ErrMissingField),
		errors.Is(err, domainErrors.ErrSelfTransfer):
		c.Status(http.StatusUnprocessableEntity)
	case errors.Is(err, domainErrors.ErrInsufficientBalance):
		c.Status(http.StatusPaymentRequired)
	default:
		c.Status(http.StatusInternalServerError)
	}
}
