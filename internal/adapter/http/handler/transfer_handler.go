package handler

import (
	"strconv"

	"cashout-gateway/internal/adapter/http/dto"
	"cashout-gateway/internal/adapter/http/middleware"
	"cashout-gateway/internal/core/ports"
	"cashout-gateway/pkg/apperror"
	"cashout-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// TransferHandler handles peer transfers and the transaction feed.
type TransferHandler struct {
	transferSvc ports.TransferService
}

func NewTransferHandler(transferSvc ports.TransferService) *TransferHandler {
	return &TransferHandler{transferSvc: transferSvc}
}

// Send handles POST /api/v1/transfers.
func (h *TransferHandler) Send(c *gin.Context) {
	var req dto.TransferRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.transferSvc.Send(c.Request.Context(), ports.SendTransferRequest{
		FromUserID:   middleware.UserID(c),
		ToUserID:     req.RecipientUserID,
		ToPhone:      req.RecipientPhone,
		Amount:       req.Amount,
		CurrencyCode: req.CurrencyCode,
		ClientIP:     c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Recent handles GET /api/v1/transfers/recent?limit=N.
func (h *TransferHandler) Recent(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			response.Error(c, apperror.Validation("limit must be between 1 and 100"))
			return
		}
		limit = n
	}

	transfers, err := h.transferSvc.Recent(c.Request.Context(), middleware.UserID(c), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, transfers)
}

// Feed handles GET /api/v1/transfers/feed.
func (h *TransferHandler) Feed(c *gin.Context) {
	entries, err := h.transferSvc.Feed(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, entries)
}
