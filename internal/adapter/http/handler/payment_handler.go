package handler

import (
	"cashout-gateway/internal/adapter/http/dto"
	"cashout-gateway/internal/adapter/http/middleware"
	"cashout-gateway/internal/core/ports"
	"cashout-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles merchant QR payments.
type PaymentHandler struct {
	paymentSvc ports.ExternalPaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentSvc ports.ExternalPaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

// PayExternal handles POST /api/v1/payments/external.
func (h *PaymentHandler) PayExternal(c *gin.Context) {
	var req dto.ExternalPaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.paymentSvc.Pay(c.Request.Context(), ports.ExternalPaymentRequest{
		UserID:        middleware.UserID(c),
		AccountID:     req.AccountID,
		TransactionID: req.TransactionID,
		CurrencyCode:  req.CurrencyCode,
		Amount:        req.Amount,
		Narrative:     req.Narrative,
		ClientIP:      c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}
