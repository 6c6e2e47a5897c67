package handler

import (
	"cashout-gateway/internal/adapter/http/dto"
	"cashout-gateway/internal/adapter/http/middleware"
	"cashout-gateway/internal/core/ports"
	"cashout-gateway/pkg/apperror"
	"cashout-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

type ExchangeHandler struct {
	exchangeSvc ports.ExchangeService
}

func NewExchangeHandler(exchangeSvc ports.ExchangeService) *ExchangeHandler {
	return &ExchangeHandler{exchangeSvc: exchangeSvc}
}

// Rate handles GET /api/v1/exchange/rate?from=SGD&to=USD.
func (h *ExchangeHandler) Rate(c *gin.Context) {
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		response.Error(c, apperror.ErrMissingFields())
		return
	}

	quote, err := h.exchangeSvc.Rate(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, quote)
}

// Convert handles POST /api/v1/exchange/convert.
func (h *ExchangeHandler) Convert(c *gin.Context) {
	var req dto.ConvertRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.exchangeSvc.Convert(c.Request.Context(), ports.ConversionRequest{
		UserID:       middleware.UserID(c),
		FromCurrency: req.FromCurrency,
		ToCurrency:   req.ToCurrency,
		Amount:       req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}
