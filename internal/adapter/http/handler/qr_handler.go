package handler

import (
	"errors"
	"time"

	"cashout-gateway/internal/adapter/http/dto"
	"cashout-gateway/internal/adapter/http/middleware"
	"cashout-gateway/internal/core/domain"
	"cashout-gateway/internal/core/ports"
	"cashout-gateway/pkg/apperror"
	"cashout-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// QRHandler decodes scanned payloads and renders merchant and user codes.
type QRHandler struct {
	authSvc ports.AuthService
	now     func() time.Time
}

func NewQRHandler(authSvc ports.AuthService) *QRHandler {
	return &QRHandler{authSvc: authSvc, now: time.Now}
}

// Decode handles POST /api/v1/qr/decode.
func (h *QRHandler) Decode(c *gin.Context) {
	var req dto.QRDecodeRequest
	if !bindJSON(c, &req) {
		return
	}

	payload, err := domain.ParseQRPayload(req.Payload)
	if err != nil {
		msg := "Invalid QR code"
		if errors.Is(err, domain.ErrQRUnsupported) {
			msg = "Unsupported QR code"
		}
		response.Error(c, apperror.Validation(msg).WithDetails(err.Error()))
		return
	}
	response.OK(c, payload)
}

// Merchant handles POST /api/v1/qr/merchant.
func (h *QRHandler) Merchant(c *gin.Context) {
	var req dto.MerchantQRRequest
	if !bindJSON(c, &req) {
		return
	}
	h.render(c, domain.NewMerchantQR(req.MerchantID, req.MerchantName, h.now()))
}

// Mine handles GET /api/v1/qr/me, the code other users scan to pay the caller.
func (h *QRHandler) Mine(c *gin.Context) {
	user, err := h.authSvc.Profile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	h.render(c, domain.NewUserQR(user.UserID, user.Name, h.now()))
}

func (h *QRHandler) render(c *gin.Context, payload domain.QRPayload) {
	content, err := payload.Encode()
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, dto.QRResponse{Payload: payload, Content: content})
}
