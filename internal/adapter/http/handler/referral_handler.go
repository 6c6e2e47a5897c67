package handler

import (
	"cashout-gateway/internal/adapter/http/dto"
	"cashout-gateway/internal/adapter/http/middleware"
	"cashout-gateway/internal/core/ports"
	"cashout-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

type ReferralHandler struct {
	referralSvc ports.ReferralService
	gate        ports.ReferralGate
}

func NewReferralHandler(referralSvc ports.ReferralService, gate ports.ReferralGate) *ReferralHandler {
	return &ReferralHandler{referralSvc: referralSvc, gate: gate}
}

// Apply handles POST /api/v1/referrals/apply.
func (h *ReferralHandler) Apply(c *gin.Context) {
	var req dto.ApplyReferralRequest
	if !bindJSON(c, &req) {
		return
	}

	completion, err := h.referralSvc.Apply(c.Request.Context(), middleware.UserID(c), req.Code)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, completion)
}

// Info handles GET /api/v1/referrals/me.
func (h *ReferralHandler) Info(c *gin.Context) {
	info, err := h.referralSvc.Info(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, info)
}

// ClearGate handles DELETE /api/v1/referrals/gate. The next qualifying
// transaction asks the referral service again.
func (h *ReferralHandler) ClearGate(c *gin.Context) {
	if err := h.gate.Clear(c.Request.Context(), middleware.UserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"cleared": true})
}
