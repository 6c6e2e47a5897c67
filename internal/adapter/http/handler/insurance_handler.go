package handler

import (
	"strconv"
	"time"

	"cashout-gateway/internal/adapter/http/dto"
	"cashout-gateway/internal/adapter/http/middleware"
	"cashout-gateway/internal/core/domain"
	"cashout-gateway/internal/core/ports"
	"cashout-gateway/pkg/apperror"
	"cashout-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// InsuranceHandler handles plans, quotes, purchase and the policy views.
type InsuranceHandler struct {
	insuranceSvc ports.InsuranceService
}

func NewInsuranceHandler(insuranceSvc ports.InsuranceService) *InsuranceHandler {
	return &InsuranceHandler{insuranceSvc: insuranceSvc}
}

// ListPlans handles GET /api/v1/insurance/plans.
func (h *InsuranceHandler) ListPlans(c *gin.Context) {
	plans, err := h.insuranceSvc.ListPlans(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, plans)
}

// GetPlan handles GET /api/v1/insurance/plans/:id.
func (h *InsuranceHandler) GetPlan(c *gin.Context) {
	planID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || planID <= 0 {
		response.Error(c, apperror.Validation("Invalid plan id"))
		return
	}

	plan, err := h.insuranceSvc.GetPlan(c.Request.Context(), planID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, plan)
}

// coverage holds the parsed fields shared by quote and purchase.
type coverage struct {
	start, end time.Time
	mode       domain.PaymentMode
}

func parseCoverage(req dto.InsuranceRequest) (*coverage, error) {
	start, err := domain.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperror.ErrInvalidDates("Invalid start date")
	}
	end, err := domain.ParseDate(req.EndDate)
	if err != nil {
		return nil, apperror.ErrInvalidDates("Invalid end date")
	}
	mode := domain.PaymentModeFull
	if req.PaymentMode != "" {
		mode = domain.PaymentMode(req.PaymentMode)
	}
	return &coverage{start: start, end: end, mode: mode}, nil
}

// Quote handles POST /api/v1/insurance/quote.
func (h *InsuranceHandler) Quote(c *gin.Context) {
	var req dto.InsuranceRequest
	if !bindJSON(c, &req) {
		return
	}
	cov, err := parseCoverage(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	quote, err := h.insuranceSvc.Quote(c.Request.Context(), ports.QuoteRequest{
		UserID:             middleware.UserID(c),
		PlanID:             req.PlanID,
		WalletID:           req.WalletID,
		StartDate:          cov.start,
		EndDate:            cov.end,
		DestinationCountry: req.DestinationCountry,
		Mode:               cov.mode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, quote)
}

// Purchase handles POST /api/v1/insurance/purchase.
func (h *InsuranceHandler) Purchase(c *gin.Context) {
	var req dto.InsuranceRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.WalletID == "" {
		response.Error(c, apperror.ErrMissingFields())
		return
	}
	cov, err := parseCoverage(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.insuranceSvc.Purchase(c.Request.Context(), ports.PurchaseRequest{
		UserID:             middleware.UserID(c),
		PlanID:             req.PlanID,
		WalletID:           req.WalletID,
		StartDate:          cov.start,
		EndDate:            cov.end,
		DestinationCountry: req.DestinationCountry,
		Mode:               cov.mode,
		ClientIP:           c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Policies handles GET /api/v1/insurance/policies.
func (h *InsuranceHandler) Policies(c *gin.Context) {
	policies, err := h.insuranceSvc.ListPolicies(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, policies)
}

// Payments handles GET /api/v1/insurance/payments?policy_id=&status=.
func (h *InsuranceHandler) Payments(c *gin.Context) {
	status := domain.PaymentStatus(c.Query("status"))
	switch status {
	case "", domain.PaymentStatusCompleted, domain.PaymentStatusNotDue:
	default:
		response.Error(c, apperror.Validation("status must be Completed or Not Due"))
		return
	}

	payments, err := h.insuranceSvc.ListPayments(c.Request.Context(), ports.PaymentFilter{
		UserID:   middleware.UserID(c),
		PolicyID: c.Query("policy_id"),
		Status:   status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, payments)
}
