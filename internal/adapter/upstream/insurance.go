package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"cashout-gateway/internal/core/domain"
	"cashout-gateway/internal/core/ports"

	"github.com/shopspring/decimal"
)

// InsuranceClient implements ports.InsuranceGateway. Plans and policies are
// served by two different services.
type InsuranceClient struct {
	plans    *Client
	policies *Client
}

// NewInsuranceClient creates an insurance adapter over the plan and policy services.
func NewInsuranceClient(plans, policies *Client) *InsuranceClient {
	return &InsuranceClient{plans: plans, policies: policies}
}

type planDTO struct {
	PlanID         flexString      `json:"plan_ID"`
	PlanName       string          `json:"plan_Name"`
	PlanPremium    decimal.Decimal `json:"plan_Premium"`
	PlanCountry    string          `json:"plan_Country"`
	PlanProvider   string          `json:"plan_Provider"`
	CoverageAmount flexString      `json:"coverage_Amount"`
	CoverageScope  string          `json:"coverage_Scope"`
}

func (p planDTO) toDomain() domain.InsurancePlan {
	return domain.InsurancePlan{
		PlanID:         p.PlanID.Int64(),
		PlanName:       p.PlanName,
		PlanPremium:    p.PlanPremium,
		PlanCountry:    p.PlanCountry,
		PlanProvider:   p.PlanProvider,
		CoverageAmount: p.CoverageAmount.String(),
		CoverageScope:  p.CoverageScope,
	}
}

type planListResponse struct {
	InsurancePlanList []planDTO `json:"InsurancePlanList"`
	InsurancePlan     *planDTO  `json:"InsurancePlan"`
	Result            *struct {
		Success      bool   `json:"Success"`
		ErrorMessage string `json:"ErrorMessage"`
	} `json:"Result"`
}

func (a *InsuranceClient) ListPlans(ctx context.Context) ([]domain.InsurancePlan, error) {
	var out planListResponse
	resp, err := a.plans.DoJSON(ctx, http.MethodGet, "/insuranceplans", nil, nil, &out)
	if err != nil {
		return nil, err
	}
	if out.Result != nil && !out.Result.Success && len(out.InsurancePlanList) == 0 {
		return nil, a.plans.Rejected(resp, out.Result.ErrorMessage)
	}

	plans := make([]domain.InsurancePlan, 0, len(out.InsurancePlanList))
	for _, p := range out.InsurancePlanList {
		plans = append(plans, p.toDomain())
	}
	return plans, nil
}

func (a *InsuranceClient) GetPlan(ctx context.Context, planID int64) (*domain.InsurancePlan, error) {
	var out planListResponse
	q := url.Values{"planID": {strconv.FormatInt(planID, 10)}}
	if _, err := a.plans.DoJSON(ctx, http.MethodGet, "/specificPlan", q, nil, &out); err != nil {
		if ue, ok := ports.AsUpstreamError(err); ok && ue.Status == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}

	dto := out.InsurancePlan
	if dto == nil && len(out.InsurancePlanList) > 0 {
		dto = &out.InsurancePlanList[0]
	}
	if dto == nil || dto.PlanID.Int64() == 0 {
		return nil, nil
	}
	plan := dto.toDomain()
	return &plan, nil
}

type premiumRequest struct {
	PlanID             int64  `json:"plan_ID"`
	StartDate          string `json:"policy_StartDate"`
	EndDate            string `json:"policy_EndDate"`
	DestinationCountry string `json:"policy_DestinationCountry"`
}

// CalculatePremium asks the policy service to price a coverage period. The
// service answers with a bare JSON number.
func (a *InsuranceClient) CalculatePremium(ctx context.Context, req ports.PremiumRequest) (decimal.Decimal, error) {
	body := premiumRequest{
		PlanID:             req.PlanID,
		StartDate:          req.StartDate.Format(domain.DateLayout),
		EndDate:            req.EndDate.Format(domain.DateLayout),
		DestinationCountry: req.DestinationCountry,
	}
	resp, err := a.policies.Do(ctx, http.MethodPost, "/payments_v1/calculatePremium", nil, body)
	if err != nil {
		return decimal.Zero, err
	}

	premium, ok := premiumFrom(resp.Body)
	if !ok {
		return decimal.Zero, a.policies.Rejected(resp, "no premium in response")
	}
	if !premium.IsPositive() {
		return decimal.Zero, a.policies.Rejected(resp, "premium must be positive")
	}
	return premium, nil
}

func premiumFrom(body []byte) (decimal.Decimal, bool) {
	body = bytes.TrimSpace(body)
	var d decimal.Decimal
	if err := json.Unmarshal(body, &d); err == nil {
		return d, true
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return decimal.Zero, false
	}
	for _, key := range []string{"premium", "Premium", "policy_Premium"} {
		if raw, ok := fields[key]; ok {
			if err := json.Unmarshal(raw, &d); err == nil {
				return d, true
			}
		}
	}
	return decimal.Zero, false
}

type addPolicyRequest struct {
	UserID             string          `json:"user_ID"`
	PlanID             int64           `json:"plan_ID"`
	StartDate          string          `json:"policy_StartDate"`
	EndDate            string          `json:"policy_EndDate"`
	IssuedDate         string          `json:"policy_IssuedDate"`
	Premium            decimal.Decimal `json:"policy_Premium"`
	DestinationCountry string          `json:"policy_DestinationCountry"`
	Status             string          `json:"policy_Status"`
}

type addPolicyResponse struct {
	PolicyID flexString `json:"policy_ID"`
}

// AddPolicy submits a new policy and returns its ID.
func (a *InsuranceClient) AddPolicy(ctx context.Context, req ports.PolicyRequest) (string, error) {
	body := addPolicyRequest{
		UserID:             req.UserID,
		PlanID:             req.PlanID,
		StartDate:          req.StartDate.Format(domain.DateLayout),
		EndDate:            req.EndDate.Format(domain.DateLayout),
		IssuedDate:         req.IssuedDate.Format(domain.DateLayout),
		Premium:            req.Premium,
		DestinationCountry: req.DestinationCountry,
		Status:             string(domain.PolicyStatusSubmitted),
	}
	var out addPolicyResponse
	resp, err := a.policies.DoJSON(ctx, http.MethodPost, "/policy_v1/addPolicy", nil, body, &out)
	if err != nil {
		return "", err
	}
	if out.PolicyID == "" || out.PolicyID == "0" {
		return "", a.policies.Rejected(resp, "no policy_ID in response")
	}
	return out.PolicyID.String(), nil
}

type addPaymentRequest struct {
	UserID          string          `json:"user_ID"`
	PolicyID        string          `json:"policy_ID"`
	WalletID        string          `json:"wallet_ID"`
	PaymentDate     string          `json:"payment_date"`
	PaymentAmount   decimal.Decimal `json:"payment_amount"`
	PaymentDesc     string          `json:"payment_desc"`
	PaymentStatus   string          `json:"payment_status"`
	PaymentType     string          `json:"payment_Type"`
	PolicyStartDate string          `json:"policy_StartDate"`
	PolicyEndDate   string          `json:"policy_EndDate"`
}

// AddPayment records one instalment against a policy.
func (a *InsuranceClient) AddPayment(ctx context.Context, rec ports.PaymentRecord) error {
	body := addPaymentRequest{
		UserID:          rec.UserID,
		PolicyID:        rec.PolicyID,
		WalletID:        rec.WalletID,
		PaymentDate:     rec.PaymentDate.Format(domain.DateLayout),
		PaymentAmount:   rec.Amount,
		PaymentDesc:     rec.Description,
		PaymentStatus:   string(rec.Status),
		PaymentType:     string(rec.Type),
		PolicyStartDate: rec.PolicyStartDate.Format(domain.DateLayout),
		PolicyEndDate:   rec.PolicyEndDate.Format(domain.DateLayout),
	}
	resp, err := a.policies.Do(ctx, http.MethodPost, "/payments_v1/addPayment", nil, body)
	if err != nil {
		return err
	}

	var ack struct {
		Success *bool  `json:"Success"`
		Message string `json:"Message"`
	}
	if json.Unmarshal(resp.Body, &ack) == nil && ack.Success != nil && !*ack.Success {
		return a.policies.Rejected(resp, ack.Message)
	}
	return nil
}

type policyDTO struct {
	PolicyID           flexString      `json:"policy_ID"`
	UserID             string          `json:"user_ID"`
	PlanID             flexString      `json:"plan_ID"`
	PlanName           string          `json:"plan_Name"`
	StartDate          string          `json:"policy_StartDate"`
	EndDate            string          `json:"policy_EndDate"`
	IssuedDate         string          `json:"policy_IssuedDate"`
	Premium            decimal.Decimal `json:"policy_Premium"`
	DestinationCountry string          `json:"policy_DestinationCountry"`
	Status             string          `json:"policy_Status"`
}

type policyListResponse struct {
	Policies []policyDTO `json:"policyAPIList"`
}

func (a *InsuranceClient) ListPolicies(ctx context.Context, userID string) ([]domain.Policy, error) {
	var out policyListResponse
	if _, err := a.policies.DoJSON(ctx, http.MethodGet, "/policy_v1/viewPolicies", url.Values{"user_ID": {userID}}, nil, &out); err != nil {
		return nil, err
	}

	policies := make([]domain.Policy, 0, len(out.Policies))
	for _, p := range out.Policies {
		policies = append(policies, domain.Policy{
			PolicyID:           p.PolicyID.String(),
			UserID:             p.UserID,
			PlanID:             p.PlanID.Int64(),
			PlanName:           p.PlanName,
			StartDate:          parseTime(p.StartDate),
			EndDate:            parseTime(p.EndDate),
			IssuedDate:         parseTime(p.IssuedDate),
			Premium:            p.Premium,
			DestinationCountry: p.DestinationCountry,
			Status:             domain.PolicyStatus(p.Status),
		})
	}
	return policies, nil
}

type paymentDTO struct {
	PaymentID       flexString      `json:"payment_ID"`
	UserID          string          `json:"user_ID"`
	PolicyID        flexString      `json:"policy_ID"`
	WalletID        flexString      `json:"wallet_ID"`
	PaymentDate     string          `json:"payment_date"`
	PaymentAmount   decimal.Decimal `json:"payment_amount"`
	PaymentDesc     string          `json:"payment_desc"`
	PaymentStatus   string          `json:"payment_status"`
	PaymentType     string          `json:"payment_Type"`
	PolicyStartDate string          `json:"policy_StartDate"`
	PolicyEndDate   string          `json:"policy_EndDate"`
}

type paymentListResponse struct {
	Payments []paymentDTO `json:"paymentAPIList"`
}

func (a *InsuranceClient) ListPayments(ctx context.Context, userID string) ([]domain.PolicyPayment, error) {
	var out paymentListResponse
	if _, err := a.policies.DoJSON(ctx, http.MethodGet, "/payments_v1/viewPayments", url.Values{"user_ID": {userID}}, nil, &out); err != nil {
		return nil, err
	}

	payments := make([]domain.PolicyPayment, 0, len(out.Payments))
	for _, p := range out.Payments {
		payments = append(payments, domain.PolicyPayment{
			PaymentID:       p.PaymentID.String(),
			UserID:          p.UserID,
			PolicyID:        p.PolicyID.String(),
			WalletID:        p.WalletID.String(),
			PaymentDate:     parseTime(p.PaymentDate),
			PaymentAmount:   p.PaymentAmount,
			PaymentDesc:     p.PaymentDesc,
			PaymentStatus:   domain.PaymentStatus(p.PaymentStatus),
			PaymentType:     domain.PaymentType(p.PaymentType),
			PolicyStartDate: parseTime(p.PolicyStartDate),
			PolicyEndDate:   parseTime(p.PolicyEndDate),
		})
	}
	return payments, nil
}
