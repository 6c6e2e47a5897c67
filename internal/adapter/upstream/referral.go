package upstream

import (
	"context"
	"net/http"
	"net/url"

	"cashout-gateway/internal/core/domain"

	"github.com/shopspring/decimal"
)

// ReferralClient implements ports.ReferralGateway.
type ReferralClient struct {
	c *Client
}

// NewReferralClient creates a referral service adapter.
func NewReferralClient(c *Client) *ReferralClient {
	return &ReferralClient{c: c}
}

type useCodeRequest struct {
	NewUserID    string `json:"NewUserId"`
	ReferralCode string `json:"ReferralCode"`
}

type completionResponse struct {
	Success    bool   `json:"Success"`
	Message    string `json:"Message"`
	ReferrerID string `json:"ReferrerId"`
	RefereeID  string `json:"RefereeId"`
}

func (r completionResponse) toDomain() *domain.ReferralCompletion {
	return &domain.ReferralCompletion{
		Success:    r.Success,
		Message:    r.Message,
		ReferrerID: r.ReferrerID,
		RefereeID:  r.RefereeID,
	}
}

// UseCode links a newly registered user to a referrer. Success=false is
// returned as a result.
func (a *ReferralClient) UseCode(ctx context.Context, newUserID, code string) (*domain.ReferralCompletion, error) {
	var out completionResponse
	body := useCodeRequest{NewUserID: newUserID, ReferralCode: code}
	if _, err := a.c.DoJSON(ctx, http.MethodPost, "/referrals/use", nil, body, &out); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

type completeRequest struct {
	UserID string `json:"UserId"`
}

// Complete asks the referral service to settle the user's pending referral.
// Success=false (nothing pending) is returned as a result.
func (a *ReferralClient) Complete(ctx context.Context, userID string) (*domain.ReferralCompletion, error) {
	var out completionResponse
	if _, err := a.c.DoJSON(ctx, http.MethodPost, "/referrals/complete", nil, completeRequest{UserID: userID}, &out); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

type referralInfoResponse struct {
	ReferralCode       string          `json:"ReferralCode"`
	TotalReferrals     int             `json:"TotalReferrals"`
	CompletedReferrals int             `json:"CompletedReferrals"`
	PendingReferrals   int             `json:"PendingReferrals"`
	TotalEarnings      decimal.Decimal `json:"TotalEarnings"`
}

func (a *ReferralClient) GetInfo(ctx context.Context, userID string) (*domain.ReferralInfo, error) {
	var out referralInfoResponse
	if _, err := a.c.DoJSON(ctx, http.MethodGet, "/GetReferralInfo", url.Values{"UserId": {userID}}, nil, &out); err != nil {
		return nil, err
	}
	return &domain.ReferralInfo{
		ReferralCode:       out.ReferralCode,
		TotalReferrals:     out.TotalReferrals,
		CompletedReferrals: out.CompletedReferrals,
		PendingReferrals:   out.PendingReferrals,
		TotalEarnings:      out.TotalEarnings,
	}, nil
}
