package domain

import "github.com/shopspring/decimal"

// User is a CashOut account holder as known to the user service.
type User struct {
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phone_number"`
	ReferralCode string `json:"referral_code,omitempty"`
}

// ReferralInfo summarises a user's referral activity.
type ReferralInfo struct {
	ReferralCode       string          `json:"referral_code"`
	TotalReferrals     int             `json:"total_referrals"`
	CompletedReferrals int             `json:"completed_referrals"`
	PendingReferrals   int             `json:"pending_referrals"`
	TotalEarnings      decimal.Decimal `json:"total_earnings"`
}

// ReferralCompletion is the referral service's answer to a completion check.
type ReferralCompletion struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	ReferrerID string `json:"referrer_id,omitempty"`
	RefereeID  string `json:"referee_id,omitempty"`
}
