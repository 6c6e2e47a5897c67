package dto

import "github.com/shopspring/decimal"

// Amounts are validated by the services so that a zero or negative value
// yields the same error code whichever route it arrives on.

// LoginRequest is the request body for POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,max=128" sanitize:"-"`
}

// RegisterRequest is the request body for POST /api/v1/auth/register.
type RegisterRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=100"`
	Email        string `json:"email" binding:"required,email,max=254"`
	PhoneNumber  string `json:"phone_number" binding:"required,phone"`
	Password     string `json:"password" binding:"required,min=6,max=128" sanitize:"-"`
	ReferralCode string `json:"referral_code,omitempty" binding:"omitempty,safe_id,max=32"`
}

// DepositRequest is the request body for POST /api/v1/wallets/deposit.
type DepositRequest struct {
	CurrencyCode string          `json:"currency_code" binding:"required,currency"`
	Amount       decimal.Decimal `json:"amount"`
}

// ConvertRequest is the request body for POST /api/v1/exchange/convert.
type ConvertRequest struct {
	FromCurrency string          `json:"from_currency" binding:"required,currency"`
	ToCurrency   string          `json:"to_currency" binding:"required,currency"`
	Amount       decimal.Decimal `json:"amount"`
}

// TransferRequest names the recipient by user ID or phone number.
type TransferRequest struct {
	RecipientUserID string          `json:"recipient_user_id,omitempty" binding:"required_without=RecipientPhone,omitempty,safe_id"`
	RecipientPhone  string          `json:"recipient_phone,omitempty" binding:"omitempty,phone"`
	CurrencyCode    string          `json:"currency_code" binding:"required,currency"`
	Amount          decimal.Decimal `json:"amount"`
}

// ExternalPaymentRequest is the body of a scanned merchant QR payment.
type ExternalPaymentRequest struct {
	AccountID     string          `json:"account_id" binding:"required,safe_id,max=64"`
	TransactionID string          `json:"transaction_id" binding:"required,safe_id,max=100"`
	CurrencyCode  string          `json:"currency_code" binding:"required,currency"`
	Amount        decimal.Decimal `json:"amount"`
	Narrative     string          `json:"narrative,omitempty" binding:"max=140"`
}

// InsuranceRequest is shared by quote and purchase. Dates are YYYY-MM-DD.
type InsuranceRequest struct {
	PlanID             int64  `json:"plan_id" binding:"required,gt=0"`
	WalletID           string `json:"wallet_id,omitempty" binding:"omitempty,safe_id"`
	StartDate          string `json:"start_date" binding:"required,iso_date"`
	EndDate            string `json:"end_date" binding:"required,iso_date"`
	DestinationCountry string `json:"destination_country" binding:"required,max=100"`
	PaymentMode        string `json:"payment_mode,omitempty" binding:"omitempty,oneof=full monthly"`
}

// ApplyReferralRequest is the body of POST /api/v1/referrals/apply.
type ApplyReferralRequest struct {
	Code string `json:"code" binding:"required,safe_id,max=32"`
}

// QRDecodeRequest carries the raw text read from a QR image.
type QRDecodeRequest struct {
	Payload string `json:"payload" binding:"required,max=2048" sanitize:"-"`
}

// MerchantQRRequest is the body of POST /api/v1/qr/merchant.
type MerchantQRRequest struct {
	MerchantID   string `json:"merchant_id" binding:"required,safe_id,max=64"`
	MerchantName string `json:"merchant_name" binding:"required,max=100"`
}

// QRResponse pairs a payload with the string to render in the QR image.
type QRResponse struct {
	Payload any    `json:"payload"`
	Content string `json:"content"`
}
