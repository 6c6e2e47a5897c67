package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionExternalPayment   AuditAction = "EXTERNAL_PAYMENT"
	AuditActionPaymentUnsettled  AuditAction = "PAYMENT_UNSETTLED"
	AuditActionInsurancePurchase AuditAction = "INSURANCE_PURCHASE"
	AuditActionInsuranceFailed   AuditAction = "INSURANCE_PURCHASE_FAILED"
	AuditActionDeposit           AuditAction = "DEPOSIT"
	AuditActionTransfer          AuditAction = "TRANSFER"
	AuditActionExchange          AuditAction = "EXCHANGE"
	AuditActionRegister          AuditAction = "REGISTER"
	AuditActionLogin             AuditAction = "LOGIN"
	AuditActionReferralApplied   AuditAction = "REFERRAL_APPLIED"
	AuditActionGateCleared       AuditAction = "REFERRAL_GATE_CLEARED"
	AuditActionAccessDenied      AuditAction = "ACCESS_DENIED"
	AuditActionRateLimited       AuditAction = "RATE_LIMITED"
)

// AuditLog records a single audited action.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	UserID       string      `json:"user_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
