package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PolicyStatus is owned by the policy service and only observed here.
type PolicyStatus string

const (
	PolicyStatusSubmitted PolicyStatus = "Submitted"
	PolicyStatusActive    PolicyStatus = "Active"
	PolicyStatusInforce   PolicyStatus = "Inforce"
	PolicyStatusMatured   PolicyStatus = "Matured"
)

// PaymentStatus of a single policy instalment.
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusNotDue    PaymentStatus = "Not Due"
)

// PaymentType recorded against every instalment of a policy.
type PaymentType string

const (
	PaymentTypeFull    PaymentType = "Full"
	PaymentTypeMonthly PaymentType = "Monthly"
)

// PaymentMode is what the buyer asks for at checkout.
type PaymentMode string

const (
	PaymentModeFull    PaymentMode = "full"
	PaymentModeMonthly PaymentMode = "monthly"
)

// Type maps a payment mode to the recorded payment type.
func (m PaymentMode) Type() PaymentType {
	if m == PaymentModeMonthly {
		return PaymentTypeMonthly
	}
	return PaymentTypeFull
}

// InsurancePlan is a purchasable travel insurance plan.
type InsurancePlan struct {
	PlanID         int64           `json:"plan_id"`
	PlanName       string          `json:"plan_name"`
	PlanPremium    decimal.Decimal `json:"plan_premium"`
	PlanCountry    string          `json:"plan_country"`
	PlanProvider   string          `json:"plan_provider"`
	CoverageAmount string          `json:"coverage_amount"`
	CoverageScope  string          `json:"coverage_scope"`
}

// Policy is an issued or submitted insurance policy.
type Policy struct {
	PolicyID           string          `json:"policy_id"`
	UserID             string          `json:"user_id"`
	PlanID             int64           `json:"plan_id"`
	PlanName           string          `json:"plan_name,omitempty"`
	StartDate          time.Time       `json:"start_date"`
	EndDate            time.Time       `json:"end_date"`
	IssuedDate         time.Time       `json:"issued_date"`
	Premium            decimal.Decimal `json:"premium"`
	DestinationCountry string          `json:"destination_country"`
	Status             PolicyStatus    `json:"status"`
}

// PolicyPayment is one recorded instalment of a policy.
type PolicyPayment struct {
	PaymentID       string          `json:"payment_id"`
	UserID          string          `json:"user_id"`
	PolicyID        string          `json:"policy_id"`
	WalletID        string          `json:"wallet_id"`
	PaymentDate     time.Time       `json:"payment_date"`
	PaymentAmount   decimal.Decimal `json:"payment_amount"`
	PaymentDesc     string          `json:"payment_desc"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
	PaymentType     PaymentType     `json:"payment_type"`
	PolicyStartDate time.Time       `json:"policy_start_date"`
	PolicyEndDate   time.Time       `json:"policy_end_date"`
}
