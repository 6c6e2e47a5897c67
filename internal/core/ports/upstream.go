package ports

//go:generate mockgen -source=upstream.go -destination=mocks/upstream_mock.go -package=mocks

import (
	"context"
	"time"

	"cashout-gateway/internal/core/domain"

	"github.com/shopspring/decimal"
)

// WalletGateway talks to the wallet service.
type WalletGateway interface {
	// ListWallets returns a result with Success=false rather than an error when
	// the service answers but reports no wallets.
	ListWallets(ctx context.Context, userID string) (*WalletList, error)
	GetWallet(ctx context.Context, userID, currency string) (*domain.Wallet, error)
	UpdateBalance(ctx context.Context, update WalletUpdate) (*WalletUpdateResult, error)
	CreateWallet(ctx context.Context, userID, currency string) error
}

// WalletList is the wallet service's listing answer.
type WalletList struct {
	Success bool
	Message string
	Wallets []domain.Wallet
}

// WalletUpdate applies a signed delta to a wallet; negative amounts debit.
type WalletUpdate struct {
	UserID       string
	CurrencyCode string
	Amount       decimal.Decimal
}

// WalletUpdateResult is the wallet service's answer to a balance update.
type WalletUpdateResult struct {
	Success    bool             `json:"success"`
	Message    string           `json:"message"`
	NewBalance *decimal.Decimal `json:"new_balance,omitempty"`
}

// ExchangeGateway talks to the exchange-rate service.
type ExchangeGateway interface {
	GetRate(ctx context.Context, from, to string) (decimal.Decimal, error)
	Convert(ctx context.Context, req ConversionRequest) (*ConversionResult, error)
}

type ConversionRequest struct {
	UserID       string
	FromCurrency string
	ToCurrency   string
	Amount       decimal.Decimal
}

type ConversionResult struct {
	Success          bool            `json:"success"`
	ConvertedAmount  decimal.Decimal `json:"converted_amount"`
	TransactionID    string          `json:"transaction_id,omitempty"`
	UsedExchangeRate decimal.Decimal `json:"used_exchange_rate"`
	ErrorMessage     string          `json:"error_message,omitempty"`
}

// TransferGateway talks to the peer transfer service.
type TransferGateway interface {
	SendFund(ctx context.Context, req SendFundRequest) (*SendFundResult, error)
	ListTransfers(ctx context.Context, userID string) ([]domain.Transfer, error)
}

type SendFundRequest struct {
	FromUserID   string
	ToUserID     string
	Amount       decimal.Decimal
	CurrencyCode string
}

type SendFundResult struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	TransferID string `json:"transfer_id,omitempty"`
}

// InsuranceGateway talks to the insurance plan and policy/payment services.
type InsuranceGateway interface {
	ListPlans(ctx context.Context) ([]domain.InsurancePlan, error)
	// GetPlan returns nil, nil when the plan does not exist.
	GetPlan(ctx context.Context, planID int64) (*domain.InsurancePlan, error)
	CalculatePremium(ctx context.Context, req PremiumRequest) (decimal.Decimal, error)
	AddPolicy(ctx context.Context, req PolicyRequest) (string, error)
	AddPayment(ctx context.Context, rec PaymentRecord) error
	ListPolicies(ctx context.Context, userID string) ([]domain.Policy, error)
	ListPayments(ctx context.Context, userID string) ([]domain.PolicyPayment, error)
}

type PremiumRequest struct {
	PlanID             int64
	StartDate          time.Time
	EndDate            time.Time
	DestinationCountry string
}

type PolicyRequest struct {
	UserID             string
	PlanID             int64
	StartDate          time.Time
	EndDate            time.Time
	IssuedDate         time.Time
	Premium            decimal.Decimal
	DestinationCountry string
}

type PaymentRecord struct {
	UserID          string
	PolicyID        string
	WalletID        string
	PaymentDate     time.Time
	Amount          decimal.Decimal
	Description     string
	Status          domain.PaymentStatus
	Type            domain.PaymentType
	PolicyStartDate time.Time
	PolicyEndDate   time.Time
}

// BankGateway forwards settled amounts to the partner bank.
type BankGateway interface {
	Configured() bool
	DepositCash(ctx context.Context, dep BankDeposit) (*BankDepositResult, error)
}

type BankDeposit struct {
	TransactionID string
	AccountID     string
	Amount        decimal.Decimal
	Narrative     string
}

// BankDepositResult carries the gateway's answer verbatim.
type BankDepositResult struct {
	Status int
	Body   any
}

// UserGateway talks to the user-auth service.
type UserGateway interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Register(ctx context.Context, reg Registration) (*domain.User, error)
	// GetUser returns nil, nil for an unknown user.
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	// FindUserIDByPhone returns "" for an unknown phone number.
	FindUserIDByPhone(ctx context.Context, phone string) (string, error)
}

type Registration struct {
	Name        string
	Email       string
	PhoneNumber string
	Password    string
}

// ReferralGateway talks to the referral service.
type ReferralGateway interface {
	UseCode(ctx context.Context, newUserID, code string) (*domain.ReferralCompletion, error)
	Complete(ctx context.Context, userID string) (*domain.ReferralCompletion, error)
	GetInfo(ctx context.Context, userID string) (*domain.ReferralInfo, error)
}
