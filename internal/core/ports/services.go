package ports

//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mocks

import (
	"context"
	"time"

	"cashout-gateway/internal/core/domain"

	"github.com/shopspring/decimal"
)

// --- Service Ports (Business Logic) ---

// ExternalPaymentService debits a wallet and settles the amount with the bank.
type ExternalPaymentService interface {
	Pay(ctx context.Context, req ExternalPaymentRequest) (*ExternalPaymentResult, error)
}

// ExternalPaymentRequest holds the input of a merchant QR payment.
type ExternalPaymentRequest struct {
	UserID        string
	AccountID     string
	TransactionID string
	CurrencyCode  string
	Amount        decimal.Decimal
	Narrative     string
	ClientIP      string
}

type ExternalPaymentResult struct {
	Success         bool   `json:"success"`
	TransactionID   string `json:"transactionId"`
	Message         string `json:"message"`
	GatewayResponse any    `json:"gatewayResponse,omitempty"`
}

// InsuranceService sells travel insurance and lists a user's policies.
type InsuranceService interface {
	ListPlans(ctx context.Context) ([]domain.InsurancePlan, error)
	GetPlan(ctx context.Context, planID int64) (*domain.InsurancePlan, error)
	Quote(ctx context.Context, req QuoteRequest) (*Quote, error)
	Purchase(ctx context.Context, req PurchaseRequest) (*PurchaseResult, error)
	ListPolicies(ctx context.Context, userID string) ([]domain.Policy, error)
	ListPayments(ctx context.Context, filter PaymentFilter) ([]domain.PolicyPayment, error)
}

type QuoteRequest struct {
	UserID             string
	PlanID             int64
	WalletID           string // optional; quotes in the reference currency when empty
	StartDate          time.Time
	EndDate            time.Time
	DestinationCountry string
	Mode               domain.PaymentMode
}

type Quote struct {
	Plan              *domain.InsurancePlan `json:"plan"`
	ReferenceCurrency string                `json:"reference_currency"`
	Premium           decimal.Decimal       `json:"premium"`
	Currency          string                `json:"currency"`
	ChargedPremium    decimal.Decimal       `json:"charged_premium"`
	ExchangeRate      *decimal.Decimal      `json:"exchange_rate,omitempty"`
	Months            int                   `json:"months"`
	MonthlyEligible   bool                  `json:"monthly_eligible"`
	Mode              domain.PaymentMode    `json:"mode"`
	Schedule          []domain.Instalment   `json:"schedule"`
	AmountDueNow      decimal.Decimal       `json:"amount_due_now"`
	Wallets           []domain.Wallet       `json:"wallets"`
	User              *domain.User          `json:"user,omitempty"`
}

type PurchaseRequest struct {
	UserID             string
	PlanID             int64
	WalletID           string
	StartDate          time.Time
	EndDate            time.Time
	DestinationCountry string
	Mode               domain.PaymentMode
	ClientIP           string
}

type PurchaseResult struct {
	PolicyID      string              `json:"policy_id"`
	Mode          domain.PaymentMode  `json:"mode"`
	Currency      string              `json:"currency"`
	Premium       decimal.Decimal     `json:"premium"`
	AmountCharged decimal.Decimal     `json:"amount_charged"`
	ExchangeRate  *decimal.Decimal    `json:"exchange_rate,omitempty"`
	Schedule      []domain.Instalment `json:"schedule"`
}

// PaymentFilter narrows a user's policy payments. Empty fields match all.
type PaymentFilter struct {
	UserID   string
	PolicyID string // substring match
	Status   domain.PaymentStatus
}

// WalletService lists and tops up wallets.
type WalletService interface {
	List(ctx context.Context, userID string) ([]domain.Wallet, error)
	Deposit(ctx context.Context, req DepositRequest) (*WalletUpdateResult, error)
}

type DepositRequest struct {
	UserID       string
	CurrencyCode string
	Amount       decimal.Decimal
	ClientIP     string
}

// ExchangeService quotes and performs currency conversions.
type ExchangeService interface {
	Rate(ctx context.Context, from, to string) (*RateQuote, error)
	Convert(ctx context.Context, req ConversionRequest) (*ConversionResult, error)
}

type RateQuote struct {
	FromCurrency string          `json:"from_currency"`
	ToCurrency   string          `json:"to_currency"`
	Rate         decimal.Decimal `json:"rate"`
}

// TransferService sends peer transfers and builds the transaction feed.
type TransferService interface {
	Send(ctx context.Context, req SendTransferRequest) (*SendFundResult, error)
	Recent(ctx context.Context, userID string, limit int) ([]domain.Transfer, error)
	Feed(ctx context.Context, userID string) ([]domain.FeedEntry, error)
}

// SendTransferRequest names the recipient by user ID or phone number.
type SendTransferRequest struct {
	FromUserID   string
	ToUserID     string
	ToPhone      string
	Amount       decimal.Decimal
	CurrencyCode string
	ClientIP     string
}

// ReferralGate completes a user's pending referral at most once.
type ReferralGate interface {
	// CompleteOnce calls the referral service unless userID was already checked.
	CompleteOnce(ctx context.Context, userID string) (*GateOutcome, error)
	Clear(ctx context.Context, userID string) error
	ClearAll(ctx context.Context) error
}

// GateOutcome reports what the referral gate did.
type GateOutcome struct {
	Checked    bool                       `json:"checked"` // remote endpoint was called
	Completion *domain.ReferralCompletion `json:"completion,omitempty"`
}

// ReferralService applies codes and reports referral stats.
type ReferralService interface {
	Apply(ctx context.Context, userID, code string) (*domain.ReferralCompletion, error)
	Info(ctx context.Context, userID string) (*domain.ReferralInfo, error)
}

// AuthService signs users in and out of the upstream user service.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
}

type RegisterRequest struct {
	Name         string
	Email        string
	PhoneNumber  string
	Password     string
	ReferralCode string
}

// Session is returned after a successful login.
type Session struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      domain.User `json:"user"`
}

type RegisterResult struct {
	Session
	WalletsCreated  []string `json:"wallets_created"`
	ReferralApplied bool     `json:"referral_applied"`
}

// TokenService handles JWT session tokens.
type TokenService interface {
	Generate(userID string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID string
}

// AuditService records audit entries without blocking the caller.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
