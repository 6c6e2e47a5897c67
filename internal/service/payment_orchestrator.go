package service

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"cashout-gateway/internal/core/domain"
	"cashout-gateway/internal/core/ports"
	"cashout-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const defaultNarrative = "QR Payment"

// ExternalPaymentServiceImpl implements ports.ExternalPaymentService.
//
// A run debits the payer's wallet and then deposits the same amount with the
// partner bank. The steps are strictly ordered and a failed deposit is not
// compensated: the debit stands, the caller is told to contact support and the
// run is recorded as PAYMENT_UNSETTLED.
type ExternalPaymentServiceImpl struct {
	wallets ports.WalletGateway
	bank    ports.BankGateway
	gate    ports.ReferralGate
	audit   ports.AuditService
	log     zerolog.Logger
}

// NewExternalPaymentService creates a new ExternalPaymentServiceImpl. gate may be nil.
func NewExternalPaymentService(
	wallets ports.WalletGateway,
	bank ports.BankGateway,
	gate ports.ReferralGate,
	audit ports.AuditService,
	log zerolog.Logger,
) *ExternalPaymentServiceImpl {
	return &ExternalPaymentServiceImpl{
		wallets: wallets,
		bank:    bank,
		gate:    gate,
		audit:   audit,
		log:     log,
	}
}

func (s *ExternalPaymentServiceImpl) Pay(ctx context.Context, req ports.ExternalPaymentRequest) (*ports.ExternalPaymentResult, error) {
	if req.UserID == "" || req.AccountID == "" || req.TransactionID == "" || req.CurrencyCode == "" {
		return nil, apperror.ErrMissingFields()
	}
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if !s.bank.Configured() {
		s.log.Error().Msg("bank gateway credentials are not configured")
		return nil, apperror.ErrConfiguration("Payment gateway is not configured")
	}

	currency := domain.NormalizeCurrency(req.CurrencyCode)
	narrative := req.Narrative
	if narrative == "" {
		narrative = defaultNarrative
	}
	log := s.log.With().
		Str("user_id", req.UserID).
		Str("transaction_id", req.TransactionID).
		Str("currency", currency).
		Str("amount", req.Amount.String()).
		Logger()

	// Step 1: balance check
	list, err := s.wallets.ListWallets(ctx, req.UserID)
	if err != nil {
		orchestrationsTotal.WithLabelValues(flowExternalPayment, outcomeFailed).Inc()
		return nil, upstreamError("Failed to check wallet balance", http.StatusInternalServerError, err)
	}
	if !list.Success || len(list.Wallets) == 0 {
		orchestrationsTotal.WithLabelValues(flowExternalPayment, outcomeRejected).Inc()
		return nil, apperror.ErrNoWallets()
	}
	wallet := domain.FindWalletByCurrency(list.Wallets, currency)
	if wallet == nil {
		orchestrationsTotal.WithLabelValues(flowExternalPayment, outcomeRejected).Inc()
		return nil, apperror.ErrNotFound("Wallet")
	}
	if !wallet.Covers(req.Amount) {
		orchestrationsTotal.WithLabelValues(flowExternalPayment, outcomeRejected).Inc()
		return nil, apperror.ErrInsufficientBalance(wallet.Balance, req.Amount)
	}

	// Step 2: debit
	update, err := s.wallets.UpdateBalance(ctx, ports.WalletUpdate{
		UserID:       req.UserID,
		CurrencyCode: currency,
		Amount:       req.Amount.Neg(),
	})
	if err != nil {
		orchestrationsTotal.WithLabelValues(flowExternalPayment, outcomeFailed).Inc()
		return nil, upstreamError("Failed to deduct from wallet", http.StatusInternalServerError, err)
	}
	if !update.Success {
		orchestrationsTotal.WithLabelValues(flowExternalPayment, outcomeFailed).Inc()
		return nil, apperror.Upstream("Failed to deduct from wallet", http.StatusInternalServerError, nil).
			WithDetails(update.Message)
	}
	log.Info().Msg("wallet debited for external payment")

	// Step 3: settle with the bank
	deposit, err := s.bank.DepositCash(ctx, ports.BankDeposit{
		TransactionID: req.TransactionID,
		AccountID:     req.AccountID,
		Amount:        req.Amount,
		Narrative:     narrative,
	})
	if err != nil {
		log.Error().Err(err).Msg("wallet debited but bank transfer failed")
		orchestrationsTotal.WithLabelValues(flowExternalPayment, outcomeUnsettled).Inc()
		s.record(ctx, req, domain.AuditActionPaymentUnsettled, currency, err)
		return nil, upstreamError("Bank transfer failed", relayStatus(err), err).
			WithNote(apperror.NoteDebitedNotSettled)
	}

	log.Info().Int("gateway_status", deposit.Status).Msg("external payment settled")
	orchestrationsTotal.WithLabelValues(flowExternalPayment, outcomeSucceeded).Inc()
	s.record(ctx, req, domain.AuditActionExternalPayment, currency, nil)
	completeReferral(ctx, s.gate, s.log, req.UserID)

	return &ports.ExternalPaymentResult{
		Success:         true,
		TransactionID:   req.TransactionID,
		Message:         "Payment completed successfully",
		GatewayResponse: deposit.Body,
	}, nil
}

func (s *ExternalPaymentServiceImpl) record(ctx context.Context, req ports.ExternalPaymentRequest, action domain.AuditAction, currency string, cause error) {
	if s.audit == nil {
		return
	}
	details := map[string]any{
		"account_id": req.AccountID,
		"amount":     req.Amount,
		"currency":   currency,
	}
	if cause != nil {
		details["error"] = cause.Error()
	}
	s.audit.Log(ctx, newAuditEntry(req.UserID, action, "external_payment", req.TransactionID, details, req.ClientIP))
}

func newAuditEntry(userID string, action domain.AuditAction, resourceType, resourceID string, details map[string]any, ip string) *domain.AuditLog {
	entry := &domain.AuditLog{
		ID:           uuid.New(),
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ip,
		CreatedAt:    time.Now().UTC(),
	}
	if len(details) > 0 {
		if b, err := json.Marshal(details); err == nil {
			entry.Details = string(b)
		}
	}
	return entry
}
