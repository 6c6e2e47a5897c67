package service

import (
	"context"
	"net/http"

	"cashout-gateway/internal/core/domain"
	"cashout-gateway/internal/core/ports"
	"cashout-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	wallets ports.WalletGateway
	gate    ports.ReferralGate
	audit   ports.AuditService
	log     zerolog.Logger
}

func NewWalletService(wallets ports.WalletGateway, gate ports.ReferralGate, audit ports.AuditService, log zerolog.Logger) *WalletServiceImpl {
	return &WalletServiceImpl{wallets: wallets, gate: gate, audit: audit, log: log}
}

// List returns the user's wallets. A user the wallet service does not know
// has no wallets.
func (s *WalletServiceImpl) List(ctx context.Context, userID string) ([]domain.Wallet, error) {
	list, err := s.wallets.ListWallets(ctx, userID)
	if err != nil {
		return nil, upstreamError("Failed to fetch wallets", http.StatusInternalServerError, err)
	}
	if !list.Success || list.Wallets == nil {
		return []domain.Wallet{}, nil
	}
	return list.Wallets, nil
}

// Deposit credits amount to the user's wallet in the given currency.
func (s *WalletServiceImpl) Deposit(ctx context.Context, req ports.DepositRequest) (*ports.WalletUpdateResult, error) {
	if req.UserID == "" || req.CurrencyCode == "" {
		return nil, apperror.ErrMissingFields()
	}
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	currency := domain.NormalizeCurrency(req.CurrencyCode)
	if !domain.IsSupportedCurrency(currency) {
		return nil, apperror.Validation("Unsupported currency")
	}

	result, err := s.wallets.UpdateBalance(ctx, ports.WalletUpdate{
		UserID:       req.UserID,
		CurrencyCode: currency,
		Amount:       req.Amount,
	})
	if err != nil {
		return nil, upstreamError("Deposit failed", relayStatus(err), err)
	}
	if !result.Success {
		return nil, rejectedError("Deposit failed", result.Message)
	}

	s.log.Info().
		Str("user_id", req.UserID).
		Str("currency", currency).
		Str("amount", req.Amount.String()).
		Msg("deposit completed")
	if s.audit != nil {
		s.audit.Log(ctx, newAuditEntry(req.UserID, domain.AuditActionDeposit, "wallet", currency,
			map[string]any{"amount": req.Amount}, req.ClientIP))
	}
	completeReferral(ctx, s.gate, s.log, req.UserID)

	return result, nil
}
