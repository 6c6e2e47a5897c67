package service

import (
	"context"
	"sort"
	"strings"

	"cashout-gateway/internal/core/domain"
	"cashout-gateway/internal/core/ports"
	"cashout-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

const defaultRecentLimit = 10

// TransferServiceImpl implements ports.TransferService.
type TransferServiceImpl struct {
	transfers ports.TransferGateway
	users     ports.UserGateway
	gate      ports.ReferralGate
	audit     ports.AuditService
	log       zerolog.Logger
}

func NewTransferService(
	transfers ports.TransferGateway,
	users ports.UserGateway,
	gate ports.ReferralGate,
	audit ports.AuditService,
	log zerolog.Logger,
) *TransferServiceImpl {
	return &TransferServiceImpl{
		transfers: transfers,
		users:     users,
		gate:      gate,
		audit:     audit,
		log:       log,
	}
}

// Send transfers funds to another user, named by user ID or phone number.
func (s *TransferServiceImpl) Send(ctx context.Context, req ports.SendTransferRequest) (*ports.SendFundResult, error) {
	req.ToPhone = strings.TrimSpace(req.ToPhone)
	if req.FromUserID == "" || req.CurrencyCode == "" || (req.ToUserID == "" && req.ToPhone == "") {
		return nil, apperror.ErrMissingFields()
	}
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	currency := domain.NormalizeCurrency(req.CurrencyCode)
	if !domain.IsSupportedCurrency(currency) {
		return nil, apperror.Validation("Unsupported currency")
	}

	recipient := req.ToUserID
	if recipient == "" {
		id, err := s.users.FindUserIDByPhone(ctx, req.ToPhone)
		if err != nil {
			return nil, upstreamError("Failed to look up recipient", relayStatus(err), err)
		}
		if id == "" {
			return nil, apperror.ErrNotFound("Recipient")
		}
		recipient = id
	}
	if recipient == req.FromUserID {
		return nil, apperror.Validation("Cannot transfer to yourself")
	}

	result, err := s.transfers.SendFund(ctx, ports.SendFundRequest{
		FromUserID:   req.FromUserID,
		ToUserID:     recipient,
		Amount:       req.Amount,
		CurrencyCode: currency,
	})
	if err != nil {
		if msg, ok := remoteRejection(err); ok {
			return nil, apperror.Validation(msg)
		}
		return nil, upstreamError("Transfer failed", relayStatus(err), err)
	}

	s.log.Info().
		Str("from_user_id", req.FromUserID).
		Str("to_user_id", recipient).
		Str("currency", currency).
		Str("amount", req.Amount.String()).
		Msg("transfer sent")
	if s.audit != nil {
		s.audit.Log(ctx, newAuditEntry(req.FromUserID, domain.AuditActionTransfer, "transfer", result.TransferID,
			map[string]any{"to_user_id": recipient, "amount": req.Amount, "currency": currency}, req.ClientIP))
	}
	completeReferral(ctx, s.gate, s.log, req.FromUserID)

	return result, nil
}

// Recent returns the user's latest transfers, newest first.
func (s *TransferServiceImpl) Recent(ctx context.Context, userID string, limit int) ([]domain.Transfer, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	transfers, err := s.list(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(transfers, func(i, j int) bool {
		return transfers[i].TransactionDate.After(transfers[j].TransactionDate)
	})
	if len(transfers) > limit {
		transfers = transfers[:limit]
	}
	return transfers, nil
}

// Feed returns the user's transfers as a reconciled feed in the order the
// transfer service returned them, with exchange legs merged.
func (s *TransferServiceImpl) Feed(ctx context.Context, userID string) ([]domain.FeedEntry, error) {
	transfers, err := s.list(ctx, userID)
	if err != nil {
		return nil, err
	}
	rows := make([]domain.LedgerRow, 0, len(transfers))
	for _, t := range transfers {
		rows = append(rows, domain.ProjectTransfer(t, userID))
	}
	return domain.ReconcileFeed(rows), nil
}

func (s *TransferServiceImpl) list(ctx context.Context, userID string) ([]domain.Transfer, error) {
	if userID == "" {
		return nil, apperror.ErrMissingFields()
	}
	transfers, err := s.transfers.ListTransfers(ctx, userID)
	if err != nil {
		return nil, upstreamError("Failed to fetch transactions", relayStatus(err), err)
	}
	return transfers, nil
}
