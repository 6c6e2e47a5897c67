package service

import (
	"context"

	"cashout-gateway/internal/core/domain"
	"cashout-gateway/internal/core/ports"
	"cashout-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// ExchangeServiceImpl implements ports.ExchangeService.
type ExchangeServiceImpl struct {
	exchange ports.ExchangeGateway
	audit    ports.AuditService
	log      zerolog.Logger
}

func NewExchangeService(exchange ports.ExchangeGateway, audit ports.AuditService, log zerolog.Logger) *ExchangeServiceImpl {
	return &ExchangeServiceImpl{exchange: exchange, audit: audit, log: log}
}

func currencyPair(from, to string) (string, string, error) {
	from, to = domain.NormalizeCurrency(from), domain.NormalizeCurrency(to)
	if from == "" || to == "" {
		return "", "", apperror.ErrMissingFields()
	}
	if !domain.IsSupportedCurrency(from) || !domain.IsSupportedCurrency(to) {
		return "", "", apperror.Validation("Unsupported currency")
	}
	return from, to, nil
}

func (s *ExchangeServiceImpl) Rate(ctx context.Context, from, to string) (*ports.RateQuote, error) {
	from, to, err := currencyPair(from, to)
	if err != nil {
		return nil, err
	}
	rate, err := s.exchange.GetRate(ctx, from, to)
	if err != nil {
		return nil, upstreamError("Failed to fetch exchange rate", relayStatus(err), err)
	}
	return &ports.RateQuote{FromCurrency: from, ToCurrency: to, Rate: rate}, nil
}

// Convert moves funds between two of the user's wallets at the live rate.
func (s *ExchangeServiceImpl) Convert(ctx context.Context, req ports.ConversionRequest) (*ports.ConversionResult, error) {
	if req.UserID == "" {
		return nil, apperror.ErrMissingFields()
	}
	from, to, err := currencyPair(req.FromCurrency, req.ToCurrency)
	if err != nil {
		return nil, err
	}
	if from == to {
		return nil, apperror.Validation("Cannot exchange a currency for itself")
	}
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	req.FromCurrency, req.ToCurrency = from, to

	result, err := s.exchange.Convert(ctx, req)
	if err != nil {
		return nil, upstreamError("Currency exchange failed", relayStatus(err), err)
	}
	if !result.Success {
		return nil, rejectedError("Currency exchange failed", result.ErrorMessage)
	}

	s.log.Info().
		Str("user_id", req.UserID).
		Str("from", from).
		Str("to", to).
		Str("amount", req.Amount.String()).
		Str("converted", result.ConvertedAmount.String()).
		Msg("currency exchanged")
	if s.audit != nil {
		s.audit.Log(ctx, newAuditEntry(req.UserID, domain.AuditActionExchange, "exchange", result.TransactionID,
			map[string]any{"from": from, "to": to, "amount": req.Amount, "rate": result.UsedExchangeRate}, ""))
	}
	return result, nil
}
