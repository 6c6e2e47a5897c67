package service

import (
	"context"
	"strings"

	"cashout-gateway/internal/core/domain"
	"cashout-gateway/internal/core/ports"
	"cashout-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// ReferralServiceImpl implements ports.ReferralService.
type ReferralServiceImpl struct {
	referrals ports.ReferralGateway
	log       zerolog.Logger
}

func NewReferralService(referrals ports.ReferralGateway, log zerolog.Logger) *ReferralServiceImpl {
	return &ReferralServiceImpl{referrals: referrals, log: log}
}

// Apply links userID to the owner of code. A code the referral service
// refuses is a validation error carrying the service's message.
func (s *ReferralServiceImpl) Apply(ctx context.Context, userID, code string) (*domain.ReferralCompletion, error) {
	code = strings.TrimSpace(code)
	if userID == "" || code == "" {
		return nil, apperror.ErrMissingFields()
	}

	completion, err := s.referrals.UseCode(ctx, userID, code)
	if err != nil {
		return nil, upstreamError("Failed to apply referral code", relayStatus(err), err)
	}
	if !completion.Success {
		msg := completion.Message
		if msg == "" {
			msg = "Invalid referral code"
		}
		return nil, apperror.Validation(msg)
	}

	s.log.Info().Str("user_id", userID).Str("referrer_id", completion.ReferrerID).Msg("referral code applied")
	return completion, nil
}

func (s *ReferralServiceImpl) Info(ctx context.Context, userID string) (*domain.ReferralInfo, error) {
	info, err := s.referrals.GetInfo(ctx, userID)
	if err != nil {
		return nil, upstreamError("Failed to fetch referral info", relayStatus(err), err)
	}
	return info, nil
}
