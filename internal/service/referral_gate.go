package service

import (
	"context"
	"time"

	"cashout-gateway/internal/core/ports"
	"cashout-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// ReferralGateImpl implements ports.ReferralGate.
//
// The store holds one entry per user ID that has already been sent to the
// referral service. The entry is reserved with SetIfAbsent before the remote
// call and kept whatever the call returns, so concurrent requests for the same
// user reach the remote endpoint at most once until the entry is cleared.
type ReferralGateImpl struct {
	store     ports.KeyValueStore
	referrals ports.ReferralGateway
	log       zerolog.Logger
}

func NewReferralGate(store ports.KeyValueStore, referrals ports.ReferralGateway, log zerolog.Logger) *ReferralGateImpl {
	return &ReferralGateImpl{store: store, referrals: referrals, log: log}
}

func (g *ReferralGateImpl) CompleteOnce(ctx context.Context, userID string) (*ports.GateOutcome, error) {
	if userID == "" {
		return nil, apperror.ErrMissingFields()
	}

	stamp := []byte(time.Now().UTC().Format(time.RFC3339))
	reserved, err := g.store.SetIfAbsent(ctx, userID, stamp, 0)
	if err != nil {
		referralChecksTotal.WithLabelValues("failed").Inc()
		return nil, apperror.ErrStoreError(err)
	}
	if !reserved {
		referralChecksTotal.WithLabelValues("skipped").Inc()
		return &ports.GateOutcome{Checked: false}, nil
	}

	completion, err := g.referrals.Complete(ctx, userID)
	if err != nil {
		referralChecksTotal.WithLabelValues("failed").Inc()
		g.log.Warn().Err(err).Str("user_id", userID).Msg("referral completion call failed")
		return &ports.GateOutcome{Checked: true}, upstreamError("Failed to complete referral", relayStatus(err), err)
	}

	if completion.Success {
		referralChecksTotal.WithLabelValues("completed").Inc()
		g.log.Info().
			Str("user_id", userID).
			Str("referrer_id", completion.ReferrerID).
			Msg("referral completed")
	} else {
		referralChecksTotal.WithLabelValues("none_pending").Inc()
	}
	return &ports.GateOutcome{Checked: true, Completion: completion}, nil
}

// Clear forgets userID so the next CompleteOnce calls the remote endpoint again.
func (g *ReferralGateImpl) Clear(ctx context.Context, userID string) error {
	if err := g.store.Delete(ctx, userID); err != nil {
		return apperror.ErrStoreError(err)
	}
	return nil
}

func (g *ReferralGateImpl) ClearAll(ctx context.Context) error {
	if err := g.store.Clear(ctx); err != nil {
		return apperror.ErrStoreError(err)
	}
	return nil
}

// completeReferral consults the gate after a successful money movement. It
// never fails the caller.
func completeReferral(ctx context.Context, gate ports.ReferralGate, log zerolog.Logger, userID string) {
	if gate == nil {
		return
	}
	if _, err := gate.CompleteOnce(ctx, userID); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("referral gate check failed")
	}
}
