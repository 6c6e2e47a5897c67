package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"cashout-gateway/internal/core/domain"
	"cashout-gateway/internal/core/ports"
	"cashout-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// AuthServiceImpl implements ports.AuthService on top of the remote user
// service. Credentials are checked remotely; this service only issues the
// session token.
type AuthServiceImpl struct {
	users     ports.UserGateway
	wallets   ports.WalletGateway
	referrals ports.ReferralGateway
	tokens    ports.TokenService
	audit     ports.AuditService
	log       zerolog.Logger
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	users ports.UserGateway,
	wallets ports.WalletGateway,
	referrals ports.ReferralGateway,
	tokens ports.TokenService,
	audit ports.AuditService,
	log zerolog.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		users:     users,
		wallets:   wallets,
		referrals: referrals,
		tokens:    tokens,
		audit:     audit,
		log:       log,
	}
}

// Login verifies credentials with the user service and issues a session token.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*ports.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperror.ErrMissingFields()
	}

	user, err := s.users.Login(ctx, email, password)
	if err != nil {
		if _, rejected := remoteRejection(err); rejected {
			return nil, apperror.ErrInvalidCredentials()
		}
		return nil, upstreamError("Login failed", relayStatus(err), err)
	}

	session, err := s.issue(*user)
	if err != nil {
		return nil, err
	}
	if s.audit != nil {
		s.audit.Log(ctx, newAuditEntry(user.UserID, domain.AuditActionLogin, "user", user.UserID, nil, ""))
	}
	return session, nil
}

// Register creates the account, opens one wallet per supported currency and
// applies the optional referral code. Wallet and referral failures are logged
// and reported in the result; they do not undo the registration.
func (s *AuthServiceImpl) Register(ctx context.Context, req ports.RegisterRequest) (*ports.RegisterResult, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	if req.Name == "" || req.Email == "" || req.PhoneNumber == "" || req.Password == "" {
		return nil, apperror.ErrMissingFields()
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, apperror.Validation("Invalid email address")
	}

	user, err := s.users.Register(ctx, ports.Registration{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		if msg, rejected := remoteRejection(err); rejected {
			return nil, apperror.ErrRegistrationRejected(msg)
		}
		return nil, upstreamError("Registration failed", relayStatus(err), err)
	}
	log := s.log.With().Str("user_id", user.UserID).Logger()

	created := make([]string, 0, len(domain.SupportedCurrencies))
	for _, currency := range domain.SupportedCurrencies {
		if err := s.wallets.CreateWallet(ctx, user.UserID, currency); err != nil {
			log.Warn().Err(err).Str("currency", currency).Msg("wallet creation failed")
			continue
		}
		created = append(created, currency)
	}

	applied := false
	if code := strings.TrimSpace(req.ReferralCode); code != "" {
		completion, err := s.referrals.UseCode(ctx, user.UserID, code)
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("referral code could not be applied")
		case !completion.Success:
			log.Info().Str("reason", completion.Message).Msg("referral code refused")
		default:
			applied = true
		}
	}

	session, err := s.issue(*user)
	if err != nil {
		return nil, err
	}
	if s.audit != nil {
		s.audit.Log(ctx, newAuditEntry(user.UserID, domain.AuditActionRegister, "user", user.UserID,
			map[string]any{"wallets_created": created, "referral_applied": applied}, ""))
	}
	log.Info().Int("wallets", len(created)).Bool("referral_applied", applied).Msg("user registered")

	return &ports.RegisterResult{
		Session:         *session,
		WalletsCreated:  created,
		ReferralApplied: applied,
	}, nil
}

func (s *AuthServiceImpl) Profile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, upstreamError("Failed to fetch user", relayStatus(err), err)
	}
	if user == nil {
		return nil, apperror.ErrNotFound("User")
	}
	return user, nil
}

func (s *AuthServiceImpl) issue(user domain.User) (*ports.Session, error) {
	token, expiresAt, err := s.tokens.Generate(user.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}
	return &ports.Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}
