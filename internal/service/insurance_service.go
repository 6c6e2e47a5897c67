package service

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"cashout-gateway/internal/core/domain"
	"cashout-gateway/internal/core/ports"
	"cashout-gateway/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// InsuranceServiceImpl implements ports.InsuranceService.
type InsuranceServiceImpl struct {
	insurance         ports.InsuranceGateway
	wallets           ports.WalletGateway
	exchange          ports.ExchangeGateway
	users             ports.UserGateway
	audit             ports.AuditService
	referenceCurrency string
	log               zerolog.Logger
	now               func() time.Time
}

// NewInsuranceService creates a new InsuranceServiceImpl. Premiums are quoted
// by the policy service in referenceCurrency.
func NewInsuranceService(
	insurance ports.InsuranceGateway,
	wallets ports.WalletGateway,
	exchange ports.ExchangeGateway,
	users ports.UserGateway,
	audit ports.AuditService,
	referenceCurrency string,
	log zerolog.Logger,
) *InsuranceServiceImpl {
	return &InsuranceServiceImpl{
		insurance:         insurance,
		wallets:           wallets,
		exchange:          exchange,
		users:             users,
		audit:             audit,
		referenceCurrency: domain.NormalizeCurrency(referenceCurrency),
		log:               log,
		now:               time.Now,
	}
}

func (s *InsuranceServiceImpl) ListPlans(ctx context.Context) ([]domain.InsurancePlan, error) {
	plans, err := s.insurance.ListPlans(ctx)
	if err != nil {
		return nil, upstreamError("Failed to fetch insurance plans", relayStatus(err), err)
	}
	return plans, nil
}

func (s *InsuranceServiceImpl) GetPlan(ctx context.Context, planID int64) (*domain.InsurancePlan, error) {
	plan, err := s.insurance.GetPlan(ctx, planID)
	if err != nil {
		return nil, upstreamError("Failed to fetch insurance plan", relayStatus(err), err)
	}
	if plan == nil {
		return nil, apperror.ErrNotFound("Insurance plan")
	}
	return plan, nil
}

// pricing is a premium laid out over a schedule in the charged currency.
type pricing struct {
	premium  decimal.Decimal
	currency string
	charged  decimal.Decimal
	rate     *decimal.Decimal
	mode     domain.PaymentMode
	schedule []domain.Instalment
	dueNow   decimal.Decimal
}

// price asks the policy service for the premium, converts it into currency
// when that differs from the reference currency, and builds the schedule.
func (s *InsuranceServiceImpl) price(ctx context.Context, planID int64, start, end time.Time, country, currency string, requested domain.PaymentMode, today time.Time) (*pricing, error) {
	premium, err := s.insurance.CalculatePremium(ctx, ports.PremiumRequest{
		PlanID:             planID,
		StartDate:          start,
		EndDate:            end,
		DestinationCountry: country,
	})
	if err != nil {
		return nil, upstreamError("Failed to calculate premium", relayStatus(err), err)
	}

	p := &pricing{premium: premium, currency: s.referenceCurrency, charged: premium}
	if currency != "" && currency != s.referenceCurrency {
		rate, err := s.exchange.GetRate(ctx, s.referenceCurrency, currency)
		if err != nil {
			return nil, upstreamError("Failed to fetch exchange rate", relayStatus(err), err)
		}
		p.currency = currency
		p.rate = &rate
		p.charged = premium.Mul(rate)
	}
	p.charged = domain.RoundToCurrency(p.charged, p.currency)

	p.mode = domain.ResolvePaymentMode(requested, start, end)
	p.schedule = domain.BuildSchedule(domain.ScheduleInput{
		Premium:  p.charged,
		Currency: p.currency,
		Start:    start,
		End:      end,
		Mode:     p.mode,
		Today:    today,
	})
	p.dueNow = domain.AmountDueNow(p.schedule)
	return p, nil
}

func (s *InsuranceServiceImpl) today() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validateCoverage(planID int64, start, end, today time.Time) error {
	if planID <= 0 || start.IsZero() || end.IsZero() {
		return apperror.ErrMissingFields()
	}
	if err := domain.ValidateCoverageDates(start, end, today); err != nil {
		return apperror.ErrInvalidDates(err.Error())
	}
	return nil
}

// Quote prices a coverage period for display. Plan, wallets and profile are
// fetched concurrently; a missing profile does not fail the quote.
func (s *InsuranceServiceImpl) Quote(ctx context.Context, req ports.QuoteRequest) (*ports.Quote, error) {
	today := s.today()
	if err := validateCoverage(req.PlanID, req.StartDate, req.EndDate, today); err != nil {
		return nil, err
	}

	var (
		plan    *domain.InsurancePlan
		wallets []domain.Wallet
		user    *domain.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		plan, err = s.GetPlan(gctx, req.PlanID)
		return err
	})
	g.Go(func() error {
		var err error
		wallets, err = s.listWallets(gctx, req.UserID)
		return err
	})
	g.Go(func() error {
		u, err := s.users.GetUser(gctx, req.UserID)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", req.UserID).Msg("profile lookup failed during quote")
			return nil
		}
		user = u
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	currency := ""
	if req.WalletID != "" {
		wallet := domain.FindWalletByID(wallets, req.WalletID)
		if wallet == nil {
			return nil, apperror.ErrNotFound("Wallet")
		}
		currency = domain.NormalizeCurrency(wallet.CurrencyCode)
	}

	p, err := s.price(ctx, plan.PlanID, req.StartDate, req.EndDate, req.DestinationCountry, currency, req.Mode, today)
	if err != nil {
		return nil, err
	}

	return &ports.Quote{
		Plan:              plan,
		ReferenceCurrency: s.referenceCurrency,
		Premium:           p.premium,
		Currency:          p.currency,
		ChargedPremium:    p.charged,
		ExchangeRate:      p.rate,
		Months:            domain.BillingMonths(req.StartDate, req.EndDate),
		MonthlyEligible:   domain.MonthlyEligible(req.StartDate, req.EndDate),
		Mode:              p.mode,
		Schedule:          p.schedule,
		AmountDueNow:      p.dueNow,
		Wallets:           wallets,
		User:              user,
	}, nil
}

// Purchase runs the policy purchase. Steps are sequential once the plan and
// wallets are known: the policy is created before any debit, only the amount
// due now is debited, and every instalment is then recorded in order. Later
// instalments are recorded as Not Due and never debited here.
func (s *InsuranceServiceImpl) Purchase(ctx context.Context, req ports.PurchaseRequest) (*ports.PurchaseResult, error) {
	today := s.today()
	if req.UserID == "" || req.WalletID == "" {
		return nil, apperror.ErrMissingFields()
	}
	if err := validateCoverage(req.PlanID, req.StartDate, req.EndDate, today); err != nil {
		return nil, err
	}
	log := s.log.With().
		Str("user_id", req.UserID).
		Int64("plan_id", req.PlanID).
		Str("wallet_id", req.WalletID).
		Logger()

	var (
		plan    *domain.InsurancePlan
		wallets []domain.Wallet
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		plan, err = s.GetPlan(gctx, req.PlanID)
		return err
	})
	g.Go(func() error {
		var err error
		wallets, err = s.listWallets(gctx, req.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	wallet := domain.FindWalletByID(wallets, req.WalletID)
	if wallet == nil || (wallet.UserID != "" && wallet.UserID != req.UserID) {
		return nil, apperror.ErrNotFound("Wallet")
	}
	currency := domain.NormalizeCurrency(wallet.CurrencyCode)

	p, err := s.price(ctx, plan.PlanID, req.StartDate, req.EndDate, req.DestinationCountry, currency, req.Mode, today)
	if err != nil {
		return nil, err
	}
	if !wallet.Covers(p.dueNow) {
		orchestrationsTotal.WithLabelValues(flowInsurancePurchase, outcomeRejected).Inc()
		return nil, apperror.ErrInsufficientBalance(wallet.Balance, p.dueNow)
	}

	policyID, err := s.insurance.AddPolicy(ctx, ports.PolicyRequest{
		UserID:             req.UserID,
		PlanID:             plan.PlanID,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		IssuedDate:         today,
		Premium:            p.charged,
		DestinationCountry: req.DestinationCountry,
	})
	if err != nil {
		log.Error().Err(err).Msg("policy creation failed")
		orchestrationsTotal.WithLabelValues(flowInsurancePurchase, outcomeFailed).Inc()
		s.record(ctx, req, "", domain.AuditActionInsuranceFailed, p, err)
		return nil, paymentFailed(err)
	}
	log = log.With().Str("policy_id", policyID).Logger()
	log.Info().Str("mode", string(p.mode)).Int("instalments", len(p.schedule)).Msg("policy created")

	update, err := s.wallets.UpdateBalance(ctx, ports.WalletUpdate{
		UserID:       req.UserID,
		CurrencyCode: currency,
		Amount:       p.dueNow.Neg(),
	})
	if err == nil && !update.Success {
		err = fmt.Errorf("wallet update rejected: %s", update.Message)
	}
	if err != nil {
		log.Error().Err(err).Msg("policy created but wallet debit failed")
		orchestrationsTotal.WithLabelValues(flowInsurancePurchase, outcomeFailed).Inc()
		s.record(ctx, req, policyID, domain.AuditActionInsuranceFailed, p, err)
		return nil, paymentFailed(err)
	}

	for _, row := range p.schedule {
		rec := ports.PaymentRecord{
			UserID:          req.UserID,
			PolicyID:        policyID,
			WalletID:        req.WalletID,
			PaymentDate:     row.Date,
			Amount:          row.Amount,
			Description:     row.Description,
			Status:          row.Status,
			Type:            row.Type,
			PolicyStartDate: req.StartDate,
			PolicyEndDate:   req.EndDate,
		}
		if err := s.insurance.AddPayment(ctx, rec); err != nil {
			log.Error().Err(err).Int("sequence", row.Sequence).Msg("wallet debited but payment record failed")
			orchestrationsTotal.WithLabelValues(flowInsurancePurchase, outcomeUnsettled).Inc()
			s.record(ctx, req, policyID, domain.AuditActionInsuranceFailed, p, err)
			return nil, paymentFailed(err).WithNote(apperror.NoteDebitedNotSettled)
		}
	}

	log.Info().Str("charged", p.dueNow.String()).Str("currency", p.currency).Msg("insurance purchase completed")
	orchestrationsTotal.WithLabelValues(flowInsurancePurchase, outcomeSucceeded).Inc()
	s.record(ctx, req, policyID, domain.AuditActionInsurancePurchase, p, nil)

	return &ports.PurchaseResult{
		PolicyID:      policyID,
		Mode:          p.mode,
		Currency:      p.currency,
		Premium:       p.charged,
		AmountCharged: p.dueNow,
		ExchangeRate:  p.rate,
		Schedule:      p.schedule,
	}, nil
}

func (s *InsuranceServiceImpl) listWallets(ctx context.Context, userID string) ([]domain.Wallet, error) {
	list, err := s.wallets.ListWallets(ctx, userID)
	if err != nil {
		return nil, upstreamError("Failed to fetch wallets", http.StatusInternalServerError, err)
	}
	if !list.Success || len(list.Wallets) == 0 {
		return nil, apperror.ErrNoWallets()
	}
	return list.Wallets, nil
}

func (s *InsuranceServiceImpl) record(ctx context.Context, req ports.PurchaseRequest, policyID string, action domain.AuditAction, p *pricing, cause error) {
	if s.audit == nil {
		return
	}
	details := map[string]any{
		"plan_id":   strconv.FormatInt(req.PlanID, 10),
		"wallet_id": req.WalletID,
		"mode":      p.mode,
		"currency":  p.currency,
		"premium":   p.charged,
		"charged":   p.dueNow,
	}
	if cause != nil {
		details["error"] = cause.Error()
	}
	s.audit.Log(ctx, newAuditEntry(req.UserID, action, "policy", policyID, details, req.ClientIP))
}

// ListPolicies returns the user's policies, newest start date first.
func (s *InsuranceServiceImpl) ListPolicies(ctx context.Context, userID string) ([]domain.Policy, error) {
	policies, err := s.insurance.ListPolicies(ctx, userID)
	if err != nil {
		return nil, upstreamError("Failed to fetch policies", relayStatus(err), err)
	}
	sort.SliceStable(policies, func(i, j int) bool {
		return policies[i].StartDate.After(policies[j].StartDate)
	})
	return policies, nil
}

// ListPayments returns the user's policy payments matching filter, newest first.
func (s *InsuranceServiceImpl) ListPayments(ctx context.Context, filter ports.PaymentFilter) ([]domain.PolicyPayment, error) {
	payments, err := s.insurance.ListPayments(ctx, filter.UserID)
	if err != nil {
		return nil, upstreamError("Failed to fetch payments", relayStatus(err), err)
	}

	out := payments[:0]
	for _, p := range payments {
		if filter.PolicyID != "" && !strings.Contains(p.PolicyID, filter.PolicyID) {
			continue
		}
		if filter.Status != "" && p.PaymentStatus != filter.Status {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PaymentDate.After(out[j].PaymentDate)
	})
	return out, nil
}
