package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"cashout-gateway/internal/core/domain"
	"cashout-gateway/internal/core/ports"
	"cashout-gateway/internal/core/ports/mocks"
	"cashout-gateway/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type insuranceTestDeps struct {
	svc       *InsuranceServiceImpl
	insurance *mocks.MockInsuranceGateway
	wallets   *mocks.MockWalletGateway
	exchange  *mocks.MockExchangeGateway
	users     *mocks.MockUserGateway
	audit     *auditRecorder
}

var insuranceToday = time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func setupInsuranceService(t *testing.T) *insuranceTestDeps {
	ctrl := gomock.NewController(t)
	d := &insuranceTestDeps{
		insurance: mocks.NewMockInsuranceGateway(ctrl),
		wallets:   mocks.NewMockWalletGateway(ctrl),
		exchange:  mocks.NewMockExchangeGateway(ctrl),
		users:     mocks.NewMockUserGateway(ctrl),
		audit:     &auditRecorder{},
	}
	d.svc = NewInsuranceService(d.insurance, d.wallets, d.exchange, d.users, d.audit, "usd", newTestLogger())
	d.svc.now = func() time.Time { return insuranceToday }
	return d
}

func testPlan() *domain.InsurancePlan {
	return &domain.InsurancePlan{PlanID: 3, PlanName: "Asia Basic", PlanPremium: decimal.NewFromInt(30)}
}

func userWallets() *ports.WalletList {
	return &ports.WalletList{Success: true, Wallets: []domain.Wallet{
		{ID: "W-USD", UserID: "USR_1", CurrencyCode: "USD", Balance: decimal.NewFromInt(500)},
		{ID: "W-SGD", UserID: "USR_1", CurrencyCode: "SGD", Balance: decimal.NewFromInt(150)},
		{ID: "W-JPY", UserID: "USR_1", CurrencyCode: "JPY", Balance: decimal.NewFromInt(1000000)},
	}}
}

func purchaseRequest(walletID string, mode domain.PaymentMode, start, end time.Time) ports.PurchaseRequest {
	return ports.PurchaseRequest{
		UserID:             "USR_1",
		PlanID:             3,
		WalletID:           walletID,
		StartDate:          start,
		EndDate:            end,
		DestinationCountry: "Japan",
		Mode:               mode,
		ClientIP:           "1.2.3.4",
	}
}

func (d *insuranceTestDeps) expectLookups(premium string) {
	d.insurance.EXPECT().GetPlan(gomock.Any(), int64(3)).Return(testPlan(), nil)
	d.wallets.EXPECT().ListWallets(gomock.Any(), "USR_1").Return(userWallets(), nil)
	d.insurance.EXPECT().CalculatePremium(gomock.Any(), gomock.Any()).Return(decimal.RequireFromString(premium), nil)
}

func TestInsurancePurchase_MonthlySameCurrency(t *testing.T) {
	d := setupInsuranceService(t)
	start, end := date(2024, 1, 15), date(2024, 4, 15)
	d.expectLookups("300")

	var recorded []ports.PaymentRecord
	gomock.InOrder(
		d.insurance.EXPECT().AddPolicy(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req ports.PolicyRequest) (string, error) {
				assert.Equal(t, "300", req.Premium.String())
				assert.Equal(t, date(2024, 1, 10), req.IssuedDate)
				return "555", nil
			}),
		d.wallets.EXPECT().UpdateBalance(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u ports.WalletUpdate) (*ports.WalletUpdateResult, error) {
				assert.Equal(t, "USD", u.CurrencyCode)
				assert.Equal(t, "-100", u.Amount.String())
				return &ports.WalletUpdateResult{Success: true}, nil
			}),
		d.insurance.EXPECT().AddPayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rec ports.PaymentRecord) error {
				recorded = append(recorded, rec)
				return nil
			}).Times(3),
	)

	res, err := d.svc.Purchase(context.Background(), purchaseRequest("W-USD", domain.PaymentModeMonthly, start, end))
	require.NoError(t, err)
	assert.Equal(t, "555", res.PolicyID)
	assert.Equal(t, domain.PaymentModeMonthly, res.Mode)
	assert.Equal(t, "100", res.AmountCharged.String())
	assert.Nil(t, res.ExchangeRate)

	require.Len(t, recorded, 3)
	assert.Equal(t, domain.PaymentStatusCompleted, recorded[0].Status)
	assert.Equal(t, date(2024, 1, 10), recorded[0].PaymentDate)
	assert.Equal(t, domain.PaymentStatusNotDue, recorded[1].Status)
	assert.Equal(t, date(2024, 2, 15), recorded[1].PaymentDate)
	assert.Equal(t, date(2024, 3, 15), recorded[2].PaymentDate)
	for _, rec := range recorded {
		assert.Equal(t, "555", rec.PolicyID)
		assert.Equal(t, "W-USD", rec.WalletID)
		assert.Equal(t, domain.PaymentTypeMonthly, rec.Type)
		assert.Equal(t, "100", rec.Amount.String())
	}
	assert.Equal(t, []domain.AuditAction{domain.AuditActionInsurancePurchase}, d.audit.actions())
}

func TestInsurancePurchase_ConvertsToWalletCurrency(t *testing.T) {
	d := setupInsuranceService(t)
	start, end := date(2024, 1, 15), date(2024, 4, 15)
	d.expectLookups("100")
	d.exchange.EXPECT().GetRate(gomock.Any(), "USD", "SGD").Return(decimal.RequireFromString("1.3456"), nil)
	d.insurance.EXPECT().AddPolicy(gomock.Any(), gomock.Any()).Return("777", nil)
	d.wallets.EXPECT().UpdateBalance(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u ports.WalletUpdate) (*ports.WalletUpdateResult, error) {
			assert.Equal(t, "SGD", u.CurrencyCode)
			assert.Equal(t, "-44.85", u.Amount.String())
			return &ports.WalletUpdateResult{Success: true}, nil
		})
	d.insurance.EXPECT().AddPayment(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	res, err := d.svc.Purchase(context.Background(), purchaseRequest("W-SGD", domain.PaymentModeMonthly, start, end))
	require.NoError(t, err)
	assert.Equal(t, "SGD", res.Currency)
	assert.Equal(t, "134.56", res.Premium.String())
	require.NotNil(t, res.ExchangeRate)
	assert.Equal(t, "1.3456", res.ExchangeRate.String())
	assert.True(t, domain.ScheduleTotal(res.Schedule).Equal(res.Premium))
	assert.Equal(t, "44.86", res.Schedule[2].Amount.String())
}

func TestInsurancePurchase_MonthlyIneligibleFallsBackToFull(t *testing.T) {
	d := setupInsuranceService(t)
	start, end := date(2024, 2, 1), date(2024, 3, 15)
	d.expectLookups("80")
	d.insurance.EXPECT().AddPolicy(gomock.Any(), gomock.Any()).Return("9", nil)
	d.wallets.EXPECT().UpdateBalance(gomock.Any(), gomock.Any()).Return(&ports.WalletUpdateResult{Success: true}, nil)
	d.insurance.EXPECT().AddPayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec ports.PaymentRecord) error {
			assert.Equal(t, domain.PaymentTypeFull, rec.Type)
			assert.Equal(t, domain.PaymentStatusCompleted, rec.Status)
			return nil
		})

	res, err := d.svc.Purchase(context.Background(), purchaseRequest("W-USD", domain.PaymentModeMonthly, start, end))
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentModeFull, res.Mode)
	assert.Len(t, res.Schedule, 1)
	assert.Equal(t, "80", res.AmountCharged.String())
}

func TestInsurancePurchase_InsufficientBalance_NoPolicy(t *testing.T) {
	d := setupInsuranceService(t)
	d.expectLookups("600")

	_, err := d.svc.Purchase(context.Background(), purchaseRequest("W-USD", domain.PaymentModeFull, date(2024, 1, 15), date(2024, 2, 15)))
	assertAppError(t, err, "PAY_001")
}

func TestInsurancePurchase_PolicyFailure_NoDebit(t *testing.T) {
	d := setupInsuranceService(t)
	d.expectLookups("100")
	d.insurance.EXPECT().AddPolicy(gomock.Any(), gomock.Any()).Return("", upstreamFailure(500, `{"error":"db"}`))

	_, err := d.svc.Purchase(context.Background(), purchaseRequest("W-USD", domain.PaymentModeFull, date(2024, 1, 15), date(2024, 2, 15)))
	appErr := assertAppError(t, err, "PAY_002")
	assert.Equal(t, "Payment failed", appErr.Message)
	assert.Empty(t, appErr.Note)
	assert.Equal(t, map[string]any{"error": "db"}, appErr.Details)
	assert.Equal(t, []domain.AuditAction{domain.AuditActionInsuranceFailed}, d.audit.actions())
}

func TestInsurancePurchase_DebitRejected(t *testing.T) {
	d := setupInsuranceService(t)
	d.expectLookups("100")
	d.insurance.EXPECT().AddPolicy(gomock.Any(), gomock.Any()).Return("1", nil)
	d.wallets.EXPECT().UpdateBalance(gomock.Any(), gomock.Any()).Return(&ports.WalletUpdateResult{Success: false, Message: "locked"}, nil)

	_, err := d.svc.Purchase(context.Background(), purchaseRequest("W-USD", domain.PaymentModeFull, date(2024, 1, 15), date(2024, 2, 15)))
	appErr := assertAppError(t, err, "PAY_002")
	assert.Empty(t, appErr.Note)
}

func TestInsurancePurchase_PaymentRecordFailure_CarriesNote(t *testing.T) {
	d := setupInsuranceService(t)
	d.expectLookups("300")
	d.insurance.EXPECT().AddPolicy(gomock.Any(), gomock.Any()).Return("1", nil)
	d.wallets.EXPECT().UpdateBalance(gomock.Any(), gomock.Any()).Return(&ports.WalletUpdateResult{Success: true}, nil).Times(1)
	gomock.InOrder(
		d.insurance.EXPECT().AddPayment(gomock.Any(), gomock.Any()).Return(nil),
		d.insurance.EXPECT().AddPayment(gomock.Any(), gomock.Any()).Return(errors.New("timeout")),
	)

	_, err := d.svc.Purchase(context.Background(), purchaseRequest("W-USD", domain.PaymentModeMonthly, date(2024, 1, 15), date(2024, 4, 15)))
	appErr := assertAppError(t, err, "PAY_002")
	assert.Equal(t, apperror.NoteDebitedNotSettled, appErr.Note)
}

func TestInsurancePurchase_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  ports.PurchaseRequest
		code string
		msg  string
	}{
		{"missing wallet", purchaseRequest("", domain.PaymentModeFull, date(2024, 1, 15), date(2024, 2, 15)), "VAL_002", ""},
		{"start in past", purchaseRequest("W-USD", domain.PaymentModeFull, date(2024, 1, 9), date(2024, 2, 15)), "VAL_004", "start date cannot be in the past"},
		{"end before start", purchaseRequest("W-USD", domain.PaymentModeFull, date(2024, 2, 15), date(2024, 2, 15)), "VAL_004", "end date must be after start date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupInsuranceService(t)
			_, err := d.svc.Purchase(context.Background(), tt.req)
			appErr := assertAppError(t, err, tt.code)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, appErr.Message)
			}
		})
	}
}

func TestInsurancePurchase_StartTodayIsAllowed(t *testing.T) {
	d := setupInsuranceService(t)
	d.expectLookups("10")
	d.insurance.EXPECT().AddPolicy(gomock.Any(), gomock.Any()).Return("1", nil)
	d.wallets.EXPECT().UpdateBalance(gomock.Any(), gomock.Any()).Return(&ports.WalletUpdateResult{Success: true}, nil)
	d.insurance.EXPECT().AddPayment(gomock.Any(), gomock.Any()).Return(nil)

	_, err := d.svc.Purchase(context.Background(), purchaseRequest("W-USD", domain.PaymentModeFull, date(2024, 1, 10), date(2024, 1, 20)))
	require.NoError(t, err)
}

func TestInsurancePurchase_UnknownWallet(t *testing.T) {
	d := setupInsuranceService(t)
	d.insurance.EXPECT().GetPlan(gomock.Any(), int64(3)).Return(testPlan(), nil)
	d.wallets.EXPECT().ListWallets(gomock.Any(), "USR_1").Return(userWallets(), nil)

	_, err := d.svc.Purchase(context.Background(), purchaseRequest("W-EUR", domain.PaymentModeFull, date(2024, 1, 15), date(2024, 2, 15)))
	assertAppError(t, err, "NF_001")
}

func TestInsurancePurchase_UnknownPlan(t *testing.T) {
	d := setupInsuranceService(t)
	d.insurance.EXPECT().GetPlan(gomock.Any(), int64(3)).Return(nil, nil)
	d.wallets.EXPECT().ListWallets(gomock.Any(), "USR_1").Return(userWallets(), nil).AnyTimes()

	_, err := d.svc.Purchase(context.Background(), purchaseRequest("W-USD", domain.PaymentModeFull, date(2024, 1, 15), date(2024, 2, 15)))
	appErr := assertAppError(t, err, "NF_001")
	assert.Equal(t, "Insurance plan not found", appErr.Message)
}

func TestInsuranceQuote(t *testing.T) {
	d := setupInsuranceService(t)
	d.insurance.EXPECT().GetPlan(gomock.Any(), int64(3)).Return(testPlan(), nil)
	d.wallets.EXPECT().ListWallets(gomock.Any(), "USR_1").Return(userWallets(), nil)
	d.users.EXPECT().GetUser(gomock.Any(), "USR_1").Return(nil, errors.New("user service down"))
	d.insurance.EXPECT().CalculatePremium(gomock.Any(), ports.PremiumRequest{
		PlanID:             3,
		StartDate:          date(2024, 1, 15),
		EndDate:            date(2024, 12, 20),
		DestinationCountry: "Japan",
	}).Return(decimal.NewFromInt(110), nil)
	d.exchange.EXPECT().GetRate(gomock.Any(), "USD", "JPY").Return(decimal.RequireFromString("147.5"), nil)

	q, err := d.svc.Quote(context.Background(), ports.QuoteRequest{
		UserID:             "USR_1",
		PlanID:             3,
		WalletID:           "W-JPY",
		StartDate:          date(2024, 1, 15),
		EndDate:            date(2024, 12, 20),
		DestinationCountry: "Japan",
		Mode:               domain.PaymentModeMonthly,
	})
	require.NoError(t, err)
	assert.Equal(t, 11, q.Months)
	assert.True(t, q.MonthlyEligible)
	assert.Equal(t, domain.PaymentModeMonthly, q.Mode)
	assert.Equal(t, "USD", q.ReferenceCurrency)
	assert.Equal(t, "JPY", q.Currency)
	assert.Equal(t, "16225", q.ChargedPremium.String())
	assert.Len(t, q.Schedule, 11)
	assert.True(t, domain.ScheduleTotal(q.Schedule).Equal(q.ChargedPremium))
	assert.Equal(t, "1475", q.AmountDueNow.String())
	assert.Nil(t, q.User)
	assert.Len(t, q.Wallets, 3)
}

func TestInsuranceQuote_NoWalletUsesReferenceCurrency(t *testing.T) {
	d := setupInsuranceService(t)
	d.insurance.EXPECT().GetPlan(gomock.Any(), int64(3)).Return(testPlan(), nil)
	d.wallets.EXPECT().ListWallets(gomock.Any(), "USR_1").Return(userWallets(), nil)
	d.users.EXPECT().GetUser(gomock.Any(), "USR_1").Return(&domain.User{UserID: "USR_1", Name: "Ann"}, nil)
	d.insurance.EXPECT().CalculatePremium(gomock.Any(), gomock.Any()).Return(decimal.NewFromInt(50), nil)

	q, err := d.svc.Quote(context.Background(), ports.QuoteRequest{
		UserID: "USR_1", PlanID: 3, StartDate: date(2024, 1, 15), EndDate: date(2024, 2, 1), Mode: domain.PaymentModeMonthly,
	})
	require.NoError(t, err)
	assert.Equal(t, "USD", q.Currency)
	assert.False(t, q.MonthlyEligible)
	assert.Equal(t, domain.PaymentModeFull, q.Mode)
	require.NotNil(t, q.User)
	assert.Equal(t, "Ann", q.User.Name)
}

func TestInsuranceService_ListPlans_UpstreamError(t *testing.T) {
	d := setupInsuranceService(t)
	d.insurance.EXPECT().ListPlans(gomock.Any()).Return(nil, upstreamFailure(http.StatusNotFound, "nope"))

	_, err := d.svc.ListPlans(context.Background())
	appErr := assertAppError(t, err, "UPS_001")
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPStatus)
	assert.Equal(t, "nope", appErr.Details)
}

func TestInsuranceService_ListPolicies_NewestFirst(t *testing.T) {
	d := setupInsuranceService(t)
	d.insurance.EXPECT().ListPolicies(gomock.Any(), "USR_1").Return([]domain.Policy{
		{PolicyID: "1", StartDate: date(2024, 1, 1)},
		{PolicyID: "2", StartDate: date(2024, 6, 1)},
		{PolicyID: "3", StartDate: date(2024, 3, 1)},
	}, nil)

	policies, err := d.svc.ListPolicies(context.Background(), "USR_1")
	require.NoError(t, err)
	ids := []string{policies[0].PolicyID, policies[1].PolicyID, policies[2].PolicyID}
	assert.Equal(t, []string{"2", "3", "1"}, ids)
}

func TestInsuranceService_ListPayments_Filter(t *testing.T) {
	payments := []domain.PolicyPayment{
		{PaymentID: "a", PolicyID: "101", PaymentStatus: domain.PaymentStatusCompleted, PaymentDate: date(2024, 1, 1)},
		{PaymentID: "b", PolicyID: "101", PaymentStatus: domain.PaymentStatusNotDue, PaymentDate: date(2024, 2, 1)},
		{PaymentID: "c", PolicyID: "202", PaymentStatus: domain.PaymentStatusCompleted, PaymentDate: date(2024, 3, 1)},
		{PaymentID: "d", PolicyID: "1010", PaymentStatus: domain.PaymentStatusCompleted, PaymentDate: date(2024, 4, 1)},
	}

	tests := []struct {
		name   string
		filter ports.PaymentFilter
		want   []string
	}{
		{"all newest first", ports.PaymentFilter{UserID: "USR_1"}, []string{"d", "c", "b", "a"}},
		{"policy substring", ports.PaymentFilter{UserID: "USR_1", PolicyID: "101"}, []string{"d", "b", "a"}},
		{"status", ports.PaymentFilter{UserID: "USR_1", Status: domain.PaymentStatusNotDue}, []string{"b"}},
		{"both", ports.PaymentFilter{UserID: "USR_1", PolicyID: "20", Status: domain.PaymentStatusCompleted}, []string{"c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupInsuranceService(t)
			in := append([]domain.PolicyPayment(nil), payments...)
			d.insurance.EXPECT().ListPayments(gomock.Any(), "USR_1").Return(in, nil)

			got, err := d.svc.ListPayments(context.Background(), tt.filter)
			require.NoError(t, err)
			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.PaymentID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
