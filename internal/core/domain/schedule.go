package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyMinimumSpan is the shortest coverage period that may be paid monthly.
const MonthlyMinimumSpan = 90 * 24 * time.Hour

// DateLayout is the calendar date format exchanged with the policy service.
const DateLayout = "2006-01-02"

// BillingMonths returns the number of monthly billing periods between start
// and end. It is the calendar month difference, one less when end falls on an
// earlier day of month than start, and never below 1.
func BillingMonths(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	if months < 1 {
		return 1
	}
	return months
}

// MonthlyEligible reports whether the coverage span allows monthly billing.
func MonthlyEligible(start, end time.Time) bool {
	return !end.Before(start.Add(MonthlyMinimumSpan))
}

// ResolvePaymentMode downgrades a monthly request to full payment when the
// span is too short.
func ResolvePaymentMode(requested PaymentMode, start, end time.Time) PaymentMode {
	if requested == PaymentModeMonthly && MonthlyEligible(start, end) {
		return PaymentModeMonthly
	}
	return PaymentModeFull
}

// Instalment is one row of a payment schedule.
type Instalment struct {
	Sequence    int             `json:"sequence"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Status      PaymentStatus   `json:"status"`
	Type        PaymentType     `json:"type"`
	Description string          `json:"description"`
}

// ScheduleInput holds everything needed to lay out a policy's instalments.
type ScheduleInput struct {
	Premium  decimal.Decimal
	Currency string
	Start    time.Time
	End      time.Time
	Mode     PaymentMode
	Today    time.Time
}

// BuildSchedule lays out the instalments for a premium. Full mode yields a
// single completed row. Monthly mode yields BillingMonths rows: the first is
// completed today, later rows are not due and dated on the monthly
// anniversaries of the start date. Amounts are rounded to the currency's
// minor unit and the last row absorbs the remainder so rows sum to premium.
func BuildSchedule(in ScheduleInput) []Instalment {
	if in.Mode != PaymentModeMonthly {
		return []Instalment{{
			Sequence:    1,
			Date:        in.Today,
			Amount:      RoundToCurrency(in.Premium, in.Currency),
			Status:      PaymentStatusCompleted,
			Type:        PaymentTypeFull,
			Description: "Full payment received",
		}}
	}

	months := BillingMonths(in.Start, in.End)
	premium := RoundToCurrency(in.Premium, in.Currency)
	instalment := RoundToCurrency(premium.Div(decimal.NewFromInt(int64(months))), in.Currency)
	last := premium.Sub(instalment.Mul(decimal.NewFromInt(int64(months - 1))))

	rows := make([]Instalment, 0, months)
	for i := 0; i < months; i++ {
		row := Instalment{
			Sequence: i + 1,
			Amount:   instalment,
			Type:     PaymentTypeMonthly,
		}
		if i == months-1 {
			row.Amount = last
		}
		if i == 0 {
			row.Date = in.Today
			row.Status = PaymentStatusCompleted
			row.Description = fmt.Sprintf("Initial instalment (1/%d)", months)
		} else {
			row.Date = in.Start.AddDate(0, i, 0)
			row.Status = PaymentStatusNotDue
			row.Description = fmt.Sprintf("Scheduled instalment (%d/%d)", i+1, months)
		}
		rows = append(rows, row)
	}
	return rows
}

// AmountDueNow sums the rows that are charged immediately.
func AmountDueNow(rows []Instalment) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		if r.Status == PaymentStatusCompleted {
			total = total.Add(r.Amount)
		}
	}
	return total
}

// ScheduleTotal sums every row of a schedule.
func ScheduleTotal(rows []Instalment) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Amount)
	}
	return total
}

// ValidateCoverageDates checks a requested coverage period against today.
func ValidateCoverageDates(start, end, today time.Time) error {
	if start.Before(truncateDay(today)) {
		return fmt.Errorf("start date cannot be in the past")
	}
	if !end.After(start) {
		return fmt.Errorf("end date must be after start date")
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD calendar date in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
