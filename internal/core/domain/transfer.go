package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transfer is a peer transfer as recorded by the transfer service.
type Transfer struct {
	ID              string          `json:"id"`
	FromUserID      string          `json:"from_user_id"`
	ToUserID        string          `json:"to_user_id"`
	Amount          decimal.Decimal `json:"amount"`
	CurrencyCode    string          `json:"currency_code"`
	Status          string          `json:"status"`
	TransactionDate time.Time       `json:"transaction_date"`
}

// LedgerRow is a transfer as seen by one user: outgoing amounts are negative,
// incoming amounts positive.
type LedgerRow struct {
	ID           string          `json:"id"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currency_code"`
	Counterparty string          `json:"counterparty,omitempty"`
	Status       string          `json:"status"`
	Timestamp    time.Time       `json:"timestamp"`
}

// ProjectTransfer signs a transfer for the viewing user. A transfer the user
// both sent and received (an exchange leg) keeps the sign reported upstream.
func ProjectTransfer(t Transfer, viewer string) LedgerRow {
	row := LedgerRow{
		ID:           t.ID,
		CurrencyCode: NormalizeCurrency(t.CurrencyCode),
		Status:       t.Status,
		Timestamp:    t.TransactionDate,
	}

	outgoing := strings.EqualFold(t.FromUserID, viewer)
	incoming := strings.EqualFold(t.ToUserID, viewer)
	switch {
	case outgoing && !incoming:
		row.Amount = t.Amount.Abs().Neg()
		row.Counterparty = t.ToUserID
	case incoming && !outgoing:
		row.Amount = t.Amount.Abs()
		row.Counterparty = t.FromUserID
	default:
		row.Amount = t.Amount
	}
	return row
}
