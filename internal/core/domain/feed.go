package domain

import (
	"fmt"
	"time"
)

// ExchangeMatchWindow is the widest gap between the two legs of a currency
// exchange that are still shown as one entry.
const ExchangeMatchWindow = 2000 * time.Millisecond

// FeedEntryKind distinguishes plain ledger rows from paired exchange legs.
type FeedEntryKind string

const (
	FeedEntryTransfer FeedEntryKind = "transfer"
	FeedEntryExchange FeedEntryKind = "exchange"
)

// FeedEntry is one line of the transaction feed.
type FeedEntry struct {
	Kind        FeedEntryKind `json:"kind"`
	Description string        `json:"description"`
	Timestamp   time.Time     `json:"timestamp"`
	Row         *LedgerRow    `json:"row,omitempty"`
	Debit       *LedgerRow    `json:"debit,omitempty"`
	Credit      *LedgerRow    `json:"credit,omitempty"`
}

// ReconcileFeed pairs each unmatched debit with the first later unmatched
// credit in a different currency whose timestamp is within
// ExchangeMatchWindow, emitting a single exchange entry for the pair. Every
// other row is emitted on its own. Input order is preserved and rows are
// never modified. Amounts are not compared.
func ReconcileFeed(rows []LedgerRow) []FeedEntry {
	matched := make([]bool, len(rows))
	entries := make([]FeedEntry, 0, len(rows))

	for i := range rows {
		if matched[i] {
			continue
		}
		row := rows[i]

		if row.Amount.IsNegative() {
			if j := findCreditLeg(rows, matched, i); j >= 0 {
				matched[i], matched[j] = true, true
				debit, credit := rows[i], rows[j]
				entries = append(entries, FeedEntry{
					Kind:        FeedEntryExchange,
					Description: fmt.Sprintf("Currency Exchange %s → %s", debit.CurrencyCode, credit.CurrencyCode),
					Timestamp:   debit.Timestamp,
					Debit:       &debit,
					Credit:      &credit,
				})
				continue
			}
		}

		entries = append(entries, FeedEntry{
			Kind:        FeedEntryTransfer,
			Description: transferDescription(row),
			Timestamp:   row.Timestamp,
			Row:         &row,
		})
	}
	return entries
}

func findCreditLeg(rows []LedgerRow, matched []bool, debit int) int {
	d := rows[debit]
	if d.Timestamp.IsZero() {
		return -1
	}
	for j := debit + 1; j < len(rows); j++ {
		c := rows[j]
		if matched[j] || !c.Amount.IsPositive() || c.Timestamp.IsZero() {
			continue
		}
		if NormalizeCurrency(c.CurrencyCode) == NormalizeCurrency(d.CurrencyCode) {
			continue
		}
		if absDuration(c.Timestamp.Sub(d.Timestamp)) <= ExchangeMatchWindow {
			return j
		}
	}
	return -1
}

func transferDescription(r LedgerRow) string {
	if r.Amount.IsNegative() {
		if r.Counterparty != "" {
			return "Transfer to " + r.Counterparty
		}
		return "Transfer sent"
	}
	if r.Counterparty != "" {
		return "Transfer from " + r.Counterparty
	}
	return "Transfer received"
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
