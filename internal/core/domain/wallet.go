package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is a request-scoped copy of a balance held by the wallet service.
type Wallet struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	CurrencyCode string          `json:"currency_code"`
	Balance      decimal.Decimal `json:"balance"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    *time.Time      `json:"created_at,omitempty"`
	UpdatedAt    *time.Time      `json:"updated_at,omitempty"`
}

// FindWalletByCurrency returns the wallet holding currency, or nil.
func FindWalletByCurrency(wallets []Wallet, currency string) *Wallet {
	for i := range wallets {
		if strings.EqualFold(wallets[i].CurrencyCode, currency) {
			return &wallets[i]
		}
	}
	return nil
}

// FindWalletByID returns the wallet with the given id, or nil.
func FindWalletByID(wallets []Wallet, id string) *Wallet {
	for i := range wallets {
		if wallets[i].ID == id {
			return &wallets[i]
		}
	}
	return nil
}

// Covers reports whether the wallet balance is at least amount.
func (w Wallet) Covers(amount decimal.Decimal) bool {
	return w.Balance.GreaterThanOrEqual(amount)
}
