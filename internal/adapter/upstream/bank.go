package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"cashout-gateway/internal/core/ports"

	"github.com/shopspring/decimal"
)

// BankClient implements ports.BankGateway against the partner bank's
// DepositCash endpoint.
type BankClient struct {
	c             *Client
	targetAccount string
	configured    bool
}

// NewBankClient creates a bank gateway adapter. configured reports whether
// every credential was supplied; deposits are refused otherwise.
func NewBankClient(c *Client, targetAccount string, configured bool) *BankClient {
	return &BankClient{c: c, targetAccount: targetAccount, configured: configured}
}

func (a *BankClient) Configured() bool {
	return a.configured && a.c.Configured() && a.targetAccount != ""
}

type depositCashRequest struct {
	ConsumerID    string          `json:"consumerId"`
	TransactionID string          `json:"transactionId"`
	AccountID     string          `json:"accountId"`
	Amount        decimal.Decimal `json:"amount"`
	Narrative     string          `json:"narrative"`
}

// DepositCash credits the configured target account. The gateway's answer
// is passed back as decoded JSON when possible and as text otherwise.
func (a *BankClient) DepositCash(ctx context.Context, dep ports.BankDeposit) (*ports.BankDepositResult, error) {
	if !a.Configured() {
		return nil, &ports.UpstreamError{Service: a.c.Service(), Message: "bank gateway credentials not configured", Err: ports.ErrNotConfigured}
	}

	body := depositCashRequest{
		ConsumerID:    "0",
		TransactionID: dep.TransactionID,
		AccountID:     dep.AccountID,
		Amount:        dep.Amount,
		Narrative:     dep.Narrative,
	}
	path := "/account/" + url.PathEscape(a.targetAccount) + "/DepositCash"
	resp, err := a.c.Do(ctx, http.MethodPut, path, nil, body)
	if err != nil {
		return nil, err
	}

	var decoded any
	if err := json.Unmarshal(resp.Body, &decoded); err != nil {
		decoded = string(resp.Body)
	}
	return &ports.BankDepositResult{Status: resp.Status, Body: decoded}, nil
}
