package upstream

import (
	"context"
	"net/http"
	"net/url"

	"cashout-gateway/internal/core/domain"
	"cashout-gateway/internal/core/ports"

	"github.com/shopspring/decimal"
)

// ExchangeClient implements ports.ExchangeGateway.
type ExchangeClient struct {
	c *Client
}

// NewExchangeClient creates an exchange service adapter.
func NewExchangeClient(c *Client) *ExchangeClient {
	return &ExchangeClient{c: c}
}

// rateResponse covers every shape the rate endpoint has been seen to return.
type rateResponse struct {
	Success      *bool            `json:"Success"`
	Rate         *decimal.Decimal `json:"Rate"`
	LowerRate    *decimal.Decimal `json:"rate"`
	ExchangeRate *decimal.Decimal `json:"ExchangeRate"`
	Response     *struct {
		Rate         *decimal.Decimal `json:"rate"`
		ExchangeRate *decimal.Decimal `json:"ExchangeRate"`
	} `json:"Response"`
}

func (r rateResponse) pick() *decimal.Decimal {
	switch {
	case r.Rate != nil && (r.Success == nil || *r.Success):
		return r.Rate
	case r.Response != nil && r.Response.Rate != nil:
		return r.Response.Rate
	case r.Response != nil && r.Response.ExchangeRate != nil:
		return r.Response.ExchangeRate
	case r.LowerRate != nil:
		return r.LowerRate
	case r.ExchangeRate != nil:
		return r.ExchangeRate
	}
	return nil
}

// GetRate returns how many units of to one unit of from buys. A response
// without a recognisable rate is an error.
func (a *ExchangeClient) GetRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	from, to = domain.NormalizeCurrency(from), domain.NormalizeCurrency(to)
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	q := url.Values{"FromCurrency": {from}, "ToCurrency": {to}}
	resp, err := a.c.Do(ctx, http.MethodGet, "/ExchangeRate", q, nil)
	if err != nil {
		return decimal.Zero, err
	}

	var out rateResponse
	if err := a.c.decode(resp, &out); err != nil {
		return decimal.Zero, err
	}
	rate := out.pick()
	if rate == nil || !rate.IsPositive() {
		return decimal.Zero, a.c.Rejected(resp, "no exchange rate in response")
	}
	return *rate, nil
}

type convertRequest struct {
	UserID       string          `json:"UserId"`
	FromCurrency string          `json:"FromCurrency"`
	ToCurrency   string          `json:"ToCurrency"`
	Amount       decimal.Decimal `json:"Amount"`
}

type convertResponse struct {
	Success          bool            `json:"Success"`
	ConvertedAmount  decimal.Decimal `json:"ConvertedAmount"`
	TransactionID    flexString      `json:"TransactionId"`
	UsedExchangeRate decimal.Decimal `json:"UsedExchangeRate"`
	ErrorMessage     string          `json:"ErrorMessage"`
}

// Convert performs a conversion between two of the user's wallets. A 2xx
// answer with Success=false is returned as a result, not an error.
func (a *ExchangeClient) Convert(ctx context.Context, req ports.ConversionRequest) (*ports.ConversionResult, error) {
	body := convertRequest{
		UserID:       req.UserID,
		FromCurrency: domain.NormalizeCurrency(req.FromCurrency),
		ToCurrency:   domain.NormalizeCurrency(req.ToCurrency),
		Amount:       req.Amount,
	}
	var out convertResponse
	if _, err := a.c.DoJSON(ctx, http.MethodPut, "/ExchangeCurrency", nil, body, &out); err != nil {
		return nil, err
	}
	return &ports.ConversionResult{
		Success:          out.Success,
		ConvertedAmount:  out.ConvertedAmount,
		TransactionID:    out.TransactionID.String(),
		UsedExchangeRate: out.UsedExchangeRate,
		ErrorMessage:     out.ErrorMessage,
	}, nil
}
