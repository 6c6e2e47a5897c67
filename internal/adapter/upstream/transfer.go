package upstream

import (
	"context"
	"net/http"
	"net/url"

	"cashout-gateway/internal/core/domain"
	"cashout-gateway/internal/core/ports"

	"github.com/shopspring/decimal"
)

// TransferClient implements ports.TransferGateway.
type TransferClient struct {
	c *Client
}

// NewTransferClient creates a transfer service adapter.
func NewTransferClient(c *Client) *TransferClient {
	return &TransferClient{c: c}
}

type sendFundRequest struct {
	FromUserID   string          `json:"FromUserId"`
	ToUserID     string          `json:"ToUserId"`
	CurrencyCode string          `json:"CurrencyCode"`
	Amount       decimal.Decimal `json:"Amount"`
}

type sendFundResponse struct {
	Success    bool       `json:"Success"`
	Message    string     `json:"Message"`
	TransferID flexString `json:"TransferId"`
}

func (a *TransferClient) SendFund(ctx context.Context, req ports.SendFundRequest) (*ports.SendFundResult, error) {
	body := sendFundRequest{
		FromUserID:   req.FromUserID,
		ToUserID:     req.ToUserID,
		CurrencyCode: domain.NormalizeCurrency(req.CurrencyCode),
		Amount:       req.Amount,
	}
	var out sendFundResponse
	resp, err := a.c.DoJSON(ctx, http.MethodPost, "/send_fund", nil, body, &out)
	if err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, a.c.Rejected(resp, out.Message)
	}
	return &ports.SendFundResult{Success: true, Message: out.Message, TransferID: out.TransferID.String()}, nil
}

type transferDTO struct {
	ID              flexString      `json:"Id"`
	FromUserID      string          `json:"FromUserId"`
	ToUserID        string          `json:"ToUserId"`
	Amount          decimal.Decimal `json:"Amount"`
	CurrencyCode    string          `json:"CurrencyCode"`
	Status          string          `json:"Status"`
	TransactionDate string          `json:"TransactionDate"`
}

type transferListResponse struct {
	Success   bool          `json:"Success"`
	Message   string        `json:"Message"`
	Transfers []transferDTO `json:"Transfers"`
}

// ListTransfers returns the user's transfers in the order the service sent them.
func (a *TransferClient) ListTransfers(ctx context.Context, userID string) ([]domain.Transfer, error) {
	var out transferListResponse
	resp, err := a.c.DoJSON(ctx, http.MethodGet, "/GetTransfers", url.Values{"UserId": {userID}}, nil, &out)
	if err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, a.c.Rejected(resp, out.Message)
	}

	transfers := make([]domain.Transfer, 0, len(out.Transfers))
	for _, t := range out.Transfers {
		transfers = append(transfers, domain.Transfer{
			ID:              t.ID.String(),
			FromUserID:      t.FromUserID,
			ToUserID:        t.ToUserID,
			Amount:          t.Amount,
			CurrencyCode:    domain.NormalizeCurrency(t.CurrencyCode),
			Status:          t.Status,
			TransactionDate: parseTime(t.TransactionDate),
		})
	}
	return transfers, nil
}
