package upstream

import (
	"context"
	"net/http"
	"net/url"

	"cashout-gateway/internal/core/domain"
	"cashout-gateway/internal/core/ports"

	"github.com/shopspring/decimal"
)

// WalletClient implements ports.WalletGateway.
type WalletClient struct {
	c *Client
}

// NewWalletClient creates a wallet service adapter.
func NewWalletClient(c *Client) *WalletClient {
	return &WalletClient{c: c}
}

type walletDTO struct {
	ID           flexString      `json:"Id"`
	WalletID     flexString      `json:"WalletId"`
	UserID       string          `json:"UserId"`
	CurrencyCode string          `json:"CurrencyCode"`
	Balance      decimal.Decimal `json:"Balance"`
	IsActive     *bool           `json:"IsActive"`
	CreatedAt    string          `json:"CreatedAt"`
	UpdatedAt    string          `json:"UpdatedAt"`
}

func (w walletDTO) toDomain() domain.Wallet {
	id := w.ID.String()
	if id == "" {
		id = w.WalletID.String()
	}
	active := true
	if w.IsActive != nil {
		active = *w.IsActive
	}
	return domain.Wallet{
		ID:           id,
		UserID:       w.UserID,
		CurrencyCode: domain.NormalizeCurrency(w.CurrencyCode),
		Balance:      w.Balance,
		IsActive:     active,
		CreatedAt:    parseTimePtr(w.CreatedAt),
		UpdatedAt:    parseTimePtr(w.UpdatedAt),
	}
}

type walletListResponse struct {
	Success bool        `json:"Success"`
	Message string      `json:"Message"`
	Wallets []walletDTO `json:"Wallets"`
}

func (a *WalletClient) ListWallets(ctx context.Context, userID string) (*ports.WalletList, error) {
	var out walletListResponse
	if _, err := a.c.DoJSON(ctx, http.MethodGet, "/GetAllWalletByUserId", url.Values{"UserId": {userID}}, nil, &out); err != nil {
		return nil, err
	}

	list := &ports.WalletList{Success: out.Success, Message: out.Message}
	for _, w := range out.Wallets {
		list.Wallets = append(list.Wallets, w.toDomain())
	}
	return list, nil
}

type walletGetResponse struct {
	Success bool       `json:"Success"`
	Message string     `json:"Message"`
	Wallet  *walletDTO `json:"Wallet"`
}

// GetWallet returns nil, nil when the user holds no wallet in currency.
func (a *WalletClient) GetWallet(ctx context.Context, userID, currency string) (*domain.Wallet, error) {
	var out walletGetResponse
	path := "/wallets/" + url.PathEscape(userID) + "/" + url.PathEscape(domain.NormalizeCurrency(currency))
	if _, err := a.c.DoJSON(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		if ue, ok := ports.AsUpstreamError(err); ok && ue.Status == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	if !out.Success || out.Wallet == nil {
		return nil, nil
	}
	w := out.Wallet.toDomain()
	return &w, nil
}

type walletUpdateRequest struct {
	UserID       string          `json:"UserId"`
	CurrencyCode string          `json:"CurrencyCode"`
	Amount       decimal.Decimal `json:"Amount"`
}

type walletUpdateResponse struct {
	Success    bool             `json:"Success"`
	Message    string           `json:"Message"`
	NewBalance *decimal.Decimal `json:"NewBalance"`
}

// UpdateBalance applies a signed delta. A 2xx answer with Success=false is
// returned as a result, not an error.
func (a *WalletClient) UpdateBalance(ctx context.Context, update ports.WalletUpdate) (*ports.WalletUpdateResult, error) {
	req := walletUpdateRequest{
		UserID:       update.UserID,
		CurrencyCode: domain.NormalizeCurrency(update.CurrencyCode),
		Amount:       update.Amount,
	}
	var out walletUpdateResponse
	if _, err := a.c.DoJSON(ctx, http.MethodPut, "/UpdateWallet", nil, req, &out); err != nil {
		return nil, err
	}
	return &ports.WalletUpdateResult{Success: out.Success, Message: out.Message, NewBalance: out.NewBalance}, nil
}

type walletCreateRequest struct {
	UserID       string `json:"UserId"`
	CurrencyCode string `json:"CurrencyCode"`
}

type envelope struct {
	Success bool   `json:"Success"`
	Message string `json:"Message"`
}

func (a *WalletClient) CreateWallet(ctx context.Context, userID, currency string) error {
	req := walletCreateRequest{UserID: userID, CurrencyCode: domain.NormalizeCurrency(currency)}
	var out envelope
	resp, err := a.c.DoJSON(ctx, http.MethodPost, "/wallets", nil, req, &out)
	if err != nil {
		return err
	}
	if !out.Success {
		return a.c.Rejected(resp, out.Message)
	}
	return nil
}
