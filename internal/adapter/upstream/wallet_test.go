package upstream

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"cashout-gateway/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletClient_ListWallets(t *testing.T) {
	c := newTestClient(t, "wallet", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/GetAllWalletByUserId", r.URL.Path)
		assert.Equal(t, "USR_1", r.URL.Query().Get("UserId"))
		_, _ = io.WriteString(w, `{
			"Success": true,
			"Message": "",
			"Wallets": [
				{"Id": 11, "UserId": "USR_1", "CurrencyCode": "usd", "Balance": 50.25, "IsActive": true, "CreatedAt": "2024-01-01T00:00:00Z"},
				{"WalletId": "W-2", "UserId": "USR_1", "CurrencyCode": "SGD", "Balance": "10"}
			]
		}`)
	})

	list, err := NewWalletClient(c).ListWallets(context.Background(), "USR_1")
	require.NoError(t, err)
	require.True(t, list.Success)
	require.Len(t, list.Wallets, 2)

	assert.Equal(t, "11", list.Wallets[0].ID)
	assert.Equal(t, "USD", list.Wallets[0].CurrencyCode)
	assert.Equal(t, "50.25", list.Wallets[0].Balance.String())
	assert.NotNil(t, list.Wallets[0].CreatedAt)

	assert.Equal(t, "W-2", list.Wallets[1].ID)
	assert.True(t, list.Wallets[1].IsActive)
}

func TestWalletClient_ListWallets_SuccessFalseIsNotAnError(t *testing.T) {
	c := newTestClient(t, "wallet", writeBody(http.StatusOK, `{"Success":false,"Message":"User has no wallets"}`))

	list, err := NewWalletClient(c).ListWallets(context.Background(), "USR_1")
	require.NoError(t, err)
	assert.False(t, list.Success)
	assert.Equal(t, "User has no wallets", list.Message)
	assert.Empty(t, list.Wallets)
}

func TestWalletClient_UpdateBalance_SendsSignedDelta(t *testing.T) {
	c := newTestClient(t, "wallet", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/UpdateWallet", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "USR_1", body["UserId"])
		assert.Equal(t, "USD", body["CurrencyCode"])
		assert.Equal(t, -12.5, body["Amount"])

		_, _ = io.WriteString(w, `{"Success":true,"Message":"Updated","NewBalance":37.5}`)
	})

	res, err := NewWalletClient(c).UpdateBalance(context.Background(), ports.WalletUpdate{
		UserID:       "USR_1",
		CurrencyCode: "usd",
		Amount:       decimal.RequireFromString("-12.5"),
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	require.NotNil(t, res.NewBalance)
	assert.Equal(t, "37.5", res.NewBalance.String())
}

func TestWalletClient_GetWallet(t *testing.T) {
	c := newTestClient(t, "wallet", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/wallets/USR_1/JPY":
			_, _ = io.WriteString(w, `{"Success":true,"Wallet":{"Id":3,"CurrencyCode":"JPY","Balance":1000}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"Message":"not found"}`)
		}
	})
	wc := NewWalletClient(c)

	wallet, err := wc.GetWallet(context.Background(), "USR_1", "jpy")
	require.NoError(t, err)
	require.NotNil(t, wallet)
	assert.Equal(t, "1000", wallet.Balance.String())

	missing, err := wc.GetWallet(context.Background(), "USR_1", "KRW")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestWalletClient_CreateWallet(t *testing.T) {
	c := newTestClient(t, "wallet", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["CurrencyCode"] == "MYR" {
			_, _ = io.WriteString(w, `{"Success":false,"Message":"Wallet already exists"}`)
			return
		}
		_, _ = io.WriteString(w, `{"Success":true}`)
	})
	wc := NewWalletClient(c)

	require.NoError(t, wc.CreateWallet(context.Background(), "USR_1", "sgd"))

	err := wc.CreateWallet(context.Background(), "USR_1", "MYR")
	ue := requireUpstreamError(t, err)
	assert.Equal(t, "Wallet already exists", ue.Message)
}
