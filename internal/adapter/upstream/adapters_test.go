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

func TestTransferClient_SendFund(t *testing.T) {
	c := newTestClient(t, "transfer", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/send_fund", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["FromUserId"])
		assert.Equal(t, "bob", body["ToUserId"])
		assert.Equal(t, "SGD", body["CurrencyCode"])
		_, _ = io.WriteString(w, `{"Success":true,"Message":"Transfer completed"}`)
	})

	res, err := NewTransferClient(c).SendFund(context.Background(), ports.SendFundRequest{
		FromUserID: "alice", ToUserID: "bob", CurrencyCode: "sgd", Amount: decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "Transfer completed", res.Message)
}

func TestTransferClient_SendFund_Rejected(t *testing.T) {
	c := newTestClient(t, "transfer", writeBody(http.StatusOK, `{"Success":false,"Message":"Insufficient balance"}`))

	_, err := NewTransferClient(c).SendFund(context.Background(), ports.SendFundRequest{})
	ue := requireUpstreamError(t, err)
	assert.Equal(t, "Insufficient balance", ue.Message)
}

func TestTransferClient_ListTransfers(t *testing.T) {
	c := newTestClient(t, "transfer", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/GetTransfers", r.URL.Path)
		assert.Equal(t, "alice", r.URL.Query().Get("UserId"))
		_, _ = io.WriteString(w, `{"Success":true,"Transfers":[
			{"Id":1,"FromUserId":"alice","ToUserId":"bob","Amount":5,"CurrencyCode":"sgd","Status":"Completed","TransactionDate":"2024-07-01T09:00:00.500Z"},
			{"Id":"2","FromUserId":"bob","ToUserId":"alice","Amount":"7.5","CurrencyCode":"USD","Status":"Completed","TransactionDate":"2024-07-01T09:00:01"}
		]}`)
	})

	transfers, err := NewTransferClient(c).ListTransfers(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, transfers, 2)
	assert.Equal(t, "1", transfers[0].ID)
	assert.Equal(t, "SGD", transfers[0].CurrencyCode)
	assert.Equal(t, 500, transfers[0].TransactionDate.Nanosecond()/1e6)
	assert.Equal(t, "7.5", transfers[1].Amount.String())
}

func TestUserClient_Login(t *testing.T) {
	c := newTestClient(t, "user", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["Password"] != "right" {
			_, _ = io.WriteString(w, `{"Success":false,"Message":"Invalid email or password"}`)
			return
		}
		_, _ = io.WriteString(w, `{"Success":true,"UserId":"USR_1","Name":"Ann","ReferralCode":"ANN123"}`)
	})
	uc := NewUserClient(c)

	user, err := uc.Login(context.Background(), "ann@example.com", "right")
	require.NoError(t, err)
	assert.Equal(t, "USR_1", user.UserID)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.Equal(t, "ANN123", user.ReferralCode)

	_, err = uc.Login(context.Background(), "ann@example.com", "wrong")
	ue := requireUpstreamError(t, err)
	assert.Equal(t, "Invalid email or password", ue.Message)
}

func TestUserClient_RegisterAndLookups(t *testing.T) {
	c := newTestClient(t, "user", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/Register":
			_, _ = io.WriteString(w, `{"Success":true,"UserId":"USR_2","ReferralCode":"BOB777"}`)
		case "/GetUser":
			if r.URL.Query().Get("UserId") == "USR_2" {
				_, _ = io.WriteString(w, `{"Found":true,"Name":"Bob","Email":"bob@example.com","PhoneNumber":"+6590000000"}`)
				return
			}
			_, _ = io.WriteString(w, `{"Found":false}`)
		case "/GetUserByPhone":
			if r.URL.Query().Get("PhoneNumber") == "+6590000000" {
				_, _ = io.WriteString(w, `{"Found":true,"UserId":"USR_2"}`)
				return
			}
			_, _ = io.WriteString(w, `{"Found":false}`)
		}
	})
	uc := NewUserClient(c)

	user, err := uc.Register(context.Background(), ports.Registration{Name: "Bob", Email: "bob@example.com", PhoneNumber: "+6590000000", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "USR_2", user.UserID)
	assert.Equal(t, "BOB777", user.ReferralCode)

	found, err := uc.GetUser(context.Background(), "USR_2")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Bob", found.Name)

	missing, err := uc.GetUser(context.Background(), "USR_404")
	require.NoError(t, err)
	assert.Nil(t, missing)

	id, err := uc.FindUserIDByPhone(context.Background(), "+6590000000")
	require.NoError(t, err)
	assert.Equal(t, "USR_2", id)

	none, err := uc.FindUserIDByPhone(context.Background(), "+6511111111")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestReferralClient(t *testing.T) {
	c := newTestClient(t, "referral", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/referrals/use":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "USR_2", body["NewUserId"])
			assert.Equal(t, "ANN123", body["ReferralCode"])
			_, _ = io.WriteString(w, `{"Success":true,"Message":"Referral recorded","ReferrerId":"USR_1"}`)
		case "/referrals/complete":
			_, _ = io.WriteString(w, `{"Success":false,"Message":"No pending referral"}`)
		case "/GetReferralInfo":
			_, _ = io.WriteString(w, `{"ReferralCode":"ANN123","TotalReferrals":3,"CompletedReferrals":2,"PendingReferrals":1,"TotalEarnings":20}`)
		}
	})
	rc := NewReferralClient(c)

	used, err := rc.UseCode(context.Background(), "USR_2", "ANN123")
	require.NoError(t, err)
	assert.True(t, used.Success)
	assert.Equal(t, "USR_1", used.ReferrerID)

	done, err := rc.Complete(context.Background(), "USR_2")
	require.NoError(t, err)
	assert.False(t, done.Success)
	assert.Equal(t, "No pending referral", done.Message)

	info, err := rc.GetInfo(context.Background(), "USR_1")
	require.NoError(t, err)
	assert.Equal(t, 3, info.TotalReferrals)
	assert.Equal(t, "20", info.TotalEarnings.String())
}
