package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"

	"github.com/shopspring/decimal"
)

// fakeServices is one HTTP server standing in for every remote service the
// gateway talks to. Paths do not overlap, so a single mux serves them all.
type fakeServices struct {
	server *httptest.Server

	mu       sync.Mutex
	balances map[string]decimal.Decimal // currency -> balance for testUserID
	created  []string                   // currencies passed to create wallet
	payments []map[string]any           // addPayment bodies in arrival order
	deposits []map[string]any           // bank DepositCash bodies

	bankStatus     atomic.Int32
	referralCalls  atomic.Int32
	referralUseHit atomic.Int32
}

const (
	testUserID   = "USR_1"
	bankAccount  = "0000002578"
	bankUser     = "bank-user"
	bankPassword = "bank-pass"
)

func newFakeServices() *fakeServices {
	f := &fakeServices{
		balances: map[string]decimal.Decimal{
			"SGD": decimal.NewFromInt(100),
			"USD": decimal.NewFromInt(100),
		},
	}
	f.bankStatus.Store(http.StatusOK)

	mux := http.NewServeMux()

	// user service
	mux.HandleFunc("POST /Login", func(w http.ResponseWriter, r *http.Request) {
		var body struct{ Email, Password string }
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Password != "secret123" {
			writeJSON(w, http.StatusOK, map[string]any{"Success": false, "Message": "Invalid email or password"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"Success": true, "UserId": testUserID, "Name": "Alice", "ReferralCode": "ALICE1"})
	})
	mux.HandleFunc("POST /Register", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"Success": true, "UserId": testUserID, "ReferralCode": "ALICE1"})
	})
	mux.HandleFunc("GET /GetUser", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"Found": true, "Name": "Alice", "Email": "alice@example.com"})
	})

	// wallet service
	mux.HandleFunc("GET /GetAllWalletByUserId", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		wallets := make([]map[string]any, 0, len(f.balances))
		for _, cur := range []string{"SGD", "USD"} {
			wallets = append(wallets, map[string]any{
				"Id":           "W-" + cur,
				"UserId":       testUserID,
				"CurrencyCode": cur,
				"Balance":      f.balances[cur],
			})
		}
		writeJSON(w, http.StatusOK, map[string]any{"Success": true, "Wallets": wallets})
	})
	mux.HandleFunc("PUT /UpdateWallet", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			UserID       string          `json:"UserId"`
			CurrencyCode string          `json:"CurrencyCode"`
			Amount       decimal.Decimal `json:"Amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"Message": err.Error()})
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		next := f.balances[body.CurrencyCode].Add(body.Amount)
		if next.IsNegative() {
			writeJSON(w, http.StatusOK, map[string]any{"Success": false, "Message": "Insufficient funds"})
			return
		}
		f.balances[body.CurrencyCode] = next
		writeJSON(w, http.StatusOK, map[string]any{"Success": true, "NewBalance": next})
	})
	mux.HandleFunc("POST /wallets", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			CurrencyCode string `json:"CurrencyCode"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.created = append(f.created, body.CurrencyCode)
		f.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"Success": true})
	})

	// bank gateway
	mux.HandleFunc("PUT /account/{id}/DepositCash", func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != bankUser || pass != bankPassword || r.PathValue("id") != bankAccount {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"Message": "unauthorized"})
			return
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.deposits = append(f.deposits, body)
		f.mu.Unlock()

		status := int(f.bankStatus.Load())
		if status != http.StatusOK {
			writeJSON(w, status, map[string]any{"Message": "bank unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"status": "SETTLED", "transactionId": body["transactionId"]})
	})

	// referral service
	mux.HandleFunc("POST /referrals/complete", func(w http.ResponseWriter, r *http.Request) {
		f.referralCalls.Add(1)
		writeJSON(w, http.StatusOK, map[string]any{"Success": true, "ReferrerId": "USR_9", "RefereeId": testUserID})
	})
	mux.HandleFunc("POST /referrals/use", func(w http.ResponseWriter, r *http.Request) {
		f.referralUseHit.Add(1)
		writeJSON(w, http.StatusOK, map[string]any{"Success": true, "ReferrerId": "USR_9", "RefereeId": testUserID})
	})

	// insurance plan and policy services
	plan := map[string]any{
		"plan_ID":         7,
		"plan_Name":       "Travel Basic",
		"plan_Premium":    120,
		"plan_Country":    "Japan",
		"plan_Provider":   "Acme Assurance",
		"coverage_Amount": "50000",
		"coverage_Scope":  "Medical",
	}
	mux.HandleFunc("GET /insuranceplans", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"InsurancePlanList": []any{plan}})
	})
	mux.HandleFunc("GET /specificPlan", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("planID") != "7" {
			writeJSON(w, http.StatusNotFound, map[string]any{"Message": "plan not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"InsurancePlan": plan})
	})
	mux.HandleFunc("POST /payments_v1/calculatePremium", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("120.00"))
	})
	mux.HandleFunc("POST /policy_v1/addPolicy", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"policy_ID": 501})
	})
	mux.HandleFunc("POST /payments_v1/addPayment", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.payments = append(f.payments, body)
		f.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"Success": true})
	})

	f.server = httptest.NewServer(mux)
	return f
}

func (f *fakeServices) balance(currency string) decimal.Decimal {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.balances[currency]
}

func (f *fakeServices) recordedPayments() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.payments...)
}

func (f *fakeServices) createdWallets() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.created...)
}

func (f *fakeServices) close() {
	f.server.Close()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
