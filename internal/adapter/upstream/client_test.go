package upstream

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"cashout-gateway/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ ports.WalletGateway    = (*WalletClient)(nil)
	_ ports.ExchangeGateway  = (*ExchangeClient)(nil)
	_ ports.TransferGateway  = (*TransferClient)(nil)
	_ ports.InsuranceGateway = (*InsuranceClient)(nil)
	_ ports.BankGateway      = (*BankClient)(nil)
	_ ports.UserGateway      = (*UserClient)(nil)
	_ ports.ReferralGateway  = (*ReferralClient)(nil)
)

// newTestClient starts a server running h and returns a client pointed at it.
func newTestClient(t *testing.T, service string, h http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(service, srv.URL, srv.Client(), zerolog.Nop(), opts...)
}

func writeBody(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func requireUpstreamError(t *testing.T, err error) *ports.UpstreamError {
	t.Helper()
	ue, ok := ports.AsUpstreamError(err)
	require.True(t, ok, "expected *ports.UpstreamError, got %v", err)
	return ue
}

func TestClient_DoJSON_Decodes(t *testing.T) {
	c := newTestClient(t, "wallet", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/things", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("id"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"a":1}`, string(body))
		_, _ = io.WriteString(w, `{"Success":true,"Message":"ok"}`)
	})

	var out envelope
	resp, err := c.DoJSON(context.Background(), http.MethodPost, "/things", map[string][]string{"id": {"1"}}, map[string]int{"a": 1}, &out)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.True(t, out.Success)
	assert.Equal(t, "ok", out.Message)
}

func TestClient_DoJSON_BadBodies(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"empty", "   ", "returned an empty response"},
		{"html", "<!DOCTYPE html><html><body>Maintenance</body></html>", "returned an HTML page instead of JSON"},
		{"html lowercase", "<html>oops</html>", "returned an HTML page instead of JSON"},
		{"malformed", `{"Success":tru`, "returned malformed JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, "wallet", writeBody(http.StatusOK, tt.body))

			var out envelope
			_, err := c.DoJSON(context.Background(), http.MethodGet, "/x", nil, nil, &out)

			ue := requireUpstreamError(t, err)
			assert.Equal(t, "wallet", ue.Service)
			assert.Equal(t, http.StatusOK, ue.Status)
			assert.Equal(t, tt.message, ue.Message)
		})
	}
}

func TestClient_Do_NonSuccessStatus(t *testing.T) {
	c := newTestClient(t, "transfer", writeBody(http.StatusServiceUnavailable, `{"Message":"down for maintenance"}`))

	_, err := c.Do(context.Background(), http.MethodGet, "/x", nil, nil)

	ue := requireUpstreamError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, ue.Status)
	assert.Equal(t, "down for maintenance", ue.Message)
	assert.Equal(t, map[string]any{"Message": "down for maintenance"}, ue.Details())
	assert.Equal(t, http.StatusServiceUnavailable, ue.RelayStatus())
}

func TestClient_Do_NonJSONErrorBody(t *testing.T) {
	c := newTestClient(t, "bank", writeBody(http.StatusBadRequest, "account frozen"))

	_, err := c.Do(context.Background(), http.MethodPut, "/x", nil, nil)

	ue := requireUpstreamError(t, err)
	assert.Equal(t, "Bad Request", ue.Message)
	assert.Equal(t, "account frozen", ue.Details())
	assert.Equal(t, http.StatusBadGateway, ue.RelayStatus())
}

type failingHTTPClient struct{ err error }

func (f failingHTTPClient) Do(*http.Request) (*http.Response, error) { return nil, f.err }

func TestClient_Do_TransportError(t *testing.T) {
	boom := errors.New("connection refused")
	c := NewClient("exchange", "http://upstream.invalid", failingHTTPClient{err: boom}, zerolog.Nop())

	_, err := c.Do(context.Background(), http.MethodGet, "/x", nil, nil)

	ue := requireUpstreamError(t, err)
	assert.Equal(t, 0, ue.Status)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, http.StatusBadGateway, ue.RelayStatus())
}

func TestClient_NotConfigured(t *testing.T) {
	c := NewClient("policy", "", http.DefaultClient, zerolog.Nop())

	assert.False(t, c.Configured())
	_, err := c.Do(context.Background(), http.MethodGet, "/x", nil, nil)
	assert.ErrorIs(t, err, ports.ErrNotConfigured)
}

func TestClient_BasicAuth(t *testing.T) {
	c := newTestClient(t, "bank", func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "bank-user", user)
		assert.Equal(t, "bank-pass", pass)
		_, _ = io.WriteString(w, `{}`)
	}, WithBasicAuth("bank-user", "bank-pass"))

	_, err := c.Do(context.Background(), http.MethodGet, "/x", nil, nil)
	require.NoError(t, err)
}

func TestClient_TrimsTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(func() http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/rest/x", r.URL.Path)
			_, _ = io.WriteString(w, `{}`)
		}
	}())
	defer srv.Close()

	c := NewClient("wallet", srv.URL+"/rest/", srv.Client(), zerolog.Nop())
	_, err := c.Do(context.Background(), http.MethodGet, "/x", nil, nil)
	require.NoError(t, err)
}

func TestParseTime(t *testing.T) {
	assert.False(t, parseTime("2024-07-01T09:00:00.123Z").IsZero())
	assert.False(t, parseTime("2024-07-01T09:00:00").IsZero())
	assert.False(t, parseTime("2024-07-01 09:00:00").IsZero())
	assert.False(t, parseTime("2024-07-01").IsZero())
	assert.True(t, parseTime("").IsZero())
	assert.True(t, parseTime("yesterday").IsZero())
	assert.Nil(t, parseTimePtr(""))
}
