package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cashout-gateway/internal/adapter/http/middleware"
	"cashout-gateway/internal/core/domain"
	"cashout-gateway/internal/core/ports"
	"cashout-gateway/internal/core/ports/mocks"
	"cashout-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testUserID = "USR_1"

func init() {
	gin.SetMode(gin.TestMode)
}

// serve routes one request to h as the authenticated test user.
func serve(h gin.HandlerFunc, method, route, target string, body interface{}) *httptest.ResponseRecorder {
	r := gin.New()
	r.Handle(method, route, func(c *gin.Context) {
		c.Set(middleware.CtxUserID, testUserID)
		c.Next()
	}, h)

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func data(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	d, ok := decode(t, w)["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return d
}

// --- Auth Handler Tests ---

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().Register(gomock.Any(), ports.RegisterRequest{
		Name:         "Alice Tan",
		Email:        "alice@example.com",
		PhoneNumber:  "+6591234567",
		Password:     "secret12",
		ReferralCode: "BOB-42",
	}).Return(&ports.RegisterResult{
		Session:         ports.Session{Token: "jwt", User: domain.User{UserID: "USR_9"}},
		WalletsCreated:  []string{"SGD", "USD"},
		ReferralApplied: true,
	}, nil)

	w := serve(h.Register, http.MethodPost, "/register", "/register", map[string]string{
		"name":          " Alice Tan ",
		"email":         "alice@example.com",
		"phone_number":  "+6591234567",
		"password":      "secret12",
		"referral_code": "BOB-42",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	d := data(t, w)
	assert.Equal(t, "jwt", d["token"])
	assert.Equal(t, true, d["referral_applied"])
	assert.Len(t, d["wallets_created"], 2)
}

func TestRegister_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	// Empty body => binding error
	w := serve(h.Register, http.MethodPost, "/register", "/register", "{}")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_001", decode(t, w)["error_code"])
}

func TestRegister_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrRegistrationRejected("Email already registered"))

	w := serve(h.Register, http.MethodPost, "/register", "/register", map[string]string{
		"name": "Alice", "email": "alice@example.com", "phone_number": "+6591234567", "password": "secret12",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "AUTH_002", resp["error_code"])
	assert.Equal(t, "Email already registered", resp["error"])
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	expiry := time.Now().Add(24 * time.Hour)
	// password reaches the service unescaped
	mockAuth.EXPECT().Login(gomock.Any(), "alice@example.com", "p<a>ss").Return(&ports.Session{
		Token:     "jwt-token-123",
		ExpiresAt: expiry,
		User:      domain.User{UserID: "USR_1", Name: "Alice"},
	}, nil)

	w := serve(h.Login, http.MethodPost, "/login", "/login", map[string]string{
		"email": "alice@example.com", "password": "p<a>ss",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	d := data(t, w)
	assert.Equal(t, "jwt-token-123", d["token"])
	assert.Equal(t, "USR_1", d["user"].(map[string]interface{})["user_id"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().Login(gomock.Any(), "bad@example.com", "bad").Return(nil, apperror.ErrInvalidCredentials())

	w := serve(h.Login, http.MethodPost, "/login", "/login", map[string]string{
		"email": "bad@example.com", "password": "bad",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_001", decode(t, w)["error_code"])
}

func TestMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().Profile(gomock.Any(), testUserID).Return(&domain.User{UserID: testUserID, Name: "Alice"}, nil)

	w := serve(h.Me, http.MethodGet, "/me", "/me", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Alice", data(t, w)["name"])
}

// --- Health Check Tests ---

func TestHealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	redisCheck := mocks.NewMockHealthChecker(ctrl)
	redisCheck.EXPECT().Name().Return("redis").AnyTimes()
	pgCheck := mocks.NewMockHealthChecker(ctrl)
	pgCheck.EXPECT().Name().Return("postgresql").AnyTimes()

	t.Run("healthy", func(t *testing.T) {
		redisCheck.EXPECT().Ping(gomock.Any()).Return(nil)
		pgCheck.EXPECT().Ping(gomock.Any()).Return(nil)

		w := serve(HealthCheck(redisCheck, pgCheck), http.MethodGet, "/health", "/health", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "healthy", decode(t, w)["status"])
	})

	t.Run("degraded", func(t *testing.T) {
		redisCheck.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
		pgCheck.EXPECT().Ping(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return nil
		})

		w := serve(HealthCheck(redisCheck, pgCheck), http.MethodGet, "/health", "/health", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		resp := decode(t, w)
		assert.Equal(t, "degraded", resp["status"])
		deps := resp["dependencies"].(map[string]interface{})
		assert.Equal(t, "unhealthy", deps["redis"].(map[string]interface{})["status"])
		assert.Equal(t, "healthy", deps["postgresql"].(map[string]interface{})["status"])
	})
}

func TestBindJSON_BodyTooLarge(t *testing.T) {
	r := gin.New()
	r.Use(middleware.MaxBodySize(32))
	r.POST("/test", func(c *gin.Context) {
		var req struct {
			Name string `json:"name"`
		}
		if bindJSON(c, &req) {
			c.Status(http.StatusOK)
		}
	})

	// chunked body: no Content-Length, so the reader enforces the limit
	body := bytes.NewReader([]byte(`{"name":"` + string(bytes.Repeat([]byte("x"), 64)) + `"}`))
	req := httptest.NewRequest(http.MethodPost, "/test", struct{ *bytes.Reader }{body})
	req.ContentLength = -1
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, "VAL_005", decode(t, w)["error_code"])
}
