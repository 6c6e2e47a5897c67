package upstream

import (
	"context"
	"net/http"
	"net/url"

	"cashout-gateway/internal/core/domain"
	"cashout-gateway/internal/core/ports"
)

// UserClient implements ports.UserGateway.
type UserClient struct {
	c *Client
}

// NewUserClient creates a user-auth service adapter.
func NewUserClient(c *Client) *UserClient {
	return &UserClient{c: c}
}

type loginRequest struct {
	Email    string `json:"Email"`
	Password string `json:"Password"`
}

type loginResponse struct {
	Success      bool   `json:"Success"`
	Message      string `json:"Message"`
	UserID       string `json:"UserId"`
	Name         string `json:"Name"`
	ReferralCode string `json:"ReferralCode"`
}

// Login verifies credentials. Rejected credentials come back as an
// *ports.UpstreamError carrying the service's message.
func (a *UserClient) Login(ctx context.Context, email, password string) (*domain.User, error) {
	var out loginResponse
	resp, err := a.c.DoJSON(ctx, http.MethodPost, "/Login", nil, loginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	if !out.Success || out.UserID == "" {
		return nil, a.c.Rejected(resp, out.Message)
	}
	return &domain.User{UserID: out.UserID, Name: out.Name, Email: email, ReferralCode: out.ReferralCode}, nil
}

type registerRequest struct {
	Name        string `json:"Name"`
	Email       string `json:"Email"`
	PhoneNumber string `json:"PhoneNumber"`
	Password    string `json:"Password"`
}

type registerResponse struct {
	Success      bool   `json:"Success"`
	Message      string `json:"Message"`
	UserID       string `json:"UserId"`
	ReferralCode string `json:"ReferralCode"`
}

func (a *UserClient) Register(ctx context.Context, reg ports.Registration) (*domain.User, error) {
	body := registerRequest{Name: reg.Name, Email: reg.Email, PhoneNumber: reg.PhoneNumber, Password: reg.Password}
	var out registerResponse
	resp, err := a.c.DoJSON(ctx, http.MethodPost, "/Register", nil, body, &out)
	if err != nil {
		return nil, err
	}
	if !out.Success || out.UserID == "" {
		return nil, a.c.Rejected(resp, out.Message)
	}
	return &domain.User{
		UserID:       out.UserID,
		Name:         reg.Name,
		Email:        reg.Email,
		PhoneNumber:  reg.PhoneNumber,
		ReferralCode: out.ReferralCode,
	}, nil
}

type getUserResponse struct {
	Found        bool   `json:"Found"`
	Name         string `json:"Name"`
	Email        string `json:"Email"`
	PhoneNumber  string `json:"PhoneNumber"`
	ReferralCode string `json:"ReferralCode"`
}

func (a *UserClient) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	var out getUserResponse
	if _, err := a.c.DoJSON(ctx, http.MethodGet, "/GetUser", url.Values{"UserId": {userID}}, nil, &out); err != nil {
		return nil, err
	}
	if !out.Found {
		return nil, nil
	}
	return &domain.User{
		UserID:       userID,
		Name:         out.Name,
		Email:        out.Email,
		PhoneNumber:  out.PhoneNumber,
		ReferralCode: out.ReferralCode,
	}, nil
}

type phoneLookupResponse struct {
	Found  bool   `json:"Found"`
	UserID string `json:"UserId"`
}

func (a *UserClient) FindUserIDByPhone(ctx context.Context, phone string) (string, error) {
	var out phoneLookupResponse
	if _, err := a.c.DoJSON(ctx, http.MethodGet, "/GetUserByPhone", url.Values{"PhoneNumber": {phone}}, nil, &out); err != nil {
		return "", err
	}
	if !out.Found {
		return "", nil
	}
	return out.UserID, nil
}
