package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"darimaids/models"
)

func (c *Client) authCall(ctx context.Context, path string, body interface{}) (*models.AuthResult, error) {
	var resp struct {
		Data models.AuthResult `json:"data"`
	}
	if err := c.do(ctx, request{method: http.MethodPost, path: path, body: body}, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) CreateCustomer(ctx context.Context, req models.SignupRequest) (*models.AuthResult, error) {
	return c.authCall(ctx, "/api/v1/auth/createCustomer", req)
}

func (c *Client) CreateCleaner(ctx context.Context, req models.SignupRequest) (*models.AuthResult, error) {
	return c.authCall(ctx, "/api/v1/auth/createCleaner", req)
}

func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResult, error) {
	return c.authCall(ctx, "/api/v1/auth/login", req)
}

// VerifyOTP confirms a signup email with the one-time code.
func (c *Client) VerifyOTP(ctx context.Context, otp string) error {
	return c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/v1/auth/verifyOtp",
		body:   map[string]string{"otp": otp},
	}, nil)
}

// ViewProfile returns the caller's profile as the backend sent it.
func (c *Client) ViewProfile(ctx context.Context, token string) (json.RawMessage, error) {
	var resp struct {
		Data json.RawMessage `json:"data"`
	}
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/v1/auth/viewProfile",
		token:  token,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}
