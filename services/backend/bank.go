package backend

import (
	"context"
	"net/http"
	"net/url"

	"darimaids/models"
)

// bankResponse accepts the account under either "bank" or "data".
type bankResponse struct {
	Bank *models.BankAccount `json:"bank"`
	Data *models.BankAccount `json:"data"`
}

func (r bankResponse) account() *models.BankAccount {
	if r.Bank != nil {
		return r.Bank
	}
	return r.Data
}

// GetBank returns the worker's account, or nil when none exists.
func (c *Client) GetBank(ctx context.Context, token string) (*models.BankAccount, error) {
	var resp bankResponse
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/v1/bank/getBank",
		token:  token,
	}, &resp)
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return resp.account(), nil
}

func (c *Client) CreateBank(ctx context.Context, token string, in models.BankInput) (*models.BankAccount, error) {
	var resp bankResponse
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/v1/bank/createBank",
		token:  token,
		body:   in,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.account(), nil
}

func (c *Client) UpdateBank(ctx context.Context, token, bankID string, in models.BankInput) (*models.BankAccount, error) {
	var resp bankResponse
	err := c.do(ctx, request{
		method: http.MethodPut,
		path:   "/api/v1/bank/updateBank/" + url.PathEscape(bankID),
		token:  token,
		body:   in,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.account(), nil
}

func (c *Client) DeleteBank(ctx context.Context, token, bankID string) error {
	return c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/api/v1/bank/deleteBank",
		query:  url.Values{"bankId": {bankID}},
		token:  token,
	}, nil)
}
