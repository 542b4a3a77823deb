package backend

import (
	"context"
	"net/http"
	"net/url"

	"darimaids/models"
)

// GetAssignedBookings lists the worker's assignments; a 404 means none.
func (c *Client) GetAssignedBookings(ctx context.Context, token string) ([]models.Assignment, error) {
	var resp struct {
		Data []models.Assignment `json:"data"`
	}
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/v1/cleaner/getAllAssignedBookings",
		token:  token,
	}, &resp)
	if IsNotFound(err) {
		return []models.Assignment{}, nil
	}
	if err != nil {
		return nil, err
	}
	if resp.Data == nil {
		resp.Data = []models.Assignment{}
	}
	return resp.Data, nil
}

func (c *Client) GetAssignedBooking(ctx context.Context, token, bookingID string) (*models.BookingRecord, error) {
	var resp struct {
		Data models.BookingRecord `json:"data"`
	}
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/v1/cleaner/getBookingById",
		query:  url.Values{"bookingId": {bookingID}},
		token:  token,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// AcceptOrRejectBooking flips the worker's acceptance of a booking.
func (c *Client) AcceptOrRejectBooking(ctx context.Context, token, bookingID string) error {
	return c.do(ctx, request{
		method: http.MethodPatch,
		path:   "/api/v1/cleaner/acceptOrRejectBookings",
		query:  url.Values{"bookingId": {bookingID}},
		token:  token,
	}, nil)
}

func (c *Client) CompleteBooking(ctx context.Context, token, bookingID string) error {
	return c.do(ctx, request{
		method: http.MethodPatch,
		path:   "/api/v1/cleaner/completedCleaningService",
		query:  url.Values{"bookingId": {bookingID}},
		token:  token,
	}, nil)
}
