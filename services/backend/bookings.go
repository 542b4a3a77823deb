package backend

import (
	"context"
	"net/http"
	"net/url"

	"darimaids/models"
)

// CreateBooking submits a booking and returns its checkout data.
func (c *Client) CreateBooking(ctx context.Context, payload models.SubmissionPayload) (*models.CreateBookingData, error) {
	var resp struct {
		Data        models.CreateBookingData `json:"data"`
		CheckoutURL string                   `json:"checkoutUrl"`
		BookingID   string                   `json:"bookingId"`
	}
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/v1/booking/createBookingPayment",
		body:   payload,
	}, &resp)
	if err != nil {
		return nil, err
	}

	data := resp.Data
	if data.CheckoutURL == "" {
		data.CheckoutURL = resp.CheckoutURL
	}
	if data.BookingID == "" {
		data.BookingID = resp.BookingID
	}
	if data.BookingID == "" && data.Booking != nil {
		data.BookingID = data.Booking.ID
	}
	return &data, nil
}

// listBookings treats a 404 as "no bookings".
func (c *Client) listBookings(ctx context.Context, path, email string) ([]models.BookingRecord, error) {
	var resp struct {
		Data []models.BookingRecord `json:"data"`
	}
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   path,
		query:  url.Values{"email": {email}},
	}, &resp)
	if IsNotFound(err) {
		return []models.BookingRecord{}, nil
	}
	if err != nil {
		return nil, err
	}
	if resp.Data == nil {
		resp.Data = []models.BookingRecord{}
	}
	return resp.Data, nil
}

func (c *Client) GetBookings(ctx context.Context, email string) ([]models.BookingRecord, error) {
	return c.listBookings(ctx, "/api/v1/booking/getBookings", email)
}

func (c *Client) GetPendingBookings(ctx context.Context, email string) ([]models.BookingRecord, error) {
	return c.listBookings(ctx, "/api/v1/booking/getAllpendingBookings", email)
}

func (c *Client) GetBooking(ctx context.Context, bookingID string) (*models.BookingRecord, error) {
	var resp struct {
		Data models.BookingRecord `json:"data"`
	}
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/v1/booking/getBooking",
		query:  url.Values{"bookingId": {bookingID}},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) DeleteBooking(ctx context.Context, bookingID string) error {
	return c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/api/v1/booking/delete",
		query:  url.Values{"bookingId": {bookingID}},
	}, nil)
}
