package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"
)

// ErrPaymentsDisabled is returned when no Stripe key is configured.
var ErrPaymentsDisabled = errors.New("payment verification is not configured")

// ErrInvalidCheckoutID rejects IDs that are not Checkout Session IDs.
var ErrInvalidCheckoutID = errors.New("invalid checkout session id")

var (
	// ErrCheckoutNotFound is returned when Stripe knows no such session.
	ErrCheckoutNotFound = errors.New("checkout session not found")
	// ErrCheckoutUnavailable wraps any other failed lookup.
	ErrCheckoutUnavailable = errors.New("unable to verify the payment, please try again")
)

// SessionGetter loads a Checkout Session.
type SessionGetter func(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)

// CheckoutStatus is what the return page needs after the payment redirect.
type CheckoutStatus struct {
	CheckoutSessionID string            `json:"checkoutSessionId"`
	Status            string            `json:"status"`
	PaymentStatus     string            `json:"paymentStatus"`
	Paid              bool              `json:"paid"`
	AmountTotal       float64           `json:"amountTotal"`
	Currency          string            `json:"currency"`
	CustomerEmail     string            `json:"customerEmail,omitempty"`
	BookingID         string            `json:"bookingId,omitempty"`
	Metadata          map[string]string `json:"metadata,omitempty"`
}

// CheckoutService looks up Checkout Sessions created by the backend.
type CheckoutService struct {
	enabled bool
	get     SessionGetter
	logger  *zap.Logger
}

// NewCheckoutService uses the package-level stripe.Key; an empty key
// disables lookups.
func NewCheckoutService(stripeKey string, logger *zap.Logger) *CheckoutService {
	return NewCheckoutServiceWithGetter(stripeKey != "", session.Get, logger)
}

func NewCheckoutServiceWithGetter(enabled bool, get SessionGetter, logger *zap.Logger) *CheckoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutService{enabled: enabled, get: get, logger: logger}
}

// Status reports the payment state of a Checkout Session.
func (s *CheckoutService) Status(ctx context.Context, checkoutSessionID string) (*CheckoutStatus, error) {
	if !s.enabled {
		return nil, ErrPaymentsDisabled
	}
	if !strings.HasPrefix(checkoutSessionID, "cs_") {
		return nil, ErrInvalidCheckoutID
	}

	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	cs, err := s.get(checkoutSessionID, params)
	if err != nil {
		s.logger.Error("Checkout session lookup failed",
			zap.String("checkoutSessionID", checkoutSessionID),
			zap.Error(err),
		)
		var se *stripe.Error
		if errors.As(err, &se) && se.HTTPStatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ErrCheckoutNotFound, checkoutSessionID)
		}
		return nil, fmt.Errorf("%w: %v", ErrCheckoutUnavailable, err)
	}

	status := &CheckoutStatus{
		CheckoutSessionID: cs.ID,
		Status:            string(cs.Status),
		PaymentStatus:     string(cs.PaymentStatus),
		Paid:              cs.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		AmountTotal:       float64(cs.AmountTotal) / 100,
		Currency:          strings.ToUpper(string(cs.Currency)),
		BookingID:         cs.ClientReferenceID,
		Metadata:          cs.Metadata,
	}
	if cs.CustomerDetails != nil {
		status.CustomerEmail = cs.CustomerDetails.Email
	}
	if status.BookingID == "" && cs.Metadata != nil {
		status.BookingID = cs.Metadata["bookingId"]
	}
	return status, nil
}
