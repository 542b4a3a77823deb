package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FlexString decodes from either a JSON string or a JSON number; the
// backend is not consistent about which it sends for charges and
// account numbers.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(data)
	return nil
}

func (f FlexString) String() string { return string(f) }

// BookingRecord is a booking as stored by the backend.
type BookingRecord struct {
	ID               string     `json:"_id"`
	BookingReference string     `json:"bookingReference,omitempty"`
	FullName         string     `json:"fullName,omitempty"`
	FirstName        string     `json:"firstName,omitempty"`
	LastName         string     `json:"lastName,omitempty"`
	Email            string     `json:"email,omitempty"`
	Phone            string     `json:"phone,omitempty"`
	ServiceType      string     `json:"serviceType,omitempty"`
	Services         string     `json:"services,omitempty"`
	Date             string     `json:"date,omitempty"`
	Time             string     `json:"time,omitempty"`
	Frequency        string     `json:"frequency,omitempty"`
	Cleaners         FlexString `json:"cleaners,omitempty"`
	Duration         string     `json:"duration,omitempty"`
	Charge           FlexString `json:"charge,omitempty"`
	Addon            string     `json:"addon,omitempty"`
	Address          string     `json:"address,omitempty"`
	City             string     `json:"city,omitempty"`
	State            string     `json:"state,omitempty"`
	ZipCode          string     `json:"zipCode,omitempty"`
	Status           string     `json:"status,omitempty"`
	PaymentStatus    string     `json:"paymentStatus,omitempty"`
	CreatedAt        string     `json:"createdAt,omitempty"`
}

// CreateBookingData is the data object of a createBookingPayment answer.
type CreateBookingData struct {
	CheckoutURL string         `json:"checkoutUrl"`
	BookingID   string         `json:"bookingId"`
	Booking     *BookingRecord `json:"booking,omitempty"`
}

// CatalogItem is one service of the backend catalog.
type CatalogItem struct {
	ID          string   `json:"_id"`
	ServiceName string   `json:"serviceName"`
	Description string   `json:"description"`
	ServiceType []string `json:"serviceType"`
	Prices      []string `json:"prices"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

// CatalogPrice is a parsed "Label = $price" entry.
type CatalogPrice struct {
	Label string `json:"label"`
	Price string `json:"price"`
}

// PriceList splits every price string on its first "=".
func (c CatalogItem) PriceList() []CatalogPrice {
	out := make([]CatalogPrice, 0, len(c.Prices))
	for _, p := range c.Prices {
		label, price, found := strings.Cut(p, "=")
		if !found {
			out = append(out, CatalogPrice{Label: strings.TrimSpace(p)})
			continue
		}
		out = append(out, CatalogPrice{
			Label: strings.TrimSpace(label),
			Price: strings.TrimSpace(price),
		})
	}
	return out
}

// Catalog is the full service list.
type Catalog struct {
	Count    int           `json:"count"`
	Catalogs []CatalogItem `json:"catalogs"`
}

// BankAccount is a worker's payout account.
type BankAccount struct {
	ID            string     `json:"_id"`
	BankName      string     `json:"bankName"`
	AccountName   string     `json:"accountName"`
	AccountNumber FlexString `json:"accountNumber"`
}

// MaskedAccountNumber shows only the last four digits.
func (b BankAccount) MaskedAccountNumber() string {
	return MaskAccountNumber(string(b.AccountNumber))
}

func MaskAccountNumber(n string) string {
	if len(n) <= 4 {
		return n
	}
	return "••••" + n[len(n)-4:]
}

// BankInput is the body of a create/update bank call.
type BankInput struct {
	BankName      string `json:"bankName" binding:"required"`
	AccountName   string `json:"accountName" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required,number"`
}

func (in BankInput) Validate() error {
	return Validate("please fill in all fields", in)
}

// Assignment statuses as shown in the worker portal.
const (
	AssignmentPending   = "pending"
	AssignmentAccepted  = "accepted"
	AssignmentCompleted = "completed"
)

// AssignedBooking is the bookingId of an assignment: either a bare ID
// or the populated booking.
type AssignedBooking struct {
	BookingRecord
}

func (b *AssignedBooking) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &b.ID)
	}
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	return json.Unmarshal(data, &b.BookingRecord)
}

// Assignment links a worker to a booking.
type Assignment struct {
	ID         string          `json:"_id"`
	Booking    AssignedBooking `json:"bookingId"`
	Status     string          `json:"status"`
	IsAccepted bool            `json:"isAccepted"`
}

// DisplayStatus derives the worker-facing status.
func (a Assignment) DisplayStatus() string {
	switch {
	case a.Status == AssignmentCompleted:
		return AssignmentCompleted
	case a.IsAccepted:
		return AssignmentAccepted
	default:
		return AssignmentPending
	}
}

// CanComplete reports whether the job may be marked done.
func (a Assignment) CanComplete() bool {
	return a.DisplayStatus() == AssignmentAccepted
}
