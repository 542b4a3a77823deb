package models

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DefaultDuration is the estimate shown before a crew confirms the job.
const DefaultDuration = "Approx. 3hrs"

// DateLayout is the wire format of booking dates.
const DateLayout = "2006-01-02"

// BookingDraft is the in-progress booking form of one wizard session.
type BookingDraft struct {
	ServiceType     string     `json:"serviceType"`
	CleaningType    string     `json:"cleaningType"`
	SquareFootage   string     `json:"squareFootage"`
	Bedrooms        string     `json:"bedrooms"`
	Bathrooms       string     `json:"bathrooms"`
	Address         string     `json:"address"`
	City            string     `json:"city"`
	ZipCode         string     `json:"zipCode"`
	State           string     `json:"state"`
	County          string     `json:"county"`
	Date            *time.Time `json:"date,omitempty"`
	Reoccurrence    string     `json:"reoccurrence"`
	LastCleaning    string     `json:"lastCleaning"`
	Pets            string     `json:"pets"`
	SpecialRequests string     `json:"specialRequests"`
	SelectedAddons  []string   `json:"selectedAddons"`
	DiscountCode    string     `json:"discountCode"`
	Time            string     `json:"time"`
	Duration        string     `json:"duration"`
	TotalPrice      float64    `json:"totalPrice"`
}

// NewBookingDraft returns an empty draft.
func NewBookingDraft() *BookingDraft {
	d := &BookingDraft{}
	d.Reset()
	return d
}

var draftStringFields = map[string]func(d *BookingDraft) *string{
	"serviceType":     func(d *BookingDraft) *string { return &d.ServiceType },
	"cleaningType":    func(d *BookingDraft) *string { return &d.CleaningType },
	"squareFootage":   func(d *BookingDraft) *string { return &d.SquareFootage },
	"bedrooms":        func(d *BookingDraft) *string { return &d.Bedrooms },
	"bathrooms":       func(d *BookingDraft) *string { return &d.Bathrooms },
	"address":         func(d *BookingDraft) *string { return &d.Address },
	"city":            func(d *BookingDraft) *string { return &d.City },
	"zipCode":         func(d *BookingDraft) *string { return &d.ZipCode },
	"state":           func(d *BookingDraft) *string { return &d.State },
	"county":          func(d *BookingDraft) *string { return &d.County },
	"reoccurrence":    func(d *BookingDraft) *string { return &d.Reoccurrence },
	"lastCleaning":    func(d *BookingDraft) *string { return &d.LastCleaning },
	"pets":            func(d *BookingDraft) *string { return &d.Pets },
	"specialRequests": func(d *BookingDraft) *string { return &d.SpecialRequests },
	"discountCode":    func(d *BookingDraft) *string { return &d.DiscountCode },
	"time":            func(d *BookingDraft) *string { return &d.Time },
	"duration":        func(d *BookingDraft) *string { return &d.Duration },
}

// DraftFields lists the names accepted by Update, sorted.
func DraftFields() []string {
	fields := make([]string, 0, len(draftStringFields)+1)
	for name := range draftStringFields {
		fields = append(fields, name)
	}
	fields = append(fields, "date")
	sort.Strings(fields)
	return fields
}

// Update sets exactly one field. Values are stored as given; "date"
// accepts YYYY-MM-DD or RFC 3339, and an empty value clears it.
func (d *BookingDraft) Update(field, value string) error {
	switch field {
	case "totalPrice", "selectedAddons":
		return fmt.Errorf("%w: %s", ErrDerivedField, field)
	case "date":
		return d.setDate(value)
	}

	ptr, ok := draftStringFields[field]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	*ptr(d) = value
	return nil
}

func (d *BookingDraft) setDate(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		d.Date = nil
		return nil
	}
	for _, layout := range []string{DateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			d.Date = &t
			return nil
		}
	}
	return NewValidationError("date must be YYYY-MM-DD", "date")
}

// ToggleAddon inserts name once when included, otherwise removes every
// occurrence of it.
func (d *BookingDraft) ToggleAddon(name string, included bool) {
	if included {
		for _, a := range d.SelectedAddons {
			if a == name {
				return
			}
		}
		d.SelectedAddons = append(d.SelectedAddons, name)
		return
	}

	kept := d.SelectedAddons[:0]
	for _, a := range d.SelectedAddons {
		if a != name {
			kept = append(kept, a)
		}
	}
	d.SelectedAddons = kept
}

// Reset restores every field to its initial value.
func (d *BookingDraft) Reset() {
	*d = BookingDraft{
		SelectedAddons: []string{},
		Duration:       DefaultDuration,
	}
}

// Clone returns a deep copy.
func (d *BookingDraft) Clone() *BookingDraft {
	c := *d
	c.SelectedAddons = append([]string{}, d.SelectedAddons...)
	if d.Date != nil {
		t := *d.Date
		c.Date = &t
	}
	return &c
}

// MissingRequired lists the fields that must be set before submission.
// An unset date is filled in with the submission day.
func (d *BookingDraft) MissingRequired() []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"serviceType", d.ServiceType},
		{"address", d.Address},
		{"city", d.City},
		{"zipCode", d.ZipCode},
		{"state", d.State},
		{"time", d.Time},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.name)
		}
	}
	return missing
}
