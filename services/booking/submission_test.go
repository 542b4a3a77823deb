package booking

import (
	"errors"
	"testing"
	"time"

	"darimaids/models"
	"darimaids/services/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var submittedAt = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestBuildSubmissionPayloadDefaults(t *testing.T) {
	d := models.NewBookingDraft()
	require.NoError(t, d.Update("serviceType", models.ServiceDeepCleaning))

	p := BuildSubmissionPayload(d, models.ContactDetails{}, submittedAt)

	assert.Equal(t, models.ServiceDeepCleaning, p.Services)
	assert.Equal(t, "1", p.Cleaners)
	assert.Equal(t, "2026-03-14", p.Date)
	assert.Equal(t, "none", p.Addon)
	assert.Equal(t, "one-time", p.Frequency)
	assert.Equal(t, "0", p.Charge)
	assert.Equal(t, models.DefaultDuration, p.Duration)
}

func TestBuildSubmissionPayloadMapping(t *testing.T) {
	d := models.NewBookingDraft()
	for field, value := range map[string]string{
		"serviceType":     models.ServiceStandardCleaning,
		"cleaningType":    models.Cleaning2Bed2Bath,
		"bedrooms":        "2",
		"reoccurrence":    models.ReoccurrenceBiWeekly,
		"date":            "2026-04-02",
		"time":            "10:00 AM",
		"address":         "12 Palm Ave",
		"city":            "Tampa",
		"zipCode":         "33602",
		"state":           "FL",
		"county":          "Hillsborough",
		"pets":            "dog",
		"lastCleaning":    "1-month",
		"specialRequests": "Use the side door",
		"discountCode":    "SPRING",
	} {
		require.NoError(t, d.Update(field, value))
	}
	d.ToggleAddon("Laundry", true)
	d.ToggleAddon("Inside Fridge", true)
	d.TotalPrice = 245.5

	contact := models.ContactDetails{FirstName: "Ana", LastName: "Diaz", Email: "ana@example.com", Phone: "555-0100"}
	p := BuildSubmissionPayload(d, contact, submittedAt)

	assert.Equal(t, models.Cleaning2Bed2Bath, p.Services, "cleaning type wins over service type")
	assert.Equal(t, "2", p.Cleaners)
	assert.Equal(t, "2026-04-02", p.Date)
	assert.Equal(t, "Laundry,Inside Fridge", p.Addon)
	assert.Equal(t, models.ReoccurrenceBiWeekly, p.Frequency)
	assert.Equal(t, "245.5", p.Charge)

	assert.Equal(t, "Ana", p.FirstName)
	assert.Equal(t, "Diaz", p.LastName)
	assert.Equal(t, "Ana Diaz", p.FullName)
	assert.Equal(t, "ana@example.com", p.Email)
	assert.Equal(t, "555-0100", p.Phone)
	assert.Equal(t, "12 Palm Ave", p.Address)
	assert.Equal(t, "Tampa", p.City)
	assert.Equal(t, "33602", p.ZipCode)
	assert.Equal(t, "FL", p.State)
	assert.Equal(t, "Hillsborough", p.County)
	assert.Equal(t, "dog", p.Pets)
	assert.Equal(t, "1-month", p.LastCleaning)
	assert.Equal(t, "Use the side door", p.SpecialRequests)
	assert.Equal(t, "SPRING", p.DiscountCode)
	assert.Equal(t, "10:00 AM", p.Time)
}

func TestBuildSubmissionPayloadNegativeCharge(t *testing.T) {
	d := models.NewBookingDraft()
	d.TotalPrice = -12.25

	p := BuildSubmissionPayload(d, models.ContactDetails{}, submittedAt)
	assert.Equal(t, "-12.25", p.Charge)
}

func TestInterpretCreateResponse(t *testing.T) {
	t.Run("checkout", func(t *testing.T) {
		r := InterpretCreateResponse(&models.CreateBookingData{CheckoutURL: "https://pay.example/cs_1", BookingID: "b1"}, nil)
		assert.Equal(t, models.OutcomeCheckout, r.Outcome)
		assert.Equal(t, "https://pay.example/cs_1", r.CheckoutURL)
		assert.Equal(t, "b1", r.BookingID)
	})

	t.Run("no checkout link", func(t *testing.T) {
		r := InterpretCreateResponse(&models.CreateBookingData{BookingID: "b2"}, nil)
		assert.Equal(t, models.OutcomeIncomplete, r.Outcome)
		assert.Equal(t, "b2", r.BookingID)
		assert.NotEmpty(t, r.Message)
	})

	t.Run("nil data", func(t *testing.T) {
		r := InterpretCreateResponse(nil, nil)
		assert.Equal(t, models.OutcomeIncomplete, r.Outcome)
	})

	t.Run("backend message surfaces", func(t *testing.T) {
		err := &backend.APIError{StatusCode: 422, Message: "Date is fully booked"}
		r := InterpretCreateResponse(nil, err)
		assert.Equal(t, models.OutcomeFailed, r.Outcome)
		assert.Equal(t, "Date is fully booked", r.Message)
	})

	t.Run("plain error", func(t *testing.T) {
		r := InterpretCreateResponse(nil, errors.New("boom"))
		assert.Equal(t, models.OutcomeFailed, r.Outcome)
		assert.Equal(t, "boom", r.Message)
	})
}

func TestBuildSummary(t *testing.T) {
	s := BuildSummary(models.SubmissionPayload{
		FullName:  "Ana Diaz",
		Services:  models.CleaningStudio,
		Date:      "2026-04-02",
		Time:      "10:00 AM",
		Frequency: models.ReoccurrenceWeekly,
		Cleaners:  "1",
		Duration:  models.DefaultDuration,
		Charge:    "250",
		Addon:     "none",
	})

	studio, _ := models.LookupOption(models.CleaningTypes, models.CleaningStudio)
	weekly, _ := models.LookupOption(models.ReoccurrenceOptions, models.ReoccurrenceWeekly)
	assert.Equal(t, studio.Label, s.Service)
	assert.Equal(t, weekly.Label, s.Frequency)
	assert.Equal(t, "$250.00", s.Charge)
	assert.Equal(t, "Ana Diaz", s.Name)
	assert.Equal(t, "none", s.Addons)
}
