package booking

import (
	"strconv"
	"strings"
	"time"

	"darimaids/models"
	"darimaids/services/backend"
)

const (
	defaultCleaners  = "1"
	defaultAddon     = "none"
	defaultFrequency = models.ReoccurrenceOneTime
	defaultCharge    = "0"

	msgCheckout   = "Booking created. Redirecting to payment."
	msgIncomplete = "Your booking was created but we could not start the payment. We will contact you to complete it."
)

// BuildSubmissionPayload maps a draft and contact details to the
// backend's booking-creation body. now supplies the date when the draft
// has none.
func BuildSubmissionPayload(draft *models.BookingDraft, contact models.ContactDetails, now time.Time) models.SubmissionPayload {
	p := models.SubmissionPayload{
		FirstName:       contact.FirstName,
		LastName:        contact.LastName,
		FullName:        contact.FullName(),
		Email:           contact.Email,
		Phone:           contact.Phone,
		Services:        firstNonEmpty(draft.CleaningType, draft.ServiceType),
		Cleaners:        firstNonEmpty(draft.Bedrooms, defaultCleaners),
		Time:            draft.Time,
		Duration:        draft.Duration,
		Addon:           defaultAddon,
		Frequency:       firstNonEmpty(draft.Reoccurrence, defaultFrequency),
		Charge:          defaultCharge,
		Address:         draft.Address,
		City:            draft.City,
		ZipCode:         draft.ZipCode,
		State:           draft.State,
		County:          draft.County,
		Pets:            draft.Pets,
		LastCleaning:    draft.LastCleaning,
		SpecialRequests: draft.SpecialRequests,
		DiscountCode:    draft.DiscountCode,
	}

	if draft.Date != nil {
		p.Date = draft.Date.Format(models.DateLayout)
	} else {
		p.Date = now.Format(models.DateLayout)
	}
	if len(draft.SelectedAddons) > 0 {
		p.Addon = strings.Join(draft.SelectedAddons, ",")
	}
	if draft.TotalPrice != 0 {
		p.Charge = strconv.FormatFloat(draft.TotalPrice, 'f', -1, 64)
	}
	return p
}

// InterpretCreateResponse turns the backend's answer into a wizard outcome.
func InterpretCreateResponse(data *models.CreateBookingData, err error) *models.SubmissionResult {
	if err != nil {
		return FailedResult(err)
	}
	if data == nil {
		return &models.SubmissionResult{Outcome: models.OutcomeIncomplete, Message: msgIncomplete}
	}
	if data.CheckoutURL == "" {
		return &models.SubmissionResult{
			Outcome:   models.OutcomeIncomplete,
			BookingID: data.BookingID,
			Message:   msgIncomplete,
		}
	}
	return &models.SubmissionResult{
		Outcome:     models.OutcomeCheckout,
		CheckoutURL: data.CheckoutURL,
		BookingID:   data.BookingID,
		Message:     msgCheckout,
	}
}

// FailedResult reports a submission that created nothing.
func FailedResult(err error) *models.SubmissionResult {
	return &models.SubmissionResult{
		Outcome: models.OutcomeFailed,
		Message: backend.Message(err),
	}
}

// BuildSummary is the confirmation view of a submitted payload.
func BuildSummary(p models.SubmissionPayload) *models.BookingSummary {
	service := p.Services
	if opt, ok := models.LookupOption(models.CleaningTypes, service); ok {
		service = opt.Label
	} else if opt, ok := models.LookupOption(models.ServiceTypes, service); ok {
		service = opt.Label
	}
	frequency := p.Frequency
	if opt, ok := models.LookupOption(models.ReoccurrenceOptions, frequency); ok {
		frequency = opt.Label
	}
	charge := p.Charge
	if v, err := strconv.ParseFloat(charge, 64); err == nil {
		charge = models.FormatMoney(v)
	}

	return &models.BookingSummary{
		Name:      p.FullName,
		Service:   service,
		Date:      p.Date,
		Time:      p.Time,
		Frequency: frequency,
		Cleaners:  p.Cleaners,
		Duration:  p.Duration,
		Charge:    charge,
		Addons:    p.Addon,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
