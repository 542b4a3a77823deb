package models

// SubmissionPayload is the body of the backend's booking-creation call.
type SubmissionPayload struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Services        string `json:"services"`
	Cleaners        string `json:"cleaners"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Duration        string `json:"duration"`
	Addon           string `json:"addon"`
	Frequency       string `json:"frequency"`
	Charge          string `json:"charge"`
	Address         string `json:"address"`
	City            string `json:"city"`
	ZipCode         string `json:"zipCode"`
	State           string `json:"state"`
	County          string `json:"county"`
	Pets            string `json:"pets"`
	LastCleaning    string `json:"lastCleaning"`
	SpecialRequests string `json:"specialRequests"`
	DiscountCode    string `json:"discountCode"`
}

// SubmissionOutcome tells the wizard where to go after submit.
type SubmissionOutcome string

const (
	// OutcomeCheckout: proceed to the external payment page.
	OutcomeCheckout SubmissionOutcome = "checkout"
	// OutcomeIncomplete: created, but no checkout link came back.
	OutcomeIncomplete SubmissionOutcome = "incomplete"
	// OutcomeFailed: nothing was created; the draft is kept for retry.
	OutcomeFailed SubmissionOutcome = "failed"
)

// SubmissionResult is the interpreted answer of a booking submission.
type SubmissionResult struct {
	Outcome     SubmissionOutcome `json:"outcome"`
	CheckoutURL string            `json:"checkoutUrl,omitempty"`
	BookingID   string            `json:"bookingId,omitempty"`
	Message     string            `json:"message"`
	Summary     *BookingSummary   `json:"summary,omitempty"`
}

// BookingSummary is what the confirmation view lists.
type BookingSummary struct {
	Name      string `json:"name"`
	Service   string `json:"service"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Frequency string `json:"frequency"`
	Cleaners  string `json:"cleaners"`
	Duration  string `json:"duration"`
	Charge    string `json:"charge"`
	Addons    string `json:"addons"`
}
