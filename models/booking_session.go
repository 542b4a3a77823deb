package models

import "time"

// BookingSession holds one visitor's wizard state between requests.
type BookingSession struct {
	SessionID string         `json:"sessionId"`
	Draft     *BookingDraft  `json:"draft"`
	Contact   ContactDetails `json:"contact"`
	// Email is remembered after signup or login to key booking lookups.
	Email      string            `json:"email,omitempty"`
	LastResult *SubmissionResult `json:"lastResult,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// Clone returns a deep copy.
func (s *BookingSession) Clone() *BookingSession {
	c := *s
	if s.Draft != nil {
		c.Draft = s.Draft.Clone()
	}
	if s.LastResult != nil {
		r := *s.LastResult
		if r.Summary != nil {
			sum := *r.Summary
			r.Summary = &sum
		}
		c.LastResult = &r
	}
	return &c
}

// SessionView is what the wizard endpoints return.
type SessionView struct {
	SessionID  string             `json:"sessionId"`
	Draft      *BookingDraft      `json:"draft"`
	Contact    ContactDetails     `json:"contact"`
	Email      string             `json:"email,omitempty"`
	Pricing    PricingBreakdown   `json:"pricing"`
	Display    FormattedBreakdown `json:"display"`
	LastResult *SubmissionResult  `json:"lastResult,omitempty"`
}
