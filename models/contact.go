package models

import "strings"

// ContactDetails are captured before submission and passed through verbatim.
type ContactDetails struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
}

// FullName joins first and last name.
func (c ContactDetails) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Validate checks that every contact field is present and the email parses.
func (c ContactDetails) Validate() error {
	return Validate("missing contact details", c)
}
