package models

import "encoding/json"

// SignupRequest registers a customer or a worker with the backend.
type SignupRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Address     string `json:"address" binding:"required"`
	Province    string `json:"province" binding:"required"`
	ZipCode     string `json:"zipCode" binding:"required"`
}

// Validate requires every field.
func (r SignupRequest) Validate() error {
	return Validate("please fill in all fields", r)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) Validate() error {
	return Validate("please fill in all fields", r)
}

// AuthResult is the data of a signup or login answer. User is kept raw
// because customers and workers have different profiles.
type AuthResult struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user,omitempty"`
}

// Email reads the email out of the raw user profile, if any.
func (a AuthResult) Email() string {
	var u struct {
		Email string `json:"email"`
	}
	if len(a.User) == 0 {
		return ""
	}
	if err := json.Unmarshal(a.User, &u); err != nil {
		return ""
	}
	return u.Email
}
