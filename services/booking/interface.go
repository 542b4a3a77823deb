package booking

import (
	"context"
	"time"

	"darimaids/models"
)

// SessionStore keeps wizard sessions between requests.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Save(ctx context.Context, session *models.BookingSession) error
	Delete(ctx context.Context, sessionID string) error

	// AcquireSubmit marks a submission as in flight for ttl. It returns
	// false if one already is.
	AcquireSubmit(ctx context.Context, sessionID string, ttl time.Duration) (bool, error)
	ReleaseSubmit(ctx context.Context, sessionID string) error
}

// BookingCreator is the backend call that creates a booking.
type BookingCreator interface {
	CreateBooking(ctx context.Context, payload models.SubmissionPayload) (*models.CreateBookingData, error)
}

// WizardService drives the booking wizard for one session at a time.
type WizardService interface {
	InitiateSession(ctx context.Context) (*models.SessionView, error)
	GetSession(ctx context.Context, sessionID string) (*models.SessionView, error)
	UpdateField(ctx context.Context, sessionID, field, value string) (*models.SessionView, error)
	ToggleAddon(ctx context.Context, sessionID, name string, included bool) (*models.SessionView, error)
	SetContact(ctx context.Context, sessionID string, contact models.ContactDetails) (*models.SessionView, error)
	Reset(ctx context.Context, sessionID string) (*models.SessionView, error)
	Submit(ctx context.Context, sessionID string) (*models.SubmissionResult, error)
	CancelSession(ctx context.Context, sessionID string) error
	RememberEmail(ctx context.Context, sessionID, email string) error
	SessionEmail(ctx context.Context, sessionID string) (string, error)
}
